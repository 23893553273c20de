package document

import (
	"sort"

	pdf "github.com/tmr232/capypdf"
)

// embeddedFileEntry is one file attached to the document via
// AddEmbeddedFile, prior to name-tree assembly.
type embeddedFileEntry struct {
	name string
	ref  pdf.Reference
}

// AddEmbeddedFile attaches data as a named embedded file, reachable from
// the catalog's /Names /EmbeddedFiles name tree.
func (d *Document) AddEmbeddedFile(name string, data []byte) {
	streamRef := d.objects.addFull(pdf.Dict{"Type": pdf.Name("EmbeddedFile")}, data, true)
	fileRef := d.objects.addFull(pdf.Dict{
		"Type": pdf.Name("Filespec"),
		"F":    pdf.TextString(name),
		"EF":   pdf.Dict{"F": streamRef},
	}, nil, false)
	d.embeddedFiles = append(d.embeddedFiles, embeddedFileEntry{name: name, ref: fileRef})
}

// buildNames returns the catalog's /Names reference, or the zero
// Reference if no embedded files were attached.
func (d *Document) buildNames() pdf.Reference {
	if len(d.embeddedFiles) == 0 {
		return pdf.Reference{}
	}
	sorted := make([]embeddedFileEntry, len(d.embeddedFiles))
	copy(sorted, d.embeddedFiles)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].name < sorted[j].name })

	nums := make(pdf.Array, 0, len(sorted)*2)
	for _, f := range sorted {
		nums = append(nums, pdf.TextString(f.name), f.ref)
	}
	efRef := d.objects.addFull(pdf.Dict{"Names": nums}, nil, false)
	return d.objects.addFull(pdf.Dict{"EmbeddedFiles": efRef}, nil, false)
}
