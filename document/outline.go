package document

import (
	"github.com/tmr232/capypdf/outline"

	pdf "github.com/tmr232/capypdf"
)

// outlineItemEntry is one bookmark, prior to tree assembly: its value
// plus a parent link.
type outlineItemEntry struct {
	entry  outline.Entry
	parent OutlineID // -1 for a top-level entry
}

// AddOutline appends a bookmark entry under parent (use -1 for a
// top-level entry) and returns its identity, usable as a later entry's
// parent.
func (d *Document) AddOutline(e outline.Entry, parent OutlineID) OutlineID {
	d.outlines = append(d.outlines, &outlineItemEntry{entry: e, parent: parent})
	return OutlineID(len(d.outlines) - 1)
}

// resolveOutlines builds the outline tree, assigning /Prev /Next /First
// /Last /Count by insertion order per parent, and returns
// the root /Outlines object's reference, or the zero Reference if no
// outline entries were added.
func (d *Document) resolveOutlines() pdf.Reference {
	if len(d.outlines) == 0 {
		return pdf.Reference{}
	}

	refs := make([]pdf.Reference, len(d.outlines))
	entries := make([]*objectEntry, len(d.outlines))
	for i := range refs {
		refs[i], entries[i] = d.objects.alloc()
	}

	children := make([][]int, len(d.outlines))
	var roots []int
	for i, o := range d.outlines {
		if int(o.parent) < 0 || int(o.parent) >= len(d.outlines) {
			roots = append(roots, i)
			continue
		}
		children[o.parent] = append(children[o.parent], i)
	}

	var build func(idxs []int, parentRef pdf.Reference) (first, last pdf.Reference, count int)
	build = func(idxs []int, parentRef pdf.Reference) (pdf.Reference, pdf.Reference, int) {
		if len(idxs) == 0 {
			return pdf.Reference{}, pdf.Reference{}, 0
		}
		for i, idx := range idxs {
			o := d.outlines[idx]
			dict := pdf.Dict{
				"Title":  pdf.TextString(o.entry.Title),
				"Parent": parentRef,
				"Dest":   d.outlineDest(o.entry.DestPage),
			}
			if i > 0 {
				dict["Prev"] = refs[idxs[i-1]]
			}
			if i < len(idxs)-1 {
				dict["Next"] = refs[idxs[i+1]]
			}
			first, last, count := build(children[idx], refs[idx])
			if count != 0 {
				dict["First"] = first
				dict["Last"] = last
				// Negated per the PDF standard so children start
				// closed by default.
				dict["Count"] = pdf.Integer(-count)
			}
			if o.entry.Color != nil {
				dict["C"] = numArray(o.entry.Color...)
			}
			if flags := o.entry.StyleFlags(); flags != 0 {
				dict["F"] = flags
			}
			entries[idx].resolved = true
			entries[idx].dict = dict
		}
		return refs[idxs[0]], refs[idxs[len(idxs)-1]], len(idxs)
	}

	first, last, count := build(roots, pdf.Reference{})

	return d.objects.addFull(pdf.Dict{
		"Type":  pdf.Name("Outlines"),
		"First": first,
		"Last":  last,
		"Count": pdf.Integer(count),
	}, nil, false)
}

func (d *Document) outlineDest(pageIndex int) pdf.Object {
	if pageIndex < 0 || pageIndex >= len(d.pages) {
		return nil
	}
	return pdf.Array{d.pages[pageIndex].ref, pdf.Name("XYZ"), nil, nil, nil}
}
