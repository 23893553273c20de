package document

import (
	"golang.org/x/text/language"

	pdf "github.com/tmr232/capypdf"
)

// buildOutputIntent constructs the single /OutputIntent dictionary named
// by Options.Subtype, requiring that an output ICC profile was
// registered via SetOutputProfile (pdf.ErrOutputProfileMissing
// otherwise). Returns the zero Reference if no Subtype was configured.
func (d *Document) buildOutputIntent() (pdf.Reference, error) {
	if d.opts.Subtype == SubtypeNone {
		return pdf.Reference{}, nil
	}
	if !d.hasProfile {
		return pdf.Reference{}, pdf.Err(pdf.ErrOutputProfileMissing)
	}
	profileRef := d.iccRef(d.outputProfile)
	s := pdf.Name("GTS_PDFX")
	switch d.opts.Subtype {
	case SubtypePDFA:
		s = pdf.Name("GTS_PDFA1")
	case SubtypePDFE:
		s = pdf.Name("ISO_PDFE1")
	}
	dict := pdf.Dict{
		"Type": pdf.Name("OutputIntent"),
		"S":    s,
		"OutputConditionIdentifier": pdf.TextString(d.opts.IntentConditionIdentifier),
		"DestOutputProfile":         profileRef,
	}
	return d.objects.addFull(dict, nil, false), nil
}

// buildCatalogDict assembles the document's /Catalog dictionary from
// every ancillary structure that was built just before it.
func (d *Document) buildCatalogDict(outlinesRef, structRootRef, acroFormRef, namesRef, outputIntentRef pdf.Reference) (pdf.Dict, error) {
	dict := pdf.Dict{
		"Type":  pdf.Name("Catalog"),
		"Pages": d.pagesRef,
	}
	if !outlinesRef.IsZero() {
		dict["Outlines"] = outlinesRef
	}
	if !namesRef.IsZero() {
		dict["Names"] = namesRef
	}
	if !structRootRef.IsZero() {
		dict["StructTreeRoot"] = structRootRef
	}
	if !acroFormRef.IsZero() {
		dict["AcroForm"] = acroFormRef
	}
	if !outputIntentRef.IsZero() {
		dict["OutputIntents"] = pdf.Array{outputIntentRef}
	}
	tag, err := d.opts.languageTag()
	if err != nil {
		return nil, err
	}
	if tag != (language.Tag{}) {
		dict["Lang"] = pdf.TextString(tag.String())
	}
	if d.opts.IsTagged {
		dict["MarkInfo"] = pdf.Dict{"Marked": pdf.Bool(true)}
	}
	if ocProps := d.buildOCProperties(); ocProps != nil {
		dict["OCProperties"] = ocProps
	}
	return dict, nil
}
