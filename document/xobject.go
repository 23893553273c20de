package document

import (
	"github.com/tmr232/capypdf/graphics"

	pdf "github.com/tmr232/capypdf"
)

// formXObjectEntry records one registered form XObject's indirect object.
type formXObjectEntry struct {
	ref pdf.Reference
}

// trGroupEntry records one registered transparency-group XObject's
// indirect object.
type trGroupEntry struct {
	ref pdf.Reference
}

// NewFormXObjectContext opens a draw context for a reusable form
// XObject. Pass the result to AddFormXObject once drawing is complete.
func (d *Document) NewFormXObjectContext() *DrawingContext {
	return newDrawingContext(d, KindFormXObject)
}

// AddFormXObject finalizes dc as a Form XObject with the given bounding
// box and registers it. dc must belong to this Document.
func (d *Document) AddFormXObject(dc *DrawingContext, bbox *pdf.Rectangle, m graphics.Matrix) (FormXObjectID, error) {
	if dc.doc != d {
		return 0, pdf.Err(pdf.ErrIncorrectDocumentForObject)
	}
	if dc.kind != KindFormXObject {
		return 0, pdf.Err(pdf.ErrInvalidDrawContextType)
	}
	content, err := dc.finalizeStream()
	if err != nil {
		return 0, err
	}

	dict := pdf.Dict{
		"Type":      pdf.Name("XObject"),
		"Subtype":   pdf.Name("Form"),
		"BBox":      bbox,
		"Matrix":    matrixArray(m),
		"Resources": dc.res.Dict(d),
	}
	ref := d.objects.addFull(dict, content, d.opts.CompressStreams)
	d.formXs = append(d.formXs, &formXObjectEntry{ref: ref})
	return FormXObjectID(len(d.formXs) - 1), nil
}

// NewTransparencyGroupContext opens a draw context for a transparency
// group XObject. Configure its /Group properties with
// SetTransparencyGroupProperties before closing it with
// AddTransparencyGroup.
func (d *Document) NewTransparencyGroupContext() *DrawingContext {
	return newDrawingContext(d, KindTransparencyGroup)
}

// AddTransparencyGroup finalizes dc as a transparency-group Form XObject
// and registers it. dc must belong to this Document.
func (d *Document) AddTransparencyGroup(dc *DrawingContext, bbox *pdf.Rectangle) (TransparencyGroupID, error) {
	if dc.doc != d {
		return 0, pdf.Err(pdf.ErrIncorrectDocumentForObject)
	}
	if dc.kind != KindTransparencyGroup {
		return 0, pdf.Err(pdf.ErrInvalidDrawContextType)
	}
	content, err := dc.finalizeStream()
	if err != nil {
		return 0, err
	}

	group := pdf.Dict{"S": pdf.Name("Transparency")}
	if dc.trGroupProps.ColorSpace != "" {
		group["CS"] = dc.trGroupProps.ColorSpace
	}
	if dc.trGroupProps.Isolated {
		group["I"] = pdf.Bool(true)
	}
	if dc.trGroupProps.Knockout {
		group["K"] = pdf.Bool(true)
	}

	dict := pdf.Dict{
		"Type":      pdf.Name("XObject"),
		"Subtype":   pdf.Name("Form"),
		"BBox":      bbox,
		"Group":     group,
		"Resources": dc.res.Dict(d),
	}
	ref := d.objects.addFull(dict, content, d.opts.CompressStreams)
	d.trGroups = append(d.trGroups, &trGroupEntry{ref: ref})
	return TransparencyGroupID(len(d.trGroups) - 1), nil
}
