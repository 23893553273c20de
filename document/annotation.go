package document

import (
	pdf "github.com/tmr232/capypdf"
)

type annotationKind int

const (
	annotationPlain annotationKind = iota
	annotationCheckboxWidget
)

// annotationEntry is one registered annotation or form-widget annotation,
// prior to being attached to a page. A checkbox widget is modeled as an
// annotation whose Subtype is /Widget, matching how PDF itself
// represents form fields.
type annotationEntry struct {
	kind      annotationKind
	rect      *pdf.Rectangle
	subtype   pdf.Name
	contents  string
	fieldName string
	checked   bool
	ref       pdf.Reference
}

// AddAnnotation registers a plain annotation (e.g. /Text, /Link, /Popup)
// for later attachment to exactly one page via Page.AttachAnnotation.
func (d *Document) AddAnnotation(rect *pdf.Rectangle, subtype pdf.Name, contents string) (AnnotationID, error) {
	if rect == nil {
		return 0, pdf.Err(pdf.ErrAnnotationMissingRect)
	}
	d.annotations = append(d.annotations, &annotationEntry{
		kind: annotationPlain, rect: rect, subtype: subtype, contents: contents,
	})
	return AnnotationID(len(d.annotations) - 1), nil
}

// AddCheckboxWidget registers a checkbox form-field widget annotation
// for later attachment to exactly one page.
func (d *Document) AddCheckboxWidget(rect *pdf.Rectangle, fieldName string, checked bool) (AnnotationID, error) {
	if rect == nil {
		return 0, pdf.Err(pdf.ErrAnnotationMissingRect)
	}
	d.annotations = append(d.annotations, &annotationEntry{
		kind: annotationCheckboxWidget, rect: rect, subtype: "Widget",
		fieldName: fieldName, checked: checked,
	})
	return AnnotationID(len(d.annotations) - 1), nil
}

// AttachAnnotation marks id as used on p, failing with AnnotationReuse if
// it is already attached to another page. The annotation is queued on
// the page; its indirect object is built when the page is closed, once
// the page's own reference is known.
func (p *Page) AttachAnnotation(id AnnotationID) error {
	doc := p.doc
	if int(id) < 0 || int(id) >= len(doc.annotations) {
		return pdf.Err(pdf.ErrIndexOutOfBounds)
	}
	if _, used := doc.annotationOwner[id]; used {
		return pdf.Err(pdf.ErrAnnotationReuse)
	}
	doc.annotationOwner[id] = len(doc.pages)
	p.pendingAnnotations = append(p.pendingAnnotations, id)
	return nil
}

// buildAnnotationObject constructs id's indirect object once its owning
// page's reference is known (needed for the annotation's /P entry).
func (d *Document) buildAnnotationObject(id AnnotationID, pageRef pdf.Reference) pdf.Reference {
	e := d.annotations[id]
	dict := pdf.Dict{
		"Type":    pdf.Name("Annot"),
		"Subtype": e.subtype,
		"Rect":    e.rect,
		"P":       pageRef,
	}
	if e.contents != "" {
		dict["Contents"] = pdf.TextString(e.contents)
	}
	if e.kind == annotationCheckboxWidget {
		state := pdf.Name("Off")
		if e.checked {
			state = "Yes"
		}
		dict["FT"] = pdf.Name("Btn")
		dict["T"] = pdf.TextString(e.fieldName)
		dict["AS"] = state
		dict["V"] = state
		dict["AP"] = pdf.Dict{"N": pdf.Dict{"Yes": pdf.Dict{}, "Off": pdf.Dict{}}}
	}
	ref := d.objects.addFull(dict, nil, false)
	e.ref = ref
	if e.kind == annotationCheckboxWidget {
		d.formFieldRefs = append(d.formFieldRefs, ref)
	}
	return ref
}

// buildAcroForm returns the catalog's /AcroForm reference, or the zero
// Reference if no checkbox (or other form-field) widgets were attached
// to any page.
func (d *Document) buildAcroForm() pdf.Reference {
	if len(d.formFieldRefs) == 0 {
		return pdf.Reference{}
	}
	fields := make(pdf.Array, len(d.formFieldRefs))
	for i, r := range d.formFieldRefs {
		fields[i] = r
	}
	return d.objects.addFull(pdf.Dict{"Fields": fields}, nil, false)
}
