package document

import (
	pdf "github.com/tmr232/capypdf"
)

// Page represents one page under construction. Drawing happens through
// the embedded DrawingContext; Close finalizes the content stream,
// allocates the page's resource-dictionary and content-stream objects,
// and appends a delayed page placeholder whose final /Parent, /Contents,
// and /Resources get resolved once the whole document is known.
type Page struct {
	*DrawingContext

	doc *Document
	box *pdf.Rectangle

	pendingAnnotations []AnnotationID
}

// SetMediaBox overrides the page size set at NewPage time.
func (p *Page) SetMediaBox(box *pdf.Rectangle) { p.box = box }

// Close finalizes the page: the content stream can no longer be mutated
// afterward.
func (p *Page) Close() (pdf.Reference, error) {
	content, err := p.finalizeStream()
	if err != nil {
		return pdf.Reference{}, err
	}

	resDict := p.res.Dict(p.doc)
	resRef := p.doc.objects.addFull(resDict, nil, false)
	contentRef := p.doc.objects.addFull(nil, content, p.doc.opts.CompressStreams)

	entry := &pageEntry{
		resRef:       resRef,
		contentRef:   contentRef,
		mediaBox:     p.box,
		properties:   p.customProps,
		structParent: p.doc.nextMCIDPage,
	}
	p.doc.nextMCIDPage++

	if len(p.res.Structures()) > 0 {
		p.doc.recordPageStructParent(entry.structParent, p.res.Structures())
	}

	ref := p.doc.objects.addDelayed(func(doc *Document) (pdf.Object, []byte, bool, error) {
		return doc.resolvePage(entry)
	})
	entry.ref = ref
	p.doc.pages = append(p.doc.pages, entry)

	for _, aid := range p.pendingAnnotations {
		annotRef := p.doc.buildAnnotationObject(aid, ref)
		entry.annotations = append(entry.annotations, annotRef)
	}

	return ref, nil
}

func (doc *Document) resolvePage(e *pageEntry) (pdf.Object, []byte, bool, error) {
	dict := pdf.Dict{
		"Type":      pdf.Name("Page"),
		"Parent":    doc.pagesRef,
		"MediaBox":  e.mediaBox,
		"Resources": e.resRef,
		"Contents":  e.contentRef,
	}
	if e.structParent >= 0 {
		dict["StructParents"] = pdf.Integer(e.structParent)
	}
	if len(e.annotations) > 0 {
		annots := make(pdf.Array, len(e.annotations))
		for i, r := range e.annotations {
			annots[i] = r
		}
		dict["Annots"] = annots
	}
	for k, v := range e.properties {
		dict[k] = v
	}
	return dict, nil, false, nil
}

func (doc *Document) resolvePagesTree(d *Document) (pdf.Object, []byte, bool, error) {
	kids := make(pdf.Array, len(doc.pages))
	for i, p := range doc.pages {
		kids[i] = p.ref
	}
	dict := pdf.Dict{
		"Type":  pdf.Name("Pages"),
		"Kids":  kids,
		"Count": pdf.Integer(len(doc.pages)),
		"Group": pdf.Dict{
			"S":  pdf.Name("Transparency"),
			"CS": pdf.Name(doc.opts.OutputColorSpace.String()),
		},
	}
	return dict, nil, false, nil
}
