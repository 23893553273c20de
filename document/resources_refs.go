package document

import pdf "github.com/tmr232/capypdf"

// The methods in this file satisfy graphics.Refs, letting
// (*graphics.Resources).Dict resolve a page's resource references without
// the graphics package needing to know about Document at all.

func (d *Document) FontSubsetRef(font, subset int) pdf.Reference {
	return d.fontSubsetRef(FontID(font), subset)
}

func (d *Document) BuiltinFontRef(id int) pdf.Reference {
	// No builtin (non-embedded, non-subsetted) fonts are modeled; this
	// module only draws text through subsetted embedded fonts.
	return pdf.Reference{}
}

func (d *Document) ImageRef(id int) pdf.Reference {
	if id < 0 || id >= len(d.images) {
		return pdf.Reference{}
	}
	return d.images[id].ref
}

func (d *Document) GStateRef(id int) pdf.Reference {
	if id < 0 || id >= len(d.gstateRefs) {
		return pdf.Reference{}
	}
	return d.gstateRefs[id]
}

func (d *Document) ShadingRef(id int) pdf.Reference {
	if id < 0 || id >= len(d.shadings) {
		return pdf.Reference{}
	}
	return d.shadings[id].ref
}

func (d *Document) PatternRef(id int) pdf.Reference {
	if id < 0 || id >= len(d.patterns) {
		return pdf.Reference{}
	}
	return d.patterns[id].ref
}

func (d *Document) FormXObjectRef(id int) pdf.Reference {
	if id < 0 || id >= len(d.formXs) {
		return pdf.Reference{}
	}
	return d.formXs[id].ref
}

func (d *Document) TransparencyGroupRef(id int) pdf.Reference {
	if id < 0 || id >= len(d.trGroups) {
		return pdf.Reference{}
	}
	return d.trGroups[id].ref
}

func (d *Document) OCGRef(id int) pdf.Reference {
	if id < 0 || id >= len(d.ocgs) {
		return pdf.Reference{}
	}
	return d.ocgs[id].ref
}
