package graphics

import (
	"strconv"

	pdf "github.com/tmr232/capypdf"
)

// subsetKey identifies one font subset, the unit of font resource
// reference: a font with N subsets contributes N distinct /F<font>_<subset>
// entries.
type subsetKey struct {
	Font   int
	Subset int
}

// Resources tracks, for a single draw context, which resources of each
// PDF resource-dictionary category have been referenced by emitted
// operators, as disjoint per-category sets.
type Resources struct {
	images       map[int]bool
	subsetFonts  map[subsetKey]bool
	builtinFonts map[int]bool
	colorSpaces  map[pdf.Name]bool
	gstates      map[int]bool
	shadings     map[int]bool
	patterns     map[int]bool
	formXObjects map[int]bool
	trGroups     map[int]bool
	ocgs         map[int]bool

	// structures is ordered, because the per-page parent-tree entry is
	// indexed by the structparent MCID assigned in emission order.
	structures []int
}

// NewResources returns an empty Resources set ready for use tracking.
func NewResources() *Resources {
	return newResources()
}

func newResources() *Resources {
	return &Resources{
		images:       make(map[int]bool),
		subsetFonts:  make(map[subsetKey]bool),
		builtinFonts: make(map[int]bool),
		colorSpaces:  make(map[pdf.Name]bool),
		gstates:      make(map[int]bool),
		shadings:     make(map[int]bool),
		patterns:     make(map[int]bool),
		formXObjects: make(map[int]bool),
		trGroups:     make(map[int]bool),
		ocgs:         make(map[int]bool),
	}
}

func (r *Resources) useImage(id int)            { r.images[id] = true }
func (r *Resources) useSubsetFont(font, sub int) { r.subsetFonts[subsetKey{font, sub}] = true }
func (r *Resources) useBuiltinFont(id int)      { r.builtinFonts[id] = true }
func (r *Resources) useColorSpace(name pdf.Name) { r.colorSpaces[name] = true }
func (r *Resources) useGState(id int)           { r.gstates[id] = true }
func (r *Resources) useShading(id int)          { r.shadings[id] = true }
func (r *Resources) usePattern(id int)          { r.patterns[id] = true }
func (r *Resources) useFormXObject(id int)      { r.formXObjects[id] = true }
func (r *Resources) useTransparencyGroup(id int) { r.trGroups[id] = true }
func (r *Resources) useOCG(id int)              { r.ocgs[id] = true }
func (r *Resources) useStructure(id int)        { r.structures = append(r.structures, id) }

// UseImage, UseSubsetFont, and the rest of the exported Use* methods let
// collaborator packages (document) record resource references without
// reaching into Resources's internals.
func (r *Resources) UseImage(id int)             { r.useImage(id) }
func (r *Resources) UseSubsetFont(font, sub int) { r.useSubsetFont(font, sub) }
func (r *Resources) UseBuiltinFont(id int)       { r.useBuiltinFont(id) }
func (r *Resources) UseColorSpace(name pdf.Name) { r.useColorSpace(name) }
func (r *Resources) UseGState(id int)            { r.useGState(id) }
func (r *Resources) UseShading(id int)           { r.useShading(id) }
func (r *Resources) UsePattern(id int)           { r.usePattern(id) }
func (r *Resources) UseFormXObject(id int)       { r.useFormXObject(id) }
func (r *Resources) UseTransparencyGroup(id int) { r.useTransparencyGroup(id) }
func (r *Resources) UseOCG(id int)               { r.useOCG(id) }
func (r *Resources) UseStructure(id int)         { r.useStructure(id) }

// Structures returns the ordered list of structure-item indices referenced
// by this resource set, used to build a page's parent-tree entries.
func (r *Resources) Structures() []int { return r.structures }

// Refs exposes the provider of indirect references needed to build a
// /Resources dictionary: object numbers for fonts, images, and so on.
type Refs interface {
	FontSubsetRef(font, subset int) pdf.Reference
	BuiltinFontRef(id int) pdf.Reference
	ImageRef(id int) pdf.Reference
	GStateRef(id int) pdf.Reference
	ShadingRef(id int) pdf.Reference
	PatternRef(id int) pdf.Reference
	FormXObjectRef(id int) pdf.Reference
	TransparencyGroupRef(id int) pdf.Reference
	OCGRef(id int) pdf.Reference

	// ColorSpaceRef resolves a previously-registered non-device
	// colorspace resource name (e.g. from color.Lab's ColorSpaceName)
	// to its /ColorSpace array or indirect reference.
	ColorSpaceRef(name pdf.Name) pdf.Object
}

// Dict builds the /Resources dictionary for the resources actually
// referenced, with keys of the form /F<font>_<subset>, /Im<n>, and so on, mapped to
// indirect references.
func (r *Resources) Dict(refs Refs) pdf.Dict {
	dict := pdf.Dict{}

	if len(r.subsetFonts) > 0 || len(r.builtinFonts) > 0 {
		fonts := pdf.Dict{}
		for key := range r.subsetFonts {
			fonts[SubsetFontName(key.Font, key.Subset)] = refs.FontSubsetRef(key.Font, key.Subset)
		}
		for id := range r.builtinFonts {
			fonts[pdf.Name(nameWithIndex("BF", id))] = refs.BuiltinFontRef(id)
		}
		dict["Font"] = fonts
	}

	if len(r.images) > 0 || len(r.formXObjects) > 0 || len(r.trGroups) > 0 {
		xobjs := pdf.Dict{}
		for id := range r.images {
			xobjs[pdf.Name(nameWithIndex("Im", id))] = refs.ImageRef(id)
		}
		for id := range r.formXObjects {
			xobjs[pdf.Name(nameWithIndex("Fx", id))] = refs.FormXObjectRef(id)
		}
		for id := range r.trGroups {
			xobjs[pdf.Name(nameWithIndex("Tg", id))] = refs.TransparencyGroupRef(id)
		}
		dict["XObject"] = xobjs
	}

	if len(r.gstates) > 0 {
		gs := pdf.Dict{}
		for id := range r.gstates {
			gs[pdf.Name(nameWithIndex("GS", id))] = refs.GStateRef(id)
		}
		dict["ExtGState"] = gs
	}

	if len(r.patterns) > 0 {
		pat := pdf.Dict{}
		for id := range r.patterns {
			pat[pdf.Name(nameWithIndex("P", id))] = refs.PatternRef(id)
		}
		dict["Pattern"] = pat
	}

	if len(r.shadings) > 0 {
		sh := pdf.Dict{}
		for id := range r.shadings {
			sh[pdf.Name(nameWithIndex("Sh", id))] = refs.ShadingRef(id)
		}
		dict["Shading"] = sh
	}

	if len(r.colorSpaces) > 0 {
		cs := pdf.Dict{}
		for name := range r.colorSpaces {
			cs[name] = refs.ColorSpaceRef(name)
		}
		dict["ColorSpace"] = cs
	}

	if len(r.ocgs) > 0 {
		props := pdf.Dict{}
		for id := range r.ocgs {
			props[pdf.Name(nameWithIndex("OC", id))] = refs.OCGRef(id)
		}
		dict["Properties"] = props
	}

	return dict
}

func nameWithIndex(prefix string, i int) string {
	return prefix + strconv.Itoa(i)
}

// SubsetFontName returns the deterministic /Font resource-dictionary key
// for one (font, subset) pair. Content-stream Tf operators and the
// /Resources /Font dict must agree on this name byte for byte, so it is
// derived only from the (font, subset) identity rather than from any
// registration order (unlike a plain counter, which would depend on Go's
// unspecified map iteration order).
func SubsetFontName(font, subset int) pdf.Name {
	return pdf.Name("F" + strconv.Itoa(font) + "_" + strconv.Itoa(subset))
}
