package document

import (
	"strconv"

	gcolor "github.com/tmr232/capypdf/color"

	pdf "github.com/tmr232/capypdf"
)

// addICCObject returns the indirect reference for id's ICC profile
// stream, allocating it the first time any caller needs it (an ICC
// profile registered but never referenced by a colorspace or output
// intent costs nothing in the final file).
func (d *Document) addICCObject(id ICCID) pdf.Reference {
	if d.iccRefs == nil {
		d.iccRefs = make(map[ICCID]pdf.Reference)
	}
	if ref, ok := d.iccRefs[id]; ok {
		return ref
	}
	profile, ok := d.icc.Get(gcolor.ICCID(id))
	if !ok {
		return pdf.Reference{}
	}
	ref := d.objects.addFull(pdf.Dict{
		"N": pdf.Integer(profile.NumChannels),
	}, profile.Bytes, true)
	d.iccRefs[id] = ref
	return ref
}

// ColorSpaceRef resolves one of the non-device colorspaces registered
// through RegisterLabColorSpace / RegisterICCColorSpace /
// RegisterSeparation, satisfying graphics.Refs so (*graphics.Resources).Dict
// can build a page's /Resources /ColorSpace entries without guessing at
// the colorspace array shape itself.
func (d *Document) ColorSpaceRef(name pdf.Name) pdf.Object {
	return d.colorSpaces[name]
}

func (d *Document) nextColorSpaceName() pdf.Name {
	name := pdf.Name("CS" + strconv.Itoa(d.colorSpaceSeq))
	d.colorSpaceSeq++
	return name
}

// RegisterLabColorSpace declares a /Lab colorspace with the given white
// point and component ranges, returning the resource name to embed in
// color.Lab values drawn with it.
func (d *Document) RegisterLabColorSpace(whitePoint [3]float64, aRange, bRange [2]float64) pdf.Name {
	name := d.nextColorSpaceName()
	d.registerColorSpace(name, pdf.Array{
		pdf.Name("Lab"),
		pdf.Dict{
			"WhitePoint": numArray(whitePoint[0], whitePoint[1], whitePoint[2]),
			"Range":      numArray(aRange[0], aRange[1], bRange[0], bRange[1]),
		},
	})
	return name
}

// RegisterICCColorSpace declares an /ICCBased colorspace over a
// previously registered ICC profile, returning the resource name to
// embed in color.ICC values drawn with it.
func (d *Document) RegisterICCColorSpace(id ICCID) pdf.Name {
	name := d.nextColorSpaceName()
	ref := d.addICCObject(id)
	d.registerColorSpace(name, pdf.Array{pdf.Name("ICCBased"), ref})
	return name
}

// RegisterSeparation declares a /Separation colorspace with the given
// colorant name, alternate space, and tint-transform function,
// returning the resource name to embed in color.Separation values drawn
// with it.
func (d *Document) RegisterSeparation(colorant string, alternate pdf.Name, tintTransform pdf.Object) pdf.Name {
	name := d.nextColorSpaceName()
	d.registerColorSpace(name, pdf.Array{
		pdf.Name("Separation"),
		pdf.Name(colorant),
		alternate,
		tintTransform,
	})
	return name
}

func (d *Document) registerColorSpace(name pdf.Name, def pdf.Object) {
	if d.colorSpaces == nil {
		d.colorSpaces = make(map[pdf.Name]pdf.Object)
	}
	d.colorSpaces[name] = def
}

func numArray(vs ...float64) pdf.Array {
	arr := make(pdf.Array, len(vs))
	for i, v := range vs {
		arr[i] = pdf.Real(v)
	}
	return arr
}

