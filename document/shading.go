package document

import (
	gcolor "github.com/tmr232/capypdf/color"

	pdf "github.com/tmr232/capypdf"
)

// shadingEntry records one registered shading's indirect object. Unlike
// fonts, a shading's dictionary never depends on information gathered
// after registration, so it is built immediately.
type shadingEntry struct {
	ref pdf.Reference
}

// addFunction installs fn as its own indirect object and returns the
// reference axial/radial shadings need for their /Function entry.
func (d *Document) addFunction(fn *gcolor.ExponentialFunction) pdf.Reference {
	return d.objects.addFull(fn.Dict(), nil, false)
}

// AddAxialShading registers a type-2 (axial/linear-gradient) shading
// against colorspace cs (a device name such as pdf.Name("DeviceRGB") or
// a resource name previously returned by RegisterICCColorSpace, etc, via
// ColorSpaceRef) and returns its handle.
func (d *Document) AddAxialShading(cs pdf.Object, s *gcolor.AxialShading) ShadingID {
	fnRef := d.addFunction(s.Function)
	ref := d.objects.addFull(s.Dict(cs, fnRef), nil, false)
	d.shadings = append(d.shadings, &shadingEntry{ref: ref})
	return ShadingID(len(d.shadings) - 1)
}

// AddRadialShading registers a type-3 (radial-gradient) shading.
func (d *Document) AddRadialShading(cs pdf.Object, s *gcolor.RadialShading) ShadingID {
	fnRef := d.addFunction(s.Function)
	ref := d.objects.addFull(s.Dict(cs, fnRef), nil, false)
	d.shadings = append(d.shadings, &shadingEntry{ref: ref})
	return ShadingID(len(d.shadings) - 1)
}

// AddGouraudShading registers a type-4 (free-form Gouraud) shading. Every
// vertex's color must already match s.ColorSpace, enforced by
// s.Serialize, which returns pdf.ErrColorspaceMismatch otherwise.
func (d *Document) AddGouraudShading(cs pdf.Object, s *gcolor.GouraudShading) (ShadingID, error) {
	data, err := s.Serialize()
	if err != nil {
		return 0, err
	}
	ref := d.objects.addFull(s.Dict(cs, bitsPerComponent(s.ColorSpace)), data, true)
	d.shadings = append(d.shadings, &shadingEntry{ref: ref})
	return ShadingID(len(d.shadings) - 1), nil
}

// AddCoonsShading registers a type-6 (Coons patch mesh) shading. Only
// full patches are supported: s.Serialize always emits flag 0 and never
// produces the continuation-patch encoding.
func (d *Document) AddCoonsShading(cs pdf.Object, s *gcolor.CoonsShading) (ShadingID, error) {
	data, err := s.Serialize()
	if err != nil {
		return 0, err
	}
	ref := d.objects.addFull(s.Dict(cs, bitsPerComponent(s.ColorSpace)), data, true)
	d.shadings = append(d.shadings, &shadingEntry{ref: ref})
	return ShadingID(len(d.shadings) - 1), nil
}

func bitsPerComponent(cs gcolor.Space) int {
	return 16
}
