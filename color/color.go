// Package color implements the polymorphic PDF color model: device
// colors, ICC-based colors, Lab, separations, and patterns, plus the
// dictionaries needed to declare their color spaces. Color is a tagged
// variant dispatched by a type switch rather than by an inheritance
// hierarchy.
package color

import (
	"fmt"

	pdf "github.com/tmr232/capypdf"
)

// Space identifies which PDF color space family a Color belongs to, for
// resource registration and for the colorspace<->color match check used
// by shading types 4 and 6.
type Space int

const (
	SpaceDeviceGray Space = iota
	SpaceDeviceRGB
	SpaceDeviceCMYK
	SpaceICCBased
	SpaceLab
	SpaceSeparation
	SpacePattern
)

// Color is a tagged union over the color kinds a draw context can set as
// the current stroke or non-stroke color.
type Color interface {
	Space() Space
	// operator returns the PDF color-setting operator name and operand
	// values appropriate for stroke (true) or non-stroke (false) use,
	// e.g. "RG"/"rg" for DeviceRGB.
	operator(stroke bool) (pdf.Name, []pdf.Object)
}

// Gray is a DeviceGray color; g must be in [0,1].
type Gray struct{ G float64 }

func (Gray) Space() Space { return SpaceDeviceGray }
func (c Gray) operator(stroke bool) (pdf.Name, []pdf.Object) {
	if stroke {
		return "G", []pdf.Object{pdf.Real(c.G)}
	}
	return "g", []pdf.Object{pdf.Real(c.G)}
}

// RGB is a DeviceRGB color; each channel must be in [0,1].
type RGB struct{ R, G, B float64 }

func (RGB) Space() Space { return SpaceDeviceRGB }
func (c RGB) operator(stroke bool) (pdf.Name, []pdf.Object) {
	args := []pdf.Object{pdf.Real(c.R), pdf.Real(c.G), pdf.Real(c.B)}
	if stroke {
		return "RG", args
	}
	return "rg", args
}

// CMYK is a DeviceCMYK color; each channel must be in [0,1].
type CMYK struct{ C, M, Y, K float64 }

func (CMYK) Space() Space { return SpaceDeviceCMYK }
func (c CMYK) operator(stroke bool) (pdf.Name, []pdf.Object) {
	args := []pdf.Object{pdf.Real(c.C), pdf.Real(c.M), pdf.Real(c.Y), pdf.Real(c.K)}
	if stroke {
		return "K", args
	}
	return "k", args
}

// Lab is a color in a document-registered Lab color space.
type Lab struct {
	ColorSpaceName pdf.Name // resource name of the /Lab colorspace, e.g. /CS0
	L, A, B        float64
}

func (Lab) Space() Space { return SpaceLab }
func (c Lab) operator(stroke bool) (pdf.Name, []pdf.Object) {
	args := []pdf.Object{pdf.Real(c.L), pdf.Real(c.A), pdf.Real(c.B)}
	if stroke {
		return "SCN", args
	}
	return "scn", args
}

// ICC is a color in a document-registered ICC-based color space.
type ICC struct {
	ColorSpaceName pdf.Name
	Values         []float64
}

func (ICC) Space() Space { return SpaceICCBased }
func (c ICC) operator(stroke bool) (pdf.Name, []pdf.Object) {
	args := make([]pdf.Object, len(c.Values))
	for i, v := range c.Values {
		args[i] = pdf.Real(v)
	}
	if stroke {
		return "SCN", args
	}
	return "scn", args
}

// Separation is a color in a document-registered Separation or
// DeviceN color space; Tint is the single control-value fraction.
type Separation struct {
	ColorSpaceName pdf.Name
	Tint           float64
}

func (Separation) Space() Space { return SpaceSeparation }
func (c Separation) operator(stroke bool) (pdf.Name, []pdf.Object) {
	args := []pdf.Object{pdf.Real(c.Tint)}
	if stroke {
		return "SCN", args
	}
	return "scn", args
}

// Pattern selects a tiling or shading pattern as the current color;
// Underlying, if non-nil, is the base color used for uncolored tiling
// patterns.
type Pattern struct {
	PatternName pdf.Name
	Underlying  Color
}

func (Pattern) Space() Space { return SpacePattern }
func (c Pattern) operator(stroke bool) (pdf.Name, []pdf.Object) {
	var args []pdf.Object
	if c.Underlying != nil {
		_, uargs := c.Underlying.operator(stroke)
		args = append(args, uargs...)
	}
	args = append(args, c.PatternName)
	if stroke {
		return "SCN", args
	}
	return "scn", args
}

// Operator exposes the operator name and operands for c, for use by
// document.DrawingContext's color setters.
func Operator(c Color, stroke bool) (pdf.Name, []pdf.Object) {
	return c.operator(stroke)
}

// Validate checks that every channel value of c lies in its valid range
// [0, 1], returning pdf.ErrColorOutOfRange otherwise.
func Validate(c Color) error {
	inRange := func(v float64) bool { return v >= 0 && v <= 1 }
	switch c := c.(type) {
	case Gray:
		if !inRange(c.G) {
			return pdf.Errf(pdf.ErrColorOutOfRange, "gray value %v out of range", c.G)
		}
	case RGB:
		for _, v := range []float64{c.R, c.G, c.B} {
			if !inRange(v) {
				return pdf.Errf(pdf.ErrColorOutOfRange, "rgb value %v out of range", v)
			}
		}
	case CMYK:
		for _, v := range []float64{c.C, c.M, c.Y, c.K} {
			if !inRange(v) {
				return pdf.Errf(pdf.ErrColorOutOfRange, "cmyk value %v out of range", v)
			}
		}
	case Lab:
		// L in [0,100]; a and b are not range-checked.
		if c.L < 0 || c.L > 100 {
			return pdf.Errf(pdf.ErrColorOutOfRange, "Lab L value %v out of range", c.L)
		}
	case Separation:
		if !inRange(c.Tint) {
			return pdf.Errf(pdf.ErrColorOutOfRange, "separation tint %v out of range", c.Tint)
		}
	}
	return nil
}

func (s Space) String() string {
	switch s {
	case SpaceDeviceGray:
		return "DeviceGray"
	case SpaceDeviceRGB:
		return "DeviceRGB"
	case SpaceDeviceCMYK:
		return "DeviceCMYK"
	case SpaceICCBased:
		return "ICCBased"
	case SpaceLab:
		return "Lab"
	case SpaceSeparation:
		return "Separation"
	case SpacePattern:
		return "Pattern"
	default:
		return fmt.Sprintf("Space(%d)", int(s))
	}
}
