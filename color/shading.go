package color

import (
	"bytes"
	"encoding/binary"
	"math"

	pdf "github.com/tmr232/capypdf"
)

// ShadingBBox is the declared coordinate extent a free-form or Coons
// shading's vertex coordinates are expressed as a fraction of.
type ShadingBBox struct {
	MinX, MinY, MaxX, MaxY float64
}

func (b ShadingBBox) ratio(x, y float64) (float64, float64) {
	return (x - b.MinX) / (b.MaxX - b.MinX), (y - b.MinY) / (b.MaxY - b.MinY)
}

// Vertex is one corner of a free-form Gouraud-shaded triangle (shading
// type 4). Flag follows the PDF edge-flag convention: 0 starts a new
// triangle, 1/2 share an edge with the previous one.
type Vertex struct {
	Flag  byte
	X, Y  float64
	Color Color
}

// AxialShading is a PDF type-2 shading (a linear gradient between two
// points) built on top of an ExponentialFunction color ramp.
type AxialShading struct {
	ColorSpace Space
	Coords     [4]float64 // x0 y0 x1 y1
	Function   *ExponentialFunction
	Extend     [2]bool
}

// Dict builds the shading dictionary; the function must separately be
// registered as an indirect object and referenced here.
func (s *AxialShading) Dict(csName pdf.Object, fn pdf.Reference) pdf.Dict {
	return pdf.Dict{
		"ShadingType": pdf.Integer(2),
		"ColorSpace":  csName,
		"Coords":      numArray(s.Coords[0], s.Coords[1], s.Coords[2], s.Coords[3]),
		"Function":    fn,
		"Extend":      pdf.Array{pdf.Bool(s.Extend[0]), pdf.Bool(s.Extend[1])},
	}
}

// RadialShading is a PDF type-3 shading (a gradient between two circles).
type RadialShading struct {
	ColorSpace Space
	Coords     [6]float64 // x0 y0 r0 x1 y1 r1
	Function   *ExponentialFunction
	Extend     [2]bool
}

// Dict builds the shading dictionary.
func (s *RadialShading) Dict(csName pdf.Object, fn pdf.Reference) pdf.Dict {
	return pdf.Dict{
		"ShadingType": pdf.Integer(3),
		"ColorSpace":  csName,
		"Coords": numArray(s.Coords[0], s.Coords[1], s.Coords[2],
			s.Coords[3], s.Coords[4], s.Coords[5]),
		"Function": fn,
		"Extend":   pdf.Array{pdf.Bool(s.Extend[0]), pdf.Bool(s.Extend[1])},
	}
}

// GouraudShading is a PDF type-4 (free-form Gouraud-shaded triangle
// mesh) shading.
type GouraudShading struct {
	ColorSpace Space
	BBox       ShadingBBox
	Vertices   []Vertex
}

// Dict builds the shading dictionary (without the stream data, which
// callers obtain from Serialize and attach separately).
func (s *GouraudShading) Dict(csName pdf.Object, bitsPerComponent int) pdf.Dict {
	return pdf.Dict{
		"ShadingType":       pdf.Integer(4),
		"ColorSpace":        csName,
		"BitsPerCoordinate": pdf.Integer(32),
		"BitsPerComponent":  pdf.Integer(bitsPerComponent),
		"BitsPerFlag":       pdf.Integer(8),
		"Decode":            gouraudDecode(s.ColorSpace, s.BBox),
	}
}

func gouraudDecode(cs Space, b ShadingBBox) pdf.Array {
	decode := pdf.Array{
		pdf.Real(b.MinX), pdf.Real(b.MaxX),
		pdf.Real(b.MinY), pdf.Real(b.MaxY),
	}
	for range numChannels(cs) {
		decode = append(decode, pdf.Real(0), pdf.Real(1))
	}
	return decode
}

func numChannels(cs Space) int {
	switch cs {
	case SpaceDeviceGray:
		return 1
	case SpaceDeviceCMYK:
		return 4
	default:
		return 3
	}
}

// Serialize encodes the mesh data for a type-4 shading: for every
// vertex, one flag byte, two 32-bit big-endian fixed-point coordinates
// (fractions of BBox), and per-channel 16-bit big-endian color values.
// The colorspace of each vertex's Color must match s.ColorSpace, or the
// whole shading fails with pdf.ErrColorspaceMismatch.
func (s *GouraudShading) Serialize() ([]byte, error) {
	buf := &bytes.Buffer{}
	for _, v := range s.Vertices {
		xr, yr := s.BBox.ratio(v.X, v.Y)
		buf.WriteByte(v.Flag)
		if err := appendFixed32(buf, xr); err != nil {
			return nil, err
		}
		if err := appendFixed32(buf, yr); err != nil {
			return nil, err
		}
		if err := appendColor16(buf, s.ColorSpace, v.Color); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// CoonsPatch is one full (non-continuation) Coons patch: 12 Bezier
// control points and 4 corner colors. Continuation patches (which reuse
// an edge from the previous patch and carry fewer points) are not
// supported.
type CoonsPatch struct {
	Points [12][2]float64
	Colors [4]Color
}

// CoonsShading is a PDF type-6 shading (tensor-free Coons patch mesh).
type CoonsShading struct {
	ColorSpace Space
	BBox       ShadingBBox
	Patches    []CoonsPatch
}

// Dict builds the shading dictionary.
func (s *CoonsShading) Dict(csName pdf.Object, bitsPerComponent int) pdf.Dict {
	return pdf.Dict{
		"ShadingType":       pdf.Integer(6),
		"ColorSpace":        csName,
		"BitsPerCoordinate": pdf.Integer(32),
		"BitsPerComponent":  pdf.Integer(bitsPerComponent),
		"BitsPerFlag":       pdf.Integer(8),
		"Decode":            gouraudDecode(s.ColorSpace, s.BBox),
	}
}

// Serialize encodes the patch mesh data. Every patch is written with
// flag 0 (a new, independent patch) since only full patches are
// supported.
func (s *CoonsShading) Serialize() ([]byte, error) {
	buf := &bytes.Buffer{}
	for _, patch := range s.Patches {
		buf.WriteByte(0)
		for _, p := range patch.Points {
			xr, yr := s.BBox.ratio(p[0], p[1])
			if err := appendFixed32(buf, xr); err != nil {
				return nil, err
			}
			if err := appendFixed32(buf, yr); err != nil {
				return nil, err
			}
		}
		for _, c := range patch.Colors {
			if err := appendColor16(buf, s.ColorSpace, c); err != nil {
				return nil, err
			}
		}
	}
	return buf.Bytes(), nil
}

func appendFixed32(buf *bytes.Buffer, ratio float64) error {
	if ratio < 0 || ratio > 1 {
		return pdf.Err(pdf.ErrColorOutOfRange)
	}
	v := uint32(math.MaxUint32 * ratio)
	return binary.Write(buf, binary.BigEndian, v)
}

func appendColor16(buf *bytes.Buffer, cs Space, c Color) error {
	channels, err := channelValues(cs, c)
	if err != nil {
		return err
	}
	for _, v := range channels {
		if v < 0 || v > 1 {
			return pdf.Err(pdf.ErrColorOutOfRange)
		}
		if err := binary.Write(buf, binary.BigEndian, uint16(math.MaxUint16*v)); err != nil {
			return err
		}
	}
	return nil
}

func channelValues(cs Space, c Color) ([]float64, error) {
	switch cs {
	case SpaceDeviceRGB:
		rgb, ok := c.(RGB)
		if !ok {
			return nil, pdf.Err(pdf.ErrColorspaceMismatch)
		}
		return []float64{rgb.R, rgb.G, rgb.B}, nil
	case SpaceDeviceGray:
		g, ok := c.(Gray)
		if !ok {
			return nil, pdf.Err(pdf.ErrColorspaceMismatch)
		}
		return []float64{g.G}, nil
	case SpaceDeviceCMYK:
		cmyk, ok := c.(CMYK)
		if !ok {
			return nil, pdf.Err(pdf.ErrColorspaceMismatch)
		}
		return []float64{cmyk.C, cmyk.M, cmyk.Y, cmyk.K}, nil
	default:
		return nil, pdf.Errf(pdf.ErrUnsupportedFormat, "shading colorspace %v not supported for mesh shadings", cs)
	}
}
