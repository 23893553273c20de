package document

import (
	"strings"
	"testing"

	gcolor "github.com/tmr232/capypdf/color"

	pdf "github.com/tmr232/capypdf"
)

func TestAddAxialShadingRegistersFunctionAndShading(t *testing.T) {
	doc := New(Options{})
	s := &gcolor.AxialShading{
		ColorSpace: gcolor.SpaceDeviceRGB,
		Coords:     [4]float64{0, 0, 100, 0},
		Function: &gcolor.ExponentialFunction{
			Domain: [2]float64{0, 1},
			C0:     []float64{1, 0, 0},
			C1:     []float64{0, 0, 1},
			N:      1,
		},
	}
	id := doc.AddAxialShading(pdf.Name("DeviceRGB"), s)

	p := doc.NewPage(100, 100)
	if err := p.Shade(id); err != nil {
		t.Fatalf("Shade: %v", err)
	}
	content := p.buf.Bytes()
	if !strings.Contains(string(content), "/Sh0 sh") {
		t.Errorf("missing /Sh0 sh operator, got:\n%s", content)
	}
	if _, err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	buf := &strings.Builder{}
	if err := doc.Write(buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), "/ShadingType 2") {
		t.Errorf("output missing the type-2 shading dictionary, got:\n%s", buf.String())
	}
}

func TestAddRadialShadingRegisters(t *testing.T) {
	doc := New(Options{})
	s := &gcolor.RadialShading{
		ColorSpace: gcolor.SpaceDeviceGray,
		Coords:     [6]float64{0, 0, 0, 50, 50, 50},
		Function: &gcolor.ExponentialFunction{
			Domain: [2]float64{0, 1},
			C0:     []float64{0},
			C1:     []float64{1},
			N:      1,
		},
	}
	id := doc.AddRadialShading(pdf.Name("DeviceGray"), s)
	if int(id) != 0 {
		t.Errorf("AddRadialShading id = %d, want 0", id)
	}
}

func TestAddGouraudShadingRejectsColorspaceMismatch(t *testing.T) {
	doc := New(Options{})
	s := &gcolor.GouraudShading{
		ColorSpace: gcolor.SpaceDeviceRGB,
		BBox:       gcolor.ShadingBBox{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1},
		Vertices: []gcolor.Vertex{
			{Flag: 0, X: 0, Y: 0, Color: gcolor.Gray{G: 0.5}},
			{Flag: 0, X: 1, Y: 0, Color: gcolor.RGB{R: 1}},
			{Flag: 0, X: 0, Y: 1, Color: gcolor.RGB{G: 1}},
		},
	}
	if _, err := doc.AddGouraudShading(pdf.Name("DeviceRGB"), s); !errIsKind(err, pdf.ErrColorspaceMismatch) {
		t.Fatalf("AddGouraudShading with a mismatched vertex color err = %v, want ColorspaceMismatch", err)
	}
}

func TestAddGouraudShadingSucceedsWithMatchingColors(t *testing.T) {
	doc := New(Options{})
	s := &gcolor.GouraudShading{
		ColorSpace: gcolor.SpaceDeviceRGB,
		BBox:       gcolor.ShadingBBox{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1},
		Vertices: []gcolor.Vertex{
			{Flag: 0, X: 0, Y: 0, Color: gcolor.RGB{R: 1}},
			{Flag: 0, X: 1, Y: 0, Color: gcolor.RGB{G: 1}},
			{Flag: 0, X: 0, Y: 1, Color: gcolor.RGB{B: 1}},
		},
	}
	id, err := doc.AddGouraudShading(pdf.Name("DeviceRGB"), s)
	if err != nil {
		t.Fatalf("AddGouraudShading: %v", err)
	}
	if int(id) != 0 {
		t.Errorf("AddGouraudShading id = %d, want 0", id)
	}
}

func TestAddCoonsShadingRejectsColorspaceMismatch(t *testing.T) {
	doc := New(Options{})
	s := &gcolor.CoonsShading{
		ColorSpace: gcolor.SpaceDeviceGray,
		BBox:       gcolor.ShadingBBox{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1},
		Patches: []gcolor.CoonsPatch{
			{
				Colors: [4]gcolor.Color{
					gcolor.Gray{G: 0}, gcolor.Gray{G: 1}, gcolor.RGB{R: 1}, gcolor.Gray{G: 0.5},
				},
			},
		},
	}
	if _, err := doc.AddCoonsShading(pdf.Name("DeviceGray"), s); !errIsKind(err, pdf.ErrColorspaceMismatch) {
		t.Fatalf("AddCoonsShading with a mismatched patch color err = %v, want ColorspaceMismatch", err)
	}
}
