package color

import (
	"encoding/binary"
	"errors"
	"testing"

	pdf "github.com/tmr232/capypdf"
)

func bbox() ShadingBBox { return ShadingBBox{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100} }

func TestGouraudSerializeVertexLayout(t *testing.T) {
	s := &GouraudShading{
		ColorSpace: SpaceDeviceRGB,
		BBox:       bbox(),
		Vertices: []Vertex{
			{Flag: 0, X: 0, Y: 0, Color: RGB{R: 1, G: 0, B: 0}},
		},
	}
	data, err := s.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	// flag(1) + x(4) + y(4) + 3 channels * 2 bytes = 15 bytes.
	if len(data) != 15 {
		t.Fatalf("len(data) = %d, want 15", len(data))
	}
	if data[0] != 0 {
		t.Errorf("flag byte = %d, want 0", data[0])
	}
	x := binary.BigEndian.Uint32(data[1:5])
	y := binary.BigEndian.Uint32(data[5:9])
	if x != 0 || y != 0 {
		t.Errorf("coords = (%d,%d), want (0,0) for vertex at bbox origin", x, y)
	}
	red := binary.BigEndian.Uint16(data[9:11])
	if red == 0 {
		t.Error("red channel should be near max for R=1")
	}
}

func TestGouraudSerializeColorspaceMismatchFails(t *testing.T) {
	s := &GouraudShading{
		ColorSpace: SpaceDeviceRGB,
		BBox:       bbox(),
		Vertices: []Vertex{
			{Flag: 0, X: 0, Y: 0, Color: Gray{G: 0.5}},
		},
	}
	_, err := s.Serialize()
	if !errors.Is(err, pdf.Err(pdf.ErrColorspaceMismatch)) {
		t.Errorf("Serialize with mismatched color = %v, want ErrColorspaceMismatch", err)
	}
}

func TestCoonsSerializeFullPatch(t *testing.T) {
	var pts [12][2]float64
	for i := range pts {
		pts[i] = [2]float64{float64(i), float64(i)}
	}
	s := &CoonsShading{
		ColorSpace: SpaceDeviceGray,
		BBox:       ShadingBBox{MinX: 0, MinY: 0, MaxX: 11, MaxY: 11},
		Patches: []CoonsPatch{
			{Points: pts, Colors: [4]Color{
				Gray{G: 0}, Gray{G: 0.33}, Gray{G: 0.66}, Gray{G: 1},
			}},
		},
	}
	data, err := s.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	// flag(1) + 12 points * 8 bytes + 4 colors * 1 channel * 2 bytes = 1+96+8 = 105.
	if len(data) != 105 {
		t.Fatalf("len(data) = %d, want 105", len(data))
	}
	if data[0] != 0 {
		t.Errorf("patch flag = %d, want 0 (full patch)", data[0])
	}
}

func TestCoonsSerializeColorspaceMismatchFails(t *testing.T) {
	var pts [12][2]float64
	s := &CoonsShading{
		ColorSpace: SpaceDeviceRGB,
		BBox:       ShadingBBox{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1},
		Patches: []CoonsPatch{
			{Points: pts, Colors: [4]Color{
				Gray{G: 0}, Gray{G: 0}, Gray{G: 0}, Gray{G: 0},
			}},
		},
	}
	_, err := s.Serialize()
	if !errors.Is(err, pdf.Err(pdf.ErrColorspaceMismatch)) {
		t.Errorf("Serialize with mismatched color = %v, want ErrColorspaceMismatch", err)
	}
}

func TestAxialShadingDict(t *testing.T) {
	s := &AxialShading{
		ColorSpace: SpaceDeviceRGB,
		Coords:     [4]float64{0, 0, 100, 0},
		Function:   &ExponentialFunction{Domain: [2]float64{0, 1}, C0: []float64{1, 0, 0}, C1: []float64{0, 0, 1}, N: 1},
		Extend:     [2]bool{true, true},
	}
	dict := s.Dict(pdf.Name("DeviceRGB"), pdf.Reference{Number: 3})
	if dict["ShadingType"] != pdf.Integer(2) {
		t.Errorf("ShadingType = %v, want 2", dict["ShadingType"])
	}
	want := pdf.Reference{Number: 3}
	if dict["Function"] != want {
		t.Errorf("Function ref not wired through")
	}
}

func TestRadialShadingDict(t *testing.T) {
	s := &RadialShading{
		ColorSpace: SpaceDeviceGray,
		Coords:     [6]float64{0, 0, 0, 0, 0, 50},
		Function:   &ExponentialFunction{Domain: [2]float64{0, 1}, C0: []float64{0}, C1: []float64{1}, N: 1},
	}
	dict := s.Dict(pdf.Name("DeviceGray"), pdf.Reference{Number: 4})
	if dict["ShadingType"] != pdf.Integer(3) {
		t.Errorf("ShadingType = %v, want 3", dict["ShadingType"])
	}
}
