package color

import (
	"testing"

	pdf "github.com/tmr232/capypdf"
)

func TestExponentialFunctionDict(t *testing.T) {
	f := &ExponentialFunction{
		Domain: [2]float64{0, 1},
		C0:     []float64{1, 1, 1},
		C1:     []float64{0, 0, 0},
		N:      1,
	}
	dict := f.Dict()
	if dict["FunctionType"] != pdf.Integer(2) {
		t.Errorf("FunctionType = %v, want 2", dict["FunctionType"])
	}
	c0, ok := dict["C0"].(pdf.Array)
	if !ok || len(c0) != 3 {
		t.Fatalf("C0 = %v, want a 3-element array", dict["C0"])
	}
	if dict["N"] != pdf.Real(1) {
		t.Errorf("N = %v, want 1", dict["N"])
	}
}
