package color

import (
	pdf "github.com/tmr232/capypdf"
)

// ExponentialFunction is a PDF type-2 function: a single-segment
// interpolation between C0 and C1 with exponent N, used as the color
// ramp for axial and radial shadings.
type ExponentialFunction struct {
	Domain [2]float64
	C0, C1 []float64
	N      float64
}

// Dict builds the /FunctionType 2 dictionary for f.
func (f *ExponentialFunction) Dict() pdf.Dict {
	return pdf.Dict{
		"FunctionType": pdf.Integer(2),
		"Domain":       numArray(f.Domain[0], f.Domain[1]),
		"C0":           numArray(f.C0...),
		"C1":           numArray(f.C1...),
		"N":            pdf.Real(f.N),
	}
}

func numArray(vs ...float64) pdf.Array {
	arr := make(pdf.Array, len(vs))
	for i, v := range vs {
		arr[i] = pdf.Real(v)
	}
	return arr
}
