package graphics

import (
	"fmt"
	"io"
	"math"

	"seehuhn.de/go/geom/matrix"

	pdf "github.com/tmr232/capypdf"
)

// Matrix is a PDF content-stream affine transform, backed by
// seehuhn.de/go/geom/matrix.Matrix.
type Matrix matrix.Matrix

// Identity is the identity transform.
var Identity = Matrix(matrix.Identity)

// Translate returns the matrix for a translation by (dx, dy).
func Translate(dx, dy float64) Matrix { return Matrix(matrix.Translate(dx, dy)) }

// Scale returns the matrix for scaling by (sx, sy).
func Scale(sx, sy float64) Matrix { return Matrix(matrix.Scale(sx, sy)) }

// Rotate returns the matrix for a rotation by angle radians.
func Rotate(angle float64) Matrix {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return Matrix{cos, sin, -sin, cos, 0, 0}
}

// operands returns the six cm operands in PDF order: a b c d e f.
func (m Matrix) operands() []pdf.Object {
	return []pdf.Object{
		pdf.Real(m[0]), pdf.Real(m[1]), pdf.Real(m[2]),
		pdf.Real(m[3]), pdf.Real(m[4]), pdf.Real(m[5]),
	}
}

// Operands is the exported form of operands, for packages outside
// graphics that need the raw six-element array (e.g. document's
// /Matrix entries for patterns and form XObjects).
func (m Matrix) Operands() []pdf.Object { return m.operands() }

func (m Matrix) writeOperator(w io.Writer, indent string) error {
	_, err := fmt.Fprintf(w, "%s%s %s %s %s %s %s cm\n", indent,
		formatReal(m[0]), formatReal(m[1]), formatReal(m[2]),
		formatReal(m[3]), formatReal(m[4]), formatReal(m[5]))
	return err
}

// WriteCM writes this matrix as a "cm" content-stream operator, indented
// by indent, for use by packages outside graphics (document).
func (m Matrix) WriteCM(w io.Writer, indent string) error {
	return m.writeOperator(w, indent)
}
