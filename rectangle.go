package pdf

import (
	"fmt"
	"io"

	"seehuhn.de/go/geom/rect"
)

// Rectangle is a PDF rectangle (MediaBox, BBox, annotation Rect, ...). It
// is backed by seehuhn.de/go/geom/rect.Rect, the same geometry type the
// teacher library uses for page and glyph bounding boxes.
type Rectangle rect.Rect

// NewRectangle builds a Rectangle from corner coordinates, normalizing so
// that LLx<=URx and LLy<=URy as the PDF spec requires.
func NewRectangle(x0, y0, x1, y1 float64) *Rectangle {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return &Rectangle{LLx: x0, LLy: y0, URx: x1, URy: y1}
}

// Width returns URx-LLx.
func (r *Rectangle) Width() float64 { return r.URx - r.LLx }

// Height returns URy-LLy.
func (r *Rectangle) Height() float64 { return r.URy - r.LLy }

// PDF implements the Object interface.
func (r *Rectangle) PDF(w io.Writer) error {
	_, err := fmt.Fprintf(w, "[%s %s %s %s]",
		formatNum(r.LLx), formatNum(r.LLy), formatNum(r.URx), formatNum(r.URy))
	return err
}

func formatNum(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%f", f)
}
