package document

import (
	"github.com/tmr232/capypdf/graphics"

	pdf "github.com/tmr232/capypdf"
)

// patternEntry records one registered pattern's indirect object.
type patternEntry struct {
	ref pdf.Reference
}

// NewPatternContext opens a draw context for a colored tiling pattern's
// repeating cell. Pass the result to AddPattern once the cell has been
// drawn and closed.
func (d *Document) NewPatternContext() *DrawingContext {
	return newDrawingContext(d, KindColorTilingPattern)
}

// AddPattern finalizes dc as a PaintType-1 (colored) tiling pattern with
// the given bounding box, step, and pattern-space matrix, and registers
// it. dc must have been created by this same Document's
// NewPatternContext; passing a context from a different Document fails
// with IncorrectDocumentForObject.
func (d *Document) AddPattern(dc *DrawingContext, bbox *pdf.Rectangle, xStep, yStep float64, m graphics.Matrix) (PatternID, error) {
	if dc.doc != d {
		return 0, pdf.Err(pdf.ErrIncorrectDocumentForObject)
	}
	if dc.kind != KindColorTilingPattern {
		return 0, pdf.Err(pdf.ErrInvalidDrawContextType)
	}
	content, err := dc.finalizeStream()
	if err != nil {
		return 0, err
	}

	dict := pdf.Dict{
		"Type":        pdf.Name("Pattern"),
		"PatternType": pdf.Integer(1),
		"PaintType":   pdf.Integer(1),
		"TilingType":  pdf.Integer(1),
		"BBox":        bbox,
		"XStep":       pdf.Real(xStep),
		"YStep":       pdf.Real(yStep),
		"Resources":   dc.res.Dict(d),
		"Matrix":      matrixArray(m),
	}
	ref := d.objects.addFull(dict, content, d.opts.CompressStreams)
	d.patterns = append(d.patterns, &patternEntry{ref: ref})
	return PatternID(len(d.patterns) - 1), nil
}

func matrixArray(m graphics.Matrix) pdf.Array {
	vals := m.Operands()
	arr := make(pdf.Array, len(vals))
	copy(arr, vals)
	return arr
}
