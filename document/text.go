package document

import (
	"bytes"

	"github.com/tmr232/capypdf/graphics"

	pdf "github.com/tmr232/capypdf"
)

// nameOperand renders name the way pdf.Name serializes itself, for
// building operator text that embeds a resource name directly (e.g. the
// operand of Tf) without going through writeOperands.
func nameOperand(name pdf.Name) string {
	buf := &bytes.Buffer{}
	_ = name.PDF(buf)
	return buf.String()
}

// writeShowOp emits "<string> Tj", where string is PDF-escaped via
// pdf.String's own serialization.
func (dc *DrawingContext) writeShowOp(bytesOut []byte) error {
	if dc.err != nil {
		return dc.err
	}
	buf := &bytes.Buffer{}
	if err := pdf.String(bytesOut).PDF(buf); err != nil {
		return dc.fail(err)
	}
	return dc.writeOp("%s Tj", buf.String())
}

// Glyph is one positioned glyph in an explicit glyph run (render_glyphs);
// unlike ShowText, the caller supplies exact positions rather than
// relying on the font's advance widths.
type Glyph struct {
	Codepoint rune
	X, Y      float64
}

// ShowText begins a text object, selects font/size, positions the
// cursor, and shows text, emitting a Tf operator every time the
// subsetter assigns a different subset than the previous codepoint.
func (dc *DrawingContext) ShowText(id FontID, text string, pointSize, x, y float64) error {
	fe, err := dc.doc.font(id)
	if err != nil {
		return dc.fail(err)
	}

	if err := dc.BeginText(); err != nil {
		return err
	}
	if err := dc.writeOp("%s %s Td", num(x), num(y)); err != nil {
		return err
	}

	currentSubset := -1
	var run []byte
	flush := func() error {
		if len(run) == 0 {
			return nil
		}
		if err := dc.writeShowOp(run); err != nil {
			return err
		}
		run = nil
		return nil
	}

	for _, r := range text {
		subset, local := fe.subsetter.GetGlyphSubset(r)
		dc.res.UseSubsetFont(int(id), subset)
		if subset != currentSubset {
			if err := flush(); err != nil {
				return err
			}
			dc.doc.fontSubsetRef(id, subset)
			if err := dc.writeOp("%s %s Tf", nameOperand(graphics.SubsetFontName(int(id), subset)), num(pointSize)); err != nil {
				return err
			}
			currentSubset = subset
		}
		run = append(run, local)
	}
	if err := flush(); err != nil {
		return err
	}

	return dc.EndText()
}

// RenderGlyphs draws an explicit glyph run, one Td+Tj pair per glyph,
// interleaving Tf whenever the resolved subset changes. Used for
// precisely kerned or positioned runs rather than simple left-to-right
// text.
func (dc *DrawingContext) RenderGlyphs(id FontID, glyphs []Glyph, pointSize float64) error {
	fe, err := dc.doc.font(id)
	if err != nil {
		return dc.fail(err)
	}
	if err := dc.BeginText(); err != nil {
		return err
	}

	currentSubset := -1
	for _, g := range glyphs {
		subset, local := fe.subsetter.GetGlyphSubset(g.Codepoint)
		dc.res.UseSubsetFont(int(id), subset)
		if subset != currentSubset {
			dc.doc.fontSubsetRef(id, subset)
			if err := dc.writeOp("%s %s Tf", nameOperand(graphics.SubsetFontName(int(id), subset)), num(pointSize)); err != nil {
				return err
			}
			currentSubset = subset
		}
		if err := dc.writeOp("%s %s Td", num(g.X), num(g.Y)); err != nil {
			return err
		}
		if err := dc.writeShowOp([]byte{local}); err != nil {
			return err
		}
	}

	return dc.EndText()
}
