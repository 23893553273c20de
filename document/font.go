package document

import (
	"fmt"

	"seehuhn.de/go/sfnt/glyph"

	"github.com/tmr232/capypdf/font"

	pdf "github.com/tmr232/capypdf"
)

// fontEntry holds one loaded font program together with its subsetter and
// the lazily-allocated PDF objects for each subset it has produced.
//
// Each subset becomes a simple (non-composite) PDF font: subsets are
// capped at 256 glyphs precisely because that is the code space of a
// simple font's single-byte character codes, so codepoint -> local glyph
// id is also codepoint -> character code directly.
type fontEntry struct {
	data      *font.Data
	subsetter *font.Subsetter

	fontFileRef pdf.Reference
	haveFile    bool

	subsetRefs map[int]pdf.Reference
}

// fontSubsetRef returns the Reference for (font, subset)'s font dictionary
// object, allocating the whole chain (font data stream, descriptor, font
// dict) the first time this pair is requested. Because the object is
// installed via addDelayed, its dictionary content is only computed once
// padFontSubsets has run and every subset's final glyph list is known.
func (d *Document) fontSubsetRef(id FontID, subset int) pdf.Reference {
	fe, err := d.font(id)
	if err != nil {
		return pdf.Reference{}
	}
	if fe.subsetRefs == nil {
		fe.subsetRefs = make(map[int]pdf.Reference)
	}
	if ref, ok := fe.subsetRefs[subset]; ok {
		return ref
	}

	fontFileRef := d.fontFileRef(fe)
	descriptorRef := d.objects.addDelayed(func(doc *Document) (pdf.Object, []byte, bool, error) {
		return doc.resolveFontDescriptor(fe, subset, fontFileRef)
	})
	fontRef := d.objects.addDelayed(func(doc *Document) (pdf.Object, []byte, bool, error) {
		return doc.resolveFontDict(fe, subset, descriptorRef)
	})

	fe.subsetRefs[subset] = fontRef
	return fontRef
}

// fontFileRef returns the shared embedded-font-program object for fe,
// allocating it once. This embeds the whole parsed font program for
// every subset rather than producing a true per-subset byte-level
// TrueType subset: the subset/local-glyph-id bookkeeping
// is fully implemented, but glyph-table truncation is not.
func (d *Document) fontFileRef(fe *fontEntry) pdf.Reference {
	if fe.haveFile {
		return fe.fontFileRef
	}
	fe.haveFile = true
	fe.fontFileRef = d.objects.addDelayed(func(doc *Document) (pdf.Object, []byte, bool, error) {
		buf := fe.data.Bytes()
		dict := pdf.Dict{"Length1": pdf.Integer(len(buf))}
		return dict, buf, true, nil
	})
	return fe.fontFileRef
}

func (d *Document) resolveFontDescriptor(fe *fontEntry, subsetIdx int, fontFileRef pdf.Reference) (pdf.Object, []byte, bool, error) {
	name := subsetTag(fe, subsetIdx)
	dict := pdf.Dict{
		"Type":        pdf.Name("FontDescriptor"),
		"FontName":    pdf.Name(name),
		"Flags":       pdf.Integer(32), // nonsymbolic
		"FontBBox":    pdf.NewRectangle(0, 0, 1000, 1000),
		"ItalicAngle": pdf.Real(0),
		"Ascent":      pdf.Real(800),
		"Descent":     pdf.Real(-200),
		"CapHeight":   pdf.Real(700),
		"StemV":       pdf.Real(80),
		"FontFile2":   fontFileRef,
	}
	return dict, nil, false, nil
}

func (d *Document) resolveFontDict(fe *fontEntry, subsetIdx int, descriptorRef pdf.Reference) (pdf.Object, []byte, bool, error) {
	sub := fe.subsetter.Subset(subsetIdx)
	if sub == nil {
		return nil, nil, false, pdf.Err(pdf.ErrIndexOutOfBounds)
	}

	n := sub.Len()
	widths := make(pdf.Array, n)
	diffs := pdf.Array{pdf.Integer(0)}
	for i, g := range sub.Glyphs {
		widths[i] = pdf.Integer(500)
		diffs = append(diffs, pdf.Name(glyphName(fe, g.OrigGID, g.Codepoint)))
	}

	dict := pdf.Dict{
		"Type":           pdf.Name("Font"),
		"Subtype":        pdf.Name("TrueType"),
		"BaseFont":       pdf.Name(subsetTag(fe, subsetIdx)),
		"FirstChar":      pdf.Integer(0),
		"LastChar":       pdf.Integer(n - 1),
		"Widths":         widths,
		"FontDescriptor": descriptorRef,
		"Encoding": pdf.Dict{
			"Type":        pdf.Name("Encoding"),
			"Differences": diffs,
		},
	}
	return dict, nil, false, nil
}

func glyphName(fe *fontEntry, gid uint32, fallback rune) string {
	if name := fe.data.GlyphName(glyph.ID(gid)); name != "" {
		return name
	}
	return fmt.Sprintf("uni%04X", fallback)
}

func subsetTag(fe *fontEntry, subsetIdx int) string {
	// Six uppercase letters plus '+' is the PDF convention for
	// subset-tagged base font names (ISO 32000-1 §9.6.4).
	tag := [6]byte{}
	n := subsetIdx + 1
	for i := 5; i >= 0; i-- {
		tag[i] = byte('A' + n%26)
		n /= 26
	}
	base := fe.data.Name()
	if base == "" {
		base = "Font"
	}
	return string(tag[:]) + "+" + base
}
