// Package font loads TrueType/OpenType font programs and partitions the
// codepoints a document actually uses into bounded subsets, each of
// which becomes a separate embedded PDF font object.
//
// Font parsing itself is an external collaborator: seehuhn.de/go/sfnt
// does the heavy lifting of reading the sfnt container and exposing a
// cmap lookup.
package font

import (
	"bytes"
	"os"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"
)

// ID identifies a loaded font within a document's font registry.
type ID int

// Data is a parsed font program together with the rune-to-glyph cmap
// lookup needed to turn show-text codepoints into glyph indices.
type Data struct {
	Info *sfnt.Font
	cmap cmap.Subtable

	// raw holds the original font file bytes, kept alongside the parsed
	// Info so FontFile2 embedding does not depend on being able to
	// re-serialize a parsed sfnt.Font back to bytes.
	raw []byte
}

// Load parses the font program at path using seehuhn.de/go/sfnt, the
// TrueType/OpenType parser this module treats as an external
// collaborator.
func Load(path string) (*Data, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(body)
}

// Parse is like Load but reads from already-loaded font bytes.
func Parse(body []byte) (*Data, error) {
	info, err := sfnt.Read(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	best, err := info.CMapTable.GetBest()
	if err != nil {
		return nil, err
	}
	raw := make([]byte, len(body))
	copy(raw, body)
	return &Data{Info: info, cmap: best, raw: raw}, nil
}

// Bytes returns the original font program bytes, for embedding as a
// FontFile2 stream.
func (d *Data) Bytes() []byte { return d.raw }

// GlyphName returns the PostScript name of gid, or "" if the font does
// not carry glyph names (common for TrueType fonts without a "post"
// format-2 table).
func (d *Data) GlyphName(gid glyph.ID) string {
	return d.Info.GlyphName(gid)
}

// Name returns the font's PostScript/family name, used as the base of a
// subset's tagged BaseFont name.
func (d *Data) Name() string {
	return d.Info.PostScriptName()
}

// GlyphForRune resolves a Unicode codepoint to a glyph ID using the
// font's cmap, returning false if the font has no glyph for r.
func (d *Data) GlyphForRune(r rune) (glyph.ID, bool) {
	gid := d.cmap.Lookup(r)
	return gid, gid != 0
}

// NumGlyphs returns the number of glyphs in the font program.
func (d *Data) NumGlyphs() int {
	return d.Info.NumGlyphs()
}
