package font

import (
	"seehuhn.de/go/postscript/cid"

	pdf "github.com/tmr232/capypdf"
)

// MaxSubsetSize is the maximum number of glyphs a single font subset may
// hold. Once a subset reaches this size, the next unseen codepoint opens
// a new subset. Each subset becomes a distinct embedded PDF font object.
const MaxSubsetSize = 256

// paddingTarget is the subset size the padding rule fills up to before
// appending the space glyph, so that local glyph id 0x20 always maps to
// ASCII space.
const paddingTarget = 0x20

// maxPaddingAttempts bounds the padding loop over synthetic codepoints;
// exceeding it without reaching paddingTarget is reported as
// ErrUnreachable instead of aborting the process.
const maxPaddingAttempts = 100

// Glyph is one entry in a subset: the codepoint it represents and the
// original glyph ID it resolves to in the source font.
type Glyph struct {
	Codepoint rune
	OrigGID   uint32
	CID       cid.CID
}

// Subset is an ordered, ≤256-entry partition of a font's used
// codepoints. Local glyph index equals position within Glyphs.
type Subset struct {
	Glyphs []Glyph
	index  map[rune]int
}

func newSubset() *Subset {
	return &Subset{index: make(map[rune]int)}
}

// Len returns the number of glyphs currently in the subset.
func (s *Subset) Len() int { return len(s.Glyphs) }

// Subsetter partitions a font's used codepoints into bounded subsets and
// maintains a stable (codepoint) -> (subset, local glyph id) mapping.
type Subsetter struct {
	Font    *Data
	subsets []*Subset
}

// NewSubsetter creates a subsetter for the given font.
func NewSubsetter(f *Data) *Subsetter {
	return &Subsetter{Font: f}
}

// NumSubsets returns how many subsets have been opened so far.
func (s *Subsetter) NumSubsets() int { return len(s.subsets) }

// Subset returns the i'th subset, or nil if out of range.
func (s *Subsetter) Subset(i int) *Subset {
	if i < 0 || i >= len(s.subsets) {
		return nil
	}
	return s.subsets[i]
}

// GetGlyphSubset resolves codepoint to a (subset index, local glyph id)
// pair. Repeated calls for the same codepoint always return the same
// pair. If the codepoint has not been seen, it is appended to the last
// subset if that subset has room, or to a freshly opened subset
// otherwise.
func (s *Subsetter) GetGlyphSubset(codepoint rune) (subsetIndex int, localGlyphID byte) {
	for i, sub := range s.subsets {
		if local, ok := sub.index[codepoint]; ok {
			return i, byte(local)
		}
	}

	if len(s.subsets) == 0 || s.subsets[len(s.subsets)-1].Len() >= MaxSubsetSize {
		s.subsets = append(s.subsets, newSubset())
	}
	last := s.subsets[len(s.subsets)-1]
	local := last.Len()

	var origGID uint32
	if s.Font != nil {
		if gid, ok := s.Font.GlyphForRune(codepoint); ok {
			origGID = uint32(gid)
		}
	}
	last.Glyphs = append(last.Glyphs, Glyph{Codepoint: codepoint, OrigGID: origGID, CID: cid.CID(local)})
	last.index[codepoint] = local

	return len(s.subsets) - 1, byte(local)
}

// UncheckedInsertGlyphToLastSubset appends codepoint to the last subset
// without deduplicating against existing entries. Used only by the
// padding routine, which intentionally wants a specific local glyph id
// for the space character regardless of whether it was already used.
func (s *Subsetter) UncheckedInsertGlyphToLastSubset(codepoint rune) {
	if len(s.subsets) == 0 {
		s.subsets = append(s.subsets, newSubset())
	}
	last := s.subsets[len(s.subsets)-1]
	local := last.Len()

	var origGID uint32
	if s.Font != nil {
		if gid, ok := s.Font.GlyphForRune(codepoint); ok {
			origGID = uint32(gid)
		}
	}
	last.Glyphs = append(last.Glyphs, Glyph{Codepoint: codepoint, OrigGID: origGID, CID: cid.CID(local)})
	last.index[codepoint] = local
}

// Pad fills the last subset up to 32 entries with synthetic codepoints
// starting at '!' (0x21), then appends the space codepoint — making
// local glyph id 0x20 the space character so raw text literals
// containing spaces render sensibly. If the subset has not reached 32
// entries within 100 attempts, Pad reports pdf.ErrUnreachable rather
// than aborting the process.
func (s *Subsetter) Pad() error {
	if len(s.subsets) == 0 {
		s.subsets = append(s.subsets, newSubset())
	}
	subsetIndex := len(s.subsets) - 1
	sub := s.subsets[subsetIndex]
	if sub.Len() > paddingTarget {
		return nil
	}

	padded := false
	for i := 0; i < maxPaddingAttempts; i++ {
		if sub.Len() == paddingTarget {
			padded = true
			break
		}
		codepoint := rune('!') + rune(i)
		s.UncheckedInsertGlyphToLastSubset(codepoint)
	}
	if !padded {
		return pdf.Errf(pdf.ErrUnreachable, "font subset padding failed for subset %d", subsetIndex)
	}

	s.UncheckedInsertGlyphToLastSubset(' ')
	return nil
}
