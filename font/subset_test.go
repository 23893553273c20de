package font

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestGetGlyphSubsetStableMapping(t *testing.T) {
	s := NewSubsetter(nil)
	sub1, local1 := s.GetGlyphSubset('H')
	sub2, local2 := s.GetGlyphSubset('H')
	if sub1 != sub2 || local1 != local2 {
		t.Fatalf("repeated GetGlyphSubset('H') = (%d,%d) then (%d,%d), want stable",
			sub1, local1, sub2, local2)
	}
}

func TestGetGlyphSubsetAssignsSequentialLocalIDs(t *testing.T) {
	s := NewSubsetter(nil)
	_, lh := s.GetGlyphSubset('H')
	_, li := s.GetGlyphSubset('i')
	if lh != 0 {
		t.Errorf("first codepoint local id = %d, want 0", lh)
	}
	if li != 1 {
		t.Errorf("second distinct codepoint local id = %d, want 1", li)
	}
}

func TestGetGlyphSubsetOpensNewSubsetAt257th(t *testing.T) {
	s := NewSubsetter(nil)
	var lastSubset int
	for i := 0; i < MaxSubsetSize; i++ {
		lastSubset, _ = s.GetGlyphSubset(rune(0x4E00 + i)) // CJK block, distinct codepoints
	}
	if lastSubset != 0 {
		t.Fatalf("first %d codepoints should all land in subset 0, got subset %d", MaxSubsetSize, lastSubset)
	}
	if s.NumSubsets() != 1 {
		t.Fatalf("NumSubsets() = %d, want 1 after exactly %d glyphs", s.NumSubsets(), MaxSubsetSize)
	}

	subsetIdx, localID := s.GetGlyphSubset(rune(0x4E00 + MaxSubsetSize))
	if subsetIdx != 1 {
		t.Errorf("257th distinct codepoint opened subset %d, want 1", subsetIdx)
	}
	if localID != 0 {
		t.Errorf("257th distinct codepoint local id = %d, want 0", localID)
	}
	if s.NumSubsets() != 2 {
		t.Errorf("NumSubsets() = %d, want 2", s.NumSubsets())
	}
}

func TestPadFillsLastSubsetTo32ThenAppendsSpace(t *testing.T) {
	s := NewSubsetter(nil)
	for _, r := range "Hi" {
		s.GetGlyphSubset(r)
	}
	if err := s.Pad(); err != nil {
		t.Fatalf("Pad: %v", err)
	}
	sub := s.Subset(0)
	if sub.Len() != 33 {
		t.Fatalf("padded subset length = %d, want 33", sub.Len())
	}
	spaceGlyph := sub.Glyphs[32]
	if spaceGlyph.Codepoint != ' ' {
		t.Errorf("local glyph id 32 codepoint = %q, want space", spaceGlyph.Codepoint)
	}
}

func TestPadIsNoopWhenSubsetAlreadyLarge(t *testing.T) {
	s := NewSubsetter(nil)
	for i := 0; i < 40; i++ {
		s.GetGlyphSubset(rune(0x4E00 + i))
	}
	before := s.Subset(0).Len()
	if err := s.Pad(); err != nil {
		t.Fatalf("Pad: %v", err)
	}
	after := s.Subset(0).Len()
	if before != after {
		t.Errorf("Pad changed a subset already above the padding target: %d -> %d", before, after)
	}
}

func TestUncheckedInsertDoesNotDedup(t *testing.T) {
	s := NewSubsetter(nil)
	s.GetGlyphSubset('!')
	s.UncheckedInsertGlyphToLastSubset('!')
	if s.Subset(0).Len() != 2 {
		t.Errorf("UncheckedInsertGlyphToLastSubset should not dedup against GetGlyphSubset's map, got len %d", s.Subset(0).Len())
	}
}

func TestGetGlyphSubsetBuildsExpectedGlyphSequence(t *testing.T) {
	s := NewSubsetter(nil)
	for _, r := range "AB" {
		s.GetGlyphSubset(r)
	}

	want := []Glyph{
		{Codepoint: 'A', OrigGID: 0, CID: 0},
		{Codepoint: 'B', OrigGID: 0, CID: 1},
	}
	got := s.Subset(0).Glyphs
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Subset(0).Glyphs mismatch (-want +got):\n%s", diff)
	}
}

func TestSubsetOutOfRangeReturnsNil(t *testing.T) {
	s := NewSubsetter(nil)
	if s.Subset(0) != nil {
		t.Error("Subset(0) on an empty subsetter should be nil")
	}
	if s.Subset(-1) != nil {
		t.Error("Subset(-1) should be nil")
	}
}
