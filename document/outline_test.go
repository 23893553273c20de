package document

import (
	"fmt"
	"strings"
	"testing"

	"github.com/tmr232/capypdf/outline"
)

func TestResolveOutlinesEmptyReturnsZeroReference(t *testing.T) {
	doc := New(Options{})
	ref := doc.resolveOutlines()
	if !ref.IsZero() {
		t.Errorf("resolveOutlines() = %v, want the zero reference with no outlines", ref)
	}
}

func TestOutlineTreeTopLevelPrevNextCount(t *testing.T) {
	doc := New(Options{})
	doc.AddOutline(outline.Entry{Title: "One"}, -1)
	doc.AddOutline(outline.Entry{Title: "Two"}, -1)
	doc.AddOutline(outline.Entry{Title: "Three"}, -1)

	p := doc.NewPage(100, 100)
	if _, err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	buf := &strings.Builder{}
	if err := doc.Write(buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "/Count 3") {
		t.Errorf("/Outlines missing /Count 3, got:\n%s", out)
	}
	// Every non-edge entry should carry both /Prev and /Next.
	if strings.Count(out, "/Prev") != 2 {
		t.Errorf("expected 2 /Prev entries (Two and Three), got %d in:\n%s", strings.Count(out, "/Prev"), out)
	}
	if strings.Count(out, "/Next") != 2 {
		t.Errorf("expected 2 /Next entries (One and Two), got %d in:\n%s", strings.Count(out, "/Next"), out)
	}
}

func TestOutlineNestedChildrenGetNegatedCount(t *testing.T) {
	doc := New(Options{})
	root := doc.AddOutline(outline.Entry{Title: "Chapter"}, -1)
	doc.AddOutline(outline.Entry{Title: "Section 1"}, root)
	doc.AddOutline(outline.Entry{Title: "Section 2"}, root)

	p := doc.NewPage(100, 100)
	if _, err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	buf := &strings.Builder{}
	if err := doc.Write(buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), "/Count -2") {
		t.Errorf("parent outline entry missing negated /Count -2, got:\n%s", buf.String())
	}
}

func TestOutlineDestPointsAtPageReference(t *testing.T) {
	doc := New(Options{})
	doc.AddOutline(outline.Entry{Title: "Intro", DestPage: 0}, -1)

	p := doc.NewPage(100, 100)
	pageRef, err := p.Close()
	if err != nil {
		t.Fatalf("Close: %v", err)
	}

	buf := &strings.Builder{}
	if err := doc.Write(buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := fmt.Sprintf("/Dest [%d %d R /XYZ", pageRef.Number, pageRef.Generation)
	if !strings.Contains(buf.String(), want) {
		t.Errorf("outline /Dest does not point at the page reference, got:\n%s\nwant substring %q", buf.String(), want)
	}
}

func TestOutlineStyleFlagsWritten(t *testing.T) {
	doc := New(Options{})
	doc.AddOutline(outline.Entry{Title: "Bold", Bold: true}, -1)

	p := doc.NewPage(100, 100)
	if _, err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	buf := &strings.Builder{}
	if err := doc.Write(buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), "/F 2") {
		t.Errorf("bold outline entry missing /F 2, got:\n%s", buf.String())
	}
}
