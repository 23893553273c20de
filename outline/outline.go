// Package outline defines the value type for one bookmark entry in a
// document's outline (PDF 1.7 §12.3.3). Sibling/parent linkage,
// /Prev/Next/First/Last/Count bookkeeping, and object numbering are
// resolved by the document package at finalize time, in insertion order
// per parent.
package outline

import pdf "github.com/tmr232/capypdf"

// Entry is one outline (bookmark) entry, prior to being placed in the
// tree by the document package.
type Entry struct {
	Title string
	// DestPage is the 0-based page index this entry jumps to.
	DestPage int
	// Color, if non-nil, sets the outline item's /C entry.
	Color []float64
	Bold  bool
	Italic bool
}

// styleFlags returns the /F-equivalent style bits PDF encodes for Bold/Italic.
func (e Entry) styleFlags() int {
	var f int
	if e.Italic {
		f |= 1
	}
	if e.Bold {
		f |= 2
	}
	return f
}

// StyleFlags is the PDF /F entry.
func (e Entry) StyleFlags() pdf.Integer { return pdf.Integer(e.styleFlags()) }
