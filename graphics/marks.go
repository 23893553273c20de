package graphics

import pdf "github.com/tmr232/capypdf"

// MarkedContent describes one BMC/BDC invocation: a tag and, for BDC,
// either an inline property dictionary, an optional-content membership,
// or (when HasStructureItem is set) the structure-item identity that
// should receive this MCID.
//
// HasStructureItem/HasOCG are separate bool flags rather than "non-zero"
// sentinels on StructureItem/OCGIndex because both are 0-based handles:
// the very first structure item or OCG registered has index 0, which
// would be indistinguishable from "unset" under a zero-value check.
type MarkedContent struct {
	Tag        pdf.Name
	Properties pdf.Dict

	// HasStructureItem marks this as the structure-tagging form of BDC:
	// the PDF spec's /Tag /MCID construct, which also records this
	// MCID's membership in the page's parent tree.
	HasStructureItem bool
	StructureItem    int

	// HasOCG marks this as an optional-content membership BDC,
	// referencing the OCG at OCGIndex through the page's /Properties
	// resource dictionary.
	HasOCG   bool
	OCGIndex int
}

// TextMode is the operand of the Tr (text-rendering-mode) operator.
type TextMode int

const (
	TextModeFill TextMode = iota
	TextModeStroke
	TextModeFillStroke
	TextModeInvisible
	TextModeFillClip
	TextModeStrokeClip
	TextModeFillStrokeClip
	TextModeClip
)

// LineCap is the operand of the J (line cap style) operator.
type LineCap int

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

// LineJoin is the operand of the j (line join style) operator.
type LineJoin int

const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

// RenderingIntent is the operand of the ri operator.
type RenderingIntent pdf.Name

const (
	IntentAbsoluteColorimetric RenderingIntent = "AbsoluteColorimetric"
	IntentRelativeColorimetric RenderingIntent = "RelativeColorimetric"
	IntentSaturation           RenderingIntent = "Saturation"
	IntentPerceptual           RenderingIntent = "Perceptual"
)

// Transition describes a page or sub-page-navigation presentation
// transition (PDF /Trans dictionary).
type Transition struct {
	Style    pdf.Name
	Duration float64
}

// PageProperties carries custom, caller-set key/value entries merged
// into a page's dictionary at finalize time.
type PageProperties map[pdf.Name]pdf.Object

// TransparencyGroupProperties configures a transparency group XObject's
// /Group dictionary.
type TransparencyGroupProperties struct {
	Isolated   bool
	Knockout   bool
	ColorSpace pdf.Name
}
