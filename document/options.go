package document

import (
	"golang.org/x/text/language"

	gcolor "github.com/tmr232/capypdf/color"

	pdf "github.com/tmr232/capypdf"
)

// Subtype selects which /OutputIntent family a document declares
// conformance to.
type Subtype int

const (
	SubtypeNone Subtype = iota
	SubtypePDFX
	SubtypePDFA
	SubtypePDFE
)

// Options configures a Document at construction time: document
// metadata, the output intent subtype, and the working colorspace.
type Options struct {
	Title   string
	Author  string
	Creator string
	Lang    string

	// OutputColorSpace constrains the page group colorspace. CMYK
	// requires a CMYK ICC profile to be registered via SetOutputProfile.
	OutputColorSpace gcolor.Space

	Subtype                   Subtype
	IntentConditionIdentifier string

	// CompressStreams deflates page content streams when set.
	CompressStreams bool

	// IsTagged emits /MarkInfo << /Marked true >> in the catalog.
	IsTagged bool
}

func (o Options) pdfXVersion() pdf.String {
	return pdf.TextString("PDF/X-3:2003")
}

// languageTag parses Lang as a BCP 47 tag, returning the zero language.Tag
// and no error if Lang is empty (no /Lang entry is written in that case).
// A malformed tag is reported as ErrUnsupportedFormat rather than silently
// passed through to the catalog, since a reader has no recovery path for a
// /Lang value that isn't a valid language identifier.
func (o Options) languageTag() (language.Tag, error) {
	if o.Lang == "" {
		return language.Tag{}, nil
	}
	tag, err := language.Parse(o.Lang)
	if err != nil {
		return language.Tag{}, pdf.Errf(pdf.ErrUnsupportedFormat, "invalid language tag %q: %v", o.Lang, err)
	}
	return tag, nil
}
