// Package document assembles a complete PDF file: the catalog, page
// tree, outlines, structure tree, and cross-reference, built on top of
// the object graph primitives in the root pdf package and the value
// types in font, color, graphics, structure, outline, and oc. It is the
// one package that understands how those pieces fit together: it owns
// every registry and resolves delayed objects at write time.
package document

import (
	"io"

	gcolor "github.com/tmr232/capypdf/color"
	"github.com/tmr232/capypdf/font"
	imgpkg "github.com/tmr232/capypdf/image"
	"github.com/tmr232/capypdf/structure"

	pdf "github.com/tmr232/capypdf"
)

// Document is the top-level aggregate: it owns the object table and
// every registry (fonts, images, ICC profiles, graphics states,
// shadings, patterns, structure tree, outlines, optional-content
// groups) and is the sole place new indirect objects get allocated.
// DrawingContexts and Pages hold a back-reference to their Document for
// resource registration but never own document state themselves.
type Document struct {
	opts Options

	objects objectTable

	pagesRef Reference

	pages    []*pageEntry
	fonts    []*fontEntry
	images   []*imgEntry
	icc      gcolor.Registry
	iccSpace map[ICCID]int // component count, for NoCmykProfile checks
	iccRefs  map[ICCID]pdf.Reference

	colorSpaces   map[pdf.Name]pdf.Object
	colorSpaceSeq int

	gstates    []pdf.Dict
	gstateRefs []Reference
	shadings []*shadingEntry
	patterns []*patternEntry
	formXs   []*formXObjectEntry
	trGroups []*trGroupEntry

	structItems       []*structItemEntry
	structRoot        StructID
	nextMCIDPage      int
	pageStructParents map[int][]int
	structTreeRootRef Reference
	roleMap           map[structure.Role]structure.Role

	outlines []*outlineItemEntry

	ocgs     []*ocgEntry
	navNodes []Reference

	annotationOwner map[AnnotationID]int // -> page index, 1 use only
	annotations     []*annotationEntry
	formFieldRefs   []Reference

	embeddedFiles []embeddedFileEntry

	usedStruct map[StructID]bool

	outputProfile ICCID
	hasProfile    bool

	finalized bool
}

type Reference = pdf.Reference

// pageEntry records one added page's constituent objects, filled in by
// (*Page).Close.
type pageEntry struct {
	ref        Reference
	resRef     Reference
	contentRef Reference
	mediaBox   *pdf.Rectangle
	properties map[pdf.Name]pdf.Object
	structParent int
	annotations  []Reference
}

// New creates a Document ready to accept pages. It immediately reserves
// the page-tree object number, since every page's /Parent entry needs a
// stable reference before the tree's final content (the page list) is
// known.
func New(opts Options) *Document {
	doc := &Document{
		opts:            opts,
		iccSpace:        make(map[ICCID]int),
		annotationOwner: make(map[AnnotationID]int),
		usedStruct:      make(map[StructID]bool),
	}
	doc.pagesRef = doc.objects.addDelayed(doc.resolvePagesTree)
	return doc
}

// SetOutputProfile registers id (previously returned by RegisterICCProfile)
// as the document's output-intent profile. Required before Write when
// OutputColorSpace is DeviceCMYK.
func (d *Document) SetOutputProfile(id ICCID) {
	d.outputProfile = id
	d.hasProfile = true
}

// RegisterICCProfile deduplicates and stores an ICC profile by content,
// returning the same ICCID for byte-identical profiles.
func (d *Document) RegisterICCProfile(data []byte) (ICCID, error) {
	id, err := d.icc.Register(data)
	if err != nil {
		return 0, err
	}
	did := ICCID(id)
	if p, ok := d.icc.Get(id); ok {
		d.iccSpace[did] = p.NumChannels
	}
	return did, nil
}

// hasCMYKProfile reports whether an output profile was registered via
// SetOutputProfile and that profile actually declares 4 color channels
// (a CMYK profile), not merely that some profile was set.
func (d *Document) hasCMYKProfile() bool {
	if !d.hasProfile {
		return false
	}
	return d.iccSpace[d.outputProfile] == 4
}

func (d *Document) iccRef(id ICCID) pdf.Reference {
	// ICC profile stream objects are added lazily the first time they are
	// referenced, via addICCObject; see color.go.
	return d.addICCObject(id)
}

// LoadFont reads a TrueType/OpenType font file and registers it for
// subsetting. The returned FontID is later used by DrawingContext.ShowText.
func (d *Document) LoadFont(path string) (FontID, error) {
	data, err := font.Load(path)
	if err != nil {
		return 0, err
	}
	return d.addFont(data), nil
}

// ParseFont registers an in-memory TrueType/OpenType font.
func (d *Document) ParseFont(body []byte) (FontID, error) {
	data, err := font.Parse(body)
	if err != nil {
		return 0, err
	}
	return d.addFont(data), nil
}

func (d *Document) addFont(data *font.Data) FontID {
	fe := &fontEntry{
		data:      data,
		subsetter: font.NewSubsetter(data),
	}
	d.fonts = append(d.fonts, fe)
	return FontID(len(d.fonts) - 1)
}

func (d *Document) font(id FontID) (*fontEntry, error) {
	if int(id) < 0 || int(id) >= len(d.fonts) {
		return nil, pdf.Err(pdf.ErrIndexOutOfBounds)
	}
	return d.fonts[id], nil
}

// AddImage registers a decoded raster image, returning a handle usable
// from DrawingContext.DrawImage. The image object is constructed
// immediately: unlike pages or fonts, nothing about an image's encoding
// depends on information gathered later.
func (d *Document) AddImage(r *imgpkg.Raster) (ImageID, error) {
	ref, err := d.buildImageObject(r)
	if err != nil {
		return 0, err
	}
	d.images = append(d.images, &imgEntry{raster: r, ref: ref})
	return ImageID(len(d.images) - 1), nil
}

func (d *Document) image(id ImageID) (*imgEntry, error) {
	if int(id) < 0 || int(id) >= len(d.images) {
		return nil, pdf.Err(pdf.ErrIndexOutOfBounds)
	}
	return d.images[id], nil
}

// AddGState registers an ExtGState parameter dictionary.
func (d *Document) AddGState(dict pdf.Dict) GStateID {
	ref := d.objects.addFull(dict, nil, false)
	d.gstates = append(d.gstates, dict)
	d.gstateRefs = append(d.gstateRefs, ref)
	return GStateID(len(d.gstates) - 1)
}

// NewPage begins a new page of the given size. The caller draws into the
// returned Page's DrawingContext and must call Close to finalize it.
func (d *Document) NewPage(width, height float64) *Page {
	box := pdf.NewRectangle(0, 0, width, height)
	return &Page{
		DrawingContext: newDrawingContext(d, KindPage),
		doc:            d,
		box:            box,
	}
}

// Write resolves every delayed object and serializes the finished PDF to w.
func (d *Document) Write(w io.Writer) error {
	if d.finalized {
		return pdf.Errf(pdf.ErrUnreachable, "document already finalized")
	}
	d.finalized = true

	if err := d.padFontSubsets(); err != nil {
		return err
	}
	if d.opts.OutputColorSpace == gcolor.SpaceDeviceCMYK && !d.hasCMYKProfile() {
		return pdf.Err(pdf.ErrNoCmykProfile)
	}
	if d.opts.Subtype != SubtypeNone && d.opts.IntentConditionIdentifier == "" {
		return pdf.Err(pdf.ErrMissingIntentIdentifier)
	}

	// Every piece the catalog references is built here, before the
	// catalog's own object is allocated, so that the catalog remains the
	// last object added to the table even though none of this needs to
	// be delayed:
	// all the information these helpers need (registered outlines,
	// structure items, form widgets, embedded files, output profile) is
	// already known by the time Write is called.
	outlinesRef := d.resolveOutlines()
	structRootRef := d.structTreeRef()
	acroFormRef := d.buildAcroForm()
	namesRef := d.buildNames()
	outputIntentRef, err := d.buildOutputIntent()
	if err != nil {
		return err
	}

	catalogDict, err := d.buildCatalogDict(outlinesRef, structRootRef, acroFormRef, namesRef, outputIntentRef)
	if err != nil {
		return err
	}
	infoRef := d.buildInfoDict()
	catalogRef := d.objects.addFull(catalogDict, nil, false)

	if err := d.objects.resolveAll(d); err != nil {
		return err
	}

	return pdf.WriteFile(w, d.objects.records(), catalogRef, infoRef)
}

func (d *Document) padFontSubsets() error {
	for _, fe := range d.fonts {
		if err := fe.subsetter.Pad(); err != nil {
			return err
		}
	}
	return nil
}

func (d *Document) buildInfoDict() pdf.Reference {
	dict := pdf.Dict{}
	if d.opts.Title != "" {
		dict["Title"] = pdf.TextString(d.opts.Title)
	}
	if d.opts.Author != "" {
		dict["Author"] = pdf.TextString(d.opts.Author)
	}
	if d.opts.Creator != "" {
		dict["Creator"] = pdf.TextString(d.opts.Creator)
	}
	if d.opts.Subtype == SubtypePDFX {
		dict["GTS_PDFXVersion"] = d.opts.pdfXVersion()
	}
	if len(dict) == 0 {
		return pdf.Reference{}
	}
	return d.objects.addFull(dict, nil, false)
}
