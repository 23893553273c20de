package document

import pdf "github.com/tmr232/capypdf"

// objectEntry is one slot in the document's indirect-object table. It is a
// tagged union: most slots are resolved immediately (full or deflated
// dict+stream), but several kinds of object cannot be serialized until
// finalize time because they depend on information gathered afterward —
// the final page count, sibling object numbers, or a font subset's
// complete glyph list.
type objectEntry struct {
	// resolved is true once dict/stream hold final content. Entries added
	// via addFull start resolved; delayed entries resolve during
	// objectTable.resolveAll.
	resolved bool
	dict     pdf.Object
	stream   []byte
	deflate  bool

	resolve func(doc *Document) (pdf.Object, []byte, bool, error)
}

// objectTable is the append-only, 1-based indirect-object list.
type objectTable struct {
	entries []*objectEntry
}

// alloc reserves the next object number and returns it along with the
// entry to be filled in later, either immediately or via a resolve
// callback. Object numbers are handed out in insertion order and are
// permanent once allocated.
func (t *objectTable) alloc() (pdf.Reference, *objectEntry) {
	e := &objectEntry{}
	t.entries = append(t.entries, e)
	num := len(t.entries)
	return pdf.Reference{Number: num}, e
}

// addFull installs an immediately-resolved object and returns its reference.
func (t *objectTable) addFull(dict pdf.Object, stream []byte, deflate bool) pdf.Reference {
	ref, e := t.alloc()
	e.resolved = true
	e.dict = dict
	e.stream = stream
	e.deflate = deflate
	return ref
}

// addDelayed reserves an object number whose content is produced by fn at
// finalize time. Resolution proceeds in ascending id order, so fn runs
// after the delayed objects earlier in the table and before those later
// in it; fn may consult any state already finalized at that point.
func (t *objectTable) addDelayed(fn func(doc *Document) (pdf.Object, []byte, bool, error)) pdf.Reference {
	ref, e := t.alloc()
	e.resolve = fn
	return ref
}

// resolveAll resolves every delayed entry in ascending id order, mutating
// entries in place.
func (t *objectTable) resolveAll(doc *Document) error {
	for _, e := range t.entries {
		if e.resolved {
			continue
		}
		dict, stream, deflate, err := e.resolve(doc)
		if err != nil {
			return err
		}
		e.resolved = true
		e.dict = dict
		e.stream = stream
		e.deflate = deflate
	}
	return nil
}

// records converts the fully-resolved table into pdf.WriteFile's input.
// Must only be called after resolveAll succeeds.
func (t *objectTable) records() []pdf.ObjectRecord {
	out := make([]pdf.ObjectRecord, len(t.entries))
	for i, e := range t.entries {
		out[i] = pdf.ObjectRecord{Dict: e.dict, Stream: e.stream, Deflate: e.deflate}
	}
	return out
}
