package document

import (
	"testing"

	"github.com/tmr232/capypdf/graphics"

	pdf "github.com/tmr232/capypdf"
)

func TestAddFormXObjectRejectsForeignDocument(t *testing.T) {
	docA := New(Options{})
	docB := New(Options{})

	dc := docA.NewFormXObjectContext()
	if _, err := docB.AddFormXObject(dc, pdf.NewRectangle(0, 0, 10, 10), graphics.Identity); !errIsKind(err, pdf.ErrIncorrectDocumentForObject) {
		t.Fatalf("AddFormXObject across documents err = %v, want IncorrectDocumentForObject", err)
	}
}

func TestAddFormXObjectRejectsWrongContextKind(t *testing.T) {
	doc := New(Options{})
	dc := doc.NewPatternContext()
	if _, err := doc.AddFormXObject(dc, pdf.NewRectangle(0, 0, 10, 10), graphics.Identity); !errIsKind(err, pdf.ErrInvalidDrawContextType) {
		t.Fatalf("AddFormXObject with a pattern context err = %v, want InvalidDrawContextType", err)
	}
}

func TestAddFormXObjectSucceedsAndIsDrawable(t *testing.T) {
	doc := New(Options{})
	dc := doc.NewFormXObjectContext()
	if err := dc.Rect(0, 0, 1, 1); err != nil {
		t.Fatalf("Rect: %v", err)
	}
	if err := dc.Fill(); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	id, err := doc.AddFormXObject(dc, pdf.NewRectangle(0, 0, 1, 1), graphics.Identity)
	if err != nil {
		t.Fatalf("AddFormXObject: %v", err)
	}

	p := doc.NewPage(10, 10)
	if err := p.DrawFormXObject(id); err != nil {
		t.Fatalf("DrawFormXObject: %v", err)
	}
}

func TestDrawFormXObjectRejectsOutOfRangeID(t *testing.T) {
	p := newTestPage()
	if err := p.DrawFormXObject(FormXObjectID(3)); !errIsKind(err, pdf.ErrIndexOutOfBounds) {
		t.Fatalf("DrawFormXObject(3) err = %v, want IndexOutOfBounds", err)
	}
}

func TestAddTransparencyGroupRejectsWrongContextKind(t *testing.T) {
	doc := New(Options{})
	dc := doc.NewFormXObjectContext()
	if _, err := doc.AddTransparencyGroup(dc, pdf.NewRectangle(0, 0, 10, 10)); !errIsKind(err, pdf.ErrInvalidDrawContextType) {
		t.Fatalf("AddTransparencyGroup with a form context err = %v, want InvalidDrawContextType", err)
	}
}

func TestSetTransparencyGroupPropertiesRequiresCorrectKind(t *testing.T) {
	doc := New(Options{})
	dc := doc.NewFormXObjectContext()
	if err := dc.SetTransparencyGroupProperties(graphics.TransparencyGroupProperties{Isolated: true}); !errIsKind(err, pdf.ErrInvalidDrawContextType) {
		t.Fatalf("SetTransparencyGroupProperties on a form context err = %v, want InvalidDrawContextType", err)
	}
}

func TestAddTransparencyGroupSucceeds(t *testing.T) {
	doc := New(Options{})
	dc := doc.NewTransparencyGroupContext()
	if err := dc.SetTransparencyGroupProperties(graphics.TransparencyGroupProperties{Isolated: true, Knockout: false}); err != nil {
		t.Fatalf("SetTransparencyGroupProperties: %v", err)
	}
	id, err := doc.AddTransparencyGroup(dc, pdf.NewRectangle(0, 0, 10, 10))
	if err != nil {
		t.Fatalf("AddTransparencyGroup: %v", err)
	}
	p := doc.NewPage(10, 10)
	if err := p.DrawTransparencyGroup(id); err != nil {
		t.Fatalf("DrawTransparencyGroup: %v", err)
	}
}

func TestDrawTransparencyGroupRejectsOutOfRangeID(t *testing.T) {
	p := newTestPage()
	if err := p.DrawTransparencyGroup(TransparencyGroupID(3)); !errIsKind(err, pdf.ErrIndexOutOfBounds) {
		t.Fatalf("DrawTransparencyGroup(3) err = %v, want IndexOutOfBounds", err)
	}
}

func TestAddPatternRejectsForeignDocument(t *testing.T) {
	docA := New(Options{})
	docB := New(Options{})
	dc := docA.NewPatternContext()
	if _, err := docB.AddPattern(dc, pdf.NewRectangle(0, 0, 10, 10), 10, 10, graphics.Identity); !errIsKind(err, pdf.ErrIncorrectDocumentForObject) {
		t.Fatalf("AddPattern across documents err = %v, want IncorrectDocumentForObject", err)
	}
}

func TestAddPatternSucceeds(t *testing.T) {
	doc := New(Options{})
	dc := doc.NewPatternContext()
	if err := dc.DrawUnitBox(); err != nil {
		t.Fatalf("DrawUnitBox: %v", err)
	}
	if err := dc.Fill(); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if _, err := doc.AddPattern(dc, pdf.NewRectangle(0, 0, 1, 1), 1, 1, graphics.Identity); err != nil {
		t.Fatalf("AddPattern: %v", err)
	}
}

func TestUnclosedNestingFailsPatternClose(t *testing.T) {
	doc := New(Options{})
	dc := doc.NewPatternContext()
	if err := dc.SaveState(); err != nil {
		t.Fatalf("SaveState: %v", err)
	}
	if _, err := doc.AddPattern(dc, pdf.NewRectangle(0, 0, 1, 1), 1, 1, graphics.Identity); !errIsKind(err, pdf.ErrDrawStateEndMismatch) {
		t.Fatalf("AddPattern with an unbalanced q err = %v, want DrawStateEndMismatch", err)
	}
}
