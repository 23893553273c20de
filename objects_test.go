package pdf

import (
	"bytes"
	"testing"
)

func render(o Object) string {
	buf := &bytes.Buffer{}
	if err := o.PDF(buf); err != nil {
		panic(err)
	}
	return buf.String()
}

func TestObjectFormat(t *testing.T) {
	cases := []struct {
		in  Object
		out string
	}{
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Integer(42), "42"},
		{Integer(-7), "-7"},
		{Real(1), "1."},
		{Real(0.5), "0.5"},
		{Real(-2.25), "-2.25"},
		{Name("Type"), "/Type"},
		{Name("A B"), "/A#20B"},
		{Name("A#B"), "/A#23B"},
		{Array{Integer(1), Integer(2), Integer(3)}, "[1 2 3]"},
		{Array{nil, Integer(1)}, "[null 1]"},
		{Reference{Number: 5, Generation: 0}, "5 0 R"},
	}
	for _, c := range cases {
		got := render(c.in)
		if got != c.out {
			t.Errorf("render(%#v) = %q, want %q", c.in, got, c.out)
		}
	}
}

func TestStringLiteralEscaping(t *testing.T) {
	cases := []struct {
		in  String
		out string
	}{
		{String("hello"), "(hello)"},
		{String("a(b)c"), "(a\\(b\\)c)"},
		{String(`back\slash`), `(back\\slash)`},
	}
	for _, c := range cases {
		got := render(c.in)
		if got != c.out {
			t.Errorf("render(%q) = %q, want %q", c.in, got, c.out)
		}
	}
}

func TestStringBinaryGoesHex(t *testing.T) {
	s := String([]byte{0x00, 0x01, 0x02, 0xff, 0xfe, 0xfd})
	got := render(s)
	want := "<000102fffefd>"
	if got != want {
		t.Errorf("render(binary) = %q, want %q", got, want)
	}
}

func TestTextStringASCIIRoundTrips(t *testing.T) {
	s := TextString("Hello, World!")
	if string(s) != "Hello, World!" {
		t.Errorf("TextString ascii = %q, want plain ASCII bytes", string(s))
	}
}

func TestTextStringNonASCIIUsesUTF16BOM(t *testing.T) {
	s := TextString("café")
	if len(s) < 2 || s[0] != 0xFE || s[1] != 0xFF {
		t.Fatalf("TextString non-ascii %x does not start with UTF-16BE BOM", []byte(s))
	}
}

func TestDictSortsKeys(t *testing.T) {
	d := Dict{
		"Zebra": Integer(1),
		"Alpha": Integer(2),
		"Mango": Integer(3),
	}
	got := render(d)
	want := "<<\n/Alpha 2\n/Mango 3\n/Zebra 1\n>>"
	if got != want {
		t.Errorf("render(dict) = %q, want %q", got, want)
	}
}

func TestDictOmitsNilValues(t *testing.T) {
	d := Dict{"A": Integer(1), "B": nil}
	got := render(d)
	want := "<<\n/A 1\n>>"
	if got != want {
		t.Errorf("render(dict with nil) = %q, want %q", got, want)
	}
}

func TestDictNilReceiverRendersNull(t *testing.T) {
	var d Dict
	if got := render(d); got != "null" {
		t.Errorf("render(nil dict) = %q, want %q", got, "null")
	}
}

func TestReferenceIsZero(t *testing.T) {
	var r Reference
	if !r.IsZero() {
		t.Error("zero Reference.IsZero() = false, want true")
	}
	r = Reference{Number: 1}
	if r.IsZero() {
		t.Error("non-zero Reference.IsZero() = true, want false")
	}
}
