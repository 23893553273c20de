package document

import (
	"strings"
	"testing"

	gcolor "github.com/tmr232/capypdf/color"
	imgpkg "github.com/tmr232/capypdf/image"

	pdf "github.com/tmr232/capypdf"
)

func TestAddImageRejectsInvalidSize(t *testing.T) {
	doc := New(Options{})
	r := &imgpkg.Raster{Width: 0, Height: 10, ColorSpace: gcolor.SpaceDeviceRGB, BitsPerComponent: 8, Samples: nil}
	if _, err := doc.AddImage(r); !errIsKind(err, pdf.ErrInvalidImageSize) {
		t.Fatalf("AddImage with zero width err = %v, want InvalidImageSize", err)
	}
}

func TestAddImageRejectsMaskAndAlphaTogether(t *testing.T) {
	doc := New(Options{})
	r := &imgpkg.Raster{
		Width: 1, Height: 1, ColorSpace: gcolor.SpaceDeviceRGB, BitsPerComponent: 8,
		JPEGData: []byte{0xff, 0xd8, 0xff, 0xd9},
		SoftMask: &imgpkg.Raster{Width: 1, Height: 1, ColorSpace: gcolor.SpaceDeviceGray, BitsPerComponent: 8, Samples: []byte{0}},
	}
	if _, err := doc.AddImage(r); !errIsKind(err, pdf.ErrMaskAndAlpha) {
		t.Fatalf("AddImage with JPEG + SoftMask err = %v, want MaskAndAlpha", err)
	}
}

func TestAddImageBuildsSoftMaskAsNestedGrayXObject(t *testing.T) {
	doc := New(Options{})
	r := &imgpkg.Raster{
		Width: 2, Height: 2, ColorSpace: gcolor.SpaceDeviceRGB, BitsPerComponent: 8,
		Samples:  make([]byte, 2*2*3),
		SoftMask: &imgpkg.Raster{Width: 2, Height: 2, ColorSpace: gcolor.SpaceDeviceGray, BitsPerComponent: 8, Samples: make([]byte, 4)},
	}
	id, err := doc.AddImage(r)
	if err != nil {
		t.Fatalf("AddImage: %v", err)
	}

	p := doc.NewPage(100, 100)
	if err := p.DrawImage(id); err != nil {
		t.Fatalf("DrawImage: %v", err)
	}
	content := p.buf.Bytes()
	if !strings.Contains(string(content), "/Im0 Do") {
		t.Errorf("missing /Im0 Do operator, got:\n%s", content)
	}
	if _, err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	buf := &strings.Builder{}
	if err := doc.Write(buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "/SMask") {
		t.Errorf("image missing /SMask entry, got:\n%s", out)
	}
	if strings.Count(out, "/Subtype /Image") != 2 {
		t.Errorf("expected 2 image XObjects (base + soft mask), got %d in:\n%s", strings.Count(out, "/Subtype /Image"), out)
	}
}

func TestAddImageJPEGPassthroughUsesDCTDecode(t *testing.T) {
	doc := New(Options{})
	jpegBytes := []byte{0xff, 0xd8, 0xff, 0xd9}
	r := &imgpkg.Raster{Width: 4, Height: 4, ColorSpace: gcolor.SpaceDeviceRGB, BitsPerComponent: 8, JPEGData: jpegBytes}
	id, err := doc.AddImage(r)
	if err != nil {
		t.Fatalf("AddImage: %v", err)
	}
	p := doc.NewPage(50, 50)
	if err := p.DrawImage(id); err != nil {
		t.Fatalf("DrawImage: %v", err)
	}
	if _, err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	buf := &strings.Builder{}
	if err := doc.Write(buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), "/Filter /DCTDecode") {
		t.Errorf("JPEG-backed image missing /Filter /DCTDecode, got:\n%s", buf.String())
	}
}

func TestDrawImageRejectsUnregisteredID(t *testing.T) {
	p := newTestPage()
	if err := p.DrawImage(ImageID(0)); !errIsKind(err, pdf.ErrIndexOutOfBounds) {
		t.Fatalf("DrawImage(0) on a document with no images err = %v, want IndexOutOfBounds", err)
	}
}
