// Package image constructs PDF raster-image XObjects from decoded
// images. Decoding itself is treated as an external collaborator: this
// package registers the standard library's jpeg/png decoders plus
// golang.org/x/image/bmp so image.Decode handles the common raster
// container formats, and passes through already-JPEG-compressed bytes
// untouched so the document assembler can embed them with
// /Filter /DCTDecode instead of re-encoding as raw samples.
package image

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"os"

	_ "golang.org/x/image/bmp"

	gcolor "github.com/tmr232/capypdf/color"

	pdf "github.com/tmr232/capypdf"
)

// ID identifies a registered image within a document's image registry.
type ID int

// Raster is a decoded image ready to become a PDF image XObject.
type Raster struct {
	Width, Height    int
	ColorSpace       gcolor.Space
	BitsPerComponent int

	// Samples holds interleaved, uncompressed component values, row
	// major, when JPEGData is nil.
	Samples []byte

	// JPEGData, if non-nil, is the original JPEG-compressed file
	// content; the document assembler stores it directly as the image
	// object's stream with /Filter /DCTDecode rather than decompressing
	// and recompressing it.
	JPEGData []byte

	// SoftMask, if non-nil, is a DeviceGray raster of the same
	// dimensions used as this image's /SMask.
	SoftMask *Raster
}

// Load decodes the image file at path. JPEG files are kept compressed
// (see Raster.JPEGData); all other formats are decoded to raw samples.
func Load(path string) (*Raster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Decode decodes raw image file bytes into a Raster.
func Decode(data []byte) (*Raster, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, pdf.Errf(pdf.ErrUnsupportedFormat, "decode image header: %v", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, pdf.Err(pdf.ErrInvalidImageSize)
	}

	if format == "jpeg" {
		return &Raster{
			Width:            cfg.Width,
			Height:           cfg.Height,
			ColorSpace:       gcolor.SpaceDeviceRGB,
			BitsPerComponent: 8,
			JPEGData:         data,
		}, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, pdf.Errf(pdf.ErrUnsupportedFormat, "decode image: %v", err)
	}
	return fromImage(img)
}

// EncodeJPEG compresses img as a baseline JPEG and wraps it in a Raster
// with JPEGData set, for callers building images programmatically
// rather than reading a file.
func EncodeJPEG(img image.Image, quality int) (*Raster, error) {
	buf := &bytes.Buffer{}
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	b := img.Bounds()
	return &Raster{
		Width:            b.Dx(),
		Height:           b.Dy(),
		ColorSpace:       gcolor.SpaceDeviceRGB,
		BitsPerComponent: 8,
		JPEGData:         buf.Bytes(),
	}, nil
}

// EncodePNGRaw is a convenience for tests: round-trips img through PNG
// encoding and the fromImage sample extraction path.
func EncodePNGRaw(img image.Image) (*Raster, error) {
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		return nil, err
	}
	return Decode(buf.Bytes())
}

func fromImage(img image.Image) (*Raster, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, pdf.Err(pdf.ErrInvalidImageSize)
	}

	samples := make([]byte, 0, w*h*3)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			samples = append(samples, byte(r>>8), byte(g>>8), byte(bl>>8))
		}
	}

	return &Raster{
		Width:            w,
		Height:           h,
		ColorSpace:       gcolor.SpaceDeviceRGB,
		BitsPerComponent: 8,
		Samples:          samples,
	}, nil
}
