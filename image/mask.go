package image

import (
	"image"

	pdf "github.com/tmr232/capypdf"
)

// WithSoftMask attaches a DeviceGray alpha raster to r, validating
// dimensions match. It is an error to attach a soft mask to a JPEG-backed
// Raster, since /SMask requires the base image provide its own sample
// stream the mask can align to row-for-row.
func (r *Raster) WithSoftMask(mask *Raster) (*Raster, error) {
	if r.JPEGData != nil {
		return nil, pdf.Err(pdf.ErrMaskAndAlpha)
	}
	if mask.Width != r.Width || mask.Height != r.Height {
		return nil, pdf.Errf(pdf.ErrInvalidImageSize,
			"soft mask %dx%d does not match image %dx%d", mask.Width, mask.Height, r.Width, r.Height)
	}
	out := *r
	out.SoftMask = mask
	return &out, nil
}

// AlphaToSoftMask extracts a DeviceGray Raster from img's alpha channel,
// suitable for passing to WithSoftMask.
func AlphaToSoftMask(img image.Image) *Raster {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	samples := make([]byte, 0, w*h)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			samples = append(samples, byte(a>>8))
		}
	}
	return &Raster{
		Width:            w,
		Height:           h,
		BitsPerComponent: 8,
		Samples:          samples,
	}
}
