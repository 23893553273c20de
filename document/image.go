package document

import (
	imgpkg "github.com/tmr232/capypdf/image"

	pdf "github.com/tmr232/capypdf"
)

// imgEntry records one registered image's finished XObject reference.
// Unlike fonts, nothing about an image's /Resources entry depends on
// information gathered after registration, so the object is built and
// its reference fixed at AddImage time rather than via addDelayed.
type imgEntry struct {
	raster *imgpkg.Raster
	ref    pdf.Reference
}

// buildImageObject writes r's stream and dictionary immediately,
// recursing once for a soft mask (an /SMask image is itself a
// DeviceGray image XObject, referenced by the parent rather than
// embedded inline).
func (d *Document) buildImageObject(r *imgpkg.Raster) (pdf.Reference, error) {
	if r.Width <= 0 || r.Height <= 0 {
		return pdf.Reference{}, pdf.Err(pdf.ErrInvalidImageSize)
	}

	var smaskRef pdf.Reference
	haveSMask := false
	if r.SoftMask != nil {
		if r.JPEGData != nil {
			return pdf.Reference{}, pdf.Err(pdf.ErrMaskAndAlpha)
		}
		ref, err := d.buildImageObject(r.SoftMask)
		if err != nil {
			return pdf.Reference{}, err
		}
		smaskRef = ref
		haveSMask = true
	}

	dict := pdf.Dict{
		"Type":             pdf.Name("XObject"),
		"Subtype":          pdf.Name("Image"),
		"Width":            pdf.Integer(r.Width),
		"Height":           pdf.Integer(r.Height),
		"BitsPerComponent": pdf.Integer(r.BitsPerComponent),
		"ColorSpace":       pdf.Name(r.ColorSpace.String()),
	}
	if haveSMask {
		dict["SMask"] = smaskRef
	}

	if r.JPEGData != nil {
		dict["Filter"] = pdf.Name("DCTDecode")
		return d.objects.addFull(dict, r.JPEGData, false), nil
	}
	return d.objects.addFull(dict, r.Samples, true), nil
}
