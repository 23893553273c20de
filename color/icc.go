package color

import (
	"bytes"

	"seehuhn.de/go/icc"

	pdf "github.com/tmr232/capypdf"
)

// ICCID identifies a registered ICC profile within a document.
type ICCID int

// Profile is a deduplicated ICC profile: the raw bytes plus the number
// of color channels the profile declares, obtained via
// seehuhn.de/go/icc's icc.Decode(...).ColorSpace.
type Profile struct {
	Bytes       []byte
	NumChannels int
}

// Registry deduplicates ICC profiles by byte-for-byte comparison of
// their content: identical bytes produce the same ICCID.
type Registry struct {
	profiles []*Profile
}

// Register adds profile to the registry, returning the existing ICCID if
// an identical profile (by byte comparison) was already registered.
func (r *Registry) Register(data []byte) (ICCID, error) {
	for i, p := range r.profiles {
		if bytes.Equal(p.Bytes, data) {
			return ICCID(i), nil
		}
	}

	decoded, err := icc.Decode(data)
	if err != nil {
		return 0, pdf.Errf(pdf.ErrUnsupportedFormat, "decode ICC profile: %v", err)
	}
	n := decoded.ColorSpace.NumComponents()
	if n != 1 && n != 3 && n != 4 {
		return 0, pdf.Errf(pdf.ErrUnsupportedFormat, "unsupported ICC color space with %d components", n)
	}

	r.profiles = append(r.profiles, &Profile{Bytes: data, NumChannels: n})
	return ICCID(len(r.profiles) - 1), nil
}

// Get returns the profile for id.
func (r *Registry) Get(id ICCID) (*Profile, bool) {
	if int(id) < 0 || int(id) >= len(r.profiles) {
		return nil, false
	}
	return r.profiles[id], true
}


// Len returns the number of registered profiles.
func (r *Registry) Len() int { return len(r.profiles) }
