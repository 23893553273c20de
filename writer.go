package pdf

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
)

// ObjectRecord is one resolved indirect object, ready to be serialized.
// By the time a Document hands these to WriteFile, every delayed object
// in the document's object table has already been resolved to concrete
// bytes (see document.Document.Write); this package only knows how to
// lay objects out as a conforming PDF file.
type ObjectRecord struct {
	// Dict is the object's dictionary (or, for non-stream non-dict
	// objects such as bare arrays, any Object). May be nil for a
	// stream-only object, though PDF requires at least an empty dict.
	Dict Object

	// Stream holds the raw, uncompressed bytes of the object's stream,
	// or nil if this object has no stream.
	Stream []byte

	// Deflate requests that Stream be compressed with /FlateDecode
	// before being written. Ignored when Stream is nil.
	Deflate bool
}

// countingWriter tracks how many bytes have been written so far, so the
// xref table can record byte offsets as the body is written linearly.
type countingWriter struct {
	w   io.Writer
	pos int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.pos += int64(n)
	return n, err
}

// header is the PDF 1.7 file header: a version comment followed by a
// comment line containing at least four bytes >=0x80, marking the file
// as binary to naive line-oriented tools.
const header = "%PDF-1.7\n%\xE2\xE3\xCF\xD3\n"

// WriteFile serializes records (indexed 1..len(records), object 0 is the
// implicit free-list sentinel) as a complete PDF file: header, body,
// classic cross-reference table, and trailer.
//
// root and info are written into the trailer as /Root and /Info; info
// may be the zero Reference, in which case /Info is omitted.
func WriteFile(w io.Writer, records []ObjectRecord, root, info Reference) error {
	if root.IsZero() {
		return Errf(ErrIndexOutOfBounds, "WriteFile: missing /Root reference")
	}

	cw := &countingWriter{w: w}
	if _, err := io.WriteString(cw, header); err != nil {
		return err
	}

	offsets := make([]int64, len(records)+1)
	for i, rec := range records {
		num := i + 1
		offsets[num] = cw.pos
		if err := writeObject(cw, num, rec); err != nil {
			return err
		}
	}

	xrefPos := cw.pos
	if err := writeXref(cw, offsets); err != nil {
		return err
	}

	trailer := Dict{
		"Size": Integer(len(records) + 1),
		"Root": root,
	}
	if !info.IsZero() {
		trailer["Info"] = info
	}

	if _, err := io.WriteString(cw, "trailer\n"); err != nil {
		return err
	}
	if err := trailer.PDF(cw); err != nil {
		return err
	}
	_, err := fmt.Fprintf(cw, "\nstartxref\n%d\n%%%%EOF\n", xrefPos)
	return err
}

func writeObject(w io.Writer, num int, rec ObjectRecord) error {
	if _, err := fmt.Fprintf(w, "%d 0 obj\n", num); err != nil {
		return err
	}

	dict := rec.Dict
	stream := rec.Stream
	if stream != nil {
		if rec.Deflate {
			var err error
			stream, err = deflate(stream)
			if err != nil {
				return err
			}
		}
		d, ok := dict.(Dict)
		if !ok {
			d = Dict{}
		}
		d = cloneDict(d)
		d["Length"] = Integer(len(stream))
		if rec.Deflate {
			d["Filter"] = Name("FlateDecode")
		}
		dict = d
	}

	if dict == nil {
		dict = Dict{}
	}
	if err := dict.PDF(w); err != nil {
		return err
	}

	if stream != nil {
		if _, err := io.WriteString(w, "\nstream\n"); err != nil {
			return err
		}
		if _, err := w.Write(stream); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\nendstream\n"); err != nil {
			return err
		}
	} else {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "endobj\n")
	return err
}

func cloneDict(d Dict) Dict {
	out := make(Dict, len(d)+2)
	for k, v := range d {
		out[k] = v
	}
	return out
}

func writeXref(w io.Writer, offsets []int64) error {
	n := len(offsets)
	if _, err := fmt.Fprintf(w, "xref\n0 %d\n", n); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "0000000000 65535 f \n"); err != nil {
		return err
	}
	for i := 1; i < n; i++ {
		if _, err := fmt.Fprintf(w, "%010d 00000 n \n", offsets[i]); err != nil {
			return err
		}
	}
	return nil
}

// deflate compresses data with zlib, implementing PDF's /FlateDecode
// (RFC 1950 zlib framing) via compress/zlib rather than the raw
// compress/flate bitstream.
func deflate(data []byte) ([]byte, error) {
	buf := &bytes.Buffer{}
	zw := zlib.NewWriter(buf)
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
