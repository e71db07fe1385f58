package archive

import (
	"bytes"
	"io"
	"strconv"

	"github.com/calebcase/oops"

	"github.com/calebcase/piz/pizerr"
)

// Encoder writes the archive layout. It only lays out references that are
// already known; it does not search pi for data.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w: w,
	}
}

// Header writes the archive header.
func (e *Encoder) Header(h Header) (err error) {
	return WriteHeader(e.w, h)
}

// Metadata writes one metadata line. The line must not contain LF.
func (e *Encoder) Metadata(line []byte) (err error) {
	if bytes.IndexByte(line, LF) >= 0 {
		return pizerr.Format.New("metadata line contains LF: %q", line)
	}

	buf := make([]byte, 0, len(line)+2)
	buf = append(buf, TAB)
	buf = append(buf, line...)
	buf = append(buf, LF)

	_, err = e.w.Write(buf)
	if err != nil {
		return oops.Trace(err)
	}

	return nil
}

// Body writes every block of s followed by the terminating LF.
func (e *Encoder) Body(s Storage) (err error) {
	var buf []byte

	for _, blk := range s {
		buf = strconv.AppendUint(buf, blk.Length, 10)
		buf = append(buf, LF)

		for _, position := range blk.Positions {
			buf = append(buf, TAB)
			buf = strconv.AppendUint(buf, position, 10)
			buf = append(buf, LF)
		}

		_, err = e.w.Write(buf)
		if err != nil {
			return oops.Trace(err)
		}

		buf = buf[:0]
	}

	_, err = e.w.Write([]byte{LF})
	if err != nil {
		return oops.Trace(err)
	}

	return nil
}

// Encode writes a complete archive.
func (e *Encoder) Encode(h Header, metadata [][]byte, s Storage) (err error) {
	err = e.Header(h)
	if err != nil {
		return err
	}

	for _, line := range metadata {
		err = e.Metadata(line)
		if err != nil {
			return err
		}
	}

	return e.Body(s)
}

// Marshal returns the complete archive for h, metadata and s.
func Marshal(h Header, metadata [][]byte, s Storage) (data []byte, err error) {
	buf := &bytes.Buffer{}

	err = NewEncoder(buf).Encode(h, metadata, s)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
