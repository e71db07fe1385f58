package archive

import (
	"errors"
	"io"

	"github.com/calebcase/oops"

	"github.com/calebcase/piz/pizerr"
)

// Reader is a byte source that tracks how many bytes were consumed. It
// never reads ahead: every byte it returns is exactly the next byte of the
// underlying reader.
type Reader struct {
	r  io.Reader
	br io.ByteReader

	offset int64
}

// NewReader returns r if it already is a *Reader, otherwise a new Reader
// positioned at offset zero.
func NewReader(r io.Reader) *Reader {
	if rd, ok := r.(*Reader); ok {
		return rd
	}

	rd := &Reader{
		r: r,
	}

	rd.br, _ = r.(io.ByteReader)

	return rd
}

// Offset returns the number of bytes consumed.
func (r *Reader) Offset() int64 {
	return r.offset
}

// ReadByte implements io.ByteReader.
func (r *Reader) ReadByte() (b byte, err error) {
	if r.br != nil {
		b, err = r.br.ReadByte()
	} else {
		var buf [1]byte

		_, err = io.ReadFull(r.r, buf[:])
		b = buf[0]
	}
	if err != nil {
		return 0, err
	}

	r.offset++

	return b, nil
}

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (n int, err error) {
	n, err = r.r.Read(p)
	r.offset += int64(n)

	return n, err
}

// next reads one byte. Running out of input is a format violation since
// every construct of the grammar is explicitly terminated.
func (r *Reader) next(what string) (b byte, err error) {
	b, err = r.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, pizerr.Format.New("offset %d: unexpected end of archive in %s", r.offset, what)
		}

		return 0, oops.Trace(err)
	}

	return b, nil
}

// full fills p. Running out of input is a format violation.
func (r *Reader) full(p []byte, what string) (err error) {
	_, err = io.ReadFull(r, p)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return pizerr.Format.New("offset %d: unexpected end of archive in %s", r.offset, what)
		}

		return oops.Trace(err)
	}

	return nil
}

// last returns the offset of the most recently read byte.
func (r *Reader) last() int64 {
	return r.offset - 1
}
