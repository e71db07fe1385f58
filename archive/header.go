package archive

import (
	"io"

	"github.com/calebcase/oops"

	"github.com/calebcase/piz/base"
	"github.com/calebcase/piz/pizerr"
)

// ReadHeader parses the archive header from r. It consumes exactly the
// header bytes, so r is left at the first byte after the terminating LF.
func ReadHeader(r io.Reader) (h Header, err error) {
	rd := NewReader(r)

	magic := make([]byte, len(Magic))

	err = rd.full(magic, "magic")
	if err != nil {
		return h, err
	}

	if string(magic) != Magic {
		return h, pizerr.Format.New("offset %d: bad magic: %q", rd.Offset()-int64(len(magic)), magic)
	}

	b, err := rd.next("header")
	if err != nil {
		return h, err
	}

	switch b {
	case LF:
		return Header{Read: base.Dec, Calc: base.Dec}, nil
	case TAB:
		h.Labels = 1
	default:
		return h, pizerr.Format.New("offset %d: expected LF or TAB after magic, got %q", rd.last(), b)
	}

	h.Read, err = readLabel(rd)
	if err != nil {
		return Header{}, err
	}

	b, err = rd.next("header")
	if err != nil {
		return Header{}, err
	}

	switch b {
	case LF:
		h.Calc = h.Read

		return h, nil
	case TAB:
		h.Labels = 2
	default:
		return Header{}, pizerr.Format.New("offset %d: expected LF or TAB after read base, got %q", rd.last(), b)
	}

	h.Calc, err = readLabel(rd)
	if err != nil {
		return Header{}, err
	}

	b, err = rd.next("header")
	if err != nil {
		return Header{}, err
	}

	if b != LF {
		return Header{}, pizerr.Format.New("offset %d: expected LF after calc base, got %q", rd.last(), b)
	}

	return h, nil
}

func readLabel(rd *Reader) (s base.System, err error) {
	offset := rd.Offset()

	label := make([]byte, base.LabelSize)

	err = rd.full(label, "numeral system label")
	if err != nil {
		return s, err
	}

	s, err = base.Parse(label)
	if err != nil {
		return s, pizerr.Format.New("offset %d: unknown numeral system label: %q", offset, label)
	}

	return s, nil
}

// WriteHeader writes h with h.Labels labels, or with more when fewer cannot
// express its systems.
func WriteHeader(w io.Writer, h Header) (err error) {
	labels := h.Labels
	if labels < 1 && (h.Read != base.Dec || h.Calc != base.Dec) {
		labels = 1
	}
	if labels < 2 && h.Read != h.Calc {
		labels = 2
	}

	buf := []byte(Magic)

	switch labels {
	case 0:
	case 1:
		label, err := h.Read.Label()
		if err != nil {
			return err
		}

		buf = append(buf, TAB)
		buf = append(buf, label...)
	default:
		read, err := h.Read.Label()
		if err != nil {
			return err
		}

		calc, err := h.Calc.Label()
		if err != nil {
			return err
		}

		buf = append(buf, TAB)
		buf = append(buf, read...)
		buf = append(buf, TAB)
		buf = append(buf, calc...)
	}

	buf = append(buf, LF)

	_, err = w.Write(buf)
	if err != nil {
		return oops.Trace(err)
	}

	return nil
}
