package archive

import (
	"io"

	"github.com/calebcase/piz/pizerr"
)

// SkipMetadata discards the metadata lines following the header and
// returns the first byte of the body.
func SkipMetadata(r io.Reader) (first byte, err error) {
	first, _, err = readMetadata(NewReader(r), false)

	return first, err
}

func readMetadata(rd *Reader, keep bool) (first byte, lines [][]byte, err error) {
	for {
		first, err = rd.next("metadata")
		if err != nil {
			return 0, lines, err
		}

		if first != TAB {
			return first, lines, nil
		}

		var line []byte

		for {
			b, err := rd.next("metadata")
			if err != nil {
				return 0, lines, err
			}

			if b == LF {
				break
			}

			if keep {
				line = append(line, b)
			}
		}

		if keep {
			lines = append(lines, line)
		}
	}
}

// ReadBody parses the archive body. The first byte of the body has already
// been consumed (see SkipMetadata) and is passed as first. Literals larger
// than limit are an Overflow error.
func ReadBody(first byte, r io.Reader, limit uint64) (s Storage, err error) {
	rd := NewReader(r)

	b := first

	for b != LF {
		blk := Block{}

		blk.Length, err = readLiteral(rd, b, limit, "length")
		if err != nil {
			return nil, err
		}

		for {
			b, err = rd.next("body")
			if err != nil {
				return nil, err
			}

			if b != TAB {
				break
			}

			b, err = rd.next("position")
			if err != nil {
				return nil, err
			}

			position, err := readLiteral(rd, b, limit, "position")
			if err != nil {
				return nil, err
			}

			blk.Positions = append(blk.Positions, position)
		}

		s = append(s, blk)
	}

	return s, nil
}

// readLiteral accumulates decimal digits up to and including the next LF.
// first is the literal's first byte, already consumed from rd.
func readLiteral(rd *Reader, first byte, limit uint64, what string) (v uint64, err error) {
	if first == LF {
		return 0, pizerr.Format.New("offset %d: empty %s", rd.last(), what)
	}

	for b := first; b != LF; {
		if b < '0' || b > '9' {
			return 0, pizerr.Format.New("offset %d: unexpected byte %q in %s", rd.last(), b, what)
		}

		d := uint64(b - '0')
		if d > limit || v > (limit-d)/10 {
			return 0, pizerr.Overflow.New("offset %d: %s exceeds %d", rd.last(), what, limit)
		}

		v = v*10 + d

		b, err = rd.next(what)
		if err != nil {
			return 0, err
		}
	}

	return v, nil
}
