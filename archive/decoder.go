package archive

import (
	"bufio"
	"io"

	"github.com/calebcase/piz/base"
	"github.com/calebcase/piz/pizerr"
)

// Decoder parses a whole archive into its header and decode plan.
type Decoder struct {
	r *Reader

	// Limit is the largest literal accepted in the body. It defaults to
	// DefaultLimit.
	Limit uint64

	// KeepMetadata retains the metadata lines (without their leading TAB
	// and trailing LF) in Metadata.
	KeepMetadata bool
	Metadata     [][]byte
}

// NewDecoder returns a decoder reading from r. Readers that are not
// io.ByteReaders are buffered, so the decoder may read past the end of the
// archive body.
func NewDecoder(r io.Reader) *Decoder {
	if _, ok := r.(io.ByteReader); !ok {
		r = bufio.NewReader(r)
	}

	return &Decoder{
		r:     NewReader(r),
		Limit: DefaultLimit,
	}
}

// Offset returns the number of archive bytes consumed so far.
func (d *Decoder) Offset() int64 {
	return d.r.Offset()
}

// Decode parses the header, skips the metadata and parses the body. Body
// literals must be decimal.
func (d *Decoder) Decode() (h Header, s Storage, err error) {
	h, err = ReadHeader(d.r)
	if err != nil {
		return h, nil, err
	}

	first, lines, err := readMetadata(d.r, d.KeepMetadata)
	if err != nil {
		return h, nil, err
	}

	d.Metadata = lines

	if h.Read != base.Dec {
		return h, nil, pizerr.Unsupported.New("offset %d: body literals in %s are not implemented", d.r.last(), h.Read)
	}

	s, err = ReadBody(first, d.r, d.Limit)
	if err != nil {
		return h, nil, err
	}

	return h, s, nil
}
