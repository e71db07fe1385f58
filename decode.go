package piz

import (
	"io"
	"log/slog"

	"github.com/calebcase/piz/archive"
	"github.com/calebcase/piz/bbp"
)

// Options configures Parse and Decode. The zero value decodes with the
// reference behavior.
type Options struct {
	// Tail is the BBP tail truncation constant. Zero means bbp.DefaultTail.
	Tail uint64

	// Limit is the largest literal accepted. Zero means
	// archive.DefaultLimit.
	Limit uint64

	// Workers is the extraction parallelism. Zero means sequential.
	Workers int

	// KeepMetadata retains the archive's metadata lines in Plan.Metadata.
	KeepMetadata bool

	Log *slog.Logger
}

// Plan is a parsed and checked archive, ready to be written.
type Plan struct {
	Header   archive.Header
	Storage  archive.Storage
	Metadata [][]byte

	// Consumed is the number of archive bytes read.
	Consumed int64

	opts Options
}

// Parse reads a complete archive from r and checks that it can be
// assembled. Nothing is extracted yet.
func Parse(r io.Reader, opts Options) (p *Plan, err error) {
	d := archive.NewDecoder(r)
	d.KeepMetadata = opts.KeepMetadata
	if opts.Limit != 0 {
		d.Limit = opts.Limit
	}

	h, s, err := d.Decode()
	if err != nil {
		return nil, err
	}

	err = Check(h.Digits(), s)
	if err != nil {
		return nil, err
	}

	p = &Plan{
		Header:   h,
		Storage:  s,
		Metadata: d.Metadata,
		Consumed: d.Offset(),
		opts:     opts,
	}

	if opts.Log != nil {
		opts.Log.Debug("parsed archive",
			"read", h.Read.String(),
			"calc", h.Calc.String(),
			"digits", h.Digits().String(),
			"blocks", len(s),
			"runs", s.Runs(),
			"size", s.Size(),
			"consumed", p.Consumed,
		)
	}

	return p, nil
}

// Assembler returns the assembler configured by the plan's options.
func (p *Plan) Assembler() *Assembler {
	a := NewAssembler()
	a.Log = p.opts.Log

	if p.opts.Tail != 0 {
		a.Extractor = bbp.Extractor{Tail: p.opts.Tail}
	}

	if p.opts.Workers > 1 {
		a.Workers = p.opts.Workers
	}

	return a
}

// WriteTo implements io.WriterTo by extracting every run in archive order.
func (p *Plan) WriteTo(w io.Writer) (n int64, err error) {
	return p.Assembler().Assemble(w, p.Header.Digits(), p.Storage)
}

// Decode parses a complete archive from r and writes the decoded bytes to
// w. It returns the archive header and the number of bytes written. The
// whole archive is parsed and checked before the first byte is written.
func Decode(r io.Reader, w io.Writer, opts Options) (h archive.Header, n int64, err error) {
	p, err := Parse(r, opts)
	if err != nil {
		return h, 0, err
	}

	n, err = p.WriteTo(w)

	return p.Header, n, err
}
