package piz

import (
	"io"
	"log/slog"
	"sync"

	"github.com/calebcase/oops"

	"github.com/calebcase/piz/archive"
	"github.com/calebcase/piz/base"
	"github.com/calebcase/piz/bbp"
	"github.com/calebcase/piz/pizerr"
)

// Assembler materializes a decode plan.
type Assembler struct {
	Extractor bbp.Extractor

	// Workers is the number of positions of a block extracted at the same
	// time. Output is always written in archive order.
	Workers int

	Log *slog.Logger
}

// NewAssembler returns a sequential assembler using bbp.Default.
func NewAssembler() *Assembler {
	return &Assembler{
		Extractor: bbp.Default,
		Workers:   1,
	}
}

// Check reports the first reason s cannot be assembled in calc, without
// extracting anything.
func Check(calc base.System, s archive.Storage) error {
	if calc != base.Hex {
		return pizerr.Unsupported.New("digits in %s are not implemented", calc)
	}

	for i, blk := range s {
		if blk.Length%2 != 0 {
			return pizerr.Unsupported.New("block %d: odd digit count %d does not pack into bytes", i, blk.Length)
		}
	}

	return nil
}

// Assemble writes the runs of s to w: blocks in order and positions in
// order within each block. Nothing is written when the plan fails Check.
func (a *Assembler) Assemble(w io.Writer, calc base.System, s archive.Storage) (n int64, err error) {
	err = Check(calc, s)
	if err != nil {
		return 0, err
	}

	for i, blk := range s {
		if a.Log != nil {
			a.Log.Debug("assembling block", "block", i, "length", blk.Length, "positions", len(blk.Positions))
		}

		var written int64

		if a.Workers > 1 && len(blk.Positions) > 1 {
			written, err = a.parallel(w, calc, blk)
		} else {
			written, err = a.sequential(w, calc, blk)
		}

		n += written

		if err != nil {
			return n, err
		}
	}

	return n, nil
}

func (a *Assembler) sequential(w io.Writer, calc base.System, blk archive.Block) (n int64, err error) {
	for _, position := range blk.Positions {
		data, err := a.Extractor.Extract(position, blk.Length, calc)
		if err != nil {
			return n, err
		}

		written, err := w.Write(data)
		n += int64(written)
		if err != nil {
			return n, oops.Trace(err)
		}
	}

	return n, nil
}

// parallel extracts the positions of blk on a bounded pool and writes the
// results in position order. Results after the first failed position are
// discarded.
func (a *Assembler) parallel(w io.Writer, calc base.System, blk archive.Block) (n int64, err error) {
	type result struct {
		data []byte
		err  error
	}

	results := make([]result, len(blk.Positions))
	jobs := make(chan int)

	workers := a.Workers
	if workers > len(blk.Positions) {
		workers = len(blk.Positions)
	}

	var wg sync.WaitGroup

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()

			for idx := range jobs {
				data, err := a.Extractor.Extract(blk.Positions[idx], blk.Length, calc)
				results[idx] = result{data, err}
			}
		}()
	}

	for idx := range blk.Positions {
		jobs <- idx
	}
	close(jobs)

	wg.Wait()

	for _, r := range results {
		if r.err != nil {
			return n, r.err
		}

		written, err := w.Write(r.data)
		n += int64(written)
		if err != nil {
			return n, oops.Trace(err)
		}
	}

	return n, nil
}
