package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/calebcase/oops"
)

// source is an opened archive, possibly behind a decompressor.
type source struct {
	io.Reader

	closers []func() error
}

func (s *source) Close() (err error) {
	for i := len(s.closers) - 1; i >= 0; i-- {
		if cerr := s.closers[i](); err == nil {
			err = cerr
		}
	}

	return err
}

// openArchive opens path, decompressing it by extension.
func openArchive(path string) (s *source, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, oops.Trace(err)
	}

	s = &source{
		Reader:  f,
		closers: []func() error{f.Close},
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst":
		dec, err := zstd.NewReader(f)
		if err != nil {
			f.Close()

			return nil, oops.Trace(err)
		}

		s.Reader = dec
		s.closers = append(s.closers, func() error {
			dec.Close()

			return nil
		})
	case ".lz4":
		s.Reader = lz4.NewReader(f)
	}

	return s, nil
}
