package main

import (
	"bufio"
	"encoding/hex"
	"hash"
	"io"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"

	"github.com/calebcase/oops"
)

// output is the destination of a decode. Without atomic it truncates the
// destination up front and leaves whatever was written on failure. With
// atomic it writes a temporary file next to the destination and renames it
// over the destination on Commit.
type output struct {
	f    *os.File
	bw   *bufio.Writer
	w    io.Writer
	hash hash.Hash

	path string
	tmp  string
}

func createOutput(path string, atomic, checksum bool) (o *output, err error) {
	o = &output{
		path: path,
	}

	if atomic {
		o.f, err = os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
		if err != nil {
			return nil, oops.Trace(err)
		}

		o.tmp = o.f.Name()
	} else {
		o.f, err = os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
		if err != nil {
			return nil, oops.Trace(err)
		}
	}

	o.bw = bufio.NewWriter(o.f)
	o.w = o.bw

	if checksum {
		o.hash = blake3.New()
		o.w = io.MultiWriter(o.bw, o.hash)
	}

	return o, nil
}

func (o *output) Write(p []byte) (n int, err error) {
	return o.w.Write(p)
}

// Commit flushes and closes the output, moving it into place if atomic.
func (o *output) Commit() (err error) {
	err = o.bw.Flush()
	if err != nil {
		o.Abort()

		return oops.Trace(err)
	}

	if o.tmp != "" {
		err = o.f.Sync()
		if err != nil {
			o.Abort()

			return oops.Trace(err)
		}
	}

	err = o.f.Close()
	if err != nil {
		if o.tmp != "" {
			os.Remove(o.tmp)
		}

		return oops.Trace(err)
	}

	if o.tmp != "" {
		err = os.Rename(o.tmp, o.path)
		if err != nil {
			os.Remove(o.tmp)

			return oops.Trace(err)
		}
	}

	return nil
}

// Abort closes the output. An atomic output is removed; otherwise the
// bytes written so far are flushed and kept.
func (o *output) Abort() (err error) {
	if o.tmp != "" {
		o.f.Close()

		err = os.Remove(o.tmp)
		if err != nil {
			return oops.Trace(err)
		}

		return nil
	}

	ferr := o.bw.Flush()

	err = o.f.Close()
	if err == nil {
		err = ferr
	}

	if err != nil {
		return oops.Trace(err)
	}

	return nil
}

// Sum returns the hex BLAKE3 digest of everything written, or "" without
// checksum.
func (o *output) Sum() string {
	if o.hash == nil {
		return ""
	}

	return hex.EncodeToString(o.hash.Sum(nil))
}
