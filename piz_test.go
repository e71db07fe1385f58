package piz_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/oops"

	"github.com/calebcase/piz"
	"github.com/calebcase/piz/archive"
	"github.com/calebcase/piz/base"
	"github.com/calebcase/piz/bbp"
	"github.com/calebcase/piz/pizerr"
)

func TestDecode(t *testing.T) {
	t.Run("example", func(t *testing.T) {
		out := &bytes.Buffer{}

		h, n, err := piz.Decode(strings.NewReader("PiZ\n2\n\t0\n\n"), out, piz.Options{})
		require.NoError(t, err)
		require.Equal(t, archive.Header{Read: base.Dec, Calc: base.Dec}, h)
		require.Equal(t, int64(1), n)

		want, err := bbp.Extract(0, 2)
		require.NoError(t, err)
		require.Equal(t, want, out.Bytes())
		require.Equal(t, []byte{0x24}, out.Bytes())
	})

	t.Run("archive order", func(t *testing.T) {
		// 24 3F 6A 88 85 A3 08 D3
		input := "PiZ\tDec\tHex\n" +
			"\tname=order\n" +
			"4\n\t4\n\t0\n" +
			"2\n\t12\n\t2\n" +
			"0\n\t99\n" +
			"\n"

		for _, workers := range []int{0, 1, 2, 8} {
			out := &bytes.Buffer{}

			_, n, err := piz.Decode(strings.NewReader(input), out, piz.Options{Workers: workers})
			require.NoError(t, err)
			require.Equal(t, int64(6), n)
			require.Equal(t, []byte{0x6A, 0x88, 0x24, 0x3F, 0x08, 0x3F}, out.Bytes(), "workers=%d", workers)
		}
	})

	t.Run("metadata is ignored", func(t *testing.T) {
		plain := &bytes.Buffer{}
		_, _, err := piz.Decode(strings.NewReader("PiZ\tDec\tHex\n6\n\t10\n\n"), plain, piz.Options{})
		require.NoError(t, err)

		meta := &bytes.Buffer{}
		_, _, err = piz.Decode(strings.NewReader("PiZ\tDec\tHex\n\ta\n\t\n\tb\tc\n6\n\t10\n\n"), meta, piz.Options{})
		require.NoError(t, err)

		require.Equal(t, plain.Bytes(), meta.Bytes())
		require.Len(t, meta.Bytes(), 3)
	})

	t.Run("tail", func(t *testing.T) {
		out := &bytes.Buffer{}

		_, _, err := piz.Decode(strings.NewReader("PiZ\n8\n\t0\n\n"), out, piz.Options{Tail: 40})
		require.NoError(t, err)
		require.Equal(t, []byte{0x24, 0x3F, 0x6A, 0x88}, out.Bytes())
	})
}

func TestDecodeErrors(t *testing.T) {
	type TC struct {
		Input string
		Class interface{ Has(error) bool }
		Mark  error
	}

	tcs := []TC{
		{"", &pizerr.Format, oops.New("empty")},
		{"ZiP\n2\n\t0\n\n", &pizerr.Format, oops.New("bad magic")},
		{"PiZ 2\n\t0\n\n", &pizerr.Format, oops.New("bad header byte")},
		{"PiZ\tDec\tHex\n2\n\t0\n", &pizerr.Format, oops.New("missing terminator")},
		{"PiZ\tDec\tHex\n2\n\t0\n\t1\n\tx\n\n", &pizerr.Format, oops.New("corrupt position after good ones")},
		{"PiZ\tHex\n2\n\t0\n\n", &pizerr.Unsupported, oops.New("hex literals")},
		{"PiZ\tDec\n2\n\t0\n\n", &pizerr.Unsupported, oops.New("decimal digits")},
		{"PiZ\tDec\tOct\n2\n\t0\n\n", &pizerr.Unsupported, oops.New("octal digits")},
		{"PiZ\tDec\tHex\n2\n\t0\n3\n\t0\n\n", &pizerr.Unsupported, oops.New("odd length after good block")},
		{"PiZ\n2\n\t4294967296\n\n", &pizerr.Overflow, oops.New("position over limit")},
	}

	for _, tc := range tcs {
		t.Run(tc.Input, func(t *testing.T) {
			out := &bytes.Buffer{}

			_, n, err := piz.Decode(strings.NewReader(tc.Input), out, piz.Options{})
			require.Error(t, err, tc.Mark)
			require.True(t, tc.Class.Has(err), tc.Mark)
			require.Zero(t, n, tc.Mark)
			require.Zero(t, out.Len(), tc.Mark)

			t.Logf("Error: %v\n", err)
		})
	}

	t.Run("limit", func(t *testing.T) {
		_, _, err := piz.Decode(strings.NewReader("PiZ\n2\n\t10\n\n"), &bytes.Buffer{}, piz.Options{Limit: 9})
		require.True(t, pizerr.Overflow.Has(err))

		out := &bytes.Buffer{}

		_, n, err := piz.Decode(strings.NewReader("PiZ\n2\n\t10\n\n"), out, piz.Options{Limit: 10})
		require.NoError(t, err)
		require.Equal(t, int64(1), n)
		require.Equal(t, []byte{0xA3}, out.Bytes())
	})
}

type failWriter struct {
	after int
	n     int
}

var errSink = errors.New("sink full")

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n >= w.after {
		return 0, errSink
	}

	w.n += len(p)

	return len(p), nil
}

func TestAssembler(t *testing.T) {
	s := archive.Storage{
		{Length: 2, Positions: []uint64{0, 1, 2, 3, 4, 5, 6, 7}},
		{Length: 6, Positions: []uint64{20, 10}},
	}

	sequential := &bytes.Buffer{}
	n, err := piz.NewAssembler().Assemble(sequential, base.Hex, s)
	require.NoError(t, err)
	require.Equal(t, s.Size(), uint64(n))
	require.Equal(t, []byte{0x24, 0x43, 0x3F, 0xF6, 0x6A, 0xA8, 0x88, 0x88}, sequential.Bytes()[:8])

	for _, workers := range []int{2, 3, 16} {
		a := piz.NewAssembler()
		a.Workers = workers

		parallel := &bytes.Buffer{}
		n, err := a.Assemble(parallel, base.Hex, s)
		require.NoError(t, err)
		require.Equal(t, s.Size(), uint64(n))
		require.Equal(t, sequential.Bytes(), parallel.Bytes(), "workers=%d", workers)
	}

	t.Run("check", func(t *testing.T) {
		require.NoError(t, piz.Check(base.Hex, s))
		require.True(t, pizerr.Unsupported.Has(piz.Check(base.Dec, s)))
		require.True(t, pizerr.Unsupported.Has(piz.Check(base.Num(16), s)))
		require.True(t, pizerr.Unsupported.Has(piz.Check(base.Hex, archive.Storage{{Length: 1}})))
	})

	t.Run("overflow", func(t *testing.T) {
		out := &bytes.Buffer{}

		n, err := piz.NewAssembler().Assemble(out, base.Hex, archive.Storage{
			{Length: 2, Positions: []uint64{0, bbp.MaxIndex}},
		})
		require.True(t, pizerr.Overflow.Has(err))
		require.Equal(t, int64(1), n)
		require.Equal(t, []byte{0x24}, out.Bytes())
	})

	t.Run("sink error", func(t *testing.T) {
		for _, workers := range []int{1, 4} {
			a := piz.NewAssembler()
			a.Workers = workers

			w := &failWriter{after: 3}

			n, err := a.Assemble(w, base.Hex, s)
			require.Error(t, err)
			require.Contains(t, err.Error(), errSink.Error())
			require.Equal(t, int64(3), n)
		}
	})
}

func TestParse(t *testing.T) {
	input := "PiZ\tDec\tHex\n\tname=plan\n\tsize=2\n4\n\t0\n\n"

	p, err := piz.Parse(strings.NewReader(input), piz.Options{KeepMetadata: true, Workers: 3})
	require.NoError(t, err)
	require.Equal(t, archive.Header{Read: base.Dec, Calc: base.Hex, Labels: 2}, p.Header)
	require.Equal(t, [][]byte{[]byte("name=plan"), []byte("size=2")}, p.Metadata)
	require.Equal(t, archive.Storage{{Length: 4, Positions: []uint64{0}}}, p.Storage)
	require.Equal(t, int64(len(input)), p.Consumed)
	require.Equal(t, 3, p.Assembler().Workers)

	out := &bytes.Buffer{}
	n, err := p.WriteTo(out)
	require.NoError(t, err)
	require.Equal(t, int64(2), n)
	require.Equal(t, []byte{0x24, 0x3F}, out.Bytes())

	_, err = piz.Parse(strings.NewReader("PiZ\tDec\tDec\n2\n\t0\n\n"), piz.Options{})
	require.True(t, pizerr.Unsupported.Has(err))
}
