package bbp

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMod(t *testing.T) {
	require.Equal(t, uint64(1), Mod(16, 5))
	require.Equal(t, uint64(0), Mod(16, 1))
	require.Equal(t, uint64(3), Mod(3, 8))
	require.Panics(t, func() { Mod(1, 0) })
}

func TestPowMod(t *testing.T) {
	type TC struct {
		base, exp, m uint64
	}

	tcs := []TC{
		{16, 0, 1},
		{16, 0, 9},
		{16, 1, 9},
		{16, 5, 13},
		{16, 100, 801},
		{16, 1_000_000, 8_000_001},
		{16, 1 << 40, 8*(1<<40) + 5},
		{16, math.MaxUint32, math.MaxUint64 - 58},
		{math.MaxUint64, math.MaxUint64, math.MaxUint64 - 1},
	}

	for _, tc := range tcs {
		t.Run(fmt.Sprintf("%d^%d mod %d", tc.base, tc.exp, tc.m), func(t *testing.T) {
			want := new(big.Int).Exp(
				new(big.Int).SetUint64(tc.base),
				new(big.Int).SetUint64(tc.exp),
				new(big.Int).SetUint64(tc.m),
			)

			require.Equal(t, want.Uint64(), PowMod(tc.base, tc.exp, tc.m))
		})
	}
}

func TestMulMod(t *testing.T) {
	a, b, m := uint64(math.MaxUint64-1), uint64(math.MaxUint64-2), uint64(math.MaxUint64)

	want := new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
	want.Mod(want, new(big.Int).SetUint64(m))

	require.Equal(t, want.Uint64(), MulMod(a, b, m))
}

func TestSeries(t *testing.T) {
	// At position 0 the head is empty and the tail is the plain sum.
	var want float64
	for k := 0; k <= DefaultTail; k++ {
		want += math.Pow(16, -float64(k)) / float64(8*k+1)
	}
	_, want = math.Modf(want)

	require.InDelta(t, want, Series(0, 1, DefaultTail), 1e-15)

	for _, n := range []uint64{1, 4, 5, 6} {
		for _, p := range []uint64{0, 1, 7, 100, 1000} {
			s := Series(p, n, DefaultTail)
			require.GreaterOrEqual(t, s, 0.0)
			require.Less(t, s, 1.0)
		}
	}
}
