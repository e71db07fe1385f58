package bbp

import "math"

// Past this many tail terms 16^-k is below the smallest float64.
const underflow = 269

func fract(x float64) float64 {
	_, f := math.Modf(x)

	return f
}

// Series returns S_n(position) truncated after tail terms past position.
// The result is the fractional part of the sum and keeps its sign.
func Series(position, n, tail uint64) float64 {
	var sum float64

	for k := uint64(0); k < position; k++ {
		ak := 8*k + n
		t := PowMod(16, position-k, ak)
		sum = fract(sum + float64(t)/float64(ak))
	}

	for k := position; k-position <= tail; k++ {
		shift := k - position
		if shift >= underflow {
			break
		}

		ak := 8*k + n
		t := math.Ldexp(1, -4*int(shift))
		sum = fract(sum + t/float64(ak))
	}

	return sum
}
