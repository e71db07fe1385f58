package bbp

import "math/bits"

// Mod returns a mod b. It panics if b is zero.
func Mod(a, b uint64) uint64 {
	if b == 0 {
		panic("bbp: modulo by zero")
	}

	return a % b
}

// MulMod returns a*b mod m using a 128 bit intermediate product.
func MulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(Mod(a, m), Mod(b, m))

	return bits.Rem64(hi, lo, m)
}

// PowMod returns base^exp mod m by repeated squaring, reducing after every
// multiplication.
func PowMod(base, exp, m uint64) uint64 {
	result := Mod(1, m)
	base = Mod(base, m)

	for exp > 0 {
		if exp&1 == 1 {
			result = MulMod(result, base, m)
		}

		base = MulMod(base, base, m)
		exp >>= 1
	}

	return result
}
