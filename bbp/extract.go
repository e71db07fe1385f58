package bbp

import (
	"math"

	"github.com/calebcase/piz/base"
	"github.com/calebcase/piz/pizerr"
)

// DefaultTail is the reference tail truncation constant.
const DefaultTail = 100

// MaxIndex is the largest digit index whose series terms 8k+N fit in a
// uint64, before accounting for the tail.
const MaxIndex = (math.MaxUint64 - 6) / 8

// Extractor computes runs of pi's digits.
type Extractor struct {
	// Tail is the number of terms evaluated past the digit index. Values
	// near DefaultTail already exhaust float64 precision.
	Tail uint64
}

// Default is the extractor with the reference tail.
var Default = Extractor{Tail: DefaultTail}

// Value returns a number in (0, 2) whose fractional part, read in base 16,
// is the digit stream of pi starting at position.
func (e Extractor) Value(position uint64) float64 {
	s1 := Series(position, 1, e.Tail)
	s4 := Series(position, 4, e.Tail)
	s5 := Series(position, 5, e.Tail)
	s6 := Series(position, 6, e.Tail)

	v := 4*s1 - 2*s4 - s5 - s6
	v = fract(v) + 1

	return math.Abs(v)
}

// Digits peels count hex digits (values 0-15) from a single evaluation at
// position. Only the first several digits of a run are accurate.
func (e Extractor) Digits(position uint64, count int) []byte {
	digits := make([]byte, count)

	v := e.Value(position)
	for i := range digits {
		v = 16 * fract(v)
		digits[i] = byte(v)
	}

	return digits
}

// Extract returns length digits of pi starting at position, packed two
// digits per byte with the first digit in the high nibble. Each byte is
// computed from its own evaluation at position+2i, so adjacent runs
// concatenate exactly.
func (e Extractor) Extract(position, length uint64, system base.System) (data []byte, err error) {
	if system != base.Hex {
		return nil, pizerr.Unsupported.New("digit index %d: digits in %s are not implemented", position, system)
	}

	if length%2 != 0 {
		return nil, pizerr.Unsupported.New("digit index %d: odd digit count %d does not pack into bytes", position, length)
	}

	if length > math.MaxUint64-position {
		return nil, pizerr.Overflow.New("digit index %d: run of %d digits exceeds 64 bits", position, length)
	}

	if e.Tail > MaxIndex || position+length > MaxIndex-e.Tail {
		return nil, pizerr.Overflow.New("digit index %d: run of %d digits with tail %d exceeds the series range", position, length, e.Tail)
	}

	data = make([]byte, 0, length/2)
	for idx := uint64(0); idx < length; idx += 2 {
		d := e.Digits(position+idx, 2)
		data = append(data, d[0]<<4|d[1])
	}

	return data, nil
}

// Extract uses Default to extract hex digits.
func Extract(position, length uint64) ([]byte, error) {
	return Default.Extract(position, length, base.Hex)
}
