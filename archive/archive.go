package archive

import (
	"math"

	"github.com/calebcase/piz/base"
)

// Magic appears at the beginning of every archive.
const Magic = "PiZ"

const (
	LF  byte = '\n'
	TAB byte = '\t'
)

// DefaultLimit is the largest literal accepted by default.
const DefaultLimit = math.MaxUint32

// Header holds the numeral systems negotiated by an archive.
type Header struct {
	Read base.System
	Calc base.System

	// Labels is the number of labels the header carried (0, 1 or 2).
	Labels int
}

// Digits returns the numeral system of the digits the body addresses. A
// header without labels predates negotiation and addresses hex digits.
func (h Header) Digits() base.System {
	if h.Labels == 0 {
		return base.Hex
	}

	return h.Calc
}

// Block is a group of digit indexes sharing one run length.
type Block struct {
	Length    uint64
	Positions []uint64
}

// Storage is the ordered decode plan of an archive.
type Storage []Block

// Runs returns the total number of positions.
func (s Storage) Runs() (n int) {
	for _, b := range s {
		n += len(b.Positions)
	}

	return n
}

// Size returns the number of bytes the storage decodes to, assuming every
// length is even.
func (s Storage) Size() (n uint64) {
	for _, b := range s {
		n += b.Length / 2 * uint64(len(b.Positions))
	}

	return n
}
