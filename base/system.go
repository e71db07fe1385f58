package base

import (
	"bytes"
	"fmt"

	"github.com/calebcase/piz/pizerr"
)

// LabelSize is the width of every header label.
const LabelSize = 3

// System is a numeral system.
type System struct {
	Radix uint64
	label string
}

// Label returns the header label. Systems created with Num have none and
// return an Unsupported error.
func (s System) Label() ([]byte, error) {
	if s.label == "" {
		return nil, pizerr.Unsupported.New("no header label for radix %d", s.Radix)
	}

	return []byte(s.label), nil
}

// Match returns true if label is this system's header label.
func (s System) Match(label []byte) bool {
	return s.label != "" && bytes.Equal(label, []byte(s.label))
}

func (s System) String() string {
	if s.label == "" {
		return fmt.Sprintf("Num(%d)", s.Radix)
	}

	return s.label
}

type systems []System

func (ss systems) Match(label []byte) (s System, ok bool) {
	for _, s := range ss {
		if s.Match(label) {
			return s, true
		}
	}

	return s, false
}

var (
	Unknown = System{}
	Hex     = System{16, "Hex"}
	Dec     = System{10, "Dec"}
	Oct     = System{8, "Oct"}
	Bin     = System{2, "Bin"}

	Systems = systems{
		Hex,
		Dec,
		Oct,
		Bin,
	}
)

// Num returns the unlabeled system with the given radix.
func Num(radix uint64) System {
	return System{Radix: radix}
}

// Parse returns the labeled system matching label.
func Parse(label []byte) (s System, err error) {
	s, ok := Systems.Match(label)
	if !ok {
		return Unknown, pizerr.Format.New("unknown numeral system label: %q", label)
	}

	return s, nil
}
