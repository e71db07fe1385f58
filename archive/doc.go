// Package archive parses and writes the PiZ archive layout.
//
// A PiZ archive stores references into the hexadecimal digits of pi
// instead of payload bytes. It is line oriented: TAB separates fields and
// LF ends lines.
//
// Header
//
// The header is the magic followed by an optional pair of numeral system
// labels (see package base):
//
//  | Bytes                        | Read | Calc |
//  |------------------------------|------|------|
//  | P i Z LF                     | Dec  | Dec  |
//  | P i Z TAB l LF               | l    | l    |
//  | P i Z TAB l1 TAB l2 LF       | l1   | l2   |
//
// Read is the system the body literals are written in, Calc the system of
// the digits they address.
//
// Metadata
//
// Zero or more lines starting with TAB follow the header. Their content is
// opaque and skipped.
//
// Body
//
// The body is a sequence of blocks ended by a bare LF:
//
//  body       := block* LF
//  block      := length LF position*
//  position   := TAB digits LF
//
// Every position in a block is the digit index of a run of length digits.
// Blocks only exist to write a shared length once; the decode order is the
// file order of blocks and of positions within them.
package archive
