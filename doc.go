// Package piz decodes PiZ archives.
//
// A PiZ archive does not contain its payload. It contains the digit
// indexes at which the payload appears in the hexadecimal expansion of pi,
// and decoding recomputes those digits (see package bbp). The layout is
// described in package archive.
//
// Decoding is deterministic and local: the only failures are corrupt input
// (pizerr.Format), valid but unimplemented numeral systems or odd run
// lengths (pizerr.Unsupported) and literals too large for the integer
// width (pizerr.Overflow).
package piz
