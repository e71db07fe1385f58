// Package base provides the numeral systems negotiated by a PiZ header.
//
// A header may name two systems with a fixed 3 byte ASCII label each:
//
//  | Label | System | Radix |
//  |-------|--------|-------|
//  | Hex   | Hex    | 16    |
//  | Dec   | Dec    | 10    |
//  | Oct   | Oct    | 8     |
//  | Bin   | Bin    | 2     |
//
// The first governs how the literals in the archive body are written, the
// second the digits of pi that are materialized. Only Dec literals and Hex
// digits are implemented; the rest parse but are rejected by the decoder.
//
// Num is an additional numeric variant for arbitrary radixes. It has no
// label and therefore can never appear in (or be written to) a header.
package base
