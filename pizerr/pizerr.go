// Package pizerr defines the error classes shared by the PiZ packages.
//
// Every failure while decoding an archive belongs to exactly one class:
//
//  | Class       | Meaning                                                  |
//  |-------------|----------------------------------------------------------|
//  | Format      | the archive is corrupt (bad magic, separator, label, ...) |
//  | Unsupported | the archive is valid but asks for something unimplemented |
//  | Overflow    | a literal or digit index does not fit the integer width  |
//
// Use the class Has method to tell them apart:
//
//  if pizerr.Unsupported.Has(err) { ... }
package pizerr

import "github.com/zeebo/errs"

var (
	Format      = errs.Class("format violation")
	Unsupported = errs.Class("unsupported configuration")
	Overflow    = errs.Class("numeric overflow")
)
