// Package bbp extracts hexadecimal digits of pi at arbitrary offsets.
//
// The Bailey-Borwein-Plouffe formula
//
//  pi = sum_{k>=0} 16^-k (4/(8k+1) - 2/(8k+4) - 1/(8k+5) - 1/(8k+6))
//
// allows the digits starting at index p to be computed from the fractional
// part of 16^p * pi without computing any of the preceding digits. Each of
// the four sums is split at k = p:
//
//  S_N(p) = sum_{k=0}^{p-1} (16^(p-k) mod (8k+N)) / (8k+N)
//         + sum_{k=p}^{p+M} 16^(p-k) / (8k+N)              (mod 1)
//
// The head uses modular exponentiation so the numerator never exceeds the
// modulus. The tail is evaluated directly and truncated after M terms (the
// Tail of an Extractor).
//
// Digit indexes are zero based into the fractional part: index 0 is the 2
// in 3.243F6A88...
package bbp
