// Package poly provides an immutable single-variable polynomial with
// arbitrary-precision integer coefficients. Sums and products are exact;
// narrowing to int64 is the caller's job (see Int64s).
//
// A Polynomial is stored as coefficients in ascending power order, so index 0
// is the constant term. The coefficient slice is never empty; the zero
// polynomial is [0]. Every operation returns a fresh value and never mutates
// its receiver or arguments, which makes Polynomials safe to share between
// goroutines.
//
// Trailing zero coefficients are not trimmed. Degree reports the highest
// power with a slot present, even when that slot holds zero.
package poly
