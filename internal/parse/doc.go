// Package parse turns free-form linear equation text such as "2(x+1)=3x-4"
// into exact coefficients and a reduced rational solution.
//
// Scan reduces one side of an equation to a poly.Polynomial in a single
// left-to-right pass. Solve splits an equation on "=", scans both sides,
// enforces linearity and computes the solution together with the value both
// sides take at that solution. Arithmetic is exact; a result field that does
// not fit in an int64 fails with CodeSyntax instead of wrapping.
//
// Every failure is a *ParseError. Nothing in this package keeps global state;
// all functions are safe for concurrent use.
package parse
