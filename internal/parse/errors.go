package parse

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes parse failures.
type ErrorCode string

const (
	// CodeSyntax indicates a grammar violation inside an expression.
	CodeSyntax ErrorCode = "SYNTAX"

	// CodeVariables indicates more than one distinct variable letter.
	CodeVariables ErrorCode = "VARIABLES"

	// CodeEquals indicates a missing or repeated equals sign.
	CodeEquals ErrorCode = "EQUALS"

	// CodeEmptySide indicates one side of the equation has no content.
	CodeEmptySide ErrorCode = "EMPTY_SIDE"

	// CodeNotLinear indicates a side reduced to degree two or higher.
	CodeNotLinear ErrorCode = "NOT_LINEAR"

	// CodeNoUniqueSolution indicates equal variable coefficients on both sides.
	CodeNoUniqueSolution ErrorCode = "NO_UNIQUE_SOLUTION"

	// CodeInput indicates text rejected before parsing (length, character set)
	// or an unreadable submitted answer.
	CodeInput ErrorCode = "INPUT"
)

// Side names which side of an equation a failure came from.
type Side string

const (
	SideNone  Side = ""
	SideLeft  Side = "Left"
	SideRight Side = "Right"
)

// ParseError is the single failure kind returned by this package.
type ParseError struct {
	Code    ErrorCode
	Side    Side
	Message string
}

// Error renders the message, prefixed with "Left Side: " or "Right Side: "
// when the failure was raised while scanning one side.
func (e *ParseError) Error() string {
	if e.Side != SideNone {
		return fmt.Sprintf("%s Side: %s", e.Side, e.Message)
	}
	return e.Message
}

func newError(code ErrorCode, format string, args ...any) *ParseError {
	return &ParseError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// onSide annotates a scanner failure with the side it came from.
func onSide(err error, side Side) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		return &ParseError{Code: pe.Code, Side: side, Message: pe.Message}
	}
	return err
}

// CodeOf returns the ErrorCode of err, or "" when err is not a *ParseError.
func CodeOf(err error) ErrorCode {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ""
}

// IsNoUniqueSolution reports whether err means the equation has zero or
// infinitely many solutions.
func IsNoUniqueSolution(err error) bool {
	return CodeOf(err) == CodeNoUniqueSolution
}
