package parse

import (
	"regexp"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Limits bounds the length of equation text accepted by CheckInput.
type Limits struct {
	MinLength int
	MaxLength int
}

// DefaultLimits matches the problem entry form: 3 to 128 characters.
var DefaultLimits = Limits{MinLength: 3, MaxLength: 128}

var allowedText = regexp.MustCompile(`^[ A-Za-z0-9+*()=-]+$`)

// Normalize folds compatibility characters (full-width digits, letters and
// operators) to their ASCII forms.
func Normalize(text string) string {
	return norm.NFKC.String(text)
}

// CheckInput rejects text that is too short, too long, or contains characters
// outside letters, digits, spaces and "+ - * ( ) =". It does not parse.
func CheckInput(text string, limits Limits) error {
	n := utf8.RuneCountInString(text)
	if limits.MinLength > 0 && n < limits.MinLength {
		return newError(CodeInput, "Equation must be at least %d characters long", limits.MinLength)
	}
	if limits.MaxLength > 0 && n > limits.MaxLength {
		return newError(CodeInput, "Equation must be at most %d characters long", limits.MaxLength)
	}
	if !allowedText.MatchString(text) {
		return newError(CodeInput, "Equation can only contain one type of variable, integers, and the symbols + - * ( ) =")
	}
	return nil
}
