package parse

import (
	"math/big"
	"strconv"
)

// Fraction is an exact rational in lowest terms with a positive denominator.
type Fraction struct {
	Num int64 `json:"numerator"`
	Den int64 `json:"denominator"`
}

// Rat returns the fraction as a big.Rat.
func (f Fraction) Rat() *big.Rat {
	return big.NewRat(f.Num, f.Den)
}

// String renders "n" for whole numbers and "n/d" otherwise.
func (f Fraction) String() string {
	if f.Den == 1 {
		return strconv.FormatInt(f.Num, 10)
	}
	return strconv.FormatInt(f.Num, 10) + "/" + strconv.FormatInt(f.Den, 10)
}

// ParseValue reads a submitted value such as "3/4", "-2" or "0.75" as an
// exact rational.
func ParseValue(s string) (*big.Rat, error) {
	v, ok := new(big.Rat).SetString(stripSpace(s))
	if !ok {
		return nil, newError(CodeInput, "%q is not a number or fraction", s)
	}
	return v, nil
}
