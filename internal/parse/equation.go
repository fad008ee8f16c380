package parse

import (
	"fmt"
	"math/big"
	"strings"
)

// Result is the solved form of a linear equation. It is the record handed to
// callers that store problems; this package never keeps it.
type Result struct {
	Text     string `json:"text"`
	Variable string `json:"variable"`

	LeftCoefficient  int64 `json:"left_coefficient"`
	LeftConstant     int64 `json:"left_constant"`
	RightCoefficient int64 `json:"right_coefficient"`
	RightConstant    int64 `json:"right_constant"`

	SolutionNumerator   int64 `json:"solution_numerator"`
	SolutionDenominator int64 `json:"solution_denominator"`
	LeftSideNumerator   int64 `json:"left_side_numerator"`
	LeftSideDenominator int64 `json:"left_side_denominator"`
}

// Solution returns the value of the variable.
func (r *Result) Solution() Fraction {
	return Fraction{Num: r.SolutionNumerator, Den: r.SolutionDenominator}
}

// CheckValue returns the value both sides take at the solution.
func (r *Result) CheckValue() Fraction {
	return Fraction{Num: r.LeftSideNumerator, Den: r.LeftSideDenominator}
}

// Solve parses a single-variable linear equation and computes its exact
// solution.
//
// Whitespace is removed first. The equation must contain exactly one "=",
// non-empty sides, at most one distinct variable letter, and both sides must
// reduce to degree one or less.
func Solve(text string) (*Result, error) {
	eq := stripSpace(text)

	variable, err := findVariable(eq)
	if err != nil {
		return nil, err
	}

	sides := strings.Split(eq, "=")
	switch {
	case len(sides) < 2:
		return nil, newError(CodeEquals, "Equation must contain an equals sign")
	case len(sides) > 2:
		return nil, newError(CodeEquals, "Equation can only contain one equals sign")
	}
	if sides[0] == "" {
		return nil, newError(CodeEmptySide, "Left side of equation has no content")
	}
	if sides[1] == "" {
		return nil, newError(CodeEmptySide, "Right side of equation has no content")
	}

	left, err := Scan(sides[0])
	if err != nil {
		return nil, onSide(err, SideLeft)
	}
	right, err := Scan(sides[1])
	if err != nil {
		return nil, onSide(err, SideRight)
	}
	if left.Degree() > 1 {
		return nil, errNotLinear("Left")
	}
	if right.Degree() > 1 {
		return nil, errNotLinear("Right")
	}

	lc, lk := left.Coefficient(1), left.Coefficient(0)
	rc, rk := right.Coefficient(1), right.Coefficient(0)

	num := new(big.Int).Sub(rk, lk)
	den := new(big.Int).Sub(lc, rc)
	if den.Sign() == 0 {
		if num.Sign() == 0 {
			return nil, newError(CodeNoUniqueSolution, "Equation has no unique solution: every value of the variable satisfies it")
		}
		return nil, newError(CodeNoUniqueSolution, "Equation has no unique solution: no value of the variable satisfies it")
	}
	solution := new(big.Rat).SetFrac(num, den)
	check := new(big.Rat).Mul(new(big.Rat).SetInt(lc), solution)
	check.Add(check, new(big.Rat).SetInt(lk))

	res := &Result{Text: text}
	if variable != 0 {
		res.Variable = string(variable)
	}
	if res.LeftCoefficient, res.LeftConstant, err = sideInt64(lc, lk); err != nil {
		return nil, onSide(err, SideLeft)
	}
	if res.RightCoefficient, res.RightConstant, err = sideInt64(rc, rk); err != nil {
		return nil, onSide(err, SideRight)
	}
	if res.SolutionNumerator, res.SolutionDenominator, err = ratInt64("Solution", solution); err != nil {
		return nil, err
	}
	if res.LeftSideNumerator, res.LeftSideDenominator, err = ratInt64("Value of both sides", check); err != nil {
		return nil, err
	}

	return res, nil
}

// Verify re-scans both sides of r.Text, evaluates them exactly at the
// solution and checks each equals the reported check value.
func (r *Result) Verify() error {
	eq := stripSpace(Normalize(r.Text))
	sides := strings.SplitN(eq, "=", 2)
	if len(sides) != 2 {
		return newError(CodeEquals, "Equation must contain an equals sign")
	}
	x := r.Solution().Rat()
	want := r.CheckValue().Rat()
	for i, side := range sides {
		p, err := Scan(side)
		if err != nil {
			return err
		}
		got := new(big.Rat)
		pow := big.NewRat(1, 1)
		for _, c := range p.Coefficients() {
			term := new(big.Rat).Mul(pow, new(big.Rat).SetInt(c))
			got.Add(got, term)
			pow = new(big.Rat).Mul(pow, x)
		}
		if got.Cmp(want) != 0 {
			name := "left"
			if i == 1 {
				name = "right"
			}
			return fmt.Errorf("%s side evaluates to %s at %s, want %s",
				name, got.RatString(), x.RatString(), want.RatString())
		}
	}
	return nil
}

// sideInt64 narrows a side's exact coefficient and constant to the int64
// record fields.
func sideInt64(coef, constant *big.Int) (int64, int64, error) {
	for _, v := range []*big.Int{coef, constant} {
		if !v.IsInt64() {
			return 0, 0, newError(CodeSyntax, "Number is too large: %s does not fit in a 64-bit integer", v)
		}
	}
	return coef.Int64(), constant.Int64(), nil
}

// ratInt64 narrows an exact rational to a numerator/denominator pair.
func ratInt64(what string, r *big.Rat) (int64, int64, error) {
	if !r.Num().IsInt64() || !r.Denom().IsInt64() {
		return 0, 0, newError(CodeSyntax, "%s is too large: %s does not fit in 64-bit integers", what, r.RatString())
	}
	return r.Num().Int64(), r.Denom().Int64(), nil
}

// findVariable returns the first letter in eq, failing if a second distinct
// letter appears.
func findVariable(eq string) (rune, error) {
	var variable rune
	for _, r := range eq {
		if !isLetter(r) {
			continue
		}
		if variable == 0 {
			variable = r
		} else if r != variable {
			return 0, errVariables(variable, r)
		}
	}
	return variable, nil
}

func errNotLinear(side string) *ParseError {
	return newError(CodeNotLinear, "%s side of equation is not linear. The exponent of the variable is greater than 1.", side)
}
