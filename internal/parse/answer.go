package parse

import "strings"

// Submission is a student's answer to a solved equation. Side values are
// optional; an empty string skips that check.
type Submission struct {
	VariableValue  string `json:"variable_value" yaml:"variable_value"`
	LeftSideValue  string `json:"left_side_value,omitempty" yaml:"left_side_value"`
	RightSideValue string `json:"right_side_value,omitempty" yaml:"right_side_value"`
}

// Verdict grades a Submission against a Result.
type Verdict struct {
	VariableCorrect  bool `json:"variable_correct"`
	LeftSideCorrect  bool `json:"left_side_correct"`
	RightSideCorrect bool `json:"right_side_correct"`
	IsCorrect        bool `json:"is_correct"`
}

// CheckAnswer compares each submitted value with the exact solution and check
// value. Values may be integers, fractions ("3/4") or decimals ("0.75").
// Skipped side values count as correct.
func CheckAnswer(res *Result, sub Submission) (Verdict, error) {
	if strings.TrimSpace(sub.VariableValue) == "" {
		return Verdict{}, newError(CodeInput, "A value for the variable is required")
	}
	var v Verdict
	var err error
	if v.VariableCorrect, err = matches(sub.VariableValue, res.Solution()); err != nil {
		return Verdict{}, err
	}
	if v.LeftSideCorrect, err = matchesOptional(sub.LeftSideValue, res.CheckValue()); err != nil {
		return Verdict{}, err
	}
	if v.RightSideCorrect, err = matchesOptional(sub.RightSideValue, res.CheckValue()); err != nil {
		return Verdict{}, err
	}
	v.IsCorrect = v.VariableCorrect && v.LeftSideCorrect && v.RightSideCorrect
	return v, nil
}

func matches(value string, want Fraction) (bool, error) {
	got, err := ParseValue(value)
	if err != nil {
		return false, err
	}
	return got.Cmp(want.Rat()) == 0, nil
}

func matchesOptional(value string, want Fraction) (bool, error) {
	if strings.TrimSpace(value) == "" {
		return true, nil
	}
	return matches(value, want)
}
