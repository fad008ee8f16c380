package ir

// Problem is the stored form of a solved equation within a lesson.
// Solution and check value are kept as reduced numerator/denominator pairs.
type Problem struct {
	Lesson   string `json:"lesson"`
	Number   int64  `json:"number"`
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

// Object returns p as an IRObject keyed like its JSON form.
func (p Problem) Object() IRObject {
	return IRObject{
		"lesson":                IRString(p.Lesson),
		"number":                IRInt(p.Number),
		"text":                  IRString(p.Text),
		"variable":              IRString(p.Variable),
		"left_coefficient":      IRInt(p.LeftCoefficient),
		"left_constant":         IRInt(p.LeftConstant),
		"right_coefficient":     IRInt(p.RightCoefficient),
		"right_constant":        IRInt(p.RightConstant),
		"solution_numerator":    IRInt(p.SolutionNumerator),
		"solution_denominator":  IRInt(p.SolutionDenominator),
		"left_side_numerator":   IRInt(p.LeftSideNumerator),
		"left_side_denominator": IRInt(p.LeftSideDenominator),
	}
}

// Submission is the stored form of a graded answer.
type Submission struct {
	ProblemID      string `json:"problem_id"`
	VariableValue  string `json:"variable_value"`
	LeftSideValue  string `json:"left_side_value"`
	RightSideValue string `json:"right_side_value"`
	IsCorrect      bool   `json:"is_correct"`
}

// Object returns s as an IRObject keyed like its JSON form.
func (s Submission) Object() IRObject {
	return IRObject{
		"problem_id":       IRString(s.ProblemID),
		"variable_value":   IRString(s.VariableValue),
		"left_side_value":  IRString(s.LeftSideValue),
		"right_side_value": IRString(s.RightSideValue),
		"is_correct":       IRBool(s.IsCorrect),
	}
}
