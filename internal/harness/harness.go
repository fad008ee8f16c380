package harness

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/mikeyrichardson/kybur/internal/batch"
	"github.com/mikeyrichardson/kybur/internal/ir"
	"github.com/mikeyrichardson/kybur/internal/parse"
	"github.com/mikeyrichardson/kybur/internal/testutil"
)

// Harness executes scenarios with a deterministic step clock.
type Harness struct {
	clock  *testutil.StepClock
	limits parse.Limits
	logger *slog.Logger
}

// Option configures a scenario run.
type Option func(*Harness)

// WithLogger sets the logger. Runs are silent by default.
func WithLogger(l *slog.Logger) Option {
	return func(h *Harness) { h.logger = l }
}

// WithLimits sets the input length bounds applied to each equation.
func WithLimits(l parse.Limits) Option {
	return func(h *Harness) { h.limits = l }
}

// Run executes a scenario and returns the result.
//
// Every case is solved in order; expectation mismatches and failed
// assertions are collected on the result rather than returned. The error is
// non-nil only for a scenario that fails validation.
func Run(scenario *Scenario, opts ...Option) (*Result, error) {
	if scenario == nil {
		return nil, fmt.Errorf("scenario is nil")
	}
	if err := validateScenario(scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	h := &Harness{
		clock:  testutil.NewStepClock(),
		limits: parse.DefaultLimits,
		logger: testutil.DiscardLogger(),
	}
	for _, opt := range opts {
		opt(h)
	}

	result := NewResult()
	for i, c := range scenario.Cases {
		h.runCase(scenario.Name, i+1, c, result)
	}

	for _, a := range scenario.Assertions {
		if err := evaluateAssertion(result, a); err != nil {
			result.AddError(err.Error())
		}
	}

	h.logger.Debug("scenario finished",
		"scenario", scenario.Name,
		"pass", result.Pass,
		"solved", result.Solved(),
		"rejected", result.Rejected())
	return result, nil
}

func (h *Harness) runCase(lesson string, number int, c Case, result *Result) {
	event := TraceEvent{
		Seq:      h.clock.Next(),
		Equation: c.Equation,
	}
	label := fmt.Sprintf("case %d (%q)", number, c.Equation)

	res, err := batch.SolveText(c.Equation, h.limits)
	if err != nil {
		event.Outcome = OutcomeRejected
		event.Code = parse.CodeOf(err)
		event.Error = err.Error()
		result.Trace = append(result.Trace, event)
		h.logger.Debug("case rejected", "seq", event.Seq, "code", event.Code)
		checkFailure(label, c.Expect, event, result)
		return
	}

	event.Outcome = OutcomeSolved
	event.Variable = res.Variable
	event.Solution = res.Solution().String()
	event.Check = res.CheckValue().String()

	problem := batch.ToProblem(lesson, number, res)
	id, err := ir.ProblemID(problem)
	if err != nil {
		result.AddError(fmt.Sprintf("%s: problem id: %v", label, err))
	}
	event.ProblemID = id

	if c.Answer != nil {
		gradeAnswer(label, id, c.Answer, res, &event, result)
	}

	result.Trace = append(result.Trace, event)
	result.solved[event.Seq] = res
	h.logger.Debug("case solved", "seq", event.Seq, "solution", event.Solution)
	checkSolution(label, c.Expect, res, event, result)
}

func gradeAnswer(label, problemID string, a *Answer, res *parse.Result, event *TraceEvent, result *Result) {
	sub := a.submission()
	verdict, err := parse.CheckAnswer(res, sub)
	if err != nil {
		result.AddError(fmt.Sprintf("%s: answer: %v", label, err))
		return
	}
	correct := verdict.IsCorrect
	event.Correct = &correct

	id, err := ir.SubmissionID(ir.Submission{
		ProblemID:      problemID,
		VariableValue:  sub.VariableValue,
		LeftSideValue:  sub.LeftSideValue,
		RightSideValue: sub.RightSideValue,
		IsCorrect:      verdict.IsCorrect,
	})
	if err != nil {
		result.AddError(fmt.Sprintf("%s: submission id: %v", label, err))
		return
	}
	event.SubmissionID = id
}

func checkFailure(label string, want *Expect, event TraceEvent, result *Result) {
	if want == nil {
		return
	}
	if want.wantsSolution() {
		result.AddError(fmt.Sprintf("%s: expected a solution, got %s: %s", label, event.Code, event.Error))
		return
	}
	if want.Code != "" && want.Code != event.Code {
		result.AddError(fmt.Sprintf("%s: expected code %s, got %s: %s", label, want.Code, event.Code, event.Error))
	}
	if want.Error != "" && !strings.Contains(event.Error, want.Error) {
		result.AddError(fmt.Sprintf("%s: expected error containing %q, got %q", label, want.Error, event.Error))
	}
}

func checkSolution(label string, want *Expect, res *parse.Result, event TraceEvent, result *Result) {
	if want == nil {
		return
	}
	if want.wantsFailure() {
		result.AddError(fmt.Sprintf("%s: expected %s error, got solution %s", label, want.Code, event.Solution))
		return
	}
	if want.Variable != "" && want.Variable != res.Variable {
		result.AddError(fmt.Sprintf("%s: expected variable %s, got %q", label, want.Variable, res.Variable))
	}
	if want.Solution != "" {
		checkValue(label, "solution", want.Solution, res.Solution(), result)
	}
	if want.Check != "" {
		checkValue(label, "check", want.Check, res.CheckValue(), result)
	}
	if len(want.Left) == 2 {
		got := []int64{res.LeftCoefficient, res.LeftConstant}
		if !slices.Equal(want.Left, got) {
			result.AddError(fmt.Sprintf("%s: expected left %v, got %v", label, want.Left, got))
		}
	}
	if len(want.Right) == 2 {
		got := []int64{res.RightCoefficient, res.RightConstant}
		if !slices.Equal(want.Right, got) {
			result.AddError(fmt.Sprintf("%s: expected right %v, got %v", label, want.Right, got))
		}
	}
	if want.Correct != nil && event.Correct != nil && *want.Correct != *event.Correct {
		result.AddError(fmt.Sprintf("%s: expected answer correct=%t, got %t", label, *want.Correct, *event.Correct))
	}
}

// checkValue compares exactly, so "2", "4/2" and "2.0" all match 2.
func checkValue(label, field, want string, got parse.Fraction, result *Result) {
	v, err := parse.ParseValue(want)
	if err != nil {
		result.AddError(fmt.Sprintf("%s: expected %s: %v", label, field, err))
		return
	}
	if v.Cmp(got.Rat()) != 0 {
		result.AddError(fmt.Sprintf("%s: expected %s %s, got %s", label, field, want, got))
	}
}
