package harness

import "github.com/mikeyrichardson/kybur/internal/parse"

// Case outcomes recorded in the trace.
const (
	OutcomeSolved   = "solved"
	OutcomeRejected = "rejected"
)

// TraceEvent records what one case produced.
type TraceEvent struct {
	Seq      int64  `json:"seq"`
	Equation string `json:"equation"`
	Outcome  string `json:"outcome"`

	// Set when solved.
	Variable  string `json:"variable,omitempty"`
	Solution  string `json:"solution,omitempty"`
	Check     string `json:"check,omitempty"`
	ProblemID string `json:"problem_id,omitempty"`

	// Set when an answer was graded.
	Correct      *bool  `json:"correct,omitempty"`
	SubmissionID string `json:"submission_id,omitempty"`

	// Set when rejected.
	Code  parse.ErrorCode `json:"code,omitempty"`
	Error string          `json:"error,omitempty"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true if every expectation and assertion held.
	Pass bool `json:"pass"`

	// Trace has one event per case, in case order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains validation error messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`

	// solved holds the parse results of solved cases, keyed by seq.
	solved map[int64]*parse.Result
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
		solved: make(map[int64]*parse.Result),
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// Solved returns the number of solved cases.
func (r *Result) Solved() int {
	n := 0
	for _, e := range r.Trace {
		if e.Outcome == OutcomeSolved {
			n++
		}
	}
	return n
}

// Rejected returns the number of rejected cases.
func (r *Result) Rejected() int {
	return len(r.Trace) - r.Solved()
}
