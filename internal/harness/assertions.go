package harness

import (
	"fmt"
	"strings"
)

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string       // Assertion type for categorization
	Expected string       // Human-readable expected outcome
	Actual   string       // Human-readable actual outcome
	Trace    []TraceEvent // Full trace for debugging context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	fmt.Fprintf(&buf, "\nFull trace:\n")
	for _, event := range e.Trace {
		if event.Outcome == OutcomeSolved {
			fmt.Fprintf(&buf, "  [%d] %s => %s\n", event.Seq, event.Equation, event.Solution)
		} else {
			fmt.Fprintf(&buf, "  [%d] %s => %s\n", event.Seq, event.Equation, event.Code)
		}
	}

	return buf.String()
}

// evaluateAssertion dispatches on the assertion type.
func evaluateAssertion(result *Result, a Assertion) error {
	switch a.Type {
	case AssertRoundTrip:
		return assertRoundTrip(result)
	case AssertSolvedCount:
		return assertCount(result.Trace, a.Type, a.Count, func(e TraceEvent) bool {
			return e.Outcome == OutcomeSolved
		})
	case AssertFailedCount:
		return assertCount(result.Trace, a.Type, a.Count, func(e TraceEvent) bool {
			return e.Outcome == OutcomeRejected
		})
	case AssertCodeCount:
		return assertCount(result.Trace, a.Type+" "+string(a.Code), a.Count, func(e TraceEvent) bool {
			return e.Code == a.Code
		})
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
}

// assertRoundTrip re-evaluates each solved equation at its solution.
func assertRoundTrip(result *Result) error {
	var failures []string
	for _, event := range result.Trace {
		res, ok := result.solved[event.Seq]
		if !ok {
			continue
		}
		if err := res.Verify(); err != nil {
			failures = append(failures, fmt.Sprintf("[%d] %s: %v", event.Seq, event.Equation, err))
		}
	}
	if len(failures) == 0 {
		return nil
	}
	return &AssertionError{
		Type:     AssertRoundTrip,
		Expected: "every solved equation balances at its solution",
		Actual:   strings.Join(failures, "; "),
		Trace:    result.Trace,
	}
}

func assertCount(trace []TraceEvent, label string, want int, match func(TraceEvent) bool) error {
	got := 0
	for _, event := range trace {
		if match(event) {
			got++
		}
	}
	if got == want {
		return nil
	}
	return &AssertionError{
		Type:     label,
		Expected: fmt.Sprintf("%d case(s)", want),
		Actual:   fmt.Sprintf("%d case(s)", got),
		Trace:    trace,
	}
}
