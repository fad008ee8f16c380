package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikeyrichardson/kybur/internal/parse"
)

func runCases(t *testing.T, equations ...string) *Result {
	t.Helper()
	s := &Scenario{
		Name:        "assertions",
		Description: "assertion fixtures",
		Assertions:  []Assertion{{Type: AssertRoundTrip}},
	}
	for _, eq := range equations {
		s.Cases = append(s.Cases, Case{Equation: eq})
	}
	result, err := Run(s)
	require.NoError(t, err)
	return result
}

func TestAssertCounts(t *testing.T) {
	result := runCases(t, "2x+3=7", "x+1", "x+y=2", "x-y=2")

	assert.NoError(t, evaluateAssertion(result, Assertion{Type: AssertSolvedCount, Count: 1}))
	assert.NoError(t, evaluateAssertion(result, Assertion{Type: AssertFailedCount, Count: 3}))
	assert.NoError(t, evaluateAssertion(result, Assertion{Type: AssertCodeCount, Code: parse.CodeVariables, Count: 2}))
	assert.NoError(t, evaluateAssertion(result, Assertion{Type: AssertCodeCount, Code: parse.CodeSyntax, Count: 0}))

	err := evaluateAssertion(result, Assertion{Type: AssertSolvedCount, Count: 2})
	require.Error(t, err)
	var ae *AssertionError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, AssertSolvedCount, ae.Type)
	assert.Equal(t, "2 case(s)", ae.Expected)
	assert.Equal(t, "1 case(s)", ae.Actual)

	err = evaluateAssertion(result, Assertion{Type: AssertCodeCount, Code: parse.CodeEquals, Count: 2})
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "code_count EQUALS", ae.Type)
}

func TestAssertRoundTrip(t *testing.T) {
	result := runCases(t, "2x+3=7", "7 = 3 ( y - 1 ) + y", "2(x+1)=3x-4")
	assert.NoError(t, evaluateAssertion(result, Assertion{Type: AssertRoundTrip}))

	result.solved[1].SolutionNumerator = 3
	err := evaluateAssertion(result, Assertion{Type: AssertRoundTrip})
	require.Error(t, err)
	var ae *AssertionError
	require.ErrorAs(t, err, &ae)
	assert.Contains(t, ae.Actual, "[1] 2x+3=7")
}

func TestAssertionErrorMessage(t *testing.T) {
	result := runCases(t, "2x+3=7", "x+1")
	err := &AssertionError{
		Type:     AssertSolvedCount,
		Expected: "2 case(s)",
		Actual:   "1 case(s)",
		Trace:    result.Trace,
	}

	msg := err.Error()
	assert.Contains(t, msg, "Assertion failed: solved_count")
	assert.Contains(t, msg, "Expected: 2 case(s)")
	assert.Contains(t, msg, "Actual: 1 case(s)")
	assert.Contains(t, msg, "[1] 2x+3=7 => 2")
	assert.Contains(t, msg, "[2] x+1 => EQUALS")
}

func TestEvaluateUnknownAssertion(t *testing.T) {
	err := evaluateAssertion(NewResult(), Assertion{Type: "trace_order"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown assertion type")
}
