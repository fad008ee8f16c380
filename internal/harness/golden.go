package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/mikeyrichardson/kybur/internal/ir"
)

// GoldenDir is where RunWithGolden and AssertGolden keep fixtures.
const GoldenDir = "testdata/golden"

// Snapshot serialises a scenario trace as canonical JSON. Only fields set on
// an event are included, so the bytes are stable across runs.
func Snapshot(scenarioName string, result *Result) ([]byte, error) {
	trace := make([]any, len(result.Trace))
	for i, event := range result.Trace {
		m := map[string]any{
			"seq":      event.Seq,
			"equation": event.Equation,
			"outcome":  event.Outcome,
		}
		if event.Variable != "" {
			m["variable"] = event.Variable
		}
		if event.Solution != "" {
			m["solution"] = event.Solution
		}
		if event.Check != "" {
			m["check"] = event.Check
		}
		if event.ProblemID != "" {
			m["problem_id"] = event.ProblemID
		}
		if event.Correct != nil {
			m["correct"] = *event.Correct
		}
		if event.SubmissionID != "" {
			m["submission_id"] = event.SubmissionID
		}
		if event.Code != "" {
			m["code"] = string(event.Code)
		}
		if event.Error != "" {
			m["error"] = event.Error
		}
		trace[i] = m
	}

	return ir.MarshalCanonical(map[string]any{
		"scenario_name": scenarioName,
		"trace":         trace,
	})
}

// RunWithGolden executes a scenario and compares its trace against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario, opts ...Option) (*Result, error) {
	t.Helper()

	result, err := Run(scenario, opts...)
	if err != nil {
		return nil, err
	}
	if err := AssertGolden(t, scenario.Name, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares an existing result's trace against a golden file.
func AssertGolden(t *testing.T, scenarioName string, result *Result) error {
	t.Helper()

	data, err := Snapshot(scenarioName, result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir(GoldenDir),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, data)
	return nil
}
