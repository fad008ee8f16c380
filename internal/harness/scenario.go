package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mikeyrichardson/kybur/internal/parse"
)

// Scenario defines a conformance scenario over a list of equations.
type Scenario struct {
	// Name uniquely identifies this scenario. It doubles as the lesson name
	// of the problem records whose IDs appear in the trace.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Cases are solved in order.
	Cases []Case `yaml:"cases"`

	// Assertions validate the completed trace.
	// Supported types: round_trip, solved_count, failed_count, code_count.
	Assertions []Assertion `yaml:"assertions"`
}

// Case is one equation with optional expectations.
type Case struct {
	Equation string  `yaml:"equation"`
	Expect   *Expect `yaml:"expect,omitempty"`
	Answer   *Answer `yaml:"answer,omitempty"`
}

// Expect lists what a case should produce. Unset fields are not checked.
// Setting Code (or Error) expects the equation to be rejected; setting any
// of the other fields expects it to solve.
type Expect struct {
	Variable string          `yaml:"variable,omitempty"`
	Solution string          `yaml:"solution,omitempty"`
	Check    string          `yaml:"check,omitempty"`
	Left     []int64         `yaml:"left,omitempty"`  // [coefficient, constant]
	Right    []int64         `yaml:"right,omitempty"` // [coefficient, constant]
	Correct  *bool           `yaml:"correct,omitempty"`
	Code     parse.ErrorCode `yaml:"code,omitempty"`
	Error    string          `yaml:"error,omitempty"` // substring of the message
}

func (e *Expect) wantsFailure() bool {
	return e.Code != "" || e.Error != ""
}

func (e *Expect) wantsSolution() bool {
	return e.Variable != "" || e.Solution != "" || e.Check != "" ||
		len(e.Left) > 0 || len(e.Right) > 0 || e.Correct != nil
}

// Answer is a submission graded against the solved case.
type Answer struct {
	Variable string `yaml:"variable"`
	Left     string `yaml:"left,omitempty"`
	Right    string `yaml:"right,omitempty"`
}

func (a *Answer) submission() parse.Submission {
	return parse.Submission{
		VariableValue:  a.Variable,
		LeftSideValue:  a.Left,
		RightSideValue: a.Right,
	}
}

// Assertion validates the trace.
type Assertion struct {
	// Type selects the check: round_trip, solved_count, failed_count or
	// code_count.
	Type string `yaml:"type"`

	// Count is the expected number (used by the *_count types).
	Count int `yaml:"count,omitempty"`

	// Code is the error code to count (used by code_count).
	Code parse.ErrorCode `yaml:"code,omitempty"`
}

// Assertion type constants.
const (
	AssertRoundTrip   = "round_trip"
	AssertSolvedCount = "solved_count"
	AssertFailedCount = "failed_count"
	AssertCodeCount   = "code_count"
)

// LoadScenario reads and parses a scenario YAML file.
// Unknown fields are rejected so typos ("assertion:") fail loudly.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}
	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	for i, c := range s.Cases {
		if c.Equation == "" {
			return fmt.Errorf("cases[%d]: equation is required", i)
		}
		if c.Expect != nil {
			if c.Expect.wantsFailure() && c.Expect.wantsSolution() {
				return fmt.Errorf("cases[%d].expect: cannot expect both an error and a solution", i)
			}
			if n := len(c.Expect.Left); n != 0 && n != 2 {
				return fmt.Errorf("cases[%d].expect: left must be [coefficient, constant]", i)
			}
			if n := len(c.Expect.Right); n != 0 && n != 2 {
				return fmt.Errorf("cases[%d].expect: right must be [coefficient, constant]", i)
			}
			if c.Expect.Correct != nil && c.Answer == nil {
				return fmt.Errorf("cases[%d].expect: correct requires an answer", i)
			}
		}
		if c.Answer != nil && c.Answer.Variable == "" {
			return fmt.Errorf("cases[%d].answer: variable is required", i)
		}
	}

	for i, a := range s.Assertions {
		if err := validateAssertion(i, a); err != nil {
			return err
		}
	}
	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a Assertion) error {
	switch a.Type {
	case "":
		return fmt.Errorf("assertions[%d]: type is required", index)
	case AssertRoundTrip:
	case AssertSolvedCount, AssertFailedCount:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for %s", index, a.Type)
		}
	case AssertCodeCount:
		if a.Code == "" {
			return fmt.Errorf("assertions[%d]: code is required for code_count", index)
		}
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for code_count", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}
