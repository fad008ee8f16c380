package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mikeyrichardson/kybur/internal/batch"
	"github.com/mikeyrichardson/kybur/internal/lesson"
)

// ValidationIssue is one problem found by validate.
type ValidationIssue struct {
	File    string `json:"file"`
	Lesson  string `json:"lesson,omitempty"`
	Problem int    `json:"problem,omitempty"` // 1-based problem number
	Code    string `json:"code"`
	Message string `json:"message"`
	Line    int    `json:"line,omitempty"`
}

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid    bool              `json:"valid"`
	Lessons  int               `json:"lessons"`
	Problems int               `json:"problems"`
	Issues   []ValidationIssue `json:"issues,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <lessons-dir>",
		Short: "Check every lesson file in a directory",
		Long: `Validate lesson files without printing solutions.

Every .cue, .yaml and .yml file under the directory is checked against the
lesson schema, then every problem is solved. All issues are reported, not
just the first.

Exit codes:
  0 - All lessons valid
  1 - Schema errors or rejected problems
  2 - Command error (directory not found, no lesson files)`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, dir string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	lessons, loadErrors := lesson.LoadDir(dir, lesson.LoadModeCollectAll)
	if len(lessons) == 0 && len(loadErrors) == 1 {
		var le *lesson.LoadError
		if errors.As(loadErrors[0], &le) && (le.Code == lesson.ErrCodeNotFound || le.Code == lesson.ErrCodeNoFiles) {
			return failLoad(formatter, le)
		}
	}

	result := ValidationResult{Lessons: len(lessons)}
	for _, err := range loadErrors {
		result.Issues = append(result.Issues, loadIssue(err))
	}

	solver := batch.New(
		batch.WithLimits(opts.limits()),
		batch.WithWorkers(opts.settings().Workers),
		batch.WithLogger(opts.logger()),
	)
	for _, l := range lessons {
		formatter.VerboseLog("Validating %s (%d problem(s))", l.Source, len(l.Problems))
		report, err := solver.SolveLesson(cmd.Context(), l)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
		}
		result.Problems += len(report.Outcomes)
		for _, o := range report.Outcomes {
			if o.OK() {
				continue
			}
			result.Issues = append(result.Issues, ValidationIssue{
				File:    l.Source,
				Lesson:  l.Name,
				Problem: o.Number,
				Code:    string(o.Code),
				Message: o.Error,
			})
		}
	}
	result.Valid = len(result.Issues) == 0

	if opts.Format == "json" {
		resp := CLIResponse{Status: "ok", Data: result}
		if !result.Valid {
			resp.Status = "error"
			resp.Error = &CLIError{
				Code:    ErrCodeLesson,
				Message: fmt.Sprintf("%d issue(s) found", len(result.Issues)),
			}
		}
		if err := formatter.JSON(resp); err != nil {
			return err
		}
	} else {
		w := cmd.OutOrStdout()
		for _, issue := range result.Issues {
			loc := issue.File
			if issue.Line > 0 {
				loc = fmt.Sprintf("%s:%d", loc, issue.Line)
			}
			if issue.Problem > 0 {
				fmt.Fprintf(w, "✗ %s problem %d: %s: %s\n", loc, issue.Problem, issue.Code, issue.Message)
			} else {
				fmt.Fprintf(w, "✗ %s: %s: %s\n", loc, issue.Code, issue.Message)
			}
		}
		if result.Valid {
			fmt.Fprintf(w, "✓ All lessons valid (%d lesson(s), %d problem(s))\n", result.Lessons, result.Problems)
		}
	}

	if !result.Valid {
		return NewExitError(ExitFailure, fmt.Sprintf("%s: %d issue(s) found", ErrCodeLesson, len(result.Issues)))
	}
	return nil
}

func loadIssue(err error) ValidationIssue {
	var le *lesson.LoadError
	if !errors.As(err, &le) {
		return ValidationIssue{Code: ErrCodeGeneric, Message: err.Error()}
	}
	issue := ValidationIssue{File: le.Path, Code: le.Code, Message: le.Message}
	if le.Pos.IsValid() {
		issue.Line = le.Pos.Line()
	}
	return issue
}
