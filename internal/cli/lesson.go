package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mikeyrichardson/kybur/internal/batch"
	"github.com/mikeyrichardson/kybur/internal/lesson"
	"github.com/mikeyrichardson/kybur/internal/parse"
)

// LessonOptions holds flags for the lesson command.
type LessonOptions struct {
	*RootOptions
	Workers int // 0 uses the config file value
}

// LessonResult is the JSON payload of the lesson command.
type LessonResult struct {
	Reports []*batch.Report `json:"reports"`
	Solved  int             `json:"solved"`
	Failed  int             `json:"failed"`
}

// NewLessonCommand creates the lesson command.
func NewLessonCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LessonOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "lesson <file>...",
		Short: "Solve every problem in one or more lesson files",
		Long: `Load lesson files (.cue, .yaml or .yml) and solve their problems.

Problems are solved concurrently; results are printed in problem order with
the content-addressed ID of each problem record.

Exit codes:
  0 - Every problem solved
  1 - A lesson failed to load or a problem was rejected
  2 - Command error (file not found, etc.)

Examples:
  kybur lesson lessons/warmup.cue
  kybur lesson lessons/*.yaml --workers 8 --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLesson(opts, args, cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.Workers, "workers", "w", 0, "concurrent solvers (default from config, else GOMAXPROCS)")

	return cmd
}

func runLesson(opts *LessonOptions, paths []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	lessons := make([]*lesson.Lesson, 0, len(paths))
	for _, path := range paths {
		l, err := lesson.LoadFile(path)
		if err != nil {
			return failLoad(formatter, err)
		}
		formatter.VerboseLog("Loaded %s: %q with %d problem(s)", path, l.Name, len(l.Problems))
		lessons = append(lessons, l)
	}

	workers := opts.Workers
	if workers == 0 {
		workers = opts.settings().Workers
	}
	solverOpts := []batch.Option{
		batch.WithWorkers(workers),
		batch.WithLimits(opts.limits()),
		batch.WithLogger(opts.logger()),
	}
	if opts.RunIDs != nil {
		solverOpts = append(solverOpts, batch.WithRunIDGenerator(opts.RunIDs))
	}
	solver := batch.New(solverOpts...)

	result := LessonResult{Reports: make([]*batch.Report, 0, len(lessons))}
	for _, l := range lessons {
		report, err := solver.SolveLesson(cmd.Context(), l)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
		}
		result.Reports = append(result.Reports, report)
		result.Solved += report.Solved()
		result.Failed += report.Failed()
	}

	if opts.Format == "json" {
		resp := CLIResponse{Status: "ok", Data: result}
		if result.Failed > 0 {
			resp.Status = "error"
			resp.Error = &CLIError{
				Code:    ErrCodeRejected,
				Message: fmt.Sprintf("%d problem(s) rejected", result.Failed),
			}
		}
		if err := formatter.JSON(resp); err != nil {
			return err
		}
	} else {
		writeLessonText(cmd.OutOrStdout(), result)
	}

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d problem(s) rejected", result.Failed))
	}
	return nil
}

func writeLessonText(w io.Writer, result LessonResult) {
	for _, report := range result.Reports {
		fmt.Fprintf(w, "Lesson: %s (run %s)\n", report.Lesson, report.RunID)
		for _, o := range report.Outcomes {
			if o.OK() {
				p := o.Problem
				name := p.Variable
				if name == "" {
					name = "x"
				}
				sol := parse.Fraction{Num: p.SolutionNumerator, Den: p.SolutionDenominator}
				fmt.Fprintf(w, "  %d. %s  =>  %s = %s  [%s]\n", o.Number, o.Text, name, sol, o.ProblemID[:12])
				continue
			}
			fmt.Fprintf(w, "  %d. %s  =>  ✗ %s: %s\n", o.Number, o.Text, o.Code, o.Error)
		}
	}
	fmt.Fprintf(w, "\nSummary: %d solved, %d rejected\n", result.Solved, result.Failed)
}

// failLoad reports a lesson load error. Missing files are command errors;
// anything else means the lesson itself is invalid.
func failLoad(formatter *OutputFormatter, err error) error {
	var le *lesson.LoadError
	if !errors.As(err, &le) {
		return formatter.Fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
	}
	switch le.Code {
	case lesson.ErrCodeNotFound:
		return formatter.Fail(ExitCommandError, ErrCodeNotFound, le.Error(), nil)
	case lesson.ErrCodeNoFiles:
		return formatter.Fail(ExitCommandError, ErrCodeNoFiles, le.Error(), nil)
	}
	return formatter.Fail(ExitFailure, ErrCodeLesson, le.Error(), loadDetails(le))
}

func loadDetails(le *lesson.LoadError) map[string]any {
	d := map[string]any{"code": le.Code}
	if le.Path != "" {
		d["path"] = le.Path
	}
	if le.Pos.IsValid() {
		d["line"] = le.Pos.Line()
		d["column"] = le.Pos.Column()
	}
	return d
}
