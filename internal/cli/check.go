package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mikeyrichardson/kybur/internal/batch"
	"github.com/mikeyrichardson/kybur/internal/ir"
	"github.com/mikeyrichardson/kybur/internal/parse"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Answer string // variable value
	Left   string // left side value (optional)
	Right  string // right side value (optional)
}

// CheckOutput is the JSON payload of the check command.
type CheckOutput struct {
	Equation     string           `json:"equation"`
	Submission   parse.Submission `json:"submission"`
	Verdict      parse.Verdict    `json:"verdict"`
	Solution     string           `json:"solution"`
	Check        string           `json:"check"`
	SubmissionID string           `json:"submission_id"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <equation>",
		Short: "Grade an answer to an equation",
		Long: `Grade a submitted answer against the exact solution.

--answer is the value of the variable. --left and --right are optional
values for each side at that solution. Values may be integers, fractions
("5/2") or decimals ("2.5").

Exit codes:
  0 - Answer correct
  1 - Answer incorrect, or equation rejected
  2 - Answer unreadable

Examples:
  kybur check "2x+3=7" --answer 2
  kybur check "7 = 3(y-1) + y" --answer 5/2 --left 7 --right 7`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Answer, "answer", "", "value of the variable")
	cmd.Flags().StringVar(&opts.Left, "left", "", "value of the left side")
	cmd.Flags().StringVar(&opts.Right, "right", "", "value of the right side")
	_ = cmd.MarkFlagRequired("answer")

	return cmd
}

func runCheck(opts *CheckOptions, equation string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	res, err := batch.SolveText(equation, opts.limits())
	if err != nil {
		return failParse(formatter, err)
	}

	sub := parse.Submission{
		VariableValue:  opts.Answer,
		LeftSideValue:  opts.Left,
		RightSideValue: opts.Right,
	}
	verdict, err := parse.CheckAnswer(res, sub)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeAnswer, err.Error(), nil)
	}

	problemID, err := ir.ProblemID(batch.ToProblem("", 0, res))
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
	}
	submissionID, err := ir.SubmissionID(ir.Submission{
		ProblemID:      problemID,
		VariableValue:  sub.VariableValue,
		LeftSideValue:  sub.LeftSideValue,
		RightSideValue: sub.RightSideValue,
		IsCorrect:      verdict.IsCorrect,
	})
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
	}

	out := CheckOutput{
		Equation:     res.Text,
		Submission:   sub,
		Verdict:      verdict,
		Solution:     res.Solution().String(),
		Check:        res.CheckValue().String(),
		SubmissionID: submissionID,
	}

	if opts.Format == "json" {
		resp := CLIResponse{Status: "ok", Data: out}
		if !verdict.IsCorrect {
			resp.Status = "error"
			resp.Error = &CLIError{Code: ErrCodeIncorrect, Message: "answer is incorrect"}
		}
		if err := formatter.JSON(resp); err != nil {
			return err
		}
	} else {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s\n", out.Equation)
		fmt.Fprintf(w, "  %s variable: %s\n", mark(verdict.VariableCorrect), sub.VariableValue)
		if sub.LeftSideValue != "" {
			fmt.Fprintf(w, "  %s left:     %s\n", mark(verdict.LeftSideCorrect), sub.LeftSideValue)
		}
		if sub.RightSideValue != "" {
			fmt.Fprintf(w, "  %s right:    %s\n", mark(verdict.RightSideCorrect), sub.RightSideValue)
		}
		if verdict.IsCorrect {
			fmt.Fprintln(w, "Correct")
		} else {
			fmt.Fprintln(w, "Incorrect")
		}
	}

	if !verdict.IsCorrect {
		return NewExitError(ExitFailure, "answer is incorrect")
	}
	return nil
}

func mark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}
