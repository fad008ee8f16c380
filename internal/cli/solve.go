package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mikeyrichardson/kybur/internal/batch"
	"github.com/mikeyrichardson/kybur/internal/parse"
)

// SolveOutput is the JSON payload of the solve command.
type SolveOutput struct {
	*parse.Result
	Solution string `json:"solution"`
	Check    string `json:"check"`
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "solve <equation>",
		Short: "Solve a linear equation",
		Long: `Solve a single-variable linear equation exactly.

Prints the coefficient and constant of each side, the reduced solution and
the value both sides take at the solution.

Exit codes:
  0 - Solved
  1 - Equation rejected

Examples:
  kybur solve "2x+3=7"
  kybur solve "7 = 3(y - 1) + y" --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(rootOpts, args[0], cmd)
		},
	}
}

func runSolve(opts *RootOptions, equation string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	res, err := batch.SolveText(equation, opts.limits())
	if err != nil {
		return failParse(formatter, err)
	}
	formatter.VerboseLog("variable=%q left=(%d, %d) right=(%d, %d)",
		res.Variable, res.LeftCoefficient, res.LeftConstant, res.RightCoefficient, res.RightConstant)

	out := SolveOutput{
		Result:   res,
		Solution: res.Solution().String(),
		Check:    res.CheckValue().String(),
	}
	if opts.Format == "json" {
		return formatter.Success(out)
	}
	writeSolveText(cmd.OutOrStdout(), out)
	return nil
}

func writeSolveText(w io.Writer, out SolveOutput) {
	name := out.Variable
	if name == "" {
		name = "x"
	}
	fmt.Fprintln(w, out.Text)
	fmt.Fprintf(w, "  left:     %s\n", side(name, out.LeftCoefficient, out.LeftConstant))
	fmt.Fprintf(w, "  right:    %s\n", side(name, out.RightCoefficient, out.RightConstant))
	fmt.Fprintf(w, "  solution: %s = %s\n", name, out.Solution)
	fmt.Fprintf(w, "  check:    %s\n", out.Check)
}

// side renders a linear side as "2x + 3", "-x - 4" or "7".
func side(name string, coef, constant int64) string {
	var term string
	switch coef {
	case 0:
		return fmt.Sprint(constant)
	case 1:
		term = name
	case -1:
		term = "-" + name
	default:
		term = fmt.Sprintf("%d%s", coef, name)
	}
	switch {
	case constant > 0:
		return fmt.Sprintf("%s + %d", term, constant)
	case constant < 0:
		return fmt.Sprintf("%s - %d", term, -constant)
	}
	return term
}

// failParse reports a rejected equation. Input checks map to E002, parse
// failures to E004; both exit 1.
func failParse(formatter *OutputFormatter, err error) error {
	code := parse.CodeOf(err)
	if code == "" {
		return formatter.Fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
	}
	cliCode := ErrCodeRejected
	if code == parse.CodeInput {
		cliCode = ErrCodeInput
	}
	return formatter.Fail(ExitFailure, cliCode, err.Error(), map[string]string{"code": string(code)})
}
