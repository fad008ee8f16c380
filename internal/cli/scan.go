package cli

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/mikeyrichardson/kybur/internal/parse"
)

// ScanOutput is the JSON payload of the scan command.
type ScanOutput struct {
	Expression   string     `json:"expression"`
	Variable     string     `json:"variable,omitempty"`
	Coefficients []*big.Int `json:"coefficients"`
	Degree       int        `json:"degree"`
	Polynomial   string     `json:"polynomial"`
}

// NewScanCommand creates the scan command.
func NewScanCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "scan <expression>",
		Short: "Reduce an expression to polynomial coefficients",
		Long: `Reduce one side of an equation to its polynomial form.

Coefficients are listed in ascending powers of the variable, so "2(x+1)"
prints [2 2]. Expressions of any degree are accepted.

Examples:
  kybur scan "2(x+1)"
  kybur scan "x(x-1)(x+1)" --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(rootOpts, args[0], cmd)
		},
	}
}

func runScan(opts *RootOptions, text string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	expr, err := parse.ScanExpression(parse.Normalize(text))
	if err != nil {
		return failParse(formatter, err)
	}

	out := ScanOutput{
		Expression:   text,
		Coefficients: expr.Poly.Coefficients(),
		Degree:       expr.Poly.Degree(),
		Polynomial:   expr.Poly.String(),
	}
	if expr.Variable != 0 {
		out.Variable = string(expr.Variable)
	}

	if opts.Format == "json" {
		return formatter.Success(out)
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s\n", out.Polynomial)
	fmt.Fprintf(w, "  coefficients: %v\n", out.Coefficients)
	fmt.Fprintf(w, "  degree:       %d\n", out.Degree)
	return nil
}
