// Command kybur solves single-variable linear equations.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mikeyrichardson/kybur/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
