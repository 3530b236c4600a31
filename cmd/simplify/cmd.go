package simplify

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/logic-framework/simplifier/internal/expr"
	"github.com/logic-framework/simplifier/internal/solver"
	"github.com/logic-framework/simplifier/internal/verify"
)

func NewSimplifyCommand() *cobra.Command {
	var verifyResults bool
	var trace bool

	cmd := &cobra.Command{
		Use:   "simplify [file...]",
		Short: "Minimizes boolean expressions read line by line",
		Long: `Minimizes boolean expressions read line by line from the given files,
or from standard input when no file is given. Blank lines are skipped; one
minimal sum-of-products expression is printed per input line. For instance:

  echo 'a&~b | ~a&~b' | simplifier simplify
  ~b

Operators, loosest to tightest binding: = (equivalence), > (implication),
| (or), ^ (xor), & (and), ~ (negation). Constants are 0 and 1; variable
names are runs of letters.`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
					return fmt.Errorf("file (%s) not found", path)
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, verifyResults, trace)
		},
	}
	cmd.Flags().BoolVar(&verifyResults, "verify", false, "prove each result equivalent to its input with a SAT check")
	cmd.Flags().BoolVar(&trace, "trace", false, "log cover-search branches to stderr")
	return cmd
}

func run(cmd *cobra.Command, args []string, verifyResults, trace bool) error {
	var options []solver.Option
	if trace {
		options = append(options, solver.WithTracer(solver.LoggingTracer{Writer: cmd.ErrOrStderr()}))
	}
	so, err := solver.NewSolver(options...)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return simplifyLines(cmd, so, cmd.InOrStdin(), verifyResults)
	}
	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("error opening input file (%s): %w", path, err)
		}
		err = simplifyLines(cmd, so, f, verifyResults)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func simplifyLines(cmd *cobra.Command, so solver.Solver, r io.Reader, verifyResults bool) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parsed, err := expr.Parse(line)
		if err != nil {
			return fmt.Errorf("error parsing %q: %w", line, err)
		}
		solution, err := so.Solve(cmd.Context(), parsed)
		if err != nil {
			return err
		}
		if verifyResults {
			ok, err := verify.Equivalent(parsed, solution.Terms())
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("result %q is not equivalent to input %q", solution, line)
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), solution)
	}
	return scanner.Err()
}
