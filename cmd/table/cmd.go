package table

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/logic-framework/simplifier/internal/expr"
)

func NewTableCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "table <expression>",
		Short: "Prints the full truth table of a boolean expression",
		Long: `Prints the full truth table of a boolean expression, one row per
assignment over its variables. For instance:

  simplifier table 'a&b'
  a b | a & b
  0 0 | 0
  0 1 | 0
  1 0 | 0
  1 1 | 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printTable(cmd, args[0])
		},
	}
}

func printTable(cmd *cobra.Command, input string) error {
	parsed, err := expr.Parse(input)
	if err != nil {
		return fmt.Errorf("error parsing %q: %w", input, err)
	}

	names := append([]string(nil), parsed.Variables()...)
	sort.Strings(names)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s | %s\n", strings.Join(names, " "), parsed)

	row := make(map[string]bool, len(names))
	for bits := uint64(0); bits < uint64(1)<<len(names); bits++ {
		cells := make([]string, len(names))
		// highest-order variable first, so rows count up in binary
		for i, name := range names {
			set := bits&(uint64(1)<<(len(names)-1-i)) != 0
			row[name] = set
			if set {
				cells[i] = "1"
			} else {
				cells[i] = "0"
			}
		}
		truth, err := parsed.Evaluate(row)
		if err != nil {
			return err
		}
		value := "0"
		if truth {
			value = "1"
		}
		fmt.Fprintf(out, "%s | %s\n", strings.Join(cells, " "), value)
	}
	return nil
}
