package root

import (
	"github.com/spf13/cobra"

	"github.com/logic-framework/simplifier/cmd/simplify"
	"github.com/logic-framework/simplifier/cmd/table"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "simplifier",
		Short: "Simplifier reduces boolean expressions to minimal sum-of-products form",
		Long: `A boolean expression minimizer written in Go. It enumerates the truth
table of an expression, derives all prime implicants by iterative adjacency
merging, and selects a minimum-cost cover by exact branch-and-bound search.`,
	}

	// add sub-commands
	rootCmd.AddCommand(simplify.NewSimplifyCommand())
	rootCmd.AddCommand(table.NewTableCommand())

	return rootCmd
}
