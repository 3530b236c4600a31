package simplifier

import (
	"fmt"
)

// Value is the tri-state value a variable holds within an Assignment.
type Value int8

const (
	False Value = iota
	True
	DontCare
)

func (v Value) String() string {
	switch v {
	case False:
		return "0"
	case True:
		return "1"
	default:
		return "-"
	}
}

// Expression values are the input to a minimization run. An expression is
// consumed exclusively through these two capabilities; the engine never
// inspects its structure.
type Expression interface {
	// Evaluate returns the truth value of the expression under the given
	// assignment. It fails if the assignment is missing a variable the
	// expression references.
	Evaluate(assignment map[string]bool) (bool, error)
	// Variables returns the distinct variable names the expression
	// references, in no particular order.
	Variables() []string
}

// VariableNotFound is returned by Expression.Evaluate when a referenced
// variable is absent from the assignment.
type VariableNotFound string

func (e VariableNotFound) Error() string {
	return fmt.Sprintf("variable %q not found in assignment", string(e))
}

// CostFunc ranks candidate covers by the patterns of their implicants;
// lower is better. The cover search prunes any partial selection whose
// cost already reaches the best known complete cover, so a measure must be
// monotone: adding a pattern to a cover must not decrease its cost.
type CostFunc func(cover []Assignment) int

// LiteralCount is the default cost measure: the total number of fixed
// (non-don't-care) variables across the cover, i.e. the literal count of
// the rendered sum-of-products expression.
func LiteralCount(cover []Assignment) int {
	total := 0
	for _, pattern := range cover {
		total += pattern.Fixed()
	}
	return total
}

// TermCount ranks covers by the number of product terms alone.
func TermCount(cover []Assignment) int {
	return len(cover)
}
