package solver

import (
	"sort"
	"strings"

	"github.com/logic-framework/simplifier/pkg/simplifier"
)

// Render turns a cover into sum-of-products text. Product terms are sorted
// by their rendered form and joined with " | "; an empty cover renders the
// constant "0".
func Render(cover []Implicant) string {
	if len(cover) == 0 {
		return "0"
	}
	terms := make([]string, len(cover))
	for i := range cover {
		terms[i] = renderTerm(cover[i].Pattern())
	}
	sort.Strings(terms)
	return strings.Join(terms, " | ")
}

// renderTerm renders a pattern as a conjunction of literals: the variable
// name where the pattern holds True, its negation where False, nothing
// where DontCare. A pattern with no fixed variable renders the constant
// "1".
func renderTerm(pattern simplifier.Assignment) string {
	var lits []string
	for _, name := range pattern.Variables() {
		switch v, _ := pattern.Value(name); v {
		case simplifier.True:
			lits = append(lits, name)
		case simplifier.False:
			lits = append(lits, "~"+name)
		}
	}
	if len(lits) == 0 {
		return "1"
	}
	return strings.Join(lits, "&")
}
