package solver

import (
	"fmt"
	"sort"

	"github.com/logic-framework/simplifier/pkg/simplifier"
)

// Minterms walks every assignment over the expression's variables and
// returns the ones for which the expression evaluates true. The walk
// visits 2^V truth-table rows and is the dominant scalability limit of the
// whole engine; bounding the variable count is the caller's concern.
//
// An evaluation failure means the expression violated its capability
// contract (the assignment is built from its own Variables) and aborts the
// run.
func Minterms(expression simplifier.Expression) ([]simplifier.Assignment, error) {
	names := append([]string(nil), expression.Variables()...)
	sort.Strings(names)

	row := make(map[string]bool, len(names))
	var minterms []simplifier.Assignment
	for bits := uint64(0); bits < uint64(1)<<len(names); bits++ {
		for i, name := range names {
			row[name] = bits&(uint64(1)<<i) != 0
		}
		truth, err := expression.Evaluate(row)
		if err != nil {
			return nil, fmt.Errorf("evaluating truth table row: %w", err)
		}
		if !truth {
			continue
		}
		vals := make(map[string]simplifier.Value, len(names))
		for name, b := range row {
			if b {
				vals[name] = simplifier.True
			} else {
				vals[name] = simplifier.False
			}
		}
		minterms = append(minterms, simplifier.NewAssignment(vals))
	}
	return minterms, nil
}
