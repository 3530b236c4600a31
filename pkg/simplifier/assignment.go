package simplifier

import (
	"sort"
	"strings"
)

// Assignment is an immutable tri-state vector over variable names. Two
// assignments are equal iff they hold the same value for the same set of
// variables, don't-care positions included.
type Assignment struct {
	vals map[string]Value
	key  string
}

// NewAssignment returns an Assignment holding a copy of vals.
func NewAssignment(vals map[string]Value) Assignment {
	copied := make(map[string]Value, len(vals))
	for name, v := range vals {
		copied[name] = v
	}
	return Assignment{vals: copied, key: keyOf(copied)}
}

func keyOf(vals map[string]Value) string {
	names := make([]string, 0, len(vals))
	for name := range vals {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(vals[name].String())
	}
	return b.String()
}

// Value returns the value held by the named variable.
func (a Assignment) Value(name string) (Value, bool) {
	v, ok := a.vals[name]
	return v, ok
}

// Variables returns the variable names in sorted order.
func (a Assignment) Variables() []string {
	names := make([]string, 0, len(a.vals))
	for name := range a.vals {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// With returns a copy of a with the named variable set to v.
func (a Assignment) With(name string, v Value) Assignment {
	copied := make(map[string]Value, len(a.vals)+1)
	for n, val := range a.vals {
		copied[n] = val
	}
	copied[name] = v
	return Assignment{vals: copied, key: keyOf(copied)}
}

// Positives counts variables assigned True.
func (a Assignment) Positives() int {
	count := 0
	for _, v := range a.vals {
		if v == True {
			count++
		}
	}
	return count
}

// Fixed counts variables holding a value other than DontCare. For an
// implicant pattern this is the literal count of its product term.
func (a Assignment) Fixed() int {
	count := 0
	for _, v := range a.vals {
		if v != DontCare {
			count++
		}
	}
	return count
}

// Len returns the number of variables in the assignment.
func (a Assignment) Len() int {
	return len(a.vals)
}

// Key returns a canonical textual form of the assignment. Equal
// assignments share a key, so keys may index maps and sets.
func (a Assignment) Key() string {
	return a.key
}

// Equal reports structural equality over the full variable set.
func (a Assignment) Equal(b Assignment) bool {
	return a.key == b.key
}

// Bools converts a fully specified assignment into the map form consumed
// by Expression.Evaluate. ok is false if any position is DontCare.
func (a Assignment) Bools() (map[string]bool, bool) {
	bools := make(map[string]bool, len(a.vals))
	for name, v := range a.vals {
		if v == DontCare {
			return nil, false
		}
		bools[name] = v == True
	}
	return bools, true
}

func (a Assignment) String() string {
	return a.key
}
