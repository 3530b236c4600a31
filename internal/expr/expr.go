// Package expr provides the boolean expression tree and its parser. The
// minimization engine consumes expressions only through the capability set
// defined in pkg/simplifier; nothing outside this package depends on the
// tree's shape except the SAT verifier.
package expr

import (
	"fmt"
	"sort"

	"github.com/logic-framework/simplifier/pkg/simplifier"
)

// Binary operator priorities, loosest binding first. All operators are
// left-associative.
const (
	PriEquiv = iota
	PriImplies
	PriOr
	PriXor
	PriAnd
)

// Expr is a node of a parsed boolean expression tree.
type Expr interface {
	simplifier.Expression
	fmt.Stringer
}

// Const is the constant 0 or 1.
type Const bool

func (c Const) Evaluate(map[string]bool) (bool, error) {
	return bool(c), nil
}

func (c Const) Variables() []string {
	return nil
}

func (c Const) String() string {
	if c {
		return "1"
	}
	return "0"
}

// Var references a named variable.
type Var struct {
	Name string
}

func (v Var) Evaluate(assignment map[string]bool) (bool, error) {
	val, ok := assignment[v.Name]
	if !ok {
		return false, simplifier.VariableNotFound(v.Name)
	}
	return val, nil
}

func (v Var) Variables() []string {
	return []string{v.Name}
}

func (v Var) String() string {
	return v.Name
}

// Not negates its operand.
type Not struct {
	X Expr
}

func (n Not) Evaluate(assignment map[string]bool) (bool, error) {
	val, err := n.X.Evaluate(assignment)
	if err != nil {
		return false, err
	}
	return !val, nil
}

func (n Not) Variables() []string {
	return n.X.Variables()
}

func (n Not) String() string {
	if _, ok := n.X.(Binary); ok {
		return "~(" + n.X.String() + ")"
	}
	return "~" + n.X.String()
}

// Binary applies one of the operators '=', '>', '|', '^', '&' to two
// operands. Pri is the operator's priority and drives parenthesization
// when rendering the tree back to text.
type Binary struct {
	Op    byte
	Pri   int
	Left  Expr
	Right Expr
}

func (b Binary) Evaluate(assignment map[string]bool) (bool, error) {
	p, err := b.Left.Evaluate(assignment)
	if err != nil {
		return false, err
	}
	q, err := b.Right.Evaluate(assignment)
	if err != nil {
		return false, err
	}
	switch b.Op {
	case '=':
		return p == q, nil
	case '>':
		return !p || q, nil
	case '|':
		return p || q, nil
	case '^':
		return p != q, nil
	case '&':
		return p && q, nil
	}
	return false, fmt.Errorf("invalid operator %q", string(b.Op))
}

func (b Binary) Variables() []string {
	seen := make(map[string]struct{})
	for _, side := range []Expr{b.Left, b.Right} {
		for _, name := range side.Variables() {
			seen[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (b Binary) String() string {
	return b.side(b.Left) + " " + string(b.Op) + " " + b.side(b.Right)
}

// side parenthesizes an operand bound more loosely than b itself.
func (b Binary) side(e Expr) string {
	if child, ok := e.(Binary); ok && child.Pri < b.Pri {
		return "(" + child.String() + ")"
	}
	return e.String()
}
