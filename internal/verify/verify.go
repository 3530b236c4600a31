// Package verify proves a minimized cover equivalent to its source
// expression. Both sides are compiled into one logic circuit and the XOR
// miter of their roots is handed to a SAT solver: the miter is
// unsatisfiable exactly when the two functions agree on every assignment.
package verify

import (
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/logic-framework/simplifier/internal/expr"
	"github.com/logic-framework/simplifier/pkg/simplifier"
)

const unsatisfiable = -1

// Equivalent reports whether the expression and the sum-of-products cover
// agree for every variable assignment.
func Equivalent(e expr.Expr, cover []simplifier.Assignment) (bool, error) {
	c := logic.NewC()
	lits := make(map[string]z.Lit)
	litOf := func(name string) z.Lit {
		if m, ok := lits[name]; ok {
			return m
		}
		m := c.Lit()
		lits[name] = m
		return m
	}

	lhs, err := compile(c, e, litOf)
	if err != nil {
		return false, err
	}
	rhs := compileCover(c, cover, litOf)
	miter := c.Xor(lhs, rhs)

	g := gini.New()
	c.ToCnf(g)
	g.Assume(miter)
	return g.Solve() == unsatisfiable, nil
}

func compile(c *logic.C, e expr.Expr, litOf func(string) z.Lit) (z.Lit, error) {
	switch n := e.(type) {
	case expr.Const:
		if n {
			return c.T, nil
		}
		return c.F, nil
	case expr.Var:
		return litOf(n.Name), nil
	case expr.Not:
		m, err := compile(c, n.X, litOf)
		if err != nil {
			return z.LitNull, err
		}
		return m.Not(), nil
	case expr.Binary:
		a, err := compile(c, n.Left, litOf)
		if err != nil {
			return z.LitNull, err
		}
		b, err := compile(c, n.Right, litOf)
		if err != nil {
			return z.LitNull, err
		}
		switch n.Op {
		case '&':
			return c.And(a, b), nil
		case '|':
			return c.Or(a, b), nil
		case '^':
			return c.Xor(a, b), nil
		case '>':
			return c.Implies(a, b), nil
		case '=':
			return c.Xor(a, b).Not(), nil
		}
		return z.LitNull, fmt.Errorf("invalid operator %q", string(n.Op))
	}
	return z.LitNull, fmt.Errorf("unknown expression node %T", e)
}

func compileCover(c *logic.C, cover []simplifier.Assignment, litOf func(string) z.Lit) z.Lit {
	if len(cover) == 0 {
		return c.F
	}
	terms := make([]z.Lit, 0, len(cover))
	for _, pattern := range cover {
		term := c.T
		for _, name := range pattern.Variables() {
			switch v, _ := pattern.Value(name); v {
			case simplifier.True:
				term = c.And(term, litOf(name))
			case simplifier.False:
				term = c.And(term, litOf(name).Not())
			}
		}
		terms = append(terms, term)
	}
	return c.Ors(terms...)
}
