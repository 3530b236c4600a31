// Package solver minimizes boolean expressions to two-level sum-of-products
// form via Quine-McCluskey prime implicant generation and an exact
// minimum-cost cover search.
package solver

import (
	"context"
	"fmt"

	"github.com/logic-framework/simplifier/pkg/simplifier"
)

type Solver interface {
	Solve(ctx context.Context, expression simplifier.Expression) (*Solution, error)
}

// Solution is a minimal cover together with its rendered sum-of-products
// form.
type Solution struct {
	terms []simplifier.Assignment
	text  string
}

// Terms returns the patterns of the cover's implicants.
func (s *Solution) Terms() []simplifier.Assignment {
	return s.terms
}

func (s *Solution) String() string {
	return s.text
}

type solver struct {
	cost   simplifier.CostFunc
	tracer simplifier.Tracer
}

// Solve runs the full pipeline: truth-table enumeration, prime implicant
// generation, minimum cover selection, rendering. Each run owns its data
// exclusively, so a Solver may be shared across goroutines. The context is
// only checked between phases; the phases themselves run to completion, so
// a caller needing a hard bound must limit the variable count.
func (s *solver) Solve(ctx context.Context, expression simplifier.Expression) (*Solution, error) {
	minterms, err := Minterms(expression)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	primes := Primes(minterms)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cover, err := MinimumCover(primes, minterms, s.cost, s.tracer)
	if err != nil {
		return nil, err
	}

	terms := make([]simplifier.Assignment, len(cover))
	for i := range cover {
		terms[i] = cover[i].Pattern()
	}
	return &Solution{terms: terms, text: Render(cover)}, nil
}

func NewSolver(options ...Option) (Solver, error) {
	s := solver{}
	for _, option := range append(options, defaults...) {
		if err := option(&s); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

type Option func(s *solver) error

func WithCost(cost simplifier.CostFunc) Option {
	return func(s *solver) error {
		if cost == nil {
			return fmt.Errorf("cost measure must not be nil")
		}
		s.cost = cost
		return nil
	}
}

func WithTracer(t simplifier.Tracer) Option {
	return func(s *solver) error {
		s.tracer = t
		return nil
	}
}

var defaults = []Option{
	func(s *solver) error {
		if s.cost == nil {
			s.cost = simplifier.LiteralCount
		}
		return nil
	},
	func(s *solver) error {
		if s.tracer == nil {
			s.tracer = DefaultTracer{}
		}
		return nil
	},
}
