package solver

import (
	"errors"
	"fmt"

	"github.com/logic-framework/simplifier/pkg/simplifier"
)

// ErrInternal marks states the generator's completeness invariant should
// make impossible. Seeing it wrapped in an error indicates a defect in
// prime implicant generation, not bad input.
var ErrInternal = errors.New("internal solver failure")

// MinimumCover selects a subset of primes whose provenances jointly cover
// every minterm, with minimum cost under the given measure. The search is
// exact: at every level it branches over each implicant of the globally
// smallest coverage group (for a group of one this forces an essential
// implicant with no branching) and keeps the cheapest complete cover,
// pruning branches that can no longer beat it.
//
// When several covers share the lowest cost the first one found wins. The
// search order is deterministic, so results are stable run to run, but no
// canonical tie-break (such as smallest rendered text) is imposed.
func MinimumCover(primes []Implicant, minterms []simplifier.Assignment, cost simplifier.CostFunc, tracer simplifier.Tracer) ([]Implicant, error) {
	if len(minterms) == 0 {
		return nil, nil
	}

	coverage := make(map[string][]int, len(minterms))
	for _, m := range minterms {
		var group []int
		for i := range primes {
			if primes[i].Covers(m) {
				group = append(group, i)
			}
		}
		if len(group) == 0 {
			return nil, fmt.Errorf("no prime implicant covers minterm %s: %w", m, ErrInternal)
		}
		coverage[m.Key()] = group
	}

	s := &coverSearch{
		primes:   primes,
		coverage: coverage,
		cost:     cost,
		tracer:   tracer,
	}
	s.search()
	if s.best == nil {
		return nil, fmt.Errorf("cover search found no complete cover: %w", ErrInternal)
	}

	cover := make([]Implicant, len(s.best))
	for i, p := range s.best {
		cover[i] = primes[p]
	}
	return cover, nil
}

type coverSearch struct {
	primes   []Implicant
	coverage map[string][]int
	cost     simplifier.CostFunc
	tracer   simplifier.Tracer

	selected []int
	best     []int
	bestCost int
}

func (s *coverSearch) search() {
	if len(s.coverage) == 0 {
		c := s.cost(s.patterns())
		if s.best == nil || c < s.bestCost {
			s.best = append([]int(nil), s.selected...)
			s.bestCost = c
		}
		return
	}
	if s.best != nil && s.cost(s.patterns()) >= s.bestCost {
		// cost is monotone, so this branch cannot beat the best
		return
	}

	for _, candidate := range s.coverage[s.smallestGroup()] {
		s.tracer.Trace(position{
			selected:  s.patterns(),
			candidate: s.primes[candidate].Pattern(),
			uncovered: len(s.coverage),
		})
		removed := s.take(candidate)
		s.selected = append(s.selected, candidate)
		s.search()
		s.selected = s.selected[:len(s.selected)-1]
		s.restore(removed)
	}
}

// smallestGroup returns the minterm with the fewest covering primes, the
// hardest one to cover. Ties resolve to the smallest key to keep the
// search order stable.
func (s *coverSearch) smallestGroup() string {
	bestKey := ""
	bestLen := 0
	for key, group := range s.coverage {
		if bestKey == "" || len(group) < bestLen || (len(group) == bestLen && key < bestKey) {
			bestKey = key
			bestLen = len(group)
		}
	}
	return bestKey
}

type removedGroup struct {
	key   string
	group []int
}

// take removes every minterm the candidate covers from the coverage
// relation, returning the removed entries so restore can undo the
// selection on backtrack.
func (s *coverSearch) take(candidate int) []removedGroup {
	var removed []removedGroup
	for key, group := range s.coverage {
		if s.primes[candidate].coversKey(key) {
			removed = append(removed, removedGroup{key: key, group: group})
		}
	}
	for _, r := range removed {
		delete(s.coverage, r.key)
	}
	return removed
}

func (s *coverSearch) restore(removed []removedGroup) {
	for _, r := range removed {
		s.coverage[r.key] = r.group
	}
}

func (s *coverSearch) patterns() []simplifier.Assignment {
	patterns := make([]simplifier.Assignment, len(s.selected))
	for i, p := range s.selected {
		patterns[i] = s.primes[p].Pattern()
	}
	return patterns
}

type position struct {
	selected  []simplifier.Assignment
	candidate simplifier.Assignment
	uncovered int
}

func (p position) Selected() []simplifier.Assignment {
	return p.selected
}

func (p position) Candidate() simplifier.Assignment {
	return p.candidate
}

func (p position) Uncovered() int {
	return p.uncovered
}
