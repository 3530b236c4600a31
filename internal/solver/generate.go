package solver

import (
	"sort"

	"github.com/logic-framework/simplifier/pkg/simplifier"
)

// stage partitions a generation's implicants by the number of True
// positions in their patterns. Merge-adjacent implicants always sit in
// neighboring buckets, which bounds the merge search to adjacent-bucket
// pairs instead of all pairs.
type stage map[int][]Implicant

// Primes generates all prime implicants of the given minterm set by
// staged adjacency merging (the Quine-McCluskey merge phase). Each stage merges every adjacent-bucket pair
// of the previous one; patterns strictly gain DontCare positions per
// stage, so the process halts after at most V stages. An implicant never
// consumed by a later merge is prime.
//
// Consumption is tracked in a set keyed by implicant identity rather than
// by flagging the implicants themselves, which stay immutable. The result
// is deduplicated by (pattern, provenance): an implicant reachable through
// several merge paths counts once.
func Primes(minterms []simplifier.Assignment) []Implicant {
	current := make(stage)
	for _, m := range minterms {
		imp := newImplicant(m)
		current[m.Positives()] = append(current[m.Positives()], imp)
	}

	stages := []stage{current}
	consumed := make(map[string]bool)
	for {
		next := make(stage)
		nextSeen := make(map[string]bool)
		anyMerged := false
		for n, bucket := range current {
			upper, ok := current[n+1]
			if !ok {
				continue
			}
			for _, a := range bucket {
				for _, b := range upper {
					merged, ok := a.merge(b)
					if !ok {
						continue
					}
					consumed[a.Key()] = true
					consumed[b.Key()] = true
					anyMerged = true
					if nextSeen[merged.Key()] {
						continue
					}
					nextSeen[merged.Key()] = true
					positives := merged.Pattern().Positives()
					next[positives] = append(next[positives], merged)
				}
			}
		}
		if !anyMerged {
			break
		}
		stages = append(stages, next)
		current = next
	}

	var primes []Implicant
	seen := make(map[string]bool)
	for _, s := range stages {
		for _, bucket := range s {
			for _, imp := range bucket {
				if consumed[imp.Key()] || seen[imp.Key()] {
					continue
				}
				seen[imp.Key()] = true
				primes = append(primes, imp)
			}
		}
	}
	sort.Slice(primes, func(i, j int) bool { return primes[i].Key() < primes[j].Key() })
	return primes
}
