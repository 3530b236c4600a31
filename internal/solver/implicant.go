package solver

import (
	"sort"
	"strings"

	"github.com/logic-framework/simplifier/pkg/simplifier"
)

// Implicant pairs an assignment pattern with the provenance set of
// original minterms it represents. Implicants are immutable; merging
// produces a new one. The pattern holds DontCare exactly where provenance
// members disagree, so provenance is the set of minterms consistent with
// the pattern.
type Implicant struct {
	pattern    simplifier.Assignment
	provenance map[string]simplifier.Assignment
	key        string
}

// newImplicant wraps a minterm as the trivial implicant representing only
// itself.
func newImplicant(minterm simplifier.Assignment) Implicant {
	provenance := map[string]simplifier.Assignment{minterm.Key(): minterm}
	return Implicant{
		pattern:    minterm,
		provenance: provenance,
		key:        implicantKey(minterm, provenance),
	}
}

func implicantKey(pattern simplifier.Assignment, provenance map[string]simplifier.Assignment) string {
	keys := make([]string, 0, len(provenance))
	for k := range provenance {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return pattern.Key() + " <= {" + strings.Join(keys, "; ") + "}"
}

// Pattern returns the implicant's assignment pattern.
func (imp Implicant) Pattern() simplifier.Assignment {
	return imp.pattern
}

// Key identifies the implicant by (pattern, provenance); implicants
// reached through different merge paths share a key.
func (imp Implicant) Key() string {
	return imp.key
}

// Covers reports whether the given minterm is in the implicant's
// provenance.
func (imp Implicant) Covers(minterm simplifier.Assignment) bool {
	return imp.coversKey(minterm.Key())
}

func (imp Implicant) coversKey(mintermKey string) bool {
	_, ok := imp.provenance[mintermKey]
	return ok
}

func (imp Implicant) String() string {
	return imp.key
}

// merge combines two merge-adjacent implicants: their patterns must agree
// on every variable except exactly one, which must be True in one and
// False in the other. The result has DontCare at the differing variable
// and the union of both provenances. ok is false if the implicants are not
// adjacent.
func (imp Implicant) merge(other Implicant) (Implicant, bool) {
	differing := ""
	found := false
	for _, name := range imp.pattern.Variables() {
		v1, _ := imp.pattern.Value(name)
		v2, _ := other.pattern.Value(name)
		if v1 == v2 {
			continue
		}
		if found || v1 == simplifier.DontCare || v2 == simplifier.DontCare {
			return Implicant{}, false
		}
		differing = name
		found = true
	}
	if !found {
		return Implicant{}, false
	}

	pattern := imp.pattern.With(differing, simplifier.DontCare)
	provenance := make(map[string]simplifier.Assignment, len(imp.provenance)+len(other.provenance))
	for k, m := range imp.provenance {
		provenance[k] = m
	}
	for k, m := range other.provenance {
		provenance[k] = m
	}
	return Implicant{
		pattern:    pattern,
		provenance: provenance,
		key:        implicantKey(pattern, provenance),
	}, true
}
