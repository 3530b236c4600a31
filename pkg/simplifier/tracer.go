package simplifier

// SearchPosition describes one branch point of the cover search.
type SearchPosition interface {
	// Selected returns the patterns of the implicants chosen so far on
	// this branch.
	Selected() []Assignment
	// Candidate returns the pattern of the implicant about to be tried.
	Candidate() Assignment
	// Uncovered returns the number of minterms not yet covered.
	Uncovered() int
}

type Tracer interface {
	Trace(p SearchPosition)
}
