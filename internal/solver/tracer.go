package solver

import (
	"fmt"
	"io"

	"github.com/logic-framework/simplifier/pkg/simplifier"
)

type DefaultTracer struct{}

func (DefaultTracer) Trace(_ simplifier.SearchPosition) {
}

type LoggingTracer struct {
	Writer io.Writer
}

func (t LoggingTracer) Trace(p simplifier.SearchPosition) {
	fmt.Fprintf(t.Writer, "---\nSelected:\n")
	for _, pattern := range p.Selected() {
		fmt.Fprintf(t.Writer, "- %s\n", pattern)
	}
	fmt.Fprintf(t.Writer, "Trying %s with %d minterms uncovered\n", p.Candidate(), p.Uncovered())
}
