package e2e

import (
	"bytes"
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/logic-framework/simplifier/cmd/root"
	"github.com/logic-framework/simplifier/internal/expr"
	"github.com/logic-framework/simplifier/internal/solver"
	"github.com/logic-framework/simplifier/internal/verify"
)

var _ = Describe("Minimization pipeline", func() {
	var (
		so  solver.Solver
		ctx context.Context
	)
	BeforeEach(func() {
		var err error
		so, err = solver.NewSolver()
		Expect(err).To(BeNil())
		ctx = context.Background()
	})

	DescribeTable("produces the expected minimal form",
		func(input, output string) {
			parsed, err := expr.Parse(input)
			Expect(err).To(BeNil())
			solution, err := so.Solve(ctx, parsed)
			Expect(err).To(BeNil())
			Expect(solution.String()).To(Equal(output))
		},
		Entry("irreducible conjunction", "a&b", "a&b"),
		Entry("tautology", "a|~a", "1"),
		Entry("contradiction", "a&~a", "0"),
		Entry("redundant variable", "a&(b|~b)", "a"),
		Entry("adjacent pair", "a&~b | ~a&~b", "~b"),
		Entry("disjunction", "a|b", "a | b"),
		Entry("four variable reduction",
			"~a&b&~c&~d | a&~b&~c&~d | a&~b&~c&d | a&~b&c&~d | a&~b&c&d | a&b&~c&~d | a&b&c&~d | a&b&c&d",
			"a&c | a&~b | b&~c&~d"),
	)

	It("produces SAT-verified equivalent results for every operator", func() {
		for _, input := range []string{
			"a&b", "a|b", "a^b", "a>b", "a=b", "~a",
			"a^b^c^d", "(a>b)&(b>c)&(c>a)", "~(a=b)|c",
		} {
			parsed, err := expr.Parse(input)
			Expect(err).To(BeNil())
			solution, err := so.Solve(ctx, parsed)
			Expect(err).To(BeNil())
			equivalent, err := verify.Equivalent(parsed, solution.Terms())
			Expect(err).To(BeNil())
			Expect(equivalent).To(BeTrue(), "minimization of %q produced inequivalent %q", input, solution)
		}
	})

	It("is idempotent on the truth table", func() {
		parsed, err := expr.Parse("a&b | b&c | ~a&~c")
		Expect(err).To(BeNil())
		once, err := so.Solve(ctx, parsed)
		Expect(err).To(BeNil())
		reparsed, err := expr.Parse(once.String())
		Expect(err).To(BeNil())
		twice, err := so.Solve(ctx, reparsed)
		Expect(err).To(BeNil())

		equivalent, err := verify.Equivalent(reparsed, twice.Terms())
		Expect(err).To(BeNil())
		Expect(equivalent).To(BeTrue())
	})
})

var _ = Describe("Command line interface", func() {
	It("simplifies line-oriented input from stdin", func() {
		cmd := root.NewRootCmd()
		cmd.SetArgs([]string{"simplify", "--verify"})
		cmd.SetIn(bytes.NewBufferString("a&~b | ~a&~b\n\na|~a\n"))
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&out)

		Expect(cmd.Execute()).To(Succeed())
		Expect(out.String()).To(Equal("~b\n1\n"))
	})

	It("rejects unparseable input", func() {
		cmd := root.NewRootCmd()
		cmd.SetArgs([]string{"simplify"})
		cmd.SetIn(bytes.NewBufferString("a && b\n"))
		var out, errOut bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&errOut)

		Expect(cmd.Execute()).ToNot(Succeed())
	})

	It("prints a truth table", func() {
		cmd := root.NewRootCmd()
		cmd.SetArgs([]string{"table", "a&b"})
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&out)

		Expect(cmd.Execute()).To(Succeed())
		Expect(out.String()).To(Equal("a b | a & b\n0 0 | 0\n0 1 | 0\n1 0 | 0\n1 1 | 1\n"))
	})
})
