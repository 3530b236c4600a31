package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logic-framework/simplifier/pkg/simplifier"
)

func TestParse(t *testing.T) {
	type tc struct {
		Name     string
		Input    string
		Rendered string
	}

	for _, tt := range []tc{
		{Name: "conjunction", Input: "a&b", Rendered: "a & b"},
		{Name: "negated operand", Input: "a|~b", Rendered: "a | ~b"},
		{Name: "parenthesized", Input: "(~a & b) |c", Rendered: "~a & b | c"},
		{Name: "redundant parens", Input: "(a & (b) |c)", Rendered: "a & b | c"},
		{Name: "grouping overrides priority", Input: "a & (b |c)", Rendered: "a & (b | c)"},
		{Name: "implication", Input: "(a > b) |c", Rendered: "(a > b) | c"},
		{Name: "implication of disjunction", Input: "a > (b |~c)", Rendered: "a > b | ~c"},
		{Name: "multi letter names", Input: "abc & def", Rendered: "abc & def"},
		{Name: "constants", Input: "a & (b) & 1", Rendered: "a & b & 1"},
		{Name: "xor binds tighter than or", Input: "a|b^c", Rendered: "a | b ^ c"},
		{Name: "equivalence is loosest", Input: "a=b|c", Rendered: "a = b | c"},
		{Name: "left associative", Input: "a&b&c", Rendered: "a & b & c"},
		{Name: "leading space", Input: " a & b", Rendered: "a & b"},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			parsed, err := Parse(tt.Input)
			require.NoError(t, err)
			assert.Equal(t, tt.Rendered, parsed.String())

			// rendering must parse back to the same tree
			reparsed, err := Parse(parsed.String())
			require.NoError(t, err)
			assert.Equal(t, parsed.String(), reparsed.String())
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"a & (~b |c",
		"a) & (b |c",
		"abc & def *",
		"a &",
		"~",
		"()",
		"a b",
	} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			assert.Error(t, err)
		})
	}
}

func TestEvaluate(t *testing.T) {
	type tc struct {
		Name       string
		Input      string
		Assignment map[string]bool
		Truth      bool
	}

	for _, tt := range []tc{
		{Name: "and false", Input: "a & (b) & 1", Assignment: map[string]bool{"a": true, "b": false}, Truth: false},
		{Name: "and true", Input: "a&b", Assignment: map[string]bool{"a": true, "b": true}, Truth: true},
		{Name: "or", Input: "a|b", Assignment: map[string]bool{"a": false, "b": true}, Truth: true},
		{Name: "xor", Input: "a^b", Assignment: map[string]bool{"a": true, "b": true}, Truth: false},
		{Name: "implication vacuous", Input: "a>b", Assignment: map[string]bool{"a": false, "b": false}, Truth: true},
		{Name: "implication failed", Input: "a>b", Assignment: map[string]bool{"a": true, "b": false}, Truth: false},
		{Name: "equivalence", Input: "a=b", Assignment: map[string]bool{"a": false, "b": false}, Truth: true},
		{Name: "negation", Input: "~a", Assignment: map[string]bool{"a": false}, Truth: true},
		{Name: "negated group", Input: "~(a|b)", Assignment: map[string]bool{"a": false, "b": false}, Truth: true},
		{Name: "constant false", Input: "0", Assignment: nil, Truth: false},
		{Name: "constant true", Input: "1", Assignment: nil, Truth: true},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			parsed, err := Parse(tt.Input)
			require.NoError(t, err)
			truth, err := parsed.Evaluate(tt.Assignment)
			require.NoError(t, err)
			assert.Equal(t, tt.Truth, truth)
		})
	}
}

func TestEvaluateMissingVariable(t *testing.T) {
	parsed, err := Parse("a & b")
	require.NoError(t, err)

	_, err = parsed.Evaluate(map[string]bool{"a": true})
	require.Error(t, err)
	assert.ErrorIs(t, err, simplifier.VariableNotFound("b"))
}

func TestVariables(t *testing.T) {
	parsed, err := Parse("b & a | ~c & a > (d = a)")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, parsed.Variables())

	constant, err := Parse("1")
	require.NoError(t, err)
	assert.Empty(t, constant.Variables())
}
