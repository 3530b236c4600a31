package expr

import (
	"fmt"
	"strings"
)

// ops holds the operator set for each priority level; ops[PriAnd] binds
// tightest.
var ops = [...]string{
	PriEquiv:   "=",
	PriImplies: ">",
	PriOr:      "|",
	PriXor:     "^",
	PriAnd:     "&",
}

type parser struct {
	data string
	pos  int
}

// Parse parses data into an expression tree. The grammar: binary operators
// '= > | ^ &' in increasing binding strength, all left-associative; unary
// '~' on terms; parentheses; the constants '0' and '1'; variable names are
// runs of letters. Spaces are ignored.
func Parse(data string) (Expr, error) {
	p := &parser{data: data}
	p.skipSpaces()
	parsed, err := p.parseLevel(0)
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.data) {
		return nil, fmt.Errorf("unexpected %q at position %d", p.data[p.pos], p.pos)
	}
	return parsed, nil
}

func (p *parser) parseLevel(pri int) (Expr, error) {
	if pri >= len(ops) {
		return p.parseNeg()
	}
	left, err := p.parseLevel(pri + 1)
	if err != nil {
		return nil, err
	}
	for !p.end() && strings.IndexByte(ops[pri], p.look()) >= 0 {
		op := p.next()
		p.skipSpaces()
		right, err := p.parseLevel(pri + 1)
		if err != nil {
			return nil, err
		}
		left = Binary{Op: op, Pri: pri, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseNeg() (Expr, error) {
	if !p.end() && p.look() == '~' {
		p.next()
		p.skipSpaces()
		x, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		return Not{X: x}, nil
	}
	return p.parseTerm()
}

func (p *parser) parseTerm() (Expr, error) {
	if p.end() {
		return nil, fmt.Errorf("unexpected end of input")
	}
	switch c := p.look(); c {
	case '(':
		p.next()
		parsed, err := p.parseLevel(0)
		if err != nil {
			return nil, err
		}
		if p.end() || p.next() != ')' {
			return nil, fmt.Errorf("expected ) at position %d", p.pos)
		}
		p.skipSpaces()
		return parsed, nil
	case '0':
		p.next()
		p.skipSpaces()
		return Const(false), nil
	case '1':
		p.next()
		p.skipSpaces()
		return Const(true), nil
	default:
		start := p.pos
		for !p.end() && isAlpha(p.look()) {
			p.pos++
		}
		if p.pos == start {
			return nil, fmt.Errorf("expected variable name at position %d", p.pos)
		}
		name := p.data[start:p.pos]
		p.skipSpaces()
		return Var{Name: name}, nil
	}
}

func (p *parser) look() byte {
	return p.data[p.pos]
}

func (p *parser) next() byte {
	c := p.data[p.pos]
	p.pos++
	return c
}

func (p *parser) end() bool {
	return p.pos >= len(p.data)
}

func (p *parser) skipSpaces() {
	for !p.end() && p.look() == ' ' {
		p.pos++
	}
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
