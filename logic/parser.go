package logic

import (
	"fmt"
	"io"
	"text/scanner"
	"unicode"
)

type parser struct {
	s     scanner.Scanner
	eof   bool                 // Have we reached eof yet?
	token string               // Last token read
	vars  map[string]*Variable // One shared instance per name
}

// Parse parses an equation from the given input Reader.
// It returns the corresponding Node; all variables start unset, and every
// occurrence of a name refers to the same variable instance.
// Equations are written using the following operators (from lowest to highest priority):
//
// - for an equivalence, the "=" operator,
// - for an implication, the "->" operator,
// - for a disjunction ("or"), the "|" operator,
// - for an exclusive disjunction ("xor"), the "^" operator,
// - for a conjunction ("and"), the "&" operator,
// - for a negation, the "~" unary operator.
//
// The literals "0" and "1" denote the constants. Parentheses can be used to
// group subexpressions.
func Parse(r io.Reader) (Node, error) {
	var s scanner.Scanner
	s.Init(r)
	p := parser{s: s, vars: make(map[string]*Variable)}
	p.scan()
	return p.parseEq()
}

func isOperator(token string) bool {
	return token == "=" || token == "->" || token == "|" || token == "^" || token == "&"
}

func (p *parser) scan() {
	if p.eof {
		return
	}
	p.eof = (p.s.Scan() == scanner.EOF)
	p.token = p.s.TokenText()
}

func (p *parser) parseEq() (f Node, err error) {
	if p.eof {
		return nil, fmt.Errorf("at position %v, expected expression, found EOF", p.s.Pos())
	}
	if isOperator(p.token) {
		return nil, fmt.Errorf("unexpected token %q at %s", p.token, p.s.Pos())
	}
	f, err = p.parseImplies()
	if err != nil {
		return nil, err
	}
	if p.eof {
		return f, nil
	}
	if p.token == "=" {
		p.scan()
		if p.eof {
			return nil, fmt.Errorf("unexpected EOF")
		}
		f2, err := p.parseEq()
		if err != nil {
			return nil, err
		}
		return Eq(f, f2), nil
	}
	return f, nil
}

func (p *parser) parseImplies() (f Node, err error) {
	f, err = p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.eof {
		return f, nil
	}
	if p.token == "-" {
		p.scan()
		if p.eof {
			return nil, fmt.Errorf("unexpected EOF")
		}
		if p.token != ">" {
			return nil, fmt.Errorf("invalid token %q at %v", "-"+p.token, p.s.Pos())
		}
		p.scan()
		if p.eof {
			return nil, fmt.Errorf("unexpected EOF")
		}
		f2, err := p.parseImplies()
		if err != nil {
			return nil, err
		}
		return Implies(f, f2), nil
	}
	return f, nil
}

func (p *parser) parseOr() (f Node, err error) {
	f, err = p.parseXor()
	if err != nil {
		return nil, err
	}
	if p.eof {
		return f, nil
	}
	if p.token == "|" {
		p.scan()
		if p.eof {
			return nil, fmt.Errorf("unexpected EOF")
		}
		f2, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		return Or(f, f2), nil
	}
	return f, nil
}

func (p *parser) parseXor() (f Node, err error) {
	f, err = p.parseAnd()
	if err != nil {
		return nil, err
	}
	if p.eof {
		return f, nil
	}
	if p.token == "^" {
		p.scan()
		if p.eof {
			return nil, fmt.Errorf("unexpected EOF")
		}
		f2, err := p.parseXor()
		if err != nil {
			return nil, err
		}
		return Xor(f, f2), nil
	}
	return f, nil
}

func (p *parser) parseAnd() (f Node, err error) {
	f, err = p.parseNot()
	if err != nil {
		return nil, err
	}
	if p.eof {
		return f, nil
	}
	if p.token == "&" {
		p.scan()
		if p.eof {
			return nil, fmt.Errorf("unexpected EOF")
		}
		f2, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		return And(f, f2), nil
	}
	return f, nil
}

func (p *parser) parseNot() (f Node, err error) {
	if isOperator(p.token) {
		return nil, fmt.Errorf("unexpected token %q at %s", p.token, p.s.Pos())
	}
	if p.token == "~" {
		p.scan()
		if p.eof {
			return nil, fmt.Errorf("unexpected EOF")
		}
		f, err = p.parseNot()
		if err != nil {
			return nil, err
		}
		return Not(f), nil
	}
	return p.parseBasic()
}

func (p *parser) parseBasic() (f Node, err error) {
	if isOperator(p.token) || p.token == ")" {
		return nil, fmt.Errorf("unexpected token %q at %s", p.token, p.s.Pos())
	}
	if p.token == "(" {
		p.scan()
		f, err = p.parseEq()
		if err != nil {
			return nil, err
		}
		if p.eof {
			return nil, fmt.Errorf("expected closing parenthesis, found EOF at %s", p.s.Pos())
		}
		if p.token != ")" {
			return nil, fmt.Errorf("expected closing parenthesis, found %q at %s", p.token, p.s.Pos())
		}
		p.scan()
		return f, nil
	}
	switch {
	case p.token == "0":
		defer p.scan()
		return Const(false), nil
	case p.token == "1":
		defer p.scan()
		return Const(true), nil
	case isIdent(p.token):
		defer p.scan()
		v, ok := p.vars[p.token]
		if !ok {
			v = Var(p.token)
			p.vars[p.token] = v
		}
		return v, nil
	default:
		return nil, fmt.Errorf("unexpected token %q at %s", p.token, p.s.Pos())
	}
}

func isIdent(token string) bool {
	for i, r := range token {
		if unicode.IsLetter(r) || r == '_' || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return token != ""
}
