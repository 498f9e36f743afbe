package logic

import (
	"strings"
	"testing"
)

// To each expression, associate the expected constructor form.
var exprToRepr = map[string]string{
	"foo":             `Var("foo")`,
	"~foo":            `Not(Var("foo"))`,
	"~~foo":           `Not(Not(Var("foo")))`,
	"(foo)":           `Var("foo")`,
	"1":               `Const(true)`,
	"0 | x":           `Or(Const(false), Var("x"))`,
	"a | b":           `Or(Var("a"), Var("b"))`,
	"a & b":           `And(Var("a"), Var("b"))`,
	"a ^ b":           `Xor(Var("a"), Var("b"))`,
	"a -> b":          `Implies(Var("a"), Var("b"))`,
	"a = b":           `Eq(Var("a"), Var("b"))`,
	"~(a|  b)":        `Not(Or(Var("a"), Var("b")))`,
	"a & b & c":       `And(Var("a"), Var("b"), Var("c"))`,
	"a & (b & c) & d": `And(Var("a"), Var("b"), Var("c"), Var("d"))`,
	"a | b & c":       `Or(Var("a"), And(Var("b"), Var("c")))`,
	"a ^ b | c":       `Or(Xor(Var("a"), Var("b")), Var("c"))`,
	"a -> b -> c":     `Implies(Var("a"), Implies(Var("b"), Var("c")))`,
	"a = b -> c":      `Eq(Var("a"), Implies(Var("b"), Var("c")))`,
	"~a & ~(b | 0)":   `And(Not(Var("a")), Not(Or(Var("b"), Const(false))))`,
}

func TestParse(t *testing.T) {
	for expr, expected := range exprToRepr {
		f, err := Parse(strings.NewReader(expr))
		if err != nil {
			t.Errorf("could not parse expression %q: %v", expr, err)
		} else if f.Repr() != expected {
			t.Errorf("for expression %q, expected %q, got %q", expr, expected, f.Repr())
		}
	}
}

var invalidExprs = []string{
	"",
	"& a",
	"a &",
	"~",
	"(a",
	"()",
	"a -< b",
	"a & ,",
}

func TestParseInvalid(t *testing.T) {
	for _, expr := range invalidExprs {
		if f, err := Parse(strings.NewReader(expr)); err == nil {
			t.Errorf("expression %q should not parse, got %q", expr, f.Repr())
		}
	}
}

func TestParseVariablesStartUnset(t *testing.T) {
	f, err := Parse(strings.NewReader("a & a & b"))
	if err != nil {
		t.Fatalf("could not parse: %v", err)
	}
	for _, v := range Vars(f) {
		if _, ok := v.Value(); ok {
			t.Errorf("variable %s should start unset", v.Name())
		}
	}
}

// Every occurrence of a name shares one instance, so a contradiction stays a
// contradiction after parsing.
func TestParseSharesVariables(t *testing.T) {
	f, err := Parse(strings.NewReader("a & ~a"))
	if err != nil {
		t.Fatalf("could not parse: %v", err)
	}
	if vars := Vars(f); len(vars) != 1 {
		t.Fatalf("expected one shared instance of a, got %d", len(vars))
	}
	if err := f.SetState(true); err == nil {
		t.Errorf("a & ~a should be unsatisfiable")
	}
}
