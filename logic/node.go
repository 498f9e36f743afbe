package logic

import (
	"fmt"
	"strings"
)

// A Node is any element of a boolean equation. Nodes are immutable in
// structure after construction; only variable states change, either directly
// through SetState on a variable or through the constraint search on an
// enclosing node.
//
// And, Or and Not are combination shorthands: f.And(g) is the flattened
// And(f, g), never a strictly-binary node. They are deliberately defined on
// Node only; a raw name string must be wrapped in Var first.
type Node interface {
	// State returns the node's truth value, or an *UnknownStateError when
	// the known variable states do not decide it yet.
	State() (bool, error)
	// SetState assigns unset reachable variables so that State returns
	// target, or returns an *UnsatisfiableError.
	SetState(target bool) error
	// String renders the node in infix form, each variable as name=1,
	// name=0 or name=?.
	String() string
	// Repr renders the node as its re-constructible constructor
	// composition.
	Repr() string
	And(rhs Node) Node
	Or(rhs Node) Node
	Not() Node

	walk(visit func(Node))
}

// triState is a lifted boolean: true, false, or unknown.
type triState int8

const (
	unset      triState = 0
	stateTrue  triState = 1
	stateFalse triState = -1
)

func lift(b bool) triState {
	if b {
		return stateTrue
	}
	return stateFalse
}

// asNode normalizes a constructor operand. Nodes pass through unchanged so
// that a shared instance stays shared. A string "x" becomes Var("x") and
// "~x" becomes Not(Var("x")); a bool becomes a constant. Anything else is a
// construction error.
func asNode(operand any) Node {
	switch op := operand.(type) {
	case Node:
		return op
	case string:
		if rest, ok := strings.CutPrefix(op, "~"); ok {
			return not{Var(rest)}
		}
		return Var(op)
	case bool:
		return Const(op)
	default:
		panic(&InvalidOperandError{Msg: fmt.Sprintf("%v is not a Node and cannot be converted to one", operand)})
	}
}

func asNodes(kind string, minArity int, operands []any) []Node {
	if len(operands) < minArity {
		panic(&InvalidOperandError{Msg: fmt.Sprintf("%s needs at least %d operands, got %d", kind, minArity, len(operands))})
	}
	nodes := make([]Node, len(operands))
	for i, op := range operands {
		nodes[i] = asNode(op)
	}
	return nodes
}

// A Variable is a named leaf holding a tri-state value. One instance may be
// composed into any number of equations; assigning it affects all of them.
type Variable struct {
	name  string
	value triState
}

// Var creates an unset variable. The name must be non-empty and must not
// contain whitespace, quotes, '=' or '~'.
func Var(name string) *Variable {
	if name == "" || strings.ContainsAny(name, "\"' \t\n=~") {
		panic(&InvalidOperandError{Msg: fmt.Sprintf("bad variable name %q", name)})
	}
	return &Variable{name: name}
}

// VarValue creates a variable with an initial state.
func VarValue(name string, value bool) *Variable {
	v := Var(name)
	v.value = lift(value)
	return v
}

// Name returns the variable's name.
func (v *Variable) Name() string { return v.name }

// Value returns the current state and whether the variable is set at all.
func (v *Variable) Value() (value, ok bool) {
	return v.value == stateTrue, v.value != unset
}

// Unset clears the variable back to the undetermined state.
func (v *Variable) Unset() { v.value = unset }

// Assign sets the state unconditionally, unlike SetState which refuses to
// flip an already-fixed value.
func (v *Variable) Assign(value bool) { v.value = lift(value) }

func (v *Variable) State() (bool, error) {
	if v.value == unset {
		return false, &UnknownStateError{Node: v}
	}
	return v.value == stateTrue, nil
}

func (v *Variable) SetState(target bool) error {
	if v.value == unset {
		v.value = lift(target)
		return nil
	}
	if (v.value == stateTrue) != target {
		return &UnsatisfiableError{Node: v, Target: target}
	}
	return nil
}

func (v *Variable) String() string {
	switch v.value {
	case stateTrue:
		return v.name + "=1"
	case stateFalse:
		return v.name + "=0"
	default:
		return v.name + "=?"
	}
}

func (v *Variable) Repr() string {
	if v.value == unset {
		return fmt.Sprintf("Var(%q)", v.name)
	}
	return fmt.Sprintf("VarValue(%q, %t)", v.name, v.value == stateTrue)
}

func (v *Variable) walk(visit func(Node)) { visit(v) }

// A constant's state is fixed at construction.
type constant bool

// Const creates a constant node. Asking it to change to the opposite value
// is unsatisfiable.
func Const(value bool) Node {
	return constant(value)
}

func (c constant) State() (bool, error) { return bool(c), nil }

func (c constant) SetState(target bool) error {
	if target != bool(c) {
		return &UnsatisfiableError{Node: c, Target: target}
	}
	return nil
}

func (c constant) String() string {
	if c {
		return "1"
	}
	return "0"
}

func (c constant) Repr() string { return fmt.Sprintf("Const(%t)", bool(c)) }

func (c constant) walk(visit func(Node)) { visit(c) }

// Vars returns the distinct variable instances reachable from the given
// roots, in first-seen order, left to right across each root in turn. Two
// instances sharing a name are reported separately.
func Vars(nodes ...Node) []*Variable {
	var (
		seen = make(map[*Variable]bool)
		out  []*Variable
	)
	for _, n := range nodes {
		n.walk(func(sub Node) {
			if v, ok := sub.(*Variable); ok && !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		})
	}
	return out
}
