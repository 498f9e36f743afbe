package logic

import "strings"

// alreadyIs reports whether the node's state is already decided to be target.
// SetState is a no-op on such nodes.
func alreadyIs(n Node, target bool) bool {
	s, err := n.State()
	return err == nil && s == target
}

func infix(nodes []Node, op string) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.String()
	}
	return "(" + strings.Join(parts, op) + ")"
}

func ctor(name string, nodes []Node) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.Repr()
	}
	return name + "(" + strings.Join(parts, ", ") + ")"
}

// Not negates the given operand. No double-negation simplification takes
// place: Not(Not(x)) keeps both nodes, so representations stay
// round-trippable.
func Not(operand any) Node {
	return not{asNode(operand)}
}

type not [1]Node

func (n not) State() (bool, error) {
	s, err := n[0].State()
	if err != nil {
		return false, err
	}
	return !s, nil
}

func (n not) SetState(target bool) error {
	if alreadyIs(n, target) {
		return nil
	}
	return n[0].SetState(!target)
}

func (n not) String() string { return "¬(" + n[0].String() + ")" }
func (n not) Repr() string   { return ctor("Not", n[:]) }

func (n not) walk(visit func(Node)) {
	visit(n)
	n[0].walk(visit)
}

// And creates a conjunction of two or more operands. Operands that are
// themselves conjunctions are splice-flattened into the new node, so
// And(And(a, b), c) and And(a, b, c) are the same node.
func And(operands ...any) Node {
	nodes := asNodes("And", 2, operands)
	res := make(and, 0, len(nodes))
	for _, n := range nodes {
		if sub, ok := n.(and); ok {
			res = append(res, sub...)
		} else {
			res = append(res, n)
		}
	}
	return res
}

// Or creates a disjunction of two or more operands, flattened like And.
func Or(operands ...any) Node {
	nodes := asNodes("Or", 2, operands)
	res := make(or, 0, len(nodes))
	for _, n := range nodes {
		if sub, ok := n.(or); ok {
			res = append(res, sub...)
		} else {
			res = append(res, n)
		}
	}
	return res
}

type and []Node

func (a and) State() (bool, error) {
	unknown := 0
	for _, c := range a {
		s, err := c.State()
		switch {
		case err != nil:
			unknown++
		case !s:
			// One false child decides the conjunction; the others may
			// stay unknown.
			return false, nil
		}
	}
	if unknown > 0 {
		return false, &UnknownStateError{Node: a}
	}
	return true, nil
}

func (a and) SetState(target bool) error {
	if alreadyIs(a, target) {
		return nil
	}
	if target {
		// All children have to hold; there is no choice space, so the
		// first failure is final.
		for _, c := range a {
			if err := c.SetState(true); err != nil {
				return err
			}
		}
		return nil
	}
	// One false child suffices. Children are tried in declaration order
	// and the first success wins; the rest stay untouched.
	for _, c := range a {
		if c.SetState(false) == nil {
			return nil
		}
	}
	return &UnsatisfiableError{Node: a, Target: false}
}

func (a and) String() string { return infix(a, " ∧ ") }
func (a and) Repr() string   { return ctor("And", a) }

func (a and) walk(visit func(Node)) {
	visit(a)
	for _, c := range a {
		c.walk(visit)
	}
}

type or []Node

func (o or) State() (bool, error) {
	unknown := 0
	for _, c := range o {
		s, err := c.State()
		switch {
		case err != nil:
			unknown++
		case s:
			return true, nil
		}
	}
	if unknown > 0 {
		return false, &UnknownStateError{Node: o}
	}
	return false, nil
}

func (o or) SetState(target bool) error {
	if alreadyIs(o, target) {
		return nil
	}
	if target {
		for _, c := range o {
			if c.SetState(true) == nil {
				return nil
			}
		}
		return &UnsatisfiableError{Node: o, Target: true}
	}
	for _, c := range o {
		if err := c.SetState(false); err != nil {
			return err
		}
	}
	return nil
}

func (o or) String() string { return infix(o, " ∨ ") }
func (o or) Repr() string   { return ctor("Or", o) }

func (o or) walk(visit func(Node)) {
	visit(o)
	for _, c := range o {
		c.walk(visit)
	}
}

// Xor creates an exclusive disjunction of exactly two operands.
func Xor(a, b any) Node {
	return xor{asNode(a), asNode(b)}
}

type xor [2]Node

func (x xor) State() (bool, error) {
	sa, err := x[0].State()
	if err != nil {
		return false, err
	}
	sb, err := x[1].State()
	if err != nil {
		return false, err
	}
	return sa != sb, nil
}

func (x xor) SetState(target bool) error {
	if alreadyIs(x, target) {
		return nil
	}
	return setPair(x, x[0], x[1], !target, target)
}

func (x xor) String() string { return infix(x[:], " ⊕ ") }
func (x xor) Repr() string   { return ctor("Xor", x[:]) }

func (x xor) walk(visit func(Node)) {
	visit(x)
	x[0].walk(visit)
	x[1].walk(visit)
}

// Eq creates an equivalence of exactly two operands.
func Eq(a, b any) Node {
	return eq{asNode(a), asNode(b)}
}

type eq [2]Node

func (e eq) State() (bool, error) {
	sa, err := e[0].State()
	if err != nil {
		return false, err
	}
	sb, err := e[1].State()
	if err != nil {
		return false, err
	}
	return sa == sb, nil
}

func (e eq) SetState(target bool) error {
	if alreadyIs(e, target) {
		return nil
	}
	return setPair(e, e[0], e[1], target, target)
}

func (e eq) String() string { return infix(e[:], " ↔ ") }
func (e eq) Repr() string   { return ctor("Eq", e[:]) }

func (e eq) walk(visit func(Node)) {
	visit(e)
	e[0].walk(visit)
	e[1].walk(visit)
}

// setPair forces a and b to be equal (equal=true) or different (equal=false).
// A side whose state is already decided pins the other side. When neither
// side is decided, a=true is attempted first (so Xor defaults to a=true,
// b=false and Eq to a=true, b=true), then the mirrored polarity. Assignments
// committed by a failed attempt's first half are kept; the search does not
// backtrack.
func setPair(parent Node, a, b Node, equal, target bool) error {
	if sb, err := b.State(); err == nil {
		if a.SetState(sb == equal) == nil {
			return nil
		}
	}
	if sa, err := a.State(); err == nil {
		if b.SetState(sa == equal) == nil {
			return nil
		}
	}
	if IsUnknown(a) && IsUnknown(b) {
		for _, first := range [2]bool{true, false} {
			if a.SetState(first) == nil && b.SetState(first == equal) == nil {
				return nil
			}
		}
	}
	return &UnsatisfiableError{Node: parent, Target: target}
}

// Implies creates an implication of exactly two operands. It behaves like
// Or(Not(a), b) but keeps its own node kind.
func Implies(a, b any) Node {
	return implies{asNode(a), asNode(b)}
}

type implies [2]Node

func (im implies) State() (bool, error) {
	sa, errA := im[0].State()
	sb, errB := im[1].State()
	// A false antecedent or a true consequent decides the implication on
	// its own.
	if errA == nil && !sa {
		return true, nil
	}
	if errB == nil && sb {
		return true, nil
	}
	if errA == nil && errB == nil {
		return false, nil
	}
	return false, &UnknownStateError{Node: im}
}

func (im implies) SetState(target bool) error {
	if alreadyIs(im, target) {
		return nil
	}
	if target {
		// One sufficient branch: a true consequent, else a false
		// antecedent.
		if im[1].SetState(true) == nil {
			return nil
		}
		if im[0].SetState(false) == nil {
			return nil
		}
		return &UnsatisfiableError{Node: im, Target: true}
	}
	if err := im[0].SetState(true); err != nil {
		return err
	}
	return im[1].SetState(false)
}

func (im implies) String() string { return infix(im[:], " → ") }
func (im implies) Repr() string   { return ctor("Implies", im[:]) }

func (im implies) walk(visit func(Node)) {
	visit(im)
	im[0].walk(visit)
	im[1].walk(visit)
}

// Nand is the derived form Not(And(operands...)).
func Nand(operands ...any) Node {
	return Not(And(operands...))
}

// Nor is the derived form Not(Or(operands...)).
func Nor(operands ...any) Node {
	return Not(Or(operands...))
}

func (v *Variable) And(rhs Node) Node { return And(v, rhs) }
func (v *Variable) Or(rhs Node) Node  { return Or(v, rhs) }
func (v *Variable) Not() Node         { return Not(v) }

func (c constant) And(rhs Node) Node { return And(c, rhs) }
func (c constant) Or(rhs Node) Node  { return Or(c, rhs) }
func (c constant) Not() Node         { return Not(c) }

func (n not) And(rhs Node) Node { return And(n, rhs) }
func (n not) Or(rhs Node) Node  { return Or(n, rhs) }
func (n not) Not() Node         { return Not(n) }

func (a and) And(rhs Node) Node { return And(a, rhs) }
func (a and) Or(rhs Node) Node  { return Or(a, rhs) }
func (a and) Not() Node         { return Not(a) }

func (o or) And(rhs Node) Node { return And(o, rhs) }
func (o or) Or(rhs Node) Node  { return Or(o, rhs) }
func (o or) Not() Node         { return Not(o) }

func (x xor) And(rhs Node) Node { return And(x, rhs) }
func (x xor) Or(rhs Node) Node  { return Or(x, rhs) }
func (x xor) Not() Node         { return Not(x) }

func (e eq) And(rhs Node) Node { return And(e, rhs) }
func (e eq) Or(rhs Node) Node  { return Or(e, rhs) }
func (e eq) Not() Node         { return Not(e) }

func (im implies) And(rhs Node) Node { return And(im, rhs) }
func (im implies) Or(rhs Node) Node  { return Or(im, rhs) }
func (im implies) Not() Node         { return Not(im) }
