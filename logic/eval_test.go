package logic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// evalResult captures the tri-state outcome of State.
type evalResult int

const (
	isFalse evalResult = iota
	isTrue
	isUnknown
)

func stateOf(t *testing.T, n Node) evalResult {
	t.Helper()
	s, err := n.State()
	if err != nil {
		var unknown *UnknownStateError
		require.ErrorAs(t, err, &unknown, "State may only fail with UnknownStateError")
		return isUnknown
	}
	if s {
		return isTrue
	}
	return isFalse
}

func TestEvalLeaves(t *testing.T) {
	assert.Equal(t, isTrue, stateOf(t, Const(true)))
	assert.Equal(t, isFalse, stateOf(t, Const(false)))
	assert.Equal(t, isUnknown, stateOf(t, Var("x")))
	assert.Equal(t, isTrue, stateOf(t, VarValue("x", true)))
	assert.Equal(t, isFalse, stateOf(t, VarValue("x", false)))
}

func TestEvalConnectives(t *testing.T) {
	u := func() Node { return Var("u") } // fresh unset variable
	tests := []struct {
		name string
		node Node
		want evalResult
	}{
		{"not true", Not(Const(true)), isFalse},
		{"not unset", Not(u()), isUnknown},
		{"and all true", And(true, VarValue("x", true)), isTrue},
		{"and one false decides", And(u(), false, u()), isFalse},
		{"and open", And(true, u()), isUnknown},
		{"or one true decides", Or(u(), true, u()), isTrue},
		{"or all false", Or(false, VarValue("x", false)), isFalse},
		{"or open", Or(false, u()), isUnknown},
		{"xor differs", Xor(true, false), isTrue},
		{"xor equal", Xor(true, true), isFalse},
		{"xor needs both", Xor(true, u()), isUnknown},
		{"implies false antecedent decides", Implies(false, u()), isTrue},
		{"implies true consequent decides", Implies(u(), true), isTrue},
		{"implies broken", Implies(true, false), isFalse},
		{"implies open", Implies(true, u()), isUnknown},
		{"eq equal", Eq(false, false), isTrue},
		{"eq differs", Eq(true, false), isFalse},
		{"eq needs both", Eq(false, u()), isUnknown},
		{"nand", Nand(true, true), isFalse},
		{"nor", Nor(false, false), isTrue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stateOf(t, tt.node))
		})
	}
}

// An and with two variables: unknown while y is open, decided either way once
// y is set.
func TestEvalPartialAnd(t *testing.T) {
	x, y := Var("x"), Var("y")
	f := And(x, y)
	x.Assign(true)
	assert.Equal(t, isUnknown, stateOf(t, f))
	y.Assign(true)
	assert.Equal(t, isTrue, stateOf(t, f))
	y.Assign(false)
	assert.Equal(t, isFalse, stateOf(t, f))
}

func TestEvalShortCircuit(t *testing.T) {
	// One false child decides the conjunction even though every other
	// child is unset.
	f := And(Var("a"), VarValue("b", false), Var("c"), Var("d"))
	assert.Equal(t, isFalse, stateOf(t, f))
	g := Or(Var("a"), VarValue("b", true), Var("c"))
	assert.Equal(t, isTrue, stateOf(t, g))
}

func TestEvalCommutative(t *testing.T) {
	x, y, z := Var("x"), Var("y"), Var("z")
	orders := [][]Node{
		{x, y, z},
		{z, y, x},
		{y, x, z},
	}
	for code := 0; code < 8; code++ {
		x.Assign(code&4 != 0)
		y.Assign(code&2 != 0)
		z.Assign(code&1 != 0)
		wantAnd := stateOf(t, And(x, y, z))
		wantOr := stateOf(t, Or(x, y, z))
		for _, ops := range orders {
			assert.Equal(t, wantAnd, stateOf(t, And(ops[0], ops[1], ops[2])))
			assert.Equal(t, wantOr, stateOf(t, Or(ops[0], ops[1], ops[2])))
			// One level of re-flattening does not change the outcome.
			assert.Equal(t, wantAnd, stateOf(t, And(And(ops[0], ops[1]), ops[2])))
			assert.Equal(t, wantOr, stateOf(t, Or(ops[0], Or(ops[1], ops[2]))))
		}
	}
}

func TestUnknownStateErrorDetails(t *testing.T) {
	f := And(Var("x"), Var("y"))
	_, err := f.State()
	require.Error(t, err)
	var unknown *UnknownStateError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, f, unknown.Node)
	assert.Contains(t, err.Error(), "cannot be determined")
}
