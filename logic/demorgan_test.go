package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemorgan(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"negated and", Not(And("a", "b")), `Or(Not(Var("a")), Not(Var("b")))`},
		{"negated or", Not(Or("a", "b", "c")), `And(Not(Var("a")), Not(Var("b")), Not(Var("c")))`},
		{"double negation", Not(Not(Var("a"))), `Var("a")`},
		{"negated constant", Not(Const(false)), `Const(true)`},
		{"negated xor", Not(Xor("a", "b")), `Eq(Var("a"), Var("b"))`},
		{"negated eq", Not(Eq("a", "b")), `Xor(Var("a"), Var("b"))`},
		{"negated implication", Not(Implies("a", "b")), `And(Var("a"), Not(Var("b")))`},
		{"nested", Not(And("a", Not(Or("b", "c")))), `Or(Not(Var("a")), Var("b"), Var("c"))`},
		{"untouched leaf", Var("a"), `Var("a")`},
		{"negation stays on variables", Nand("a", "b"), `Or(Not(Var("a")), Not(Var("b")))`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Demorgan(tt.node).Repr())
		})
	}
}

// The rewrite shares variable instances with the input, so both versions can
// be evaluated against the same assignments.
func TestDemorganPreservesEvaluation(t *testing.T) {
	a, b, c := Var("a"), Var("b"), Var("c")
	f := Not(Implies(And(a, b), Xor(c, Not(a))))
	g := Demorgan(f)
	require.Equal(t, Vars(f), Vars(g), "variables must be shared, not copied")
	for code := 0; code < 8; code++ {
		a.Assign(code&4 != 0)
		b.Assign(code&2 != 0)
		c.Assign(code&1 != 0)
		sf, err := f.State()
		require.NoError(t, err)
		sg, err := g.State()
		require.NoError(t, err)
		assert.Equal(t, sf, sg, "divergence at assignment %03b", code)
	}
}
