package logic

// Demorgan rewrites the equation with every negation pushed down onto
// variables, dropping double negations on the way. The rewrite is best-effort
// and not a canonical form; it preserves evaluation but makes no minimality
// promise. Variable instances are shared with the input, not copied.
func Demorgan(n Node) Node {
	switch f := n.(type) {
	case *Variable:
		return f
	case constant:
		return f
	case not:
		return demorganNot(f[0])
	case and:
		return And(demorganAll(f)...)
	case or:
		return Or(demorganAll(f)...)
	case xor:
		return Xor(Demorgan(f[0]), Demorgan(f[1]))
	case eq:
		return Eq(Demorgan(f[0]), Demorgan(f[1]))
	case implies:
		return Implies(Demorgan(f[0]), Demorgan(f[1]))
	default:
		panic("invalid node type")
	}
}

// demorganNot rewrites Not(n).
func demorganNot(n Node) Node {
	switch f := n.(type) {
	case *Variable:
		return not{f}
	case constant:
		return Const(!bool(f))
	case not:
		return Demorgan(f[0])
	case and:
		subs := make([]any, len(f))
		for i, c := range f {
			subs[i] = demorganNot(c)
		}
		return Or(subs...)
	case or:
		subs := make([]any, len(f))
		for i, c := range f {
			subs[i] = demorganNot(c)
		}
		return And(subs...)
	case xor:
		return Eq(Demorgan(f[0]), Demorgan(f[1]))
	case eq:
		return Xor(Demorgan(f[0]), Demorgan(f[1]))
	case implies:
		return And(Demorgan(f[0]), demorganNot(f[1]))
	default:
		panic("invalid node type")
	}
}

func demorganAll(nodes []Node) []any {
	subs := make([]any, len(nodes))
	for i, c := range nodes {
		subs[i] = Demorgan(c)
	}
	return subs
}
