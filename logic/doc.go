// Package logic offers a small boolean-equation model with partial knowledge.
//
// An equation is a tree of nodes: named variables, constants and the usual
// connectives (and, or, not, xor, implication, equivalence). A variable holds
// a tri-state value: true, false, or unset. The same variable instance may be
// shared between several equations; assigning it is visible through every
// equation that reaches it.
//
// Two operations are defined on every node:
//
//   - State() evaluates the node bottom-up with short-circuiting. It succeeds
//     as soon as the known children decide the outcome, e.g. a conjunction
//     with one false child is false no matter what the others hold. When the
//     outcome cannot be decided yet, it returns an *UnknownStateError.
//
//   - SetState(target) searches depth-first for an assignment of the unset
//     reachable variables that makes the node evaluate to target, and commits
//     it. The search takes the first branch that works and does not backtrack
//     across siblings, so it yields one possible assignment, not all of them.
//     When no assignment consistent with the already-fixed state exists, it
//     returns an *UnsatisfiableError.
//
// For example, the formula
//
// !(a & b) -> ((c | !d) & !(a xor b))
//
// is built with the following code:
//
// f := Implies(Not(And(Var("a"), Var("b"))), And(Or(Var("c"), Not(Var("d"))), Not(Xor(Var("a"), Var("b")))))
//
// Calling f.SetState(true) then commits variable states that force f true,
// and f.State() afterwards reports true.
package logic
