package logic

import (
	"errors"
	"fmt"
)

// UnknownStateError is returned by State when the states currently held by
// the reachable variables do not decide the node's outcome. It is always
// recoverable: assigning more variables and evaluating again may succeed.
type UnknownStateError struct {
	Node Node
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("state of %s cannot be determined yet", e.Node.Repr())
}

// UnsatisfiableError is returned by SetState when no assignment consistent
// with the already-fixed reachable state can make the node evaluate to the
// requested target.
type UnsatisfiableError struct {
	Node   Node
	Target bool
}

func (e *UnsatisfiableError) Error() string {
	return fmt.Sprintf("cannot make %s equal %t", e.Node.Repr(), e.Target)
}

// InvalidOperandError reports a malformed construction input, such as an
// operand that is neither a Node nor a variable name, or a bad variable name.
// Constructors fail fast by panicking with it.
type InvalidOperandError struct {
	Msg string
}

func (e *InvalidOperandError) Error() string {
	return "invalid operand: " + e.Msg
}

// IsUnknown reports whether the node's outcome is still undecided under the
// current variable states.
func IsUnknown(n Node) bool {
	_, err := n.State()
	var unknown *UnknownStateError
	return errors.As(err, &unknown)
}
