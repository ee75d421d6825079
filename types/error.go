package types

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies runtime errors
type ErrorKind int

const (
	E_UNBOUND     ErrorKind = iota // variable read before assignment
	E_TYPE                         // operand types do not fit the operator
	E_UNSUPPORTED                  // operator not defined for the type
)

// String returns the name of the error kind
func (k ErrorKind) String() string {
	switch k {
	case E_UNBOUND:
		return "E_UNBOUND"
	case E_TYPE:
		return "E_TYPE"
	case E_UNSUPPORTED:
		return "E_UNSUPPORTED"
	default:
		return "E_UNKNOWN"
	}
}

// RuntimeError is a user-facing failure raised while executing a statement
type RuntimeError struct {
	Kind ErrorKind
	At   Pos
	Msg  string
}

// NewRuntimeError creates a RuntimeError with a formatted message
func NewRuntimeError(kind ErrorKind, at Pos, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Kind: kind, At: at, Msg: fmt.Sprintf(format, args...)}
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s -- %s", e.At, e.Msg)
}

// ImplementationError marks a broken internal invariant. It is never the
// result of bad user input.
type ImplementationError struct {
	Msg string
}

func (e *ImplementationError) Error() string {
	return e.Msg + " (this is an indication of an implementation error, not user error)"
}

// Invariantf panics with a stack-carrying ImplementationError.
func Invariantf(format string, args ...interface{}) {
	panic(errors.WithStack(&ImplementationError{Msg: fmt.Sprintf(format, args...)}))
}
