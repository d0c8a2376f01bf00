// Package argerr holds the invalid-argument error shared by the helper
// packages. Callers match it with errors.Is against ErrInvalidArgument.
package argerr

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a helper is called with arguments it
// cannot satisfy.
var ErrInvalidArgument = errors.New("invalid argument")

// Error carries the failing operation alongside the message.
type Error struct {
	Op      string
	Message string
}

// Errorf builds an *Error for op with a formatted message.
func Errorf(op, format string, args ...any) error {
	return &Error{Op: op, Message: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: invalid argument: %s", e.Op, e.Message)
	}
	return "invalid argument: " + e.Message
}

// Unwrap returns ErrInvalidArgument.
func (e *Error) Unwrap() error {
	return ErrInvalidArgument
}

// Is reports whether target is ErrInvalidArgument or an *Error for the same op.
func (e *Error) Is(target error) bool {
	if target == ErrInvalidArgument {
		return true
	}
	if t, ok := target.(*Error); ok {
		return e.Op == t.Op
	}
	return false
}
