package dispatcher

import (
	"errors"
	"fmt"
)

var (
	ErrNoContextFactory = errors.New("no context factory provided")
	ErrNilHandler       = errors.New("nil handler")
)

// PanicError wraps a panic recovered during chain execution, preserving
// the original value and the stack captured at recovery time. External
// error handlers can detect panics by asserting against this type.
type PanicError struct {
	value any
	stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

// Value returns the original panic value.
func (e *PanicError) Value() any {
	return e.value
}

// Stack returns the stack trace captured when the panic was recovered.
func (e *PanicError) Stack() []byte {
	return e.stack
}
