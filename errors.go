package stopwatch

import (
	"errors"
	"fmt"
)

// ErrInvalidState is the errors.Is target for every state-transition
// failure; use errors.As with *InvalidStateError to inspect the details.
var ErrInvalidState = errors.New("invalid stopwatch state")

// InvalidStateError reports an operation invoked in a state whose
// preconditions it violates, e.g. Lap on a stopwatch that is not running.
type InvalidStateError struct {
	Op    string
	State State
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("stopwatch: cannot %s while %s", e.Op, e.State)
}

func (e *InvalidStateError) Is(target error) bool {
	return target == ErrInvalidState
}
