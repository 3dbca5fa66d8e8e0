package behavior

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is wrapped by every construction-time validation error.
	ErrInvalidArgument = errors.New("behavior: invalid argument")

	// ErrStopped is wrapped by a StateError raised when a stopped node is
	// updated or cancelled.
	ErrStopped = errors.New("behavior: node already stopped")
)

// StateError describes a lifecycle protocol violation. It is raised as a panic
// value, since it always indicates a bug in the code driving the tree.
type StateError struct {
	// Op is the rejected operation, "update" or "cancel".
	Op string
	// Status is the last status the node returned before it stopped. It is
	// zero for a node cancelled before its first update.
	Status Status
	// Cancelled is true if the node stopped because it was cancelled.
	Cancelled bool
}

func (e *StateError) Error() string {
	if e.Cancelled {
		return fmt.Sprintf("behavior: %s on cancelled node", e.Op)
	}
	return fmt.Sprintf("behavior: %s on node stopped with %s", e.Op, e.Status)
}

func (e *StateError) Unwrap() error { return ErrStopped }

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// mustNotBeNil panics with an ErrInvalidArgument error if ok is false.
func mustNotBeNil(ok bool, constructor, arg string) {
	if !ok {
		panic(invalidArgument("%s: %s must not be nil", constructor, arg))
	}
}
