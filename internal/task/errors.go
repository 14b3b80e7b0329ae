package task

import "errors"

var (
	// ErrNoSession means a mutating operation ran with no account
	// logged in. The engine has nowhere to persist, so the operation
	// is refused before touching anything.
	ErrNoSession = errors.New("not logged in")

	// ErrSaveFailed wraps a store write failure. The in-memory list
	// keeps the mutation; persisted state catches up on the next
	// successful save.
	ErrSaveFailed = errors.New("failed to save tasks")
)

// ValidationError reports rejected task input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
