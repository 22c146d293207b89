package dispatcher

import "errors"

// Dispatcher errors.
var (
	// ErrUnknownAction indicates no handler is registered for an action.
	ErrUnknownAction = errors.New("dispatcher: unknown action")

	// ErrUnboundKey indicates the keymap has no binding for a key.
	ErrUnboundKey = errors.New("dispatcher: key not bound")

	// ErrReadOnly indicates an edit was attempted on a read-only dispatcher.
	ErrReadOnly = errors.New("dispatcher: read-only")

	// ErrPanic indicates the handler panicked.
	ErrPanic = errors.New("dispatcher: handler panic")
)
