package lua

import "errors"

// Errors for script execution.
var (
	// ErrExecutionTimeout is returned when a script outlives its deadline.
	ErrExecutionTimeout = errors.New("lua execution timeout")

	// ErrScript wraps errors raised by the script itself.
	ErrScript = errors.New("lua script error")
)
