package cli

import (
	"errors"
	"fmt"
)

// Exit codes follow Unix conventions so scripts can branch on them.
const (
	ExitSuccess       = 0  // Command completed successfully
	ExitGeneralError  = 1  // Generic failure
	ExitUsageError    = 2  // Invalid arguments
	ExitConfigError   = 3  // Configuration file or environment invalid
	ExitNotFoundError = 5  // Application or folder not found
	ExitSystemError   = 12 // Filesystem failures
	ExitBusyError     = 15 // The launcher holds the layout lock
	ExitRejectedError = 20 // Layout operation refused
)

var (
	// ErrNotFound is returned when a reference matches nothing in the layout
	ErrNotFound = errors.New("not found")
	// ErrAmbiguous is returned when a name matches more than one element
	ErrAmbiguous = errors.New("ambiguous reference")
	// ErrRejected is returned when the layout refuses an operation
	ErrRejected = errors.New("operation rejected")
)

// ExitError carries the process exit code for a failed command
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// NewExitError creates an ExitError with the specified code and message
func NewExitError(code int, message string, err error) *ExitError {
	return &ExitError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
