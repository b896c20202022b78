package cli

import (
	"errors"

	"github.com/specialistvlad/guardian/internal/verifier"
)

// Process exit codes.
const (
	ExitFailure     = 1
	ExitUsage       = 2
	ExitUnknownDish = 3
	ExitMalformed   = 4
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func (e *ExitError) Unwrap() error { return e.Err }

func usageError(err error) *ExitError {
	return &ExitError{Code: ExitUsage, Message: err.Error(), Err: err}
}

// exitFor maps an application error onto its exit code.
func exitFor(err error) *ExitError {
	var exitErr *ExitError
	switch {
	case errors.As(err, &exitErr):
		return exitErr
	case errors.Is(err, verifier.ErrUnknownDish):
		return &ExitError{Code: ExitUnknownDish, Message: err.Error(), Err: err}
	case errors.Is(err, verifier.ErrMalformedSubmission):
		return &ExitError{Code: ExitMalformed, Message: err.Error(), Err: err}
	}
	return &ExitError{Code: ExitFailure, Message: err.Error(), Err: err}
}
