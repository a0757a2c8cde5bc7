package app

import (
	"errors"
	"fmt"

	"xltotxt/internal/prompt"
)

var (
	// ErrMissingArgument is returned when the target argument is absent
	ErrMissingArgument = errors.New("missing argument")

	// ErrInvalidFileType is returned when an unopenable source does not look like an Excel file
	ErrInvalidFileType = errors.New("source file not a valid Excel type")
)

// Exit codes
const (
	ExitFailure     = 1
	ExitUsage       = 2
	ExitInterrupted = 130
)

// ExitError ends the process with Code after printing Message to stderr.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func fatal(err error, format string, args ...any) *ExitError {
	return &ExitError{Code: ExitFailure, Message: fmt.Sprintf(format, args...), Err: err}
}

func usageError(err error, message string) *ExitError {
	return &ExitError{Code: ExitUsage, Message: message, Err: err}
}

// promptError maps a failed prompt to its exit
func promptError(err error) *ExitError {
	if errors.Is(err, prompt.ErrInterrupted) {
		return &ExitError{Code: ExitInterrupted, Message: "Interrupted", Err: err}
	}
	return fatal(err, "Error: %v", err)
}
