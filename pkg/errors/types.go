package errors

import (
	"errors"
	"fmt"
)

// Exit codes for scripting integration.
// These codes allow scripts to distinguish between different failure modes.
const (
	// ExitSuccess indicates the command completed. An empty result is still a success.
	ExitSuccess = 0

	// ExitFailure indicates a critical error: unreadable input, a rejected
	// selection or a failed render.
	ExitFailure = 2

	// ExitConfigError indicates a configuration or validation error.
	// The command could not proceed due to invalid config or catalog data.
	ExitConfigError = 3
)

// ExitError represents a command termination with a specific exit code.
//
// Use this error when a command needs to exit with a non-zero status
// while providing context about what went wrong.
//
// Fields:
//   - Code: Exit code (use constants ExitSuccess, ExitFailure, ExitConfigError)
//   - Message: Human-readable error message
//   - Err: Underlying error that caused this exit, may be nil
//
// Example:
//
//	return &ExitError{
//	    Code:    ExitConfigError,
//	    Message: "failed to load config",
//	    Err:     err,
//	}
type ExitError struct {
	// Code is the exit code for the command.
	// Standard codes: 0=success, 2=failure, 3=config error.
	Code int

	// Message is a human-readable description of why the command failed.
	Message string

	// Err is the underlying error that caused this exit.
	// May be nil if no underlying error exists.
	Err error
}

// Error implements the error interface.
//
// Returns the Message field if set, otherwise returns the underlying error's
// message, or a default message with the exit code.
//
// Returns:
//   - string: The error message
func (e *ExitError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError with the given code and underlying error.
//
// Parameters:
//   - code: Exit code (use ExitSuccess, ExitFailure, ExitConfigError)
//   - err: Underlying error, may be nil
//
// Returns:
//   - *ExitError: New exit error
//
// Example:
//
//	err := errors.NewExitError(errors.ExitConfigError, configErr)
func NewExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// NewExitErrorf creates an ExitError with the given code and formatted message.
//
// Parameters:
//   - code: Exit code
//   - format: Printf-style format string
//   - args: Format arguments
//
// Returns:
//   - *ExitError: New exit error with formatted message
func NewExitErrorf(code int, format string, args ...interface{}) *ExitError {
	return &ExitError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// GetExitCode extracts the exit code from an error.
//
// If err is nil, returns ExitSuccess.
// If err is an ExitError, returns its code.
// A ValidationError maps to ExitConfigError.
// Otherwise returns ExitFailure.
//
// Parameters:
//   - err: The error to extract code from
//
// Returns:
//   - int: Exit code
//
// Example:
//
//	code := errors.GetExitCode(err)
//	os.Exit(code)
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	if _, ok := IsValidationError(err); ok {
		return ExitConfigError
	}

	return ExitFailure
}

// IsExitError checks if err is an ExitError and returns it.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *ExitError: The ExitError if err is one, nil otherwise
//   - bool: true if err is an ExitError
func IsExitError(err error) (*ExitError, bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr, true
	}
	return nil, false
}

// SelectionError reports a filter change the engine refused.
//
// Fields:
//   - Dimension: Dimension as the user typed it ("dim1", "Region")
//   - Value: Requested value
//   - Err: Engine error, usually wrapping filtering.ErrUnknownValue or
//     filtering.ErrInvalidDimension
//
// Example:
//
//	return &SelectionError{Dimension: "dim1", Value: "Mars", Err: err}
type SelectionError struct {
	Dimension string
	Value     string
	Err       error
}

// Error implements the error interface.
//
// Returns:
//   - string: "selection dim=value rejected: <cause>"
func (e *SelectionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("selection %s=%s rejected", e.Dimension, e.Value)
	}
	return fmt.Sprintf("selection %s=%s rejected: %v", e.Dimension, e.Value, e.Err)
}

// Unwrap returns the engine error so errors.Is matches its sentinel.
func (e *SelectionError) Unwrap() error {
	return e.Err
}

// NewSelectionError creates a SelectionError.
//
// Parameters:
//   - dimension: Dimension name as given
//   - value: Requested value
//   - err: Underlying engine error
//
// Returns:
//   - *SelectionError: New selection error
func NewSelectionError(dimension, value string, err error) *SelectionError {
	return &SelectionError{Dimension: dimension, Value: value, Err: err}
}

// IsSelectionError checks if err is a SelectionError and returns it.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *SelectionError: The SelectionError if err is one, nil otherwise
//   - bool: true if err is a SelectionError
func IsSelectionError(err error) (*SelectionError, bool) {
	var se *SelectionError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
