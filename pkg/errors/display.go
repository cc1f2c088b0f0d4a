package errors

import (
	"fmt"
	"io"
	"strings"
)

// PrintErrorWithHints prints errors with actionable hints to the writer.
//
// This is the single implementation for error display across all commands.
// It formats errors consistently and looks up hints for each error.
//
// Parameters:
//   - w: Writer to output to (typically os.Stderr)
//   - errs: Slice of errors to display
//   - verbose: If true, includes additional details for validation errors
//
// Output format:
//
//	Error: <error message>
//	  Hint: <actionable hint if available>
func PrintErrorWithHints(w io.Writer, errs []error, verbose bool) {
	for _, err := range errs {
		printSingleError(w, err, verbose)
	}
}

// printSingleError determines the error type and dispatches to the matching formatter.
func printSingleError(w io.Writer, err error, verbose bool) {
	if err == nil {
		return
	}

	if ve, ok := err.(*ValidationResult); ok {
		ve.PrintTo(w, verbose)
		return
	}

	if ve, ok := IsValidationError(err); ok {
		printValidationError(w, ve, verbose)
		return
	}

	if se, ok := IsSelectionError(err); ok {
		_, _ = fmt.Fprintf(w, "Selection Error: %s\n", EnhanceErrorWithHint(se))
		return
	}

	_, _ = fmt.Fprintf(w, "Error: %s\n", EnhanceErrorWithHint(err))
}

// printValidationError prints a validation error with appropriate detail level.
//
// In verbose mode, prints the full VerboseError with expected values and hints.
// Otherwise, prints the standard Error message.
func printValidationError(w io.Writer, err *ValidationError, verbose bool) {
	if verbose {
		_, _ = fmt.Fprintf(w, "Validation Error: %s\n", err.VerboseError())
	} else {
		_, _ = fmt.Fprintf(w, "Validation Error: %s\n", err.Error())
	}
}

// FormatErrorsWithHints formats multiple errors with hints for display.
//
// Parameters:
//   - errs: Slice of errors to format
//
// Returns:
//   - string: Formatted error messages, each prefixed with an error indicator
func FormatErrorsWithHints(errs []error) string {
	if len(errs) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, err := range errs {
		sb.WriteString("❌ " + EnhanceErrorWithHint(err) + "\n")
	}
	return sb.String()
}

// ValidationResult holds the results of validation operations.
//
// A ValidationResult with errors is itself an error, so loaders can collect
// every problem and return them together.
//
// Fields:
//   - Errors: Slice of validation errors
//   - Warnings: Slice of warning messages
type ValidationResult struct {
	// Errors contains all validation errors encountered.
	Errors []*ValidationError

	// Warnings contains non-fatal warning messages.
	Warnings []string
}

// NewValidationResult creates a new empty ValidationResult.
//
// Returns:
//   - *ValidationResult: New validation result with empty error and warning slices
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		Errors:   make([]*ValidationError, 0),
		Warnings: make([]string, 0),
	}
}

// HasErrors returns true if there are any validation errors.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AddError adds a validation error to the result.
func (r *ValidationResult) AddError(err *ValidationError) {
	r.Errors = append(r.Errors, err)
}

// AddWarning adds a warning message to the result.
func (r *ValidationResult) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// Error implements the error interface with the non-verbose message.
func (r *ValidationResult) Error() string {
	return strings.TrimRight(r.ErrorMessage(), "\n")
}

// Err returns r as an error, or nil when there are no errors.
//
// Returns:
//   - error: r when HasErrors, nil otherwise
func (r *ValidationResult) Err() error {
	if r == nil || !r.HasErrors() {
		return nil
	}
	return r
}

// ErrorMessage returns a formatted error message for all validation errors.
//
// Returns:
//   - string: Formatted error messages, or empty string if no errors
func (r *ValidationResult) ErrorMessage() string {
	return r.format((*ValidationError).Error)
}

// VerboseErrorMessage returns detailed error messages with hints.
//
// Returns:
//   - string: Detailed error messages with hints, or empty string if no errors
func (r *ValidationResult) VerboseErrorMessage() string {
	return r.format((*ValidationError).VerboseError)
}

func (r *ValidationResult) format(line func(*ValidationError) string) string {
	if len(r.Errors) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Validation failed:\n")
	for _, err := range r.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", line(err)))
	}
	return sb.String()
}

// PrintTo writes validation results to the given writer.
//
// Parameters:
//   - w: Writer to output to
//   - verbose: If true, includes detailed error information
func (r *ValidationResult) PrintTo(w io.Writer, verbose bool) {
	for _, warning := range r.Warnings {
		_, _ = fmt.Fprintf(w, "Warning: %s\n", warning)
	}

	if verbose {
		_, _ = fmt.Fprint(w, r.VerboseErrorMessage())
	} else {
		_, _ = fmt.Fprint(w, r.ErrorMessage())
	}
}
