package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationCategory identifies the source of a validation error.
//
// This type distinguishes between different validation contexts to enable
// appropriate formatting and handling of validation failures.
type ValidationCategory string

const (
	// ValidationCategoryConfig indicates a configuration file validation error.
	ValidationCategoryConfig ValidationCategory = "config"

	// ValidationCategoryCatalog indicates invalid catalog data (duplicate IDs, bad layout).
	ValidationCategoryCatalog ValidationCategory = "catalog"

	// ValidationCategorySelection indicates a malformed selection argument.
	ValidationCategorySelection ValidationCategory = "selection"
)

// ValidationError represents a configuration, catalog or selection validation failure.
//
// Fields:
//   - Category: Source of validation ("config", "catalog", "selection")
//   - Field: Name of the invalid field, item or argument
//   - Message: Description of what's wrong
//   - Expected: What the valid value should look like
//   - ValidKeys: List of valid options (for enum-like fields)
//   - DocSection: Link to documentation for this setting
//   - Hint: Actionable hint for fixing the error
//
// Example:
//
//	return &ValidationError{
//	    Category: ValidationCategorySelection,
//	    Field:    "--select",
//	    Message:  `"dim1" has no value`,
//	    Expected: "dimension=value",
//	}
type ValidationError struct {
	// Category identifies the validation source.
	Category ValidationCategory

	// Field is the name of the field that failed validation.
	Field string

	// Message describes what is wrong with the field.
	Message string

	// Expected describes what a valid value should look like.
	Expected string

	// ValidKeys lists valid options for enum-like fields.
	ValidKeys []string

	// DocSection links to documentation for this field.
	DocSection string

	// Hint provides an actionable suggestion for fixing the error.
	Hint string
}

// Error implements the error interface.
//
// Returns:
//   - string: "field: message", or the message alone when Field is empty
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// VerboseError returns a detailed error message with schema hints.
//
// Returns:
//   - string: Detailed error with expected values and documentation links
func (e *ValidationError) VerboseError() string {
	var sb strings.Builder

	sb.WriteString(e.Error())

	if e.Expected != "" {
		sb.WriteString(fmt.Sprintf("\n    Expected: %s", e.Expected))
	}

	if len(e.ValidKeys) > 0 {
		sb.WriteString(fmt.Sprintf("\n    Valid keys: %s", strings.Join(e.ValidKeys, ", ")))
	}

	if e.DocSection != "" {
		sb.WriteString(fmt.Sprintf("\n    See: docs/configuration.md#%s", e.DocSection))
	}

	if e.Hint != "" {
		sb.WriteString(fmt.Sprintf("\n    Hint: %s", e.Hint))
	}

	return sb.String()
}

// IsValidationError checks if err is a ValidationError and returns it.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *ValidationError: The ValidationError if err is one, nil otherwise
//   - bool: true if err is a ValidationError
func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	var vr *ValidationResult
	if errors.As(err, &vr) && vr.HasErrors() {
		return vr.Errors[0], true
	}
	return nil, false
}

// NewConfigValidationError creates a ValidationError for configuration issues.
//
// Parameters:
//   - field: The field name that failed validation
//   - message: Description of the error
//
// Returns:
//   - *ValidationError: New validation error with config category
func NewConfigValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Category: ValidationCategoryConfig,
		Field:    field,
		Message:  message,
	}
}

// NewCatalogValidationError creates a ValidationError for catalog data.
//
// Parameters:
//   - field: Item reference, e.g. "items[3].id"
//   - message: Description of the error
//   - hint: Resolution hint
//
// Returns:
//   - *ValidationError: New validation error with catalog category
//
// Example:
//
//	err := errors.NewCatalogValidationError("items[2].id", `duplicate id "a"`, "Give every item a unique id")
func NewCatalogValidationError(field, message, hint string) *ValidationError {
	return &ValidationError{
		Category: ValidationCategoryCatalog,
		Field:    field,
		Message:  message,
		Hint:     hint,
	}
}

// NewSelectionValidationError creates a ValidationError for a malformed
// selection argument.
//
// Parameters:
//   - arg: The raw argument
//   - message: Description of the error
//
// Returns:
//   - *ValidationError: New validation error with selection category
func NewSelectionValidationError(arg, message string) *ValidationError {
	return &ValidationError{
		Category: ValidationCategorySelection,
		Field:    arg,
		Message:  message,
		Expected: "dimension=value, e.g. dim1=East or Region=East",
	}
}
