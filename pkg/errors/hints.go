package errors

import (
	"strings"

	"github.com/ajxudir/cascade/pkg/constants"
)

// ErrorHint provides actionable resolution hints for common errors.
//
// Fields:
//   - Pattern: Substring to match in error message (case-insensitive)
//   - Hint: Brief description of the issue
//   - Resolution: Command or action to resolve the issue
type ErrorHint struct {
	// Pattern is a substring to match in error messages (case-insensitive).
	Pattern string

	// Hint is a brief description of the problem.
	Hint string

	// Resolution is a command or action to fix the problem.
	Resolution string
}

// CommonErrorHints maps error patterns to actionable hints.
// These are used by EnhanceErrorWithHint to add context to errors.
var CommonErrorHints = []ErrorHint{
	{
		Pattern:    "unknown value",
		Hint:       "Value does not occur in the catalog for that dimension",
		Resolution: "Run 'cascade options' without selections to list every value",
	},
	{
		Pattern:    "invalid dimension",
		Hint:       "Dimension name not recognised",
		Resolution: "Use dim1, dim2, dim3 or a label from 'dimensions' in your config",
	},
	{
		Pattern:    "no catalog source",
		Hint:       "Nothing to filter",
		Resolution: "Pass --catalog items.yml or --page index.html",
	},
	{
		Pattern:    "failed to parse",
		Hint:       "Check file syntax",
		Resolution: "Validate JSON/YAML syntax using a linter or online validator",
	},
	{
		Pattern:    "duplicate id",
		Hint:       "Two catalog items share an ID",
		Resolution: "Give every item a unique id, or omit ids to have them generated",
	},
	{
		Pattern:    "failed to load config",
		Hint:       "Configuration file is invalid or not found",
		Resolution: "Run 'cascade config --validate' to check it, or 'cascade config --init' to create one",
	},
	{
		Pattern:    "file too large",
		Hint:       "Input exceeds the size limit",
		Resolution: "Raise security.max_catalog_file_size in your config",
	},
	{
		Pattern:    "address already in use",
		Hint:       "Listen address is taken",
		Resolution: "Pick another port with --addr or CASCADE_SERVER_ADDR",
	},
	{
		Pattern:    "no such file or directory",
		Hint:       "File or directory not found",
		Resolution: "Verify the path exists and you have read permissions",
	},
	{
		Pattern:    "permission denied",
		Hint:       "Insufficient permissions",
		Resolution: "Check file permissions or run with appropriate privileges",
	},
}

// GetHint returns an actionable hint for the given error.
//
// It searches the error message for known patterns in CommonErrorHints
// and returns a formatted hint if one matches.
//
// Parameters:
//   - err: The error to get a hint for
//
// Returns:
//   - string: The hint with resolution, or empty string if no hint found
func GetHint(err error) string {
	if err == nil {
		return ""
	}

	errStr := strings.ToLower(err.Error())
	for _, hint := range CommonErrorHints {
		if strings.Contains(errStr, strings.ToLower(hint.Pattern)) {
			return hint.Hint + ": " + hint.Resolution
		}
	}

	return ""
}

// RegisterHint adds a custom hint to the registry.
//
// Parameters:
//   - pattern: Lowercase substring to match in error messages
//   - hint: Brief description of the issue
//   - resolution: Actionable suggestion for fixing the error
func RegisterHint(pattern, hint, resolution string) {
	CommonErrorHints = append(CommonErrorHints, ErrorHint{
		Pattern:    pattern,
		Hint:       hint,
		Resolution: resolution,
	})
}

// EnhanceErrorWithHint adds actionable hints to an error message if a matching pattern is found.
//
// Parameters:
//   - err: The error to enhance
//
// Returns:
//   - string: Error message with hint appended if found, otherwise just the error message
//
// Example:
//
//	enhanced := errors.EnhanceErrorWithHint(err)
//	fmt.Fprintf(os.Stderr, "Error: %s\n", enhanced)
func EnhanceErrorWithHint(err error) string {
	if err == nil {
		return ""
	}

	errStr := err.Error()
	if hint := GetHint(err); hint != "" {
		return errStr + "\n  " + constants.IconLightbulb + " " + hint
	}
	return errStr
}
