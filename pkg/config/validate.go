package config

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/andybalholm/cascadia"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/ajxudir/cascade/pkg/filtering"
	"github.com/ajxudir/cascade/pkg/verbose"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field      string
	Message    string
	Expected   string // Expected type or schema hint
	ValidKeys  string // Valid keys for this context
	DocSection string // Documentation section reference
}

// Error returns the error message string.
//
// Returns:
//   - string: formatted error message with field name if available
func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// VerboseError returns a detailed error message with schema hints.
//
// Returns:
//   - string: detailed error message with schema information
func (e ValidationError) VerboseError() string {
	var sb strings.Builder
	sb.WriteString(e.Error())
	if e.Expected != "" {
		sb.WriteString(fmt.Sprintf("\n    Expected: %s", e.Expected))
	}
	if e.ValidKeys != "" {
		sb.WriteString(fmt.Sprintf("\n    Valid keys: %s", e.ValidKeys))
	}
	if e.DocSection != "" {
		sb.WriteString(fmt.Sprintf("\n    📖 See: docs/configuration.md#%s", e.DocSection))
	}
	return sb.String()
}

// ValidationResult holds the results of configuration validation.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []string
}

// HasErrors returns true if there are any validation errors.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// ErrorMessages returns all error messages as a formatted string.
//
// Returns:
//   - string: formatted error messages, or empty string if no errors
func (r *ValidationResult) ErrorMessages() string {
	return r.join(ValidationError.Error)
}

// VerboseErrorMessages returns detailed error messages with schema hints.
//
// Returns:
//   - string: detailed formatted error messages, or empty string if no errors
func (r *ValidationResult) VerboseErrorMessages() string {
	return r.join(ValidationError.VerboseError)
}

func (r *ValidationResult) join(format func(ValidationError) string) string {
	if len(r.Errors) == 0 {
		return ""
	}
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, "  - "+format(e))
	}
	return "Configuration validation failed:\n" + strings.Join(msgs, "\n")
}

func (r *ValidationResult) addError(field, format string, args ...any) {
	verbose.Printf("Config validation ERROR: %s: "+format, append([]any{field}, args...)...)
	r.Errors = append(r.Errors, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
}

type schemaInfo struct {
	fields string
	doc    string
}

// Schema information for validation errors
var configSchema = map[string]schemaInfo{
	"Config":        {fields: "dimensions, page, cascade, display, server, security", doc: "configuration"},
	"DimensionsCfg": {fields: "dim1, dim2, dim3", doc: "dimensions"},
	"DimensionCfg":  {fields: "label, select, item", doc: "dimensions"},
	"PageCfg":       {fields: "items, reset, count, id_attr", doc: "page"},
	"CascadeCfg":    {fields: "non_cascading", doc: "cascade"},
	"DisplayCfg":    {fields: "locale", doc: "display"},
	"ServerCfg":     {fields: "addr, session_ttl", doc: "server"},
	"SecurityCfg":   {fields: "max_catalog_file_size", doc: "security"},
}

// commonTypos maps common typos to correct field names
var commonTypos = map[string]map[string]string{
	"Config": {
		"dimension": "dimensions",
		"dims":      "dimensions",
		"pages":     "page",
	},
	"DimensionCfg": {
		"selector": "select",
		"name":     "label",
		"items":    "item",
	},
	"PageCfg": {
		"item":       "items",
		"collection": "items",
		"idAttr":     "id_attr",
		"counter":    "count",
	},
	"CascadeCfg": {
		"noncascading":  "non_cascading",
		"nonCascading":  "non_cascading",
		"non_cascade":   "non_cascading",
		"sticky":        "non_cascading",
	},
	"SecurityCfg": {
		"max_file_size":      "max_catalog_file_size",
		"maxCatalogFileSize": "max_catalog_file_size",
	},
}

// ValidateConfigFile validates a YAML configuration file for syntax errors and unknown fields.
//
// This performs strict validation using KnownFields(true) to detect typos and
// unknown configuration options, then validates the decoded values.
//
// Parameters:
//   - data: YAML configuration data as bytes
//
// Returns:
//   - *ValidationResult: validation result with any errors and warnings found
func ValidateConfigFile(data []byte) *ValidationResult {
	result := &ValidationResult{}

	verbose.Printf("Config validation: starting YAML parsing with strict field checking")

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	cfg := loadDefaultConfig()
	if err := decoder.Decode(cfg); err != nil && err.Error() != "EOF" {
		verbose.Printf("Config validation FAILED: YAML decode error: %v", err)
		errMsg := err.Error()
		switch {
		case strings.Contains(errMsg, "field") && strings.Contains(errMsg, "not found"):
			fieldName, typeName := extractFieldAndType(errMsg)
			verr := ValidationError{Message: fmt.Sprintf("unknown field '%s'", fieldName)}
			if line := extractLineNumber(errMsg); line > 0 {
				verr.Message = fmt.Sprintf("unknown field '%s' (line %d)", fieldName, line)
			}
			if schema, ok := configSchema[typeName]; ok {
				verr.ValidKeys = schema.fields
				verr.DocSection = schema.doc
			} else if typeName != "" {
				verr.Expected = fmt.Sprintf("valid field for %s", typeName)
			}
			if suggestion := suggestSimilarField(fieldName, typeName); suggestion != "" {
				verr.Message += fmt.Sprintf(" (did you mean '%s'?)", suggestion)
			}
			result.Errors = append(result.Errors, verr)
		case strings.Contains(errMsg, "cannot unmarshal"):
			result.Errors = append(result.Errors, ValidationError{
				Message:  errMsg,
				Expected: extractExpectedType(errMsg),
			})
		case strings.Contains(errMsg, "yaml:"):
			result.Errors = append(result.Errors, ValidationError{
				Message:    fmt.Sprintf("YAML syntax error: %s", errMsg),
				DocSection: "configuration",
			})
		default:
			result.Errors = append(result.Errors, ValidationError{Message: errMsg})
		}
		return result
	}

	validateConfigStruct(cfg, result)

	if len(result.Errors) == 0 {
		verbose.Printf("Config validation PASSED: no errors found")
	} else {
		verbose.Printf("Config validation FAILED: %d errors found", len(result.Errors))
	}
	return result
}

// Validate validates a loaded Config struct.
//
// Returns:
//   - *ValidationResult: validation result with any errors and warnings found
func (c *Config) Validate() *ValidationResult {
	result := &ValidationResult{}
	validateConfigStruct(c, result)
	return result
}

// validateConfigStruct checks selectors compile, dimension references
// resolve, labels are distinct and the locale parses.
func validateConfigStruct(cfg *Config, result *ValidationResult) {
	if strings.TrimSpace(cfg.Page.Items) == "" {
		result.addError("page.items", "item selector cannot be empty")
	}
	validateSelector("page.items", cfg.Page.Items, result)
	validateSelector("page.reset", cfg.Page.Reset, result)
	validateSelector("page.count", cfg.Page.Count, result)

	labels := make(map[string]filtering.Dimension)
	for _, d := range filtering.Dimensions {
		dc := cfg.Dimension(d)
		prefix := "dimensions." + d.String()
		validateSelector(prefix+".select", dc.Select, result)
		validateSelector(prefix+".item", dc.Item, result)
		if dc.Label == "" {
			continue
		}
		key := strings.ToLower(dc.Label)
		if other, dup := labels[key]; dup {
			result.addError(prefix+".label", "label %q already used by %s", dc.Label, other)
			continue
		}
		if _, err := filtering.ParseDimension(dc.Label); err == nil && !strings.EqualFold(dc.Label, d.String()) {
			result.addError(prefix+".label", "label %q names a different dimension", dc.Label)
		}
		labels[key] = d
	}

	for i, name := range cfg.Cascade.NonCascading {
		if _, err := cfg.ResolveDimension(name); err != nil {
			result.addError(fmt.Sprintf("cascade.non_cascading[%d]", i), "%q is not a dimension (use dim1, dim2 or dim3)", name)
		}
	}

	if cfg.Display.Locale != "" {
		if _, err := language.Parse(cfg.Display.Locale); err != nil {
			result.addError("display.locale", "invalid locale %q: %v", cfg.Display.Locale, err)
		}
	}

	if cfg.Server.SessionTTL != "" {
		if d, err := time.ParseDuration(cfg.Server.SessionTTL); err != nil {
			result.addError("server.session_ttl", "invalid duration %q (use e.g. 30m or 0 to disable)", cfg.Server.SessionTTL)
		} else if d < 0 {
			result.addError("server.session_ttl", "must not be negative")
		}
	}

	if cfg.Security != nil && cfg.Security.MaxCatalogFileSize < 0 {
		result.addError("security.max_catalog_file_size", "must not be negative")
	}
}

// validateSelector records an error when a non-empty selector does not compile.
func validateSelector(field, sel string, result *ValidationResult) {
	if strings.TrimSpace(sel) == "" {
		return
	}
	if _, err := cascadia.Compile(sel); err != nil {
		result.addError(field, "invalid CSS selector %q: %v", sel, err)
	}
}

// extractFieldAndType extracts field name and type from YAML error message.
//
// Parameters:
//   - errMsg: YAML error message
//
// Returns:
//   - field: the unknown field name
//   - typeName: the type name where the field was found
func extractFieldAndType(errMsg string) (field, typeName string) {
	// Error format: "yaml: unmarshal errors:\n  line X: field foo not found in type config.Type"
	parts := strings.Split(errMsg, "field ")
	if len(parts) >= 2 {
		fieldPart := parts[1]
		if spaceIdx := strings.Index(fieldPart, " "); spaceIdx > 0 {
			field = fieldPart[:spaceIdx]
		} else {
			field = fieldPart
		}
	}

	if idx := strings.Index(errMsg, "in type config."); idx >= 0 {
		typePart := errMsg[idx+len("in type config."):]
		if endIdx := strings.IndexAny(typePart, " \n"); endIdx > 0 {
			typeName = typePart[:endIdx]
		} else {
			typeName = typePart
		}
	}

	return field, typeName
}

var lineNumberPattern = regexp.MustCompile(`line (\d+):`)

// extractLineNumber extracts the line number from a YAML error message.
//
// Returns:
//   - int: the line number, or 0 if not found
func extractLineNumber(errMsg string) int {
	matches := lineNumberPattern.FindStringSubmatch(errMsg)
	if len(matches) >= 2 {
		var lineNum int
		_, _ = fmt.Sscanf(matches[1], "%d", &lineNum)
		return lineNum
	}
	return 0
}

// extractExpectedType extracts the expected type from "cannot unmarshal X into Y".
func extractExpectedType(errMsg string) string {
	if idx := strings.Index(errMsg, "into "); idx >= 0 {
		typePart := errMsg[idx+5:]
		if endIdx := strings.IndexAny(typePart, " \n"); endIdx > 0 {
			return typePart[:endIdx]
		}
		return typePart
	}
	return ""
}

// suggestSimilarField returns a suggested field name if the input looks like a typo.
//
// Parameters:
//   - field: the unknown field name
//   - typeName: the type name where the field was found
//
// Returns:
//   - string: suggested correct field name, or empty string if no suggestion
func suggestSimilarField(field, typeName string) string {
	if typos, ok := commonTypos[typeName]; ok {
		if suggestion, found := typos[field]; found {
			return suggestion
		}
	}

	if strings.Contains(field, "-") {
		snakeCase := strings.ReplaceAll(field, "-", "_")
		if schema, ok := configSchema[typeName]; ok && strings.Contains(schema.fields, snakeCase) {
			return snakeCase
		}
	}

	return ""
}
