// Package verbose provides debug logging with documentation references.
package verbose

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

var (
	mu      sync.RWMutex
	enabled bool
	writer  io.Writer = os.Stderr
)

// Enable turns on verbose logging and allows debug messages to be printed.
//
// It performs the following operations:
//   - Acquires a write lock to ensure thread-safe modification
//   - Sets the enabled flag to true
//   - Releases the write lock
//
// Returns:
//   - None
func Enable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = true
}

// Disable turns off verbose logging and prevents debug messages from being printed.
//
// It performs the following operations:
//   - Acquires a write lock to ensure thread-safe modification
//   - Sets the enabled flag to false
//   - Releases the write lock
//
// Returns:
//   - None
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = false
}

// IsEnabled returns whether verbose logging is currently enabled.
//
// It performs the following operations:
//   - Acquires a read lock to ensure thread-safe access
//   - Reads the enabled flag value
//   - Releases the read lock
//
// Returns:
//   - bool: true if verbose logging is enabled, false otherwise
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetWriter sets the output writer for verbose messages.
//
// It performs the following operations:
//   - Acquires a write lock to ensure thread-safe modification
//   - Updates the writer if the provided writer is not nil
//   - Releases the write lock
//
// Parameters:
//   - w: The io.Writer to use for output; if nil, the writer remains unchanged
//
// Returns:
//   - None
func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w != nil {
		writer = w
	}
}

// getWriter returns the current writer with proper locking for internal use.
//
// It performs the following operations:
//   - Acquires a read lock to ensure thread-safe access
//   - Reads the writer value
//   - Releases the read lock
//
// Returns:
//   - io.Writer: The currently configured output writer
func getWriter() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return writer
}

// isEnabled returns whether verbose is enabled with proper locking for internal use.
//
// It performs the following operations:
//   - Acquires a read lock to ensure thread-safe access
//   - Reads the enabled flag value
//   - Releases the read lock
//
// Returns:
//   - bool: true if verbose logging is enabled, false otherwise
func isEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// Printf prints a formatted verbose message if enabled.
//
// It performs the following operations:
//   - Checks if verbose logging is enabled
//   - Formats and prints the message with [DEBUG] prefix to the configured writer
//   - Does nothing if verbose logging is disabled
//
// Parameters:
//   - format: Printf-style format string
//   - args: Variadic arguments to format into the string
//
// Returns:
//   - None
func Printf(format string, args ...any) {
	if isEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] "+format+"\n", args...)
	}
}

// Info prints an informational verbose message if enabled.
//
// It performs the following operations:
//   - Checks if verbose logging is enabled
//   - Prints the message with [DEBUG] prefix to the configured writer
//   - Does nothing if verbose logging is disabled
//
// Parameters:
//   - msg: The message string to print
//
// Returns:
//   - None
func Info(msg string) {
	if isEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] %s\n", msg)
	}
}

// Infof prints a formatted informational verbose message if enabled.
//
// It performs the following operations:
//   - Checks if verbose logging is enabled
//   - Formats and prints the message with [DEBUG] prefix to the configured writer
//   - Does nothing if verbose logging is disabled
//
// Parameters:
//   - format: Printf-style format string
//   - args: Variadic arguments to format into the string
//
// Returns:
//   - None
func Infof(format string, args ...any) {
	if isEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] "+format+"\n", args...)
	}
}

// DocRef represents a documentation reference for a specific topic.
//
// Fields:
//   - Topic: A human-readable name for the documentation topic
//   - DocPath: The relative path to the documentation file or section
//   - Hint: A brief description of what the documentation covers
type DocRef struct {
	Topic   string
	DocPath string
	Hint    string
}

// Common documentation references.
var docRefs = map[string]DocRef{
	"config": {
		Topic:   "Configuration",
		DocPath: "docs/configuration.md",
		Hint:    "See configuration guide for YAML schema and options",
	},
	"dimensions": {
		Topic:   "Dimensions",
		DocPath: "docs/configuration.md#dimensions",
		Hint:    "Set labels and selectors for dim1, dim2 and dim3 in .cascade.yml",
	},
	"cascade": {
		Topic:   "Cascade Rules",
		DocPath: "docs/configuration.md#cascade",
		Hint:    "List dimensions under non_cascading to keep other selections when they change",
	},
	"page": {
		Topic:   "Page Adapter",
		DocPath: "docs/configuration.md#page",
		Hint:    "Item, reset and count selectors for HTML pages",
	},
	"cli": {
		Topic:   "CLI Reference",
		DocPath: "docs/cli.md",
		Hint:    "See all available commands and flags",
	},
}

// WithDocRef prints a verbose message with a documentation reference if enabled.
//
// Parameters:
//   - topic: The documentation topic key (e.g., "config", "cascade", "page")
//   - message: The main message to print
func WithDocRef(topic, message string) {
	if !isEnabled() {
		return
	}
	w := getWriter()
	_, _ = fmt.Fprintf(w, "[DEBUG] %s\n", message)
	if ref, ok := docRefs[strings.ToLower(topic)]; ok {
		_, _ = fmt.Fprintf(w, "        📖 %s: %s\n", ref.Topic, ref.DocPath)
		_, _ = fmt.Fprintf(w, "        💡 %s\n", ref.Hint)
	}
}

// ConfigLoaded logs which config file was loaded if enabled.
//
// Parameters:
//   - path: The file path of the loaded configuration, empty for built-in defaults
func ConfigLoaded(path string) {
	if !isEnabled() {
		return
	}
	if path == "" {
		path = "(built-in defaults)"
	}
	_, _ = fmt.Fprintf(getWriter(), "[DEBUG] Config loaded: %s\n", path)
}

// ChangeApplied logs a filter change and the dimensions it cleared if enabled.
//
// Parameters:
//   - dimension: The dimension that changed
//   - value: The new value, empty when the dimension was unset
//   - cleared: Dimensions whose selections were cleared by the change
func ChangeApplied(dimension, value string, cleared []string) {
	if !isEnabled() {
		return
	}
	w := getWriter()
	if value == "" {
		_, _ = fmt.Fprintf(w, "[DEBUG] Change: %s unset\n", dimension)
	} else {
		_, _ = fmt.Fprintf(w, "[DEBUG] Change: %s=%s\n", dimension, truncate(value, 60))
	}
	if len(cleared) > 0 {
		_, _ = fmt.Fprintf(w, "        Cleared: %s\n", strings.Join(cleared, ", "))
	}
}

// ItemSkipped logs when a page or catalog item is left out if enabled.
//
// Parameters:
//   - id: The item ID or position
//   - reason: Why the item was skipped
func ItemSkipped(id, reason string) {
	if isEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] Item '%s' skipped: %s\n", id, reason)
	}
}

// truncate shortens a string to the specified maximum length.
//
// Parameters:
//   - s: The string to truncate
//   - maxLen: The maximum length for the returned string (must be at least 3)
//
// Returns:
//   - string: The original or truncated string with "..." suffix if truncated
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
