// Package warnings routes non-fatal diagnostics, such as catalog items that
// were skipped, to a swappable writer.
package warnings

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

var (
	mu         sync.RWMutex
	warnWriter io.Writer = os.Stderr
)

// Warnf writes a formatted warning to the configured writer. A trailing
// newline is added when format lacks one.
//
// Parameters:
//   - format: Printf-style format string for the warning message
//   - args: Variadic arguments to format into the string
func Warnf(format string, args ...any) {
	mu.RLock()
	w := warnWriter
	mu.RUnlock()
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	_, _ = fmt.Fprintf(w, format, args...)
}

// WarningWriter returns the currently configured warning writer.
func WarningWriter() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return warnWriter
}

// SetWarningWriter swaps the warning writer and returns a restore function.
//
// Parameters:
//   - w: The new io.Writer to use; if nil, defaults to os.Stderr
//
// Returns:
//   - func(): Restores the previous writer
func SetWarningWriter(w io.Writer) func() {
	mu.Lock()
	defer mu.Unlock()

	previous := warnWriter
	if w == nil {
		warnWriter = os.Stderr
	} else {
		warnWriter = w
	}

	return func() {
		mu.Lock()
		defer mu.Unlock()
		warnWriter = previous
	}
}

// Collector captures warnings for deferred output.
//
// It implements io.Writer so it can be installed with SetWarningWriter;
// commands print the collected lines after their main result.
//
// Example:
//
//	collector := &warnings.Collector{}
//	restore := warnings.SetWarningWriter(collector)
//	defer restore()
//	// ... load the catalog ...
//	display.PrintWarnings(os.Stderr, collector.Messages())
type Collector struct {
	mu       sync.Mutex
	messages []string
}

// Write stores each non-empty trimmed line of p.
//
// Returns:
//   - int: len(p)
//   - error: always nil
func (c *Collector) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, line := range strings.Split(string(p), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			c.messages = append(c.messages, trimmed)
		}
	}
	return len(p), nil
}

// Messages returns a copy of the collected lines.
func (c *Collector) Messages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.messages))
	copy(out, c.messages)
	return out
}

// Reset clears all collected messages.
func (c *Collector) Reset() {
	c.mu.Lock()
	c.messages = nil
	c.mu.Unlock()
}
