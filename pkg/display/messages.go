package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/ajxudir/cascade/pkg/constants"
	"github.com/ajxudir/cascade/pkg/output"
)

// PrintWarnings prints warning messages to the writer.
//
// Formats each warning on its own line with a warning icon prefix.
// Does nothing if warnings slice is empty.
// Prints a blank line before the warnings for separation.
//
// Parameters:
//   - w: Writer to output to (typically os.Stderr)
//   - warnings: Slice of warning messages
//
// Example output:
//
//	<blank line>
//	⚠️ Collection item 4 (item-5) missing required data elements: dim2
func PrintWarnings(w io.Writer, warnings []string) {
	if len(warnings) == 0 {
		return
	}

	_, _ = fmt.Fprintln(w)
	for _, warning := range warnings {
		_, _ = fmt.Fprintf(w, "%s %s\n", constants.IconWarn, warning)
	}
}

// PrintSummary prints the visible count line shown under every result.
//
// Example output:
//
//	Showing 2 of 4 items
func PrintSummary(w io.Writer, summary output.Summary) {
	noun := "items"
	if summary.Total == 1 {
		noun = "item"
	}
	_, _ = fmt.Fprintf(w, "Showing %d of %d %s\n", summary.Visible, summary.Total, noun)
}

// PrintCleared reports selections that a change removed.
//
// Example output:
//
//	↺ Cleared: Type, Tag (no longer selectable)
func PrintCleared(w io.Writer, labels []string) {
	if len(labels) == 0 {
		return
	}
	_, _ = fmt.Fprintf(w, "%s Cleared: %s (no longer selectable)\n", constants.IconCleared, strings.Join(labels, constants.ListSeparator))
}

// PrintNoItemsMessage prints the message for an empty result. It is not
// an error: a selection may legitimately match nothing.
func PrintNoItemsMessage(w io.Writer, total int) {
	if total == 0 {
		_, _ = fmt.Fprintln(w, "Catalog is empty")
		return
	}
	_, _ = fmt.Fprintf(w, "No items match the current selection (0 of %d)\n", total)
}

// PrintValidationOK prints the success line of a validation command.
func PrintValidationOK(w io.Writer, what string) {
	_, _ = fmt.Fprintf(w, "%s %s is valid\n", constants.IconCheckmarkBox, what)
}
