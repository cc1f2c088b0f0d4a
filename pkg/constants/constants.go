// Package constants provides the shared strings of cascade's terminal output.
package constants

// Placeholder values for table cells.
const (
	// PlaceholderUnset marks a dimension without a selection.
	PlaceholderUnset = "-"

	// PlaceholderNone marks a dimension with no selectable values.
	PlaceholderNone = "(none)"
)

// ListSeparator joins values within one table cell.
const ListSeparator = ", "

// Icon constants for message prefixes.
const (
	// IconWarn is the warning prefix for messages.
	IconWarn = "⚠️"

	// IconCleared marks selections removed by a cascade.
	IconCleared = "↺"

	// IconCheckmarkBox indicates successful validation.
	IconCheckmarkBox = "✅"

	// IconLightbulb indicates a hint or suggestion.
	IconLightbulb = "💡"
)
