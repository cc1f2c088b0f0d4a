// Package output provides formatters for exporting command results.
// Tables are the default; CSV, JSON and XML serve scripts.
package output

import (
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Format represents the output format type.
type Format string

const (
	// FormatTable is the default terminal table output.
	FormatTable Format = "table"
	// FormatCSV outputs data as comma-separated values.
	FormatCSV Format = "csv"
	// FormatJSON outputs data as JSON.
	FormatJSON Format = "json"
	// FormatXML outputs data as XML.
	FormatXML Format = "xml"
)

// ParseFormat parses a case-insensitive format name. An empty string is
// the table format.
//
// Parameters:
//   - s: Format name (e.g., "csv", "JSON")
//
// Returns:
//   - Format: The parsed format
//   - error: When s names no known format
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table":
		return FormatTable, nil
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "xml":
		return FormatXML, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (use table, json, csv or xml)", s)
	}
}

// IsStructuredFormat returns true for CSV, JSON and XML.
func IsStructuredFormat(f Format) bool {
	return f == FormatCSV || f == FormatJSON || f == FormatXML
}

// Formatter handles writing data in a specific format.
type Formatter struct {
	format Format
	writer io.Writer
}

// NewFormatter creates a new formatter for the given format and writer.
func NewFormatter(format Format, writer io.Writer) *Formatter {
	return &Formatter{format: format, writer: writer}
}

// Format returns the current format.
func (f *Formatter) Format() Format {
	return f.format
}

// WriteCSV writes a header row followed by rows.
//
// csv.Writer buffers writes and only reports errors after Flush.
//
// Parameters:
//   - headers: Column headers
//   - rows: Data rows with the same number of columns as headers
//
// Returns:
//   - error: The first write or flush error
func (f *Formatter) WriteCSV(headers []string, rows [][]string) error {
	w := csv.NewWriter(f.writer)

	_ = w.Write(headers)
	for _, row := range rows {
		_ = w.Write(row)
	}

	w.Flush()
	return w.Error()
}

// WriteJSON writes data as one line of JSON without HTML escaping, so
// values such as "R&D" survive unchanged.
//
// Parameters:
//   - data: Value to encode
//
// Returns:
//   - error: When encoding fails
func (f *Formatter) WriteJSON(data any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetEscapeHTML(false)
	return encoder.Encode(data)
}

// WriteXML writes the XML header and data indented by two spaces.
//
// Parameters:
//   - data: Value with xml tags
//
// Returns:
//   - error: When encoding fails
func (f *Formatter) WriteXML(data any) error {
	_, _ = fmt.Fprint(f.writer, xml.Header)
	encoder := xml.NewEncoder(f.writer)
	encoder.Indent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(f.writer)
	return nil
}
