package output

import (
	"fmt"
	"io"
	"strings"
)

// dim3Separator joins multi-valued tags in CSV cells.
const dim3Separator = "; "

// WriteOptionsResult writes an options result in a structured format.
//
// Parameters:
//   - w: Destination writer
//   - format: FormatJSON, FormatXML or FormatCSV
//   - result: Data to write
//
// Returns:
//   - error: For FormatTable or an unknown format, or when writing fails
func WriteOptionsResult(w io.Writer, format Format, result *OptionsResult) error {
	return write(NewFormatter(format, w), result, func(f *Formatter) error {
		headers := []string{"DIMENSION", "LABEL", "SELECTED", "VALUES"}
		rows := make([][]string, 0, len(result.Dimensions))
		for _, d := range result.Dimensions {
			rows = append(rows, []string{d.Key, d.Label, d.Selected, strings.Join(d.Values, dim3Separator)})
		}
		return f.WriteCSV(headers, rows)
	})
}

// WriteItemsResult writes an items result in a structured format.
//
// Parameters:
//   - w: Destination writer
//   - format: FormatJSON, FormatXML or FormatCSV
//   - result: Data to write
//
// Returns:
//   - error: For FormatTable or an unknown format, or when writing fails
func WriteItemsResult(w io.Writer, format Format, result *ItemsResult) error {
	return write(NewFormatter(format, w), result, func(f *Formatter) error {
		headers := []string{"ID"}
		for i, l := range result.Labels {
			if l == "" {
				l = fmt.Sprintf("dim%d", i+1)
			}
			headers = append(headers, strings.ToUpper(l))
		}
		rows := make([][]string, 0, len(result.Items))
		for _, it := range result.Items {
			rows = append(rows, []string{it.ID, it.Dim1, it.Dim2, strings.Join(it.Dim3, dim3Separator)})
		}
		return f.WriteCSV(headers, rows)
	})
}

func write(f *Formatter, data any, csvFn func(*Formatter) error) error {
	switch f.Format() {
	case FormatJSON:
		return f.WriteJSON(data)
	case FormatXML:
		return f.WriteXML(data)
	case FormatCSV:
		return csvFn(f)
	default:
		return fmt.Errorf("unsupported format: %s", f.Format())
	}
}
