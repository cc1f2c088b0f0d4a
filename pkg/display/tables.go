package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/ajxudir/cascade/pkg/constants"
	"github.com/ajxudir/cascade/pkg/output"
)

// PrintOptionsTable prints one row per dimension with its selection and
// selectable values, followed by cleared dimensions and the summary line.
//
// Example output:
//
//	DIMENSION  SELECTED     SELECTABLE
//	---------  -----------  ------------------------
//	Region     Region-East  Region-East, Region-West
//	Type       -            Type-A, Type-B
func PrintOptionsTable(w io.Writer, r *output.OptionsResult) {
	table := output.NewTable().AddColumn("DIMENSION").AddColumn("SELECTED").AddColumn("SELECTABLE")
	rows := make([][]string, 0, len(r.Dimensions))
	for _, d := range r.Dimensions {
		row := []string{d.Label, orPlaceholder(d.Selected, constants.PlaceholderUnset), orPlaceholder(strings.Join(d.Values, constants.ListSeparator), constants.PlaceholderNone)}
		table.UpdateWidths(row...)
		rows = append(rows, row)
	}

	table.Fprint(w)
	for _, row := range rows {
		_, _ = fmt.Fprintln(w, table.FormatRow(row...))
	}

	if len(r.Cleared) > 0 {
		labels := make([]string, 0, len(r.Cleared))
		for _, key := range r.Cleared {
			labels = append(labels, labelFor(r, key))
		}
		PrintCleared(w, labels)
	}
	_, _ = fmt.Fprintln(w)
	PrintSummary(w, r.Summary)
}

// PrintItemsTable prints the visible items. The third dimension's column
// is left out when no visible item carries a tag in it.
func PrintItemsTable(w io.Writer, r *output.ItemsResult) {
	if len(r.Items) == 0 {
		PrintNoItemsMessage(w, r.Summary.Total)
		return
	}

	hasTags := false
	for _, it := range r.Items {
		if len(it.Dim3) > 0 {
			hasTags = true
			break
		}
	}

	table := output.NewTable().
		AddColumn("ID").
		AddColumn(strings.ToUpper(r.Labels[0])).
		AddColumn(strings.ToUpper(r.Labels[1])).
		AddConditionalColumn(strings.ToUpper(r.Labels[2]), hasTags)

	rows := make([][]string, 0, len(r.Items))
	for _, it := range r.Items {
		row := []string{
			it.ID,
			orPlaceholder(it.Dim1, constants.PlaceholderUnset),
			orPlaceholder(it.Dim2, constants.PlaceholderUnset),
			orPlaceholder(strings.Join(it.Dim3, constants.ListSeparator), constants.PlaceholderUnset),
		}
		table.UpdateWidths(row...)
		rows = append(rows, row)
	}

	table.Fprint(w)
	for _, row := range rows {
		_, _ = fmt.Fprintln(w, table.FormatRow(row...))
	}
	_, _ = fmt.Fprintln(w)
	PrintSummary(w, r.Summary)
}

func labelFor(r *output.OptionsResult, key string) string {
	for _, d := range r.Dimensions {
		if d.Key == key {
			return d.Label
		}
	}
	return key
}

func orPlaceholder(val, placeholder string) string {
	if val == "" {
		return placeholder
	}
	return val
}
