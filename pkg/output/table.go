package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/ajxudir/cascade/pkg/utils"
)

// Column is a table column with its header and current display width.
type Column struct {
	Header string
	Width  int
	hidden bool
}

// Table formats rows into aligned columns using Unicode-aware widths, so
// labels such as "Région" or CJK tags line up.
//
// Usage is two-pass: feed every row to UpdateWidths, then print the header
// and each FormatRow.
type Table struct {
	columns   []Column
	separator string
}

// NewTable creates an empty table with a two-space separator.
func NewTable() *Table {
	return &Table{separator: "  "}
}

// WithSeparator sets a custom column separator.
func (t *Table) WithSeparator(sep string) *Table {
	t.separator = sep
	return t
}

// AddColumn adds a visible column.
func (t *Table) AddColumn(header string) *Table {
	return t.AddConditionalColumn(header, true)
}

// AddConditionalColumn adds a column that is only printed when visible.
// Rows still carry a value for hidden columns.
//
// Parameters:
//   - header: Column header
//   - visible: Whether the column is printed
//
// Returns:
//   - *Table: The table for chaining
func (t *Table) AddConditionalColumn(header string, visible bool) *Table {
	t.columns = append(t.columns, Column{
		Header: header,
		Width:  utils.DisplayWidth(header),
		hidden: !visible,
	})
	return t
}

// UpdateWidths widens columns to fit a row of values.
func (t *Table) UpdateWidths(values ...string) *Table {
	for i, val := range values {
		if i < len(t.columns) {
			t.columns[i].Width = utils.Max(t.columns[i].Width, utils.DisplayWidth(val))
		}
	}
	return t
}

// HeaderRow returns the padded header row.
func (t *Table) HeaderRow() string {
	return t.join(func(c Column, _ int) string { return utils.ToWidth(c.Header, c.Width) })
}

// SeparatorRow returns a row of dashes matching the column widths.
func (t *Table) SeparatorRow() string {
	return t.join(func(c Column, _ int) string { return strings.Repeat("-", c.Width) })
}

// FormatRow pads each value to its column width. Missing values print as
// empty cells, values for hidden columns are dropped.
func (t *Table) FormatRow(values ...string) string {
	return t.join(func(c Column, i int) string {
		val := ""
		if i < len(values) {
			val = values[i]
		}
		return utils.ToWidth(val, c.Width)
	})
}

func (t *Table) join(cell func(Column, int) string) string {
	parts := make([]string, 0, len(t.columns))
	for i, col := range t.columns {
		if !col.hidden {
			parts = append(parts, cell(col, i))
		}
	}
	return strings.TrimRight(strings.Join(parts, t.separator), " ")
}

// VisibleColumnCount returns the number of printed columns.
func (t *Table) VisibleColumnCount() int {
	count := 0
	for _, col := range t.columns {
		if !col.hidden {
			count++
		}
	}
	return count
}

// Fprint writes the header and separator rows to w.
func (t *Table) Fprint(w io.Writer) {
	_, _ = fmt.Fprintln(w, t.HeaderRow())
	_, _ = fmt.Fprintln(w, t.SeparatorRow())
}

// String returns a debug representation such as
// "Table{columns: [ID:2, TAG:3 (hidden)]}".
func (t *Table) String() string {
	var sb strings.Builder
	sb.WriteString("Table{columns: [")
	for i, col := range t.columns {
		if i > 0 {
			sb.WriteString(", ")
		}
		hidden := ""
		if col.hidden {
			hidden = " (hidden)"
		}
		sb.WriteString(fmt.Sprintf("%s:%d%s", col.Header, col.Width, hidden))
	}
	sb.WriteString("]}")
	return sb.String()
}
