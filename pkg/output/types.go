package output

import (
	"encoding/xml"

	"github.com/iancoleman/orderedmap"
)

// Summary holds the visible and total item counts of a result.
type Summary struct {
	Visible int `json:"visible" xml:"visible"`
	Total   int `json:"total" xml:"total"`
}

// DimensionOptions is one dimension of an options result.
//
// Fields:
//   - Key: Canonical dimension key (dim1, dim2, dim3)
//   - Label: Configured label, used as the JSON key
//   - Selected: Current value, empty when unset
//   - Values: Selectable values in display order
type DimensionOptions struct {
	Key      string   `xml:"key,attr"`
	Label    string   `xml:"label,attr"`
	Selected string   `xml:"selected,omitempty"`
	Values   []string `xml:"values>value"`
}

// OptionsResult represents the output data for the options command.
//
// JSON output is keyed by dimension label in dimension order:
//
//	{"summary":{...},"state":{"Region":"East"},"selectable":{"Region":[...],...}}
type OptionsResult struct {
	XMLName    xml.Name           `xml:"optionsResult"`
	Summary    Summary            `xml:"summary"`
	Dimensions []DimensionOptions `xml:"dimensions>dimension"`
	Cleared    []string           `xml:"cleared>dimension,omitempty"`
	Warnings   []string           `xml:"warnings>warning,omitempty"`
}

// MarshalJSON builds the label-keyed JSON form.
func (r OptionsResult) MarshalJSON() ([]byte, error) {
	state := newMap()
	selectable := newMap()
	for _, d := range r.Dimensions {
		if d.Selected != "" {
			state.Set(d.Label, d.Selected)
		}
		values := d.Values
		if values == nil {
			values = []string{}
		}
		selectable.Set(d.Label, values)
	}

	m := newMap()
	m.Set("summary", r.Summary)
	m.Set("state", state)
	m.Set("selectable", selectable)
	if len(r.Cleared) > 0 {
		m.Set("cleared", r.Cleared)
	}
	if len(r.Warnings) > 0 {
		m.Set("warnings", r.Warnings)
	}
	return m.MarshalJSON()
}

// ItemEntry is one visible item.
type ItemEntry struct {
	ID   string   `json:"id" xml:"id,attr"`
	Dim1 string   `json:"dim1,omitempty" xml:"dim1,omitempty"`
	Dim2 string   `json:"dim2,omitempty" xml:"dim2,omitempty"`
	Dim3 []string `json:"dim3,omitempty" xml:"dim3>tag,omitempty"`
}

// ItemsResult represents the output data for the items command.
//
// Fields:
//   - Labels: Dimension labels used as CSV headers; dim1..dim3 when empty
//   - Summary: Visible and total counts
//   - Items: Visible items in catalog order
//   - Warnings: Skipped-item warnings (omitted if empty)
type ItemsResult struct {
	XMLName  xml.Name    `json:"-" xml:"itemsResult"`
	Labels   [3]string   `json:"-" xml:"-"`
	Summary  Summary     `json:"summary" xml:"summary"`
	Items    []ItemEntry `json:"items" xml:"items>item"`
	Warnings []string    `json:"warnings,omitempty" xml:"warnings>warning,omitempty"`
}

func newMap() *orderedmap.OrderedMap {
	m := orderedmap.New()
	m.SetEscapeHTML(false)
	return m
}
