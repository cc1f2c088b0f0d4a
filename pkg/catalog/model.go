// Package catalog reads item catalogs from YAML, JSON and XML files and
// normalizes them into a filtering.Catalog.
//
// A catalog file lists items with an optional ID and up to three tags:
//
//	items:
//	  - id: a
//	    dim1: Region-East
//	    dim2: Type1
//	    dim3: [Tag1, Tag2]
//
// JSON uses the same keys, and a bare top-level list is accepted for both.
// XML uses attributes for the single-valued fields and repeated <dim3>
// children:
//
//	<catalog>
//	  <item id="a" dim1="Region-East" dim2="Type1"><dim3>Tag1</dim3></item>
//	</catalog>
package catalog

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ajxudir/cascade/pkg/filtering"
)

// record is one item as written in a catalog file.
type record struct {
	ID   string  `json:"id" yaml:"id"`
	Dim1 string  `json:"dim1" yaml:"dim1"`
	Dim2 string  `json:"dim2" yaml:"dim2"`
	Dim3 tagList `json:"dim3" yaml:"dim3"`
}

// document is the top-level catalog layout.
type document struct {
	Items []record `json:"items" yaml:"items"`
}

func (r record) item() filtering.Item {
	return filtering.Item{ID: r.ID, Dim1: r.Dim1, Dim2: r.Dim2, Dim3: []string(r.Dim3)}
}

func toItems(records []record) []filtering.Item {
	items := make([]filtering.Item, 0, len(records))
	for _, r := range records {
		items = append(items, r.item())
	}
	return items
}

// tagList accepts either a single scalar or a list for dim3.
type tagList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *tagList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*t = tagList{s}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*t = list
		return nil
	}
	return fmt.Errorf("line %d: dim3 must be a string or a list of strings", node.Line)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *tagList) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = tagList{s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("dim3 must be a string or a list of strings")
	}
	*t = list
	return nil
}
