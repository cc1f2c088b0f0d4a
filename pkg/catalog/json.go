package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ajxudir/cascade/pkg/filtering"
)

// JSONParser parses JSON catalogs, either {"items": [...]} or a bare array.
type JSONParser struct{}

// Parse implements Parser.
func (p *JSONParser) Parse(content []byte) ([]filtering.Item, error) {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var records []record
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
		return toItems(records), nil
	}

	var doc document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return toItems(doc.Items), nil
}
