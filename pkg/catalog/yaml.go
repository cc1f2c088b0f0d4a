package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ajxudir/cascade/pkg/filtering"
)

// YAMLParser parses YAML catalogs, either an `items:` mapping or a bare list.
type YAMLParser struct{}

// Parse implements Parser.
func (p *YAMLParser) Parse(content []byte) ([]filtering.Item, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	if len(root.Content) == 0 {
		return nil, nil
	}

	node := root.Content[0]
	if node.Kind == yaml.SequenceNode {
		var records []record
		if err := node.Decode(&records); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
		return toItems(records), nil
	}

	var doc document
	if err := node.Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return toItems(doc.Items), nil
}
