package catalog

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ajxudir/cascade/pkg/filtering"
)

// Parser decodes catalog file content into raw, un-normalized items.
type Parser interface {
	Parse(content []byte) ([]filtering.Item, error)
}

// Supported catalog formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatXML  = "xml"
)

// GetParser returns the parser for a format name.
//
// Parameters:
//   - format: "yaml", "yml", "json" or "xml" (case-insensitive)
//
// Returns:
//   - Parser: The parser implementation for the format
//   - error: When format is empty or unsupported
func GetParser(format string) (Parser, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		return nil, fmt.Errorf("format cannot be empty")
	}

	switch format {
	case FormatYAML, "yml":
		return &YAMLParser{}, nil
	case FormatJSON:
		return &JSONParser{}, nil
	case FormatXML:
		return &XMLParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported catalog format: %s (use yaml, json or xml)", format)
	}
}

// FormatForPath infers the catalog format from a file extension.
//
// Returns:
//   - string: Format name
//   - error: When the extension is not recognised
func FormatForPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".xml":
		return FormatXML, nil
	}
	return "", fmt.Errorf("cannot infer catalog format from %q (use .yml, .yaml, .json or .xml)", filepath.Base(path))
}
