package catalog

import (
	"fmt"

	"github.com/ajxudir/cascade/pkg/filtering"
	"github.com/ajxudir/cascade/pkg/utils"
	"github.com/ajxudir/cascade/pkg/verbose"
)

// Parse decodes content in the given format and normalizes the result.
//
// Parameters:
//   - content: Raw file content
//   - format: Format name accepted by GetParser
//
// Returns:
//   - filtering.Catalog: Normalized catalog
//   - error: Parse failures, or the duplicate-ID validation result from Normalize
func Parse(content []byte, format string) (filtering.Catalog, error) {
	parser, err := GetParser(format)
	if err != nil {
		return nil, err
	}
	raw, err := parser.Parse(content)
	if err != nil {
		return nil, err
	}
	return Normalize(raw)
}

// LoadFile reads a catalog file, inferring the format from its extension.
//
// Parameters:
//   - path: Catalog file path (.yml, .yaml, .json or .xml)
//   - maxSize: Maximum file size in bytes
//
// Returns:
//   - filtering.Catalog: Normalized catalog
//   - error: Read, size, parse or validation failure
func LoadFile(path string, maxSize int64) (filtering.Catalog, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	verbose.Infof("Loading %s catalog: %s", format, path)
	data, err := utils.ReadFileLimited(path, maxSize)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	parser, err := GetParser(format)
	if err != nil {
		return nil, err
	}
	raw, err := parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	items, err := Normalize(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}
	return items, nil
}
