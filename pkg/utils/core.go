// Package utils holds small helpers shared by the catalog, page and CLI code.
package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadFileLimited reads path after checking it does not exceed maxSize bytes.
//
// Parameters:
//   - path: File to read
//   - maxSize: Maximum allowed size in bytes; <= 0 disables the check
//
// Returns:
//   - []byte: File contents
//   - error: When the file is missing, unreadable or too large
func ReadFileLimited(path string, maxSize int64) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if maxSize > 0 && info.Size() > maxSize {
		return nil, fmt.Errorf("file too large: %d bytes (max %d bytes)\n\n"+
			"💡 To increase this limit, add to your config:\n"+
			"   security:\n"+
			"     max_catalog_file_size: %d  # or larger value in bytes",
			info.Size(), maxSize, info.Size()*2)
	}
	return os.ReadFile(path)
}

// TrimAndSplit splits a string by separator and trims whitespace from each part.
//
// Parameters:
//   - s: The string to split and trim
//   - sep: The separator to split on
//
// Returns:
//   - []string: Trimmed non-empty parts; empty slice if s is ""
func TrimAndSplit(s string, sep string) []string {
	if s == "" {
		return []string{}
	}

	parts := strings.Split(s, sep)
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// CleanValues trims each value, drops empties and removes duplicates while
// keeping first-seen order.
//
// Parameters:
//   - values: Raw tag values
//
// Returns:
//   - []string: Cleaned values, nil when nothing remains
func CleanValues(values []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = CollapseSpace(v)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// CollapseSpace trims s and folds internal whitespace runs to one space, the
// way a browser renders element text.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Contains checks if a string slice contains an item (case-sensitive).
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// ContainsIgnoreCase checks if a string slice contains an item using strings.EqualFold.
func ContainsIgnoreCase(slice []string, item string) bool {
	for _, s := range slice {
		if strings.EqualFold(s, item) {
			return true
		}
	}
	return false
}

// NormalizePath returns the absolute, cleaned form of path. When the
// absolute path cannot be determined the cleaned relative path is returned.
//
// Parameters:
//   - path: The file path to normalize
//
// Returns:
//   - string: The normalized file path
func NormalizePath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
