package config

import (
	"strings"
	"time"

	"github.com/ajxudir/cascade/pkg/filtering"
)

// DefaultMaxCatalogFileSize is the default limit for config and catalog files (10MB).
const DefaultMaxCatalogFileSize int64 = 10 * 1024 * 1024

// DefaultSessionTTL is the idle expiry of service sessions.
const DefaultSessionTTL = 30 * time.Minute

// ConfigFileName is the file looked up in the working directory.
const ConfigFileName = ".cascade.yml"

// Config is the root configuration structure.
type Config struct {
	Dimensions DimensionsCfg `yaml:"dimensions"`
	Page       PageCfg       `yaml:"page"`
	Cascade    CascadeCfg    `yaml:"cascade,omitempty"`
	Display    DisplayCfg    `yaml:"display,omitempty"`
	Server     ServerCfg     `yaml:"server,omitempty"`
	Security   *SecurityCfg  `yaml:"security,omitempty"`

	// WorkingDir is set at load time and is not persisted.
	WorkingDir string `yaml:"-"`
}

// DimensionsCfg holds per-dimension settings.
type DimensionsCfg struct {
	Dim1 DimensionCfg `yaml:"dim1"`
	Dim2 DimensionCfg `yaml:"dim2"`
	Dim3 DimensionCfg `yaml:"dim3"`
}

// DimensionCfg describes one filter dimension.
//
// Fields:
//   - Label: Human-readable name used in tables and API responses
//   - Select: CSS selector of the page's <select> for this dimension
//   - Item: CSS selector, relative to an item, of the element(s) holding its tag
type DimensionCfg struct {
	Label  string `yaml:"label,omitempty"`
	Select string `yaml:"select,omitempty"`
	Item   string `yaml:"item,omitempty"`
}

// PageCfg holds selectors for the page adapter.
//
// Fields:
//   - Items: Selector matching every collection item
//   - Reset: Selector of the reset control
//   - Count: Selector of the element receiving the visible count
//   - IDAttr: Attribute read as the item ID; falls back to "id", then item-<n>
type PageCfg struct {
	Items  string `yaml:"items"`
	Reset  string `yaml:"reset,omitempty"`
	Count  string `yaml:"count,omitempty"`
	IDAttr string `yaml:"id_attr,omitempty"`
}

// CascadeCfg holds engine rules.
type CascadeCfg struct {
	// NonCascading lists dimension keys ("dim1".."dim3") whose changes never
	// clear other selections.
	NonCascading []string `yaml:"non_cascading,omitempty"`
}

// DisplayCfg holds output preferences.
type DisplayCfg struct {
	// Locale is a BCP 47 tag used to collate option values, e.g. "en" or "sv".
	Locale string `yaml:"locale,omitempty"`
}

// ServerCfg holds session service settings.
type ServerCfg struct {
	Addr string `yaml:"addr,omitempty"`
	// SessionTTL is how long a session may sit idle before it is dropped,
	// as a Go duration. "0" keeps sessions until they are deleted.
	SessionTTL string `yaml:"session_ttl,omitempty"`
}

// SecurityCfg holds input limits.
type SecurityCfg struct {
	// MaxCatalogFileSize overrides the 10MB limit for catalog and page files.
	MaxCatalogFileSize int64 `yaml:"max_catalog_file_size,omitempty"`
}

// Dimension returns the settings for d.
//
// Parameters:
//   - d: Filter dimension
//
// Returns:
//   - DimensionCfg: Settings for d, or the zero value for an invalid d
func (c *Config) Dimension(d filtering.Dimension) DimensionCfg {
	switch d {
	case filtering.Dim1:
		return c.Dimensions.Dim1
	case filtering.Dim2:
		return c.Dimensions.Dim2
	case filtering.Dim3:
		return c.Dimensions.Dim3
	}
	return DimensionCfg{}
}

// Label returns the display label for d, falling back to its key.
func (c *Config) Label(d filtering.Dimension) string {
	if l := c.Dimension(d).Label; l != "" {
		return l
	}
	return d.String()
}

// ResolveDimension accepts a dimension key ("dim2", "2") or a configured
// label (case-insensitive) and returns the dimension.
//
// Parameters:
//   - name: Key or label
//
// Returns:
//   - filtering.Dimension: The resolved dimension
//   - error: filtering.ErrInvalidDimension when nothing matches
func (c *Config) ResolveDimension(name string) (filtering.Dimension, error) {
	if d, err := filtering.ParseDimension(name); err == nil {
		return d, nil
	}
	for _, d := range filtering.Dimensions {
		if l := c.Dimension(d).Label; l != "" && strings.EqualFold(strings.TrimSpace(name), l) {
			return d, nil
		}
	}
	return filtering.ParseDimension(name)
}

// Rules converts the cascade settings to engine rules.
//
// Returns:
//   - filtering.Rules: Engine rules
//   - error: When a non_cascading entry names no dimension
func (c *Config) Rules() (filtering.Rules, error) {
	var rules filtering.Rules
	for _, name := range c.Cascade.NonCascading {
		d, err := c.ResolveDimension(name)
		if err != nil {
			return filtering.Rules{}, err
		}
		rules.NonCascading = append(rules.NonCascading, d)
	}
	return rules, nil
}

// GetMaxCatalogFileSize returns the configured limit or the default.
func (c *Config) GetMaxCatalogFileSize() int64 {
	if c.Security != nil && c.Security.MaxCatalogFileSize > 0 {
		return c.Security.MaxCatalogFileSize
	}
	return DefaultMaxCatalogFileSize
}

// GetLocale returns the collation locale, "und" when unset.
func (c *Config) GetLocale() string {
	if c.Display.Locale == "" {
		return "und"
	}
	return c.Display.Locale
}

// GetSessionTTL returns the idle expiry of service sessions,
// DefaultSessionTTL when unset or unparsable. Zero disables expiry.
func (c *Config) GetSessionTTL() time.Duration {
	if c.Server.SessionTTL == "" {
		return DefaultSessionTTL
	}
	d, err := time.ParseDuration(c.Server.SessionTTL)
	if err != nil || d < 0 {
		return DefaultSessionTTL
	}
	return d
}

// GetServerAddr returns the listen address, ":8080" when unset.
func (c *Config) GetServerAddr() string {
	if c.Server.Addr == "" {
		return ":8080"
	}
	return c.Server.Addr
}
