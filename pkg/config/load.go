// Package config handles configuration loading and validation for cascade.
// It reads a YAML file (.cascade.yml or --config), overlays it on the embedded
// defaults and applies CASCADE_* environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ajxudir/cascade/pkg/utils"
	"github.com/ajxudir/cascade/pkg/verbose"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from the specified path or defaults.
//
// If configPath is provided, it loads that specific config file.
// Otherwise, it looks for .cascade.yml in the working directory.
// Values in the file overlay the built-in defaults, so a config only needs
// the keys it changes. Environment overrides are applied last.
//
// Parameters:
//   - configPath: path to the config file, or empty to use defaults
//   - workDir: working directory for the configuration
//
// Returns:
//   - *Config: the loaded configuration
//   - error: any error encountered during loading or validation
func LoadConfig(configPath, workDir string) (*Config, error) {
	cfg := loadDefaultConfig()

	path := configPath
	if path == "" {
		local := filepath.Join(workDir, ConfigFileName)
		if _, err := os.Stat(local); err == nil {
			verbose.Infof("Found local config: %s", local)
			path = local
		}
	}

	if path != "" {
		data, err := utils.ReadFileLimited(path, DefaultMaxCatalogFileSize)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
		}
	}
	verbose.ConfigLoaded(path)

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if workDir == "" {
		workDir = "."
	}
	cfg.WorkingDir = workDir

	if result := cfg.Validate(); result.HasErrors() {
		return nil, fmt.Errorf("%s", result.ErrorMessages())
	}

	return cfg, nil
}

// ReadFileLimited reads a catalog or page file honoring the configured size limit.
//
// Parameters:
//   - path: file to read
//
// Returns:
//   - []byte: file contents
//   - error: when the file is missing, unreadable or too large
func (c *Config) ReadFileLimited(path string) ([]byte, error) {
	return utils.ReadFileLimited(path, c.GetMaxCatalogFileSize())
}
