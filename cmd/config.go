package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ajxudir/cascade/pkg/config"
	"github.com/ajxudir/cascade/pkg/constants"
	"github.com/ajxudir/cascade/pkg/display"
	"github.com/ajxudir/cascade/pkg/errors"
	"github.com/ajxudir/cascade/pkg/verbose"
)

var (
	configShowDefaultsFlag  bool
	configShowEffectiveFlag bool
	configInitFlag          bool
	configValidateFlag      bool
	configPathFlag          string
)

var (
	loadConfigFunc = config.LoadConfig
	writeFileFunc  = os.WriteFile
	readFileFunc   = os.ReadFile
)

// loadAndValidateConfig loads the configuration and validates it for unknown fields.
//
// The explicit config file, or .cascade.yml in workDir when present, is
// checked strictly first so typos are reported before any input is read.
//
// Parameters:
//   - configPath: Path to custom config file, or empty for default location
//   - workDir: Working directory to search for default config
//
// Returns:
//   - *config.Config: Loaded and validated configuration
//   - error: ExitError with ExitConfigError on validation failure
func loadAndValidateConfig(configPath, workDir string) (*config.Config, error) {
	path := configPath
	if path == "" {
		path = filepath.Join(workDir, config.ConfigFileName)
	}

	data, err := readFileFunc(path)
	switch {
	case err == nil:
		if result := config.ValidateConfigFile(data); result.HasErrors() {
			verbose.Infof("Exit code %d (config error): configuration validation failed for %s", errors.ExitConfigError, path)
			return nil, errors.NewExitError(errors.ExitConfigError, configValidationError(path, result))
		}
	case configPath != "":
		return nil, errors.NewExitError(errors.ExitConfigError, fmt.Errorf("failed to read config file '%s': %w", configPath, err))
	}

	cfg, err := loadConfigFunc(configPath, workDir)
	if err != nil {
		return nil, errors.NewExitError(errors.ExitConfigError, fmt.Errorf("failed to load config: %w", err))
	}
	return cfg, nil
}

func configValidationError(path string, result *config.ValidationResult) error {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed for %s:\n", path))
	for _, e := range result.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", e.Error()))
	}
	sb.WriteString(fmt.Sprintf("\n%s Run 'cascade config --validate' for details", constants.IconLightbulb))
	return fmt.Errorf("%s", sb.String())
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show, create or validate configuration",
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configShowDefaultsFlag, "show-defaults", false, "Show default configuration")
	configCmd.Flags().BoolVar(&configShowEffectiveFlag, "show-effective", false, "Show effective configuration after file and environment overrides")
	configCmd.Flags().BoolVar(&configInitFlag, "init", false, "Create "+config.ConfigFileName+" template")
	configCmd.Flags().BoolVar(&configValidateFlag, "validate", false, "Validate configuration file (rejects unknown fields)")
	configCmd.Flags().StringVarP(&configPathFlag, "config", "c", "", "Config file path")
}

// runConfig executes the config command with the specified flags.
//
// Behavior depends on flags:
//   - --init: Creates a .cascade.yml template file
//   - --validate: Validates the configuration file strictly
//   - --show-defaults: Displays the embedded default configuration
//   - --show-effective: Displays the merged configuration as YAML
func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	switch {
	case configInitFlag:
		return createConfigTemplate(cmd)
	case configValidateFlag:
		return validateConfigFile(cmd)
	case configShowDefaultsFlag:
		_, _ = fmt.Fprintln(out, "Default configuration:")
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintln(out, config.GetDefaultConfig())
		return nil
	case configShowEffectiveFlag:
		workDir, _ := os.Getwd()
		cfg, err := loadAndValidateConfig(configPathFlag, workDir)
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
		_, _ = fmt.Fprintln(out, "Effective configuration:")
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintf(out, "# working directory: %s\n", cfg.WorkingDir)
		_, _ = fmt.Fprint(out, string(data))
		return nil
	}

	return cmd.Help()
}

// validateConfigFile validates the file named by --config, or .cascade.yml
// in the current directory.
//
// Returns:
//   - error: ExitError with ExitConfigError code on validation failure
func validateConfigFile(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	configPath := configPathFlag
	if configPath == "" {
		workDir, _ := os.Getwd()
		configPath = filepath.Join(workDir, config.ConfigFileName)
	}

	data, err := readFileFunc(configPath)
	if err != nil {
		return errors.NewExitError(errors.ExitConfigError, fmt.Errorf("failed to read config file '%s': %w", configPath, err))
	}

	result := config.ValidateConfigFile(data)
	if result.HasErrors() {
		_, _ = fmt.Fprintf(out, "Configuration validation failed for: %s\n\n", configPath)
		for _, e := range result.Errors {
			if verbose.IsEnabled() {
				_, _ = fmt.Fprintf(out, "  ERROR: %s\n", e.VerboseError())
			} else {
				_, _ = fmt.Fprintf(out, "  ERROR: %s\n", e.Error())
			}
		}
		_, _ = fmt.Fprintln(out)
		if !verbose.IsEnabled() {
			_, _ = fmt.Fprintf(out, "%s Run with --verbose for detailed schema information\n", constants.IconLightbulb)
		}
		verbose.Infof("Exit code %d (config error): configuration validation failed for %s", errors.ExitConfigError, configPath)
		return errors.NewExitError(errors.ExitConfigError, fmt.Errorf("configuration validation failed"))
	}

	for _, w := range result.Warnings {
		_, _ = fmt.Fprintf(out, "%s %s\n", constants.IconWarn, w)
	}
	display.PrintValidationOK(out, "Configuration "+configPath)
	return nil
}

// createConfigTemplate writes the embedded template to .cascade.yml in the
// current directory. An existing file is never overwritten.
func createConfigTemplate(cmd *cobra.Command) error {
	configPath := config.ConfigFileName
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists: %s", configPath)
	}

	if err := writeFileFunc(configPath, []byte(config.GetTemplateConfig()), 0600); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created configuration template: %s\n", configPath)
	return nil
}
