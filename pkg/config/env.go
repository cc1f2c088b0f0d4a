package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/ajxudir/cascade/pkg/verbose"
)

// envOverrides holds settings that may be supplied through the environment.
type envOverrides struct {
	ServerAddr   string   `env:"CASCADE_SERVER_ADDR"`
	Locale       string   `env:"CASCADE_LOCALE"`
	NonCascading []string `env:"CASCADE_NON_CASCADING" envSeparator:","`
}

// parseEnvFunc is swapped in tests.
var parseEnvFunc = env.Parse

// applyEnvOverrides overlays CASCADE_* environment variables on cfg.
//
// Parameters:
//   - cfg: configuration to modify in place
//
// Returns:
//   - error: when an environment variable cannot be parsed
func applyEnvOverrides(cfg *Config) error {
	var o envOverrides
	if err := parseEnvFunc(&o); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if o.ServerAddr != "" {
		verbose.Printf("Config override from env: server.addr=%q", o.ServerAddr)
		cfg.Server.Addr = o.ServerAddr
	}
	if o.Locale != "" {
		verbose.Printf("Config override from env: display.locale=%q", o.Locale)
		cfg.Display.Locale = o.Locale
	}
	if len(o.NonCascading) > 0 {
		verbose.Printf("Config override from env: cascade.non_cascading=%v", o.NonCascading)
		cfg.Cascade.NonCascading = o.NonCascading
	}
	return nil
}
