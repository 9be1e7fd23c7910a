package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envOverrides lists the environment variables that take precedence over
// the config file. Unset variables leave the file value alone.
type envOverrides struct {
	Theme      string `env:"ROSTER_THEME"`
	IDStrategy string `env:"ROSTER_ID_STRATEGY"`
	IDPrefix   string `env:"ROSTER_ID_PREFIX"`
	LogLevel   string `env:"ROSTER_LOG_LEVEL"`
	Debug      *bool  `env:"ROSTER_DEBUG"`
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if o.Theme != "" {
		c.UI.Theme = o.Theme
	}
	if o.IDStrategy != "" {
		c.Roster.IDStrategy = o.IDStrategy
	}
	if o.IDPrefix != "" {
		c.Roster.IDPrefix = o.IDPrefix
	}
	if o.LogLevel != "" {
		c.Logging.Level = o.LogLevel
	}
	if o.Debug != nil {
		c.Logging.DebugMode = *o.Debug
	}
	return nil
}
