package config

// LoggingConfig configures the file logger. Nothing is written unless
// DebugMode is on.
type LoggingConfig struct {
	DebugMode  bool            `yaml:"debug_mode"`
	Level      string          `yaml:"level"`      // debug, info, warn, error
	Format     string          `yaml:"format"`     // json, text
	Categories map[string]bool `yaml:"categories"` // unlisted categories are on
}

// IsCategoryEnabled reports whether entries for category should be written.
func (c *LoggingConfig) IsCategoryEnabled(category string) bool {
	if !c.DebugMode {
		return false
	}
	if on, listed := c.Categories[category]; listed {
		return on
	}
	return true
}
