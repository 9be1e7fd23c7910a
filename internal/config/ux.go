package config

// Theme choices for UIConfig.Theme.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ValidThemes lists the accepted theme values.
var ValidThemes = []string{ThemeAuto, ThemeLight, ThemeDark}

// UIConfig holds user interface configuration.
type UIConfig struct {
	// Theme forces light or dark; auto detects from the terminal.
	Theme string `yaml:"theme"`

	// AltScreen runs the TUI in the terminal's alternate screen buffer.
	AltScreen bool `yaml:"alt_screen"`
}
