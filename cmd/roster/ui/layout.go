// Package ui layout constants for consistent spacing and dimensions
package ui

// Layout constants for card and modal sizing
const (
	// Cards
	CardMaxWidth = 60
	CardMinWidth = 30
	CardMargin   = 2

	// Modal
	ModalWidthRatio = 0.6
	ModalMinWidth   = 30
	ModalMaxWidth   = 56

	// Control areas
	HeaderHeight = 1
	FooterHeight = 1

	// Responsive breakpoints
	MinimumTerminalWidth  = 40
	MinimumTerminalHeight = 16
)

// LayoutConfig provides computed layout dimensions based on terminal size
type LayoutConfig struct {
	TerminalWidth  int
	TerminalHeight int
}

// NewLayoutConfig creates a layout configuration for the given terminal size
func NewLayoutConfig(width, height int) LayoutConfig {
	return LayoutConfig{
		TerminalWidth:  width,
		TerminalHeight: height,
	}
}

// TooSmall reports whether the terminal is below the usable minimum.
func (l LayoutConfig) TooSmall() bool {
	return l.TerminalWidth < MinimumTerminalWidth || l.TerminalHeight < MinimumTerminalHeight
}

// CardWidth returns the outer width shared by the form and list cards.
func (l LayoutConfig) CardWidth() int {
	return clamp(l.TerminalWidth-CardMargin*2, CardMinWidth, CardMaxWidth)
}

// BodyHeight returns the rows left between header and footer.
func (l LayoutConfig) BodyHeight() int {
	h := l.TerminalHeight - HeaderHeight - FooterHeight
	if h < 0 {
		return 0
	}
	return h
}

// ModalWidth returns the outer width of the error dialog.
func (l LayoutConfig) ModalWidth() int {
	return clamp(int(float64(l.TerminalWidth)*ModalWidthRatio), ModalMinWidth, ModalMaxWidth)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
