package ui

import "github.com/charmbracelet/lipgloss"

// CardOption adjusts the base card style for one use site, the way a
// caller-supplied class is layered over the shared card class.
type CardOption func(lipgloss.Style) lipgloss.Style

// WithBorderColor recolors the card border.
func WithBorderColor(c lipgloss.TerminalColor) CardOption {
	return func(st lipgloss.Style) lipgloss.Style {
		return st.BorderForeground(c)
	}
}

// WithPadding replaces the card padding.
func WithPadding(vertical, horizontal int) CardOption {
	return func(st lipgloss.Style) lipgloss.Style {
		return st.Padding(vertical, horizontal)
	}
}

// Card wraps content in the shared rounded container. width is the outer
// width including the border; zero leaves the card sized to its content.
func Card(s Styles, width int, content string, opts ...CardOption) string {
	st := s.Card
	for _, opt := range opts {
		st = opt(st)
	}
	if width > 0 {
		st = st.Width(width - st.GetHorizontalBorderSize())
	}
	return st.Render(content)
}

// CardContentWidth returns the usable text width inside a card of the
// given outer width.
func CardContentWidth(s Styles, width int, opts ...CardOption) int {
	st := s.Card
	for _, opt := range opts {
		st = opt(st)
	}
	w := width - st.GetHorizontalFrameSize()
	if w < 1 {
		return 1
	}
	return w
}
