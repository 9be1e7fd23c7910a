package ui

import "github.com/charmbracelet/lipgloss"

// BackdropChar fills the screen behind an open dialog.
const BackdropChar = "░"

// ErrorModal is an informational dialog with a single "Okay" action.
type ErrorModal struct {
	Title   string
	Message string
}

// Render draws the dialog card at the given outer width.
func (m ErrorModal) Render(s Styles, width int) string {
	border := WithBorderColor(s.Theme.Primary)
	inner := CardContentWidth(s, width, border)

	header := s.ModalHeader.Width(inner).Render(m.Title)
	content := s.ModalContent.Width(inner).Render(m.Message)
	okay := Button{Label: "Okay", Focused: true}
	footer := lipgloss.PlaceHorizontal(inner, lipgloss.Right, okay.Render(s))

	return Card(s, width, lipgloss.JoinVertical(lipgloss.Left, header, content, footer), border)
}

// View centers the dialog over a backdrop covering the whole terminal.
func (m ErrorModal) View(s Styles, layout LayoutConfig) string {
	return lipgloss.Place(
		layout.TerminalWidth, layout.TerminalHeight,
		lipgloss.Center, lipgloss.Center,
		m.Render(s, layout.ModalWidth()),
		lipgloss.WithWhitespaceChars(BackdropChar),
		lipgloss.WithWhitespaceForeground(s.Theme.Muted),
	)
}
