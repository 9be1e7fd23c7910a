package app

import "github.com/charmbracelet/lipgloss"

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.layout.TooSmall() {
		return m.styles.Error.Render("Terminal too small. Resize to at least 40x16.")
	}

	if modal, open := m.form.Modal(); open {
		return modal.View(m.styles, m.layout)
	}

	width := m.layout.TerminalWidth
	header := m.styles.Header.Width(width).Render(Title)

	var body string
	if m.showHelp {
		body = m.helpPage.View()
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.form.View(),
			m.styles.RenderDivider(m.layout.CardWidth()),
			m.list.View(),
		)
	}
	body = lipgloss.PlaceHorizontal(width, lipgloss.Center, body)

	footer := m.styles.Footer.Render(m.help.View(m.keys))
	if m.status != "" {
		footer = m.styles.Status.Render(m.status) + "  " + footer
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
