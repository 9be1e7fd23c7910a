package ui

import (
	"github.com/charmbracelet/glamour"
)

// helpMarkdown is the body of the F1 help page.
const helpMarkdown = `# roster

Add people to the list by filling in the form and pressing **Enter**.

## Fields

- **Username**: any non-empty text. Leading and trailing spaces are dropped.
- **Age (Years)**: a whole number greater than zero.

## Keys

| Key | Action |
|-----|--------|
| Tab / Shift+Tab | move between fields and the button |
| Enter | submit the form |
| Enter / Esc | dismiss an error dialog |
| PgUp / PgDn | scroll the list |
| F1 | toggle this page |
| Ctrl+C | quit |

Rejected input stays in the form so it can be corrected. The list lives only
as long as the program runs.
`

// HelpPage renders the help markdown for the current theme and width.
type HelpPage struct {
	theme    Theme
	width    int
	rendered string
}

// NewHelpPage renders the help page at the given width.
func NewHelpPage(theme Theme, width int) HelpPage {
	h := HelpPage{theme: theme}
	h.SetWidth(width)
	return h
}

// SetWidth re-renders when the width changes.
func (h *HelpPage) SetWidth(width int) {
	if width == h.width && h.rendered != "" {
		return
	}
	h.width = width
	h.rendered = renderMarkdown(helpMarkdown, h.theme, width)
}

// View returns the rendered page.
func (h HelpPage) View() string {
	return h.rendered
}

// renderMarkdown renders markdown with panic recovery, falling back to the
// raw text.
func renderMarkdown(md string, theme Theme, width int) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = md
		}
	}()

	style := "light"
	if theme.IsDark {
		style = "dark"
	}
	if width < 20 {
		width = 20
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}
