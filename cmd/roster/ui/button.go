package ui

// Button is a pre-styled push button.
type Button struct {
	Label   string
	Focused bool
}

// Render draws the button.
func (b Button) Render(s Styles) string {
	if b.Focused {
		return s.ButtonFocused.Render(b.Label)
	}
	return s.Button.Render(b.Label)
}
