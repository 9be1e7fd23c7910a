package app

import (
	"errors"

	"roster/cmd/roster/ui"
	"roster/internal/validate"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// Form field labels.
const (
	NameLabel   = "Username"
	AgeLabel    = "Age (Years)"
	SubmitLabel = "Add User"
)

type formFocus int

const (
	focusName formFocus = iota
	focusAge
	focusSubmit
	focusCount
)

// FormModel collects a name and an age. It validates on submit and either
// opens its error dialog or emits an AddUserMsg; it never touches the store.
type FormModel struct {
	name   textinput.Model
	age    textinput.Model
	submit ui.Button
	focus  formFocus
	modal  *ui.ErrorModal

	keys   keyMap
	styles ui.Styles
	width  int
	log    *zap.Logger
}

// NewForm creates an empty form with the name field focused.
func NewForm(styles ui.Styles, log *zap.Logger) FormModel {
	if log == nil {
		log = zap.NewNop()
	}

	name := textinput.New()
	name.Prompt = ""
	name.Placeholder = "Alice"
	name.TextStyle = styles.InputText
	name.Cursor.SetMode(cursor.CursorStatic)
	name.Focus()

	age := textinput.New()
	age.Prompt = ""
	age.Placeholder = "30"
	age.TextStyle = styles.InputText
	age.Cursor.SetMode(cursor.CursorStatic)

	f := FormModel{
		name:   name,
		age:    age,
		submit: ui.Button{Label: SubmitLabel},
		keys:   defaultKeyMap(),
		styles: styles,
		log:    log,
	}
	f.SetWidth(ui.CardMaxWidth)
	return f
}

// Init implements tea.Model. The cursor is static, so there is nothing to start.
func (f FormModel) Init() tea.Cmd {
	return nil
}

// SetWidth sets the outer card width.
func (f *FormModel) SetWidth(width int) {
	f.width = width
	inner := ui.CardContentWidth(f.styles, width) - f.styles.InputFocused.GetHorizontalFrameSize() - 1
	if inner < 1 {
		inner = 1
	}
	f.name.Width = inner
	f.age.Width = inner
}

// Values returns the raw field contents.
func (f FormModel) Values() (name, age string) {
	return f.name.Value(), f.age.Value()
}

// Modal returns the open error dialog, if any.
func (f FormModel) Modal() (ui.ErrorModal, bool) {
	if f.modal == nil {
		return ui.ErrorModal{}, false
	}
	return *f.modal, true
}

// Update handles key input for the form and its dialog.
func (f FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)

	// An open dialog swallows everything except its own dismiss keys.
	if f.modal != nil {
		if isKey && key.Matches(keyMsg, f.keys.Dismiss) {
			f.modal = nil
		}
		return f, nil
	}

	if isKey {
		switch {
		case key.Matches(keyMsg, f.keys.Submit):
			return f.submitForm()
		case key.Matches(keyMsg, f.keys.Next):
			return f, f.setFocus((f.focus + 1) % focusCount)
		case key.Matches(keyMsg, f.keys.Prev):
			return f, f.setFocus((f.focus + focusCount - 1) % focusCount)
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case focusName:
		f.name, cmd = f.name.Update(msg)
	case focusAge:
		f.age, cmd = f.age.Update(msg)
	}
	return f, cmd
}

func (f *FormModel) setFocus(next formFocus) tea.Cmd {
	f.focus = next
	f.name.Blur()
	f.age.Blur()
	f.submit.Focused = false

	switch next {
	case focusName:
		return f.name.Focus()
	case focusAge:
		return f.age.Focus()
	default:
		f.submit.Focused = true
		return nil
	}
}

// submitForm validates the current input. Rejected input is kept so it can
// be corrected; accepted input clears the form.
func (f FormModel) submitForm() (FormModel, tea.Cmd) {
	in, err := validate.Validate(f.name.Value(), f.age.Value())
	if err != nil {
		verr, ok := validate.AsError(err)
		if !ok {
			verr = &validate.Error{Kind: err, Title: "Invalid input", Message: err.Error()}
		}
		f.modal = &ui.ErrorModal{Title: verr.Title, Message: verr.Message}
		f.log.Info("submission rejected",
			zap.String("field", verr.Field),
			zap.String("kind", kindName(verr.Kind)))
		return f, nil
	}

	f.name.Reset()
	f.age.Reset()
	cmd := f.setFocus(focusName)
	f.log.Debug("submission accepted", zap.Int("age", in.Age))

	add := func() tea.Msg {
		return AddUserMsg{Name: in.Name, Age: in.Age}
	}
	return f, tea.Batch(cmd, add)
}

func kindName(kind error) string {
	switch {
	case errors.Is(kind, validate.ErrEmptyField):
		return "empty_field"
	case errors.Is(kind, validate.ErrInvalidNumber):
		return "invalid_number"
	case errors.Is(kind, validate.ErrNonPositiveAge):
		return "non_positive_age"
	default:
		return "unknown"
	}
}

// View renders the form card.
func (f FormModel) View() string {
	field := func(label string, in textinput.Model, focused bool) string {
		box := f.styles.InputBlurred
		if focused {
			box = f.styles.InputFocused
		}
		inner := ui.CardContentWidth(f.styles, f.width)
		return lipgloss.JoinVertical(lipgloss.Left,
			f.styles.Label.Render(label),
			box.Width(inner-box.GetHorizontalBorderSize()).Render(in.View()),
		)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		field(NameLabel, f.name, f.focus == focusName),
		field(AgeLabel, f.age, f.focus == focusAge),
		"",
		f.submit.Render(f.styles),
	)
	return ui.Card(f.styles, f.width, body)
}
