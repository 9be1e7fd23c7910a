package app

import (
	"testing"

	"roster/cmd/roster/ui"
	"roster/internal/roster"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	store := roster.NewStore(roster.WithIDGenerator(roster.NewCounterIDs("p")))
	m := New(store, ui.NewStyles(ui.LightTheme()))
	return send(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})
}

// send feeds msgs through Update and keeps executing the returned commands,
// feeding their messages back in, until the model is quiet.
func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	queue := append([]tea.Msg(nil), msgs...)
	for len(queue) > 0 {
		msg := queue[0]
		queue = queue[1:]

		next, cmd := m.Update(msg)
		nm, ok := next.(Model)
		if !ok {
			t.Fatalf("Update returned %T, want app.Model", next)
		}
		m = nm
		for _, out := range drain(cmd) {
			if _, quit := out.(tea.QuitMsg); quit {
				continue
			}
			queue = append(queue, out)
		}
	}
	return m
}

func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func typeText(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

// submit fills both fields from an empty, name-focused form and presses Enter.
func submit(t *testing.T, m Model, name, age string) Model {
	t.Helper()
	msgs := []tea.Msg{}
	if name != "" {
		msgs = append(msgs, typeText(name))
	}
	msgs = append(msgs, press(tea.KeyTab))
	if age != "" {
		msgs = append(msgs, typeText(age))
	}
	msgs = append(msgs, press(tea.KeyEnter))
	return send(t, m, msgs...)
}
