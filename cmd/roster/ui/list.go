package ui

import (
	"strings"

	"roster/internal/roster"
)

// List card texts.
const (
	ListTitle     = "Users"
	EmptyListHint = "No users added yet."
)

// UsersList renders one line per record, oldest first, inside a card.
func UsersList(s Styles, r roster.Roster, width int) string {
	inner := CardContentWidth(s, width)
	title := s.Title.Render(ListTitle)

	if r.Len() == 0 {
		return Card(s, width, title+"\n"+s.Muted.Render(EmptyListHint))
	}

	lines := make([]string, 0, r.Len()+1)
	lines = append(lines, title)
	for i := 0; i < r.Len(); i++ {
		lines = append(lines, s.ListItem.Width(inner).Render(r.At(i).String()))
	}
	return Card(s, width, strings.Join(lines, "\n"))
}
