package app

import "roster/internal/roster"

// AddUserMsg carries a validated submission from the form up to the
// application model, which owns the store.
type AddUserMsg struct {
	Name string
	Age  int
}

// RosterChangedMsg is emitted after every append with the new snapshot.
type RosterChangedMsg struct {
	Roster roster.Roster
}
