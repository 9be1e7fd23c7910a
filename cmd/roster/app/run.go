package app

import (
	"context"
	"fmt"

	"roster/cmd/roster/ui"
	"roster/internal/logging"
	"roster/internal/roster"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Options configures Run.
type Options struct {
	Styles    ui.Styles
	AltScreen bool
}

// Run starts the interactive program and blocks until the user quits or
// ctx is cancelled. It returns the last snapshot shown.
func Run(ctx context.Context, store *roster.Store, opts Options) (roster.Roster, error) {
	log := logging.Get(logging.CategorySession)

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}

	log.Info("program starting", zap.Bool("alt_screen", opts.AltScreen))
	final, err := tea.NewProgram(New(store, opts.Styles), progOpts...).Run()
	if err != nil {
		log.Error("program exited with error", zap.Error(err))
		return store.Snapshot(), fmt.Errorf("run tui: %w", err)
	}

	snap := store.Snapshot()
	if m, ok := final.(Model); ok {
		snap = m.Roster()
	}
	log.Info("program finished", zap.Int("users", snap.Len()))
	return snap, nil
}
