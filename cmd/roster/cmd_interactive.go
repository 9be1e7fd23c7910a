package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"roster/cmd/roster/app"
	"roster/cmd/roster/ui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runInteractive launches the TUI.
func runInteractive(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer stop()

	store, err := newStore(cfg)
	if err != nil {
		return err
	}

	logger.Info("starting interactive session",
		zap.String("workspace", workspace),
		zap.String("theme", cfg.UI.Theme),
		zap.String("id_strategy", cfg.Roster.IDStrategy))

	snap, err := app.Run(ctx, store, app.Options{
		Styles:    ui.NewStyles(ui.ThemeFor(cfg.UI.Theme)),
		AltScreen: cfg.UI.AltScreen,
	})
	if err != nil {
		return err
	}
	logger.Info("interactive session ended", zap.Int("users", snap.Len()))
	return nil
}
