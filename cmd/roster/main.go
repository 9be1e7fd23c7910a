package main

import (
	"fmt"
	"os"

	"roster/internal/config"
	"roster/internal/logging"
	"roster/internal/roster"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	workspace  string
	configPath string

	// Resolved in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "roster",
	Short: "roster - collect names and ages into a list",
	Long: `roster is a small terminal form: enter a username and an age,
and each accepted entry is appended to the list below the form.

Run without arguments to start the interactive interface.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		ws, err := resolveWorkspace()
		if err != nil {
			return err
		}
		workspace = ws

		if configPath == "" {
			configPath = config.DefaultConfigPath(workspace)
		}
		path := configPath
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}

		if err := logging.Initialize(workspace, cfg.Logging); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}

		// The interactive UI owns the terminal; only subcommands log to stderr.
		if !cmd.HasParent() {
			logger = logging.Get(logging.CategoryCLI)
			return nil
		}

		zc := zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	RunE: runInteractive,
}

func init() {
	cobra.OnFinalize(shutdownLogging)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "Workspace directory (default: current)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: <workspace>/.roster/config.yaml)")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// shutdownLogging flushes the CLI logger and closes the debug log file.
// It runs after every command, including ones that returned an error.
func shutdownLogging() {
	if logger != nil {
		_ = logger.Sync()
		logger = nil
	}
	logging.Sync()
	logging.Close()
}

func resolveWorkspace() (string, error) {
	if workspace != "" {
		return workspace, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve workspace: %w", err)
	}
	return cwd, nil
}

// newStore builds a store from the loaded config. Every append is logged to
// the roster category.
func newStore(c *config.Config) (*roster.Store, error) {
	ids, err := roster.NewIDGenerator(c.Roster.IDStrategy, c.Roster.IDPrefix)
	if err != nil {
		return nil, err
	}
	log := logging.Get(logging.CategoryRoster)
	return roster.NewStore(
		roster.WithIDGenerator(ids),
		roster.WithOnAppend(func(r roster.Roster) {
			if last, ok := r.Last(); ok {
				log.Info("record appended", zap.String("id", last.ID), zap.Int("len", r.Len()))
			}
		}),
	), nil
}
