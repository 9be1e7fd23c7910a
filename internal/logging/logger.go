// Package logging provides config-driven categorized file logging for roster.
// Logs are written to .roster/logs/roster.log, one zap logger per category.
// Logging is controlled by logging.debug_mode - when false, every category
// gets a no-op logger and nothing touches the disk. The TUI owns the
// terminal, so nothing here ever writes to stdout or stderr.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"roster/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot    Category = "boot"    // Startup, config resolution
	CategorySession Category = "session" // TUI program lifecycle
	CategoryForm    Category = "form"    // Submissions and validation outcomes
	CategoryRoster  Category = "roster"  // Store appends
	CategoryUI      Category = "ui"      // Rendering, resize, focus
	CategoryCLI     Category = "cli"     // Non-interactive commands
)

// LogFileName is the file created under the logs directory.
const LogFileName = "roster.log"

var (
	mu      sync.RWMutex
	cfg     config.LoggingConfig
	logsDir string
	base    *zap.Logger
	closeFn func()
	loggers = make(map[Category]*zap.Logger)
)

// Initialize sets up the logs directory and the shared zap core.
// Should be called once at startup with the workspace path. Calling it
// again replaces the previous setup.
func Initialize(workspace string, lc config.LoggingConfig) error {
	if workspace == "" {
		return fmt.Errorf("workspace path required")
	}

	Close()

	mu.Lock()
	defer mu.Unlock()

	cfg = lc
	logsDir = filepath.Join(workspace, ".roster", "logs")

	if !cfg.DebugMode {
		return nil
	}

	level := zapcore.InfoLevel
	if cfg.Level != "" {
		parsed, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		level = parsed
	}

	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	sink, closeSink, err := zap.Open(filepath.Join(logsDir, LogFileName))
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var enc zapcore.Encoder
	if cfg.Format == "text" {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	base = zap.New(zapcore.NewCore(enc, sink, zap.NewAtomicLevelAt(level)), zap.AddCaller())
	closeFn = closeSink

	boot := base.Named(string(CategoryBoot))
	boot.Info("logging initialized",
		zap.String("workspace", workspace),
		zap.String("logs_dir", logsDir),
		zap.String("level", level.String()))
	if len(cfg.Categories) > 0 {
		enabled := 0
		for cat, on := range cfg.Categories {
			if on {
				enabled++
			}
			boot.Debug("category toggle", zap.String("category", cat), zap.Bool("enabled", on))
		}
		boot.Info("category filter active", zap.Int("enabled", enabled), zap.Int("listed", len(cfg.Categories)))
	}

	return nil
}

// IsDebugMode returns whether debug logging is enabled
func IsDebugMode() bool {
	mu.RLock()
	defer mu.RUnlock()
	return cfg.DebugMode
}

// IsCategoryEnabled returns whether a specific category is enabled
func IsCategoryEnabled(category Category) bool {
	mu.RLock()
	defer mu.RUnlock()
	return cfg.IsCategoryEnabled(string(category))
}

// Get returns (or creates) the logger for the given category.
// Returns a no-op logger if debug mode or the category is disabled.
func Get(category Category) *zap.Logger {
	if !IsCategoryEnabled(category) {
		return zap.NewNop()
	}

	mu.RLock()
	if l, ok := loggers[category]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()

	if l, ok := loggers[category]; ok {
		return l
	}
	if base == nil {
		return zap.NewNop()
	}

	l := base.Named(string(category))
	loggers[category] = l
	return l
}

// LogPath returns the log file path, or "" when logging is off.
func LogPath() string {
	mu.RLock()
	defer mu.RUnlock()
	if base == nil {
		return ""
	}
	return filepath.Join(logsDir, LogFileName)
}

// Sync flushes buffered entries.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	if base != nil {
		_ = base.Sync()
	}
}

// Close releases the log file; call Sync first to flush. Subsequent Get calls return
// no-op loggers until Initialize is called again.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if closeFn != nil {
		closeFn()
	}
	base = nil
	closeFn = nil
	cfg = config.LoggingConfig{}
	loggers = make(map[Category]*zap.Logger)
}
