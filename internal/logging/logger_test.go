package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"roster/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func readLog(t *testing.T) string {
	t.Helper()
	Sync()
	data, err := os.ReadFile(LogPath())
	require.NoError(t, err)
	return string(data)
}

func TestInitialize_RequiresWorkspace(t *testing.T) {
	require.Error(t, Initialize("", config.LoggingConfig{}))
}

func TestDebugModeOff_IsSilent(t *testing.T) {
	ws := t.TempDir()
	require.NoError(t, Initialize(ws, config.LoggingConfig{Level: "debug"}))
	t.Cleanup(Close)

	assert.False(t, IsDebugMode())
	l := Get(CategoryForm)
	assert.False(t, l.Core().Enabled(zapcore.ErrorLevel), "expected no-op logger")
	assert.Empty(t, LogPath())

	_, err := os.Stat(filepath.Join(ws, ".roster", "logs"))
	assert.True(t, os.IsNotExist(err), "logs directory should not be created")
}

func TestDebugModeOn_WritesCategorizedJSON(t *testing.T) {
	ws := t.TempDir()
	require.NoError(t, Initialize(ws, config.LoggingConfig{DebugMode: true, Level: "debug"}))
	t.Cleanup(Close)

	Get(CategoryRoster).Info("record appended", zap.String("id", "p-1"), zap.Int("len", 1))
	Get(CategoryForm).Debug("submission rejected")

	out := readLog(t)
	assert.Contains(t, out, `"logger":"boot"`)
	assert.Contains(t, out, `"logger":"roster"`)
	assert.Contains(t, out, `"msg":"record appended"`)
	assert.Contains(t, out, `"id":"p-1"`)
	assert.Contains(t, out, `"logger":"form"`)
}

func TestLevelFiltersDebug(t *testing.T) {
	ws := t.TempDir()
	require.NoError(t, Initialize(ws, config.LoggingConfig{DebugMode: true, Level: "warn"}))
	t.Cleanup(Close)

	Get(CategoryUI).Info("should not appear")
	Get(CategoryUI).Warn("resize storm")

	out := readLog(t)
	assert.NotContains(t, out, "should not appear")
	assert.Contains(t, out, "resize storm")
}

func TestCategoryToggle(t *testing.T) {
	ws := t.TempDir()
	require.NoError(t, Initialize(ws, config.LoggingConfig{
		DebugMode:  true,
		Categories: map[string]bool{"form": false},
	}))
	t.Cleanup(Close)

	assert.False(t, IsCategoryEnabled(CategoryForm))
	assert.True(t, IsCategoryEnabled(CategoryRoster))

	Get(CategoryForm).Error("hidden")
	Get(CategoryRoster).Info("visible")

	out := readLog(t)
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
}

func TestTextFormat(t *testing.T) {
	ws := t.TempDir()
	require.NoError(t, Initialize(ws, config.LoggingConfig{DebugMode: true, Format: "text"}))
	t.Cleanup(Close)

	Get(CategorySession).Info("program started")

	out := readLog(t)
	assert.Contains(t, out, "program started")
	assert.False(t, strings.HasPrefix(strings.TrimSpace(out), "{"), "console encoding should not emit JSON objects")
}

func TestInvalidLevel(t *testing.T) {
	err := Initialize(t.TempDir(), config.LoggingConfig{DebugMode: true, Level: "loud"})
	t.Cleanup(Close)
	require.Error(t, err)
}

func TestGet_CachesPerCategory(t *testing.T) {
	require.NoError(t, Initialize(t.TempDir(), config.LoggingConfig{DebugMode: true}))
	t.Cleanup(Close)

	assert.Same(t, Get(CategoryCLI), Get(CategoryCLI))
}
