package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T, cats map[string]bool) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	SetBase(zap.New(core), cats)
	t.Cleanup(func() { SetBase(nil, nil) })
	return logs
}

func TestGetNamesLoggerByCategory(t *testing.T) {
	logs := observe(t, nil)

	Get(CategoryKeypad).Info("pressed %s", "7")
	Get(CategoryEval).Info("result %d", 10)
	Config("reloaded")

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "keypad", entries[0].LoggerName)
	assert.Equal(t, "pressed 7", entries[0].Message)
	assert.Equal(t, "eval", entries[1].LoggerName)
	assert.Equal(t, "result 10", entries[1].Message)
	assert.Equal(t, "config", entries[2].LoggerName)
}

func TestDisabledCategoryIsSilent(t *testing.T) {
	logs := observe(t, map[string]bool{"keypad": false, "eval": true})

	Get(CategoryKeypad).Debug("dropped")
	Get(CategoryEval).Debug("kept")
	Get(CategoryUI).Info("unlisted categories stay enabled")

	assert.False(t, IsCategoryEnabled(CategoryKeypad))
	assert.True(t, IsCategoryEnabled(CategoryUI))
	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "kept", logs.All()[0].Message)
}

func TestWithCarriesFields(t *testing.T) {
	logs := observe(t, nil)

	Get(CategoryKeypad).With("window", "w-1").Warn("refused")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "w-1", entries[0].ContextMap()["window"])
}

func TestInitializeProductionModeWritesNothing(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "logs", "keycalc.log")
	t.Cleanup(func() { SetBase(nil, nil) })

	require.NoError(t, Initialize(Options{DebugMode: false, File: file}))
	Boot("not written")

	_, err := os.Stat(filepath.Dir(file))
	assert.True(t, os.IsNotExist(err), "logs directory should not be created")
}

func TestInitializeDebugModeWritesFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "logs", "keycalc.log")
	t.Cleanup(func() { SetBase(nil, nil) })

	require.NoError(t, Initialize(Options{DebugMode: true, Level: "debug", Format: "json", File: file}))
	Get(CategoryEval).Error("division by zero in %q", "5/0")
	require.NoError(t, Sync())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "keycalc logging initialized")
	assert.True(t, strings.Contains(content, `"logger":"eval"`), content)
	assert.Contains(t, content, `division by zero in \"5/0\"`)
}

func TestInitializeRejectsBadLevel(t *testing.T) {
	t.Cleanup(func() { SetBase(nil, nil) })
	err := Initialize(Options{DebugMode: true, Level: "loud", File: filepath.Join(t.TempDir(), "x.log")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"":        zapcore.InfoLevel,
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
