// Package logging provides config-driven categorized logging for keycalc.
// Logs go to a single file, one zap logger named per category.
// Logging is controlled by logging.debug_mode in config.yaml - when false, no logs are written,
// which keeps the terminal UI free of stray output.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot   Category = "boot"   // Startup, config resolution
	CategoryKeypad Category = "keypad" // Button presses and dispatch
	CategoryEval   Category = "eval"   // Expression evaluation and failures
	CategoryUI     Category = "ui"     // Display surface events
	CategoryConfig Category = "config" // Config load, validation, hot reload
)

// Options mirrors the relevant parts of config.LoggingConfig
// to avoid circular imports
type Options struct {
	DebugMode  bool
	Level      string // debug, info, warn, error
	Format     string // json, console
	File       string
	Categories map[string]bool
}

// Logger wraps a sugared zap logger named after its category.
type Logger struct {
	sugar *zap.SugaredLogger
}

var (
	mu         sync.RWMutex
	base       = zap.NewNop()
	categories map[string]bool
	loggers    = make(map[Category]*Logger)
)

// Initialize builds the shared logger from opts.
// Should be called once at startup, before the UI takes over the terminal.
func Initialize(opts Options) error {
	if !opts.DebugMode {
		SetBase(zap.NewNop(), opts.Categories)
		return nil
	}
	if opts.File == "" {
		return fmt.Errorf("log file path required in debug mode")
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	level, err := ParseLevel(opts.Level)
	if err != nil {
		return err
	}

	encoding := "json"
	if opts.Format == "console" || opts.Format == "text" {
		encoding = "console"
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Encoding = encoding
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{opts.File}
	cfg.ErrorOutputPaths = []string{opts.File}
	cfg.Sampling = nil

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	SetBase(l, opts.Categories)

	boot := Get(CategoryBoot)
	boot.Info("=== keycalc logging initialized ===")
	boot.Info("Log file: %s", opts.File)
	boot.Debug("Log level: %s, format: %s", level, encoding)
	if len(opts.Categories) == 0 {
		boot.Debug("All categories enabled (no category filter)")
	}
	return nil
}

// SetBase replaces the shared zap logger and the category filter.
// The CLI uses it to route categories into its own logger; tests use it
// with zaptest/observer cores.
func SetBase(l *zap.Logger, cats map[string]bool) {
	if l == nil {
		l = zap.NewNop()
	}
	mu.Lock()
	defer mu.Unlock()
	base = l
	categories = cats
	loggers = make(map[Category]*Logger)
}

// ParseLevel maps a config level name onto a zap level. Empty means info.
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	}
	return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", s)
}

// IsCategoryEnabled returns whether a specific category is enabled.
// Categories not named in the filter are enabled.
func IsCategoryEnabled(category Category) bool {
	mu.RLock()
	defer mu.RUnlock()
	if categories == nil {
		return true
	}
	enabled, exists := categories[string(category)]
	if !exists {
		return true
	}
	return enabled
}

// Get returns (or creates) a logger for the given category.
// Returns a no-op logger if the category is disabled.
func Get(category Category) *Logger {
	if !IsCategoryEnabled(category) {
		return &Logger{sugar: zap.NewNop().Sugar()}
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
	l := &Logger{sugar: base.Named(string(category)).Sugar()}
	loggers[category] = l
	return l
}

// Sync flushes the shared logger.
func Sync() error {
	mu.RLock()
	defer mu.RUnlock()
	return base.Sync()
}

// With returns a child logger carrying the given key/value pairs.
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{sugar: l.sugar.With(keysAndValues...)}
}

func (l *Logger) Debug(format string, args ...interface{}) { l.sugar.Debugf(format, args...) }
func (l *Logger) Info(format string, args ...interface{})  { l.sugar.Infof(format, args...) }
func (l *Logger) Warn(format string, args ...interface{})  { l.sugar.Warnf(format, args...) }
func (l *Logger) Error(format string, args ...interface{}) { l.sugar.Errorf(format, args...) }

// Convenience functions for quick logging without getting a logger first

func Boot(format string, args ...interface{})   { Get(CategoryBoot).Info(format, args...) }
func Config(format string, args ...interface{}) { Get(CategoryConfig).Info(format, args...) }
