package config

import (
	"fmt"

	"keycalc/internal/logging"
)

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level      string          `yaml:"level"`      // debug, info, warn, error
	Format     string          `yaml:"format"`     // json, console
	File       string          `yaml:"file"`       // relative paths resolve against the config dir
	DebugMode  bool            `yaml:"debug_mode"` // Master toggle - false = no logging
	Categories map[string]bool `yaml:"categories"` // Per-category toggles
}

// Options converts the config into logging.Initialize options.
func (c *LoggingConfig) Options() logging.Options {
	return logging.Options{
		DebugMode:  c.DebugMode,
		Level:      c.Level,
		Format:     c.Format,
		File:       c.File,
		Categories: c.Categories,
	}
}

// Validate checks the level and format names.
func (c *LoggingConfig) Validate() error {
	if _, err := logging.ParseLevel(c.Level); err != nil {
		return err
	}
	switch c.Format {
	case "", "json", "console", "text":
	default:
		return fmt.Errorf("unknown log format %q (valid: json, console)", c.Format)
	}
	return nil
}
