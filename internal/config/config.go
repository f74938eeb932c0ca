package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppName is used for the config directory and the default window title.
const AppName = "keycalc"

// Config holds all keycalc configuration.
type Config struct {
	// Display surface
	UI UIConfig `yaml:"ui"`

	// Button grid
	Keypad KeypadConfig `yaml:"keypad"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		UI:      *DefaultUIConfig(),
		Keypad:  *DefaultKeypadConfig(),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// DefaultPath returns <user config dir>/keycalc/config.yaml.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join("."+AppName, "config.yaml")
	}
	return filepath.Join(dir, AppName, "config.yaml")
}

// Load loads configuration from a YAML file.
// A missing file yields the defaults; environment overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	cfg.resolvePaths(path)

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if theme := os.Getenv("KEYCALC_THEME"); theme != "" {
		c.UI.Theme = strings.ToLower(theme)
	}
	if level := os.Getenv("KEYCALC_LOG_LEVEL"); level != "" {
		c.Logging.Level = strings.ToLower(level)
	}
	if debug := os.Getenv("KEYCALC_DEBUG"); debug != "" {
		if on, err := strconv.ParseBool(debug); err == nil {
			c.Logging.DebugMode = on
		}
	}
}

// resolvePaths anchors the log file next to the config file.
func (c *Config) resolvePaths(configPath string) {
	dir := filepath.Dir(configPath)
	if c.Logging.File == "" {
		c.Logging.File = filepath.Join(dir, "logs", AppName+".log")
		return
	}
	if !filepath.IsAbs(c.Logging.File) {
		c.Logging.File = filepath.Join(dir, c.Logging.File)
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.UI.Validate(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	if err := c.Keypad.Validate(); err != nil {
		return fmt.Errorf("keypad: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}
