package config

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
)

// Theme names accepted by ui.theme.
const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// PaletteKeys are the color slots that ui.palette may override.
var PaletteKeys = []string{
	"display_bg", "display_fg",
	"number_bg", "number_fg",
	"operator_bg", "operator_fg",
	"special_bg", "special_fg",
	"power_bg", "power_fg",
}

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// UIConfig holds display surface configuration.
type UIConfig struct {
	// Title is set as the terminal window title.
	Title string `yaml:"title"`

	// Theme selects the base palette: auto, dark or light.
	Theme string `yaml:"theme"`

	// Palette overrides individual colors, keyed by PaletteKeys.
	// Values are "#rgb", "#rrggbb" or an ANSI color number.
	Palette map[string]string `yaml:"palette,omitempty"`

	// Mouse enables clicking buttons.
	Mouse bool `yaml:"mouse"`
}

// DefaultUIConfig returns sensible UI defaults.
func DefaultUIConfig() *UIConfig {
	return &UIConfig{
		Title: "Calculator",
		Theme: ThemeAuto,
		Mouse: true,
	}
}

// Validate checks the theme name and palette entries.
func (c *UIConfig) Validate() error {
	switch c.Theme {
	case "", ThemeAuto, ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("unknown theme %q (valid: auto, dark, light)", c.Theme)
	}

	keys := make([]string, 0, len(c.Palette))
	for k := range c.Palette {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !isPaletteKey(k) {
			return fmt.Errorf("unknown palette key %q", k)
		}
		if !isColor(c.Palette[k]) {
			return fmt.Errorf("palette %s: malformed color %q", k, c.Palette[k])
		}
	}
	return nil
}

func isPaletteKey(k string) bool {
	for _, known := range PaletteKeys {
		if k == known {
			return true
		}
	}
	return false
}

func isColor(v string) bool {
	if hexColor.MatchString(v) {
		return true
	}
	n, err := strconv.Atoi(v)
	return err == nil && n >= 0 && n <= 255
}
