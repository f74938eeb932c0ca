// Package ui is the keycalc display surface: a bubbletea program showing the
// expression display above a grid of clickable buttons.
package ui

import (
	"os"
	"strings"

	"keycalc/internal/config"
	"keycalc/internal/keypad"

	"github.com/charmbracelet/lipgloss"
)

// Category colors for the keypad and display.
var (
	DisplayBackground  = lipgloss.Color("#2C3E50")
	NumberBackground   = lipgloss.Color("#34495E")
	OperatorBackground = lipgloss.Color("#16A085")
	SpecialBackground  = lipgloss.Color("#E74C3C")
	PowerBackground    = lipgloss.Color("#8E44AD")
	ButtonForeground   = lipgloss.Color("#FFFFFF")

	// Chrome around the keypad
	LightForeground = lipgloss.Color("#101F38")
	LightMuted      = lipgloss.Color("#7A8597")
	LightFocus      = lipgloss.Color("#101F38")
	DarkForeground  = lipgloss.Color("#F2F2F2")
	DarkMuted       = lipgloss.Color("#8A94A6")
	DarkFocus       = lipgloss.Color("#F1C40F")

	AlertBorder = lipgloss.Color("#E74C3C")
)

// CategoryColors is a background/foreground pair.
type CategoryColors struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
}

// Theme holds the current color scheme
type Theme struct {
	Display CategoryColors
	Buttons map[keypad.Category]CategoryColors
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Focus   lipgloss.Color
	Alert   lipgloss.Color
	IsDark  bool
}

func baseTheme() Theme {
	return Theme{
		Display: CategoryColors{DisplayBackground, ButtonForeground},
		Buttons: map[keypad.Category]CategoryColors{
			keypad.CategoryNumber:   {NumberBackground, ButtonForeground},
			keypad.CategoryOperator: {OperatorBackground, ButtonForeground},
			keypad.CategorySpecial:  {SpecialBackground, ButtonForeground},
			keypad.CategoryPower:    {PowerBackground, ButtonForeground},
		},
		Alert: AlertBorder,
	}
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	t := baseTheme()
	t.Text = LightForeground
	t.Muted = LightMuted
	t.Focus = LightFocus
	return t
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	t := baseTheme()
	t.Text = DarkForeground
	t.Muted = DarkMuted
	t.Focus = DarkFocus
	t.IsDark = true
	return t
}

// DetectTheme picks a theme for the configured mode. In auto mode
// KEYCALC_DARK_MODE=1/0 wins, then the terminal background as seen by r.
func DetectTheme(mode string, r *lipgloss.Renderer) Theme {
	switch mode {
	case config.ThemeDark:
		return DarkTheme()
	case config.ThemeLight:
		return LightTheme()
	}

	switch os.Getenv("KEYCALC_DARK_MODE") {
	case "1":
		return DarkTheme()
	case "0":
		return LightTheme()
	}

	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	if r.HasDarkBackground() {
		return DarkTheme()
	}
	return LightTheme()
}

// WithPalette returns t with config palette overrides applied.
// Keys look like "operator_bg"; unknown keys are ignored.
func (t Theme) WithPalette(palette map[string]string) Theme {
	if len(palette) == 0 {
		return t
	}
	buttons := make(map[keypad.Category]CategoryColors, len(t.Buttons))
	for k, v := range t.Buttons {
		buttons[k] = v
	}
	t.Buttons = buttons

	for key, value := range palette {
		name, slot, ok := strings.Cut(key, "_")
		if !ok {
			continue
		}
		color := lipgloss.Color(value)

		var pair CategoryColors
		if name == "display" {
			pair = t.Display
		} else {
			existing, found := t.Buttons[keypad.Category(name)]
			if !found {
				continue
			}
			pair = existing
		}

		switch slot {
		case "bg":
			pair.Background = color
		case "fg":
			pair.Foreground = color
		default:
			continue
		}

		if name == "display" {
			t.Display = pair
		} else {
			t.Buttons[keypad.Category(name)] = pair
		}
	}
	return t
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	Header  lipgloss.Style
	Display lipgloss.Style
	Buttons map[keypad.Category]lipgloss.Style
	Help    lipgloss.Style

	Alert      lipgloss.Style
	AlertTitle lipgloss.Style
	AlertBody  lipgloss.Style
	AlertHint  lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme.
// A nil renderer uses the lipgloss default.
func NewStyles(theme Theme, r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	buttons := make(map[keypad.Category]lipgloss.Style, len(theme.Buttons))
	for cat, colors := range theme.Buttons {
		buttons[cat] = r.NewStyle().
			Width(ButtonWidth).
			Height(ButtonHeight).
			Align(lipgloss.Center, lipgloss.Center).
			Background(colors.Background).
			Foreground(colors.Foreground).
			Bold(true)
	}

	return Styles{
		Theme: theme,

		Header: r.NewStyle().
			Foreground(theme.Text).
			Bold(true),

		Display: r.NewStyle().
			Background(theme.Display.Background).
			Foreground(theme.Display.Foreground).
			Bold(true).
			Padding(1, DisplayPadding).
			Align(lipgloss.Right),

		Buttons: buttons,

		Help: r.NewStyle().
			Foreground(theme.Muted),

		Alert: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Alert).
			Padding(0, 1),

		AlertTitle: r.NewStyle().
			Foreground(theme.Alert).
			Bold(true),

		AlertBody: r.NewStyle().
			Foreground(theme.Text),

		AlertHint: r.NewStyle().
			Foreground(theme.Muted).
			Italic(true),
	}
}

// Button returns the style for a button category. The focused button keeps
// its background and takes the focus color, underlined.
func (s Styles) Button(cat keypad.Category, focused bool) lipgloss.Style {
	st, ok := s.Buttons[cat]
	if !ok {
		st = s.Buttons[keypad.CategoryNumber]
	}
	if focused {
		st = st.Foreground(s.Theme.Focus).Underline(true)
	}
	return st
}
