package config

import "keycalc/internal/keypad"

// KeypadConfig holds the button layout as rows of labels.
type KeypadConfig struct {
	Rows [][]string `yaml:"rows"`
}

// DefaultKeypadConfig returns the stock layout.
func DefaultKeypadConfig() *KeypadConfig {
	rows := make([][]string, len(keypad.DefaultRows))
	for i, row := range keypad.DefaultRows {
		rows[i] = append([]string(nil), row...)
	}
	return &KeypadConfig{Rows: rows}
}

// Layout builds the keypad described by Rows.
func (c *KeypadConfig) Layout() (keypad.Layout, error) {
	if len(c.Rows) == 0 {
		return keypad.DefaultLayout(), nil
	}
	return keypad.NewLayout(c.Rows)
}

// Validate checks that Rows form a usable layout.
func (c *KeypadConfig) Validate() error {
	_, err := c.Layout()
	return err
}
