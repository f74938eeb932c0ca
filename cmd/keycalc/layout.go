package main

import (
	"fmt"
	"strings"

	"keycalc/internal/keypad"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var plain bool

// layoutCmd prints the configured keypad
var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Show the keypad layout and what each button does",
	RunE:  runLayout,
}

func runLayout(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	layout, err := cfg.Keypad.Layout()
	if err != nil {
		return err
	}

	md := layoutMarkdown(layout)
	if plain {
		fmt.Fprint(cmd.OutOrStdout(), md)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return fmt.Errorf("failed to render layout: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}

// layoutMarkdown renders the grid as a table, first row as the header,
// followed by a legend of every distinct button.
func layoutMarkdown(layout keypad.Layout) string {
	var sb strings.Builder
	cols := layout.Columns()

	sb.WriteString("## Keypad\n\n")
	for r, row := range layout.Labels() {
		sb.WriteString("|")
		for c := 0; c < cols; c++ {
			cell := ""
			if c < len(row) {
				cell = "`" + row[c] + "`"
			}
			sb.WriteString(" " + cell + " |")
		}
		sb.WriteString("\n")
		if r == 0 {
			sb.WriteString("|" + strings.Repeat("---|", cols) + "\n")
		}
	}

	sb.WriteString("\n## Buttons\n\n")
	sb.WriteString("| Button | Category | Action |\n|---|---|---|\n")
	seen := make(map[string]bool)
	for r := 0; r < layout.Rows(); r++ {
		for c := 0; c < layout.RowLen(r); c++ {
			spec, _ := layout.At(r, c)
			if seen[spec.Label] {
				continue
			}
			seen[spec.Label] = true
			fmt.Fprintf(&sb, "| `%s` | %s | %s |\n", spec.Label, spec.Category, describe(spec))
		}
	}
	return sb.String()
}

func describe(spec keypad.ButtonSpec) string {
	switch spec.Action {
	case keypad.ActionAppend:
		return fmt.Sprintf("append `%s`", spec.Arg)
	case keypad.ActionOperator:
		return fmt.Sprintf("operator `%s`", spec.Arg)
	}
	return spec.Action.String()
}
