package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Layout constants for the calculator window
const (
	ButtonWidth  = 7
	ButtonHeight = 3
	ButtonGap    = 1

	HeaderHeight   = 1
	DisplayHeight  = 3
	DisplayPadding = 1

	// GridTop is the first screen row of the keypad.
	GridTop = HeaderHeight + DisplayHeight + ButtonGap

	// Ellipsis marks a display whose head was cut off.
	Ellipsis = "…"
)

// GridWidth is the screen width of a keypad with cols columns.
func GridWidth(cols int) int {
	if cols <= 0 {
		return 0
	}
	return cols*ButtonWidth + (cols-1)*ButtonGap
}

// GridHeight is the screen height of a keypad with rows rows.
func GridHeight(rows int) int {
	if rows <= 0 {
		return 0
	}
	return rows*ButtonHeight + (rows-1)*ButtonGap
}

// HitTest maps a screen cell onto a keypad cell. Gaps between buttons
// and cells outside the grid miss.
func HitTest(x, y, rows, cols int) (row, col int, ok bool) {
	gy := y - GridTop
	if x < 0 || gy < 0 {
		return 0, 0, false
	}
	row, offY := gy/(ButtonHeight+ButtonGap), gy%(ButtonHeight+ButtonGap)
	col, offX := x/(ButtonWidth+ButtonGap), x%(ButtonWidth+ButtonGap)
	if row >= rows || col >= cols || offY >= ButtonHeight || offX >= ButtonWidth {
		return 0, 0, false
	}
	return row, col, true
}

// TruncateHead shortens s to at most width cells by dropping runes from the
// front, so the most recent input stays visible.
func TruncateHead(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	keep := width - runewidth.StringWidth(Ellipsis)
	if keep <= 0 {
		return runewidth.Truncate(Ellipsis, width, "")
	}

	runes := []rune(s)
	used := 0
	start := len(runes)
	for start > 0 {
		w := runewidth.RuneWidth(runes[start-1])
		if used+w > keep {
			break
		}
		used += w
		start--
	}

	var b strings.Builder
	b.WriteString(Ellipsis)
	b.WriteString(string(runes[start:]))
	return b.String()
}
