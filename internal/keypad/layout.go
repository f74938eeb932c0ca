// Package keypad describes the calculator's button grid and dispatches
// button presses to the expression buffer.
package keypad

import (
	"errors"
	"fmt"
	"strings"

	"keycalc/internal/calc"
)

// Category is a presentation hint used to pick button colors.
type Category string

const (
	CategoryNumber   Category = "number"
	CategoryOperator Category = "operator"
	CategorySpecial  Category = "special"
	CategoryPower    Category = "power"
)

// ActionKind names the buffer operation a button invokes.
type ActionKind int

const (
	ActionAppend ActionKind = iota
	ActionOperator
	ActionBackspace
	ActionClear
	ActionEvaluate
)

func (a ActionKind) String() string {
	switch a {
	case ActionAppend:
		return "append"
	case ActionOperator:
		return "operator"
	case ActionBackspace:
		return "backspace"
	case ActionClear:
		return "clear"
	case ActionEvaluate:
		return "evaluate"
	}
	return fmt.Sprintf("ActionKind(%d)", int(a))
}

// Button labels with non-obvious actions.
const (
	LabelClear     = "C"
	LabelBackspace = "⌫"
	LabelPower     = "^"
	LabelEquals    = "="
)

// MaxColumns is the widest row a layout may have.
const MaxColumns = 4

// ButtonSpec is one control on the keypad.
type ButtonSpec struct {
	Label    string
	Category Category
	Action   ActionKind
	// Arg is the token passed to append or add-operator actions.
	Arg string
}

// DefaultRows is the stock keypad.
var DefaultRows = [][]string{
	{LabelClear, LabelBackspace, LabelPower, "/"},
	{"7", "8", "9", "*"},
	{"4", "5", "6", "-"},
	{"1", "2", "3", "+"},
	{"0", ".", LabelEquals},
}

var (
	ErrUnknownLabel  = errors.New("unknown button label")
	ErrInvalidLayout = errors.New("invalid keypad layout")
)

// SpecFor maps a button label onto its category and action.
func SpecFor(label string) (ButtonSpec, error) {
	switch label {
	case LabelClear:
		return ButtonSpec{Label: label, Category: CategorySpecial, Action: ActionClear}, nil
	case LabelBackspace:
		return ButtonSpec{Label: label, Category: CategorySpecial, Action: ActionBackspace}, nil
	case LabelPower:
		return ButtonSpec{Label: label, Category: CategoryPower, Action: ActionOperator, Arg: calc.PowerToken}, nil
	case "+", "-", "*", "/":
		return ButtonSpec{Label: label, Category: CategoryOperator, Action: ActionOperator, Arg: label}, nil
	case LabelEquals:
		return ButtonSpec{Label: label, Category: CategoryOperator, Action: ActionEvaluate}, nil
	}
	if len(label) == 1 && (label == "." || (label[0] >= '0' && label[0] <= '9')) {
		return ButtonSpec{Label: label, Category: CategoryNumber, Action: ActionAppend, Arg: label}, nil
	}
	return ButtonSpec{}, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
}

// Layout is an ordered grid of buttons. Rows may be shorter than the widest
// row; missing cells are empty.
type Layout struct {
	rows [][]ButtonSpec
}

// NewLayout builds a layout from rows of labels.
func NewLayout(rows [][]string) (Layout, error) {
	if len(rows) == 0 {
		return Layout{}, fmt.Errorf("%w: no rows", ErrInvalidLayout)
	}
	out := make([][]ButtonSpec, len(rows))
	for r, row := range rows {
		if len(row) == 0 {
			return Layout{}, fmt.Errorf("%w: row %d is empty", ErrInvalidLayout, r+1)
		}
		if len(row) > MaxColumns {
			return Layout{}, fmt.Errorf("%w: row %d has %d buttons, at most %d allowed",
				ErrInvalidLayout, r+1, len(row), MaxColumns)
		}
		out[r] = make([]ButtonSpec, len(row))
		for c, label := range row {
			spec, err := SpecFor(strings.TrimSpace(label))
			if err != nil {
				return Layout{}, fmt.Errorf("%w: row %d column %d: %w", ErrInvalidLayout, r+1, c+1, err)
			}
			out[r][c] = spec
		}
	}
	return Layout{rows: out}, nil
}

// DefaultLayout returns the stock keypad.
func DefaultLayout() Layout {
	l, err := NewLayout(DefaultRows)
	if err != nil {
		panic(err)
	}
	return l
}

// Rows returns the number of rows.
func (l Layout) Rows() int { return len(l.rows) }

// Columns returns the width of the widest row.
func (l Layout) Columns() int {
	n := 0
	for _, row := range l.rows {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

// RowLen returns the number of buttons in row r, or 0 when r is out of range.
func (l Layout) RowLen(r int) int {
	if r < 0 || r >= len(l.rows) {
		return 0
	}
	return len(l.rows[r])
}

// At returns the button at (row, col).
func (l Layout) At(row, col int) (ButtonSpec, bool) {
	if col < 0 || col >= l.RowLen(row) {
		return ButtonSpec{}, false
	}
	return l.rows[row][col], true
}

// Labels returns the layout as rows of labels.
func (l Layout) Labels() [][]string {
	out := make([][]string, len(l.rows))
	for r, row := range l.rows {
		out[r] = make([]string, len(row))
		for c, spec := range row {
			out[r][c] = spec.Label
		}
	}
	return out
}

// Find returns the position of the first button with the given label.
func (l Layout) Find(label string) (row, col int, ok bool) {
	for r, rowSpecs := range l.rows {
		for c, spec := range rowSpecs {
			if spec.Label == label {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
