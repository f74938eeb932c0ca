package ui

import (
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestGridSize(t *testing.T) {
	assert.Equal(t, 0, GridWidth(0))
	assert.Equal(t, ButtonWidth, GridWidth(1))
	assert.Equal(t, 4*ButtonWidth+3*ButtonGap, GridWidth(4))
	assert.Equal(t, 5*ButtonHeight+4*ButtonGap, GridHeight(5))
}

func TestHitTest(t *testing.T) {
	tests := []struct {
		name     string
		x, y     int
		row, col int
		ok       bool
	}{
		{"first button", 0, GridTop, 0, 0, true},
		{"last cell of first button", ButtonWidth - 1, GridTop + ButtonHeight - 1, 0, 0, true},
		{"column gap", ButtonWidth, GridTop, 0, 0, false},
		{"row gap", 0, GridTop + ButtonHeight, 0, 0, false},
		{"second row third column", 2*(ButtonWidth+ButtonGap) + 1, GridTop + ButtonHeight + ButtonGap, 1, 2, true},
		{"above grid", 0, GridTop - 1, 0, 0, false},
		{"right of grid", 4 * (ButtonWidth + ButtonGap), GridTop, 0, 0, false},
		{"below grid", 0, GridTop + 5*(ButtonHeight+ButtonGap), 0, 0, false},
		{"negative x", -1, GridTop, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col, ok := HitTest(tt.x, tt.y, 5, 4)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.row, row)
				assert.Equal(t, tt.col, col)
			}
		})
	}
}

func TestTruncateHead(t *testing.T) {
	assert.Equal(t, "12+3", TruncateHead("12+3", 10))
	assert.Equal(t, "12+3", TruncateHead("12+3", 4))
	assert.Equal(t, "…+34", TruncateHead("12+34", 4))
	assert.Equal(t, "", TruncateHead("12", 0))

	long := "1234567890+1234567890"
	got := TruncateHead(long, 8)
	assert.Equal(t, 8, runewidth.StringWidth(got))
	assert.Equal(t, "…4567890", got)
}
