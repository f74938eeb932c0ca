package keypad

import (
	"errors"
	"testing"

	"keycalc/internal/calc"
	"keycalc/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func press(t *testing.T, c *Controller, labels ...string) Result {
	t.Helper()
	var res Result
	for _, label := range labels {
		var err error
		res, err = c.PressLabel(label)
		require.NoError(t, err)
	}
	return res
}

func TestController_Scenarios(t *testing.T) {
	tests := []struct {
		name    string
		labels  []string
		display string
		text    string
		errKind error
	}{
		{"addition", []string{"7", "+", "3", "="}, "10", "10", nil},
		{"division by zero", []string{"5", "/", "0", "="}, "0", "", calc.ErrDivisionByZero},
		{"power", []string{"2", "^", "3", "="}, "8", "8", nil},
		{"fraction", []string{"9", "/", "2", "="}, "4.5", "4.5", nil},
		{"double decimal", []string{"1", ".", ".", "2", "="}, "0", "", calc.ErrInvalidExpression},
		{"power shows glyph", []string{"2", "^"}, "2^", "2**", nil},
		{"backspace power", []string{"2", "^", "⌫"}, "2", "2", nil},
		{"operator refused", []string{"7", "+", "*"}, "7+", "7+", nil},
		{"leading operator refused", []string{"-", "5"}, "5", "5", nil},
		{"clear", []string{"1", "2", "C"}, "0", "", nil},
		{"equals on empty", []string{"="}, "0", "", nil},
		{"leading zero rejected", []string{"0", "7", "="}, "0", "", calc.ErrInvalidExpression},
		{"leading zero after operator", []string{"1", "+", "0", "2", "="}, "0", "", calc.ErrInvalidExpression},
		{"exact integer product", []string{"9", "9", "9", "9", "9", "9", "9", "9", "*", "9", "9", "9", "9", "9", "9", "9", "9", "="},
			"9999999800000001", "9999999800000001", nil},
		{"continue after result", []string{"9", "/", "2", "=", "*", "2", "="}, "9", "9", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController()
			res := press(t, c, tt.labels...)
			assert.Equal(t, tt.display, res.Display)
			assert.Equal(t, tt.text, c.Text())
			assert.Equal(t, tt.display, c.Display())
			if tt.errKind == nil {
				assert.NoError(t, res.Err)
			} else {
				assert.True(t, errors.Is(res.Err, tt.errKind), "got %v", res.Err)
			}
		})
	}
}

func TestController_ErrorIsRecoverable(t *testing.T) {
	c := NewController()
	res := press(t, c, "1", "/", "0", "=")
	require.Error(t, res.Err)

	res = press(t, c, "6", "*", "7", "=")
	assert.NoError(t, res.Err)
	assert.Equal(t, "42", res.Display)
}

func TestController_UnknownLabel(t *testing.T) {
	c := NewController()
	press(t, c, "4")
	res, err := c.PressLabel("x")
	assert.ErrorIs(t, err, ErrUnknownLabel)
	assert.Equal(t, "4", res.Display)
}

func TestController_IDsAreDistinct(t *testing.T) {
	a, b := NewController(), NewController()
	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestController_LogsEvaluationFailures(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logging.SetBase(zap.New(core), nil)
	t.Cleanup(func() { logging.SetBase(nil, nil) })

	c := NewController()
	press(t, c, "5", "/", "0", "=")

	warned := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warned, 1)
	assert.Equal(t, "eval", warned[0].LoggerName)
	assert.Contains(t, warned[0].Message, "division by zero")
	assert.Equal(t, c.ID(), warned[0].ContextMap()["window"])
}
