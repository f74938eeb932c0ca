package expr

import (
	"errors"
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestEval_Integers(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"42", "42"},
		{"7+3", "10"},
		{"2**3", "8"},
		{"2^3", "8"},
		{"2**3**2", "512"},
		{"-2**2", "-4"},
		{"1+2*3", "7"},
		{"10-4-3", "3"},
		{"(1+2)*3", "9"},
		{"--5", "5"},
		{"0", "0"},
		{"00", "0"},
		{"0**0", "1"},
		{"(-3)**3", "-27"},
		{"9007199254740993", "9007199254740993"},
		{"99999999*99999999", "9999999800000001"},
		{"3**40", "12157665459056928801"},
		{"10**400", "1" + strings.Repeat("0", 400)},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := Eval(tt.src)
			require.NoError(t, err)
			assert.True(t, got.IsInt(), "%q should stay an integer", tt.src)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestEval_LargePowerIsExact(t *testing.T) {
	got, err := Eval("9**400")
	require.NoError(t, err)
	want := new(big.Int).Exp(big.NewInt(9), big.NewInt(400), nil)
	assert.Equal(t, 0, want.Cmp(got.Int()))
	assert.Len(t, got.String(), 382)
}

func TestEval_Floats(t *testing.T) {
	tests := []struct {
		src  string
		want float64
	}{
		{"9/2", 4.5},
		{"8/4/2", 1},
		{"2**-1", 0.5},
		{"(-8)**-1", -0.125},
		{"1.", 1},
		{".5+.5", 1},
		{"07.5", 7.5},
		{"1/2 + 1/4 * 2", 1},
		{"2**0.5", math.Sqrt2},
		{"1e-05+1", 1.00001},
		{"0.1+0.2", 0.30000000000000004},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := Eval(tt.src)
			require.NoError(t, err)
			assert.False(t, got.IsInt(), "%q should be a float", tt.src)
			assert.Nil(t, got.Int())
			assert.InDelta(t, tt.want, got.Float64(), 1e-12)
		})
	}
}

func TestEval_DivisionOfLargeIntegersIsCorrectlyRounded(t *testing.T) {
	got, err := Eval("9007199254740993/1")
	require.NoError(t, err)
	assert.Equal(t, float64(9007199254740992), got.Float64())

	got, err = Eval("10**400/10**399")
	require.NoError(t, err)
	assert.Equal(t, "10", got.String())
}

func TestEval_FloatResultsPrintWithoutFraction(t *testing.T) {
	got, err := Eval("9/3")
	require.NoError(t, err)
	assert.False(t, got.IsInt())
	assert.Equal(t, "3", got.String())
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		src  string
		kind error
	}{
		{"", ErrSyntax},
		{"5/0", ErrDivisionByZero},
		{"5/0.0", ErrDivisionByZero},
		{"0**-1", ErrDivisionByZero},
		{"1..2", ErrSyntax},
		{"1.2.3", ErrSyntax},
		{".", ErrSyntax},
		{"7+", ErrSyntax},
		{"*7", ErrSyntax},
		{"abc", ErrSyntax},
		{"(1+2", ErrSyntax},
		{"1+2)", ErrSyntax},
		{"2 3", ErrSyntax},
		{"07", ErrSyntax},
		{"1+02", ErrSyntax},
		{"007", ErrSyntax},
		{"10.0**400", ErrRange},
		{"1e999", ErrRange},
		{"10**400+0.5", ErrRange},
		{"2**100000", ErrRange},
		{"(-8)**0.5", ErrDomain},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			_, err := Eval(tt.src)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.kind), "got %v, want %v", err, tt.kind)
		})
	}
}

func TestEvalErrorMentionsOffendingInput(t *testing.T) {
	_, err := Eval("1+x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `'x'`)
	assert.Contains(t, err.Error(), "offset 2")

	_, err = Eval("1+02")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "leading zeros")
	assert.Contains(t, err.Error(), "offset 2")
}
