package expr

import (
	"fmt"
	"math"
	"math/big"
)

// MaxIntBits bounds exact integer results. Anything larger is ErrRange.
const MaxIntBits = 1 << 16

// Number is the result of Eval. Integer arithmetic stays exact; a division,
// a decimal literal or a negative exponent turns the value into a float64.
type Number struct {
	i *big.Int
	f float64
}

func intNumber(i *big.Int) Number  { return Number{i: i} }
func floatNumber(f float64) Number { return Number{f: f} }

// IsInt reports whether n is an exact integer.
func (n Number) IsInt() bool { return n.i != nil }

// Int returns a copy of the integer value, or nil when n is a float.
func (n Number) Int() *big.Int {
	if n.i == nil {
		return nil
	}
	return new(big.Int).Set(n.i)
}

// Float64 returns the nearest float64. Integers beyond its range become ±Inf.
func (n Number) Float64() float64 {
	if n.i == nil {
		return n.f
	}
	f, _ := new(big.Float).SetInt(n.i).Float64()
	return f
}

// String renders n the way the display shows it: integers with every
// digit, floats through FormatFloat.
func (n Number) String() string {
	if n.i != nil {
		return n.i.String()
	}
	return FormatFloat(n.f)
}

func (n Number) toFloat() (float64, error) {
	f := n.Float64()
	if n.i != nil && math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: integer too large to convert to float", ErrRange)
	}
	return f, nil
}

func checkIntSize(i *big.Int) (Number, error) {
	if i.BitLen() > MaxIntBits {
		return Number{}, fmt.Errorf("%w: integer result exceeds %d bits", ErrRange, MaxIntBits)
	}
	return intNumber(i), nil
}

func applyNumber(op byte, a, b Number) (Number, error) {
	if a.IsInt() && b.IsInt() {
		switch op {
		case '+':
			return checkIntSize(new(big.Int).Add(a.i, b.i))
		case '-':
			return checkIntSize(new(big.Int).Sub(a.i, b.i))
		case '*':
			return checkIntSize(new(big.Int).Mul(a.i, b.i))
		case '/':
			if b.i.Sign() == 0 {
				return Number{}, ErrDivisionByZero
			}
			// Correctly rounded, even when the operands exceed float64.
			f, _ := new(big.Rat).SetFrac(a.i, b.i).Float64()
			if math.IsInf(f, 0) {
				return Number{}, ErrRange
			}
			return floatNumber(f), nil
		case '^':
			if b.i.Sign() >= 0 {
				return powInt(a.i, b.i)
			}
		}
	}

	x, err := a.toFloat()
	if err != nil {
		return Number{}, err
	}
	y, err := b.toFloat()
	if err != nil {
		return Number{}, err
	}
	v, err := applyFloat(op, x, y)
	if err != nil {
		return Number{}, err
	}
	return floatNumber(v), nil
}

// powInt raises base to a non-negative integer exponent exactly.
func powInt(base, exp *big.Int) (Number, error) {
	if bits := base.BitLen() - 1; bits > 0 {
		// The result has at least bits*exp+1 bits.
		if !exp.IsInt64() || exp.Int64() > int64(MaxIntBits/bits) {
			return Number{}, fmt.Errorf("%w: integer result exceeds %d bits", ErrRange, MaxIntBits)
		}
	}
	return checkIntSize(new(big.Int).Exp(base, exp, nil))
}
