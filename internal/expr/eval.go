package expr

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Eval parses and evaluates src. Integer literals combined with + - * and
// non-negative powers give an exact integer; anything else is float64.
func Eval(src string) (Number, error) {
	n, err := parse(src)
	if err != nil {
		return Number{}, err
	}
	return evalNumber(n)
}

func evalNumber(n node) (Number, error) {
	switch n := n.(type) {
	case nodeNumber:
		return parseLiteral(n.text)

	case nodeUnary:
		x, err := evalNumber(n.x)
		if err != nil || n.op != '-' {
			return x, err
		}
		if x.IsInt() {
			return intNumber(new(big.Int).Neg(x.i)), nil
		}
		return floatNumber(-x.f), nil

	case nodeBinary:
		a, err := evalNumber(n.left)
		if err != nil {
			return Number{}, err
		}
		b, err := evalNumber(n.right)
		if err != nil {
			return Number{}, err
		}
		return applyNumber(n.op, a, b)
	}
	return Number{}, fmt.Errorf("%w: unsupported node %T", ErrSyntax, n)
}

func parseLiteral(text string) (Number, error) {
	if !strings.ContainsAny(text, ".eE") {
		i, ok := new(big.Int).SetString(text, 10)
		if !ok {
			return Number{}, fmt.Errorf("%w: malformed number %q", ErrSyntax, text)
		}
		return checkIntSize(i)
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if math.IsInf(v, 0) {
			return Number{}, fmt.Errorf("%w: %s does not fit a float", ErrRange, text)
		}
		return Number{}, fmt.Errorf("%w: malformed number %q", ErrSyntax, text)
	}
	return floatNumber(v), nil
}

func applyFloat(op byte, a, b float64) (float64, error) {
	var v float64
	switch op {
	case '+':
		v = a + b
	case '-':
		v = a - b
	case '*':
		v = a * b
	case '/':
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		v = a / b
	case '^':
		if a == 0 && b < 0 {
			return 0, ErrDivisionByZero
		}
		v = math.Pow(a, b)
	default:
		return 0, fmt.Errorf("%w: unknown operator %q", ErrSyntax, op)
	}

	switch {
	case math.IsNaN(v):
		return 0, fmt.Errorf("%w: no real result for %g %c %g", ErrDomain, a, op, b)
	case math.IsInf(v, 0):
		return 0, ErrRange
	}
	return v, nil
}
