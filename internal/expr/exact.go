package expr

import (
	"fmt"
	"math/big"
	"strings"
)

// MaxExactExponent bounds integer exponents in exact mode so a single
// keypress cannot build an arbitrarily large rational.
const MaxExactExponent = 1024

// EvalExact parses and evaluates src in exact rational arithmetic.
// Exponents must be integers.
func EvalExact(src string) (*big.Rat, error) {
	n, err := parse(src)
	if err != nil {
		return nil, err
	}
	return evalRat(n)
}

func evalRat(n node) (*big.Rat, error) {
	switch n := n.(type) {
	case nodeNumber:
		lit := n.text
		if strings.HasPrefix(lit, ".") {
			lit = "0" + lit
		}
		if strings.HasSuffix(lit, ".") {
			lit += "0"
		}
		r, ok := new(big.Rat).SetString(lit)
		if !ok {
			return nil, fmt.Errorf("%w: malformed number %q", ErrSyntax, n.text)
		}
		return r, nil

	case nodeUnary:
		x, err := evalRat(n.x)
		if err != nil {
			return nil, err
		}
		if n.op == '-' {
			x.Neg(x)
		}
		return x, nil

	case nodeBinary:
		a, err := evalRat(n.left)
		if err != nil {
			return nil, err
		}
		b, err := evalRat(n.right)
		if err != nil {
			return nil, err
		}
		return applyRat(n.op, a, b)
	}
	return nil, fmt.Errorf("%w: unsupported node %T", ErrSyntax, n)
}

func applyRat(op byte, a, b *big.Rat) (*big.Rat, error) {
	switch op {
	case '+':
		return new(big.Rat).Add(a, b), nil
	case '-':
		return new(big.Rat).Sub(a, b), nil
	case '*':
		return new(big.Rat).Mul(a, b), nil
	case '/':
		if b.Sign() == 0 {
			return nil, ErrDivisionByZero
		}
		return new(big.Rat).Quo(a, b), nil
	case '^':
		return powRat(a, b)
	}
	return nil, fmt.Errorf("%w: unknown operator %q", ErrSyntax, op)
}

func powRat(base, exp *big.Rat) (*big.Rat, error) {
	if !exp.IsInt() {
		return nil, fmt.Errorf("%w: exponent %s is not an integer", ErrDomain, exp.RatString())
	}
	e := exp.Num()
	if !e.IsInt64() || e.Int64() > MaxExactExponent || e.Int64() < -MaxExactExponent {
		return nil, fmt.Errorf("%w: exponent %s exceeds %d", ErrRange, e, MaxExactExponent)
	}
	k := e.Int64()
	if base.Sign() == 0 {
		if k < 0 {
			return nil, ErrDivisionByZero
		}
		if k == 0 {
			return big.NewRat(1, 1), nil
		}
		return new(big.Rat), nil
	}

	abs := big.NewInt(k)
	abs.Abs(abs)
	num := new(big.Int).Exp(base.Num(), abs, nil)
	den := new(big.Int).Exp(base.Denom(), abs, nil)
	if k < 0 {
		num, den = den, num
	}
	return new(big.Rat).SetFrac(num, den), nil
}
