package expr

import "errors"

var (
	// ErrSyntax reports input that is not a well-formed arithmetic expression.
	ErrSyntax = errors.New("syntax error")

	// ErrDivisionByZero reports a division by zero, including zero raised
	// to a negative power.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrRange reports a result too large to represent.
	ErrRange = errors.New("result out of range")

	// ErrDomain reports an operation with no real result, such as a
	// fractional power of a negative number.
	ErrDomain = errors.New("math domain error")
)
