// Package expr is a small, sandboxed arithmetic evaluator.
//
// It understands decimal literals with an optional exponent, the binary
// operators + - * / and exponentiation (spelled ** or ^), unary signs and
// parentheses. There are no identifiers, calls or assignments.
//
// Integer literals must not have leading zeros (07 is rejected, 0, 00 and
// 07.5 are not).
//
// Two evaluators share one parser. Eval is what the keypad uses: integer
// arithmetic is exact and a division, a decimal literal or a negative
// exponent switches to float64. EvalExact works in exact rationals for
// fraction output.
package expr
