// Package calc holds the calculator's expression buffer: the string the
// keypad builds up, and the rules for editing, evaluating and displaying it.
package calc

import (
	"errors"
	"strings"

	"keycalc/internal/expr"
)

const (
	// PowerToken is how exponentiation is stored in the buffer.
	PowerToken = "**"

	// PowerGlyph is how exponentiation is shown on the display.
	PowerGlyph = "^"

	// EmptyDisplay is rendered when the buffer holds nothing.
	EmptyDisplay = "0"
)

// operatorTails are the trailing characters after which AddOperator refuses
// another operator. The last rune of PowerToken is '*', so it is covered too.
const operatorTails = "+-*/."

// Buffer is the expression being typed on the keypad. The zero value is an
// empty buffer ready for use. A Buffer is owned by a single window and is
// not safe for concurrent use.
type Buffer struct {
	text string
}

// New returns an empty buffer.
func New() *Buffer { return &Buffer{} }

// Text returns the stored expression, with the power operator in its
// stored form.
func (b *Buffer) Text() string { return b.text }

// Append concatenates token unconditionally and returns the new text.
// Digits and decimal points are not validated here, so "1..2" is reachable;
// Evaluate reports it.
func (b *Buffer) Append(token string) string {
	b.text += token
	return b.text
}

// AddOperator appends op unless the buffer is empty, ends with one of
// + - * / ., or ends with the power token. A refused operator is dropped
// silently. It returns the text either way.
func (b *Buffer) AddOperator(op string) string {
	if !b.acceptsOperator() {
		return b.text
	}
	b.text += op
	return b.text
}

func (b *Buffer) acceptsOperator() bool {
	if b.text == "" {
		return false
	}
	if strings.HasSuffix(b.text, PowerToken) {
		return false
	}
	return !strings.ContainsRune(operatorTails, rune(b.text[len(b.text)-1]))
}

// Backspace removes the trailing power token as a unit, or else the last
// character. It is a no-op on an empty buffer.
func (b *Buffer) Backspace() string {
	switch {
	case strings.HasSuffix(b.text, PowerToken):
		b.text = b.text[:len(b.text)-len(PowerToken)]
	case b.text != "":
		b.text = b.text[:len(b.text)-1]
	}
	return b.text
}

// Clear empties the buffer.
func (b *Buffer) Clear() string {
	b.text = ""
	return b.text
}

// Evaluate replaces the buffer with the value of its expression and returns
// it. An empty buffer is left alone. On failure the buffer is cleared and
// the error is an *EvalError classified as ErrDivisionByZero or
// ErrInvalidExpression.
func (b *Buffer) Evaluate() (string, error) {
	if b.text == "" {
		return b.text, nil
	}
	src := b.text
	v, err := expr.Eval(src)
	if err != nil {
		b.text = ""
		return b.text, Classify(src, err)
	}
	b.text = v.String()
	return b.text, nil
}

// Classify wraps an evaluator failure for src in an *EvalError.
func Classify(src string, err error) error {
	kind := ErrInvalidExpression
	if errors.Is(err, expr.ErrDivisionByZero) {
		kind = ErrDivisionByZero
	}
	return &EvalError{Kind: kind, Expr: src, Err: err}
}

// Render returns the text to show on the display: EmptyDisplay for an empty
// buffer, and the power token replaced by PowerGlyph. The stored text is not
// modified.
func (b *Buffer) Render() string {
	return Render(b.text)
}

// Render applies the display rules to an arbitrary stored expression.
func Render(text string) string {
	if text == "" {
		return EmptyDisplay
	}
	return strings.ReplaceAll(text, PowerToken, PowerGlyph)
}
