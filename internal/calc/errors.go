package calc

import "errors"

var (
	// ErrDivisionByZero classifies evaluations that divided by zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidExpression classifies every other evaluation failure.
	ErrInvalidExpression = errors.New("invalid expression")
)

// EvalError is returned by Evaluate. Kind is one of the classification
// sentinels above; Err is the evaluator's own error. errors.Is matches both.
type EvalError struct {
	Kind error
	Expr string
	Err  error
}

func (e *EvalError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil || e.Err.Error() == e.Kind.Error() {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + e.Err.Error()
}

func (e *EvalError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Detail is the underlying evaluator message, without the classification.
func (e *EvalError) Detail() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}
