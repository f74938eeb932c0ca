package ui

import (
	"errors"

	"keycalc/internal/calc"
)

// AlertTitle heads every evaluation alert.
const AlertTitle = "Error"

// Alert is a blocking error message. While one is shown, button presses
// are ignored until it is dismissed.
type Alert struct {
	Title   string
	Message string
}

// NewAlert builds the alert for an evaluation error.
func NewAlert(err error) Alert {
	if errors.Is(err, calc.ErrDivisionByZero) {
		return Alert{Title: AlertTitle, Message: "Division by zero!"}
	}
	detail := err.Error()
	var evalErr *calc.EvalError
	if errors.As(err, &evalErr) && evalErr.Detail() != "" {
		detail = evalErr.Detail()
	}
	return Alert{Title: AlertTitle, Message: "Invalid expression!\n" + detail}
}
