package keypad

import (
	"errors"

	"keycalc/internal/calc"
	"keycalc/internal/logging"

	"github.com/google/uuid"
)

// Result is what a press hands back to the display surface.
type Result struct {
	// Display is the rendered buffer after the press.
	Display string
	// Err is set when an evaluation failed; it is a *calc.EvalError.
	Err error
}

// Controller owns the expression buffer for one calculator window.
type Controller struct {
	id  string
	buf *calc.Buffer
	log *logging.Logger
}

// NewController returns a controller with an empty buffer.
func NewController() *Controller {
	id := uuid.NewString()
	return &Controller{
		id:  id,
		buf: calc.New(),
		log: logging.Get(logging.CategoryKeypad).With("window", id),
	}
}

// ID identifies the window this controller belongs to.
func (c *Controller) ID() string { return c.id }

// Text returns the stored expression.
func (c *Controller) Text() string { return c.buf.Text() }

// Display returns the rendered expression.
func (c *Controller) Display() string { return c.buf.Render() }

// Press runs the buffer operation bound to spec.
func (c *Controller) Press(spec ButtonSpec) Result {
	before := c.buf.Text()
	var err error

	switch spec.Action {
	case ActionAppend:
		c.buf.Append(spec.Arg)
	case ActionOperator:
		if c.buf.AddOperator(spec.Arg) == before {
			c.log.Debug("operator %q refused after %q", spec.Arg, before)
		}
	case ActionBackspace:
		c.buf.Backspace()
	case ActionClear:
		c.buf.Clear()
	case ActionEvaluate:
		_, err = c.buf.Evaluate()
		c.logEvaluation(before, err)
	default:
		c.log.Warn("button %q has unknown action %v", spec.Label, spec.Action)
	}

	c.log.Debug("pressed %q (%v): %q -> %q", spec.Label, spec.Action, before, c.buf.Text())
	return Result{Display: c.buf.Render(), Err: err}
}

// PressLabel looks up label and presses it.
func (c *Controller) PressLabel(label string) (Result, error) {
	spec, err := SpecFor(label)
	if err != nil {
		return Result{Display: c.buf.Render()}, err
	}
	return c.Press(spec), nil
}

func (c *Controller) logEvaluation(src string, err error) {
	log := logging.Get(logging.CategoryEval).With("window", c.id)
	switch {
	case err == nil && src != "":
		log.Debug("evaluated %q = %q", src, c.buf.Text())
	case errors.Is(err, calc.ErrDivisionByZero):
		log.Warn("division by zero in %q", src)
	case err != nil:
		log.Warn("invalid expression %q: %v", src, err)
	}
}
