package main

import (
	"fmt"
	"strings"

	"keycalc/internal/calc"
	"keycalc/internal/expr"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exact bool

// evalCmd evaluates an expression without opening the keypad
var evalCmd = &cobra.Command{
	Use:   "eval [expression...]",
	Short: "Evaluate an arithmetic expression",
	Long: `Evaluates the arguments, joined by spaces, as one arithmetic expression.
Supports + - * /, powers written ** or ^, unary signs and parentheses.

With --exact the expression is evaluated with fractions and printed as n/d
followed by its decimal approximation.

Example:
  keycalc eval '2 ** 10 / 3'
  keycalc eval --exact '1/3 + 1/6'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func runEval(cmd *cobra.Command, args []string) error {
	src := strings.Join(args, " ")
	if logger != nil {
		logger.Debug("evaluating", zap.String("expr", src), zap.Bool("exact", exact))
	}

	out := cmd.OutOrStdout()
	if exact {
		r, err := expr.EvalExact(src)
		if err != nil {
			return calc.Classify(src, err)
		}
		if r.IsInt() {
			fmt.Fprintln(out, expr.FormatRat(r))
			return nil
		}
		approx, _ := r.Float64()
		fmt.Fprintf(out, "%s (≈ %s)\n", expr.FormatRat(r), expr.FormatFloat(approx))
		return nil
	}

	buf := calc.New()
	buf.Append(src)
	result, err := buf.Evaluate()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, result)
	return nil
}
