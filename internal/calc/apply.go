package calc

import (
	"math"

	"github.com/zhubert/numbox/internal/errors"
)

// Apply computes a op b. Division by zero and non-finite results are errors;
// callers treat either as "no result" rather than a fault.
func Apply(op Operator, a, b float64) (float64, error) {
	var r float64
	switch op {
	case Add:
		r = a + b
	case Subtract:
		r = a - b
	case Multiply:
		r = a * b
	case Divide:
		if b == 0 {
			return 0, errors.DivideByZero(a)
		}
		r = a / b
	default:
		return 0, errors.E(errors.Op("calc.Apply"), errors.KindInvalid, "unknown operator "+op.String())
	}
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return 0, errors.NotFinite(r)
	}
	return r, nil
}

// Evaluate parses left and operand, applies op and formats the result.
// Any failure along the way is returned; the formatted string is only
// meaningful when err is nil.
func Evaluate(left, operand string, op Operator) (string, error) {
	a, err := ParseNumber(left)
	if err != nil {
		return "", err
	}
	b, err := ParseNumber(operand)
	if err != nil {
		return "", err
	}
	r, err := Apply(op, a, b)
	if err != nil {
		return "", err
	}
	return FormatNumber(r), nil
}
