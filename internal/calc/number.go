package calc

import (
	"math"
	"strconv"
	"strings"

	"github.com/zhubert/numbox/internal/errors"
)

// DecimalSeparators are the characters accepted as a decimal point while
// typing. Both are stored as typed; parsing canonicalizes them to '.'.
const DecimalSeparators = ".,"

// HasDecimalSeparator reports whether s already contains '.' or ','.
func HasDecimalSeparator(s string) bool {
	return strings.ContainsAny(s, DecimalSeparators)
}

// Canonical rewrites ',' to '.', the single internal decimal representation.
func Canonical(s string) string {
	return strings.ReplaceAll(s, ",", ".")
}

// ParseNumber parses a field or operand string. Surrounding whitespace is
// ignored and ',' is treated as '.'. Anything else strconv would accept but
// a user cannot type into a numeric field (inf, nan, hex, underscores) is
// rejected, as are values that overflow to infinity.
func ParseNumber(s string) (float64, error) {
	const op = errors.Op("calc.ParseNumber")

	text := Canonical(strings.TrimSpace(s))
	if text == "" || strings.Count(text, ".") > 1 {
		return 0, errors.NotANumber(op, s)
	}
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
		case r == '.', r == '+', r == '-', r == 'e', r == 'E':
		default:
			return 0, errors.NotANumber(op, s)
		}
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, errors.E(op, errors.KindParse, strconv.Quote(s), err)
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, errors.NotANumber(op, s)
	}
	return v, nil
}

// FormatNumber renders v as the shortest decimal string that parses back to
// the same value. Very large and very small magnitudes use exponent form.
func FormatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	abs := math.Abs(v)
	if abs >= 1e21 || abs < 1e-7 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
