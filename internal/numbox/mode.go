// Package numbox implements the numeric text field and its inline
// calculator: the input filter that decides which characters reach the
// field, the key categories a calculator session understands, and the
// session state machine that owns the popup while it is open.
package numbox

import (
	"fmt"
	"strings"

	"github.com/zhubert/numbox/internal/errors"
)

// Mode declares which characters a field accepts as plain text.
type Mode int

const (
	// ModeFloat accepts digits, signs, decimal separators and exponents.
	ModeFloat Mode = iota
	// ModeInteger accepts digits and the minus sign.
	ModeInteger
)

const (
	integerChars = "0123456789-"
	floatChars   = "0123456789-+.,eE"
)

// ParseMode maps a config or flag value to a Mode. Empty means float.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "float":
		return ModeFloat, nil
	case "integer", "int":
		return ModeInteger, nil
	}
	return ModeFloat, errors.E(errors.Op("numbox.ParseMode"), errors.KindInvalid, fmt.Sprintf("unknown mode %q", s))
}

func (m Mode) String() string {
	switch m {
	case ModeInteger:
		return "integer"
	default:
		return "float"
	}
}

// Allows reports whether every character of s is permitted in this mode.
// The empty string is allowed.
func (m Mode) Allows(s string) bool {
	allowed := floatChars
	if m == ModeInteger {
		allowed = integerChars
	}
	for _, r := range s {
		if !strings.ContainsRune(allowed, r) {
			return false
		}
	}
	return true
}
