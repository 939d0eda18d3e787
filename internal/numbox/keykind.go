package numbox

import (
	tea "charm.land/bubbletea/v2"
)

// KeyKind is the category a calculator session dispatches on.
type KeyKind int

const (
	KeyOther KeyKind = iota
	KeyCancel
	KeyErase
	KeyCommit
	KeyMinus
	KeyDigit
	KeyDecimal
	KeyShifted
)

func (k KeyKind) String() string {
	switch k {
	case KeyCancel:
		return "cancel"
	case KeyErase:
		return "erase"
	case KeyCommit:
		return "commit"
	case KeyMinus:
		return "minus"
	case KeyDigit:
		return "digit"
	case KeyDecimal:
		return "decimal"
	case KeyShifted:
		return "shifted"
	default:
		return "other"
	}
}

const lockMods = tea.ModCapsLock | tea.ModNumLock | tea.ModScrollLock

// Classify returns the category of msg and, for digits and decimal
// separators, the character to append to the operand.
//
// Any key carrying the shift modifier is KeyShifted, whatever else it is.
func Classify(msg tea.KeyPressMsg) (KeyKind, string) {
	if msg.Mod.Contains(tea.ModShift) {
		return KeyShifted, ""
	}

	switch msg.Code {
	case tea.KeyEscape:
		return KeyCancel, ""
	case tea.KeyBackspace, tea.KeyDelete:
		return KeyErase, ""
	case tea.KeyEnter, tea.KeyKpEnter, tea.KeyKpEqual:
		return KeyCommit, ""
	case tea.KeyKpMinus:
		return KeyMinus, ""
	case tea.KeyKpDecimal:
		return KeyDecimal, "."
	case tea.KeyKpComma:
		return KeyDecimal, ","
	case tea.KeyKp0:
		return KeyDigit, "0"
	case tea.KeyKp1:
		return KeyDigit, "1"
	case tea.KeyKp2:
		return KeyDigit, "2"
	case tea.KeyKp3:
		return KeyDigit, "3"
	case tea.KeyKp4:
		return KeyDigit, "4"
	case tea.KeyKp5:
		return KeyDigit, "5"
	case tea.KeyKp6:
		return KeyDigit, "6"
	case tea.KeyKp7:
		return KeyDigit, "7"
	case tea.KeyKp8:
		return KeyDigit, "8"
	case tea.KeyKp9:
		return KeyDigit, "9"
	}

	// Keys with modifiers other than shift never type into the operand.
	// Lock states are not modifiers.
	if msg.Mod&^lockMods != 0 {
		return KeyOther, ""
	}

	switch t := msg.Text; t {
	case "=":
		return KeyCommit, ""
	case "-":
		return KeyMinus, ""
	case ".", ",":
		return KeyDecimal, t
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		return KeyDigit, t
	}
	return KeyOther, ""
}
