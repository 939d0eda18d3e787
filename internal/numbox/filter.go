package numbox

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/zhubert/numbox/internal/calc"
)

// FilterInput is everything the filter needs to judge one insertion.
type FilterInput struct {
	Text          string // Current field text
	CaretAtStart  bool   // Caret is at offset 0
	SessionActive bool   // A calculator session owns the field
	Input         string // Character about to be inserted
	Mode          Mode
}

// Decision is the filter's verdict. When StartSession is set, Start names
// the operator and the character is consumed rather than inserted.
type Decision struct {
	Accept       bool
	Start        calc.Operator
	StartSession bool
}

// ShouldAccept decides whether Input may be inserted into the field.
//
// While a session is active nothing is inserted; keys go to the session.
// With a non-empty field an operator character requests a session instead
// of being inserted, except "-" with the caret at the start, which is a
// sign. Everything else is accepted only if the mode allows it.
func ShouldAccept(in FilterInput) Decision {
	if in.SessionActive {
		return Decision{}
	}

	if in.Text != "" {
		if op, ok := calc.OperatorFromTrigger(in.Input); ok {
			if !(in.Input == "-" && in.CaretAtStart) {
				return Decision{Start: op, StartSession: true}
			}
		}
	}

	return Decision{Accept: in.Mode.Allows(in.Input)}
}

// FilterPaste returns the part of pasted that the filter accepts when
// inserted at caret (a rune offset into text). Each grapheme is judged
// against the text as it would be after the graphemes before it. Graphemes
// that would start a session are dropped: pasting never opens the popup.
func FilterPaste(mode Mode, text string, caret int, sessionActive bool, pasted string) string {
	runes := []rune(text)
	caret = max(0, min(caret, len(runes)))
	before, after := string(runes[:caret]), string(runes[caret:])

	var accepted []byte
	gr := uniseg.NewGraphemes(pasted)
	for gr.Next() {
		g := gr.Str()
		d := ShouldAccept(FilterInput{
			Text:          before + after,
			CaretAtStart:  utf8.RuneCountInString(before) == 0,
			SessionActive: sessionActive,
			Input:         g,
			Mode:          mode,
		})
		if !d.Accept {
			continue
		}
		before += g
		accepted = append(accepted, g...)
	}
	return string(accepted)
}
