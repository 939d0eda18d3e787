package numbox

import (
	"charm.land/bubbles/v2/textinput"
)

// Field is the host text field a session reads and commits into.
// Caret offsets count runes.
type Field interface {
	Text() string
	SetText(string)
	Caret() int
	SetCaret(int)
}

// inputField adapts a bubbles textinput to Field.
type inputField struct {
	ti *textinput.Model
}

// NewInputField wraps ti. The pointer must stay valid for the field's lifetime.
func NewInputField(ti *textinput.Model) Field {
	return &inputField{ti: ti}
}

func (f *inputField) Text() string     { return f.ti.Value() }
func (f *inputField) SetText(s string) { f.ti.SetValue(s) }
func (f *inputField) Caret() int       { return f.ti.Position() }
func (f *inputField) SetCaret(pos int) { f.ti.SetCursor(pos) }
