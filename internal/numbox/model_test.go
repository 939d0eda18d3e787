package numbox

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/numbox/internal/calc"
	"github.com/zhubert/numbox/internal/keys"
	"github.com/zhubert/numbox/internal/ui"
)

func TestModel_New(t *testing.T) {
	m := New()

	if m.Value() != "" {
		t.Errorf("Value() = %q, want empty", m.Value())
	}
	if m.Focused() {
		t.Error("new model should be blurred")
	}
	if m.Mode() != ModeFloat {
		t.Errorf("Mode() = %v, want float", m.Mode())
	}
	if m.SessionActive() || m.Session() != nil {
		t.Error("new model should have no session")
	}
	if m.PopupView() != "" {
		t.Error("PopupView() should be empty with no session")
	}
}

func TestModel_Options(t *testing.T) {
	m := New(WithMode(ModeInteger), WithValue("42"), WithPlacement(ui.PlacementTop))

	if m.Mode() != ModeInteger {
		t.Errorf("Mode() = %v, want integer", m.Mode())
	}
	if m.Value() != "42" || m.Caret() != 2 {
		t.Errorf("Value() = %q caret %d, want \"42\" caret 2", m.Value(), m.Caret())
	}

	m.Focus()
	sendKey(m, "+")
	if _, p := m.PopupAnchor(); p != ui.PlacementTop {
		t.Errorf("placement = %v, want top", p)
	}
}

func TestModel_TypingIsFiltered(t *testing.T) {
	tests := []struct {
		name  string
		mode  Mode
		typed string
		want  string
	}{
		{"float digits", ModeFloat, "1.5e3", "1.5e3"},
		{"float comma", ModeFloat, "1,5", "1,5"},
		{"letters dropped", ModeFloat, "1a2b", "12"},
		{"integer drops separators", ModeInteger, "1.5", "15"},
		{"leading sign", ModeInteger, "-7", "-7"},
		{"star on empty field", ModeFloat, "*3", "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newFocused(t, "", WithMode(tt.mode))
			typeText(m, tt.typed)
			if m.Value() != tt.want {
				t.Errorf("Value() = %q, want %q", m.Value(), tt.want)
			}
			if m.SessionActive() {
				t.Error("typing should not have opened a session")
			}
		})
	}
}

func TestModel_UnfocusedIgnoresKeys(t *testing.T) {
	m := New(WithValue("1"))
	typeText(m, "2+")

	if m.Value() != "1" {
		t.Errorf("Value() = %q, want %q", m.Value(), "1")
	}
	if m.SessionActive() {
		t.Error("an unfocused field should not open a session")
	}
}

func TestModel_OperatorOpensSession(t *testing.T) {
	for _, op := range calc.Operators {
		t.Run(op.String(), func(t *testing.T) {
			m := newFocused(t, "12")
			sendKey(m, op.Symbol())

			if !m.SessionActive() {
				t.Fatal("operator should open a session")
			}
			if m.Session().Operator() != op {
				t.Errorf("Operator() = %v, want %v", m.Session().Operator(), op)
			}
			if m.Value() != "12" {
				t.Errorf("trigger should not be inserted, Value() = %q", m.Value())
			}
			if m.PopupView() == "" {
				t.Error("PopupView() should render while the session is open")
			}
		})
	}
}

func TestModel_FullCalculation(t *testing.T) {
	m := newFocused(t, "123")

	sendKey(m, "+")
	typeText(m, "7")
	if m.Value() != "123" {
		t.Errorf("keys during a session should not reach the field, Value() = %q", m.Value())
	}
	if m.Session().Operand() != "7" {
		t.Errorf("Operand() = %q, want %q", m.Session().Operand(), "7")
	}
	if !strings.Contains(ansi.Strip(m.PopupView()), "130") {
		t.Errorf("popup should show the live result:\n%s", ansi.Strip(m.PopupView()))
	}

	sendKey(m, keys.Enter)
	if m.Value() != "130" {
		t.Errorf("Value() = %q, want %q", m.Value(), "130")
	}
	if m.Caret() != 3 {
		t.Errorf("Caret() = %d, want 3", m.Caret())
	}
	if m.SessionActive() {
		t.Error("session should close on commit")
	}
	if m.PopupView() != "" {
		t.Error("popup should be hidden after commit")
	}

	// Keys go through the filter again
	typeText(m, "5x")
	if m.Value() != "1305" {
		t.Errorf("Value() = %q, want %q", m.Value(), "1305")
	}
}

func TestModel_ChainedSessions(t *testing.T) {
	m := newFocused(t, "2")

	typeText(m, "*3=")
	typeText(m, "/4=")
	typeText(m, "-0.5=")

	if m.Value() != "1" {
		t.Errorf("Value() = %q, want %q", m.Value(), "1")
	}
}

func TestModel_MinusAtStartIsSign(t *testing.T) {
	m := newFocused(t, "130")
	m.SetCaret(0)

	sendKey(m, "-")
	if m.SessionActive() {
		t.Fatal("minus at caret zero should not open a session")
	}
	if m.Value() != "-130" {
		t.Errorf("Value() = %q, want %q", m.Value(), "-130")
	}
}

func TestModel_EscapeClosesWithoutCommit(t *testing.T) {
	m := newFocused(t, "5")
	typeText(m, "*4")
	sendKey(m, keys.Escape)

	if m.SessionActive() {
		t.Error("escape should close the session")
	}
	if m.Value() != "5" {
		t.Errorf("Value() = %q, want %q", m.Value(), "5")
	}
}

func TestModel_EditingKeysReachField(t *testing.T) {
	m := newFocused(t, "123")

	sendKey(m, keys.Left)
	sendKey(m, keys.Left)
	if m.Caret() != 1 {
		t.Fatalf("Caret() = %d, want 1", m.Caret())
	}
	sendKey(m, keys.Backspace)
	if m.Value() != "23" {
		t.Errorf("Value() = %q, want %q", m.Value(), "23")
	}
	sendKey(m, keys.End)
	if m.Caret() != 2 {
		t.Errorf("Caret() = %d, want 2", m.Caret())
	}
}

func TestModel_Paste(t *testing.T) {
	m := newFocused(t, "12")
	m.Update(tea.PasteMsg{Content: "3a4+5"})

	if m.Value() != "12345" {
		t.Errorf("Value() = %q, want %q", m.Value(), "12345")
	}
	if m.SessionActive() {
		t.Error("pasting should never open a session")
	}
}

func TestModel_PasteIgnoredDuringSession(t *testing.T) {
	m := newFocused(t, "12")
	sendKey(m, "+")
	m.Update(tea.PasteMsg{Content: "99"})

	if m.Value() != "12" {
		t.Errorf("Value() = %q, want %q", m.Value(), "12")
	}
	if m.Session().Operand() != "" {
		t.Errorf("paste should not reach the operand, got %q", m.Session().Operand())
	}
}

func TestModel_ClipboardPaste(t *testing.T) {
	m := newFocused(t, "1", WithClipboard(func() (string, error) {
		return "2x3\n", nil
	}))

	cmd := sendKey(m, keys.CtrlV)
	if cmd == nil {
		t.Fatal("ctrl+v should return a clipboard command")
	}
	m.Update(cmd())

	if m.Value() != "123" {
		t.Errorf("Value() = %q, want %q", m.Value(), "123")
	}
}

func TestModel_ClipboardError(t *testing.T) {
	m := newFocused(t, "1", WithClipboard(func() (string, error) {
		return "", errors.New("no display")
	}))

	cmd := sendKey(m, keys.CtrlV)
	if cmd == nil {
		t.Fatal("ctrl+v should return a clipboard command")
	}
	m.Update(cmd())

	if m.Value() != "1" {
		t.Errorf("Value() = %q, want %q", m.Value(), "1")
	}
}

func TestModel_SessionClosers(t *testing.T) {
	tests := []struct {
		name  string
		close func(m *Model)
	}{
		{"blur", func(m *Model) { m.Blur() }},
		{"terminal blur", func(m *Model) { m.Update(tea.BlurMsg{}) }},
		{"set value", func(m *Model) { m.SetValue("5") }},
		{"popup closed", func(m *Model) { m.ClosePopup() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newFocused(t, "5")
			typeText(m, "+9")
			if !m.SessionActive() {
				t.Fatal("precondition: session should be open")
			}

			tt.close(m)

			if m.SessionActive() {
				t.Error("session should be closed")
			}
			if m.Value() != "5" {
				t.Errorf("Value() = %q, want %q", m.Value(), "5")
			}
			if m.PopupView() != "" {
				t.Error("popup should be hidden")
			}
		})
	}
}

func TestModel_PopupAnchorFollowsCaret(t *testing.T) {
	atEnd := newFocused(t, "1234")
	sendKey(atEnd, "+")
	endAnchor, _ := atEnd.PopupAnchor()

	atOne := newFocused(t, "1234")
	atOne.SetCaret(1)
	sendKey(atOne, "+")
	oneAnchor, _ := atOne.PopupAnchor()

	if endAnchor.X-oneAnchor.X != 3 {
		t.Errorf("anchor X at end = %d, at 1 = %d; want a difference of 3", endAnchor.X, oneAnchor.X)
	}
	if endAnchor.Bottom <= endAnchor.Top {
		t.Errorf("anchor Bottom = %d, Top = %d; want Bottom below Top", endAnchor.Bottom, endAnchor.Top)
	}
}

func TestModel_SetMode(t *testing.T) {
	m := newFocused(t, "1.5")
	m.SetMode(ModeInteger)

	if m.Value() != "1.5" {
		t.Errorf("SetMode should not rewrite existing text, got %q", m.Value())
	}
	typeText(m, ".2")
	if m.Value() != "1.52" {
		t.Errorf("Value() = %q, want %q", m.Value(), "1.52")
	}
}

func TestInputField(t *testing.T) {
	m := New(WithValue("abc"))
	f := m.field

	if f.Text() != "abc" || f.Caret() != 3 {
		t.Errorf("field = %q caret %d", f.Text(), f.Caret())
	}
	f.SetText("12345")
	f.SetCaret(2)
	if m.Value() != "12345" || m.Caret() != 2 {
		t.Errorf("Value() = %q caret %d, want \"12345\" caret 2", m.Value(), m.Caret())
	}
}
