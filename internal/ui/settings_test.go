package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

func TestSettingsState_Initial(t *testing.T) {
	s := NewSettingsState("nord", "float", []string{"float", "integer"})

	if s.SelectedTheme() != "nord" {
		t.Errorf("SelectedTheme() = %q, want nord", s.SelectedTheme())
	}
	if s.SelectedMode() != "float" {
		t.Errorf("SelectedMode() = %q, want float", s.SelectedMode())
	}
	if s.Changed() {
		t.Error("fresh settings should not report a change")
	}

	view := ansi.Strip(s.Render())
	if !strings.Contains(view, "Settings") || !strings.Contains(view, "Theme") {
		t.Errorf("settings view missing title or theme field:\n%s", view)
	}
}

func TestSettingsState_DefaultTheme(t *testing.T) {
	s := NewSettingsState("", "float", []string{"float", "integer"})
	if s.SelectedTheme() != string(DefaultTheme) {
		t.Errorf("SelectedTheme() = %q, want %q", s.SelectedTheme(), DefaultTheme)
	}
}

func TestSettingsState_EnterAndEscapeNotForwarded(t *testing.T) {
	s := NewSettingsState("nord", "float", []string{"float", "integer"})

	for _, k := range []tea.KeyPressMsg{{Code: tea.KeyEnter}, {Code: tea.KeyEscape}} {
		_, cmd := s.Update(k)
		if cmd != nil {
			t.Errorf("%s should be left to the caller, got a command", k.String())
		}
	}
	if s.Changed() {
		t.Error("enter/esc should not change the selection")
	}
}
