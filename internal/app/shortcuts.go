package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/numbox/internal/config"
	"github.com/zhubert/numbox/internal/keys"
	"github.com/zhubert/numbox/internal/logger"
	"github.com/zhubert/numbox/internal/ui"
)

// Shortcut represents a form-level keyboard shortcut and its handler.
// Keys not listed here go to the focused field.
type Shortcut struct {
	Key         string                              // The key binding (e.g., "tab", "ctrl+s")
	Description string                              // Human-readable description
	Handler     func(m *Model) (tea.Model, tea.Cmd) // Action to perform
	Condition   func(m *Model) bool                 // Optional extra condition
}

// ShortcutRegistry is the central registry of form-level shortcuts.
var ShortcutRegistry = []Shortcut{
	{
		Key:         keys.Tab,
		Description: "Next field",
		Handler:     shortcutNextField,
		Condition:   hasFields,
	},
	{
		Key:         keys.ShiftTab,
		Description: "Previous field",
		Handler:     shortcutPrevField,
		Condition:   hasFields,
	},
	{
		Key:         keys.CtrlS,
		Description: "Settings",
		Handler:     shortcutSettings,
	},
}

func hasFields(m *Model) bool {
	return len(m.fields) > 0
}

// ExecuteShortcut runs the shortcut bound to key. It returns false when no
// shortcut applies and the key should go to the focused field.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	for _, s := range ShortcutRegistry {
		if s.Key != key {
			continue
		}
		if s.Condition != nil && !s.Condition(m) {
			logger.Debug("Shortcut: guard failed for %q", key)
			return m, nil, false
		}
		logger.Debug("Shortcut: executing handler for %q", key)
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return m, nil, false
}

func shortcutNextField(m *Model) (tea.Model, tea.Cmd) {
	return m, m.moveFocus(1)
}

func shortcutPrevField(m *Model) (tea.Model, tea.Cmd) {
	return m, m.moveFocus(-1)
}

func shortcutSettings(m *Model) (tea.Model, tea.Cmd) {
	m.closeSessions()
	m.settings = ui.NewSettingsState(
		string(ui.CurrentThemeName()),
		m.config.GetMode(),
		[]string{config.ModeFloat, config.ModeInteger},
	)
	logger.Debug("App: settings opened")
	return m, nil
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	m.closeSessions()
	m.syncConfig()
	m.quitting = true
	logger.Info("App: quitting")
	return m, tea.Quit
}
