package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/numbox/internal/keys"
	"github.com/zhubert/numbox/internal/logger"
	"github.com/zhubert/numbox/internal/numbox"
	"github.com/zhubert/numbox/internal/ui"
)

// Update handles messages. This is the core Bubble Tea update function that
// routes every message to the settings modal or the focused field.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.FocusMsg:
		m.windowFocused = true
		logger.Debug("App: window focused")
		return m, nil

	case tea.BlurMsg:
		m.windowFocused = false
		logger.Debug("App: window blurred")
		// Every field closes its calculator when the terminal loses focus
		for _, f := range m.fields {
			f.input.Update(msg)
		}
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)
	}

	if m.settings != nil {
		var cmd tea.Cmd
		m.settings, cmd = m.settings.Update(msg)
		return m, cmd
	}
	return m.updateFocused(msg)
}

// handleKeyPress handles all keyboard input.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	logger.Debug("App: KeyPressMsg received: key=%q, focused=%d, settings=%v", key, m.focused, m.settings != nil)

	m.statusErr = ""

	// ctrl+c always quits
	if key == keys.CtrlC {
		return shortcutQuit(m)
	}

	if m.settings != nil {
		return m.handleSettingsKey(msg)
	}

	if result, cmd, handled := m.ExecuteShortcut(key); handled {
		return result, cmd
	}

	return m.updateFocused(msg)
}

func (m *Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	f := m.FocusedField()
	if f == nil {
		return m, nil
	}
	_, cmd := f.Update(msg)
	return m, cmd
}

// moveFocus blurs the focused field, which closes its calculator without
// committing, and focuses the field delta positions away.
func (m *Model) moveFocus(delta int) tea.Cmd {
	n := len(m.fields)
	if n == 0 {
		return nil
	}
	m.fields[m.focused].input.Blur()
	m.focused = ((m.focused+delta)%n + n) % n
	m.updateHeader()
	return m.fields[m.focused].input.Focus()
}

// handleSettingsKey routes keys while the settings modal is open.
func (m *Model) handleSettingsKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Escape:
		logger.Debug("App: settings cancelled")
		m.settings = nil
		return m, nil
	case keys.Enter:
		m.applySettings()
		return m, nil
	}

	var cmd tea.Cmd
	m.settings, cmd = m.settings.Update(msg)
	return m, cmd
}

// applySettings closes the modal and applies what it selected, if anything
// changed.
func (m *Model) applySettings() {
	s := m.settings
	m.settings = nil

	if !s.Changed() {
		logger.Debug("App: settings unchanged")
		return
	}
	if err := m.ApplySettings(s.SelectedTheme(), s.SelectedMode()); err != nil {
		m.statusErr = "Settings not saved: " + err.Error()
	}
}

// ApplySettings switches the theme and the default mode, then saves the
// config along with the current field values. Fields with their own mode
// keep it. An unknown mode leaves the default unchanged.
func (m *Model) ApplySettings(theme, mode string) error {
	ui.ApplyTheme(theme)
	m.config.SetTheme(string(ui.CurrentThemeName()))

	if m.config.SetMode(mode) {
		parsed, _ := numbox.ParseMode(mode)
		for _, f := range m.fields {
			if f.ownMode == "" {
				f.input.SetMode(parsed)
			}
		}
	}
	m.updateHeader()
	logger.Info("App: settings changed, theme=%s, mode=%s", ui.CurrentThemeName(), m.config.GetMode())

	m.syncConfig()
	if err := m.config.Save(); err != nil {
		logger.Error("App: failed to save config: %v", err)
		return err
	}
	return nil
}

// updateSizes applies terminal dimensions to the header and footer
func (m *Model) updateSizes() {
	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)
}
