package ui

import (
	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
)

// FormKeys are the bindings shown while editing a field.
var FormKeys = []key.Binding{
	key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next field")),
	key.NewBinding(key.WithKeys("+", "-", "*", "/"), key.WithHelp("+-*/", "calculate")),
	key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
	key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "settings")),
	key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

// SessionKeys are the bindings shown while the calculator popup is open.
var SessionKeys = []key.Binding{
	key.NewBinding(key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("0-9", "operand")),
	key.NewBinding(key.WithKeys("enter", "="), key.WithHelp("enter/=", "apply")),
	key.NewBinding(key.WithKeys("backspace", "delete"), key.WithHelp("bksp", "erase")),
	key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}

// SettingsKeys are the bindings shown while the settings modal is open.
var SettingsKeys = []key.Binding{
	key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
	key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width         int
	help          help.Model
	sessionActive bool // Whether a calculator popup is open
	settingsOpen  bool // Whether the settings modal is open
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{help: help.New()}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(sessionActive, settingsOpen bool) {
	f.sessionActive = sessionActive
	f.settingsOpen = settingsOpen
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
	f.help.SetWidth(max(width-2, 0))
}

// Bindings returns the bindings for the current context.
func (f *Footer) Bindings() []key.Binding {
	switch {
	case f.settingsOpen:
		return SettingsKeys
	case f.sessionActive:
		return SessionKeys
	default:
		return FormKeys
	}
}

// View renders the footer
func (f *Footer) View() string {
	// Styles are read per render so theme changes apply immediately
	f.help.Styles.ShortKey = FooterKeyStyle
	f.help.Styles.ShortDesc = FooterDescStyle
	f.help.Styles.ShortSeparator = FooterSeparatorStyle
	f.help.Styles.Ellipsis = FooterSeparatorStyle
	f.help.ShortSeparator = "  |  "

	return FooterStyle.Width(f.width).Render(f.help.ShortHelpView(f.Bindings()))
}
