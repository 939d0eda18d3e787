package app

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/numbox/internal/config"
	"github.com/zhubert/numbox/internal/logger"
	"github.com/zhubert/numbox/internal/numbox"
	"github.com/zhubert/numbox/internal/ui"
)

// Options are per-run settings that do not come from the config file.
type Options struct {
	Version   string
	Placement ui.Placement

	// Clipboard replaces the ctrl+v text source for every field (tests, demos).
	Clipboard func() (string, error)
}

// formField is one labeled numeric field in the form.
type formField struct {
	label   string
	ownMode string // Mode set on the field itself, "" to follow the default
	input   *numbox.Model
}

// Model is the main Bubble Tea model: a vertical form of numeric fields
// with a header, a key help footer and an optional settings modal.
type Model struct {
	config  *config.Config
	opts    Options
	header  *ui.Header
	footer  *ui.Footer
	fields  []*formField
	focused int

	settings  *ui.SettingsState
	statusErr string // Shown under the form until the next key press

	width         int
	height        int
	windowFocused bool
	quitting      bool
}

// New creates the app model. Fields, their modes and values come from cfg;
// the saved theme is applied.
func New(cfg *config.Config, opts Options) *Model {
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.ApplyTheme(savedTheme)
	}

	m := &Model{
		config:        cfg,
		opts:          opts,
		header:        ui.NewHeader(),
		footer:        ui.NewFooter(),
		windowFocused: true,
	}

	for _, f := range cfg.GetFields() {
		m.fields = append(m.fields, m.newField(f))
	}

	if len(m.fields) > 0 {
		m.fields[0].input.Focus()
	}
	m.updateHeader()

	logger.Info("App: started version=%s with %d fields, mode=%s, theme=%s", opts.Version, len(m.fields), cfg.GetMode(), ui.CurrentThemeName())
	return m
}

func (m *Model) newField(f config.Field) *formField {
	mode, err := numbox.ParseMode(m.config.FieldMode(f))
	if err != nil {
		logger.Warn("App: field %q: %v, using float", f.Label, err)
	}

	fieldOpts := []numbox.Option{
		numbox.WithMode(mode),
		numbox.WithValue(f.Value),
		numbox.WithPlacement(m.opts.Placement),
	}
	if m.opts.Clipboard != nil {
		fieldOpts = append(fieldOpts, numbox.WithClipboard(m.opts.Clipboard))
	}

	return &formField{
		label:   f.Label,
		ownMode: f.Mode,
		input:   numbox.New(fieldOpts...),
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	if len(m.fields) == 0 {
		return nil
	}
	return m.fields[m.focused].input.Focus()
}

// Focused returns the index of the focused field.
func (m *Model) Focused() int {
	return m.focused
}

// Field returns the numeric field at index i, or nil.
func (m *Model) Field(i int) *numbox.Model {
	if i < 0 || i >= len(m.fields) {
		return nil
	}
	return m.fields[i].input
}

// FocusedField returns the numeric field that has focus, or nil.
func (m *Model) FocusedField() *numbox.Model {
	return m.Field(m.focused)
}

// SettingsOpen reports whether the settings modal is showing.
func (m *Model) SettingsOpen() bool {
	return m.settings != nil
}

// Quitting reports whether the user asked to quit.
func (m *Model) Quitting() bool {
	return m.quitting
}

// Values returns every field's label, current value and mode in form order.
func (m *Model) Values() []config.Field {
	values := make([]config.Field, len(m.fields))
	for i, f := range m.fields {
		values[i] = config.Field{
			Label: f.label,
			Value: f.input.Value(),
			Mode:  f.input.Mode().String(),
		}
	}
	return values
}

// FormatValues renders Values as "Label: value" lines for printing after exit.
func (m *Model) FormatValues() string {
	var sb strings.Builder
	for _, v := range m.Values() {
		fmt.Fprintf(&sb, "%s: %s\n", v.Label, v.Value)
	}
	return sb.String()
}

// syncConfig copies the current field values into the config.
func (m *Model) syncConfig() {
	for _, f := range m.fields {
		m.config.SetFieldValue(f.label, f.input.Value())
	}
}

// closeSessions closes any open calculator without committing.
func (m *Model) closeSessions() {
	for _, f := range m.fields {
		if f.input.SessionActive() {
			f.input.ClosePopup()
		}
	}
}

// updateHeader shows the focused field's mode and the theme.
func (m *Model) updateHeader() {
	mode := m.config.GetMode()
	if f := m.FocusedField(); f != nil {
		mode = f.Mode().String()
	}
	m.header.SetStatus(fmt.Sprintf("%s · %s", mode, ui.CurrentThemeName()))
}
