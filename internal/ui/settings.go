package ui

import (
	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/numbox/internal/keys"
)

// SettingsState is the settings modal: a huh form choosing the theme and
// the default field mode. Enter and Esc are left to the caller.
type SettingsState struct {
	selectedTheme string
	selectedMode  string

	OriginalTheme string
	OriginalMode  string

	form *huh.Form
}

// NewSettingsState creates the modal with the current values selected.
func NewSettingsState(currentTheme, currentMode string, modes []string) *SettingsState {
	if currentTheme == "" {
		currentTheme = string(DefaultTheme)
	}
	s := &SettingsState{
		selectedTheme: currentTheme,
		selectedMode:  currentMode,
		OriginalTheme: currentTheme,
		OriginalMode:  currentMode,
	}

	names := ThemeNames()
	themeOptions := make([]huh.Option[string], len(names))
	for i, name := range names {
		themeOptions[i] = huh.NewOption(GetTheme(name).Name, string(name))
	}

	modeOptions := make([]huh.Option[string], len(modes))
	for i, m := range modes {
		modeOptions[i] = huh.NewOption(m, m)
	}

	s.form = huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Theme").
			Options(themeOptions...).
			Value(&s.selectedTheme),
		huh.NewSelect[string]().
			Title("Default mode").
			Description("Fields without their own mode use this").
			Options(modeOptions...).
			Value(&s.selectedMode),
	)).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 10)

	s.form.Init()
	return s
}

// Title returns the modal title
func (s *SettingsState) Title() string { return "Settings" }

// Help returns the modal's key hint line
func (s *SettingsState) Help() string {
	return "Tab: next field  Enter: save  Esc: cancel"
}

// Render renders the modal body
func (s *SettingsState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	hint := ModalHelpStyle.Render(s.Help())
	return ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), hint))
}

// Update forwards msg to the form
func (s *SettingsState) Update(msg tea.Msg) (*SettingsState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// SelectedTheme returns the chosen theme name
func (s *SettingsState) SelectedTheme() string {
	return s.selectedTheme
}

// SelectedMode returns the chosen default mode
func (s *SettingsState) SelectedMode() string {
	return s.selectedMode
}

// Changed reports whether anything differs from the values the modal opened with
func (s *SettingsState) Changed() bool {
	return s.selectedTheme != s.OriginalTheme || s.selectedMode != s.OriginalMode
}

// huhFormUpdate intercepts Enter and Escape, which the app handles, and
// delegates everything else to the huh form.
func huhFormUpdate(form *huh.Form, msg tea.Msg) (*huh.Form, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Enter, keys.Escape:
			return form, nil
		}
	}

	m, cmd := form.Update(msg)
	if f, ok := m.(*huh.Form); ok {
		form = f
	}
	return form, cmd
}

// ModalTheme returns a huh theme that matches the current color palette.
// Called each time a form is created to pick up the current theme colors.
func ModalTheme() huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		t.Focused.Base = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(ColorPrimary)
		t.Focused.Card = t.Focused.Base
		t.Focused.Title = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
		t.Focused.Description = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)
		t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(ColorWarning).SetString(" *")
		t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(ColorWarning)

		t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(ColorPrimary).SetString("> ")
		t.Focused.NextIndicator = lipgloss.NewStyle().Foreground(ColorPrimary).MarginLeft(1).SetString("→")
		t.Focused.PrevIndicator = lipgloss.NewStyle().Foreground(ColorPrimary).MarginRight(1).SetString("←")
		t.Focused.Option = lipgloss.NewStyle().Foreground(ColorText)
		t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(ColorSecondary)

		// Inactive field keeps its indent but drops the border
		t.Blurred = t.Focused
		t.Blurred.Base = lipgloss.NewStyle().PaddingLeft(2)
		t.Blurred.Card = t.Blurred.Base
		t.Blurred.NextIndicator = lipgloss.NewStyle()
		t.Blurred.PrevIndicator = lipgloss.NewStyle()

		t.Group.Title = lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true)
		t.Group.Description = lipgloss.NewStyle().Foreground(ColorTextMuted)

		t.FieldSeparator = lipgloss.NewStyle().SetString("\n")
		t.Help = help.New().Styles

		return t
	})
}
