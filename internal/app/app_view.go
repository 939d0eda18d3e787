package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/numbox/internal/ui"
)

// Form placement inside the body area
const (
	formPaddingLeft = 2
	formPaddingTop  = 1
)

// View renders the app
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.ReportFocus = true
	v.WindowTitle = "numbox"

	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}

	v.SetContent(m.render())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for demos and testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	return m.render()
}

func (m *Model) render() string {
	m.updateFooterContext()

	header := m.header.View()
	footer := m.footer.View()

	form, tops := m.renderForm()
	bodyHeight := max(m.height-ui.HeaderHeight-ui.FooterHeight, 0)
	body := lipgloss.NewStyle().
		Width(m.width).
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Render(form)

	view := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)

	// Settings modal is centered over everything
	if m.settings != nil {
		modal := m.settings.Render()
		x := (m.width - lipgloss.Width(modal)) / 2
		y := (m.height - lipgloss.Height(modal)) / 2
		return ui.Overlay(view, modal, x, y, m.width, m.height)
	}

	// Calculator popup next to the focused field's caret
	if f := m.FocusedField(); f != nil && f.SessionActive() {
		popup := f.PopupView()
		anchor, placement := f.PopupAnchor()
		anchor = anchor.Offset(formPaddingLeft, ui.HeaderHeight+tops[m.focused])
		x, y := anchor.Place(placement, lipgloss.Height(popup))
		return ui.Overlay(view, popup, x, y, m.width, m.height)
	}

	return view
}

// renderForm lays the fields out vertically and returns the form along with
// the row, within the form, where each field's box starts.
func (m *Model) renderForm() (string, []int) {
	tops := make([]int, len(m.fields))
	rows := make([]string, 0, formPaddingTop+len(m.fields)*(2+ui.FieldGap)+1)

	for range formPaddingTop {
		rows = append(rows, "")
	}

	for i, f := range m.fields {
		labelStyle := ui.FieldLabelStyle
		if i == m.focused {
			labelStyle = ui.FieldLabelFocusedStyle
		}
		rows = append(rows, labelStyle.Render(f.label)+" "+ui.FieldModeStyle.Render(f.input.Mode().String()))

		tops[i] = lineCount(rows)
		rows = append(rows, f.input.View())

		for range ui.FieldGap {
			rows = append(rows, "")
		}
	}

	if m.statusErr != "" {
		rows = append(rows, ui.StatusErrorStyle.Render(m.statusErr))
	}

	form := lipgloss.NewStyle().PaddingLeft(formPaddingLeft).Render(strings.Join(rows, "\n"))
	return form, tops
}

// lineCount returns how many terminal rows rows occupies when joined.
func lineCount(rows []string) int {
	n := 0
	for _, r := range rows {
		n += lipgloss.Height(r)
	}
	return n
}

// updateFooterContext updates the footer with current context for conditional bindings
func (m *Model) updateFooterContext() {
	sessionActive := false
	if f := m.FocusedField(); f != nil {
		sessionActive = f.SessionActive()
	}
	m.footer.SetContext(sessionActive, m.settings != nil)
}
