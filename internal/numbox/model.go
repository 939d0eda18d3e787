package numbox

import (
	"log/slog"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/zhubert/numbox/internal/calc"
	"github.com/zhubert/numbox/internal/clipboard"
	"github.com/zhubert/numbox/internal/keys"
	"github.com/zhubert/numbox/internal/logger"
	"github.com/zhubert/numbox/internal/ui"
)

// clipboardMsg carries the result of reading the system clipboard.
type clipboardMsg struct {
	text string
	err  error
}

// Option configures a Model.
type Option func(*Model)

// WithMode sets the field's mode.
func WithMode(mode Mode) Option {
	return func(m *Model) { m.mode = mode }
}

// WithValue sets the initial text.
func WithValue(v string) Option {
	return func(m *Model) { m.SetValue(v) }
}

// WithPlacement sets which side of the field the popup opens on.
func WithPlacement(p ui.Placement) Option {
	return func(m *Model) { m.placement = p }
}

// WithClipboard replaces the ctrl+v text source.
func WithClipboard(read func() (string, error)) Option {
	return func(m *Model) { m.readClipboard = read }
}

// Model is a single-line numeric field with an inline calculator. Every
// inserted character goes through ShouldAccept; while a calculator session
// is open, keys go to the session instead of the field.
type Model struct {
	input     textinput.Model
	field     Field
	menu      *ui.Menu
	owner     *Owner
	mode      Mode
	placement ui.Placement

	readClipboard func() (string, error)
	log           *slog.Logger
}

// New creates a blurred, empty field.
func New(opts ...Option) *Model {
	m := &Model{
		menu:          ui.NewMenu(),
		readClipboard: clipboard.ReadText,
		placement:     ui.PlacementBottom,
		log:           logger.ComponentLogger("numbox"),
	}

	m.input = textinput.New()
	m.input.Prompt = ""
	m.input.Placeholder = "0"
	m.input.SetWidth(ui.FieldWidth)
	// Paste is handled here so it goes through the filter; tab belongs to the form
	m.input.KeyMap.Paste.SetEnabled(false)
	m.input.KeyMap.AcceptSuggestion.SetEnabled(false)

	m.field = NewInputField(&m.input)
	m.owner = NewOwner(m.field, m.menu)

	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Update handles a message for this field.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.BlurMsg:
		m.closeSession("terminal blur")
		return m, nil

	case tea.PasteMsg:
		if m.input.Focused() {
			m.paste(msg.Content)
		}
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			m.log.Warn("clipboard read failed", "error", msg.err)
			return m, nil
		}
		if m.input.Focused() {
			m.paste(msg.text)
		}
		return m, nil

	case tea.KeyPressMsg:
		if !m.input.Focused() {
			return m, nil
		}
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (*Model, tea.Cmd) {
	if m.owner.Active() != nil {
		m.menu.Deliver(msg)
		return m, nil
	}

	if msg.String() == keys.CtrlV {
		return m, m.pasteFromClipboard()
	}

	var cmd tea.Cmd
	if msg.Text == "" || m.isEditingKey(msg) {
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	d := ShouldAccept(FilterInput{
		Text:          m.input.Value(),
		CaretAtStart:  m.input.Position() == 0,
		SessionActive: m.owner.Active() != nil,
		Input:         msg.Text,
		Mode:          m.mode,
	})

	switch {
	case d.StartSession:
		m.startSession(d.Start)
		return m, nil
	case d.Accept:
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	m.log.Debug("filter rejected input", "text", msg.Text, "mode", m.mode.String())
	return m, nil
}

// isEditingKey reports whether msg is one of the textinput's cursor or
// deletion bindings, which never insert text.
func (m *Model) isEditingKey(msg tea.KeyPressMsg) bool {
	km := m.input.KeyMap
	return key.Matches(msg,
		km.CharacterForward, km.CharacterBackward,
		km.WordForward, km.WordBackward,
		km.DeleteWordBackward, km.DeleteWordForward,
		km.DeleteAfterCursor, km.DeleteBeforeCursor,
		km.DeleteCharacterBackward, km.DeleteCharacterForward,
		km.LineStart, km.LineEnd,
	)
}

func (m *Model) startSession(op calc.Operator) {
	if s := m.owner.Start(op, m.caretAnchor(), m.placement); s != nil {
		m.log.Debug("calculator opened", "sessionID", s.ID(), "operator", op.String())
	}
}

func (m *Model) closeSession(reason string) {
	if s := m.owner.Active(); s != nil {
		m.log.Debug("closing calculator", "sessionID", s.ID(), "reason", reason)
		m.owner.CloseActive()
	}
}

func (m *Model) pasteFromClipboard() tea.Cmd {
	read := m.readClipboard
	return func() tea.Msg {
		text, err := read()
		return clipboardMsg{text: text, err: err}
	}
}

// paste inserts the accepted part of text at the caret.
func (m *Model) paste(text string) {
	filtered := FilterPaste(m.mode, m.input.Value(), m.input.Position(), m.owner.Active() != nil, text)
	if filtered == "" {
		m.log.Debug("paste rejected", "bytes", len(text))
		return
	}
	m.input, _ = m.input.Update(tea.PasteMsg{Content: filtered})
}

// caretAnchor locates the caret within this field's rendered view.
func (m *Model) caretAnchor() ui.Anchor {
	style := m.boxStyle()
	left := style.GetBorderLeftSize() + style.GetPaddingLeft() + lipgloss.Width(m.input.Prompt)

	runes := []rune(m.input.Value())
	pos := max(0, min(m.input.Position(), len(runes)))
	col := min(runewidth.StringWidth(string(runes[:pos])), ui.FieldWidth)

	return ui.Anchor{
		X:      left + col,
		Top:    0,
		Bottom: lipgloss.Height(m.View()),
	}
}

func (m *Model) boxStyle() lipgloss.Style {
	if m.input.Focused() {
		return ui.FieldFocusedStyle
	}
	return ui.FieldStyle
}

// View renders the field box. The popup is rendered separately by PopupView
// so the caller can overlay it on the whole screen.
func (m *Model) View() string {
	return m.boxStyle().Render(m.input.View())
}

// Value returns the field text.
func (m *Model) Value() string {
	return m.input.Value()
}

// SetValue replaces the field text and moves the caret to the end. Any open
// calculator is closed first.
func (m *Model) SetValue(v string) {
	m.closeSession("value replaced")
	m.input.SetValue(v)
	m.input.CursorEnd()
}

// Caret returns the caret offset in runes.
func (m *Model) Caret() int {
	return m.input.Position()
}

// SetCaret moves the caret.
func (m *Model) SetCaret(pos int) {
	m.input.SetCursor(pos)
}

// Focus focuses the field.
func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}

// Blur removes focus and closes any open calculator without committing.
func (m *Model) Blur() {
	m.closeSession("focus lost")
	m.input.Blur()
}

// Focused reports whether the field has focus.
func (m *Model) Focused() bool {
	return m.input.Focused()
}

// Mode returns the field's mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// SetMode changes the field's mode. Existing text is left as is.
func (m *Model) SetMode(mode Mode) {
	m.mode = mode
}

// SessionActive reports whether a calculator session is open.
func (m *Model) SessionActive() bool {
	return m.owner.Active() != nil
}

// Session returns the open calculator session, or nil.
func (m *Model) Session() *Session {
	return m.owner.Active()
}

// PopupView renders the calculator popup, or "" when none is open.
func (m *Model) PopupView() string {
	return m.menu.View()
}

// PopupAnchor returns where the open popup is anchored, relative to View.
func (m *Model) PopupAnchor() (ui.Anchor, ui.Placement) {
	return m.menu.Anchor(), m.menu.Placement()
}

// ClosePopup closes the popup as an outside party would; the session sees
// the closed notification and tears itself down without committing.
func (m *Model) ClosePopup() {
	m.menu.Close()
}
