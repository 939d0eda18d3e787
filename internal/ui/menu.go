package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/numbox/internal/calc"
)

// Placement says which side of the anchor the popup opens on.
type Placement int

const (
	PlacementBottom Placement = iota
	PlacementTop
)

// Anchor locates the caret of the field that owns a popup. X is the caret's
// display column; Top is the field's first row and Bottom the row just
// below it. Coordinates are relative to whatever view the anchor came from.
type Anchor struct {
	X      int
	Top    int
	Bottom int
}

// Offset returns the anchor translated by dx, dy.
func (a Anchor) Offset(dx, dy int) Anchor {
	return Anchor{X: a.X + dx, Top: a.Top + dy, Bottom: a.Bottom + dy}
}

// Place returns the top-left cell for a popup of the given height.
func (a Anchor) Place(p Placement, height int) (x, y int) {
	x = max(a.X, 0)
	switch p {
	case PlacementTop:
		y = max(a.Top-height, 0)
	default:
		y = a.Bottom
	}
	return x, y
}

type keySub struct {
	id int
	fn func(tea.KeyPressMsg)
}

type closedSub struct {
	id int
	fn func()
}

// Menu is the calculator popup: two read-only label slots (operand and
// result) plus key and closed subscriptions. While open it captures keys
// delivered by its host.
type Menu struct {
	open      bool
	anchor    Anchor
	placement Placement

	operator        calc.Operator
	operand         string
	result          string
	resultAvailable bool

	width int

	nextID     int
	keySubs    []keySub
	closedSubs []closedSub
}

// NewMenu creates a closed menu.
func NewMenu() *Menu {
	return &Menu{width: PopupWidth}
}

// Open shows the menu at anchor. Opening an open menu only moves it.
func (m *Menu) Open(anchor Anchor, placement Placement) {
	m.anchor = anchor
	m.placement = placement
	m.open = true
}

// Close hides the menu and notifies closed subscribers. Subscribers fire
// once per open; closing a closed menu does nothing.
func (m *Menu) Close() {
	if !m.open {
		return
	}
	m.open = false

	subs := make([]closedSub, len(m.closedSubs))
	copy(subs, m.closedSubs)
	for _, s := range subs {
		s.fn()
	}
}

// IsOpen reports whether the menu is showing.
func (m *Menu) IsOpen() bool {
	return m.open
}

// SetOperand sets the operand slot text.
func (m *Menu) SetOperand(s string) {
	m.operand = s
}

// SetResult sets the result slot. An unavailable result renders blank.
func (m *Menu) SetResult(s string, available bool) {
	m.result = s
	m.resultAvailable = available
}

// SetOperator picks the icon shown beside the operand slot.
func (m *Menu) SetOperator(op calc.Operator) {
	m.operator = op
}

// Operand returns the operand slot text.
func (m *Menu) Operand() string {
	return m.operand
}

// Result returns the result slot text and whether it is available.
func (m *Menu) Result() (string, bool) {
	return m.result, m.resultAvailable
}

// Anchor returns where the menu was last opened.
func (m *Menu) Anchor() Anchor {
	return m.anchor
}

// Placement returns the side of the anchor the menu opens on.
func (m *Menu) Placement() Placement {
	return m.placement
}

// SetWidth sets the content width of the label slots.
func (m *Menu) SetWidth(w int) {
	if w > 0 {
		m.width = w
	}
}

// OnKey subscribes fn to keys delivered while the menu is open.
// The returned func removes the subscription.
func (m *Menu) OnKey(fn func(tea.KeyPressMsg)) func() {
	m.nextID++
	id := m.nextID
	m.keySubs = append(m.keySubs, keySub{id: id, fn: fn})
	return func() {
		for i, s := range m.keySubs {
			if s.id == id {
				m.keySubs = append(m.keySubs[:i], m.keySubs[i+1:]...)
				return
			}
		}
	}
}

// OnClosed subscribes fn to the closed notification.
// The returned func removes the subscription.
func (m *Menu) OnClosed(fn func()) func() {
	m.nextID++
	id := m.nextID
	m.closedSubs = append(m.closedSubs, closedSub{id: id, fn: fn})
	return func() {
		for i, s := range m.closedSubs {
			if s.id == id {
				m.closedSubs = append(m.closedSubs[:i], m.closedSubs[i+1:]...)
				return
			}
		}
	}
}

// Subscribers returns the number of live key and closed subscriptions.
func (m *Menu) Subscribers() (keys, closed int) {
	return len(m.keySubs), len(m.closedSubs)
}

// Deliver hands msg to the key subscribers. It returns false, and does
// nothing, when the menu is closed.
func (m *Menu) Deliver(msg tea.KeyPressMsg) bool {
	if !m.open {
		return false
	}
	subs := make([]keySub, len(m.keySubs))
	copy(subs, m.keySubs)
	for _, s := range subs {
		s.fn(msg)
	}
	return true
}

// View renders the menu, or "" when closed.
func (m *Menu) View() string {
	if !m.open {
		return ""
	}

	result := ""
	if m.resultAvailable {
		result = m.result
	}

	lines := []string{
		m.slot(OperatorIcon(m.operator), m.operand, PopupOperandStyle),
		PopupSeparatorStyle.Render(strings.Repeat("─", m.width)),
		m.slot(Icon(IconEquals), result, PopupResultStyle),
	}
	return PopupStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// slot renders one icon and label row, truncated to the menu width.
func (m *Menu) slot(icon, text string, style lipgloss.Style) string {
	textWidth := m.width - 2
	text = ansi.Truncate(text, textWidth, "…")
	pad := max(textWidth-lipgloss.Width(text), 0)
	return PopupIconStyle.Render(icon) + " " + style.Render(text) + strings.Repeat(" ", pad)
}
