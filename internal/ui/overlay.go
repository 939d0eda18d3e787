package ui

import (
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
)

// Overlay draws popup over base with its top-left cell at (x, y). The canvas
// is width by height cells; a non-positive size grows to fit both views.
// Cells under the popup are replaced, everything else keeps the base content.
func Overlay(base, popup string, x, y, width, height int) string {
	if popup == "" {
		return base
	}

	pw, ph := lipgloss.Width(popup), lipgloss.Height(popup)
	if width <= 0 {
		width = max(lipgloss.Width(base), x+pw)
	}
	if height <= 0 {
		height = max(lipgloss.Height(base), y+ph)
	}
	if width <= 0 || height <= 0 {
		return base
	}

	// Keep the popup on the canvas
	x = max(min(x, width-pw), 0)
	y = max(min(y, height-ph), 0)

	scr := uv.NewScreenBuffer(width, height)
	uv.NewStyledString(base).Draw(scr, uv.Rect(0, 0, width, height))
	uv.NewStyledString(popup).Draw(scr, uv.Rect(x, y, pw, ph))

	return scr.Render()
}
