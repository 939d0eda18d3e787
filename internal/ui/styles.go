package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette, filled from the active theme by regenerateStyles
var (
	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorBorder      color.Color
	ColorBorderFocus color.Color
	ColorBg          color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorOperator    color.Color
	ColorWarning     color.Color
	ColorError       color.Color
)

// Header and footer styles
var (
	HeaderStyle          lipgloss.Style
	FooterStyle          lipgloss.Style
	FooterKeyStyle       lipgloss.Style
	FooterDescStyle      lipgloss.Style
	FooterSeparatorStyle lipgloss.Style
)

// Field styles
var (
	FieldLabelStyle        lipgloss.Style
	FieldLabelFocusedStyle lipgloss.Style
	FieldStyle             lipgloss.Style
	FieldFocusedStyle      lipgloss.Style
	FieldModeStyle         lipgloss.Style
)

// Calculator popup styles
var (
	PopupStyle          lipgloss.Style
	PopupIconStyle      lipgloss.Style
	PopupOperandStyle   lipgloss.Style
	PopupResultStyle    lipgloss.Style
	PopupSeparatorStyle lipgloss.Style
)

// Modal styles
var (
	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style
)

// Status styles
var (
	StatusErrorStyle lipgloss.Style
)
