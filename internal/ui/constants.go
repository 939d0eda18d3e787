// Package ui provides constants for layout calculations and configuration.
package ui

// Layout constants
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// FieldWidth is the visible width of a numeric field's text, excluding border and padding
	FieldWidth = 24

	// FieldGap is the number of blank lines between fields in the form
	FieldGap = 1

	// DefaultWrapWidth is the default width when the terminal size is unknown
	DefaultWrapWidth = 80
)

// Calculator popup dimensions
const (
	// PopupWidth is the content width of the calculator popup, excluding border and padding
	PopupWidth = 18
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 50
)
