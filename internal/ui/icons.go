package ui

import "github.com/zhubert/numbox/internal/calc"

// Icon kinds shown beside the popup's label slots.
const (
	IconAdd    = "add"
	IconSub    = "sub"
	IconMult   = "mult"
	IconDiv    = "div"
	IconEquals = "equals"
)

var iconGlyphs = map[string]string{
	IconAdd:    "+",
	IconSub:    "−",
	IconMult:   "×",
	IconDiv:    "÷",
	IconEquals: "=",
}

// Icon returns the glyph for an icon kind, or a blank for unknown kinds.
func Icon(kind string) string {
	if g, ok := iconGlyphs[kind]; ok {
		return g
	}
	return " "
}

// OperatorIcon returns the glyph for op.
func OperatorIcon(op calc.Operator) string {
	return Icon(op.Kind())
}
