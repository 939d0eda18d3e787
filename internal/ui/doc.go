// Package ui provides the presentation pieces of numbox: themes and styles,
// the calculator popup, its overlay compositing, and the header, footer and
// settings modal around the form.
//
// # Layout
//
//	┌──────────────────────────────────────────┐
//	│ Header (1 line)                          │
//	├──────────────────────────────────────────┤
//	│  Amount                                  │
//	│ ╭────────────────────────╮               │
//	│ │ 12                     │               │
//	│ ╰────────────────────────╯               │
//	│   ╭──────────────────╮                   │
//	│   │ + 5              │  <- Menu overlay  │
//	│   │ ──────────────── │                   │
//	│   │ = 17             │                   │
//	│   ╰──────────────────╯                   │
//	├──────────────────────────────────────────┤
//	│ Footer (1 line)                          │
//	└──────────────────────────────────────────┘
//
// # Popup
//
// Menu is the concrete calculator popup. It never interprets keys itself:
// the owning field hands keys to Deliver while the menu is open and the
// subscribed calculator session decides what they mean. Closing the menu
// from any path notifies closed subscribers exactly once.
//
// Overlay composites the rendered menu over the form with an ultraviolet
// screen buffer, placed below the caret column via Anchor.Place.
//
// # Styles
//
// All styles live in styles.go and are rebuilt from the active Theme by
// regenerateStyles whenever SetTheme or ApplyTheme runs.
package ui
