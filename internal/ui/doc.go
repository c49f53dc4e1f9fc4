// Package ui renders the dinechat terminal screen.
//
// # Layout
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header: title and tab bar (1 line)                  │
//	├─────────────────────────────────────────────────────┤
//	│                                                     │
//	│   Panel body: rows, empty/error text, search box    │
//	│   or conversation history                           │
//	│                                                     │
//	├─────────────────────────────────────────────────────┤
//	│ Reply composer (conversation only, when open)       │
//	├─────────────────────────────────────────────────────┤
//	│ Footer: key bindings or flash message (1 line)      │
//	└─────────────────────────────────────────────────────┘
//
// The panel body is drawn from a panel.View, which the panel package
// produces from state alone. This package never reads panel.State.
//
// A visible Modal (the keyboard shortcut help) is drawn centered in place
// of the whole screen.
//
// All sizes go through Layout so the app and the renderers agree on them.
package ui
