package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/dinechat/internal/clipboard"
	"github.com/zhubert/dinechat/internal/keys"
	"github.com/zhubert/dinechat/internal/logger"
	"github.com/zhubert/dinechat/internal/panel"
	"github.com/zhubert/dinechat/internal/ui"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for all shortcuts in the application.
type Shortcut struct {
	Key         string                              // The key binding (e.g., "j", "ctrl+r")
	DisplayKey  string                              // Display name in help (e.g., "j/down"); defaults to Key
	Description string                              // Human-readable description; empty hides it from help
	Category    string                              // Section for help modal grouping
	Panels      []panel.Panel                       // Panels where it applies; nil means all
	Handler     func(m *Model) (tea.Model, tea.Cmd) // Action to perform
	Condition   func(m *Model) bool                 // Optional extra condition
}

// Category constants for grouping shortcuts in help
const (
	CategoryTabs       = "Tabs"
	CategoryNavigation = "Navigation"
	CategoryActions    = "Actions"
	CategoryGeneral    = "General"
)

// categoryOrder defines the display order of categories in the help modal
var categoryOrder = []string{
	CategoryTabs,
	CategoryNavigation,
	CategoryActions,
	CategoryGeneral,
}

var listPanels = []panel.Panel{panel.ListView, panel.FriendRequests, panel.AddFriend}

// ShortcutRegistry is the central registry of all keyboard shortcuts.
var ShortcutRegistry = []Shortcut{
	// Tabs
	{Key: "1", Description: "Messages", Category: CategoryTabs, Handler: dispatchHandler(panel.ShowMessages{})},
	{Key: "2", Description: "New Friends", Category: CategoryTabs, Handler: dispatchHandler(panel.ShowNewFriends{})},
	{Key: "3", Description: "Add Friends", Category: CategoryTabs, Handler: dispatchHandler(panel.ShowAddFriends{})},

	// Navigation
	{Key: "j", DisplayKey: "j/down", Description: "Move down", Category: CategoryNavigation, Panels: listPanels, Handler: dispatchHandler(panel.MoveCursor{Delta: 1})},
	{Key: keys.Down, Panels: listPanels, Handler: dispatchHandler(panel.MoveCursor{Delta: 1})},
	{Key: "k", DisplayKey: "k/up", Description: "Move up", Category: CategoryNavigation, Panels: listPanels, Handler: dispatchHandler(panel.MoveCursor{Delta: -1})},
	{Key: keys.Up, Panels: listPanels, Handler: dispatchHandler(panel.MoveCursor{Delta: -1})},
	{Key: keys.Enter, Description: "Open, accept or add the selected row", Category: CategoryNavigation, Panels: listPanels, Handler: dispatchHandler(panel.Activate{})},
	{Key: keys.Escape, Description: "Back to messages", Category: CategoryNavigation, Panels: []panel.Panel{panel.ConversationDetail}, Handler: dispatchHandler(panel.Back{})},

	// Actions
	{
		Key:         "a",
		Description: "Accept the selected friend request",
		Category:    CategoryActions,
		Panels:      []panel.Panel{panel.FriendRequests},
		Handler:     shortcutAccept,
		Condition:   func(m *Model) bool { return m.state.Cursor < len(m.state.Requests.Rows) },
	},
	{Key: "/", Description: "Search for a customer", Category: CategoryActions, Panels: []panel.Panel{panel.AddFriend}, Handler: shortcutFocusSearch},
	{Key: "r", Description: "Reply", Category: CategoryActions, Panels: []panel.Panel{panel.ConversationDetail}, Handler: dispatchHandler(panel.ComposerToggled{})},
	{Key: "y", Description: "Copy conversation to clipboard", Category: CategoryActions, Panels: []panel.Panel{panel.ConversationDetail}, Handler: shortcutCopy},
	{Key: keys.CtrlR, Description: "Refresh", Category: CategoryActions, Handler: shortcutRefresh},

	// General
	{Key: "?", Description: "Show keyboard shortcuts", Category: CategoryGeneral, Handler: shortcutHelp},
	{Key: "q", Description: "Quit", Category: CategoryGeneral, Handler: shortcutQuit},
}

func dispatchHandler(ev panel.Event) func(m *Model) (tea.Model, tea.Cmd) {
	return func(m *Model) (tea.Model, tea.Cmd) {
		return m, m.dispatch(ev)
	}
}

// isShortcutApplicable checks a shortcut's guards against the current state.
func (m *Model) isShortcutApplicable(s Shortcut) bool {
	if s.Panels != nil {
		found := false
		for _, p := range s.Panels {
			if p == m.state.Panel {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if s.Condition != nil && !s.Condition(m) {
		return false
	}
	return true
}

// ExecuteShortcut finds and executes a shortcut by key.
// Returns (model, cmd, true) if the shortcut was found and executed.
// Returns (model, nil, false) if the shortcut was not found or guards failed.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	for _, s := range ShortcutRegistry {
		if s.Key != key || !m.isShortcutApplicable(s) {
			continue
		}
		logger.ComponentLogger("app").Debug("shortcut", "key", key, "panel", m.state.Panel.String())
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return m, nil, false
}

// getApplicableHelpSections builds help modal sections from the shortcuts
// that apply on the visible panel.
func (m *Model) getApplicableHelpSections(registry []Shortcut) []ui.HelpSection {
	categories := make(map[string][]ui.HelpShortcut)
	for _, s := range registry {
		if s.Description == "" || !m.isShortcutApplicable(s) {
			continue
		}
		displayKey := s.DisplayKey
		if displayKey == "" {
			displayKey = s.Key
		}
		categories[s.Category] = append(categories[s.Category], ui.HelpShortcut{
			Key:  displayKey,
			Desc: s.Description,
		})
	}

	var sections []ui.HelpSection
	for _, cat := range categoryOrder {
		if shortcuts, ok := categories[cat]; ok && len(shortcuts) > 0 {
			sections = append(sections, ui.HelpSection{
				Title:     cat,
				Shortcuts: shortcuts,
			})
		}
	}
	return sections
}

// =============================================================================
// Shortcut Handlers
// =============================================================================

func shortcutAccept(m *Model) (tea.Model, tea.Cmd) {
	row := m.state.Requests.Rows[m.state.Cursor]
	return m, m.dispatch(panel.AcceptClicked{FriendshipID: row.Request.FriendshipID})
}

func shortcutFocusSearch(m *Model) (tea.Model, tea.Cmd) {
	m.focusSearch()
	return m, nil
}

// clipboardCopiedMsg reports the outcome of a clipboard write.
type clipboardCopiedMsg struct {
	Err error
}

func shortcutCopy(m *Model) (tea.Model, tea.Cmd) {
	text := panel.Transcript(m.state)
	if text == "" {
		return m, m.ShowFlash("Nothing to copy yet", ui.FlashWarning)
	}
	return m, func() tea.Msg {
		return clipboardCopiedMsg{Err: clipboard.WriteText(text)}
	}
}

func shortcutHelp(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(ui.NewHelpState(m.getApplicableHelpSections(ShortcutRegistry)))
	return m, nil
}

// shortcutRefresh refetches whatever the visible panel shows.
func shortcutRefresh(m *Model) (tea.Model, tea.Cmd) {
	switch m.state.Panel {
	case panel.ListView:
		return m, m.dispatch(panel.ShowMessages{})
	case panel.FriendRequests:
		return m, m.dispatch(panel.ShowNewFriends{})
	case panel.ConversationDetail:
		return m, m.dispatch(panel.OpenConversation{FriendID: m.state.Active})
	}
	return m, nil
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}
