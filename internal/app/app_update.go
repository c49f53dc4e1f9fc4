package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/dinechat/internal/keys"
	"github.com/zhubert/dinechat/internal/logger"
	"github.com/zhubert/dinechat/internal/panel"
	"github.com/zhubert/dinechat/internal/ui"
)

// Update handles messages. This is the core Bubble Tea update function that routes
// all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		if m.state.Panel == panel.ConversationDetail {
			m.refreshHistory(false)
		}
		return m, nil

	case tea.FocusMsg:
		m.windowFocused = true
		return m, nil

	case tea.BlurMsg:
		m.windowFocused = false
		return m, nil

	case PanelResultMsg:
		logger.ComponentLogger("app").Debug("backend result", "event", eventName(msg.Event))
		return m, m.dispatch(msg.Event)

	case ui.FlashTickMsg:
		return m, m.handleFlashTick()

	case ui.HelpShortcutTriggeredMsg:
		m.modal.Hide()
		_, cmd, _ := m.ExecuteShortcut(msg.Key)
		return m, cmd

	case clipboardCopiedMsg:
		if msg.Err != nil {
			logger.ComponentLogger("app").Warn("copy failed", "error", msg.Err)
			return m, m.ShowFlash("Could not copy to clipboard", ui.FlashError)
		}
		return m, m.ShowFlash("Conversation copied to clipboard", ui.FlashSuccess)

	case tea.KeyPressMsg:
		if result, cmd := m.handleKeyPress(msg); result != nil {
			return result, cmd
		}
		// Not a shortcut: falls through to the focused widget
	}

	return m, m.updateFocusedWidget(msg)
}

// handleKeyPress handles all keyboard input.
// Returns (model, cmd) if the key was handled, or (nil, nil) if it should fall through
// to the focused widget.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// ctrl+c always quits, even while typing
	if key == keys.CtrlC {
		return m, tea.Quit
	}

	if m.modal.IsVisible() {
		help, _ := m.modal.State.(*ui.HelpState)
		filtering := help != nil && help.IsFiltering()
		if !filtering && (key == keys.Escape || key == "?" || key == "q") {
			m.modal.Hide()
			return m, nil
		}
		_, cmd := m.modal.Update(msg)
		return m, cmd
	}

	if m.state.Composer.Open {
		switch key {
		case keys.Enter:
			return m, m.dispatch(panel.ReplySubmitted{Content: m.composer.Value()})
		case keys.Escape:
			return m, m.dispatch(panel.ComposerClosed{})
		}
		return nil, nil
	}

	if m.searchFocused {
		switch key {
		case keys.Enter:
			m.blurSearch()
			return m, m.dispatch(panel.SearchSubmitted{Query: m.search.Value()})
		case keys.Escape:
			m.blurSearch()
			return m, nil
		}
		return nil, nil
	}

	if result, cmd, handled := m.ExecuteShortcut(key); handled {
		return result, cmd
	}
	return nil, nil
}

// updateFocusedWidget forwards msg to whichever widget takes input now.
func (m *Model) updateFocusedWidget(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case m.state.Composer.Open:
		m.composer, cmd = m.composer.Update(msg)
	case m.searchFocused:
		m.search, cmd = m.search.Update(msg)
	case m.state.Panel == panel.ConversationDetail:
		m.history, cmd = m.history.Update(msg)
	}
	return cmd
}

// eventName names a result event for the debug log.
func eventName(ev panel.Event) string {
	switch ev.(type) {
	case panel.ConversationsLoaded:
		return "conversations"
	case panel.ConversationLoaded:
		return "conversation"
	case panel.RequestsLoaded:
		return "requests"
	case panel.AcceptFinished:
		return "accept"
	case panel.SearchFinished:
		return "search"
	case panel.AddFinished:
		return "add-friend"
	case panel.ReplyFinished:
		return "reply"
	case panel.AvatarLoaded:
		return "avatar"
	default:
		return "other"
	}
}
