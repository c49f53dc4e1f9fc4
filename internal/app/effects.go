package app

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/dinechat/internal/logger"
	"github.com/zhubert/dinechat/internal/notification"
	"github.com/zhubert/dinechat/internal/panel"
	"github.com/zhubert/dinechat/internal/ui"
)

// dispatch feeds ev through the panel state machine, brings the widgets in
// line with the new state and returns the commands for its effects.
func (m *Model) dispatch(ev panel.Event) tea.Cmd {
	prev := m.state
	next, effects := panel.Update(prev, ev)
	m.state = next
	m.syncWidgets(prev)
	return m.runEffects(effects)
}

func (m *Model) runEffects(effects []panel.Effect) tea.Cmd {
	var cmds []tea.Cmd
	for _, e := range effects {
		if cmd := m.runEffect(e); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// runEffect turns one effect into a command. Backend calls run off the
// event loop and come back as PanelResultMsg; the client bounds each call
// with the configured timeout.
func (m *Model) runEffect(e panel.Effect) tea.Cmd {
	b := m.backend
	ctx := context.Background()

	switch e := e.(type) {
	case panel.LoadConversations:
		return func() tea.Msg {
			list, err := b.Conversations(ctx, e.CustomerID)
			return PanelResultMsg{panel.ConversationsLoaded{Token: e.Token, List: list, Err: err}}
		}
	case panel.LoadConversation:
		return func() tea.Msg {
			detail, err := b.Conversation(ctx, e.FriendID)
			return PanelResultMsg{panel.ConversationLoaded{Token: e.Token, Detail: detail, Err: err}}
		}
	case panel.LoadRequests:
		return func() tea.Msg {
			reqs, err := b.FriendRequests(ctx, e.CustomerID)
			return PanelResultMsg{panel.RequestsLoaded{Token: e.Token, Requests: reqs, Err: err}}
		}
	case panel.AcceptRequest:
		return func() tea.Msg {
			_, err := b.AcceptFriend(ctx, e.FriendshipID)
			return PanelResultMsg{panel.AcceptFinished{FriendshipID: e.FriendshipID, Err: err}}
		}
	case panel.SearchCustomer:
		return func() tea.Msg {
			res, err := b.SearchCustomer(ctx, e.Query)
			return PanelResultMsg{panel.SearchFinished{Token: e.Token, Result: res, Err: err}}
		}
	case panel.SendFriendRequest:
		return func() tea.Msg {
			msg, err := b.AddFriend(ctx, e.CustomerID, e.TargetID)
			return PanelResultMsg{panel.AddFinished{TargetID: e.TargetID, Message: msg, Err: err}}
		}
	case panel.SendMessage:
		return func() tea.Msg {
			_, err := b.SendMessage(ctx, e.Request)
			return PanelResultMsg{panel.ReplyFinished{ReceiverID: e.Request.ReceiverID, Err: err}}
		}
	case panel.LoadAvatar:
		return func() tea.Msg {
			avatar, err := b.Avatar(ctx, e.CustomerID)
			return PanelResultMsg{panel.AvatarLoaded{Avatar: avatar, Err: err}}
		}
	case panel.Notify:
		return m.notify(e)
	}
	logger.ComponentLogger("app").Warn("unhandled effect", "effect", e)
	return nil
}

// notify shows n in the footer and, for desktop-worthy events while the
// terminal is in the background, as a desktop notification.
func (m *Model) notify(n panel.Notify) tea.Cmd {
	var flashType ui.FlashType
	switch n.Level {
	case panel.LevelSuccess:
		flashType = ui.FlashSuccess
	case panel.LevelWarning:
		flashType = ui.FlashWarning
	case panel.LevelError:
		flashType = ui.FlashError
	default:
		flashType = ui.FlashInfo
	}
	cmd := m.ShowFlash(n.Text, flashType)

	if n.Desktop && !m.windowFocused && m.config.GetNotificationsEnabled() {
		text := n.Text
		return tea.Batch(cmd, func() tea.Msg {
			_ = notification.FriendAccepted(text)
			return nil
		})
	}
	return cmd
}

// syncWidgets brings the bubbles widgets in line with the state after a
// transition from prev.
func (m *Model) syncWidgets(prev panel.State) {
	next := m.state

	if next.Panel != prev.Panel || next.Composer.Open != prev.Composer.Open {
		m.updateSizes()
	}

	if next.Panel == panel.AddFriend && prev.Panel != panel.AddFriend {
		m.search.Reset()
		m.focusSearch()
	}
	if next.Panel != panel.AddFriend {
		m.blurSearch()
	}

	if next.Active != prev.Active {
		m.composer.Reset()
	}
	// A successful send closes the overlay and clears the draft
	if prev.Composer.Sending && !next.Composer.Sending && !next.Composer.Open {
		m.composer.Reset()
	}
	switch {
	case next.Composer.Open && !prev.Composer.Open:
		m.composer.Focus()
	case !next.Composer.Open && prev.Composer.Open:
		m.composer.Blur()
	}

	if next.Panel == panel.ConversationDetail {
		m.refreshHistory(next.Active != prev.Active ||
			len(next.Detail.Messages) != len(prev.Detail.Messages))
	}
}

// refreshHistory re-renders the conversation into the viewport.
func (m *Model) refreshHistory(gotoBottom bool) {
	v := panel.Render(m.state)
	m.history.SetContent(ui.RenderHistory(v, m.history.Width()))
	if gotoBottom {
		m.history.GotoBottom()
	}
}

func (m *Model) focusSearch() {
	m.searchFocused = true
	m.search.Focus()
}

func (m *Model) blurSearch() {
	m.searchFocused = false
	m.search.Blur()
}
