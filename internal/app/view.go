package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/dinechat/internal/panel"
	"github.com/zhubert/dinechat/internal/ui"
)

// updateSizes recalculates and applies dimensions to all UI components
func (m *Model) updateSizes() {
	if m.width == 0 || m.height == 0 {
		return
	}
	l := ui.NewLayout(m.width, m.height, m.state.Composer.Open, m.state.Panel == panel.AddFriend)
	m.layout = l

	m.header.SetWidth(l.Width)
	m.footer.SetWidth(l.Width)
	m.search.SetWidth(max(l.InputWidth()-searchButtonWidth, 1))
	m.composer.SetWidth(max(l.Width-ui.BorderSize-ui.InputPaddingWidth, 1))
	m.history.SetWidth(l.InnerWidth())
	m.history.SetHeight(l.ContentHeight())
}

// View renders the app
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.ReportFocus = true
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.modal.IsVisible() {
		return m.modal.View(m.width, m.height)
	}

	pv := panel.Render(m.state)
	m.header.SetTabs(pv.Tabs)
	m.footer.SetContext(m.state.Panel, m.state.Composer.Open, m.searchFocused)

	l := m.layout
	var content string
	switch {
	case pv.Panel == panel.ConversationDetail:
		content = m.history.View()
	case pv.Search != nil:
		content = lipgloss.JoinVertical(lipgloss.Left,
			ui.RenderSearchBar(pv.Search, m.search.View(), m.searchFocused, l.InnerWidth()),
			ui.RenderRows(pv, l.InnerWidth(), l.ContentHeight()),
		)
	default:
		content = ui.RenderRows(pv, l.InnerWidth(), l.ContentHeight())
	}

	title := pv.Title
	if title == "" {
		title = "Conversation"
	}
	// With nothing to show yet the body itself says loading
	loading := pv.Loading && len(pv.Rows) > 0

	parts := []string{
		m.header.View(),
		ui.RenderPanel(title, loading, content, l.Width, l.BodyHeight),
	}
	if pv.Composer != nil {
		parts = append(parts, ui.RenderComposer(pv.Composer, m.composer.View(), l.Width))
	}
	parts = append(parts, m.footer.View())

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
