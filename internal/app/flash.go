package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/dinechat/internal/ui"
)

// ShowFlash displays a flash message in the footer and returns a command to start the auto-dismiss timer
func (m *Model) ShowFlash(text string, flashType ui.FlashType) tea.Cmd {
	m.footer.SetFlash(text, flashType)
	return ui.FlashTick()
}

// handleFlashTick clears an expired flash or keeps ticking while one shows.
func (m *Model) handleFlashTick() tea.Cmd {
	if m.footer.ClearIfExpired() {
		return nil
	}
	if m.footer.HasFlash() {
		return ui.FlashTick()
	}
	return nil
}
