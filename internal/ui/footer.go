package ui

import (
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/dinechat/internal/panel"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// Footer represents the bottom footer bar with keybindings or a flash message
type Footer struct {
	width         int
	panel         panel.Panel
	composerOpen  bool
	searchFocused bool
	flashMessage  *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{}
}

// SetContext updates which bindings apply
func (f *Footer) SetContext(p panel.Panel, composerOpen, searchFocused bool) {
	f.panel = p
	f.composerOpen = composerOpen
	f.searchFocused = searchFocused
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetFlash shows a flash message for DefaultFlashDuration
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows a flash message for d
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, d time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  d,
	}
}

// ClearFlash removes the flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash message is showing
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// ClearIfExpired clears an expired flash and reports whether it did
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

// Bindings returns the shortcuts for the current context
func (f *Footer) Bindings() []KeyBinding {
	switch {
	case f.composerOpen:
		return []KeyBinding{
			{Key: "enter", Desc: "send"},
			{Key: "ctrl+j", Desc: "newline"},
			{Key: "esc", Desc: "close"},
		}
	case f.searchFocused:
		return []KeyBinding{
			{Key: "enter", Desc: "search"},
			{Key: "esc", Desc: "cancel"},
		}
	}

	var b []KeyBinding
	switch f.panel {
	case panel.ListView:
		b = []KeyBinding{
			{Key: "j/k", Desc: "move"},
			{Key: "enter", Desc: "open"},
		}
	case panel.FriendRequests:
		b = []KeyBinding{
			{Key: "j/k", Desc: "move"},
			{Key: "a/enter", Desc: "accept"},
		}
	case panel.AddFriend:
		b = []KeyBinding{
			{Key: "/", Desc: "search"},
			{Key: "enter", Desc: "add"},
		}
	case panel.ConversationDetail:
		b = []KeyBinding{
			{Key: "r", Desc: "reply"},
			{Key: "y", Desc: "copy"},
			{Key: "pgup/dn", Desc: "scroll"},
			{Key: "esc", Desc: "back"},
		}
	}
	return append(b,
		KeyBinding{Key: "1/2/3", Desc: "tabs"},
		KeyBinding{Key: "?", Desc: "help"},
		KeyBinding{Key: "q", Desc: "quit"},
	)
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashMessage != nil {
		msg := f.flashMessage
		render := flashStyle(msg.Type)
		content := render(flashIcon(msg.Type) + " " + msg.Text)
		return FooterStyle.Width(f.width).Render(ansi.Truncate(content, max(f.width-InputPaddingWidth, 1), "…"))
	}

	var parts []string
	for _, b := range f.Bindings() {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}
	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")
	return FooterStyle.Width(f.width).Render(ansi.Truncate(content, max(f.width-InputPaddingWidth, 1), "…"))
}
