package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/dinechat/internal/panel"
)

// Header represents the top header bar: title, tab bar and the signed-in account
type Header struct {
	width   int
	tabs    []panel.Tab
	account string
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetTabs sets the tab bar
func (h *Header) SetTabs(tabs []panel.Tab) {
	h.tabs = tabs
}

// SetAccount sets the account label shown on the right
func (h *Header) SetAccount(customerID int64) {
	h.account = fmt.Sprintf("customer #%d", customerID)
}

// View renders the header
func (h *Header) View() string {
	title := HeaderTitleStyle.Render("dinechat")

	var tabs []string
	for i, tab := range h.tabs {
		label := TabKeyStyle.Render(fmt.Sprintf("%d", i+1)) + " " + tab.Label
		if tab.Active {
			tabs = append(tabs, TabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, TabStyle.Render(label))
		}
	}
	left := title + " " + strings.Join(tabs, "")

	right := ""
	if h.account != "" {
		right = HeaderAccountStyle.Render(h.account)
	}

	gap := h.width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		// Drop the account label before truncating the tabs
		right = ""
		gap = h.width - ansi.StringWidth(left)
	}
	if gap < 0 {
		return ansi.Truncate(left, h.width, "…")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), right)
}
