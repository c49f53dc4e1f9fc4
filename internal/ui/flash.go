package ui

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// FlashType selects the icon and color of a flash message.
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// DefaultFlashDuration is how long a flash stays in the footer.
const DefaultFlashDuration = 4 * time.Second

// flashTickInterval is how often an active flash checks for expiry.
const flashTickInterval = 500 * time.Millisecond

// FlashMessage is a transient footer message.
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration.
func (f *FlashMessage) IsExpired() bool {
	return time.Since(f.CreatedAt) > f.Duration
}

// FlashTickMsg drives flash expiry.
type FlashTickMsg time.Time

// FlashTick returns a command that sends a FlashTickMsg after a short delay
func FlashTick() tea.Cmd {
	return tea.Tick(flashTickInterval, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

func flashIcon(t FlashType) string {
	switch t {
	case FlashError:
		return "✕"
	case FlashWarning:
		return "⚠"
	case FlashSuccess:
		return "✓"
	default:
		return "ℹ"
	}
}

func flashStyle(t FlashType) func(...string) string {
	switch t {
	case FlashError:
		return FlashErrorStyle.Render
	case FlashWarning:
		return FlashWarningStyle.Render
	case FlashSuccess:
		return FlashSuccessStyle.Render
	default:
		return FlashInfoStyle.Render
	}
}
