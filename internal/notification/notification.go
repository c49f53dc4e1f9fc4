// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/zhubert/dinechat/internal/logger"
)

// AppName is the title of every notification.
const AppName = "dinechat"

// notifier is swapped out by tests.
var notifier = beeep.Notify

// SetNotifier replaces the function used to deliver notifications.
func SetNotifier(fn func(title, message string, icon any) error) {
	notifier = fn
}

// ResetNotifier restores beeep as the notifier.
func ResetNotifier() {
	notifier = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	log := logger.ComponentLogger("notification")
	log.Debug("sending notification", "title", title, "message", message)
	// Empty icon: beeep picks the platform default
	err := notifier(title, message, "")
	if err != nil {
		log.Warn("failed to send notification", "error", err)
	}
	return err
}

// FriendAccepted tells the user a friend request was accepted.
func FriendAccepted(text string) error {
	return Send(AppName, text)
}
