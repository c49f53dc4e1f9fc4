// Package clipboard writes text to the system clipboard.
package clipboard

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"

	"github.com/zhubert/dinechat/internal/logger"
)

var (
	mu          sync.Mutex
	initialized bool
	writer      = systemWrite
)

// Init initializes the clipboard. Must be called before other functions.
// This is safe to call multiple times.
func Init() error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked()
}

func initLocked() error {
	if initialized {
		return nil
	}
	if err := clipboard.Init(); err != nil {
		logger.ComponentLogger("clipboard").Warn("failed to initialize", "error", err)
		return fmt.Errorf("failed to initialize clipboard: %w", err)
	}
	initialized = true
	logger.ComponentLogger("clipboard").Debug("initialized")
	return nil
}

func systemWrite(text string) error {
	if err := initLocked(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

// SetWriter replaces the clipboard writer (for testing).
func SetWriter(fn func(text string) error) {
	mu.Lock()
	defer mu.Unlock()
	writer = fn
}

// ResetWriter restores the system clipboard writer.
func ResetWriter() {
	mu.Lock()
	defer mu.Unlock()
	writer = systemWrite
}

// WriteText copies text to the clipboard.
func WriteText(text string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := writer(text); err != nil {
		return err
	}
	logger.ComponentLogger("clipboard").Debug("copied text", "bytes", len(text))
	return nil
}
