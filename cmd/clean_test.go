package cmd

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"lowercase y", "y\n", true},
		{"uppercase Y", "Y\n", true},
		{"lowercase yes", "yes\n", true},
		{"uppercase YES", "YES\n", true},
		{"mixed case Yes", "Yes\n", true},
		{"lowercase n", "n\n", false},
		{"lowercase no", "no\n", false},
		{"empty input", "\n", false},
		{"random text", "maybe\n", false},
		{"y with spaces", "  y  \n", true},
		{"yes with spaces", "  yes  \n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := strings.NewReader(tt.input)
			result := confirm(reader, "Test?")
			if result != tt.expected {
				t.Errorf("confirm(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestConfirm_EOF(t *testing.T) {
	// Test with empty reader (simulates EOF)
	reader := strings.NewReader("")
	result := confirm(reader, "Test?")
	if result != false {
		t.Errorf("confirm(EOF) = %v, want false", result)
	}
}

func TestConfirm_ErrorReader(t *testing.T) {
	// Test with a reader that returns an error
	reader := &errorReader{}
	result := confirm(reader, "Test?")
	if result != false {
		t.Errorf("confirm(error) = %v, want false", result)
	}
}

// errorReader is a reader that always returns an error
type errorReader struct{}

func (e *errorReader) Read(p []byte) (n int, err error) {
	return 0, io.ErrUnexpectedEOF
}

func writeConfig(t *testing.T, home string) string {
	t.Helper()
	path := filepath.Join(home, ".dinechat", "config.json")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(`{"server_url":"http://localhost:5000","customer_id":7}`), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunClean_AbortKeepsConfig(t *testing.T) {
	home := isolateHome(t)
	path := writeConfig(t, home)

	origYes, origConfig, origLog := skipConfirm, cleanConfig, logPath
	defer func() { skipConfirm, cleanConfig, logPath = origYes, origConfig, origLog }()
	skipConfirm, cleanConfig = false, true
	logPath = filepath.Join(home, "debug.log")

	if err := runCleanWithReader(strings.NewReader("n\n")); err != nil {
		t.Fatalf("runCleanWithReader() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config should survive an aborted clean: %v", err)
	}
}

func TestRunClean_ConfirmRemovesConfig(t *testing.T) {
	home := isolateHome(t)
	path := writeConfig(t, home)

	origYes, origConfig, origLog := skipConfirm, cleanConfig, logPath
	defer func() { skipConfirm, cleanConfig, logPath = origYes, origConfig, origLog }()
	skipConfirm, cleanConfig = false, true
	logPath = filepath.Join(home, "debug.log")

	if err := os.WriteFile(logPath, []byte("log"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := runCleanWithReader(strings.NewReader("y\n")); err != nil {
		t.Fatalf("runCleanWithReader() error = %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("config should be removed, stat err = %v", err)
	}
	if _, err := os.Stat(logPath); !os.IsNotExist(err) {
		t.Errorf("log should be removed, stat err = %v", err)
	}
}

func TestRunClean_NothingToClean(t *testing.T) {
	home := isolateHome(t)

	origConfig, origLog := cleanConfig, logPath
	defer func() { cleanConfig, logPath = origConfig, origLog }()
	cleanConfig = true
	logPath = filepath.Join(home, "missing.log")

	// No prompt is read when there is nothing to remove
	if err := runCleanWithReader(&errorReader{}); err != nil {
		t.Fatalf("runCleanWithReader() error = %v", err)
	}
}
