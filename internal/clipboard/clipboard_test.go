package clipboard

import (
	"errors"
	"os"
	"testing"

	"github.com/zhubert/dinechat/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)
	os.Exit(m.Run())
}

func TestWriteText_UsesWriter(t *testing.T) {
	var got string
	SetWriter(func(text string) error {
		got = text
		return nil
	})
	defer ResetWriter()

	if err := WriteText("bob: hi"); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}
	if got != "bob: hi" {
		t.Errorf("writer got %q", got)
	}
}

func TestWriteText_PropagatesError(t *testing.T) {
	SetWriter(func(string) error { return errors.New("no display") })
	defer ResetWriter()

	if err := WriteText("x"); err == nil {
		t.Error("expected error from writer")
	}
}
