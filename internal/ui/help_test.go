package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func sampleSections() []HelpSection {
	return []HelpSection{
		{Title: "Navigation", Shortcuts: []HelpShortcut{
			{Key: "1", Desc: "Messages"},
			{Key: "2", Desc: "New Friends"},
		}},
		{Title: "General", Shortcuts: []HelpShortcut{
			{Key: "q", Desc: "Quit"},
		}},
	}
}

func TestNewHelpState_StartsOnFirstShortcut(t *testing.T) {
	s := NewHelpState(sampleSections())
	sc := s.SelectedShortcut()
	if sc == nil {
		t.Fatal("expected a shortcut to be selected, got a section header")
	}
	if sc.Key != "1" {
		t.Errorf("selected %q, want %q", sc.Key, "1")
	}
	if s.IsFiltering() {
		t.Error("should not start in filter mode")
	}
}

func TestHelpState_EnterTriggersSelected(t *testing.T) {
	s := NewHelpState(sampleSections())

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter on a shortcut should return a command")
	}
	msg, ok := cmd().(HelpShortcutTriggeredMsg)
	if !ok {
		t.Fatalf("cmd() returned %T, want HelpShortcutTriggeredMsg", cmd())
	}
	if msg.Key != "1" {
		t.Errorf("triggered %q, want %q", msg.Key, "1")
	}
}

func TestHelpState_RenderListsSections(t *testing.T) {
	s := NewHelpState(sampleSections())
	s.SetSize(ModalWidth, HelpModalMaxVisible+4)

	view := stripANSI(s.Render())
	for _, want := range []string{"Keyboard Shortcuts", "Navigation", "New Friends", "General", "Quit", "Esc: close"} {
		if !strings.Contains(view, want) {
			t.Errorf("help view missing %q:\n%s", want, view)
		}
	}
}

func TestModal_ShowHide(t *testing.T) {
	m := NewModal()
	if m.IsVisible() {
		t.Fatal("new modal should be hidden")
	}
	if m.View(80, 24) != "" {
		t.Error("hidden modal should render nothing")
	}

	m.Show(NewHelpState(sampleSections()))
	if !m.IsVisible() {
		t.Fatal("modal should be visible after Show")
	}
	view := m.View(80, 24)
	if !strings.Contains(stripANSI(view), "Keyboard Shortcuts") {
		t.Error("modal view should contain the help title")
	}
	if got := len(strings.Split(view, "\n")); got != 24 {
		t.Errorf("modal view has %d lines, want 24", got)
	}

	m.Hide()
	if m.IsVisible() {
		t.Error("modal should be hidden after Hide")
	}
}
