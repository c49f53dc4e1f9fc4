package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/dinechat/internal/api"
	"github.com/zhubert/dinechat/internal/panel"
)

func requestsView() panel.View {
	return panel.View{
		Panel: panel.FriendRequests,
		Title: "New Friends",
		Rows: []panel.Row{
			{Key: 42, Title: "alice", Avatar: api.DefaultAvatar, Meta: "Pending", Selected: true,
				Action: &panel.Action{Label: panel.LabelAccept}},
			{Key: 43, Title: "erin", Avatar: "/e.png", Meta: "Accepted",
				Action: &panel.Action{Label: panel.LabelAccepted, Disabled: true}},
		},
	}
}

func TestStatusText(t *testing.T) {
	tests := []struct {
		name string
		view panel.View
		want string
	}{
		{"error wins", panel.View{Error: "Error loading messages.", Empty: "x"}, "Error loading messages."},
		{"loading", panel.View{Loading: true}, panel.LoadingText},
		{"empty", panel.View{Empty: panel.EmptyRequests}, panel.EmptyRequests},
		{"not found", panel.View{Search: &panel.SearchView{NotFound: panel.TextNotFound}}, panel.TextNotFound},
		{"search hint", panel.View{Search: &panel.SearchView{Label: panel.LabelSearch}}, SearchHint},
		{"rows", requestsView(), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripANSI(StatusText(tt.view)); got != tt.want {
				t.Errorf("StatusText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderRows_ActionsAndSelection(t *testing.T) {
	out := RenderRows(requestsView(), 60, 10)
	lines := strings.Split(stripANSI(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "› ◯ alice") || !strings.HasSuffix(lines[0], panel.LabelAccept+" ") {
		t.Errorf("first row = %q", lines[0])
	}
	if !strings.Contains(lines[1], "◉ erin") || !strings.Contains(lines[1], panel.LabelAccepted) {
		t.Errorf("second row = %q", lines[1])
	}
	for i, line := range strings.Split(out, "\n") {
		if w := ansi.StringWidth(line); w != 60 {
			t.Errorf("line %d width = %d, want 60", i, w)
		}
	}
}

func TestRenderRows_ScrollsToSelection(t *testing.T) {
	var rows []panel.Row
	for i := 0; i < 20; i++ {
		rows = append(rows, panel.Row{Key: int64(i), Title: "friend", Body: "preview", Selected: i == 15})
	}
	out := stripANSI(RenderRows(panel.View{Rows: rows}, 40, 6))
	lines := strings.Split(out, "\n")
	if len(lines) != 6 {
		t.Fatalf("lines = %d, want 6", len(lines))
	}
	if !strings.Contains(out, "›") {
		t.Error("selected row scrolled out of view")
	}
}

func TestRenderHistory(t *testing.T) {
	v := panel.View{Rows: []panel.Row{
		{Title: "bob", Body: "hi there", Meta: "2024-05-01 12:00"},
		{Title: "me", Body: "hello", Mine: true},
	}}
	out := stripANSI(RenderHistory(v, 40))
	for _, want := range []string{"bob", "hi there", "2024-05-01 12:00", "hello"} {
		if !strings.Contains(out, want) {
			t.Errorf("history missing %q:\n%s", want, out)
		}
	}

	empty := stripANSI(RenderHistory(panel.View{Empty: panel.EmptyDetail}, 40))
	if empty != panel.EmptyDetail {
		t.Errorf("empty history = %q", empty)
	}
}

func TestRenderSearchBar(t *testing.T) {
	sv := &panel.SearchView{Label: panel.LabelSearching, Disabled: true}
	out := RenderSearchBar(sv, "> nobody", true, 50)
	if !strings.Contains(stripANSI(out), panel.LabelSearching) {
		t.Errorf("search bar missing label:\n%s", out)
	}
	if h := len(strings.Split(out, "\n")); h != SearchBarHeight {
		t.Errorf("search bar height = %d, want %d", h, SearchBarHeight)
	}
	for _, line := range strings.Split(out, "\n") {
		if w := ansi.StringWidth(line); w != 50 {
			t.Errorf("line width = %d, want 50", w)
		}
	}
}

func TestRenderComposer(t *testing.T) {
	cv := &panel.ComposerView{To: "bob", Avatar: api.DefaultAvatar, Label: panel.LabelSend}
	out := RenderComposer(cv, "line1\nline2\nline3", 60)
	plain := stripANSI(out)
	if !strings.Contains(plain, "Reply to bob") || !strings.Contains(plain, panel.LabelSend) {
		t.Errorf("composer missing parts:\n%s", plain)
	}
	if h := len(strings.Split(out, "\n")); h != ComposerHeight {
		t.Errorf("composer height = %d, want %d", h, ComposerHeight)
	}
}

func TestRenderPanel_ExactSize(t *testing.T) {
	content := strings.Repeat("a very long line that will not fit in the box\n", 30)
	out := RenderPanel("Messages", true, content, 40, 10)
	lines := strings.Split(out, "\n")
	if len(lines) != 10 {
		t.Fatalf("height = %d, want 10", len(lines))
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 40 {
			t.Errorf("line %d width = %d, want 40", i, w)
		}
	}
	if !strings.Contains(stripANSI(lines[1]), "Messages") {
		t.Errorf("title line = %q", lines[1])
	}
}
