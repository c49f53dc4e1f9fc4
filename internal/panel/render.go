package panel

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/zhubert/dinechat/internal/api"
)

// Empty-state texts.
const (
	EmptyConversations = "You haven't received any messages"
	EmptyRequests      = "No new friend requests"
	EmptyDetail        = "No messages found"
	LoadingText        = "Loading..."
)

// Control labels.
const (
	LabelAccept     = "Accept"
	LabelProcessing = "Processing..."
	LabelAccepted   = "Accepted"
	LabelSearch     = "Search"
	LabelSearching  = "Searching..."
	LabelAdd        = "Add"
	LabelSend       = "Send"
	LabelSending    = "Sending..."
)

// PreviewWidth bounds a conversation preview in terminal cells.
const PreviewWidth = 60

// View is a pure description of what the messaging page shows.
type View struct {
	Panel    Panel
	Tabs     []Tab
	Title    string
	Loading  bool
	Empty    string
	Error    string
	Rows     []Row
	Search   *SearchView
	Composer *ComposerView
}

// Tab is one entry of the tab bar.
type Tab struct {
	Label  string
	Active bool
}

// Row is one line item. Action is nil for rows without a button.
type Row struct {
	Key      int64
	Avatar   string
	Title    string
	Body     string
	Meta     string
	Selected bool
	Mine     bool
	Action   *Action
}

// Action is a per-row button.
type Action struct {
	Label    string
	Disabled bool
}

// SearchView is the add-friend search box.
type SearchView struct {
	Query    string
	Label    string
	Disabled bool
	NotFound string
}

// ComposerView is the reply overlay.
type ComposerView struct {
	To       string
	Avatar   string
	Draft    string
	Label    string
	Disabled bool
}

// Render describes s. It reads only s.
func Render(s State) View {
	v := View{Panel: s.Panel, Tabs: tabs(s.Panel)}
	switch s.Panel {
	case ListView:
		renderList(s, &v)
	case FriendRequests:
		renderRequests(s, &v)
	case AddFriend:
		renderSearch(s, &v)
	case ConversationDetail:
		renderDetail(s, &v)
	}
	return v
}

func tabs(p Panel) []Tab {
	// The conversation history belongs to the Messages tab.
	if p == ConversationDetail {
		p = ListView
	}
	return []Tab{
		{Label: "Messages", Active: p == ListView},
		{Label: "New Friends", Active: p == FriendRequests},
		{Label: "Add Friends", Active: p == AddFriend},
	}
}

func renderList(s State, v *View) {
	v.Title = "Messages"
	v.Loading = s.List.Loading
	v.Error = s.List.Err
	for i, sum := range s.List.Summaries {
		v.Rows = append(v.Rows, Row{
			Key:      sum.FriendID,
			Avatar:   api.AvatarOrDefault(sum.FriendAvatar),
			Title:    sum.FriendUsername,
			Body:     runewidth.Truncate(sum.LastMessage, PreviewWidth, "..."),
			Meta:     sum.LastMessageAt,
			Selected: i == s.Cursor,
		})
	}
	if !v.Loading && v.Error == "" && s.List.Empty {
		v.Empty = EmptyConversations
	}
}

func renderRequests(s State, v *View) {
	v.Title = "New Friends"
	v.Loading = s.Requests.Loading
	v.Error = s.Requests.Err
	for i, row := range s.Requests.Rows {
		v.Rows = append(v.Rows, Row{
			Key:      row.Request.FriendshipID,
			Avatar:   api.AvatarOrDefault(row.Request.Avatar),
			Title:    row.Request.Username,
			Meta:     string(row.Request.Status),
			Selected: i == s.Cursor,
			Action:   acceptAction(row.Control),
		})
	}
	if !v.Loading && v.Error == "" && len(v.Rows) == 0 {
		v.Empty = EmptyRequests
	}
}

func acceptAction(c Control) *Action {
	switch c {
	case ControlProcessing:
		return &Action{Label: LabelProcessing, Disabled: true}
	case ControlDone:
		return &Action{Label: LabelAccepted, Disabled: true}
	default:
		return &Action{Label: LabelAccept}
	}
}

func renderSearch(s State, v *View) {
	v.Title = "Add Friends"
	v.Error = s.Search.Err
	sv := &SearchView{Query: s.Search.Query, Label: LabelSearch, NotFound: s.Search.NotFound}
	if s.Search.Searching {
		sv.Label = LabelSearching
		sv.Disabled = true
	}
	v.Search = sv
	if res := s.Search.Result; res != nil {
		action := &Action{Label: LabelAdd}
		if s.adding != 0 {
			action = &Action{Label: LabelProcessing, Disabled: true}
		}
		v.Rows = []Row{{
			Key:      res.CustomerID,
			Avatar:   api.AvatarOrDefault(res.Avatar),
			Title:    res.Username,
			Selected: true,
			Action:   action,
		}}
	}
}

func renderDetail(s State, v *View) {
	d := s.Detail
	v.Title = d.FriendUsername
	v.Loading = d.Loading
	v.Error = d.Err
	for _, m := range d.Messages {
		v.Rows = append(v.Rows, Row{
			Key:    m.SenderID,
			Avatar: api.AvatarOrDefault(m.SenderAvatar),
			Title:  m.SenderUsername,
			Body:   m.Content,
			Meta:   m.CreatedAt,
			Mine:   mine(s, m),
		})
	}
	if !v.Loading && v.Error == "" && d.Empty {
		v.Empty = EmptyDetail
	}
	if s.Composer.Open {
		cv := &ComposerView{
			To:     d.FriendUsername,
			Avatar: api.AvatarOrDefault(s.OwnAvatar),
			Draft:  s.Composer.Draft,
			Label:  LabelSend,
		}
		if s.Composer.Sending {
			cv.Label = LabelSending
			cv.Disabled = true
		}
		v.Composer = cv
	}
}

// mine reports whether m was sent by the current customer. History
// entries carry no sender id, so in a two party thread any sender other
// than the friend is the customer.
func mine(s State, m api.Message) bool {
	if m.SenderID != 0 {
		return m.SenderID == s.CustomerID
	}
	return s.Detail.FriendUsername != "" && m.SenderUsername != s.Detail.FriendUsername
}

// Transcript returns the open conversation as plain text, one message per
// line, or "" when no history is loaded.
func Transcript(s State) string {
	if s.Panel != ConversationDetail || len(s.Detail.Messages) == 0 {
		return ""
	}
	var b strings.Builder
	for _, m := range s.Detail.Messages {
		if m.CreatedAt != "" {
			b.WriteString("[" + m.CreatedAt + "] ")
		}
		b.WriteString(m.SenderUsername + ": " + m.Content + "\n")
	}
	return b.String()
}
