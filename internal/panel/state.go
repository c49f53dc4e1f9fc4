package panel

import "github.com/zhubert/dinechat/internal/api"

// Panel identifies the visible panel.
type Panel int

const (
	ListView Panel = iota
	FriendRequests
	AddFriend
	ConversationDetail

	numPanels
)

func (p Panel) String() string {
	switch p {
	case ListView:
		return "messages"
	case FriendRequests:
		return "new-friends"
	case AddFriend:
		return "add-friends"
	case ConversationDetail:
		return "conversation"
	default:
		return "unknown"
	}
}

// Token identifies one issued fetch. Friend is set for conversation fetches.
type Token struct {
	Panel  Panel
	Seq    uint64
	Friend int64
}

// Control is the state of a per-row action button.
type Control int

const (
	ControlReady Control = iota
	ControlProcessing
	ControlDone
)

// ListData is the conversation list panel's data.
type ListData struct {
	Loading   bool
	Empty     bool
	Summaries []api.ConversationSummary
	Err       string
}

// DetailData is the conversation history panel's data.
type DetailData struct {
	FriendUsername string
	FriendAvatar   string
	Loading        bool
	Empty          bool
	Messages       []api.Message
	Err            string
}

// RequestRow is one incoming friend request and its accept control.
type RequestRow struct {
	Request api.FriendRequest
	Control Control
}

// RequestsData is the friend requests panel's data.
type RequestsData struct {
	Loading bool
	Rows    []RequestRow
	Err     string
}

// SearchData is the add-friend panel's data.
type SearchData struct {
	Query     string
	Searching bool
	Result    *api.SearchResult
	NotFound  string
	Err       string
}

// ComposerData is the reply overlay.
type ComposerData struct {
	Open    bool
	Draft   string
	Sending bool
}

// State is the whole messaging page. Treat it as a value: Update never
// mutates the slices of the State it was given.
type State struct {
	CustomerID int64
	Panel      Panel
	// Active is the friend whose history is open, zero when none.
	Active int64
	Cursor int

	List     ListData
	Detail   DetailData
	Requests RequestsData
	Search   SearchData
	Composer ComposerData

	OwnAvatar     string
	avatarPending bool

	// Requests still in flight. They outlive the panel data so that a
	// reload or a new search cannot re-arm a control early.
	accepting []int64
	adding    int64

	seq    uint64
	latest [numPanels]uint64
}

// New returns the initial state, showing the conversation list, and the
// fetch that fills it.
func New(customerID int64) (State, []Effect) {
	s := State{CustomerID: customerID}
	return s.enter(ListView)
}

// issue records a new fetch for p and returns its token.
func (s *State) issue(p Panel) Token {
	s.seq++
	s.latest[p] = s.seq
	tok := Token{Panel: p, Seq: s.seq}
	if p == ConversationDetail {
		tok.Friend = s.Active
	}
	return tok
}

// current reports whether a result for tok may still be applied.
func (s State) current(tok Token) bool {
	if tok.Panel < 0 || tok.Panel >= numPanels {
		return false
	}
	if s.Panel != tok.Panel || s.latest[tok.Panel] != tok.Seq {
		return false
	}
	if tok.Panel == ConversationDetail && tok.Friend != s.Active {
		return false
	}
	return true
}

// rowCount is the number of selectable rows in the visible panel.
func (s State) rowCount() int {
	switch s.Panel {
	case ListView:
		return len(s.List.Summaries)
	case FriendRequests:
		return len(s.Requests.Rows)
	case AddFriend:
		if s.Search.Result != nil {
			return 1
		}
	}
	return 0
}

// Adding reports whether a friend request is waiting for the backend.
func (s State) Adding() bool {
	return s.adding != 0
}

func (s State) isAccepting(friendshipID int64) bool {
	for _, id := range s.accepting {
		if id == friendshipID {
			return true
		}
	}
	return false
}

// withoutAccepting returns a copy of the in-flight accepts minus friendshipID.
func (s State) withoutAccepting(friendshipID int64) []int64 {
	var out []int64
	for _, id := range s.accepting {
		if id != friendshipID {
			out = append(out, id)
		}
	}
	return out
}

func (s State) requestIndex(friendshipID int64) int {
	for i, row := range s.Requests.Rows {
		if row.Request.FriendshipID == friendshipID {
			return i
		}
	}
	return -1
}

// withRow returns a copy of the request rows with row i replaced.
func (s State) withRow(i int, row RequestRow) []RequestRow {
	rows := make([]RequestRow, len(s.Requests.Rows))
	copy(rows, s.Requests.Rows)
	rows[i] = row
	return rows
}

func (s State) summaryFor(friendID int64) (api.ConversationSummary, bool) {
	for _, sum := range s.List.Summaries {
		if sum.FriendID == friendID {
			return sum, true
		}
	}
	return api.ConversationSummary{}, false
}
