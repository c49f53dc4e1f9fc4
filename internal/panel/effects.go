package panel

import "github.com/zhubert/dinechat/internal/api"

// Effect describes work the caller must perform after a transition.
type Effect interface{ effect() }

// LoadConversations fetches the conversation list.
type LoadConversations struct {
	Token      Token
	CustomerID int64
}

// LoadConversation fetches one conversation's history.
type LoadConversation struct {
	Token    Token
	FriendID int64
}

// LoadRequests fetches incoming friend requests.
type LoadRequests struct {
	Token      Token
	CustomerID int64
}

// AcceptRequest accepts a friend request.
type AcceptRequest struct {
	FriendshipID int64
}

// SearchCustomer looks up a username.
type SearchCustomer struct {
	Token Token
	Query string
}

// SendFriendRequest asks TargetID to become a friend of CustomerID.
type SendFriendRequest struct {
	CustomerID int64
	TargetID   int64
}

// SendMessage posts a reply.
type SendMessage struct {
	Request api.SendRequest
}

// LoadAvatar fetches the current customer's own avatar for the composer.
type LoadAvatar struct {
	CustomerID int64
}

// Level is the severity of a Notify effect.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarning
	LevelError
)

// Notify surfaces a message to the user. Desktop marks events worth a
// desktop notification when the terminal is not focused.
type Notify struct {
	Level   Level
	Text    string
	Desktop bool
}

func (LoadConversations) effect() {}
func (LoadConversation) effect()  {}
func (LoadRequests) effect()      {}
func (AcceptRequest) effect()     {}
func (SearchCustomer) effect()    {}
func (SendFriendRequest) effect() {}
func (SendMessage) effect()       {}
func (LoadAvatar) effect()        {}
func (Notify) effect()            {}
