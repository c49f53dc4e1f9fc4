package panel

import "github.com/zhubert/dinechat/internal/api"

// Event is anything that can drive a transition.
type Event interface{ event() }

// User intents

// ShowMessages activates the Messages tab. Re-entrant: always refetches.
type ShowMessages struct{}

// ShowNewFriends activates the New Friends tab.
type ShowNewFriends struct{}

// ShowAddFriends activates the Add Friends tab. Nothing is fetched until a search.
type ShowAddFriends struct{}

// OpenConversation opens one friend's history.
type OpenConversation struct{ FriendID int64 }

// Back leaves the conversation history for the list.
type Back struct{}

// MoveCursor moves the row selection of the visible list.
type MoveCursor struct{ Delta int }

// Activate acts on the selected row: open, accept or add.
type Activate struct{}

// AcceptClicked accepts one friend request.
type AcceptClicked struct{ FriendshipID int64 }

// SearchSubmitted looks up a customer by username.
type SearchSubmitted struct{ Query string }

// AddClicked sends a friend request to a search result.
type AddClicked struct{ TargetID int64 }

// ComposerToggled opens or closes the reply overlay.
type ComposerToggled struct{}

// ComposerClosed closes the reply overlay, keeping the draft.
type ComposerClosed struct{}

// ReplySubmitted sends the composer's content to the open conversation.
type ReplySubmitted struct{ Content string }

func (ShowMessages) event()     {}
func (ShowNewFriends) event()   {}
func (ShowAddFriends) event()   {}
func (OpenConversation) event() {}
func (Back) event()             {}
func (MoveCursor) event()       {}
func (Activate) event()         {}
func (AcceptClicked) event()    {}
func (SearchSubmitted) event()  {}
func (AddClicked) event()       {}
func (ComposerToggled) event()  {}
func (ComposerClosed) event()   {}
func (ReplySubmitted) event()   {}

// Backend results

// ConversationsLoaded carries the reply to LoadConversations.
type ConversationsLoaded struct {
	Token Token
	List  api.ConversationList
	Err   error
}

// ConversationLoaded carries the reply to LoadConversation.
type ConversationLoaded struct {
	Token  Token
	Detail api.ConversationDetail
	Err    error
}

// RequestsLoaded carries the reply to LoadRequests.
type RequestsLoaded struct {
	Token    Token
	Requests []api.FriendRequest
	Err      error
}

// AcceptFinished carries the reply to AcceptRequest.
type AcceptFinished struct {
	FriendshipID int64
	Err          error
}

// SearchFinished carries the reply to SearchCustomer.
type SearchFinished struct {
	Token  Token
	Result api.SearchResult
	Err    error
}

// AddFinished carries the reply to SendFriendRequest.
type AddFinished struct {
	TargetID int64
	Message  string
	Err      error
}

// ReplyFinished carries the reply to SendMessage.
type ReplyFinished struct {
	ReceiverID int64
	Err        error
}

// AvatarLoaded carries the reply to LoadAvatar.
type AvatarLoaded struct {
	Avatar string
	Err    error
}

func (ConversationsLoaded) event() {}
func (ConversationLoaded) event()  {}
func (RequestsLoaded) event()      {}
func (AcceptFinished) event()      {}
func (SearchFinished) event()      {}
func (AddFinished) event()         {}
func (ReplyFinished) event()       {}
func (AvatarLoaded) event()        {}
