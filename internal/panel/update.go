package panel

import (
	"fmt"
	"strings"

	"github.com/zhubert/dinechat/internal/api"
	perrors "github.com/zhubert/dinechat/internal/errors"
)

// User-facing texts.
const (
	TextListFailed      = "Error loading messages. Please try again later."
	TextDetailFailed    = "Error loading conversation. Please try again later."
	TextRequestsFailed  = "Error loading new friend requests. Please try again later."
	TextAcceptFailed    = "Error accepting friend request. Please try again later."
	TextSearchFailed    = "Error searching for customer. Please try again later."
	TextAddFailed       = "Error adding friend. Please try again later."
	TextSendFailed      = "Failed to send message, please try again."
	TextAvatarFailed    = "Could not load your avatar."
	TextEmptyReply      = "Message cannot be empty!"
	TextEmptyQuery      = "Enter a username to search."
	TextNotFound        = "This customer could not be found"
	TextSelfAdd         = "You cannot add yourself as a friend."
	TextMessageSent     = "Message sent."
	TextFriendRequested = "Friend request sent."
)

// Update applies ev to s and returns the next state and the effects the
// caller must run. Events that make no sense for the visible panel are
// ignored.
func Update(s State, ev Event) (State, []Effect) {
	switch ev := ev.(type) {
	case ShowMessages:
		return s.enter(ListView)
	case ShowNewFriends:
		return s.enter(FriendRequests)
	case ShowAddFriends:
		return s.enter(AddFriend)
	case OpenConversation:
		return s.openConversation(ev.FriendID)
	case Back:
		if s.Panel != ConversationDetail {
			return s, nil
		}
		return s.enter(ListView)
	case MoveCursor:
		return s.moveCursor(ev.Delta), nil
	case Activate:
		return s.activate()
	case AcceptClicked:
		return s.accept(ev.FriendshipID)
	case SearchSubmitted:
		return s.search(ev.Query)
	case AddClicked:
		return s.addFriend(ev.TargetID)
	case ComposerToggled:
		return s.toggleComposer()
	case ComposerClosed:
		s.Composer.Open = false
		return s, nil
	case ReplySubmitted:
		return s.submitReply(ev.Content)

	case ConversationsLoaded:
		return s.conversationsLoaded(ev)
	case ConversationLoaded:
		return s.conversationLoaded(ev)
	case RequestsLoaded:
		return s.requestsLoaded(ev)
	case AcceptFinished:
		return s.acceptFinished(ev)
	case SearchFinished:
		return s.searchFinished(ev)
	case AddFinished:
		return s.addFinished(ev)
	case ReplyFinished:
		return s.replyFinished(ev)
	case AvatarLoaded:
		return s.avatarLoaded(ev)
	}
	return s, nil
}

// enter hides whatever is visible, shows p and issues p's fetch, if any.
func (s State) enter(p Panel) (State, []Effect) {
	if p != ConversationDetail {
		s.Active = 0
		s.Detail = DetailData{}
		s.Composer = ComposerData{}
	}
	s.Panel = p
	s.Cursor = 0

	switch p {
	case ListView:
		s.List = ListData{Loading: true}
		tok := s.issue(ListView)
		return s, []Effect{LoadConversations{Token: tok, CustomerID: s.CustomerID}}
	case FriendRequests:
		s.Requests = RequestsData{Loading: true}
		tok := s.issue(FriendRequests)
		return s, []Effect{LoadRequests{Token: tok, CustomerID: s.CustomerID}}
	case AddFriend:
		s.Search = SearchData{}
		// Invalidate any search still in flight from an earlier visit.
		s.issue(AddFriend)
		return s, nil
	case ConversationDetail:
		return s.fetchDetail(s.Detail)
	}
	return s, nil
}

// fetchDetail marks the active conversation loading and issues its fetch.
// Previously loaded messages stay until the reply replaces them.
func (s State) fetchDetail(d DetailData) (State, []Effect) {
	d.Loading = true
	d.Err = ""
	s.Detail = d
	tok := s.issue(ConversationDetail)
	return s, []Effect{LoadConversation{Token: tok, FriendID: s.Active}}
}

func (s State) openConversation(friendID int64) (State, []Effect) {
	if friendID <= 0 {
		return s, nil
	}
	d := DetailData{}
	if sum, ok := s.summaryFor(friendID); ok {
		d.FriendUsername = sum.FriendUsername
		d.FriendAvatar = sum.FriendAvatar
	}
	if s.Panel != ConversationDetail || s.Active != friendID {
		s.Composer = ComposerData{}
	}
	s.Active = friendID
	s.Detail = d
	s.Panel = ConversationDetail
	s.Cursor = 0
	return s.fetchDetail(d)
}

func (s State) moveCursor(delta int) State {
	n := s.rowCount()
	if n == 0 {
		s.Cursor = 0
		return s
	}
	s.Cursor = clamp(s.Cursor+delta, 0, n-1)
	return s
}

func (s State) activate() (State, []Effect) {
	n := s.rowCount()
	if n == 0 || s.Cursor >= n {
		return s, nil
	}
	switch s.Panel {
	case ListView:
		return s.openConversation(s.List.Summaries[s.Cursor].FriendID)
	case FriendRequests:
		return s.accept(s.Requests.Rows[s.Cursor].Request.FriendshipID)
	case AddFriend:
		return s.addFriend(s.Search.Result.CustomerID)
	}
	return s, nil
}

func (s State) accept(friendshipID int64) (State, []Effect) {
	if s.Panel != FriendRequests {
		return s, nil
	}
	i := s.requestIndex(friendshipID)
	if i < 0 {
		return s, nil
	}
	row := s.Requests.Rows[i]
	if row.Control != ControlReady || s.isAccepting(friendshipID) {
		return s, nil
	}
	row.Control = ControlProcessing
	s.Requests.Rows = s.withRow(i, row)
	s.accepting = append(s.withoutAccepting(friendshipID), friendshipID)
	return s, []Effect{AcceptRequest{FriendshipID: friendshipID}}
}

func (s State) search(query string) (State, []Effect) {
	if s.Panel != AddFriend || s.Search.Searching {
		return s, nil
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return s, []Effect{Notify{Level: LevelWarning, Text: TextEmptyQuery}}
	}
	s.Search = SearchData{Query: query, Searching: true}
	tok := s.issue(AddFriend)
	return s, []Effect{SearchCustomer{Token: tok, Query: query}}
}

func (s State) addFriend(targetID int64) (State, []Effect) {
	if s.Panel != AddFriend || s.adding != 0 {
		return s, nil
	}
	res := s.Search.Result
	if res == nil || res.CustomerID != targetID {
		return s, nil
	}
	if targetID == s.CustomerID {
		return s, []Effect{Notify{Level: LevelWarning, Text: TextSelfAdd}}
	}
	s.adding = targetID
	return s, []Effect{SendFriendRequest{CustomerID: s.CustomerID, TargetID: targetID}}
}

func (s State) toggleComposer() (State, []Effect) {
	if s.Panel != ConversationDetail || s.Active == 0 {
		return s, nil
	}
	s.Composer.Open = !s.Composer.Open
	if !s.Composer.Open || s.OwnAvatar != "" || s.avatarPending {
		return s, nil
	}
	s.avatarPending = true
	return s, []Effect{LoadAvatar{CustomerID: s.CustomerID}}
}

func (s State) submitReply(content string) (State, []Effect) {
	if s.Panel != ConversationDetail || !s.Composer.Open || s.Composer.Sending {
		return s, nil
	}
	s.Composer.Draft = content
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return s, []Effect{Notify{Level: LevelWarning, Text: TextEmptyReply}}
	}
	s.Composer.Sending = true
	return s, []Effect{SendMessage{Request: api.SendRequest{
		Content:    trimmed,
		SenderID:   s.CustomerID,
		ReceiverID: s.Active,
	}}}
}

func (s State) conversationsLoaded(ev ConversationsLoaded) (State, []Effect) {
	if !s.current(ev.Token) {
		return s, nil
	}
	if ev.Err != nil {
		s.List = ListData{Err: perrors.UserMessage(ev.Err, TextListFailed)}
		return s, nil
	}
	if ev.List.Empty {
		s.List = ListData{Empty: true}
	} else {
		s.List = ListData{Summaries: ev.List.Summaries, Empty: len(ev.List.Summaries) == 0}
	}
	s = s.moveCursor(0)
	return s, nil
}

func (s State) conversationLoaded(ev ConversationLoaded) (State, []Effect) {
	if !s.current(ev.Token) {
		return s, nil
	}
	d := s.Detail
	d.Loading = false
	if ev.Err != nil {
		d.Err = perrors.UserMessage(ev.Err, TextDetailFailed)
		s.Detail = d
		return s, nil
	}
	if ev.Detail.FriendUsername != "" {
		d.FriendUsername = ev.Detail.FriendUsername
	}
	if ev.Detail.FriendAvatar != "" {
		d.FriendAvatar = ev.Detail.FriendAvatar
	}
	d.Messages = ev.Detail.Messages
	d.Empty = ev.Detail.Empty || len(d.Messages) == 0
	if ev.Detail.Empty {
		d.Messages = nil
	}
	d.Err = ""
	s.Detail = d
	return s, nil
}

func (s State) requestsLoaded(ev RequestsLoaded) (State, []Effect) {
	if !s.current(ev.Token) {
		return s, nil
	}
	if ev.Err != nil {
		s.Requests = RequestsData{Err: perrors.UserMessage(ev.Err, TextRequestsFailed)}
		return s, nil
	}
	rows := make([]RequestRow, 0, len(ev.Requests))
	for _, req := range ev.Requests {
		row := RequestRow{Request: req}
		switch {
		case req.Status == api.StatusAccepted:
			row.Control = ControlDone
		case s.isAccepting(req.FriendshipID):
			row.Control = ControlProcessing
		}
		rows = append(rows, row)
	}
	s.Requests = RequestsData{Rows: rows}
	s = s.moveCursor(0)
	return s, nil
}

func (s State) acceptFinished(ev AcceptFinished) (State, []Effect) {
	s.accepting = s.withoutAccepting(ev.FriendshipID)
	i := -1
	if s.Panel == FriendRequests {
		i = s.requestIndex(ev.FriendshipID)
	}

	if ev.Err != nil {
		if i >= 0 && s.Requests.Rows[i].Control == ControlProcessing {
			row := s.Requests.Rows[i]
			row.Control = ControlReady
			s.Requests.Rows = s.withRow(i, row)
		}
		return s, []Effect{Notify{Level: LevelError, Text: perrors.UserMessage(ev.Err, TextAcceptFailed)}}
	}

	text := "Friend request accepted."
	if i >= 0 {
		row := s.Requests.Rows[i]
		row.Control = ControlDone
		row.Request.Status = api.StatusAccepted
		s.Requests.Rows = s.withRow(i, row)
		text = fmt.Sprintf("You are now friends with %s.", row.Request.Username)
	}
	effects := []Effect{Notify{Level: LevelSuccess, Text: text, Desktop: true}}

	// A new friendship may add a conversation; refetch only if it is showing.
	// A hidden list is refetched anyway the next time it is entered.
	if s.Panel == ListView {
		s.List.Loading = true
		tok := s.issue(ListView)
		effects = append(effects, LoadConversations{Token: tok, CustomerID: s.CustomerID})
	}
	return s, effects
}

func (s State) searchFinished(ev SearchFinished) (State, []Effect) {
	if !s.current(ev.Token) {
		return s, nil
	}
	s.Search.Searching = false
	s.Search.Result = nil
	s.Search.NotFound = ""
	s.Search.Err = ""
	s.Cursor = 0
	switch {
	case ev.Err != nil:
		s.Search.Err = perrors.UserMessage(ev.Err, TextSearchFailed)
	case !ev.Result.Found:
		s.Search.NotFound = TextNotFound
	default:
		res := ev.Result
		s.Search.Result = &res
	}
	return s, nil
}

func (s State) addFinished(ev AddFinished) (State, []Effect) {
	if ev.TargetID == s.adding {
		s.adding = 0
	}
	if ev.Err != nil {
		return s, []Effect{Notify{Level: LevelError, Text: perrors.UserMessage(ev.Err, TextAddFailed)}}
	}
	text := ev.Message
	if text == "" {
		text = TextFriendRequested
	}
	return s, []Effect{Notify{Level: LevelSuccess, Text: text}}
}

func (s State) replyFinished(ev ReplyFinished) (State, []Effect) {
	stale := s.Panel != ConversationDetail || s.Active != ev.ReceiverID
	if ev.Err != nil {
		if !stale {
			s.Composer.Sending = false
		}
		return s, []Effect{Notify{Level: LevelError, Text: perrors.UserMessage(ev.Err, TextSendFailed)}}
	}
	notice := Notify{Level: LevelSuccess, Text: TextMessageSent}
	if stale {
		return s, []Effect{notice}
	}
	s.Composer = ComposerData{}
	s, effects := s.fetchDetail(s.Detail)
	return s, append([]Effect{notice}, effects...)
}

func (s State) avatarLoaded(ev AvatarLoaded) (State, []Effect) {
	s.avatarPending = false
	if ev.Err != nil {
		s.OwnAvatar = api.DefaultAvatar
		return s, []Effect{Notify{Level: LevelWarning, Text: TextAvatarFailed}}
	}
	s.OwnAvatar = api.AvatarOrDefault(ev.Avatar)
	return s, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
