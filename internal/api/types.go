package api

// DefaultAvatar is the placeholder the site serves for users without a picture.
const DefaultAvatar = "/static/images/default_avatar.png"

// AvatarOrDefault returns url, or DefaultAvatar when url is empty.
func AvatarOrDefault(url string) string {
	if url == "" {
		return DefaultAvatar
	}
	return url
}

// FriendRequestStatus is the lifecycle state of a friendship row.
type FriendRequestStatus string

const (
	StatusPending  FriendRequestStatus = "Pending"
	StatusAccepted FriendRequestStatus = "Accepted"
	StatusRejected FriendRequestStatus = "Rejected"
)

// ConversationSummary is the per-friend preview shown in the messages list.
type ConversationSummary struct {
	FriendID       int64  `json:"friend_id" validate:"gt=0"`
	FriendUsername string `json:"friend_username"`
	FriendAvatar   string `json:"friend_avatar"`
	LastMessage    string `json:"content"`
	LastMessageAt  string `json:"created_at"`
}

// ConversationList is the reply to a conversation list fetch.
type ConversationList struct {
	Summaries []ConversationSummary `json:"messages" validate:"dive"`
	Empty     bool                  `json:"empty"`
}

// Message is one entry of a conversation history, oldest first.
type Message struct {
	SenderID       int64  `json:"sender_id,omitempty"`
	SenderUsername string `json:"sender_username"`
	SenderAvatar   string `json:"sender_avatar"`
	Content        string `json:"content"`
	CreatedAt      string `json:"created_at"`
}

// ConversationDetail is the reply to a conversation history fetch.
type ConversationDetail struct {
	FriendUsername string    `json:"friend_username"`
	FriendAvatar   string    `json:"friend_avatar"`
	Messages       []Message `json:"messages"`
	Empty          bool      `json:"empty"`
}

// FriendRequest is an incoming friendship addressed to the current customer.
type FriendRequest struct {
	FriendshipID int64               `json:"friendship_id" validate:"gt=0"`
	Username     string              `json:"username"`
	Avatar       string              `json:"avatar"`
	Status       FriendRequestStatus `json:"status" validate:"oneof=Pending Accepted Rejected"`
}

type friendRequestsResponse struct {
	Requests []FriendRequest `json:"requests" validate:"dive"`
}

// AcceptResult is the reply to accepting a friend request.
type AcceptResult struct {
	Status  FriendRequestStatus `json:"status"`
	Message string              `json:"message"`
}

// SearchResult is the reply to a username lookup.
type SearchResult struct {
	Found      bool   `json:"found"`
	CustomerID int64  `json:"customer_id" validate:"required_if=Found true"`
	Username   string `json:"username"`
	Avatar     string `json:"avatar"`
	Message    string `json:"message"`
}

type searchRequest struct {
	Username string `json:"username"`
}

type addFriendRequest struct {
	CustomerID int64 `json:"customer_id"`
	FriendID   int64 `json:"friend_id"`
}

// SendRequest is the body of a new message.
type SendRequest struct {
	Content    string `json:"content" validate:"required"`
	SenderID   int64  `json:"sender_id" validate:"gt=0"`
	ReceiverID int64  `json:"receiver_id" validate:"gt=0"`
}

// SendResult is the reply to sending a message.
type SendResult struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	Content        string `json:"content"`
	CreatedAt      string `json:"created_at"`
	SenderUsername string `json:"sender_username"`
	SenderAvatar   string `json:"sender_avatar"`
}

type avatarResponse struct {
	Avatar string `json:"avatar"`
}

// Friend is an accepted friendship as seen from the current customer.
type Friend struct {
	CustomerID int64  `json:"customer_id" validate:"gt=0"`
	Username   string `json:"username"`
	Avatar     string `json:"avatar"`
}

type friendsResponse struct {
	Friends []Friend `json:"friends" validate:"dive"`
}

type messageResponse struct {
	Message string `json:"message"`
}
