// Package api is the HTTP client for the food-ordering site's customer
// messaging endpoints.
package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/zhubert/dinechat/internal/config"
	perrors "github.com/zhubert/dinechat/internal/errors"
	"github.com/zhubert/dinechat/internal/logger"
)

// maxResponseBytes caps how much of a reply body is read.
const maxResponseBytes = 1 << 20

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary
	validate = validator.New()
)

// Client talks to the messaging backend. Every call is bounded by the
// configured timeout in addition to the caller's context.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cookie     string
	timeout    time.Duration
}

// NewClient creates a client from the application config.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(cfg.GetServerURL(), "/"),
		cookie:     cfg.GetSessionCookie(),
		timeout:    cfg.GetRequestTimeout(),
	}
}

// NewClientWithHTTP creates a client with a custom HTTP client and base URL (for testing).
func NewClientWithHTTP(baseURL string, httpClient *http.Client, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = config.DefaultRequestTimeout
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    timeout,
	}
}

// Conversations fetches the latest message exchanged with every friend.
func (c *Client) Conversations(ctx context.Context, customerID int64) (ConversationList, error) {
	var out ConversationList
	err := c.do(ctx, "api.Conversations", http.MethodGet, fmt.Sprintf("/messages/%d", customerID), nil, &out)
	if err != nil {
		return ConversationList{}, err
	}
	for i := range out.Summaries {
		out.Summaries[i].FriendAvatar = AvatarOrDefault(out.Summaries[i].FriendAvatar)
	}
	if len(out.Summaries) == 0 {
		out.Empty = true
	}
	return out, nil
}

// Conversation fetches the full history with one friend. The backend
// resolves the current customer from the session.
func (c *Client) Conversation(ctx context.Context, friendID int64) (ConversationDetail, error) {
	var out ConversationDetail
	err := c.do(ctx, "api.Conversation", http.MethodGet, fmt.Sprintf("/message_details/%d", friendID), nil, &out)
	if err != nil {
		return ConversationDetail{}, err
	}
	for i := range out.Messages {
		out.Messages[i].SenderAvatar = AvatarOrDefault(out.Messages[i].SenderAvatar)
	}
	if out.FriendAvatar == "" && !out.Empty {
		out.FriendAvatar = DefaultAvatar
	}
	if len(out.Messages) == 0 {
		out.Empty = true
	}
	return out, nil
}

// FriendRequests fetches the friend requests addressed to customerID.
func (c *Client) FriendRequests(ctx context.Context, customerID int64) ([]FriendRequest, error) {
	var out friendRequestsResponse
	err := c.do(ctx, "api.FriendRequests", http.MethodGet, fmt.Sprintf("/new_friends/%d", customerID), nil, &out)
	if err != nil {
		return nil, err
	}
	for i := range out.Requests {
		out.Requests[i].Avatar = AvatarOrDefault(out.Requests[i].Avatar)
	}
	return out.Requests, nil
}

// AcceptFriend accepts a friend request. A request that was already accepted
// is reported as success, so retries are harmless.
func (c *Client) AcceptFriend(ctx context.Context, friendshipID int64) (AcceptResult, error) {
	const op = perrors.Op("api.AcceptFriend")
	var out AcceptResult
	if err := c.do(ctx, op, http.MethodPost, fmt.Sprintf("/accept_friend/%d", friendshipID), nil, &out); err != nil {
		return AcceptResult{}, err
	}
	if out.Status != StatusAccepted {
		msg := out.Message
		if msg == "" {
			msg = "Friend request could not be accepted"
		}
		return out, perrors.Rejected(op, msg)
	}
	return out, nil
}

// SearchCustomer looks up a customer by exact username. A miss is not an
// error; check SearchResult.Found.
func (c *Client) SearchCustomer(ctx context.Context, username string) (SearchResult, error) {
	var out SearchResult
	err := c.do(ctx, "api.SearchCustomer", http.MethodPost, "/search_customer", searchRequest{Username: username}, &out)
	if err != nil {
		return SearchResult{}, err
	}
	if out.Found {
		out.Avatar = AvatarOrDefault(out.Avatar)
	}
	return out, nil
}

// AddFriend sends a friend request from customerID to friendID and returns
// the server's confirmation text.
func (c *Client) AddFriend(ctx context.Context, customerID, friendID int64) (string, error) {
	var out messageResponse
	body := addFriendRequest{CustomerID: customerID, FriendID: friendID}
	if err := c.do(ctx, "api.AddFriend", http.MethodPost, "/add_friend", body, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// SendMessage posts a new message. A reply with success=false is returned
// as an application error.
func (c *Client) SendMessage(ctx context.Context, req SendRequest) (SendResult, error) {
	const op = perrors.Op("api.SendMessage")
	if err := validate.Struct(req); err != nil {
		return SendResult{}, perrors.E(op, perrors.KindInvalid, err)
	}
	var out SendResult
	if err := c.do(ctx, op, http.MethodPost, "/send_message", req, &out); err != nil {
		return SendResult{}, err
	}
	if !out.Success {
		msg := out.Message
		if msg == "" {
			msg = "Failed to send message!"
		}
		return out, perrors.Rejected(op, msg)
	}
	return out, nil
}

// Avatar fetches a customer's avatar URL, falling back to DefaultAvatar.
func (c *Client) Avatar(ctx context.Context, customerID int64) (string, error) {
	var out avatarResponse
	if err := c.do(ctx, "api.Avatar", http.MethodGet, fmt.Sprintf("/get_customer_avatar/%d", customerID), nil, &out); err != nil {
		return "", err
	}
	return AvatarOrDefault(out.Avatar), nil
}

// Friends fetches the accepted friends of customerID.
func (c *Client) Friends(ctx context.Context, customerID int64) ([]Friend, error) {
	var out friendsResponse
	if err := c.do(ctx, "api.Friends", http.MethodGet, fmt.Sprintf("/friends/%d", customerID), nil, &out); err != nil {
		return nil, err
	}
	for i := range out.Friends {
		out.Friends[i].Avatar = AvatarOrDefault(out.Friends[i].Avatar)
	}
	return out.Friends, nil
}

// do performs one request. Non-2xx replies that carry a "message" become
// application errors with that text; other failures are transport errors.
func (c *Client) do(ctx context.Context, op perrors.Op, method, path string, body, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	requestID := uuid.NewString()
	log := logger.WithRequest("api", requestID)

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return perrors.E(op, perrors.KindInvalid, "failed to encode request", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return perrors.E(op, perrors.KindInvalid, "failed to create request", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.cookie != "" {
		req.Header.Set("Cookie", c.cookie)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("request failed", "method", method, "path", path, "error", err)
		return perrors.RequestFailed(op, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return perrors.RequestFailed(op, err)
	}
	log.Debug("request finished", "method", method, "path", path, "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var failure messageResponse
		if json.Unmarshal(data, &failure) == nil && failure.Message != "" {
			return perrors.Rejected(op, failure.Message)
		}
		return perrors.BadStatus(op, resp.StatusCode)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return perrors.DecodeFailed(op, err)
	}
	if err := validate.Struct(out); err != nil {
		return perrors.DecodeFailed(op, err)
	}
	return nil
}
