package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	perrors "github.com/zhubert/dinechat/internal/errors"
	"github.com/zhubert/dinechat/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)
	code := m.Run()
	logger.Reset()
	os.Exit(code)
}

// newTestClient starts a server running handler and returns a client for it.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClientWithHTTP(server.URL+"/", server.Client(), 2*time.Second)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	io.WriteString(w, body)
}

func TestClient_Conversations(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/messages/7" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("expected X-Request-ID header")
		}
		writeJSON(w, http.StatusOK, `{"empty": false, "messages": [
			{"friend_id": 3, "friend_username": "alice", "friend_avatar": "/a.png", "content": "hi", "created_at": "2024-01-02 10:00:00"},
			{"friend_id": 4, "friend_username": "bob", "friend_avatar": null, "content": "yo", "created_at": "2024-01-01 09:00:00"}
		]}`)
	})

	list, err := client.Conversations(context.Background(), 7)
	if err != nil {
		t.Fatalf("Conversations() failed: %v", err)
	}
	if list.Empty {
		t.Error("expected non-empty list")
	}
	if len(list.Summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(list.Summaries))
	}
	if list.Summaries[0].FriendID != 3 || list.Summaries[0].LastMessage != "hi" {
		t.Errorf("unexpected first summary: %+v", list.Summaries[0])
	}
	if list.Summaries[1].FriendAvatar != DefaultAvatar {
		t.Errorf("missing avatar should default, got %q", list.Summaries[1].FriendAvatar)
	}
}

func TestClient_Conversations_Empty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"messages": [], "empty": true}`)
	})

	list, err := client.Conversations(context.Background(), 7)
	if err != nil {
		t.Fatalf("Conversations() failed: %v", err)
	}
	if !list.Empty || len(list.Summaries) != 0 {
		t.Errorf("expected empty list, got %+v", list)
	}
}

func TestClient_Conversations_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, `{"error": "Internal Server Error"}`)
	})

	_, err := client.Conversations(context.Background(), 7)
	if !perrors.Is(err, perrors.KindNetwork) {
		t.Errorf("expected KindNetwork, got %v", err)
	}
}

func TestClient_Conversations_InvalidRecord(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"empty": false, "messages": [{"friend_id": 0, "friend_username": "ghost"}]}`)
	})

	_, err := client.Conversations(context.Background(), 7)
	if !perrors.Is(err, perrors.KindDecode) {
		t.Errorf("expected KindDecode, got %v", err)
	}
}

func TestClient_Conversation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/message_details/3" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		writeJSON(w, http.StatusOK, `{"friend_username": "alice", "friend_avatar": null, "empty": false, "messages": [
			{"sender_username": "alice", "sender_avatar": null, "content": "first", "created_at": "2024-01-01 09:00:00"},
			{"sender_username": "me", "sender_avatar": "/me.png", "content": "second", "created_at": "2024-01-01 09:01:00"}
		]}`)
	})

	detail, err := client.Conversation(context.Background(), 3)
	if err != nil {
		t.Fatalf("Conversation() failed: %v", err)
	}
	if detail.FriendUsername != "alice" || detail.FriendAvatar != DefaultAvatar {
		t.Errorf("unexpected friend header: %+v", detail)
	}
	if len(detail.Messages) != 2 || detail.Messages[0].Content != "first" || detail.Messages[1].Content != "second" {
		t.Errorf("messages should keep server order, got %+v", detail.Messages)
	}
	if detail.Messages[0].SenderAvatar != DefaultAvatar {
		t.Errorf("missing sender avatar should default, got %q", detail.Messages[0].SenderAvatar)
	}
}

func TestClient_FriendRequests(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/new_friends/7" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		writeJSON(w, http.StatusOK, `{"requests": [
			{"friendship_id": 42, "username": "carol", "avatar": "", "status": "Pending"},
			{"friendship_id": 43, "username": "dave", "avatar": "/d.png", "status": "Accepted"}
		]}`)
	})

	requests, err := client.FriendRequests(context.Background(), 7)
	if err != nil {
		t.Fatalf("FriendRequests() failed: %v", err)
	}
	if len(requests) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(requests))
	}
	if requests[0].FriendshipID != 42 || requests[0].Status != StatusPending || requests[0].Avatar != DefaultAvatar {
		t.Errorf("unexpected first request: %+v", requests[0])
	}
	if requests[1].Status != StatusAccepted {
		t.Errorf("unexpected second status: %q", requests[1].Status)
	}
}

func TestClient_FriendRequests_UnknownStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"requests": [{"friendship_id": 42, "username": "carol", "status": "Maybe"}]}`)
	})

	_, err := client.FriendRequests(context.Background(), 7)
	if !perrors.Is(err, perrors.KindDecode) {
		t.Errorf("expected KindDecode, got %v", err)
	}
}

func TestClient_AcceptFriend(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantErr  bool
		wantText string
	}{
		{"accepted", http.StatusOK, `{"message": "Friend request accepted successfully!", "status": "Accepted"}`, false, ""},
		{"already accepted", http.StatusOK, `{"message": "Friend request already accepted", "status": "Accepted"}`, false, ""},
		{"not found", http.StatusNotFound, `{"message": "Friend request not found"}`, true, "Friend request not found"},
		{"odd status", http.StatusOK, `{"message": "Request was withdrawn", "status": "Rejected"}`, true, "Request was withdrawn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost || r.URL.Path != "/accept_friend/42" {
					t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
				}
				writeJSON(w, tt.status, tt.body)
			})

			_, err := client.AcceptFriend(context.Background(), 42)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AcceptFriend() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !perrors.Is(err, perrors.KindApplication) {
					t.Errorf("expected KindApplication, got %v", err)
				}
				if got := perrors.UserMessage(err, "fallback"); got != tt.wantText {
					t.Errorf("UserMessage() = %q, want %q", got, tt.wantText)
				}
			}
		})
	}
}

func TestClient_SearchCustomer(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/search_customer" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("expected JSON content type, got %q", r.Header.Get("Content-Type"))
		}
		var body searchRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if body.Username == "nobody" {
			writeJSON(w, http.StatusOK, `{"found": false, "message": "The customer could not be found."}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"found": true, "username": "alice", "avatar": null, "customer_id": 3}`)
	})

	found, err := client.SearchCustomer(context.Background(), "alice")
	if err != nil {
		t.Fatalf("SearchCustomer() failed: %v", err)
	}
	if !found.Found || found.CustomerID != 3 || found.Avatar != DefaultAvatar {
		t.Errorf("unexpected search result: %+v", found)
	}

	missing, err := client.SearchCustomer(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("SearchCustomer() failed: %v", err)
	}
	if missing.Found {
		t.Error("expected not found")
	}
}

func TestClient_AddFriend(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body addFriendRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if body.CustomerID != 7 || body.FriendID != 3 {
			t.Errorf("unexpected body %+v", body)
		}
		if atomic.AddInt32(&calls, 1) > 1 {
			writeJSON(w, http.StatusBadRequest, `{"message": "Friend request already sent"}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"message": "Friend request sent successfully!"}`)
	})

	msg, err := client.AddFriend(context.Background(), 7, 3)
	if err != nil {
		t.Fatalf("AddFriend() failed: %v", err)
	}
	if msg != "Friend request sent successfully!" {
		t.Errorf("AddFriend() = %q", msg)
	}

	_, err = client.AddFriend(context.Background(), 7, 3)
	if got := perrors.UserMessage(err, "fallback"); got != "Friend request already sent" {
		t.Errorf("second AddFriend() message = %q", got)
	}
}

func TestClient_SendMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body SendRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if body.ReceiverID == 99 {
			writeJSON(w, http.StatusOK, `{"success": false}`)
			return
		}
		if body.Content != "hello" || body.SenderID != 7 || body.ReceiverID != 3 {
			t.Errorf("unexpected body %+v", body)
		}
		writeJSON(w, http.StatusOK, `{"success": true, "message": "Message sent successfully!", "content": "hello"}`)
	})

	if _, err := client.SendMessage(context.Background(), SendRequest{Content: "hello", SenderID: 7, ReceiverID: 3}); err != nil {
		t.Fatalf("SendMessage() failed: %v", err)
	}

	_, err := client.SendMessage(context.Background(), SendRequest{Content: "hello", SenderID: 7, ReceiverID: 99})
	if got := perrors.UserMessage(err, "fallback"); got != "Failed to send message!" {
		t.Errorf("rejected SendMessage() message = %q", got)
	}
}

func TestClient_SendMessage_RejectsEmptyLocally(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be sent for empty content")
	})

	_, err := client.SendMessage(context.Background(), SendRequest{Content: "", SenderID: 7, ReceiverID: 3})
	if !perrors.Is(err, perrors.KindInvalid) {
		t.Errorf("expected KindInvalid, got %v", err)
	}
}

func TestClient_Avatar(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/get_customer_avatar/7" {
			writeJSON(w, http.StatusOK, `{"avatar": "/uploads/me.png"}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"avatar": ""}`)
	})

	avatar, err := client.Avatar(context.Background(), 7)
	if err != nil || avatar != "/uploads/me.png" {
		t.Errorf("Avatar(7) = %q, %v", avatar, err)
	}
	avatar, err = client.Avatar(context.Background(), 8)
	if err != nil || avatar != DefaultAvatar {
		t.Errorf("Avatar(8) = %q, %v", avatar, err)
	}
}

func TestClient_Friends(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/friends/7" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		writeJSON(w, http.StatusOK, `{"friends": [{"customer_id": 3, "username": "alice", "avatar": null}]}`)
	})

	friends, err := client.Friends(context.Background(), 7)
	if err != nil {
		t.Fatalf("Friends() failed: %v", err)
	}
	if len(friends) != 1 || friends[0].Username != "alice" || friends[0].Avatar != DefaultAvatar {
		t.Errorf("unexpected friends: %+v", friends)
	}
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := NewClientWithHTTP(server.URL, server.Client(), 50*time.Millisecond)
	_, err := client.Conversations(context.Background(), 7)
	if !perrors.Is(err, perrors.KindTimeout) {
		t.Errorf("expected KindTimeout, got %v", err)
	}
}

func TestClient_SendsCookie(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Cookie") != "session=abc" {
			t.Errorf("expected cookie, got %q", r.Header.Get("Cookie"))
		}
		writeJSON(w, http.StatusOK, `{"avatar": ""}`)
	})
	client.cookie = "session=abc"

	if _, err := client.Avatar(context.Background(), 7); err != nil {
		t.Fatalf("Avatar() failed: %v", err)
	}
}
