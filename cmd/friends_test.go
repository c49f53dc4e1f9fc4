package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/zhubert/dinechat/internal/api"
	perrors "github.com/zhubert/dinechat/internal/errors"
)

type stubFriends struct {
	friends []api.Friend
	err     error
	gotID   int64
}

func (s *stubFriends) Friends(ctx context.Context, customerID int64) ([]api.Friend, error) {
	s.gotID = customerID
	return s.friends, s.err
}

func TestPrintFriends(t *testing.T) {
	stub := &stubFriends{friends: []api.Friend{
		{CustomerID: 2, Username: "bob"},
		{CustomerID: 13, Username: "carol"},
	}}
	var buf bytes.Buffer

	if err := printFriends(context.Background(), &buf, stub, 7); err != nil {
		t.Fatalf("printFriends() error = %v", err)
	}
	if stub.gotID != 7 {
		t.Errorf("requested customer %d, want 7", stub.gotID)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "ID") || !strings.Contains(lines[0], "USERNAME") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "bob") || !strings.Contains(lines[2], "carol") {
		t.Errorf("rows = %q", lines[1:])
	}
}

func TestPrintFriends_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := printFriends(context.Background(), &buf, &stubFriends{}, 7); err != nil {
		t.Fatalf("printFriends() error = %v", err)
	}
	if !strings.Contains(buf.String(), "no friends") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestPrintFriends_Error(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"server message", perrors.Rejected(perrors.Op("api.Friends"), "Customer not found"), "Customer not found"},
		{"transport", perrors.RequestFailed(perrors.Op("api.Friends"), errors.New("connection refused")), "Error loading friends."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := printFriends(context.Background(), &buf, &stubFriends{err: tt.err}, 7)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.HasPrefix(err.Error(), tt.want) {
				t.Errorf("error = %q, want prefix %q", err, tt.want)
			}
			if buf.Len() != 0 {
				t.Errorf("nothing should be printed on error, got %q", buf.String())
			}
		})
	}
}
