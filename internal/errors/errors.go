// Package errors provides structured error types for dinechat.
// These errors record which backend operation failed and how, so the UI can
// decide between showing the server's own message and a generic retry hint.
package errors

import (
	"context"
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindNetwork
	KindTimeout
	KindConfig
	KindDecode
	// KindApplication is a well-formed server reply that reports failure,
	// e.g. "Friend request already sent". Its Context is the server text.
	KindApplication
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindNetwork:
		return "network error"
	case KindTimeout:
		return "timeout"
	case KindConfig:
		return "configuration error"
	case KindDecode:
		return "decode error"
	case KindApplication:
		return "rejected by server"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for dinechat.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// UserMessage returns the text to show the user for err. Application errors
// carry the server's message, which is shown verbatim; everything else gets
// the caller's fallback so transport noise never reaches the screen.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) && e.Kind == KindApplication {
		if e.Context != "" {
			return e.Context
		}
		return e.Err.Error()
	}
	if Is(err, KindTimeout) {
		return fallback + " (request timed out)"
	}
	return fallback
}

// Backend errors

// RequestFailed wraps a transport failure. Deadline expiry maps to KindTimeout.
func RequestFailed(op Op, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return E(op, KindTimeout, "request timed out", err)
	}
	return E(op, KindNetwork, err)
}

// BadStatus reports a non-success HTTP status that carried no server message.
func BadStatus(op Op, status int) error {
	return E(op, KindNetwork, fmt.Sprintf("server returned status %d", status))
}

// Rejected reports an application-level failure with the server's message.
func Rejected(op Op, message string) error {
	return &Error{Op: op, Kind: KindApplication, Err: errors.New("rejected"), Context: message}
}

// DecodeFailed reports a response body that could not be decoded or validated.
func DecodeFailed(op Op, err error) error {
	return E(op, KindDecode, "malformed response", err)
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}
