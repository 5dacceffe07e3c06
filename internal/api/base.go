// Package api talks to the INWX Domrobot API.
//
// A [Session] starts logged out and logs in lazily, exactly once, before the
// first record update. Sessions are never refreshed: once logged in, the
// session is assumed to stay valid until the process exits.
package api

import (
	"context"
	"errors"
	"strconv"

	"github.com/inwx-ddns/inwx-ddns/internal/pp"
)

//go:generate mockgen -destination=../mocks/mock_api.go -package=mocks . Handle,RPC

// RecordID identifies a DNS record at INWX.
type RecordID int64

// String prints the ID as a decimal number.
func (id RecordID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// State is the authentication state of a [Session].
type State int

const (
	// LoggedOut means no successful login has happened yet.
	LoggedOut State = iota
	// LoggedIn means the provider accepted the credentials.
	LoggedIn
)

// Describe gives a human-readable name of the state.
func (s State) Describe() string {
	switch s {
	case LoggedOut:
		return "logged out"
	case LoggedIn:
		return "logged in"
	default:
		return "unknown"
	}
}

var (
	// ErrAuth is wrapped by all errors caused by a failed login.
	ErrAuth = errors.New("login failed")
	// ErrUpdate is wrapped by all errors caused by a failed record update.
	ErrUpdate = errors.New("record update failed")
)

// A Handle updates DNS records, logging in when needed.
type Handle interface {
	// State reports whether the handle has logged in.
	State() State

	// UpdateRecord sets the content of a record. Errors wrap [ErrAuth] or [ErrUpdate].
	UpdateRecord(ctx context.Context, ppfmt pp.PP, id RecordID, content string) error
}
