package api

import (
	"context"
	"fmt"
	"time"

	"github.com/inwx-ddns/inwx-ddns/internal/pp"
)

// Names of the remote procedures.
const (
	MethodLogin        = "account.login"
	MethodUpdateRecord = "nameserver.updateRecord"
)

// Session implements [Handle] on top of an [RPC].
type Session struct {
	rpc      RPC
	username string
	password string
	timeout  time.Duration
	state    State
}

// NewSession creates a logged-out session. Each call is bounded by timeout.
func NewSession(rpc RPC, username, password string, timeout time.Duration) *Session {
	return &Session{
		rpc:      rpc,
		username: username,
		password: password,
		timeout:  timeout,
		state:    LoggedOut,
	}
}

// State reports the current state.
func (s *Session) State() State {
	return s.state
}

func (s *Session) call(ctx context.Context, method string, params map[string]any) (Response, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.rpc.Call(ctx, method, params)
}

// Login moves the session from [LoggedOut] to [LoggedIn]. It does nothing when already logged in.
func (s *Session) Login(ctx context.Context, ppfmt pp.PP) error {
	if s.state == LoggedIn {
		return nil
	}

	ppfmt.Infof(pp.EmojiLogin, "Logging in to INWX as %s . . .", s.username)

	resp, err := s.call(ctx, MethodLogin, map[string]any{
		"user": s.username,
		"pass": s.password,
		"lang": "en",
	})
	if err != nil {
		ppfmt.Errorf(pp.EmojiError, "Failed to log in: %v", err)
		return fmt.Errorf("%w: %w", ErrAuth, err)
	}
	if !resp.OK() {
		ppfmt.Errorf(pp.EmojiUserError, "Login error: %s", resp.Describe())
		ppfmt.Hintf(pp.HintLoginFails,
			"Double check INWX_USERNAME and INWX_PASSWORD; accounts with two-factor authentication are not supported")
		return fmt.Errorf("%w: %s", ErrAuth, resp.Describe())
	}

	s.state = LoggedIn
	ppfmt.Noticef(pp.EmojiLogin, "Logged in to INWX as %s", s.username)
	return nil
}

// UpdateRecord logs in if needed and then sets the content of the record.
func (s *Session) UpdateRecord(ctx context.Context, ppfmt pp.PP, id RecordID, content string) error {
	if err := s.Login(ctx, ppfmt); err != nil {
		return err
	}

	resp, err := s.call(ctx, MethodUpdateRecord, map[string]any{
		"id":      id,
		"content": content,
	})
	if err != nil {
		ppfmt.Errorf(pp.EmojiError, "Failed to update record %s: %v", id, err)
		return fmt.Errorf("%w: record %s: %w", ErrUpdate, id, err)
	}
	if !resp.OK() {
		ppfmt.Errorf(pp.EmojiError, "Failed to update record %s: %s", id, resp.Describe())
		return fmt.Errorf("%w: record %s: %s", ErrUpdate, id, resp.Describe())
	}

	ppfmt.Noticef(pp.EmojiUpdateRecord, "Updated record %s to %s", id, content)
	return nil
}
