package api

import (
	"time"

	"github.com/inwx-ddns/inwx-ddns/internal/pp"
)

// Auth holds the data needed to create a [Session].
type Auth struct {
	Username string
	Password string
	URL      string
}

// New creates a logged-out [Session] talking to the JSON-RPC endpoint.
func (a Auth) New(ppfmt pp.PP, timeout time.Duration) (Handle, bool) {
	rpc, err := NewJSONRPC(a.URL)
	if err != nil {
		ppfmt.Errorf(pp.EmojiImpossible, "Failed to prepare the INWX client: %v", err)
		return nil, false
	}

	return NewSession(rpc, a.Username, a.Password, timeout), true
}
