// Package provider implements protocols to detect public IP addresses.
package provider

import (
	"context"

	"github.com/inwx-ddns/inwx-ddns/internal/ipnet"
	"github.com/inwx-ddns/inwx-ddns/internal/pp"
)

//go:generate mockgen -destination=../mocks/mock_provider.go -package=mocks . Provider

// Provider is the abstraction of a protocol to detect public IP addresses.
type Provider interface {
	Name() string
	// Name gives the name of the protocol.

	GetIP(ctx context.Context, ppfmt pp.PP, ipNet ipnet.Type) (string, bool)
	// GetIP gets the IP as the text sent by the lookup service, after validation.
}

// Name gets the protocol name. It returns "none" for nil.
func Name(p Provider) string {
	if p == nil {
		return "none"
	}

	return p.Name()
}
