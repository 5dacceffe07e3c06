// Package ipnet contains utility functions for IPv4 and IPv6 networks.
package ipnet

import (
	"fmt"
	"net/netip"

	"github.com/inwx-ddns/inwx-ddns/internal/pp"
)

// Type is the type of IP networks.
type Type int

const (
	// IP4 is IP version 4.
	IP4 Type = 4

	// IP6 is IP version 6.
	IP6 Type = 6
)

// All lists [IP4] and then [IP6], which is also the order in which they are updated.
var All = [...]Type{IP4, IP6} //nolint:gochecknoglobals

// Int returns the version of the IP networks. It is either 4 or 6.
func (t Type) Int() int {
	switch t {
	case IP4, IP6:
		return int(t)
	default:
		return 0
	}
}

// Describe returns a human-readable description of the IP network.
func (t Type) Describe() string {
	switch t {
	case IP4, IP6:
		return fmt.Sprintf("IPv%d", t)
	default:
		return "<unrecognized IP network>"
	}
}

// RecordType prints out the type of DNS records for the IP network. For IPv4, it is A; for IPv6, it is AAAA.
func (t Type) RecordType() string {
	switch t {
	case IP4:
		return "A"
	case IP6:
		return "AAAA"
	default:
		return ""
	}
}

// NormalizeDetectedIP checks whether the text returned by a lookup service is
// a usable address of the network and returns the parsed address.
func (t Type) NormalizeDetectedIP(ppfmt pp.PP, text string) (netip.Addr, bool) {
	ip, err := netip.ParseAddr(text)
	if err != nil {
		ppfmt.Warningf(pp.EmojiError, "%q is not a valid IP address: %v", text, err)
		return netip.Addr{}, false
	}

	switch t {
	case IP4:
		if !ip.Is4() {
			ppfmt.Warningf(pp.EmojiError, "%q is not a valid %s address", text, t.Describe())
			return netip.Addr{}, false
		}
	case IP6:
		if !ip.Is6() || ip.Is4In6() {
			ppfmt.Warningf(pp.EmojiError, "%q is not a valid %s address", text, t.Describe())
			return netip.Addr{}, false
		}
	default:
		ppfmt.Warningf(pp.EmojiImpossible, "Unhandled IP network: %s", t.Describe())
		return netip.Addr{}, false
	}

	switch {
	case ip.Zone() != "":
		ppfmt.Warningf(pp.EmojiError, "Detected %s address %s has a zone identifier", t.Describe(), text)
		return netip.Addr{}, false
	case ip.IsUnspecified():
		ppfmt.Warningf(pp.EmojiError, "Detected %s address %s is an unspecified address", t.Describe(), text)
		return netip.Addr{}, false
	case ip.IsLoopback():
		ppfmt.Warningf(pp.EmojiError, "Detected %s address %s is a loopback address", t.Describe(), text)
		return netip.Addr{}, false
	case ip.IsMulticast():
		ppfmt.Warningf(pp.EmojiError, "Detected %s address %s is a multicast address", t.Describe(), text)
		return netip.Addr{}, false
	case ip.IsLinkLocalUnicast():
		ppfmt.Warningf(pp.EmojiError, "Detected %s address %s is a link-local address", t.Describe(), text)
		return netip.Addr{}, false
	}

	if !ip.IsGlobalUnicast() {
		ppfmt.Warningf(pp.EmojiWarning,
			"Detected %s address %s does not look like a global unicast address", t.Describe(), text)
	}

	return ip, true
}
