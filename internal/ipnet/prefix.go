package ipnet

import (
	"net/netip"
	"strings"

	"github.com/inwx-ddns/inwx-ddns/internal/pp"
)

// PrefixBlocks is the number of 16-bit blocks kept by [ExtractPrefix], i.e., a /64 prefix.
const PrefixBlocks = 4

// ExtractPrefix keeps the first four colon-separated blocks of an IPv6 address.
//
// Written blocks are kept verbatim, so that "2001:0db8:85a3:0000:0000:8a2e:0370:7334"
// gives "2001:0db8:85a3:0000" and "2001:db8:aaaa:1111::1" gives "2001:db8:aaaa:1111".
// A "::" run is filled with "0" blocks, and an embedded IPv4 address counts as two blocks.
func ExtractPrefix(ppfmt pp.PP, address string) (string, bool) {
	ip, err := netip.ParseAddr(address)
	if err != nil || !ip.Is6() || ip.Zone() != "" {
		ppfmt.Warningf(pp.EmojiError, "%q is not a valid IPv6 address", address)
		return "", false
	}

	return strings.Join(expandBlocks(address)[:PrefixBlocks], ":"), true
}

// splitBlocks splits a colon-separated part of an address; the empty part has no blocks.
func splitBlocks(part string) []string {
	if part == "" {
		return nil
	}
	return strings.Split(part, ":")
}

// expandBlocks turns a valid IPv6 address into eight blocks without zero-padding them.
func expandBlocks(address string) []string {
	head, tail, compressed := strings.Cut(address, "::")
	headBlocks, tailBlocks := splitBlocks(head), splitBlocks(tail)

	count := len(headBlocks) + len(tailBlocks)
	if strings.Contains(address, ".") {
		count++
	}

	blocks := make([]string, 0, 8) //nolint:gomnd
	blocks = append(blocks, headBlocks...)
	if compressed {
		for i := count; i < 8; i++ {
			blocks = append(blocks, "0")
		}
	}
	return append(blocks, tailBlocks...)
}

// ComposeIP6 appends the interface suffix to a prefix.
func ComposeIP6(prefix, suffix string) string {
	return prefix + ":" + suffix
}

// IsValidIP6Suffix checks whether a prefix from [ExtractPrefix] followed by the suffix
// forms a valid IPv6 address.
func IsValidIP6Suffix(suffix string) bool {
	ip, err := netip.ParseAddr(ComposeIP6("2001:db8:0:0", suffix))
	return err == nil && ip.Is6() && ip.Zone() == ""
}
