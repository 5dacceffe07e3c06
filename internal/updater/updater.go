// Package updater detects the current addresses and pushes changed ones to INWX.
package updater

import (
	"context"
	"errors"

	"github.com/inwx-ddns/inwx-ddns/internal/api"
	"github.com/inwx-ddns/inwx-ddns/internal/cache"
	"github.com/inwx-ddns/inwx-ddns/internal/config"
	"github.com/inwx-ddns/inwx-ddns/internal/ipnet"
	"github.com/inwx-ddns/inwx-ddns/internal/pp"
)

func hintDetectionFails(ppfmt pp.PP, ipNet ipnet.Type) {
	switch ipNet {
	case ipnet.IP4:
		ppfmt.Hintf(pp.HintIP4DetectionFails,
			"If your network does not support IPv4, leave IP4_RECORDS empty to skip it")
	case ipnet.IP6:
		ppfmt.Hintf(pp.HintIP6DetectionFails,
			"If you are using Docker or other container frameworks, IPv6 networks often require additional setups; "+
				"if your network does not support IPv6, leave IP6_RECORDS empty to skip it")
	}
}

// detect gets the record content for ipNet: the address itself for IPv4, and
// the /64 prefix of the address followed by the configured suffix for IPv6.
func detect(ctx context.Context, ppfmt pp.PP, c *config.Config, ipNet ipnet.Type) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, c.DetectionTimeout)
	defer cancel()

	address, ok := c.Provider[ipNet].GetIP(ctx, ppfmt, ipNet)
	if !ok {
		ppfmt.Errorf(pp.EmojiError, "Failed to detect the %s address", ipNet.Describe())
		hintDetectionFails(ppfmt, ipNet)
		return "", false
	}
	ppfmt.Infof(pp.EmojiInternet, "Detected the %s address: %s", ipNet.Describe(), address)

	if ipNet != ipnet.IP6 {
		return address, true
	}

	prefix, ok := ipnet.ExtractPrefix(ppfmt, address)
	if !ok {
		ppfmt.Errorf(pp.EmojiError, "Failed to detect the %s address", ipNet.Describe())
		return "", false
	}
	content := ipnet.ComposeIP6(prefix, c.IP6Suffix)
	ppfmt.Infof(pp.EmojiInternet, "Using %s as the %s record content", content, ipNet.RecordType())
	return content, true
}

func describeCached(content string) string {
	if content == "" {
		return "(none)"
	}
	return content
}

// setRecords updates all records of ipNet in the configured order, stopping at the first failure.
func setRecords(ctx context.Context, ppfmt pp.PP, c *config.Config, h api.Handle,
	ipNet ipnet.Type, content string,
) Code {
	for _, id := range c.Records[ipNet] {
		err := h.UpdateRecord(ctx, ppfmt, id, content)
		switch {
		case err == nil:
		case errors.Is(err, api.ErrAuth):
			return CodeAuthFailed
		default:
			return CodeUpdateFailed
		}
	}
	return CodeOK
}

// UpdateIPs detects the addresses of all configured families, compares them
// with cached, and updates the records of every family whose content changed.
// It returns the new cached contents and the outcome. A failed detection skips
// only its own family; a failed login or update stops the run immediately.
// The returned record has the same timestamp as cached.
func UpdateIPs(ctx context.Context, ppfmt pp.PP, c *config.Config, h api.Handle, cached cache.Record,
) (cache.Record, Code) {
	current := cached
	code := CodeOK

	for _, ipNet := range ipnet.All {
		if c.Provider[ipNet] == nil || len(c.Records[ipNet]) == 0 {
			continue
		}

		content, ok := detect(ctx, ppfmt, c, ipNet)
		if !ok {
			code = CodeFetchFailed
			continue
		}

		old := current.Get(ipNet)
		if content == old {
			ppfmt.Infof(pp.EmojiAlreadyDone, "The %s records are already up to date", ipNet.RecordType())
			continue
		}

		ppfmt.Noticef(pp.EmojiNew, "The %s content changed from %s to %s",
			ipNet.RecordType(), describeCached(old), content)

		if setCode := setRecords(ctx, ppfmt, c, h, ipNet, content); setCode != CodeOK {
			return current, setCode
		}
		current = current.Set(ipNet, content)
	}

	return current, code
}
