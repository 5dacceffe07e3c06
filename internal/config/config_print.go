package config

import (
	"fmt"

	"github.com/inwx-ddns/inwx-ddns/internal/api"
	"github.com/inwx-ddns/inwx-ddns/internal/ipnet"
	"github.com/inwx-ddns/inwx-ddns/internal/pp"
	"github.com/inwx-ddns/inwx-ddns/internal/provider"
)

const itemTitleWidth = 24

func describeRecordIDs(ids []api.RecordID) string {
	return pp.JoinMap(api.RecordID.String, ids)
}

func describeEndpoint(url string) string {
	switch url {
	case api.LiveURL:
		return url + " (live)"
	case api.OTEURL:
		return url + " (OTE)"
	default:
		return url
	}
}

// Print prints the Config on the screen. The password is never shown.
func (c *Config) Print(ppfmt pp.PP) {
	if !ppfmt.IsShowing(pp.Info) {
		return
	}

	ppfmt.Infof(pp.EmojiEnvVars, "Current settings:")
	ppfmt = ppfmt.Indent()
	inner := ppfmt.Indent()

	section := func(title string) { ppfmt.Infof(pp.EmojiConfig, title) }
	item := func(title string, format string, values ...any) {
		inner.Infof(pp.EmojiBullet, "%-*s %s", itemTitleWidth, title, fmt.Sprintf(format, values...))
	}

	section("INWX account:")
	item("Username:", "%s", c.Auth.Username)
	item("Password:", "%s", "(redacted)")
	item("API endpoint:", "%s", describeEndpoint(c.Auth.URL))

	section("Records and lookup services:")
	if c.Provider[ipnet.IP4] != nil {
		item("IPv4 (A) records:", "%s", describeRecordIDs(c.Records[ipnet.IP4]))
		item("IPv4 lookup service:", "%s", provider.Name(c.Provider[ipnet.IP4]))
	}
	if c.Provider[ipnet.IP6] != nil {
		item("IPv6 (AAAA) records:", "%s", describeRecordIDs(c.Records[ipnet.IP6]))
		item("IPv6 lookup service:", "%s", provider.Name(c.Provider[ipnet.IP6]))
		item("IPv6 suffix:", "%s", c.IP6Suffix)
	}

	section("Cache:")
	item("Cache file:", "%s", c.CacheFile)

	section("Timeouts:")
	item("IP detection:", "%v", c.DetectionTimeout)
	item("Record updating:", "%v", c.UpdateTimeout)

	if len(c.Monitor) > 0 {
		section("Monitors:")
		for _, m := range c.Monitor {
			item(m.DescribeService()+":", "%s", "(URL redacted)")
		}
	}

	if len(c.Notifier) > 0 {
		section("Notification services (via shoutrrr):")
		for _, n := range c.Notifier {
			item(n.Describe()+":", "%s", "(URL redacted)")
		}
	}
}
