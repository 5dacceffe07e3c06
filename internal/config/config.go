// Package config reads and parses configurations.
package config

import (
	"time"

	"github.com/inwx-ddns/inwx-ddns/internal/api"
	"github.com/inwx-ddns/inwx-ddns/internal/ipnet"
	"github.com/inwx-ddns/inwx-ddns/internal/monitor"
	"github.com/inwx-ddns/inwx-ddns/internal/notifier"
	"github.com/inwx-ddns/inwx-ddns/internal/pp"
	"github.com/inwx-ddns/inwx-ddns/internal/provider"
)

// Config holds the configuration of the updater.
type Config struct {
	Auth             api.Auth
	Provider         map[ipnet.Type]provider.Provider
	Records          map[ipnet.Type][]api.RecordID
	IP6Suffix        string
	CacheFile        string
	DetectionTimeout time.Duration
	UpdateTimeout    time.Duration
	Monitor          monitor.Composite
	Notifier         notifier.Composite
}

// Default gives the default configuration.
func Default() *Config {
	ipify := provider.NewIpify()

	return &Config{
		Auth: api.Auth{
			Username: "",
			Password: "",
			URL:      api.LiveURL,
		},
		Provider: map[ipnet.Type]provider.Provider{
			ipnet.IP4: ipify,
			ipnet.IP6: ipify,
		},
		Records: map[ipnet.Type][]api.RecordID{
			ipnet.IP4: nil,
			ipnet.IP6: nil,
		},
		IP6Suffix:        "",
		CacheFile:        "cache.yaml",
		DetectionTimeout: time.Second * 5,  //nolint:gomnd
		UpdateTimeout:    time.Second * 10, //nolint:gomnd
		Monitor:          nil,
		Notifier:         nil,
	}
}

// ReadEnv calls the relevant readers to read all relevant environment variables.
// One should subsequently call [Config.Normalize] to restore invariants across fields.
func (c *Config) ReadEnv(ppfmt pp.PP) bool {
	if ppfmt.IsShowing(pp.Info) {
		ppfmt.Infof(pp.EmojiEnvVars, "Reading settings . . .")
		ppfmt = ppfmt.Indent()
	}

	ip4Records := c.Records[ipnet.IP4]
	ip6Records := c.Records[ipnet.IP6]

	if !ReadAuth(ppfmt, &c.Auth) ||
		!ReadRecordIDs(ppfmt, "IP4_RECORDS", &ip4Records) ||
		!ReadRecordIDs(ppfmt, "IP6_RECORDS", &ip6Records) ||
		!ReadString(ppfmt, "IP6_SUFFIX", &c.IP6Suffix) ||
		!ReadProviderMap(ppfmt, &c.Provider) ||
		!ReadString(ppfmt, "CACHE_FILE", &c.CacheFile) ||
		!ReadPositiveDuration(ppfmt, "DETECTION_TIMEOUT", &c.DetectionTimeout) ||
		!ReadPositiveDuration(ppfmt, "UPDATE_TIMEOUT", &c.UpdateTimeout) ||
		!ReadAndAppendHealthchecksURL(ppfmt, "HEALTHCHECKS", &c.Monitor) ||
		!ReadAndAppendUptimeKumaURL(ppfmt, "UPTIMEKUMA", &c.Monitor) ||
		!ReadAndAppendShoutrrrURL(ppfmt, "SHOUTRRR", &c.Notifier) {
		return false
	}

	c.Records = map[ipnet.Type][]api.RecordID{
		ipnet.IP4: ip4Records,
		ipnet.IP6: ip6Records,
	}
	return true
}

// Normalize checks and normalizes the fields [Config.Records] and [Config.IP6Suffix].
// A family without records gets no provider, so it will not be detected.
func (c *Config) Normalize(ppfmt pp.PP) bool {
	if ppfmt.IsShowing(pp.Info) {
		ppfmt.Infof(pp.EmojiEnvVars, "Checking settings . . .")
		ppfmt = ppfmt.Indent()
	}

	if len(c.Records[ipnet.IP4]) == 0 && len(c.Records[ipnet.IP6]) == 0 {
		ppfmt.Errorf(pp.EmojiUserError, "Nothing to update because both IP4_RECORDS and IP6_RECORDS are empty")
		return false
	}

	// A record has exactly one type, so an ID cannot serve both families.
	for _, id := range c.Records[ipnet.IP4] {
		for _, id6 := range c.Records[ipnet.IP6] {
			if id == id6 {
				ppfmt.Errorf(pp.EmojiUserError,
					"Record %s appears in both IP4_RECORDS and IP6_RECORDS; a record cannot be both A and AAAA", id)
				return false
			}
		}
	}

	switch {
	case len(c.Records[ipnet.IP6]) > 0 && c.IP6Suffix == "":
		ppfmt.Errorf(pp.EmojiUserError, "IP6_SUFFIX must be set when IP6_RECORDS is not empty")
		return false
	case len(c.Records[ipnet.IP6]) == 0 && c.IP6Suffix != "":
		ppfmt.Warningf(pp.EmojiUserWarning, "IP6_SUFFIX=%s is ignored because IP6_RECORDS is empty", c.IP6Suffix)
	case len(c.Records[ipnet.IP6]) > 0 && !ipnet.IsValidIP6Suffix(c.IP6Suffix):
		ppfmt.Warningf(pp.EmojiUserWarning, "IP6_SUFFIX=%s does not look like the last 64 bits of an IPv6 address",
			c.IP6Suffix)
		ppfmt.Hintf(pp.HintIP6Suffix,
			"IP6_SUFFIX is appended verbatim to the /64 prefix, as in 2001:db8:aaaa:1111 + 0:0:0:1; "+
				"with IP6_SUFFIX=%s the AAAA records will be set to content that is not a valid IPv6 address",
			c.IP6Suffix)
	}

	providers := map[ipnet.Type]provider.Provider{}
	for _, ipNet := range ipnet.All {
		if len(c.Records[ipNet]) == 0 {
			if c.Provider[ipNet] != nil {
				ppfmt.Infof(pp.EmojiDisabled, "%s will not be detected because IP%d_RECORDS is empty",
					ipNet.Describe(), ipNet.Int())
			}
			providers[ipNet] = nil
			continue
		}
		if c.Provider[ipNet] == nil {
			ppfmt.Errorf(pp.EmojiImpossible, "No lookup service for %s", ipNet.Describe())
			return false
		}
		providers[ipNet] = c.Provider[ipNet]
	}
	c.Provider = providers

	return true
}
