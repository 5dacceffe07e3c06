// Package cache remembers the addresses applied by the last successful run.
package cache

import (
	"bytes"
	"errors"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/inwx-ddns/inwx-ddns/internal/file"
	"github.com/inwx-ddns/inwx-ddns/internal/ipnet"
	"github.com/inwx-ddns/inwx-ddns/internal/pp"
)

// Record holds the last applied record contents. Empty strings mean "unknown".
type Record struct {
	IP4     string    `yaml:"ip4"`
	IP6     string    `yaml:"ip6"`
	Updated time.Time `yaml:"updated,omitempty"`
}

// Get returns the cached content for an IP network.
func (r Record) Get(ipNet ipnet.Type) string {
	switch ipNet {
	case ipnet.IP4:
		return r.IP4
	case ipnet.IP6:
		return r.IP6
	default:
		return ""
	}
}

// Set returns a copy of the record with the content for an IP network replaced.
func (r Record) Set(ipNet ipnet.Type, content string) Record {
	switch ipNet {
	case ipnet.IP4:
		r.IP4 = content
	case ipnet.IP6:
		r.IP6 = content
	}
	return r
}

// Equal checks whether two records hold the same addresses, ignoring the timestamps.
func (r Record) Equal(other Record) bool {
	return r.IP4 == other.IP4 && r.IP6 == other.IP6
}

const header = "# Generated by the INWX DDNS updater; it is safe to delete this file.\n"

// Load reads the cache file. Failures are reported and give the zero [Record],
// which makes the next comparison treat every address as changed.
func Load(ppfmt pp.PP, path string) Record {
	body, err := file.Read(path)
	switch {
	case errors.Is(err, file.ErrNotExist):
		ppfmt.Infof(pp.EmojiCache, "No cached addresses found at %q; starting fresh", path)
		return Record{}
	case err != nil:
		ppfmt.Warningf(pp.EmojiWarning, "Could not load cached addresses: %v", err)
		return Record{}
	}

	var r Record
	if err := yaml.Unmarshal(body, &r); err != nil {
		ppfmt.Warningf(pp.EmojiWarning, "Could not parse cached addresses in %q: %v", path, err)
		return Record{}
	}

	ppfmt.Infof(pp.EmojiCache, "Loaded cached addresses from %q (last updated: %s)", path, describeTime(r.Updated))
	return r
}

// Save atomically replaces the cache file with the record.
func Save(ppfmt pp.PP, path string, r Record) bool {
	var buf bytes.Buffer
	buf.WriteString(header)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		ppfmt.Warningf(pp.EmojiImpossible, "Failed to encode the cached addresses: %v", err)
		return false
	}
	if err := enc.Close(); err != nil {
		ppfmt.Warningf(pp.EmojiImpossible, "Failed to encode the cached addresses: %v", err)
		return false
	}

	if err := file.WriteAtomic(path, buf.Bytes(), 0o600); err != nil {
		ppfmt.Warningf(pp.EmojiError, "Failed to save the current addresses: %v", err)
		return false
	}

	ppfmt.Noticef(pp.EmojiCache, "Saved the current addresses to %q", path)
	return true
}

func describeTime(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return t.Format(time.RFC3339)
}
