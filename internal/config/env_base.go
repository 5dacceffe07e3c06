package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/inwx-ddns/inwx-ddns/internal/api"
	"github.com/inwx-ddns/inwx-ddns/internal/pp"
)

// Getenv reads an environment variable and trim the space.
func Getenv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

// ReadString reads an environment variable as a plain string.
func ReadString(ppfmt pp.PP, key string, field *string) bool {
	val := Getenv(key)
	if val == "" {
		ppfmt.Infof(pp.EmojiBullet, "Use default %s=%s", key, *field)
		return true
	}

	*field = val
	return true
}

// ReadPositiveDuration reads an environment variable and parses it as a positive time duration.
func ReadPositiveDuration(ppfmt pp.PP, key string, field *time.Duration) bool {
	val := Getenv(key)
	if val == "" {
		ppfmt.Infof(pp.EmojiBullet, "Use default %s=%v", key, *field)
		return true
	}

	t, err := time.ParseDuration(val)

	switch {
	case err != nil:
		ppfmt.Errorf(pp.EmojiUserError, "%s (%q) is not a time duration: %v", key, val, err)
		return false
	case t <= 0:
		ppfmt.Errorf(pp.EmojiUserError, "%s (%v) should be positive", key, t)
		return false
	}

	*field = t
	return true
}

// ReadLinuxID reads an environment variable as a user or group ID.
func ReadLinuxID(ppfmt pp.PP, key string, field *int) bool {
	val := Getenv(key)
	if val == "" {
		ppfmt.Infof(pp.EmojiBullet, "Use default %s=%d", key, *field)
		return true
	}

	i, err := strconv.Atoi(val)
	switch {
	case err != nil:
		ppfmt.Errorf(pp.EmojiUserError, "%s (%q) is not a number: %v", key, val, err)
		return false

	case i < 0:
		ppfmt.Errorf(pp.EmojiUserError, "%s (%d) is negative", key, i)
		return false

	case i == 0:
		ppfmt.Errorf(pp.EmojiUserError, "%s (%d) should not be 0", key, i)
		return false

	default:
		*field = i
		return true
	}
}

// splitList splits a list separated by commas and/or whitespace.
func splitList(val string) []string {
	return strings.FieldsFunc(val, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

// ReadRecordIDs reads an environment variable as an ordered list of record IDs.
// Duplicate IDs are dropped, keeping the first occurrence.
func ReadRecordIDs(ppfmt pp.PP, key string, field *[]api.RecordID) bool {
	val := Getenv(key)
	if val == "" {
		ppfmt.Infof(pp.EmojiBullet, "Use default %s=%s", key, describeRecordIDs(*field))
		return true
	}

	items := splitList(val)
	ids := make([]api.RecordID, 0, len(items))
	for _, item := range items {
		i, err := strconv.ParseInt(item, 10, 64)
		switch {
		case err != nil:
			ppfmt.Errorf(pp.EmojiUserError, "%s contains %q, which is not a record ID: %v", key, item, err)
			return false
		case i <= 0:
			ppfmt.Errorf(pp.EmojiUserError, "%s contains %d, which is not a positive record ID", key, i)
			return false
		}
		ids = append(ids, api.RecordID(i))
	}

	deduplicated := deduplicate(ids)
	if len(deduplicated) < len(ids) {
		ppfmt.Warningf(pp.EmojiUserWarning, "%s contains duplicate record IDs; each record will be updated once", key)
	}

	*field = deduplicated
	return true
}
