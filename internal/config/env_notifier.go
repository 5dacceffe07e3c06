package config

import (
	"strings"

	"github.com/inwx-ddns/inwx-ddns/internal/notifier"
	"github.com/inwx-ddns/inwx-ddns/internal/pp"
)

// ReadAndAppendShoutrrrURL reads the URLs separated by the newline.
func ReadAndAppendShoutrrrURL(ppfmt pp.PP, key string, field *notifier.Composite) bool {
	var urls []string
	for _, line := range strings.Split(Getenv(key), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			urls = append(urls, line)
		}
	}

	if len(urls) == 0 {
		return true
	}

	s, ok := notifier.NewShoutrrr(ppfmt, urls)
	if !ok {
		return false
	}

	*field = notifier.NewComposite(*field, s)
	return true
}
