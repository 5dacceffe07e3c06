package provider

import (
	"net/url"

	"github.com/inwx-ddns/inwx-ddns/internal/ipnet"
	"github.com/inwx-ddns/inwx-ddns/internal/pp"
)

// NewCustom creates a HTTP provider that asks rawURL for the address of ipNet.
func NewCustom(ppfmt pp.PP, ipNet ipnet.Type, rawURL string) (Provider, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		ppfmt.Errorf(pp.EmojiUserError, "Failed to parse the %s lookup URL %q: %v", ipNet.Describe(), rawURL, err)
		return nil, false
	}

	if !u.IsAbs() || u.Opaque != "" || u.Host == "" {
		ppfmt.Errorf(pp.EmojiUserError, "The %s lookup URL %q does not look like a valid URL", ipNet.Describe(), rawURL)
		return nil, false
	}

	switch u.Scheme {
	case "http":
		ppfmt.Warningf(pp.EmojiUserWarning,
			"The %s lookup URL %q uses HTTP; consider using HTTPS instead", ipNet.Describe(), rawURL)

	case "https":
		// HTTPS is good!

	default:
		ppfmt.Errorf(pp.EmojiUserError, "The %s lookup URL %q must use HTTP or HTTPS", ipNet.Describe(), rawURL)
		return nil, false
	}

	return &HTTP{
		ProviderName: "url:" + rawURL,
		URL:          map[ipnet.Type]string{ipNet: rawURL},
	}, true
}
