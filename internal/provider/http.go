package provider

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/inwx-ddns/inwx-ddns/internal/ipnet"
	"github.com/inwx-ddns/inwx-ddns/internal/pp"
)

// maxBodySize bounds how much of a lookup response is read.
const maxBodySize = 1 << 12

func getTextFromHTTP(ctx context.Context, ppfmt pp.PP, url string) (string, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		ppfmt.Warningf(pp.EmojiImpossible, "Failed to prepare HTTP(S) request to %q: %v", url, err)
		return "", false
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		ppfmt.Warningf(pp.EmojiError, "Failed to send HTTP(S) request to %q: %v", url, err)
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		ppfmt.Warningf(pp.EmojiError, "HTTP(S) request to %q failed with status %s", url, resp.Status)
		return "", false
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		ppfmt.Warningf(pp.EmojiError, "Failed to read HTTP(S) response from %q: %v", url, err)
		return "", false
	}

	return strings.TrimSpace(string(body)), true
}

// HTTP represents a generic detection protocol to use an HTTP response directly.
type HTTP struct {
	ProviderName string                // name of the protocol
	URL          map[ipnet.Type]string // URL of the detection page
}

// Name of the detection protocol.
func (p *HTTP) Name() string {
	return p.ProviderName
}

// GetIP detects the IP address by using the HTTP response directly.
func (p *HTTP) GetIP(ctx context.Context, ppfmt pp.PP, ipNet ipnet.Type) (string, bool) {
	url, found := p.URL[ipNet]
	if !found {
		ppfmt.Warningf(pp.EmojiImpossible, "Unhandled IP network: %s", ipNet.Describe())
		return "", false
	}

	text, ok := getTextFromHTTP(ctx, ppfmt, url)
	if !ok {
		return "", false
	}

	if _, ok := ipNet.NormalizeDetectedIP(ppfmt, text); !ok {
		return "", false
	}

	return text, true
}
