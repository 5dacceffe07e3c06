package monitor

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/inwx-ddns/inwx-ddns/internal/pp"
)

// HealthChecks provides basic support of Healthchecks.io.
type HealthChecks struct {
	BaseURL         string
	RedactedBaseURL string
	Timeout         time.Duration
	MaxRetries      int
	RetryWait       time.Duration
}

var _ Monitor = (*HealthChecks)(nil)

const (
	// HealthChecksDefaultTimeout bounds each ping, including retries.
	HealthChecksDefaultTimeout = 10 * time.Second
	// HealthChecksDefaultMaxRetries is the number of retries after the first attempt.
	HealthChecksDefaultMaxRetries = 3
	// HealthChecksDefaultRetryWait is the minimum wait before a retry.
	HealthChecksDefaultRetryWait = time.Second
)

// NewHealthChecks creates a new HealthChecks monitor.
func NewHealthChecks(ppfmt pp.PP, rawURL string) (*HealthChecks, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		ppfmt.Errorf(pp.EmojiUserError, "Failed to parse the Healthchecks URL (redacted)")
		return nil, false
	}

	if !(u.IsAbs() && u.Opaque == "" && u.Host != "" && u.Fragment == "" && !u.ForceQuery && u.RawQuery == "") {
		ppfmt.Errorf(pp.EmojiUserError, "The Healthchecks URL %q does not look like a valid URL", u.Redacted())
		ppfmt.Errorf(pp.EmojiUserError,
			`A valid example is "https://hc-ping.com/01234567-0123-0123-0123-0123456789abc"`)
		return nil, false
	}

	switch u.Scheme {
	case "http":
		ppfmt.Warningf(pp.EmojiUserWarning, "The Healthchecks URL %q uses HTTP; please consider using HTTPS", u.Redacted())
	case "https":
	default:
		ppfmt.Errorf(pp.EmojiUserError, "The Healthchecks URL %q does not look like a valid URL", u.Redacted())
		return nil, false
	}

	base := strings.TrimSuffix(u.String(), "/")
	redacted := strings.TrimSuffix(u.Redacted(), "/")

	return &HealthChecks{
		BaseURL:         base,
		RedactedBaseURL: redacted,
		Timeout:         HealthChecksDefaultTimeout,
		MaxRetries:      HealthChecksDefaultMaxRetries,
		RetryWait:       HealthChecksDefaultRetryWait,
	}, true
}

// DescribeService gives the name of the service.
func (h *HealthChecks) DescribeService() string {
	return "Healthchecks.io"
}

// DescribeBaseURL gives the URL with the password (if any) redacted.
func (h *HealthChecks) DescribeBaseURL() string {
	return h.RedactedBaseURL
}

func (h *HealthChecks) ping(ctx context.Context, ppfmt pp.PP, endpoint string, message string) bool {
	ctx, cancel := context.WithTimeout(ctx, h.Timeout)
	defer cancel()

	url := h.BaseURL + endpoint
	redacted := h.RedactedBaseURL + endpoint

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(message))
	if err != nil {
		ppfmt.Warningf(pp.EmojiImpossible, "Failed to prepare HTTP(S) request to %q: %v", redacted, err)
		return false
	}
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")

	c := retryablehttp.NewClient()
	c.Logger = nil
	c.RetryMax = h.MaxRetries
	c.RetryWaitMin = h.RetryWait
	c.RetryWaitMax = 4 * h.RetryWait

	resp, err := c.Do(req)
	if err != nil {
		ppfmt.Warningf(pp.EmojiError, "Failed to send HTTP(S) request to %q: %v", redacted, err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxReadLength))
		ppfmt.Warningf(pp.EmojiError, "Failed to ping %q; got response code: %d %s",
			redacted, resp.StatusCode, strings.TrimSpace(string(body)))
		return false
	}

	ppfmt.Infof(pp.EmojiPing, "Pinged %q", redacted)
	return true
}

// Start pings the /start endpoint.
func (h *HealthChecks) Start(ctx context.Context, ppfmt pp.PP, message string) bool {
	return h.ping(ctx, ppfmt, "/start", message)
}

// Success pings the root endpoint.
func (h *HealthChecks) Success(ctx context.Context, ppfmt pp.PP, message string) bool {
	return h.ping(ctx, ppfmt, "", message)
}

// Failure pings the /fail endpoint.
func (h *HealthChecks) Failure(ctx context.Context, ppfmt pp.PP, message string) bool {
	return h.ping(ctx, ppfmt, "/fail", message)
}

// ExitStatus pings the /number endpoint where number is the exit status.
func (h *HealthChecks) ExitStatus(ctx context.Context, ppfmt pp.PP, code int, message string) bool {
	if code < 0 || code > 255 {
		ppfmt.Errorf(pp.EmojiImpossible, "Exit code (%d) not within the range 0-255", code)
		return false
	}

	return h.ping(ctx, ppfmt, fmt.Sprintf("/%d", code), message)
}
