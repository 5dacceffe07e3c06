package monitor

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/exp/slices"

	"github.com/inwx-ddns/inwx-ddns/internal/pp"
)

// UptimeKuma provides basic support of Uptime Kuma push monitors.
//
//   - Start and ExitStatus with 0 are no-ops.
//   - Success and Failure become status=up and status=down.
//   - Success always sends "OK" as the message.
type UptimeKuma struct {
	// The push URL without its query.
	BaseURL *url.URL

	// Timeout for each ping.
	Timeout time.Duration
}

var _ Monitor = UptimeKuma{} //nolint:exhaustruct

// UptimeKumaDefaultTimeout is the default timeout for an Uptime Kuma ping.
const UptimeKumaDefaultTimeout = 10 * time.Second

// NewUptimeKuma creates a new UptimeKuma monitor.
func NewUptimeKuma(ppfmt pp.PP, rawURL string) (UptimeKuma, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		ppfmt.Errorf(pp.EmojiUserError, "Failed to parse the Uptime Kuma URL (redacted)")
		return UptimeKuma{}, false //nolint:exhaustruct
	}

	if !(u.IsAbs() && u.Opaque == "" && u.Host != "") {
		ppfmt.Errorf(pp.EmojiUserError, "The Uptime Kuma URL (redacted) does not look like a valid URL")
		return UptimeKuma{}, false //nolint:exhaustruct
	}

	switch u.Scheme {
	case "http":
		ppfmt.Warningf(pp.EmojiUserWarning, "The Uptime Kuma URL (redacted) uses HTTP; please consider using HTTPS")
	case "https":
	default:
		ppfmt.Errorf(pp.EmojiUserError, "The Uptime Kuma URL (redacted) does not look like a valid URL")
		return UptimeKuma{}, false //nolint:exhaustruct
	}

	// The push URL shown by Uptime Kuma ends with ?status=up&msg=OK&ping=
	if u.RawQuery != "" {
		q, err := url.ParseQuery(u.RawQuery)
		if err != nil {
			ppfmt.Errorf(pp.EmojiUserError, "The Uptime Kuma URL (redacted) does not look like a valid URL")
			return UptimeKuma{}, false //nolint:exhaustruct
		}

		for k, vs := range q {
			switch {
			case k == "status" && slices.Equal(vs, []string{"up"}):
			case k == "msg" && slices.Equal(vs, []string{"OK"}):
			case k == "ping" && slices.Equal(vs, []string{""}):
			default:
				ppfmt.Warningf(pp.EmojiUserWarning,
					"The Uptime Kuma URL (redacted) contains an unexpected query %s=... and it will be ignored", k)
			}
		}

		u.RawQuery = ""
	}

	return UptimeKuma{BaseURL: u, Timeout: UptimeKumaDefaultTimeout}, true
}

// DescribeService gives the name of the service.
func (h UptimeKuma) DescribeService() string {
	return "Uptime Kuma"
}

// UptimeKumaResponse is for parsing the response from Uptime Kuma.
type UptimeKumaResponse struct {
	OK  bool   `json:"ok"`
	Msg string `json:"msg"`
}

// UptimeKumaRequest is for assembling the request to Uptime Kuma.
type UptimeKumaRequest struct {
	Status string `url:"status"`
	Msg    string `url:"msg"`
	Ping   string `url:"ping"`
}

func (h UptimeKuma) ping(ctx context.Context, ppfmt pp.PP, param UptimeKumaRequest) bool {
	ctx, cancel := context.WithTimeout(ctx, h.Timeout)
	defer cancel()

	u := *h.BaseURL
	v, err := query.Values(param)
	if err != nil {
		ppfmt.Warningf(pp.EmojiImpossible, "Failed to encode the query for Uptime Kuma: %v", err)
		return false
	}
	u.RawQuery = v.Encode()

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		ppfmt.Warningf(pp.EmojiImpossible, "Failed to prepare HTTP(S) request to Uptime Kuma: %v", err)
		return false
	}

	c := retryablehttp.NewClient()
	c.Logger = nil

	resp, err := c.Do(req)
	if err != nil {
		ppfmt.Warningf(pp.EmojiError, "Failed to send HTTP(S) request to Uptime Kuma: %v", err)
		return false
	}
	defer resp.Body.Close()

	var parsed UptimeKumaResponse
	if err = json.NewDecoder(io.LimitReader(resp.Body, maxReadLength)).Decode(&parsed); err != nil {
		ppfmt.Warningf(pp.EmojiError, "Failed to parse the response from Uptime Kuma: %v", err)
		return false
	}
	if !parsed.OK {
		ppfmt.Warningf(pp.EmojiError, "Failed to ping Uptime Kuma: %s", parsed.Msg)
		return false
	}

	ppfmt.Infof(pp.EmojiPing, "Pinged Uptime Kuma")
	return true
}

// Start does nothing; Uptime Kuma has no notion of a started run.
func (h UptimeKuma) Start(context.Context, pp.PP, string) bool {
	return true
}

// Success pings with status=up and msg=OK.
func (h UptimeKuma) Success(ctx context.Context, ppfmt pp.PP, _ string) bool {
	return h.ping(ctx, ppfmt, UptimeKumaRequest{Status: "up", Msg: "OK", Ping: ""})
}

// Failure pings with status=down and the message.
func (h UptimeKuma) Failure(ctx context.Context, ppfmt pp.PP, message string) bool {
	if message == "" {
		message = "Failing"
	}
	return h.ping(ctx, ppfmt, UptimeKumaRequest{Status: "down", Msg: message, Ping: ""})
}

// ExitStatus pings with status=down for non-zero codes.
func (h UptimeKuma) ExitStatus(ctx context.Context, ppfmt pp.PP, code int, message string) bool {
	if code == 0 {
		return true
	}
	return h.Failure(ctx, ppfmt, message)
}
