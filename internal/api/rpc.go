package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"

	"golang.org/x/net/publicsuffix"
)

// Endpoints of the Domrobot JSON-RPC API.
const (
	LiveURL = "https://api.domrobot.com/jsonrpc/"
	OTEURL  = "https://api.ote.domrobot.com/jsonrpc/"
)

// CodeSuccess is the result code of a successfully completed command.
const CodeSuccess = 1000

// maxResponseSize bounds how much of a response is decoded.
const maxResponseSize = 1 << 20

// RPC sends one remote-procedure call and returns the decoded result.
// An error means that no result could be obtained; a result with a code other
// than [CodeSuccess] is not an error at this level.
type RPC interface {
	Call(ctx context.Context, method string, params map[string]any) (Response, error)
}

// Response is the envelope of every Domrobot answer.
type Response struct {
	Code    int             `json:"code"`
	Msg     string          `json:"msg"`
	Reason  string          `json:"reason,omitempty"`
	ResData json.RawMessage `json:"resData,omitempty"`
}

// OK checks whether the command succeeded.
func (r Response) OK() bool {
	return r.Code == CodeSuccess
}

// Describe gives the message of the response for the operator.
func (r Response) Describe() string {
	if r.Reason != "" {
		return fmt.Sprintf("%s (code %d; %s)", r.Msg, r.Code, r.Reason)
	}
	return fmt.Sprintf("%s (code %d)", r.Msg, r.Code)
}

type request struct {
	Method string         `json:"method"`
	Params map[string]any `json:"params"`
}

// JSONRPC implements [RPC] over HTTP(S). The session cookie set by the login
// call is kept in a cookie jar and sent with all later calls.
type JSONRPC struct {
	URL    string
	client *http.Client
}

// NewJSONRPC creates a JSON-RPC client with an empty cookie jar.
func NewJSONRPC(url string) (*JSONRPC, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	return &JSONRPC{
		URL:    url,
		client: &http.Client{Jar: jar}, //nolint:exhaustruct
	}, nil
}

// Call sends the method and its parameters as a JSON object and decodes the envelope.
func (c *JSONRPC) Call(ctx context.Context, method string, params map[string]any) (Response, error) {
	body, err := json.Marshal(request{Method: method, Params: params})
	if err != nil {
		return Response{}, fmt.Errorf("%s: encode request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("%s: prepare request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("%s: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Response{}, fmt.Errorf("%s: unexpected HTTP status %s", method, resp.Status)
	}

	var r Response
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&r); err != nil {
		return Response{}, fmt.Errorf("%s: decode response: %w", method, err)
	}

	return r, nil
}
