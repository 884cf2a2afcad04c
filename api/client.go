// Package api implements the HTTP client for the remote asset service.
//
// The service is authoritative for every balance: this client only reads,
// submits mutations, and maps the service's failure modes onto the
// moneta error taxonomy. It never retries on its own: every retry is a
// deliberate user action.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"moneta"
)

// Client talks to the remote asset service.
type Client struct {
	base  string
	token string
	cur   string // the user's default currency, used to tag bare totals
	hc    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, typically for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// New creates a client for the service at baseURL. token is the bearer
// credential; when empty, every call short-circuits with
// moneta.ErrCredentialMissing before any network I/O.
func New(baseURL, token, defaultCurrency string, opts ...Option) *Client {
	c := &Client{
		base:  strings.TrimRight(baseURL, "/"),
		token: token,
		cur:   defaultCurrency,
		hc:    http.DefaultClient,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// DefaultCurrency returns the currency the service reports totals in.
func (c *Client) DefaultCurrency() string { return c.cur }

// do performs one authenticated round trip and decodes the JSON answer
// into out (when out is non-nil).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if c.token == "" {
		return fmt.Errorf("%s %s: %w", method, path, moneta.ErrCredentialMissing)
	}

	addr := c.base + path
	if len(query) > 0 {
		addr += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, addr, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return &moneta.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &moneta.NetworkError{Err: err}
	}

	if resp.StatusCode >= 300 {
		return &moneta.RemoteError{Status: resp.StatusCode, Message: remoteMessage(data)}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// messagePaths are the observed spellings of the structured error message
// across the service's subsystems. The first hit wins and is surfaced
// verbatim.
var messagePaths = []string{"$.message", "$.error.message", "$.error", "$.detail"}

// remoteMessage probes an arbitrary error payload for a message string.
// Returns "" when the body is not JSON or carries no recognizable text.
func remoteMessage(data []byte) string {
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return ""
	}
	for _, path := range messagePaths {
		jval, err := jsonpath.Get(path, jobj)
		if err != nil {
			continue
		}
		// jsonpath is never clear about whether it returns a list of one
		// answer or a single answer; keep the first one if any.
		if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
			jval = jlist[0]
		}
		if s, ok := jval.(string); ok && s != "" {
			return s
		}
	}
	return ""
}
