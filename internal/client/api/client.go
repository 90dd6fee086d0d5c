// Package api is the single point of HTTP access to the placement backend.
// Every resource operation is a thin typed wrapper over one shared request
// primitive that handles serialization, auth headers, and error
// normalization.
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

	"github.com/campushq/placetrack/internal/common"
	"github.com/campushq/placetrack/internal/logging"
)

// TokenSource supplies the bearer token attached to outbound requests.
// The session store satisfies this interface. An empty token means the
// request goes out unauthenticated.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client talks to the placement backend over HTTP/JSON.
//
// The client is stateless per call: it imposes no ordering between two
// concurrent outstanding requests and performs no retries or deduplication.
// Callers own in-flight tracking and stale-response discard.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger

	Students   *StudentsAPI
	Placements *PlacementsAPI
	Stats      *StatsAPI
	Auth       *AuthAPI
	Admin      *AdminAPI
}

// New builds a Client against baseURL. tokens may be nil for a client that
// never authenticates.
func New(baseURL string, tokens TokenSource, log logging.Logger) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tokens:  tokens,
		log:     log,
	}
	c.Students = &StudentsAPI{client: c}
	c.Placements = &PlacementsAPI{client: c}
	c.Stats = &StatsAPI{client: c}
	c.Auth = &AuthAPI{client: c}
	c.Admin = &AdminAPI{client: c}
	return c
}

// authorize attaches the bearer token from the token source, if any.
func (c *Client) authorize(ctx context.Context, req *http.Request) {
	if c.tokens == nil {
		return
	}
	token, err := c.tokens.Token(ctx)
	if err != nil || token == "" {
		return
	}
	req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
}

// do issues one request and decodes the JSON response into out (when out is
// non-nil). Content-Type defaults to application/json. A transport failure
// wraps common.ErrUnavailable; a non-2xx status yields an *Error carrying
// the normalized detail message.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, path, query, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.send(ctx, req, out)
}

// newRequest builds the request URL from the configured base, the path
// suffix, and the (possibly empty) query string.
func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	c.authorize(ctx, req)
	return req, nil
}

// send executes the request and handles the shared response contract.
func (c *Client) send(ctx context.Context, req *http.Request, out any) error {
	if c.log != nil {
		c.log.Debug(ctx, "api request", "method", req.Method, "url", req.URL.String())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := errorFromResponse(resp)
		if c.log != nil {
			c.log.Warn(ctx, "api request failed",
				"method", req.Method, "url", req.URL.String(),
				"status", resp.StatusCode, "detail", apiErr.Detail)
		}
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
