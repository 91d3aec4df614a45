// Package apiclient provides the single point of outbound communication
// with the remote REST API. It attaches bearer credentials to every
// request and transparently recovers from expired-access-token failures
// by performing one refresh exchange and replaying the original request
// exactly once.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/jonathan/cv-builder/internal/store"
	"github.com/jonathan/cv-builder/internal/types"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// refreshPath is the token refresh endpoint, relative to the base URL.
const refreshPath = "/auth/token/refresh/"

// maxErrorBodySize caps how much of an error response body is retained.
const maxErrorBodySize = 8 * 1024

// Options configures the client.
type Options struct {
	Timeout time.Duration
	// OnSessionExpired is invoked after an unrecoverable refresh failure,
	// once both tokens have been cleared. It is the CLI analogue of a
	// forced navigation to the login screen and must not be relied on to
	// return control flow: the original error still propagates.
	OnSessionExpired func()
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() *Options {
	return &Options{Timeout: DefaultTimeout}
}

// Client is the configured request pipeline. All domain services go
// through it; nothing else in the client talks to the network.
type Client struct {
	baseURL          string
	httpClient       *http.Client
	tokens           *store.TokenStore
	refreshGroup     singleflight.Group
	onSessionExpired func()
}

// New builds a Client against baseURL using the given token store.
func New(baseURL string, tokens *store.TokenStore, opts *Options) *Client {
	if opts == nil {
		opts = DefaultOptions()
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:          strings.TrimRight(baseURL, "/"),
		httpClient:       &http.Client{Timeout: timeout},
		tokens:           tokens,
		onSessionExpired: opts.OnSessionExpired,
	}
}

// call is one logical request. The attempt counter lives here, on an
// explicit wrapper, never on a shared request descriptor.
type call struct {
	method    string
	path      string
	body      []byte
	requestID string
	attempt   int
}

// Do issues a JSON request and decodes a 2xx response body into out
// (which may be nil). Non-2xx responses surface as *APIError. A single
// 401 triggers one refresh-and-replay; a 401 on the replayed request
// propagates without another refresh.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var encoded []byte
	if body != nil {
		var err error
		encoded, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	cl := &call{
		method:    method,
		path:      path,
		body:      encoded,
		requestID: uuid.NewString(),
	}

	resp, err := c.execute(ctx, cl)
	if err != nil {
		return err
	}

	if apiErr, ok := err401(cl.path, resp); ok {
		if refreshErr := c.refreshAccessToken(ctx); refreshErr != nil {
			// Unrecoverable: purge the session and surface the original
			// authorization failure to the caller.
			_ = c.tokens.Clear()
			if c.onSessionExpired != nil {
				c.onSessionExpired()
			}
			return apiErr
		}

		cl.attempt++
		resp, err = c.execute(ctx, cl)
		if err != nil {
			return err
		}
	}

	if apiErr := errorFromResponse(cl.path, resp); apiErr != nil {
		return apiErr
	}

	if out == nil || len(resp.body) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.body, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

// response is a fully drained HTTP response.
type response struct {
	statusCode int
	body       []byte
}

// execute performs one HTTP attempt for a call, attaching the stored
// access token when present.
func (c *Client) execute(ctx context.Context, cl *call) (*response, error) {
	var reader io.Reader
	if cl.body != nil {
		reader = bytes.NewReader(cl.body)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, c.url(cl.path), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", cl.path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", cl.requestID)
	if token := c.tokens.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Path: cl.path, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Path: cl.path, Message: "failed to read response body", Cause: err}
	}

	return &response{statusCode: resp.StatusCode, body: body}, nil
}

// refreshAccessToken performs the refresh exchange. Concurrent callers
// that each observed a 401 are coalesced into a single in-flight
// exchange; every caller sees the same outcome.
func (c *Client) refreshAccessToken(ctx context.Context) error {
	_, err, _ := c.refreshGroup.Do("refresh", func() (any, error) {
		refresh := c.tokens.RefreshToken()
		if refresh == "" {
			return nil, fmt.Errorf("no refresh token available")
		}

		payload, err := json.Marshal(types.RefreshRequest{Refresh: refresh})
		if err != nil {
			return nil, fmt.Errorf("failed to encode refresh request: %w", err)
		}

		// The refresh exchange authenticates with the refresh token in
		// the body, never with the (expired) bearer header.
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(refreshPath), bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("failed to create refresh request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, &TransportError{Path: refreshPath, Cause: err}
		}
		defer func() { _ = resp.Body.Close() }()

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		if err != nil {
			return nil, &TransportError{Path: refreshPath, Message: "failed to read response body", Cause: err}
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, newAPIError(refreshPath, resp.StatusCode, body)
		}

		var refreshed types.RefreshResponse
		if err := json.Unmarshal(body, &refreshed); err != nil {
			return nil, fmt.Errorf("failed to decode refresh response: %w", err)
		}
		if refreshed.Access == "" {
			return nil, fmt.Errorf("refresh response contained no access token")
		}

		if err := c.tokens.SetAccessToken(refreshed.Access); err != nil {
			return nil, fmt.Errorf("failed to store refreshed access token: %w", err)
		}
		return nil, nil
	})
	return err
}

// url joins the base URL and a resource path.
func (c *Client) url(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

// err401 returns the response as an *APIError when it is a 401 that is
// still eligible for the refresh-and-replay path.
func err401(path string, resp *response) (*APIError, bool) {
	if resp.statusCode != http.StatusUnauthorized {
		return nil, false
	}
	return newAPIError(path, resp.statusCode, resp.body), true
}

// errorFromResponse maps a non-2xx response to an *APIError, nil otherwise.
func errorFromResponse(path string, resp *response) *APIError {
	if resp.statusCode >= 200 && resp.statusCode < 300 {
		return nil
	}
	return newAPIError(path, resp.statusCode, resp.body)
}
