// Package upstream wraps outbound HTTP calls to the public data providers.
// Every call is a single attempt guarded by a circuit breaker; failures are
// terminal for the invocation and classified as either ErrUnavailable
// (transport or status failure) or ErrMalformed (undecodable payload).
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
)

var (
	// ErrUnavailable indicates the provider could not be reached or answered
	// with a non-success status.
	ErrUnavailable = errors.New("upstream unavailable")

	// ErrMalformed indicates the provider answered but the payload could not
	// be decoded.
	ErrMalformed = errors.New("malformed upstream response")

	errNoHTTPClient = errors.New("http client not configured")
)

// Client is a one-shot JSON caller for a single named provider.
type Client struct {
	name       string
	userAgent  string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
}

// New creates a Client for the named provider sharing the given http.Client.
func New(name, userAgent string, httpClient *http.Client) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		name:       name,
		userAgent:  userAgent,
		httpClient: httpClient,
		breaker:    cb,
	}
}

// Name returns the provider name the client was built for.
func (c *Client) Name() string {
	return c.name
}

// GetJSON issues a GET against fullURL and decodes the JSON body into out.
func (c *Client) GetJSON(ctx context.Context, fullURL string, accept string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	return c.do(req, out)
}

// PostFormJSON issues a form-encoded POST against fullURL and decodes the
// JSON body into out.
func (c *Client) PostFormJSON(ctx context.Context, fullURL string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fullURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	if c.httpClient == nil {
		return errNoHTTPClient
	}

	req.Header.Set("User-Agent", c.userAgent)

	result, err := c.breaker.Execute(func() (interface{}, error) {
		resp, execErr := c.httpClient.Do(req)
		if execErr != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, c.name, execErr)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			io.Copy(io.Discard, resp.Body)
			return nil, fmt.Errorf("%w: %s: status %d", ErrUnavailable, c.name, resp.StatusCode)
		}

		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, c.name, readErr)
		}
		return body, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return fmt.Errorf("%w: %s: circuit open", ErrUnavailable, c.name)
		}
		return err
	}

	body, ok := result.([]byte)
	if !ok {
		return fmt.Errorf("unexpected result type from circuit breaker")
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %s: decode: %v", ErrMalformed, c.name, err)
	}
	return nil
}
