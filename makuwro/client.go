package makuwro

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// DefaultTimeout bounds each request unless WithTimeout overrides it.
const DefaultTimeout = 30 * time.Second

// Client mediates access to the Makuwro REST API and realtime gateway.
//
// A Client is not safe for concurrent use across goroutines: the cached
// authenticated user and the gateway handle are mutated without locking by
// the owner of the instance.
type Client struct {
	endpoint   Endpoint
	token      string
	timeout    time.Duration
	httpClient *http.Client
	logger     zerolog.Logger

	// cachedUser holds the authenticated user once resolved. It is only
	// invalidated by process restart.
	cachedUser *User

	gateway *websocket.Conn
}

// NewClient creates a new Makuwro client against the given endpoint.
func NewClient(endpoint Endpoint, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if endpoint.API == "" {
		return nil, fmt.Errorf("makuwro API base URL is required")
	}

	endpoint.API = strings.TrimRight(endpoint.API, "/")
	endpoint.Gateway = strings.TrimRight(endpoint.Gateway, "/")

	client := &Client{
		endpoint:   endpoint,
		timeout:    DefaultTimeout,
		httpClient: &http.Client{},
		logger:     logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Token returns the current session token, if any.
func (c *Client) Token() string { return c.token }

// request performs one authenticated HTTP exchange against the endpoint.
//
// The stored session token is attached when present, and the call is bounded
// by the configured timeout. On success the body is decoded only for GET
// requests or when parseBody is set. A non-2xx response is always decoded and
// mapped through the error table; callers never see a raw HTTP status. No
// retry is attempted.
func (c *Client) request(ctx context.Context, method, path string, headers map[string]string, body io.Reader, contentType string, parseBody bool) (json.RawMessage, error) {
	url := fmt.Sprintf("%s/%s", c.endpoint.API, path)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("token", c.token)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%s %s exceeded the %s deadline: %w", method, path, c.timeout, ErrTimeout)
		}
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%s %s exceeded the %s deadline: %w", method, path, c.timeout, ErrTimeout)
		}
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Msg("Makuwro API request")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errorFromResponse(resp.StatusCode, raw)
	}

	if method == http.MethodGet || parseBody {
		return json.RawMessage(raw), nil
	}

	return nil, nil
}

// isTimeout reports whether err is a deadline failure rather than some other
// transport error.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
