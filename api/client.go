package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TokenSource supplies the current bearer credential per request. An empty
// return means the request is sent unauthenticated.
type TokenSource func() string

// Client is a thin, stateless wrapper over the OpenLearn REST endpoints.
// It is safe for concurrent use.
type Client struct {
	baseURL   string
	httpc     *http.Client
	tokens    TokenSource
	userAgent string
	logger    zerolog.Logger
}

// Option configures a [Client].
type Option func(*Client)

// WithHTTPClient injects the HTTP client used for all requests. Timeout
// policy lives here.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		if httpc != nil {
			c.httpc = httpc
		}
	}
}

// WithTokenSource sets the bearer credential supplier.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithLogger attaches a logger; requests are logged at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a Client for the API rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		httpc:     http.DefaultClient,
		userAgent: "learnkit/1",
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// errorBody is the uniform error payload: every non-2xx response carries a
// human-readable "message" when the server has one.
type errorBody struct {
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestID := requestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Debug().Str("method", method).Str("path", path).
			Str("request_id", requestID).Err(err).Msg("api transport failure")
		return fmt.Errorf("%w: %w", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	c.logger.Debug().Str("method", method).Str("path", path).
		Str("request_id", requestID).Int("status", resp.StatusCode).Msg("api call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		// A malformed or empty error body leaves Message empty.
		_ = json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&eb)
		return newError(resp.StatusCode, eb.Message)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
