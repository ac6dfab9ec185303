package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/learnsphere-dev/learnsphere/shared/logger"
	"github.com/learnsphere-dev/learnsphere/shared/metrics"
	"github.com/learnsphere-dev/learnsphere/shared/validation"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ErrBackendUnavailable wraps failures to complete the HTTP exchange.
	ErrBackendUnavailable = errors.New("backend unavailable")
	// ErrInvalidJSON wraps a response body that does not parse as JSON.
	ErrInvalidJSON = errors.New("response body is not valid JSON")
)

// Doer is the part of *http.Client the client needs.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// Config is injected at construction; endpoints are appended to BaseURL
// verbatim.
type Config struct {
	BaseURL string `validate:"required,url"`
}

// Client talks JSON to the LearnSphere API. It holds no per-call state and is
// safe for concurrent use.
type Client struct {
	baseURL string
	doer    Doer
	metrics *metrics.Client
	log     *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(d Doer) Option {
	return func(c *Client) { c.doer = d }
}

// WithMetrics instruments every request with m. Applied after WithHTTPClient
// regardless of option order.
func WithMetrics(m *metrics.Client) Option {
	return func(c *Client) { c.metrics = m }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New creates a new client for interacting with the backend.
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := validation.Struct(cfg); err != nil {
		return nil, fmt.Errorf("apiclient: %w", err)
	}

	c := &Client{
		baseURL: cfg.BaseURL,
		doer:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.metrics != nil {
		c.doer = roundTripDoer{c.metrics.Wrap(promhttp.RoundTripperFunc(c.doer.Do))}
	}
	return c, nil
}

// BaseURL returns the origin requests are resolved against.
func (c *Client) BaseURL() string { return c.baseURL }

type roundTripDoer struct {
	rt http.RoundTripper
}

func (d roundTripDoer) Do(req *http.Request) (*http.Response, error) {
	return d.rt.RoundTrip(req)
}

func (c *Client) logger() *slog.Logger {
	if c.log != nil {
		return c.log
	}
	return logger.Log
}

// headers always sets the JSON content type and adds a bearer credential only
// for a non-empty token. Nothing else is added; in particular no CSRF header.
func headers(token string) http.Header {
	h := make(http.Header, 2)
	h.Set("Content-Type", "application/json")
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

// send is the single helper every request goes through. A nil body means the
// request carries none; otherwise body is JSON-encoded exactly once.
func (c *Client) send(ctx context.Context, method, endpoint string, body any, hasBody bool, token string) (*http.Response, error) {
	var reader io.Reader
	if hasBody {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create API request: %w", err)
	}
	req.Header = headers(token)

	log := c.logger().With("call_id", uuid.NewString(), "method", method, "url", req.URL.Redacted())
	log.Debug("api request")
	start := time.Now()

	resp, err := c.doer.Do(req)
	if err != nil {
		log.Debug("api request failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}
	log.Debug("api response", "status", resp.StatusCode, "duration", time.Since(start))
	return resp, nil
}

// Get issues a GET for endpoint and returns the decoded JSON body, whatever
// the response status. Objects decode to map[string]any and numbers to
// json.Number.
//
// endpoint is appended to the base URL without any encoding; callers must
// escape untrusted path segments (see PathEscape).
func (c *Client) Get(ctx context.Context, endpoint, token string) (any, error) {
	var v any
	if err := c.GetInto(ctx, endpoint, token, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// Post is Get with method POST and data serialized as the JSON request body.
func (c *Client) Post(ctx context.Context, endpoint string, data any, token string) (any, error) {
	var v any
	if err := c.PostInto(ctx, endpoint, data, token, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// GetInto is Get decoding into out. Like Get it ignores the status code.
func (c *Client) GetInto(ctx context.Context, endpoint, token string, out any) error {
	resp, err := c.send(ctx, http.MethodGet, endpoint, nil, false, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return decodeJSON(resp.Body, out)
}

// PostInto is Post decoding into out. Like Post it ignores the status code.
func (c *Client) PostInto(ctx context.Context, endpoint string, data any, token string, out any) error {
	resp, err := c.send(ctx, http.MethodPost, endpoint, data, true, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return decodeJSON(resp.Body, out)
}

// Response is a fully read API response for callers that need the status.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// OK reports a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func (r *Response) Decode(out any) error {
	return decodeJSON(bytes.NewReader(r.Body), out)
}

// Do sends method to endpoint and returns the response without judging its
// status. A nil data sends no body.
func (c *Client) Do(ctx context.Context, method, endpoint string, data any, token string) (*Response, error) {
	resp, err := c.send(ctx, method, endpoint, data, data != nil, token)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %w", ErrBackendUnavailable, err)
	}
	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: body}, nil
}

// decodeJSON requires exactly one JSON value in r.
func decodeJSON(r io.Reader, out any) error {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("%w: trailing data after JSON value", ErrInvalidJSON)
	}
	return nil
}

// Ping reports whether the API origin answers at all. Any HTTP response,
// whatever its status, counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Do(ctx, http.MethodGet, "/", nil, "")
	return err
}
