// Package agent is a typed HTTP client for the Home Assistant agent add-on.
//
// The agent owns every piece of domain logic (file storage, Git versioning,
// the supervisor, HACS). This client only binds a base URL and bearer token
// to the agent's REST surface: it serializes requests, attaches auth and
// version headers, applies per-call timeouts and returns decoded bodies.
// It never retries and never caches.
package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-querystring/query"
)

const (
	// DefaultTimeout bounds every call that does not override it. Listing
	// large installations can legitimately take tens of seconds.
	DefaultTimeout = 90 * time.Second

	// LongTimeout bounds add-on install and update, which pull images.
	LongTimeout = 600 * time.Second

	// VersionHeader carries the client version on every request.
	VersionHeader = "X-Client-Version"
)

// ErrTimeout is matched (errors.Is) by any call that exceeded its budget.
var ErrTimeout = errors.New("request timed out")

// Observer receives one notification per completed round trip.
// status is zero when no response was received.
type Observer interface {
	ObserveRequest(op string, status int, elapsed time.Duration)
}

// Client talks to a single agent instance. It is safe for concurrent use;
// its configuration is immutable after New returns.
type Client struct {
	baseURL    *url.URL
	token      string
	version    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
	observer   Observer
}

// Option configures a Client.
type Option func(*Client)

// WithVersion sets the version advertised in the client-version header.
func WithVersion(v string) Option {
	return func(c *Client) { c.version = strings.TrimSpace(v) }
}

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying http.Client. Its own Timeout should
// be zero; budgets are enforced per call through the request context.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithObserver registers a request observer (metrics).
func WithObserver(o Observer) Option {
	return func(c *Client) { c.observer = o }
}

// New creates a client for the agent at baseURL authenticated with token.
func New(baseURL, token string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("agent: base URL is required")
	}
	if strings.TrimSpace(token) == "" {
		return nil, errors.New("agent: token is required")
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("agent: invalid base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("agent: unsupported URL scheme %q", u.Scheme)
	}

	c := &Client{
		baseURL:    u,
		token:      token,
		version:    "dev",
		timeout:    DefaultTimeout,
		httpClient: &http.Client{},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Timeout reports the default per-call budget.
func (c *Client) Timeout() time.Duration { return c.timeout }

// BaseURL reports the agent address.
func (c *Client) BaseURL() string { return c.baseURL.String() }

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	// Detail is the agent's structured error message, when it sent one.
	Detail string
	Body   string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status code %d", e.StatusCode)
}

// request describes one round trip.
type request struct {
	op      string // stable label for logs and metrics
	method  string
	path    string
	query   url.Values
	body    any
	timeout time.Duration
}

// do performs the request and returns the raw response body. An empty body
// is returned as nil.
func (c *Client) do(ctx context.Context, r request) (json.RawMessage, error) {
	budget := r.timeout
	if budget <= 0 {
		budget = c.timeout
	}
	callCtx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()

	u := c.baseURL.JoinPath(r.path)
	if len(r.query) > 0 {
		u.RawQuery = r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		data, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("%s %s: encode body: %w", r.method, r.path, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(callCtx, r.method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: build request: %w", r.method, r.path, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(VersionHeader, "hamcp/"+c.version)
	req.Header.Set("User-Agent", "hamcp/"+c.version)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(r.op, 0, time.Since(start))
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, fmt.Errorf("%s %s: %w after %s", r.method, r.path, ErrTimeout, budget)
		}
		return nil, fmt.Errorf("%s %s: %w", r.method, r.path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	elapsed := time.Since(start)
	c.observe(r.op, resp.StatusCode, elapsed)
	if err != nil {
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, fmt.Errorf("%s %s: %w after %s", r.method, r.path, ErrTimeout, budget)
		}
		return nil, fmt.Errorf("%s %s: read body: %w", r.method, r.path, err)
	}

	c.logger.Debug("agent request",
		"op", r.op,
		"method", r.method,
		"path", r.path,
		"status", resp.StatusCode,
		"elapsed", elapsed,
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Method:     r.method,
			Path:       r.path,
			Detail:     errorDetail(data),
			Body:       string(data),
		}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	return data, nil
}

func (c *Client) observe(op string, status int, elapsed time.Duration) {
	if c.observer != nil {
		c.observer.ObserveRequest(op, status, elapsed)
	}
}

// errorDetail extracts the agent's error message. FastAPI style
// {"detail": ...} is preferred; validation errors arrive as structured
// detail and are rendered as compact JSON.
func errorDetail(data []byte) string {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	for _, key := range []string{"detail", "error", "message"} {
		raw, ok := payload[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			if s != "" {
				return s
			}
			continue
		}
		if string(raw) != "null" {
			return string(raw)
		}
	}
	return ""
}

// pluck narrows an object response to one field. A missing field yields
// nil; a non-object body is returned unchanged.
func pluck(raw json.RawMessage, field string) json.RawMessage {
	if raw == nil {
		return nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return raw
	}
	return obj[field]
}

// values encodes an options struct with `url` tags. Zero fields tagged
// omitempty are never serialized.
func values(opts any) (url.Values, error) {
	v, err := query.Values(opts)
	if err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}
	return v, nil
}

func (c *Client) get(ctx context.Context, op, path string, q url.Values) (json.RawMessage, error) {
	return c.do(ctx, request{op: op, method: http.MethodGet, path: path, query: q})
}

func (c *Client) post(ctx context.Context, op, path string, body any) (json.RawMessage, error) {
	return c.do(ctx, request{op: op, method: http.MethodPost, path: path, body: body})
}

func (c *Client) put(ctx context.Context, op, path string, body any) (json.RawMessage, error) {
	return c.do(ctx, request{op: op, method: http.MethodPut, path: path, body: body})
}

func (c *Client) del(ctx context.Context, op, path string, q url.Values) (json.RawMessage, error) {
	return c.do(ctx, request{op: op, method: http.MethodDelete, path: path, query: q})
}

// commitQuery returns the query for delete-style calls carrying a commit
// message, or nil when there is none.
func commitQuery(msg string) url.Values {
	if msg == "" {
		return nil
	}
	return url.Values{"commit_message": []string{msg}}
}

// segment escapes a single path segment (entity ids, slugs, file names).
func segment(s string) string {
	return url.PathEscape(s)
}
