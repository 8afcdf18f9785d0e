// Package client talks to the bandwidth backend over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"nathanbeddoewebdev/bwdash/internal/domain"
	"nathanbeddoewebdev/bwdash/internal/retry"

	"github.com/charmbracelet/log"
)

const (
	bandwidthPath  = "/bandwidth"
	defaultTimeout = 10 * time.Second

	// maxErrorBody caps how much of a failed response is quoted in errors.
	maxErrorBody = 512
)

// Client implements the two request shapes of POST /bandwidth.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
	retry   retry.Config
	logger  *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithToken sends token as a bearer credential on every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithTimeout bounds each HTTP attempt.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.client.Timeout = d
		}
	}
}

// WithRetry replaces the retry policy.
func WithRetry(cfg retry.Config) Option {
	return func(c *Client) { c.retry = cfg }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithLogger sets the logger used for retries and failures.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New returns a client for the backend at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: defaultTimeout},
		retry:   retry.DefaultConfig(),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.retry.OnRetry == nil {
		c.retry.OnRetry = func(attempt int, err error, delay time.Duration) {
			c.logger.Warn("retrying backend request", "attempt", attempt, "delay", delay, "err", err)
		}
	}
	return c
}

// BaseURL returns the backend base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// --- Request/response types ---

// seriesRequest is the body for the raw series shape.
type seriesRequest struct {
	From int64 `json:"from"`
	To   int64 `json:"to"`
}

// aggregateRequest is the body for the aggregate shape.
type aggregateRequest struct {
	From      int64                `json:"from"`
	To        int64                `json:"to"`
	Aggregate domain.AggregateFunc `json:"aggregate"`
}

// --- Fetches ---

// FetchSeries returns the raw CDN and P2P series for w.
func (c *Client) FetchSeries(ctx context.Context, w domain.Window) (domain.SeriesResponse, error) {
	from, to := w.Millis()

	var out domain.SeriesResponse
	if err := c.post(ctx, seriesRequest{From: from, To: to}, &out); err != nil {
		return domain.SeriesResponse{}, fmt.Errorf("failed to fetch bandwidth: %w", err)
	}
	return out, nil
}

// FetchAggregate returns one scalar per path for fn over w.
func (c *Client) FetchAggregate(ctx context.Context, w domain.Window, fn domain.AggregateFunc) (domain.AggregateResponse, error) {
	from, to := w.Millis()

	var out domain.AggregateResponse
	if err := c.post(ctx, aggregateRequest{From: from, To: to, Aggregate: fn}, &out); err != nil {
		return domain.AggregateResponse{}, fmt.Errorf("failed to fetch %s bandwidth: %w", fn, err)
	}
	return out, nil
}

// --- HTTP helpers ---

// post sends body to /bandwidth and decodes the response into out,
// retrying transient failures.
func (c *Client) post(ctx context.Context, body any, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	return retry.Do(ctx, c.retry, retry.IsRetryable, func(ctx context.Context) error {
		return c.doJSON(ctx, data, out)
	})
}

func (c *Client) doJSON(ctx context.Context, body []byte, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+bandwidthPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("backend response", "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return statusError(resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	return nil
}

// statusError maps a non-2xx status to a domain sentinel.
func statusError(status int, body string) error {
	detail := fmt.Sprintf("HTTP %d", status)
	if body != "" {
		detail += ": " + body
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: %s", domain.ErrUnauthorized, detail)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", domain.ErrNotFound, detail)
	case status == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", domain.ErrRateLimited, detail)
	case status >= 500:
		return fmt.Errorf("%w: %s", domain.ErrBackendUnavailable, detail)
	default:
		return fmt.Errorf("backend rejected request: %s", detail)
	}
}
