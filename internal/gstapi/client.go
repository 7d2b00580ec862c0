package gstapi

import (
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

	"github.com/dmitrymomot/gstcheck/internal/metrics"
	"github.com/dmitrymomot/gstcheck/pkg/gstin"
	"github.com/dmitrymomot/gstcheck/pkg/logger"
	"github.com/dmitrymomot/gstcheck/pkg/requestid"
)

const returnsPath = "/api/gst-returns/"

// Client talks to the GST return lookup API. It is safe for concurrent use.
type Client struct {
	base    *url.URL
	http    *http.Client
	maxBody int64
	log     *slog.Logger
	metrics *metrics.Metrics
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default client. Its Timeout is left untouched.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// New validates cfg and builds a Client.
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	base, _ := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))

	c := &Client{
		base:    base,
		http:    &http.Client{Timeout: cfg.Timeout},
		maxBody: cfg.MaxBodyBytes,
		log:     logger.Discard(),
	}
	if c.maxBody <= 0 {
		c.maxBody = 1 << 20
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(logger.Component("gstapi"))
	return c, nil
}

// Fetch issues one GET for id. It never retries.
//
// The result is the envelope for a found taxpayer, or an error matching
// ErrNotFound, ErrTransport or *APIError.
func (c *Client) Fetch(ctx context.Context, id gstin.GSTIN) (*Envelope, error) {
	start := time.Now()
	env, err := c.fetch(ctx, id)

	result := resultLabel(err)
	c.metrics.ObserveUpstream(result, start)

	level := slog.LevelDebug
	if result == "error" {
		level = slog.LevelWarn
	}
	c.log.LogAttrs(ctx, level, "gst returns fetched",
		logger.GSTIN(id.String()),
		logger.Outcome(result),
		logger.Duration(time.Since(start)),
		logger.Error(err),
	)
	return env, err
}

func (c *Client) fetch(ctx context.Context, id gstin.GSTIN) (*Envelope, error) {
	u := c.base.JoinPath(returnsPath, url.PathEscape(id.String()))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")
	requestid.Propagate(ctx, req.Header)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}

	var env Envelope
	decodeErr := json.NewDecoder(io.LimitReader(resp.Body, c.maxBody)).Decode(&env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		if decodeErr == nil {
			apiErr.Message = env.Error
		}
		return nil, apiErr
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrTransport, decodeErr)
	}

	switch {
	case env.Success && env.Data != nil:
		return &env, nil
	case !env.Success && env.Error != "":
		return nil, &APIError{Status: resp.StatusCode, Message: env.Error}
	default:
		return nil, ErrNotFound
	}
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}
