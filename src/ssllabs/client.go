// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package ssllabs

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/H0llyW00dzZ/ssllabs-scanner/src/config"
	"github.com/H0llyW00dzZ/ssllabs-scanner/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/ssllabs-scanner/src/logger"
	"github.com/H0llyW00dzZ/ssllabs-scanner/src/version"
)

// ErrInvalidConfig indicates a configuration the client cannot work with.
var ErrInvalidConfig = errors.New("ssllabs: invalid client configuration")

// maxBodySize bounds every response body read by the client.
const maxBodySize = 32 << 20

// WaitFunc blocks for d or until ctx is done, returning ctx.Err() in the
// latter case. It is the only suspension point of the poll loop and the
// scan orchestrator.
type WaitFunc func(ctx context.Context, d time.Duration) error

// SleepContext is the default [WaitFunc].
func SleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Client talks to the assessment API.
//
// Thread Safety: Safe for concurrent use. Independent scans share only the
// capacity cell.
type Client struct {
	cfg        *config.Config
	baseURL    *url.URL
	httpClient *http.Client
	userAgent  string
	log        logger.Logger
	debugLog   logger.Logger
	capacity   *Capacity
	wait       WaitFunc
	pool       gc.Pool

	notStartedDelay time.Duration
	inProgressDelay time.Duration
}

// ClientOption customizes a [Client].
type ClientOption func(*Client)

// WithConfig sets the configuration. The default is [config.Default].
func WithConfig(cfg *config.Config) ClientOption {
	return func(c *Client) { c.cfg = cfg }
}

// WithHTTPClient replaces the HTTP client built from the configuration.
// The configured proxy and timeout are then the caller's concern.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger for progress and debug output. Without it,
// progress is discarded and debug output, when enabled by the configuration
// or SSLLABS_DEBUG, goes to stderr.
func WithLogger(l logger.Logger) ClientOption {
	return func(c *Client) { c.log = l }
}

// WithCapacity shares a capacity cell between clients.
func WithCapacity(cp *Capacity) ClientOption {
	return func(c *Client) { c.capacity = cp }
}

// WithWaitFunc replaces [SleepContext], mainly for tests.
func WithWaitFunc(w WaitFunc) ClientOption {
	return func(c *Client) { c.wait = w }
}

// WithPollDelays overrides the configured poll delays. Non-positive values
// keep the configured ones.
func WithPollDelays(notStarted, inProgress time.Duration) ClientOption {
	return func(c *Client) {
		c.notStartedDelay = notStarted
		c.inProgressDelay = inProgress
	}
}

// NewClient creates a client.
//
// Parameters:
//   - opts: Functional options applied in order
//
// Returns:
//   - *Client: Ready to use client
//   - error: [ErrInvalidConfig] when the API URL or the proxy cannot be parsed
func NewClient(opts ...ClientOption) (*Client, error) {
	c := &Client{}
	for _, opt := range opts {
		opt(c)
	}

	if c.cfg == nil {
		c.cfg = config.Default()
	}
	if c.log == nil {
		c.log = logger.Discard()
		c.debugLog = logger.NewCLILogger()
	} else {
		c.debugLog = c.log
	}
	if c.capacity == nil {
		c.capacity = NewCapacity()
	}
	if c.wait == nil {
		c.wait = SleepContext
	}
	if c.pool == nil {
		c.pool = gc.Default
	}

	if c.notStartedDelay <= 0 {
		c.notStartedDelay = positiveOr(c.cfg.NotStartedDelay(), config.DefaultNotStartedDelayMs*time.Millisecond)
	}
	if c.inProgressDelay <= 0 {
		c.inProgressDelay = positiveOr(c.cfg.InProgressDelay(), config.DefaultInProgressDelayMs*time.Millisecond)
	}

	rawURL := c.cfg.API.URL
	if rawURL == "" {
		rawURL = config.DefaultAPIURL
	}
	base, err := url.Parse(rawURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: api url %q", ErrInvalidConfig, rawURL)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	c.baseURL = base

	c.userAgent = c.cfg.API.UserAgent
	if c.userAgent == "" {
		c.userAgent = fmt.Sprintf("SSL-Labs-Scanner/%s (+https://github.com/H0llyW00dzZ/ssllabs-scanner)", version.Version)
	}

	if c.httpClient == nil {
		hc, err := newHTTPClient(c.cfg)
		if err != nil {
			return nil, err
		}
		c.httpClient = hc
	}

	return c, nil
}

// newHTTPClient builds the transport. The proxy is read once here: the
// configured value wins, otherwise the standard proxy environment applies.
func newHTTPClient(cfg *config.Config) (*http.Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = http.ProxyFromEnvironment

	if cfg.API.Proxy != "" {
		proxyURL, err := url.Parse(cfg.API.Proxy)
		if err != nil || proxyURL.Host == "" {
			return nil, fmt.Errorf("%w: proxy %q", ErrInvalidConfig, cfg.API.Proxy)
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	timeout := positiveOr(cfg.Timeout(), config.DefaultTimeoutSeconds*time.Second)
	return &http.Client{Timeout: timeout, Transport: transport}, nil
}

func positiveOr(d, fallback time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return fallback
}

// Capacity returns the capacity cell the client updates.
func (c *Client) Capacity() *Capacity { return c.capacity }

// UserAgent returns the User-Agent header sent with every request.
func (c *Client) UserAgent() string { return c.userAgent }

// debugEnabled is evaluated at every diagnostic point so the environment
// switch takes effect without rebuilding the client.
func (c *Client) debugEnabled() bool {
	if c.cfg.Debug {
		return true
	}
	v, ok := os.LookupEnv(config.EnvDebug)
	if !ok {
		return false
	}
	on, _ := parseBoolToken(v)
	return on
}

func (c *Client) debugf(format string, v ...any) {
	if c.debugEnabled() {
		c.debugLog.Printf(format, v...)
	}
}
