package nanocld

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nxthat/nanocl/internal/util/retry"
)

// DefaultHost is the daemon address used when none is configured.
const DefaultHost = "unix:///run/nanocl/nanocl.sock"

// RealClient implements Client over HTTP.
type RealClient struct {
	baseURL        *url.URL
	httpClient     *http.Client
	requestTimeout time.Duration

	maxRetries   int
	initialDelay time.Duration
	maxDelay     time.Duration
	onRetry      func(operation string, attempt int, err error)
}

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithHTTPClient sets a custom HTTP client (useful for testing).
// It replaces the transport derived from the host.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *RealClient) {
		c.httpClient = hc
	}
}

// WithRequestTimeout bounds every non-streaming request. Zero disables the bound.
func WithRequestTimeout(d time.Duration) ClientOption {
	return func(c *RealClient) {
		c.requestTimeout = d
	}
}

// WithRetry sets the retry policy applied to read-only requests that fail
// at the transport level. maxRetries counts retries after the first attempt.
func WithRetry(maxRetries int, initialDelay time.Duration) ClientOption {
	return func(c *RealClient) {
		c.maxRetries = maxRetries
		c.initialDelay = initialDelay
	}
}

// WithRetryMaxDelay caps the backoff between retries. Zero keeps the default cap.
func WithRetryMaxDelay(d time.Duration) ClientOption {
	return func(c *RealClient) {
		if d > 0 {
			c.maxDelay = d
		}
	}
}

// WithRetryHook registers fn to be called before every retry of a request.
func WithRetryHook(fn func(operation string, attempt int, err error)) ClientOption {
	return func(c *RealClient) {
		c.onRetry = fn
	}
}

// NewRealClient creates a client for the daemon at host.
//
// Supported hosts:
//   - unix:///path/to/nanocl.sock
//   - tcp://host:port (plain HTTP)
//   - http://host:port and https://host:port
func NewRealClient(host string, opts ...ClientOption) (*RealClient, error) {
	if host == "" {
		host = DefaultHost
	}

	baseURL, transport, err := resolveHost(host)
	if err != nil {
		return nil, err
	}

	c := &RealClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Transport: transport},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// retryOptions builds the retry policy of one read-only request.
func (c *RealClient) retryOptions(operation string) []retry.Option {
	opts := []retry.Option{
		retry.WithMaxRetries(c.maxRetries),
		retry.WithInitialDelay(c.initialDelay),
		retry.WithRetryIf(IsTransport),
	}
	if c.maxDelay > 0 {
		opts = append(opts, retry.WithMaxDelay(c.maxDelay))
	}
	if c.onRetry != nil {
		opts = append(opts, retry.WithOnRetry(func(attempt int, err error) {
			c.onRetry(operation, attempt, err)
		}))
	}
	return opts
}

// resolveHost maps a daemon address to the base URL of requests and the
// transport that reaches it.
func resolveHost(host string) (*url.URL, http.RoundTripper, error) {
	u, err := url.Parse(host)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid daemon host %q: %w", host, err)
	}

	switch u.Scheme {
	case "unix":
		socket := u.Path
		if socket == "" {
			return nil, nil, fmt.Errorf("invalid daemon host %q: missing socket path", host)
		}
		transport := &http.Transport{
			DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
				var d net.Dialer
				return d.DialContext(ctx, "unix", socket)
			},
		}
		return &url.URL{Scheme: "http", Host: "localhost"}, transport, nil
	case "tcp":
		return &url.URL{Scheme: "http", Host: u.Host}, http.DefaultTransport, nil
	case "http", "https":
		return &url.URL{Scheme: u.Scheme, Host: u.Host, Path: strings.TrimSuffix(u.Path, "/")}, http.DefaultTransport, nil
	default:
		return nil, nil, fmt.Errorf("invalid daemon host %q: unsupported scheme %q", host, u.Scheme)
	}
}

// Version returns the daemon build information.
func (c *RealClient) Version(ctx context.Context) (*Version, error) {
	var v Version
	if err := c.getJSON(ctx, "version", "/version", "", &v); err != nil {
		return nil, err
	}
	return &v, nil
}
