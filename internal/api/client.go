// Package api provides the HTTP client for the Waste Not service.
package api

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/wastenot/wastenot/internal/models"
)

// instrumentationName identifies this package to otel
const instrumentationName = "github.com/wastenot/wastenot/internal/api"

// maxErrorBody caps how much of a failed response is kept for diagnostics
const maxErrorBody = 4096

// Client talks to the Waste Not service
type Client struct {
	httpClient tls_client.HttpClient
	baseURL    string
	timeout    time.Duration
	limiter    *rate.Limiter
	logger     *zap.Logger
	tracer     trace.Tracer
	requests   metric.Int64Counter
	mu         sync.RWMutex
	closed     bool
}

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithBaseURL sets the service address, e.g. http://localhost:8123
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTimeout sets a per-request deadline. Zero means no deadline.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithRateLimit throttles outbound requests to rps per second. Zero disables it.
func WithRateLimit(rps float64) ClientOption {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithLogger sets the logger used for request logging
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client (used by tests)
func WithHTTPClient(httpClient tls_client.HttpClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new Client
func NewClient(opts ...ClientOption) (*Client, error) {
	client := &Client{
		baseURL: models.DefaultBaseURL,
		logger:  zap.L(),
		tracer:  otel.Tracer(instrumentationName),
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.baseURL == "" {
		return nil, fmt.Errorf("base URL cannot be empty")
	}

	if client.httpClient == nil {
		options := []tls_client.HttpClientOption{
			tls_client.WithClientProfile(profiles.Chrome_120),
			tls_client.WithTimeoutSeconds(transportTimeoutSeconds(client.timeout)),
		}

		httpClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP client: %w", err)
		}
		client.httpClient = httpClient
	}

	counter, err := otel.Meter(instrumentationName).Int64Counter(
		"wastenot.api.requests",
		metric.WithDescription("Requests sent to the Waste Not service"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request counter: %w", err)
	}
	client.requests = counter

	return client, nil
}

// transportTimeoutSeconds converts the request deadline into the
// transport's own timeout. The context deadline fires first; the transport
// gets one extra second. Zero turns the transport timeout off as well,
// since tls-client otherwise applies its own 30 second default.
func transportTimeoutSeconds(timeout time.Duration) int {
	if timeout <= 0 {
		return 0
	}
	return int(math.Ceil(timeout.Seconds())) + 1
}

// BaseURL returns the configured service address
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Close releases idle connections. Further requests fail.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	c.httpClient.CloseIdleConnections()
}

// IsClosed returns whether the client is closed
func (c *Client) IsClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}

// endpointURL joins the base URL and an endpoint path
func (c *Client) endpointURL(endpoint string) string {
	return c.baseURL + endpoint
}
