// Package api implements the client for the answer service that turns
// natural-language questions into PromQL answers.
package api

import (
	"context"
	"fmt"
	"strings"

	http "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
	"github.com/rs/zerolog"

	"github.com/diogo/promchat/internal/config"
	"github.com/diogo/promchat/internal/models"
)

// maxResponseSize caps how much of a response body is read
const maxResponseSize = 10 << 20

// AnswerService answers a single question
type AnswerService interface {
	Ask(ctx context.Context, question string) (*models.Answer, error)
}

// Doer sends a prepared HTTP request. tls_client.HttpClient satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the answer service over HTTP
type Client struct {
	endpoint   string
	httpClient Doer
	logger     zerolog.Logger
	proxy      string
	userAgent  string
}

// Ensure Client implements AnswerService
var _ AnswerService = (*Client)(nil)

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithHTTPClient replaces the default TLS client
func WithHTTPClient(doer Doer) ClientOption {
	return func(c *Client) {
		c.httpClient = doer
	}
}

// WithLogger sets the logger for request metadata
func WithLogger(logger zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithProxy routes requests through the given proxy URL
func WithProxy(proxy string) ClientOption {
	return func(c *Client) {
		c.proxy = proxy
	}
}

// WithUserAgent sets the User-Agent header
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a client for the given endpoint
func NewClient(endpoint string, opts ...ClientOption) (*Client, error) {
	endpoint = strings.TrimSpace(endpoint)
	if err := config.ValidateAPIURL(endpoint); err != nil {
		return nil, err
	}

	client := &Client{
		endpoint:  endpoint,
		logger:    zerolog.Nop(),
		userAgent: "promchat",
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		httpClient, err := newTLSClient(client.proxy)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP client: %w", err)
		}
		client.httpClient = httpClient
	}

	return client, nil
}

// newTLSClient builds the default transport. There is no request timeout:
// a question stays pending until the service answers or the context ends.
func newTLSClient(proxy string) (tls_client.HttpClient, error) {
	options := []tls_client.HttpClientOption{
		tls_client.WithTimeoutSeconds(0),
		tls_client.WithClientProfile(profiles.Chrome_120),
	}
	if proxy != "" {
		options = append(options, tls_client.WithProxyUrl(proxy))
	}

	return tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
}

// Endpoint returns the answer service URL
func (c *Client) Endpoint() string {
	return c.endpoint
}
