package graphql

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Transport sends a GraphQL document and returns the raw response body.
type Transport interface {
	Execute(ctx context.Context, query string, variables map[string]any) (string, error)
}

type payload struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// HTTPTransport posts documents to <endpoint>/graphql. It does not retry.
type HTTPTransport struct {
	url     string
	http    *resty.Client
	limiter *rate.Limiter
	logger  zerolog.Logger

	mu            sync.RWMutex
	authorization string
}

// NewHTTPTransport creates a transport for the API rooted at endpoint
func NewHTTPTransport(endpoint string, logger zerolog.Logger, opts ...Option) (*HTTPTransport, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("graphql endpoint is required")
	}

	options := transportOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	var client *resty.Client
	if options.httpClient != nil {
		client = resty.NewWithClient(options.httpClient)
	} else {
		client = resty.New()
	}
	if options.timeout > 0 {
		client.SetTimeout(options.timeout)
	}
	if options.userAgent != "" {
		client.SetHeader("User-Agent", options.userAgent)
	}
	client.SetHeader("Accept", "application/json")
	client.SetHeader("Content-Type", "application/json")

	return &HTTPTransport{
		url:     strings.TrimRight(endpoint, "/") + "/graphql",
		http:    client,
		limiter: options.limiter,
		logger:  logger,
	}, nil
}

// URL returns the GraphQL endpoint the transport posts to
func (t *HTTPTransport) URL() string {
	return t.url
}

// SetAuthorization sets the Authorization header sent with every request.
// An empty value removes it.
func (t *HTTPTransport) SetAuthorization(value string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.authorization = value
}

// Authorization returns the current Authorization header value
func (t *HTTPTransport) Authorization() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.authorization
}

// Execute posts {query, variables} and returns the body text unchanged,
// whatever the status code.
func (t *HTTPTransport) Execute(ctx context.Context, query string, variables map[string]any) (string, error) {
	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	req := t.http.R().
		SetContext(ctx).
		SetBody(payload{Query: query, Variables: variables})
	if auth := t.Authorization(); auth != "" {
		req.SetHeader("Authorization", auth)
	}

	resp, err := req.Post(t.url)
	if err != nil {
		return "", err
	}

	t.logger.Debug().
		Str("url", t.url).
		Int("status", resp.StatusCode()).
		Int("bytes", len(resp.Body())).
		Msg("GraphQL response received")

	return string(resp.Body()), nil
}
