package graphql

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Option configures an HTTPTransport.
type Option func(*transportOptions)

// transportOptions holds configuration options for the HTTPTransport.
type transportOptions struct {
	timeout    time.Duration
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// WithTimeout sets the HTTP client timeout. Zero keeps the client default.
func WithTimeout(timeout time.Duration) Option {
	return func(o *transportOptions) {
		o.timeout = timeout
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *transportOptions) {
		o.userAgent = userAgent
	}
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(o *transportOptions) {
		o.httpClient = client
	}
}

// WithRateLimit caps outgoing requests to rps per second with the given burst.
// A non-positive rps disables limiting.
func WithRateLimit(rps float64, burst int) Option {
	return func(o *transportOptions) {
		if rps <= 0 {
			o.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		o.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}
