package thoth

import (
	"time"

	"github.com/s0up4200/thoth/graphql"
)

// Option configures a Client
type Option func(*clientOptions)

type clientOptions struct {
	version   string
	timeout   time.Duration
	transport []graphql.Option
	custom    graphql.Transport
}

// WithVersion binds the client to an API version. The default is DefaultVersion.
func WithVersion(version string) Option {
	return func(o *clientOptions) {
		o.version = version
	}
}

// WithTimeout sets the timeout of GraphQL and login requests
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
		o.transport = append(o.transport, graphql.WithTimeout(timeout))
	}
}

// WithRateLimit caps GraphQL requests per second
func WithRateLimit(rps float64, burst int) Option {
	return func(o *clientOptions) {
		o.transport = append(o.transport, graphql.WithRateLimit(rps, burst))
	}
}

// WithUserAgent sets the User-Agent of GraphQL requests
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.transport = append(o.transport, graphql.WithUserAgent(userAgent))
	}
}

// WithTransport replaces the HTTP transport. Login then has no effect on
// outgoing requests unless the transport honours authorization itself.
func WithTransport(t graphql.Transport) Option {
	return func(o *clientOptions) {
		o.custom = t
	}
}
