package thoth

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/s0up4200/thoth/auth"
	"github.com/s0up4200/thoth/graphql"
)

// DefaultEndpoint is the public Thoth API
const DefaultEndpoint = "https://api.thoth.pub"

// Authorizer is implemented by transports that carry an Authorization header
type Authorizer interface {
	SetAuthorization(value string)
}

// Client talks to one Thoth instance through a bound API version. Every API
// method is available on the client directly.
type Client struct {
	API
	endpoint  string
	transport graphql.Transport
	auth      *auth.Authenticator
	token     auth.Token
	logger    zerolog.Logger
}

// NewClient creates a client for the Thoth API rooted at endpoint
func NewClient(endpoint string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	endpoint = strings.TrimRight(endpoint, "/")

	options := clientOptions{version: DefaultVersion}
	for _, opt := range opts {
		opt(&options)
	}

	transport := options.custom
	if transport == nil {
		t, err := graphql.NewHTTPTransport(endpoint, logger, options.transport...)
		if err != nil {
			return nil, err
		}
		transport = t
	}

	api, err := NewAPI(options.version, graphql.NewExecutor(transport, logger), logger)
	if err != nil {
		return nil, err
	}

	authenticator, err := auth.NewAuthenticator(endpoint, logger, options.timeout)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("endpoint", endpoint).
		Str("version", api.Version()).
		Msg("Thoth client created")

	return &Client{
		API:       api,
		endpoint:  endpoint,
		transport: transport,
		auth:      authenticator,
		logger:    logger,
	}, nil
}

// Endpoint returns the API root the client was created for
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Login exchanges credentials for a token and sends it with every later
// request.
func (c *Client) Login(ctx context.Context, email, password string) error {
	token, err := c.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}
	c.SetToken(token)
	c.logger.Info().Str("email", email).Msg("Logged in to Thoth")
	return nil
}

// SetToken installs a previously obtained token
func (c *Client) SetToken(token auth.Token) {
	c.token = token
	if a, ok := c.transport.(Authorizer); ok {
		a.SetAuthorization(token.Bearer())
	}
}

// Token returns the current token; its value is empty before Login
func (c *Client) Token() auth.Token {
	return c.token
}

// LoggedIn reports whether the client holds an unexpired token
func (c *Client) LoggedIn() bool {
	return c.token.Value != "" && !c.token.Expired(time.Now())
}
