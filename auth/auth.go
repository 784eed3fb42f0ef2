package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

// Token is a session token returned by the login endpoint
type Token struct {
	Value string
	// ExpiresAt is read from the JWT exp claim; zero when absent
	ExpiresAt time.Time
}

// Bearer formats the token as an Authorization header value
func (t Token) Bearer() string {
	return "Bearer " + t.Value
}

// Expired reports whether the token has a known expiry in the past
func (t Token) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && now.After(t.ExpiresAt)
}

// Authenticator exchanges credentials for a token
type Authenticator struct {
	url    string
	http   *resty.Client
	logger zerolog.Logger
}

// NewAuthenticator creates an authenticator for the API rooted at endpoint
func NewAuthenticator(endpoint string, logger zerolog.Logger, timeout time.Duration) (*Authenticator, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("login endpoint is required")
	}

	client := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &Authenticator{
		url:    strings.TrimRight(endpoint, "/") + "/account/login",
		http:   client,
		logger: logger,
	}, nil
}

// URL returns the login endpoint
func (a *Authenticator) URL() string {
	return a.url
}

// Login posts {email, password} and returns the session token
func (a *Authenticator) Login(ctx context.Context, email, password string) (Token, error) {
	if email == "" || password == "" {
		return Token{}, ErrMissingCredentials
	}

	resp, err := a.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		Post(a.url)
	if err != nil {
		return Token{}, &Error{Endpoint: a.url, Err: fmt.Errorf("%w: %w", ErrLogin, err)}
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		return Token{}, &Error{Endpoint: a.url, Response: ErrWrongCredentials.Error(), Err: ErrWrongCredentials}
	}

	body := string(resp.Body())
	var payload struct {
		Token *string `json:"token"`
	}
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return Token{}, &Error{Endpoint: a.url, Response: body, Err: fmt.Errorf("%w: %w", ErrLogin, err)}
	}
	if payload.Token == nil || *payload.Token == "" {
		return Token{}, &Error{Endpoint: a.url, Response: body, Err: fmt.Errorf("%w: response has no token", ErrLogin)}
	}

	token := Token{Value: *payload.Token, ExpiresAt: expiry(*payload.Token)}

	a.logger.Debug().
		Str("email", email).
		Time("expires_at", token.ExpiresAt).
		Msg("Logged in to Thoth")

	return token, nil
}

// expiry reads the exp claim without verifying the signature
func expiry(raw string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
