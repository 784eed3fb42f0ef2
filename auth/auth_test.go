package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user@example.org",
		"exp": exp.Unix(),
	})
	s, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)
	return s
}

func TestLogin(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	jwtToken := signedToken(t, exp)

	tests := []struct {
		name       string
		status     int
		body       string
		wantErr    error
		wantToken  string
		wantExpiry bool
	}{
		{
			name:       "jwt token",
			status:     http.StatusOK,
			body:       `{"token":"` + jwtToken + `"}`,
			wantToken:  jwtToken,
			wantExpiry: true,
		},
		{
			name:      "opaque token",
			status:    http.StatusOK,
			body:      `{"token":"opaque"}`,
			wantToken: "opaque",
		},
		{
			name:    "wrong credentials",
			status:  http.StatusUnauthorized,
			body:    `{"message":"unauthorized"}`,
			wantErr: ErrWrongCredentials,
		},
		{
			name:    "missing token",
			status:  http.StatusOK,
			body:    `{"session":"x"}`,
			wantErr: ErrLogin,
		},
		{
			name:    "token of wrong type",
			status:  http.StatusOK,
			body:    `{"token":42}`,
			wantErr: ErrLogin,
		},
		{
			name:    "not json",
			status:  http.StatusInternalServerError,
			body:    `Internal Server Error`,
			wantErr: ErrLogin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/account/login", r.URL.Path)
				assert.Equal(t, http.MethodPost, r.Method)

				var creds map[string]string
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
				assert.Equal(t, "user@example.org", creds["email"])
				assert.Equal(t, "hunter2", creds["password"])

				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			a, err := NewAuthenticator(server.URL+"/", zerolog.Nop(), 5*time.Second)
			require.NoError(t, err)

			token, err := a.Login(context.Background(), "user@example.org", "hunter2")
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)

				var authErr *Error
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, server.URL+"/account/login", authErr.Endpoint)
				assert.Equal(t, tt.wantErr == ErrWrongCredentials, authErr.IsUnauthorized())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token.Value)
			assert.Equal(t, "Bearer "+tt.wantToken, token.Bearer())
			if tt.wantExpiry {
				assert.True(t, exp.Equal(token.ExpiresAt))
				assert.False(t, token.Expired(time.Now()))
				assert.True(t, token.Expired(exp.Add(time.Minute)))
			} else {
				assert.True(t, token.ExpiresAt.IsZero())
				assert.False(t, token.Expired(time.Now()))
			}
		})
	}
}

func TestLoginRequiresCredentials(t *testing.T) {
	a, err := NewAuthenticator("http://localhost:8000", zerolog.Nop(), 0)
	require.NoError(t, err)

	_, err = a.Login(context.Background(), "", "pw")
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, err = NewAuthenticator("", zerolog.Nop(), 0)
	assert.Error(t, err)
}

func TestWrongCredentialsMessage(t *testing.T) {
	err := &Error{Endpoint: "https://api.thoth.pub/account/login", Response: "Wrong credentials", Err: ErrWrongCredentials}
	assert.Equal(t, "GraphQL Error.\nRequest:\nhttps://api.thoth.pub/account/login\n\nResponse:\nWrong credentials", err.Error())
}
