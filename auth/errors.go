package auth

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrWrongCredentials indicates the login endpoint answered 401
	ErrWrongCredentials = errors.New("Wrong credentials")
	// ErrLogin indicates the login response could not be used
	ErrLogin = errors.New("login failed")
	// ErrMissingCredentials indicates an empty email or password
	ErrMissingCredentials = errors.New("email and password are required")
)

// Error describes a failed login. It wraps ErrLogin or ErrWrongCredentials.
type Error struct {
	Endpoint string
	Response string
	Err      error
}

// Error implements the error interface
func (e *Error) Error() string {
	response := e.Response
	if response == "" && e.Err != nil {
		response = e.Err.Error()
	}
	return fmt.Sprintf("GraphQL Error.\nRequest:\n%s\n\nResponse:\n%s", e.Endpoint, response)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

// IsUnauthorized checks if the login was rejected for bad credentials
func (e *Error) IsUnauthorized() bool {
	return errors.Is(e.Err, ErrWrongCredentials)
}
