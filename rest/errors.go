package rest

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

// Common errors
var (
	// ErrUnsupportedVersion indicates an export API version without structures
	ErrUnsupportedVersion = errors.New("unsupported export API version")
	// ErrRequest indicates the export API could not be reached or answered non-200
	ErrRequest = errors.New("export API request failed")
)

// Error represents a failed export API request
type Error struct {
	// Request is "GET <url>"
	Request    string
	StatusCode int
	Body       string
	Err        error
}

// Error implements the error interface
func (e *Error) Error() string {
	response := strconv.Itoa(e.StatusCode)
	if e.StatusCode == 0 && e.Err != nil {
		response = e.Err.Error()
	}
	return fmt.Sprintf("REST Error.\nRequest:\n%s\n\nResponse:\n%s", e.Request, response)
}

// Unwrap returns the transport cause, or ErrRequest
func (e *Error) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrRequest
}

// Is matches ErrRequest for every export API failure
func (e *Error) Is(target error) bool {
	return target == ErrRequest
}

// IsNotFound checks if the error indicates a not found response
func (e *Error) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}
