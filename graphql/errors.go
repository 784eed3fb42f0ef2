package graphql

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrTransport indicates the HTTP round-trip failed
	ErrTransport = errors.New("graphql: transport failure")
	// ErrEmptyResponse indicates the server returned a zero-length body
	ErrEmptyResponse = errors.New("graphql: empty response")
	// ErrSchema indicates the response carried an errors array
	ErrSchema = errors.New("graphql: request rejected by server")
	// ErrDecode indicates the body was not JSON or lacked data.<operation>
	ErrDecode = errors.New("graphql: malformed response")

	// ErrInvalidName indicates an operation, argument or field name is not a GraphQL name
	ErrInvalidName = errors.New("invalid GraphQL name")
	// ErrInvalidLiteral indicates an unquoted value is neither a number, a boolean nor an enum
	ErrInvalidLiteral = errors.New("invalid GraphQL literal")
	// ErrUnknownField indicates mutation input named a field the mutation does not declare
	ErrUnknownField = errors.New("unknown mutation field")
)

// ErrorKind classifies a failed request
type ErrorKind int

const (
	KindTransport ErrorKind = iota + 1
	KindEmptyResponse
	KindSchema
	KindDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindEmptyResponse:
		return "empty-response"
	case KindSchema:
		return "schema"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindTransport:
		return ErrTransport
	case KindEmptyResponse:
		return ErrEmptyResponse
	case KindSchema:
		return ErrSchema
	case KindDecode:
		return ErrDecode
	default:
		return nil
	}
}

// Error is returned for every failed GraphQL round-trip. It carries the
// request document and whatever response text was captured.
type Error struct {
	Kind     ErrorKind
	Request  string
	Response string
	Err      error
}

// Error implements the error interface
func (e *Error) Error() string {
	response := e.Response
	if response == "" && e.Err != nil {
		response = e.Err.Error()
	}
	return fmt.Sprintf("GraphQL Error.\nRequest:\n%s\n\nResponse:\n%s", e.Request, response)
}

// Unwrap returns the underlying cause, if any
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's kind
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// Messages returns the message of every entry in the response errors array.
// It returns nil for errors that are not of KindSchema.
func (e *Error) Messages() []string {
	if e.Kind != KindSchema {
		return nil
	}

	var envelope struct {
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal([]byte(e.Response), &envelope); err != nil {
		return nil
	}

	messages := make([]string, 0, len(envelope.Errors))
	for _, entry := range envelope.Errors {
		messages = append(messages, entry.Message)
	}
	return messages
}
