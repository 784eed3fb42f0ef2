package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
)

// Result is the outcome of a successful round-trip
type Result struct {
	Operation string
	// Request is the encoded document that was sent
	Request string
	// Raw is the response body exactly as the transport returned it
	Raw string
	// Data is the value of data.<Operation>
	Data json.RawMessage
}

// Executor encodes requests, sends them through a Transport and unwraps the
// response envelope.
type Executor struct {
	transport Transport
	logger    zerolog.Logger
}

// NewExecutor creates an executor on top of transport
func NewExecutor(transport Transport, logger zerolog.Logger) *Executor {
	return &Executor{transport: transport, logger: logger}
}

// Transport returns the transport requests are sent through
func (e *Executor) Transport() Transport {
	return e.transport
}

// Do sends req and returns data.<operation>. Every failure after encoding is
// an *Error.
func (e *Executor) Do(ctx context.Context, req *Request) (*Result, error) {
	document, err := req.Encode()
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", req.Operation, err)
	}

	e.logger.Debug().
		Str("kind", req.Kind.String()).
		Str("operation", req.Operation).
		Msg("Sending GraphQL request")

	body, err := e.transport.Execute(ctx, document, req.Variables)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Request: document, Err: err}
	}

	data, err := unwrap(req.Operation, document, body)
	if err != nil {
		return nil, err
	}

	return &Result{
		Operation: req.Operation,
		Request:   document,
		Raw:       body,
		Data:      data,
	}, nil
}

func unwrap(operation, document, body string) (json.RawMessage, error) {
	if len(bytes.TrimSpace([]byte(body))) == 0 {
		return nil, &Error{Kind: KindEmptyResponse, Request: document, Response: body}
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &envelope); err != nil {
		return nil, &Error{Kind: KindDecode, Request: document, Response: body, Err: err}
	}
	if _, ok := envelope["errors"]; ok {
		return nil, &Error{Kind: KindSchema, Request: document, Response: body}
	}

	var data map[string]json.RawMessage
	if raw, ok := envelope["data"]; ok {
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, &Error{Kind: KindDecode, Request: document, Response: body, Err: err}
		}
	}
	value, ok := data[operation]
	if !ok {
		return nil, &Error{
			Kind:     KindDecode,
			Request:  document,
			Response: body,
			Err:      fmt.Errorf("response has no data.%s", operation),
		}
	}
	return value, nil
}

// IsNull reports whether the server returned null for the operation
func (r *Result) IsNull() bool {
	trimmed := bytes.TrimSpace(r.Data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// Decode unmarshals the operation's data into v
func (r *Result) Decode(v any) error {
	if err := json.Unmarshal(r.Data, v); err != nil {
		return &Error{Kind: KindDecode, Request: r.Request, Response: r.Raw, Err: err}
	}
	return nil
}

// Int decodes the operation's data as an integer, as returned by counts
func (r *Result) Int() (int, error) {
	var n int
	if err := r.Decode(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Field returns a named member of the operation's data as a string. It is
// used to read a mutation's declared return field.
func (r *Result) Field(name string) (string, error) {
	var object map[string]json.RawMessage
	if err := r.Decode(&object); err != nil {
		return "", err
	}

	raw, ok := object[name]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return "", &Error{
			Kind:     KindDecode,
			Request:  r.Request,
			Response: r.Raw,
			Err:      fmt.Errorf("response has no data.%s.%s", r.Operation, name),
		}
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), nil
	}
	return string(raw), nil
}
