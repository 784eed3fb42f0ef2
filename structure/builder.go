package structure

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
)

// Formatter renders a one-line summary of a record
type Formatter func(r *Record) string

// Formatters maps a GraphQL type name to its formatter
type Formatters map[string]Formatter

// Builder turns decoded responses into Records. The formatter and endpoint
// tables are owned by the builder; nothing is shared between builders.
type Builder struct {
	formatters Formatters
	endpoints  map[string]string
	untyped    bool
}

// BuilderOption configures a Builder
type BuilderOption func(*Builder)

// WithoutTypeCheck applies formatters whether or not records declare a
// matching __typename. REST payloads carry no type names.
func WithoutTypeCheck() BuilderOption {
	return func(b *Builder) {
		b.untyped = true
	}
}

// NewBuilder creates a builder. endpoints maps an operation name such as
// "works" to the type name its records are expected to carry.
func NewBuilder(formatters Formatters, endpoints map[string]string, opts ...BuilderOption) *Builder {
	b := &Builder{
		formatters: maps.Clone(formatters),
		endpoints:  maps.Clone(endpoints),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Expected returns the type name records of endpoint should carry
func (b *Builder) Expected(endpoint string) string {
	return b.endpoints[endpoint]
}

// Build decodes data as either a single object or a list of objects. The
// result is a *Record, a []*Record, or nil for JSON null.
func (b *Builder) Build(endpoint string, data []byte) (any, error) {
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0, bytes.Equal(trimmed, []byte("null")):
		return nil, nil
	case trimmed[0] == '[':
		return b.Records(endpoint, trimmed)
	default:
		return b.Record(endpoint, trimmed)
	}
}

// Records decodes a list of objects. A single object yields a one-element list.
func (b *Builder) Records(endpoint string, data []byte) ([]*Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []*Record{}, nil
	}
	if trimmed[0] == '{' {
		r, err := b.Record(endpoint, trimmed)
		if err != nil {
			return nil, err
		}
		return []*Record{r}, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("failed to decode %s list: %w", endpoint, err)
	}

	records := make([]*Record, 0, len(items))
	for i, item := range items {
		fields, err := decodeObject(item)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s[%d]: %w", endpoint, i, err)
		}
		records = append(records, b.Wrap(endpoint, fields))
	}
	return records, nil
}

// Record decodes a single object. JSON null yields a nil record.
func (b *Builder) Record(endpoint string, data []byte) (*Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	fields, err := decodeObject(trimmed)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", endpoint, err)
	}
	return b.Wrap(endpoint, fields), nil
}

// Wrap builds a record for endpoint around already-decoded fields
func (b *Builder) Wrap(endpoint string, fields map[string]any) *Record {
	if fields == nil {
		fields = map[string]any{}
	}
	expected := b.endpoints[endpoint]
	return &Record{
		fields:   fields,
		expected: expected,
		format:   b.formatters[expected],
		untyped:  b.untyped,
		builder:  b,
	}
}

// nested builds a record for an embedded object, formatted by its own type
func (b *Builder) nested(fields map[string]any) *Record {
	r := &Record{fields: fields, builder: b}
	if b == nil {
		return r
	}
	r.expected = r.Typename()
	r.format = b.formatters[r.expected]
	return r
}
