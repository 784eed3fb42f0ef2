package structure

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// TypenameKey is the response key carrying the GraphQL type of an object
const TypenameKey = "__typename"

// Record is an addressable view over one decoded JSON object. Every key of
// the source object is kept.
type Record struct {
	fields   map[string]any
	expected string
	format   Formatter
	untyped  bool
	builder  *Builder
}

// Typename returns the declared GraphQL type, or "" when absent
func (r *Record) Typename() string {
	s, _ := r.fields[TypenameKey].(string)
	return s
}

// Kind returns the entity type the record was built for
func (r *Record) Kind() string {
	return r.expected
}

// Keys returns the top-level keys in sorted order
func (r *Record) Keys() []string {
	return slices.Sorted(maps.Keys(r.fields))
}

// Map returns a shallow copy of the underlying fields
func (r *Record) Map() map[string]any {
	return maps.Clone(r.fields)
}

// Plain returns a deep copy of the fields with JSON numbers converted to
// int64 or float64
func (r *Record) Plain() map[string]any {
	m, _ := plain(r.fields).(map[string]any)
	return m
}

// Has reports whether the dotted path resolves to a non-null value
func (r *Record) Has(path string) bool {
	return r.Get(path) != nil
}

// Get resolves a dotted path such as "imprint.publisher.publisherName".
// A numeric segment indexes into a list.
func (r *Record) Get(path string) any {
	var current any = r.fields
	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			current = node[part]
		case []any:
			i, err := strconv.Atoi(part)
			if err != nil || i < 0 || i >= len(node) {
				return nil
			}
			current = node[i]
		default:
			return nil
		}
	}
	return current
}

// Value is Get with JSON numbers converted to int64 or float64
func (r *Record) Value(path string) any {
	return plain(r.Get(path))
}

// Str returns the value at path rendered as a string; "" when absent
func (r *Record) Str(path string) string {
	switch v := r.Get(path).(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	}
}

// Int returns the value at path as an int; 0 when absent or not numeric
func (r *Record) Int(path string) int {
	switch v := r.Get(path).(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return int(i)
		}
		if f, err := v.Float64(); err == nil {
			return int(f)
		}
	case float64:
		return int(v)
	case string:
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return 0
}

// Float returns the value at path as a float64; 0 when absent or not numeric
func (r *Record) Float(path string) float64 {
	switch v := r.Get(path).(type) {
	case json.Number:
		f, _ := v.Float64()
		return f
	case float64:
		return v
	case string:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	}
	return 0
}

// Bool returns the value at path as a bool
func (r *Record) Bool(path string) bool {
	switch v := r.Get(path).(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	}
	return false
}

// Len returns the length of the list at path
func (r *Record) Len(path string) int {
	list, _ := r.Get(path).([]any)
	return len(list)
}

// Child returns the object at path as a Record, or nil
func (r *Record) Child(path string) *Record {
	m, ok := r.Get(path).(map[string]any)
	if !ok {
		return nil
	}
	return r.builder.nested(m)
}

// List returns the objects of the list at path as Records. Non-object
// entries are skipped.
func (r *Record) List(path string) []*Record {
	list, _ := r.Get(path).([]any)
	records := make([]*Record, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			records = append(records, r.builder.nested(m))
		}
	}
	return records
}

// String renders the record with its formatter when the declared type matches
// the expected one, and a generic representation otherwise.
func (r *Record) String() string {
	if r.format != nil && (r.untyped || (r.expected != "" && r.Typename() == r.expected)) {
		return r.format(r)
	}
	return r.Generic()
}

// Generic renders the record as Kind{...} with its JSON fields
func (r *Record) Generic() string {
	name := r.Typename()
	if name == "" {
		name = "Record"
	}
	b, err := json.Marshal(r.fields)
	if err != nil {
		return name + fmt.Sprint(r.fields)
	}
	return name + string(b)
}

// MarshalJSON emits the original fields
func (r *Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.fields)
}

// MarshalYAML emits the original fields with numbers as numbers
func (r *Record) MarshalYAML() (any, error) {
	return plain(r.fields), nil
}

// UnmarshalJSON replaces the record's fields. The record keeps no formatter.
func (r *Record) UnmarshalJSON(data []byte) error {
	fields, err := decodeObject(data)
	if err != nil {
		return err
	}
	r.fields = fields
	return nil
}

// Decode copies the record into a typed value through JSON
func (r *Record) Decode(v any) error {
	b, err := json.Marshal(r.fields)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

func decodeObject(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func plain(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = plain(item)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = plain(item)
		}
		return out
	default:
		return v
	}
}
