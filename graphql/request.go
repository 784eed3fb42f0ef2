package graphql

import (
	"fmt"
	"strings"
)

// Kind distinguishes read and write operations
type Kind int

const (
	Query Kind = iota
	Mutation
)

func (k Kind) String() string {
	if k == Mutation {
		return "mutation"
	}
	return "query"
}

// Argument is a single named argument of an operation
type Argument struct {
	Name  string
	Value Value
}

// Request is a single-operation GraphQL document
type Request struct {
	Kind      Kind
	Operation string
	Args      []Argument
	Fields    []string
	Variables map[string]any
}

// NewQuery returns a query request for operation selecting fields
func NewQuery(operation string, fields ...string) *Request {
	return &Request{Kind: Query, Operation: operation, Fields: fields}
}

// Arg appends an argument and returns the request for chaining. Arguments
// with a zero value are dropped at encoding time so server defaults apply.
func (r *Request) Arg(name string, value Value) *Request {
	r.Args = append(r.Args, Argument{Name: name, Value: value})
	return r
}

// Encode renders the request as `<kind> { <op>(<args>) { <fields> } }`.
// Scalar operations such as counts have no field selection.
func (r *Request) Encode() (string, error) {
	if !nameRe.MatchString(r.Operation) {
		return "", fmt.Errorf("%w: operation %q", ErrInvalidName, r.Operation)
	}
	var b strings.Builder
	b.WriteString(r.Kind.String())
	b.WriteString(" { ")
	b.WriteString(r.Operation)

	written := 0
	for _, arg := range r.Args {
		if arg.Value == nil || arg.Value.zero() {
			continue
		}
		if !nameRe.MatchString(arg.Name) {
			return "", fmt.Errorf("%w: argument %q", ErrInvalidName, arg.Name)
		}
		if written == 0 {
			b.WriteByte('(')
		} else {
			b.WriteString(", ")
		}
		b.WriteString(arg.Name)
		b.WriteString(": ")
		if err := arg.Value.encode(&b); err != nil {
			return "", fmt.Errorf("argument %s: %w", arg.Name, err)
		}
		written++
	}
	if written > 0 {
		b.WriteByte(')')
	}

	if len(r.Fields) > 0 {
		b.WriteString(" { ")
		b.WriteString(strings.Join(r.Fields, " "))
		b.WriteString(" }")
	}
	b.WriteString(" }")
	return b.String(), nil
}

// MutationField declares one input field of a mutation. Quoted fields are
// sent as string literals; the rest must be numbers, booleans or enums.
type MutationField struct {
	Name   string
	Quoted bool
}

// MutationSpec describes a write operation: its ordered input fields and the
// single field returned by the server.
type MutationSpec struct {
	Name    string
	Fields  []MutationField
	Returns string
}

// Has reports whether the mutation declares field
func (s MutationSpec) Has(field string) bool {
	for _, f := range s.Fields {
		if f.Name == field {
			return true
		}
	}
	return false
}

// BuildMutation converts caller input into a mutation request. Fields are
// emitted in declaration order; nil values and values that stringify to ""
// are skipped, false and 0 are kept.
func BuildMutation(spec MutationSpec, input map[string]any) (*Request, error) {
	for key := range input {
		if !spec.Has(key) {
			return nil, fmt.Errorf("%w: %s does not accept %q", ErrUnknownField, spec.Name, key)
		}
	}

	data := make(Object, 0, len(spec.Fields))
	for _, field := range spec.Fields {
		raw, ok := input[field.Name]
		if !ok || raw == nil {
			continue
		}

		var value Value
		if field.Quoted {
			s := stringify(raw)
			if s == "" {
				continue
			}
			value = String(s)
		} else {
			v, err := Literal(raw)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", spec.Name, field.Name, err)
			}
			if v == nil {
				continue
			}
			value = v
		}
		data = append(data, Field{Name: field.Name, Value: value})
	}

	return &Request{
		Kind:      Mutation,
		Operation: spec.Name,
		Args:      []Argument{{Name: "data", Value: data}},
		Fields:    []string{spec.Returns},
	}, nil
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case String:
		return string(t)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
