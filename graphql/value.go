package graphql

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var nameRe = regexp.MustCompile(`^[_A-Za-z][_0-9A-Za-z]*$`)

// Value is a typed GraphQL input value. Every argument of a Request is a
// Value, and every Value is written through the same encoder.
type Value interface {
	encode(b *strings.Builder) error
	zero() bool
}

// String is quoted and escaped on encoding. Callers never pre-quote.
type String string

// Enum is emitted bare and must be a valid GraphQL name
type Enum string

// Int is an integer literal
type Int int64

// Float is a floating point literal
type Float float64

// Bool is a boolean literal
type Bool bool

// List is a list of values
type List []Value

// Field is a single entry of an Object
type Field struct {
	Name  string
	Value Value
}

// Object is an input object. Field order is preserved.
type Object []Field

func (s String) encode(b *strings.Builder) error {
	b.WriteString(Quote(string(s)))
	return nil
}

func (s String) zero() bool { return s == "" }

func (e Enum) encode(b *strings.Builder) error {
	if !nameRe.MatchString(string(e)) {
		return fmt.Errorf("%w: %q", ErrInvalidLiteral, string(e))
	}
	b.WriteString(string(e))
	return nil
}

func (e Enum) zero() bool { return e == "" }

func (i Int) encode(b *strings.Builder) error {
	b.WriteString(strconv.FormatInt(int64(i), 10))
	return nil
}

func (i Int) zero() bool { return i == 0 }

func (f Float) encode(b *strings.Builder) error {
	b.WriteString(strconv.FormatFloat(float64(f), 'f', -1, 64))
	return nil
}

func (f Float) zero() bool { return f == 0 }

func (v Bool) encode(b *strings.Builder) error {
	b.WriteString(strconv.FormatBool(bool(v)))
	return nil
}

func (v Bool) zero() bool { return !bool(v) }

func (l List) encode(b *strings.Builder) error {
	b.WriteByte('[')
	for i, item := range l {
		if i > 0 {
			b.WriteString(", ")
		}
		if item == nil {
			b.WriteString("null")
			continue
		}
		if err := item.encode(b); err != nil {
			return err
		}
	}
	b.WriteByte(']')
	return nil
}

func (l List) zero() bool { return len(l) == 0 }

func (o Object) encode(b *strings.Builder) error {
	b.WriteByte('{')
	written := 0
	for _, f := range o {
		if f.Value == nil {
			continue
		}
		if !nameRe.MatchString(f.Name) {
			return fmt.Errorf("%w: %q", ErrInvalidName, f.Name)
		}
		if written > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Name)
		b.WriteString(": ")
		if err := f.Value.encode(b); err != nil {
			return fmt.Errorf("field %s: %w", f.Name, err)
		}
		written++
	}
	b.WriteByte('}')
	return nil
}

func (o Object) zero() bool { return len(o) == 0 }

// IsZero reports whether v would be omitted from an argument list
func IsZero(v Value) bool {
	return v == nil || v.zero()
}

type explicit struct{ Value }

func (explicit) zero() bool { return false }

// Explicit wraps v so it is sent even when it is a zero value
func Explicit(v Value) Value {
	return explicit{v}
}

// Strings converts a slice of Go strings into a List of String values
func Strings(values ...string) List {
	list := make(List, 0, len(values))
	for _, v := range values {
		list = append(list, String(v))
	}
	return list
}

// Enums converts a slice of Go strings into a List of Enum values
func Enums(values ...string) List {
	list := make(List, 0, len(values))
	for _, v := range values {
		list = append(list, Enum(v))
	}
	return list
}

// Quote returns s as a GraphQL string literal
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Literal converts an arbitrary Go value into an unquoted Value. Strings must
// look like a number, a boolean or an enum name.
func Literal(v any) (Value, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case int:
		return Int(t), nil
	case int32:
		return Int(t), nil
	case int64:
		return Int(t), nil
	case float32:
		return Float(t), nil
	case float64:
		return Float(t), nil
	case fmt.Stringer:
		return literalFromString(t.String())
	case string:
		return literalFromString(t)
	default:
		return literalFromString(fmt.Sprint(t))
	}
}

func literalFromString(s string) (Value, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(i), nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return Float(f), nil
	}
	switch s {
	case "true":
		return Bool(true), nil
	case "false":
		return Bool(false), nil
	}
	if nameRe.MatchString(s) {
		return Enum(s), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidLiteral, s)
}
