package graphql

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestEncode(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		want    string
		wantErr error
	}{
		{
			name: "no arguments",
			req:  NewQuery("publishers", "publisherId", "publisherName"),
			want: `query { publishers { publisherId publisherName } }`,
		},
		{
			name: "typed arguments",
			req: NewQuery("works", "workId").
				Arg("limit", Int(10)).
				Arg("filter", String("foo")).
				Arg("workStatus", Enum("ACTIVE")),
			want: `query { works(limit: 10, filter: "foo", workStatus: ACTIVE) { workId } }`,
		},
		{
			name: "zero arguments are omitted",
			req: NewQuery("works", "workId").
				Arg("limit", Int(10)).
				Arg("offset", Int(0)).
				Arg("filter", String("")).
				Arg("publishers", List(nil)).
				Arg("workType", Enum("")),
			want: `query { works(limit: 10) { workId } }`,
		},
		{
			name: "scalar operation without arguments",
			req:  NewQuery("workCount").Arg("filter", String("")),
			want: `query { workCount }`,
		},
		{
			name: "explicit zero is kept",
			req:  NewQuery("workCount").Arg("filter", Explicit(String(""))),
			want: `query { workCount(filter: "") }`,
		},
		{
			name: "list and object values",
			req: NewQuery("works", "workId").
				Arg("publishers", Strings("a", "b")).
				Arg("order", Object{{Name: "field", Value: Enum("PUBLICATION_DATE")}, {Name: "direction", Value: Enum("DESC")}}),
			want: `query { works(publishers: ["a", "b"], order: {field: PUBLICATION_DATE, direction: DESC}) { workId } }`,
		},
		{
			name:    "invalid operation name",
			req:     NewQuery("works }", "workId"),
			wantErr: ErrInvalidName,
		},
		{
			name:    "invalid enum",
			req:     NewQuery("works", "workId").Arg("workType", Enum("MONOGRAPH) { x")),
			wantErr: ErrInvalidLiteral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.req.Encode()
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQueryOmitsFalsyParameters(t *testing.T) {
	keys := []string{"limit", "offset", "filter", "publishers", "workType", "mainContribution"}
	set := map[string]Value{
		"limit":            Int(5),
		"offset":           Int(10),
		"filter":           String("x"),
		"publishers":       Strings("p"),
		"workType":         Enum("MONOGRAPH"),
		"mainContribution": Bool(true),
	}
	falsy := map[string]Value{
		"limit":            Int(0),
		"offset":           nil,
		"filter":           String(""),
		"publishers":       List{},
		"workType":         Enum(""),
		"mainContribution": Bool(false),
	}

	for _, omitted := range keys {
		t.Run(omitted, func(t *testing.T) {
			req := NewQuery("works", "workId")
			for _, key := range keys {
				v := set[key]
				if key == omitted {
					v = falsy[key]
				}
				req.Arg(key, v)
			}

			doc, err := req.Encode()
			require.NoError(t, err)
			assert.NotContains(t, doc, omitted+":")
			for _, key := range keys {
				if key != omitted {
					assert.Contains(t, doc, key+":")
				}
			}
		})
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`plain`, `"plain"`},
		{`say "hi"`, `"say \"hi\""`},
		{"line\nbreak", `"line\nbreak"`},
		{`back\slash`, `"back\\slash"`},
		{"tab\there", `"tab\there"`},
		{"bell\x07", `"bell\u0007"`},
		{"Zoë", `"Zoë"`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Quote(tt.in))
		})
	}
}

var createWork = MutationSpec{
	Name: "createWork",
	Fields: []MutationField{
		{Name: "workType", Quoted: false},
		{Name: "fullTitle", Quoted: true},
		{Name: "title", Quoted: true},
		{Name: "pageCount", Quoted: false},
		{Name: "longAbstract", Quoted: true},
		{Name: "mainContribution", Quoted: false},
	},
	Returns: "workId",
}

func TestBuildMutation(t *testing.T) {
	tests := []struct {
		name    string
		input   map[string]any
		want    string
		wantErr error
	}{
		{
			name: "declaration order and literals",
			input: map[string]any{
				"title":     "Title",
				"workType":  "MONOGRAPH",
				"fullTitle": "Full Title",
				"pageCount": 250,
			},
			want: `mutation { createWork(data: {workType: MONOGRAPH, fullTitle: "Full Title", title: "Title", pageCount: 250}) { workId } }`,
		},
		{
			name: "empty and nil values are skipped, false is kept",
			input: map[string]any{
				"workType":         "MONOGRAPH",
				"fullTitle":        "T",
				"title":            "",
				"longAbstract":     nil,
				"mainContribution": false,
			},
			want: `mutation { createWork(data: {workType: MONOGRAPH, fullTitle: "T", mainContribution: false}) { workId } }`,
		},
		{
			name:    "unknown field",
			input:   map[string]any{"bogus": "x"},
			wantErr: ErrUnknownField,
		},
		{
			name:    "literal injection rejected",
			input:   map[string]any{"workType": `MONOGRAPH}) { workId } } mutation { x(`},
			wantErr: ErrInvalidLiteral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := BuildMutation(createWork, tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			doc, err := req.Encode()
			require.NoError(t, err)
			assert.Equal(t, tt.want, doc)
		})
	}
}

func TestMutationEscaping(t *testing.T) {
	values := []string{
		`He said "no"`,
		"first line\nsecond line",
		"both \"quoted\"\nand broken",
		`trailing backslash \`,
	}

	for _, value := range values {
		t.Run(value, func(t *testing.T) {
			req, err := BuildMutation(createWork, map[string]any{"longAbstract": value})
			require.NoError(t, err)

			doc, err := req.Encode()
			require.NoError(t, err)

			assert.Contains(t, doc, Quote(value))
			assert.NotContains(t, doc, "\n")
			assertBalanced(t, doc)
		})
	}
}

// assertBalanced walks the document honouring string escapes and checks that
// every string is closed and every brace and parenthesis is matched.
func assertBalanced(t *testing.T, doc string) {
	t.Helper()

	var stack []rune
	inString := false
	escaped := false
	for _, r := range doc {
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}
		switch r {
		case '"':
			inString = true
		case '{', '(', '[':
			stack = append(stack, r)
		case '}', ')', ']':
			require.NotEmpty(t, stack, "unbalanced %q in %s", r, doc)
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			pairs := map[rune]rune{'}': '{', ')': '(', ']': '['}
			assert.Equal(t, pairs[r], open, "mismatched %q in %s", r, doc)
		}
	}
	assert.False(t, inString, "unterminated string in %s", doc)
	assert.Empty(t, stack, "unclosed delimiters in %s", doc)
	assert.True(t, strings.HasPrefix(doc, "mutation { "))
}

func TestLiteral(t *testing.T) {
	tests := []struct {
		in      any
		want    Value
		wantErr bool
	}{
		{in: 12, want: Int(12)},
		{in: "12", want: Int(12)},
		{in: 1.5, want: Float(1.5)},
		{in: "9.99", want: Float(9.99)},
		{in: true, want: Bool(true)},
		{in: "false", want: Bool(false)},
		{in: "GBP", want: Enum("GBP")},
		{in: "", want: nil},
		{in: nil, want: nil},
		{in: "not an enum", wantErr: true},
		{in: `"quoted"`, wantErr: true},
	}

	for _, tt := range tests {
		got, err := Literal(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidLiteral, "input %v", tt.in)
			continue
		}
		require.NoError(t, err, "input %v", tt.in)
		assert.Equal(t, tt.want, got, "input %v", tt.in)
	}
}
