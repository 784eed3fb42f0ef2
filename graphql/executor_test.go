package graphql

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTransport struct {
	body      string
	err       error
	lastQuery string
}

func (s *stubTransport) Execute(_ context.Context, query string, _ map[string]any) (string, error) {
	s.lastQuery = query
	return s.body, s.err
}

func TestExecutorDo(t *testing.T) {
	errNetwork := errors.New("connection refused")

	tests := []struct {
		name      string
		body      string
		err       error
		wantKind  ErrorKind
		wantIs    error
		wantNotIs error
		wantData  string
	}{
		{
			name:     "success",
			body:     `{"data":{"works":[{"workId":"1"}]}}`,
			wantData: `[{"workId":"1"}]`,
		},
		{
			name:      "empty body",
			body:      "",
			wantKind:  KindEmptyResponse,
			wantIs:    ErrEmptyResponse,
			wantNotIs: ErrSchema,
		},
		{
			name:      "errors array",
			body:      `{"errors":[{"message":"Unknown field"}]}`,
			wantKind:  KindSchema,
			wantIs:    ErrSchema,
			wantNotIs: ErrEmptyResponse,
		},
		{
			name:      "errors next to data",
			body:      `{"data":{"works":null},"errors":[{"message":"boom"}]}`,
			wantKind:  KindSchema,
			wantIs:    ErrSchema,
			wantNotIs: ErrDecode,
		},
		{
			name:     "not json",
			body:     `<html>Bad Gateway</html>`,
			wantKind: KindDecode,
			wantIs:   ErrDecode,
		},
		{
			name:     "missing operation",
			body:     `{"data":{"publishers":[]}}`,
			wantKind: KindDecode,
			wantIs:   ErrDecode,
		},
		{
			name:      "transport failure",
			err:       errNetwork,
			wantKind:  KindTransport,
			wantIs:    errNetwork,
			wantNotIs: ErrEmptyResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := &stubTransport{body: tt.body, err: tt.err}
			exec := NewExecutor(transport, zerolog.Nop())

			res, err := exec.Do(context.Background(), NewQuery("works", "workId").Arg("limit", Int(10)))
			if tt.wantKind == 0 {
				require.NoError(t, err)
				assert.JSONEq(t, tt.wantData, string(res.Data))
				assert.Equal(t, tt.body, res.Raw)
				assert.Equal(t, transport.lastQuery, res.Request)
				return
			}

			require.Error(t, err)
			var gqlErr *Error
			require.ErrorAs(t, err, &gqlErr)
			assert.Equal(t, tt.wantKind, gqlErr.Kind)
			assert.Equal(t, transport.lastQuery, gqlErr.Request)
			assert.ErrorIs(t, err, tt.wantIs)
			if tt.wantNotIs != nil {
				assert.NotErrorIs(t, err, tt.wantNotIs)
			}
			assert.Contains(t, err.Error(), "GraphQL Error.\nRequest:\n")
		})
	}
}

func TestRawBodyIsUnchanged(t *testing.T) {
	body := "{\"data\": {\"works\": [ {\"fullTitle\": \"Caf\\u00e9\"} ]}}\n\n"
	exec := NewExecutor(&stubTransport{body: body}, zerolog.Nop())

	res, err := exec.Do(context.Background(), NewQuery("works", "fullTitle"))
	require.NoError(t, err)
	assert.Equal(t, body, res.Raw)
}

func TestErrorMessage(t *testing.T) {
	err := &Error{Kind: KindSchema, Request: "query { x }", Response: `{"errors":[{"message":"a"},{"message":"b"}]}`}
	assert.Equal(t, "GraphQL Error.\nRequest:\nquery { x }\n\nResponse:\n{\"errors\":[{\"message\":\"a\"},{\"message\":\"b\"}]}", err.Error())
	assert.Equal(t, []string{"a", "b"}, err.Messages())

	transportErr := &Error{Kind: KindTransport, Request: "query { x }", Err: errors.New("timeout")}
	assert.Contains(t, transportErr.Error(), "Response:\ntimeout")
	assert.Nil(t, transportErr.Messages())
}

func TestResultHelpers(t *testing.T) {
	t.Run("count", func(t *testing.T) {
		res := &Result{Operation: "workCount", Data: []byte("42")}
		n, err := res.Int()
		require.NoError(t, err)
		assert.Equal(t, 42, n)
	})

	t.Run("string return field", func(t *testing.T) {
		res := &Result{Operation: "createWork", Data: []byte(`{"workId":"abc"}`)}
		id, err := res.Field("workId")
		require.NoError(t, err)
		assert.Equal(t, "abc", id)
	})

	t.Run("numeric return field", func(t *testing.T) {
		res := &Result{Operation: "createIssue", Data: []byte(`{"issueOrdinal":3}`)}
		v, err := res.Field("issueOrdinal")
		require.NoError(t, err)
		assert.Equal(t, "3", v)
	})

	t.Run("missing return field", func(t *testing.T) {
		res := &Result{Operation: "createWork", Data: []byte(`{}`)}
		_, err := res.Field("workId")
		assert.ErrorIs(t, err, ErrDecode)
	})

	t.Run("null", func(t *testing.T) {
		assert.True(t, (&Result{Data: []byte("null")}).IsNull())
		assert.False(t, (&Result{Data: []byte("{}")}).IsNull())
	})
}
