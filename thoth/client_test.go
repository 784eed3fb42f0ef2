package thoth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/s0up4200/thoth/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	publisherID = "85fd969a-a16c-480b-b641-cb9adf979c3b"
	workID      = "e0f748b2-984f-45cc-8b9e-13989c31dda4"
)

type stubTransport struct {
	queries []string
	body    string
}

func (s *stubTransport) Execute(_ context.Context, query string, _ map[string]any) (string, error) {
	s.queries = append(s.queries, query)
	return s.body, nil
}

func newStubClient(t *testing.T, version, body string) (*Client, *stubTransport) {
	t.Helper()
	stub := &stubTransport{body: body}
	c, err := NewClient("http://thoth.test", zerolog.Nop(), WithVersion(version), WithTransport(stub))
	require.NoError(t, err)
	return c, stub
}

func TestWorksOverHTTP(t *testing.T) {
	body := `{"data":{"works":[` +
		`{"__typename":"Work","workId":"w1","fullTitle":"Foo One","place":"Cambridge","publicationDate":"2020-01-01","imprint":{"publisher":{"publisherName":"OBP"}}},` +
		`{"__typename":"Work","workId":"w2","fullTitle":"Foo Two","place":"London","publicationDate":null,"imprint":{"publisher":{"publisherName":"Punctum"}}},` +
		`{"__typename":"Work","workId":"w3","fullTitle":"Foo Three","place":"Leeds","publicationDate":"2019-05-05","imprint":{"publisher":{"publisherName":"OBP"}}}` +
		`]}}`

	var query string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/graphql", r.URL.Path)
		var payload struct {
			Query string `json:"query"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		query = payload.Query
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, zerolog.Nop(), WithVersion("0.9.0"))
	require.NoError(t, err)

	res, err := client.Works(context.Background(), Params{Limit: 10, Filter: "foo"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, `query { works(limit: 10, filter: "foo") { workId `), query)
	assert.Equal(t, body, res.Raw)

	records, err := res.Records()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Foo One (Cambridge: OBP, 2020) [w1]", records[0].String())
	assert.Equal(t, "Foo Two (London: Punctum, n.d.) [w2]", records[1].String())
	assert.Equal(t, "Foo Three", records[2].Str("fullTitle"))
}

func TestUnsupportedOperations(t *testing.T) {
	tests := []struct {
		name    string
		version string
		call    func(c *Client) error
		wantErr error
	}{
		{
			name:    "locations before 0.8.0",
			version: "0.6.0",
			call: func(c *Client) error {
				_, err := c.Locations(context.Background(), Params{})
				return err
			},
			wantErr: ErrUnsupportedOperation,
		},
		{
			name:    "funders after 0.5.0",
			version: "0.6.0",
			call: func(c *Client) error {
				_, err := c.FunderCount(context.Background(), Params{})
				return err
			},
			wantErr: ErrUnsupportedOperation,
		},
		{
			name:    "institutions before 0.6.0",
			version: "0.4.2",
			call: func(c *Client) error {
				_, err := c.Institutions(context.Background(), Params{})
				return err
			},
			wantErr: ErrUnsupportedOperation,
		},
		{
			name:    "references before 0.9.0",
			version: "0.8.4",
			call: func(c *Client) error {
				_, err := c.Reference(context.Background(), workID)
				return err
			},
			wantErr: ErrUnsupportedOperation,
		},
		{
			name:    "workTypes before 0.8.0",
			version: "0.5.0",
			call: func(c *Client) error {
				_, err := c.Works(context.Background(), Params{WorkTypes: []string{"MONOGRAPH"}})
				return err
			},
			wantErr: ErrUnsupportedParameter,
		},
		{
			name:    "workType from 0.8.0",
			version: "0.8.0",
			call: func(c *Client) error {
				_, err := c.WorkCount(context.Background(), Params{WorkType: "MONOGRAPH"})
				return err
			},
			wantErr: ErrUnsupportedParameter,
		},
		{
			name:    "filter on contributions",
			version: "0.9.0",
			call: func(c *Client) error {
				_, err := c.Contributions(context.Background(), Params{Filter: "x"})
				return err
			},
			wantErr: ErrUnsupportedParameter,
		},
		{
			name:    "createFunder after 0.5.0",
			version: "0.9.0",
			call: func(c *Client) error {
				_, err := c.Mutate(context.Background(), "createFunder", map[string]any{"funderName": "X"})
				return err
			},
			wantErr: ErrUnsupportedOperation,
		},
		{
			name:    "invalid publisher id",
			version: "0.9.0",
			call: func(c *Client) error {
				_, err := c.Works(context.Background(), Params{Publishers: []string{"not-a-uuid"}})
				return err
			},
			wantErr: ErrInvalidID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, stub := newStubClient(t, tt.version, `{"data":{}}`)
			err := tt.call(c)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, stub.queries, "no request should be sent")
		})
	}
}

func TestCountFilterQuirk(t *testing.T) {
	tests := []struct {
		version string
		params  Params
		want    string
	}{
		{version: "0.4.2", want: `query { publisherCount(filter: "") }`},
		{version: "0.5.0", want: `query { publisherCount(filter: "") }`},
		{version: "0.4.2", params: Params{Filter: "obp"}, want: `query { publisherCount(filter: "obp") }`},
		{version: "0.6.0", want: `query { publisherCount }`},
		{version: "0.9.0", params: Params{Publishers: []string{publisherID}}, want: `query { publisherCount(publishers: ["` + publisherID + `"]) }`},
	}

	for _, tt := range tests {
		t.Run(tt.version+"/"+tt.params.Filter, func(t *testing.T) {
			c, stub := newStubClient(t, tt.version, `{"data":{"publisherCount":42}}`)
			n, err := c.PublisherCount(context.Background(), tt.params)
			require.NoError(t, err)
			assert.Equal(t, 42, n)
			require.Len(t, stub.queries, 1)
			assert.Equal(t, tt.want, stub.queries[0])
		})
	}
}

func TestWorkCountOmitsEmptyFilter(t *testing.T) {
	c, stub := newStubClient(t, "0.4.2", `{"data":{"workCount":7}}`)
	n, err := c.WorkCount(context.Background(), Params{WorkStatus: "ACTIVE"})
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Equal(t, `query { workCount(workStatus: ACTIVE) }`, stub.queries[0])
}

func TestListParameters(t *testing.T) {
	c, stub := newStubClient(t, "0.9.0", `{"data":{"works":[]}}`)
	_, err := c.Works(context.Background(), Params{
		Limit:        5,
		Offset:       10,
		Order:        &Order{Field: "PUBLICATION_DATE", Direction: "desc"},
		Publishers:   []string{publisherID},
		WorkTypes:    []string{"MONOGRAPH", "EDITED_BOOK"},
		WorkStatuses: []string{"ACTIVE"},
	})
	require.NoError(t, err)
	assert.Contains(t, stub.queries[0],
		`works(limit: 5, offset: 10, order: {field: PUBLICATION_DATE, direction: DESC}, publishers: ["`+publisherID+`"], workTypes: [MONOGRAPH, EDITED_BOOK], workStatuses: [ACTIVE])`)
}

func TestGet(t *testing.T) {
	c, stub := newStubClient(t, "0.9.0", `{"data":{"work":{"__typename":"Work","workId":"`+workID+`","fullTitle":"T"}}}`)
	res, err := c.Work(context.Background(), workID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stub.queries[0], `query { work(workId: "`+workID+`") { `))

	r, err := res.Record()
	require.NoError(t, err)
	assert.Equal(t, "T", r.Str("fullTitle"))

	_, err = c.Work(context.Background(), "w1")
	assert.ErrorIs(t, err, ErrInvalidID)

	c, _ = newStubClient(t, "0.9.0", `{"data":{"work":null}}`)
	_, err = c.Work(context.Background(), workID)
	assert.True(t, IsNotFound(err))

	c, stub = newStubClient(t, "0.9.0", `{"data":{"workByDoi":{"workId":"`+workID+`"}}}`)
	_, err = c.WorkByDOI(context.Background(), "https://doi.org/10.11647/OBP.0001")
	require.NoError(t, err)
	assert.Contains(t, stub.queries[0], `workByDoi(doi: "https://doi.org/10.11647/OBP.0001")`)

	_, err = c.WorkByDOI(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrInvalidDOI)
	assert.Len(t, stub.queries, 1)
}

func TestServerErrorsSurface(t *testing.T) {
	c, _ := newStubClient(t, "0.9.0", `{"errors":[{"message":"Invalid filter"}]}`)
	_, err := c.Works(context.Background(), Params{})
	require.Error(t, err)
	assert.ErrorIs(t, err, graphql.ErrSchema)

	var gqlErr *graphql.Error
	require.ErrorAs(t, err, &gqlErr)
	assert.Equal(t, []string{"Invalid filter"}, gqlErr.Messages())
}

func TestMutateFollowsVersion(t *testing.T) {
	c, stub := newStubClient(t, "0.4.2", `{"data":{"createWork":{"workId":"`+workID+`"}}}`)
	id, err := c.Mutate(context.Background(), "createWork", map[string]any{
		"workType":  "MONOGRAPH",
		"fullTitle": "A \"quoted\" title",
		"width":     156,
	})
	require.NoError(t, err)
	assert.Equal(t, workID, id)
	assert.Equal(t,
		`mutation { createWork(data: {workType: MONOGRAPH, fullTitle: "A \"quoted\" title", width: 156}) { workId } }`,
		stub.queries[0])

	c, stub = newStubClient(t, "0.8.0", `{}`)
	_, err = c.Mutate(context.Background(), "createWork", map[string]any{"width": 156})
	assert.ErrorIs(t, err, graphql.ErrUnknownField)
	assert.Empty(t, stub.queries)
}

func TestLoginSetsAuthorization(t *testing.T) {
	var authorization string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/account/login":
			w.Write([]byte(`{"token":"abc"}`))
		case "/graphql":
			authorization = r.Header.Get("Authorization")
			w.Write([]byte(`{"data":{"createPublisher":{"publisherId":"` + publisherID + `"}}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client, err := NewClient(server.URL+"/", zerolog.Nop())
	require.NoError(t, err)
	assert.False(t, client.LoggedIn())

	require.NoError(t, client.Login(context.Background(), "user@example.org", "pw"))
	assert.True(t, client.LoggedIn())

	id, err := client.Mutate(context.Background(), "createPublisher", map[string]any{"publisherName": "OBP"})
	require.NoError(t, err)
	assert.Equal(t, publisherID, id)
	assert.Equal(t, "Bearer abc", authorization)
}

func TestContributionInstitutionName(t *testing.T) {
	tests := []struct {
		name string
		c    Contribution
		want string
	}{
		{name: "free text", c: Contribution{Institution: "Coventry University"}, want: "Coventry University"},
		{
			name: "first affiliation by ordinal",
			c: Contribution{Affiliations: []Affiliation{
				{AffiliationOrdinal: 2, Institution: &Institution{InstitutionName: "Second"}},
				{AffiliationOrdinal: 1, Institution: &Institution{InstitutionName: "First"}},
			}},
			want: "First",
		},
		{name: "none", c: Contribution{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.InstitutionName())
		})
	}
}
