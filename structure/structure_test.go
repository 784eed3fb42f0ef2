package structure

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const worksFixture = `[
  {
    "__typename": "Work",
    "workId": "e0f748b2-984f-45cc-8b9e-13989c31dda4",
    "fullTitle": "Open Access and Its Enemies",
    "doi": "https://doi.org/10.11647/OBP.0001",
    "place": "Cambridge",
    "publicationDate": "2021-03-04",
    "pageCount": 250,
    "imprint": {"publisher": {"publisherName": "Open Book Publishers", "publisherId": "85fd969a"}},
    "contributions": [
      {"fullName": "Second Author", "contributionType": "AUTHOR", "contributionOrdinal": 2, "mainContribution": true},
      {"fullName": "First Author", "contributionType": "AUTHOR", "contributionOrdinal": 1, "mainContribution": true},
      {"fullName": "Some Translator", "contributionType": "TRANSLATOR", "contributionOrdinal": 3, "mainContribution": false},
      {"fullName": "An Editor", "contributionType": "EDITOR", "contributionOrdinal": 4, "mainContribution": false}
    ]
  },
  {
    "__typename": "Work",
    "workId": "w2",
    "fullTitle": "Undated",
    "doi": null,
    "place": "London",
    "publicationDate": null,
    "imprint": {"publisher": {"publisherName": "Punctum", "publisherId": "p2"}}
  }
]`

func newTestBuilder(opts ...BuilderOption) *Builder {
	return NewBuilder(DefaultFormatters(), DefaultEndpoints(), opts...)
}

func TestRecordsPreserveEveryKey(t *testing.T) {
	records, err := newTestBuilder().Records("works", []byte(worksFixture))
	require.NoError(t, err)
	require.Len(t, records, 2)

	var original []map[string]any
	require.NoError(t, json.Unmarshal([]byte(worksFixture), &original))

	for i, r := range records {
		for key := range original[i] {
			assert.Contains(t, r.Keys(), key)
		}

		out, err := json.Marshal(r)
		require.NoError(t, err)
		want, err := json.Marshal(original[i])
		require.NoError(t, err)
		assert.JSONEq(t, string(want), string(out))
	}
}

func TestWorkFormatter(t *testing.T) {
	records, err := newTestBuilder().Records("works", []byte(worksFixture))
	require.NoError(t, err)

	assert.Equal(t,
		"First Author, Second Author, An Editor (ed.), Open Access and Its Enemies (Cambridge: Open Book Publishers, 2021) [e0f748b2-984f-45cc-8b9e-13989c31dda4]",
		records[0].String())
	assert.Equal(t, "Undated (London: Punctum, n.d.) [w2]", records[1].String())
}

func TestFormatterRequiresMatchingTypename(t *testing.T) {
	b := newTestBuilder()

	r, err := b.Record("work", []byte(`{"__typename":"Publisher","publisherName":"X","publisherId":"1"}`))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(r.String(), "Publisher{"))
	assert.Contains(t, r.String(), `"publisherName":"X"`)

	r, err = b.Record("work", []byte(`{"fullTitle":"No Type"}`))
	require.NoError(t, err)
	assert.Equal(t, `Record{"fullTitle":"No Type"}`, r.String())

	r, err = b.Record("unknownEndpoint", []byte(`{"__typename":"Work","fullTitle":"T"}`))
	require.NoError(t, err)
	assert.Equal(t, `Work{"__typename":"Work","fullTitle":"T"}`, r.String())
}

func TestNestedRecordsUseTheirOwnFormatter(t *testing.T) {
	data := `{
		"__typename": "Imprint",
		"imprintId": "i1",
		"imprintName": "Imprint One",
		"publisherId": "p1",
		"publisher": {"__typename": "Publisher", "publisherName": "Pub", "publisherId": "p1"}
	}`
	r, err := newTestBuilder().Record("imprint", []byte(data))
	require.NoError(t, err)

	assert.Equal(t, "Imprint One (Pub/p1) [i1]", r.String())
	assert.Equal(t, "Pub (p1)", r.Child("publisher").String())
}

func TestFormatters(t *testing.T) {
	tests := []struct {
		endpoint string
		data     string
		want     string
	}{
		{
			endpoint: "publishers",
			data:     `{"__typename":"Publisher","publisherName":"Open Book Publishers","publisherId":"85fd969a"}`,
			want:     "Open Book Publishers (85fd969a)",
		},
		{
			endpoint: "contributions",
			data:     `{"__typename":"Contribution","fullName":"A B","contributionType":"AUTHOR","work":{"fullTitle":"T"},"contributionId":"c1"}`,
			want:     "A B (AUTHOR of T) [c1]",
		},
		{
			endpoint: "contributors",
			data:     `{"__typename":"Contributor","fullName":"A B","contributorId":"k1","contributions":[{"contributionType":"EDITOR","work":{"fullTitle":"T"}}]}`,
			want:     "A B (EDITOR of T) [k1]",
		},
		{
			endpoint: "funders",
			data:     `{"__typename":"Funder","funderName":"Wellcome","funderId":"f1","fundings":[{},{}]}`,
			want:     "Wellcome funded 2 books [f1]",
		},
		{
			endpoint: "institutions",
			data:     `{"__typename":"Institution","institutionName":"UKRI","institutionId":"i1","fundings":[{}]}`,
			want:     "UKRI funded 1 books [i1]",
		},
		{
			endpoint: "fundings",
			data:     `{"__typename":"Funding","fundingId":"g1","funder":{"funderName":"Wellcome"},"work":{"fullTitle":"T"}}`,
			want:     "Wellcome funded T [g1]",
		},
		{
			endpoint: "fundings",
			data:     `{"__typename":"Funding","fundingId":"g2","institution":{"institutionName":"UKRI"},"work":{"fullTitle":"T"}}`,
			want:     "UKRI funded T [g2]",
		},
		{
			endpoint: "issues",
			data:     `{"__typename":"Issue","issueId":"s1","work":{"fullTitle":"T"},"series":{"seriesName":"S","imprint":{"publisher":{"publisherName":"P"}}}}`,
			want:     "T in S (P) [s1]",
		},
		{
			endpoint: "languages",
			data:     `{"__typename":"Language","languageId":"l1","languageCode":"ENG","languageRelation":"ORIGINAL","work":{"fullTitle":"T"}}`,
			want:     "T is in ENG (ORIGINAL) [l1]",
		},
		{
			endpoint: "prices",
			data:     `{"__typename":"Price","priceId":"pr1","unitPrice":9.99,"currencyCode":"GBP","publication":{"work":{"fullTitle":"T","place":"C","publicationDate":"2020-01-01","imprint":{"publisher":{"publisherName":"P"}}}}}`,
			want:     "T (C: P, 2020) costs 9.99GBP [pr1]",
		},
		{
			endpoint: "publications",
			data:     `{"__typename":"Publication","publicationId":"pb1","publicationType":"PAPERBACK","prices":[{"unitPrice":15,"currencyCode":"USD"}],"work":{"fullTitle":"T","place":"C","publicationDate":"2020-01-01","imprint":{"publisher":{"publisherName":"P"}},"contributions":[{"fullName":"A","contributionType":"AUTHOR","contributionOrdinal":1}]}}`,
			want:     "A, T (C: P, 2020) [PAPERBACK] (15USD) [pb1]",
		},
		{
			endpoint: "serieses",
			data:     `{"__typename":"Series","seriesId":"se1","seriesName":"S","imprint":{"publisher":{"publisherName":"P"}}}`,
			want:     "S (P) [se1]",
		},
		{
			endpoint: "subjects",
			data:     `{"__typename":"Subject","subjectId":"su1","subjectCode":"JFD","subjectType":"BIC","work":{"fullTitle":"T"}}`,
			want:     "T is in the JFD subject area (BIC) [su1]",
		},
		{
			endpoint: "locations",
			data:     `{"__typename":"Location","locationId":"lo1","landingPage":"https://x","locationPlatform":"OTHER","publication":{"work":{"fullTitle":"T"}}}`,
			want:     "T at https://x (OTHER) [lo1]",
		},
		{
			endpoint: "references",
			data:     `{"__typename":"Reference","referenceId":"r1","doi":"https://doi.org/10.1/x"}`,
			want:     "https://doi.org/10.1/x [r1]",
		},
	}

	b := newTestBuilder()
	for _, tt := range tests {
		t.Run(tt.endpoint, func(t *testing.T) {
			r, err := b.Record(tt.endpoint, []byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.String())
		})
	}
}

func TestBuild(t *testing.T) {
	b := newTestBuilder()

	v, err := b.Build("work", []byte("null"))
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = b.Build("work", []byte(`{"workId":"1"}`))
	require.NoError(t, err)
	require.IsType(t, &Record{}, v)

	v, err = b.Build("works", []byte(`[{"workId":"1"},{"workId":"2"}]`))
	require.NoError(t, err)
	require.IsType(t, []*Record{}, v)
	assert.Len(t, v.([]*Record), 2)

	_, err = b.Build("works", []byte(`[1, 2]`))
	assert.Error(t, err)
}

func TestAccessors(t *testing.T) {
	r, err := newTestBuilder().Record("work", []byte(`{
		"pageCount": 250,
		"width": 152.4,
		"live": true,
		"tags": ["a", "b"],
		"contributions": [{"fullName": "A"}, {"fullName": "B"}],
		"imprint": {"publisher": {"publisherName": "P"}}
	}`))
	require.NoError(t, err)

	assert.Equal(t, 250, r.Int("pageCount"))
	assert.Equal(t, "250", r.Str("pageCount"))
	assert.InDelta(t, 152.4, r.Float("width"), 0.0001)
	assert.True(t, r.Bool("live"))
	assert.Equal(t, "P", r.Str("imprint.publisher.publisherName"))
	assert.Equal(t, "B", r.Str("contributions.1.fullName"))
	assert.Equal(t, "", r.Str("contributions.5.fullName"))
	assert.Equal(t, 2, r.Len("tags"))
	assert.Len(t, r.List("contributions"), 2)
	assert.Nil(t, r.Child("missing"))
	assert.False(t, r.Has("missing.deeper"))

	var typed struct {
		PageCount int     `json:"pageCount"`
		Width     float64 `json:"width"`
	}
	require.NoError(t, r.Decode(&typed))
	assert.Equal(t, 250, typed.PageCount)

	out, err := yaml.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(out), "pageCount: 250")
}

func TestUntypedBuilder(t *testing.T) {
	b := NewBuilder(Formatters{"Format": Field("id")}, map[string]string{"formats": "Format"}, WithoutTypeCheck())
	records, err := b.Records("formats", []byte(`[{"id":"onix_3.0","name":"ONIX 3.0"}]`))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "onix_3.0", records[0].String())
}

func TestYear(t *testing.T) {
	assert.Equal(t, "n.d.", Year(""))
	assert.Equal(t, "1999", Year("1999-12-31"))
	assert.Equal(t, "2021", Year("2021"))
	assert.Equal(t, "2020", Year("2020-05"))
	assert.Equal(t, "2019", Year("2019-07-01T00:00:00Z"))
}
