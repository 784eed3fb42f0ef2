package thoth

import (
	"maps"
	"slices"

	"github.com/s0up4200/thoth/graphql"
	"github.com/s0up4200/thoth/structure"
)

// QuerySpec declares the arguments a query operation accepts and the fields
// it selects. Count operations select nothing.
type QuerySpec struct {
	Parameters []string
	Fields     []string
}

// Accepts reports whether the operation declares parameter name
func (q QuerySpec) Accepts(name string) bool {
	return slices.Contains(q.Parameters, name)
}

// Entity ties the list, single and count operations of one record type
type Entity struct {
	Name   string
	Plural string
	Count  string
	IDArg  string
}

// Entities lists every record type across all versions. A version may only
// bind a subset.
var Entities = []Entity{
	{Name: "work", Plural: "works", Count: "workCount", IDArg: "workId"},
	{Name: "publication", Plural: "publications", Count: "publicationCount", IDArg: "publicationId"},
	{Name: "publisher", Plural: "publishers", Count: "publisherCount", IDArg: "publisherId"},
	{Name: "imprint", Plural: "imprints", Count: "imprintCount", IDArg: "imprintId"},
	{Name: "contributor", Plural: "contributors", Count: "contributorCount", IDArg: "contributorId"},
	{Name: "contribution", Plural: "contributions", Count: "contributionCount", IDArg: "contributionId"},
	{Name: "series", Plural: "serieses", Count: "seriesCount", IDArg: "seriesId"},
	{Name: "issue", Plural: "issues", Count: "issueCount", IDArg: "issueId"},
	{Name: "language", Plural: "languages", Count: "languageCount", IDArg: "languageId"},
	{Name: "price", Plural: "prices", Count: "priceCount", IDArg: "priceId"},
	{Name: "subject", Plural: "subjects", Count: "subjectCount", IDArg: "subjectId"},
	{Name: "funder", Plural: "funders", Count: "funderCount", IDArg: "funderId"},
	{Name: "institution", Plural: "institutions", Count: "institutionCount", IDArg: "institutionId"},
	{Name: "funding", Plural: "fundings", Count: "fundingCount", IDArg: "fundingId"},
	{Name: "location", Plural: "locations", Count: "locationCount", IDArg: "locationId"},
	{Name: "reference", Plural: "references", Count: "referenceCount", IDArg: "referenceId"},
}

// LookupEntity finds an entity by its singular, plural or count operation
func LookupEntity(operation string) (Entity, bool) {
	for _, e := range Entities {
		if e.Name == operation || e.Plural == operation || e.Count == operation {
			return e, true
		}
	}
	return Entity{}, false
}

// schema is the complete operation table of one API version. Each version
// derives its schema from its predecessor's.
type schema struct {
	version   string
	queries   map[string]QuerySpec
	mutations map[string]graphql.MutationSpec
	// counts that the server rejects unless filter is sent, even empty
	countFilterRequired map[string]bool
	formatters          structure.Formatters
	endpoints           map[string]string
}

func (s *schema) derive(version string) *schema {
	return &schema{
		version:             version,
		queries:             maps.Clone(s.queries),
		mutations:           maps.Clone(s.mutations),
		countFilterRequired: maps.Clone(s.countFilterRequired),
		formatters:          maps.Clone(s.formatters),
		endpoints:           maps.Clone(s.endpoints),
	}
}

// entity registers the list, single and count operations of an entity
func (s *schema) entity(name string, fields []string, listParams, countParams []string) {
	e, ok := LookupEntity(name)
	if !ok {
		panic("thoth: unknown entity " + name)
	}
	s.queries[e.Plural] = QuerySpec{Parameters: listParams, Fields: fields}
	s.queries[e.Name] = QuerySpec{Parameters: []string{e.IDArg}, Fields: fields}
	s.queries[e.Count] = QuerySpec{Parameters: countParams}
}

// workFields sets the selection of every work query
func (s *schema) workFields(fields []string) {
	for _, op := range []string{"works", "work", "workByDoi"} {
		spec := s.queries[op]
		spec.Fields = fields
		s.queries[op] = spec
	}
}

// drop removes an entity's operations from the schema
func (s *schema) drop(name string) {
	e, _ := LookupEntity(name)
	delete(s.queries, e.Plural)
	delete(s.queries, e.Name)
	delete(s.queries, e.Count)
}

// mutation registers a mutation
func (s *schema) mutation(name, returns string, fields ...graphql.MutationField) {
	s.mutations[name] = graphql.MutationSpec{Name: name, Fields: fields, Returns: returns}
}

func (s *schema) builder() *structure.Builder {
	return structure.NewBuilder(s.formatters, s.endpoints)
}

// q and u declare quoted and unquoted mutation fields
func q(name string) graphql.MutationField { return graphql.MutationField{Name: name, Quoted: true} }
func u(name string) graphql.MutationField { return graphql.MutationField{Name: name} }

// with returns a copy of base extended by extra
func with(base []string, extra ...string) []string {
	out := slices.Clone(base)
	return append(out, extra...)
}

// without returns a copy of base minus the named entries
func without(base []string, drop ...string) []string {
	out := make([]string, 0, len(base))
	for _, item := range base {
		if !slices.Contains(drop, item) {
			out = append(out, item)
		}
	}
	return out
}

// withoutFields returns a copy of fields minus the named mutation fields
func withoutFields(fields []graphql.MutationField, drop ...string) []graphql.MutationField {
	out := make([]graphql.MutationField, 0, len(fields))
	for _, f := range fields {
		if !slices.Contains(drop, f.Name) {
			out = append(out, f)
		}
	}
	return out
}

// replace returns a copy of base with entries equal to old swapped for repl
func replace(base []string, old, repl string) []string {
	out := slices.Clone(base)
	for i, item := range out {
		if item == old {
			out[i] = repl
		}
	}
	return out
}
