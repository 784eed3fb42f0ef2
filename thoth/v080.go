package thoth

import "github.com/s0up4200/thoth/graphql"

var locationSelection = "locations { locationId landingPage fullTextUrl locationPlatform canonical }"

var dimensionFields = []string{"widthMm", "widthIn", "heightMm", "heightIn", "depthMm", "depthIn", "weightG", "weightOz"}

var (
	workPublications042 = "publications { publicationId publicationType isbn publicationUrl prices { currencyCode unitPrice } }"
	workPublications080 = "publications { publicationId publicationType isbn widthMm heightMm depthMm weightG prices { currencyCode unitPrice } " + locationSelection + " }"
	workRelations080    = "relations { relationType relationOrdinal relatedWork { workId fullTitle doi } }"
)

var workFields080 = with(
	without(replace(workFields060, workPublications042, workPublications080), "width", "height", "__typename"),
	"firstPage", "lastPage", "pageInterval", workRelations080, "__typename")

var publicationFields080 = with(
	without(publicationFields042, "publicationUrl", "__typename"),
	with(dimensionFields, locationSelection, "__typename")...)

var locationFields = []string{
	"locationId", "publicationId", "landingPage", "fullTextUrl", "locationPlatform", "canonical",
	"createdAt", "updatedAt",
	"publication { publicationId publicationType work { workId fullTitle } }",
	"__typename",
}

var workMutation080 = append(
	withoutFields(workMutation042, "width", "height"),
	q("firstPage"), q("lastPage"), q("pageInterval"))

// schema080 moves physical dimensions from works to publications, adds
// locations and work relations, and filters works by several types or
// statuses at once.
func schema080() *schema {
	s := schema060().derive("0.8.0")

	s.entity("work", workFields080,
		with(listParams, "workTypes", "workStatuses"),
		with(countedFilter, "workTypes", "workStatuses"))
	s.queries["workByDoi"] = QuerySpec{Parameters: []string{"doi"}, Fields: workFields080}
	s.entity("publication", publicationFields080,
		with(listParams, "publicationType"),
		with(countedFilter, "publicationType"))
	s.entity("location", locationFields,
		with(pagingParams, "locationPlatform"),
		[]string{"locationPlatform"})

	s.mutation("createWork", "workId", workMutation080...)
	s.mutation("updateWork", "workId", append([]graphql.MutationField{q("workId")}, workMutation080...)...)
	s.mutation("createPublication", "publicationId",
		u("publicationType"), q("workId"), u("widthMm"), u("widthIn"), u("heightMm"), u("heightIn"),
		u("depthMm"), u("depthIn"), u("weightG"), u("weightOz"), q("isbn"))
	s.mutation("createLocation", "locationId",
		q("publicationId"), q("landingPage"), q("fullTextUrl"), u("locationPlatform"), u("canonical"))
	s.mutation("createWorkRelation", "workRelationId",
		q("relatorWorkId"), q("relatedWorkId"), u("relationType"), u("relationOrdinal"))
	return s
}

// Thoth080 binds API version 0.8.0
type Thoth080 struct {
	*Thoth060
}

func newThoth080(b *base) *Thoth080 {
	return &Thoth080{Thoth060: newThoth060(b)}
}
