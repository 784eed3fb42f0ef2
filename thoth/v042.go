package thoth

import (
	"github.com/s0up4200/thoth/graphql"
	"github.com/s0up4200/thoth/structure"
)

var (
	listParams    = []string{"limit", "offset", "filter", "order", "publishers"}
	pagingParams  = []string{"limit", "offset", "order", "publishers"}
	globalParams  = []string{"limit", "offset", "filter", "order"}
	countedFilter = []string{"filter", "publishers"}
)

var contributorSelection042 = "contributor { contributorId firstName lastName fullName orcid website }"

var (
	workContributions042 = "contributions { contributionId contributionType mainContribution contributionOrdinal biography institution firstName lastName fullName " + contributorSelection042 + " }"
	workFundings042      = "fundings { fundingId program projectName grantNumber funder { funderId funderName } }"
)

var workFields042 = []string{
	"workId", "workType", "workStatus", "fullTitle", "title", "subtitle", "reference", "edition",
	"imprintId", "doi", "publicationDate", "place", "width", "height", "pageCount", "pageBreakdown",
	"imageCount", "tableCount", "audioCount", "videoCount", "license", "copyrightHolder",
	"landingPage", "lccn", "oclc", "shortAbstract", "longAbstract", "generalNote", "toc",
	"coverUrl", "coverCaption", "createdAt", "updatedAt",
	"publications { publicationId publicationType isbn publicationUrl prices { currencyCode unitPrice } }",
	workContributions042,
	"subjects { subjectId subjectType subjectCode subjectOrdinal }",
	"languages { languageId languageCode languageRelation mainLanguage }",
	workFundings042,
	"issues { issueId issueOrdinal series { seriesId seriesName } }",
	"imprint { imprintId imprintName publisher { publisherId publisherName } }",
	"__typename",
}

var publicationWork = "work { workId fullTitle doi publicationDate place contributions { fullName contributionType mainContribution contributionOrdinal } imprint { publisher { publisherName publisherId } } }"

var publicationFields042 = []string{
	"publicationId", "publicationType", "workId", "isbn", "publicationUrl", "createdAt", "updatedAt",
	"prices { priceId currencyCode unitPrice }",
	publicationWork,
	"__typename",
}

var publisherFields = []string{
	"publisherId", "publisherName", "publisherShortname", "publisherUrl", "createdAt", "updatedAt",
	"imprints { imprintId imprintName imprintUrl }",
	"__typename",
}

var imprintFields = []string{
	"imprintId", "imprintName", "imprintUrl", "publisherId", "createdAt", "updatedAt",
	"publisher { publisherId publisherName }",
	"__typename",
}

var contributorFields = []string{
	"contributorId", "firstName", "lastName", "fullName", "orcid", "website", "createdAt", "updatedAt",
	"contributions { contributionId contributionType work { workId fullTitle } }",
	"__typename",
}

var contributionFields042 = []string{
	"contributionId", "contributionType", "mainContribution", "biography", "institution",
	"firstName", "lastName", "fullName", "contributionOrdinal", "workId", "contributorId",
	"createdAt", "updatedAt",
	"work { workId fullTitle }",
	contributorSelection042,
	"__typename",
}

var seriesFields042 = []string{
	"seriesId", "seriesType", "seriesName", "issnPrint", "issnDigital", "seriesUrl", "imprintId",
	"createdAt", "updatedAt",
	"imprint { imprintId imprintName publisher { publisherName publisherId } }",
	"issues { issueId issueOrdinal work { workId fullTitle } }",
	"__typename",
}

var issueFields = []string{
	"issueId", "seriesId", "workId", "issueOrdinal", "createdAt", "updatedAt",
	"series { seriesId seriesType seriesName imprint { publisher { publisherName publisherId } } }",
	"work { workId fullTitle doi }",
	"__typename",
}

var languageFields = []string{
	"languageId", "workId", "languageCode", "languageRelation", "mainLanguage", "createdAt", "updatedAt",
	"work { workId fullTitle }",
	"__typename",
}

var priceFields = []string{
	"priceId", "publicationId", "currencyCode", "unitPrice", "createdAt", "updatedAt",
	"publication { publicationId publicationType work { workId fullTitle place publicationDate imprint { publisher { publisherName } } } }",
	"__typename",
}

var subjectFields = []string{
	"subjectId", "workId", "subjectCode", "subjectType", "subjectOrdinal", "createdAt", "updatedAt",
	"work { workId fullTitle }",
	"__typename",
}

var funderFields = []string{
	"funderId", "funderName", "funderDoi", "createdAt", "updatedAt",
	"fundings { fundingId program projectName projectShortname grantNumber jurisdiction work { workId fullTitle } }",
	"__typename",
}

var fundingFields042 = []string{
	"fundingId", "workId", "funderId", "program", "projectName", "projectShortname", "grantNumber",
	"jurisdiction", "createdAt", "updatedAt",
	"work { workId fullTitle }",
	"funder { funderId funderName funderDoi }",
	"__typename",
}

var workMutation042 = []graphql.MutationField{
	u("workType"), u("workStatus"), q("fullTitle"), q("title"), q("subtitle"), q("reference"),
	u("edition"), q("imprintId"), q("doi"), q("publicationDate"), q("place"), u("width"),
	u("height"), u("pageCount"), q("pageBreakdown"), u("imageCount"), u("tableCount"),
	u("audioCount"), u("videoCount"), q("license"), q("copyrightHolder"), q("landingPage"),
	q("lccn"), q("oclc"), q("shortAbstract"), q("longAbstract"), q("generalNote"), q("toc"),
	q("coverUrl"), q("coverCaption"),
}

// schema042 is the oldest supported schema. Funding bodies are funders and
// contributions carry a free-text institution.
func schema042() *schema {
	s := &schema{
		version:   "0.4.2",
		queries:   map[string]QuerySpec{},
		mutations: map[string]graphql.MutationSpec{},
		countFilterRequired: map[string]bool{
			"publisherCount": true,
		},
		formatters: structure.DefaultFormatters(),
		endpoints:  structure.DefaultEndpoints(),
	}

	s.entity("work", workFields042,
		with(listParams, "workType", "workStatus"),
		with(countedFilter, "workType", "workStatus"))
	s.queries["workByDoi"] = QuerySpec{Parameters: []string{"doi"}, Fields: workFields042}
	s.entity("publication", publicationFields042,
		with(listParams, "publicationType"),
		with(countedFilter, "publicationType"))
	s.entity("publisher", publisherFields, listParams, countedFilter)
	s.entity("imprint", imprintFields, listParams, countedFilter)
	s.entity("contributor", contributorFields, globalParams, []string{"filter"})
	s.entity("contribution", contributionFields042,
		with(pagingParams, "contributionType"),
		[]string{"contributionType"})
	s.entity("series", seriesFields042,
		with(listParams, "seriesType"),
		with(countedFilter, "seriesType"))
	s.entity("issue", issueFields, pagingParams, nil)
	s.entity("language", languageFields,
		with(pagingParams, "languageCode", "languageRelation"),
		[]string{"languageCode", "languageRelation"})
	s.entity("price", priceFields,
		with(pagingParams, "currencyCode"),
		[]string{"currencyCode"})
	s.entity("subject", subjectFields,
		with(listParams, "subjectType"),
		[]string{"filter", "subjectType"})
	s.entity("funder", funderFields, globalParams, []string{"filter"})
	s.entity("funding", fundingFields042, pagingParams, nil)

	s.mutation("createPublisher", "publisherId",
		q("publisherName"), q("publisherShortname"), q("publisherUrl"))
	s.mutation("createImprint", "imprintId",
		q("publisherId"), q("imprintName"), q("imprintUrl"))
	s.mutation("createWork", "workId", workMutation042...)
	s.mutation("createPublication", "publicationId",
		u("publicationType"), q("workId"), q("isbn"), q("publicationUrl"))
	s.mutation("createPrice", "priceId",
		q("publicationId"), u("currencyCode"), u("unitPrice"))
	s.mutation("createLanguage", "languageId",
		q("workId"), u("languageCode"), u("languageRelation"), u("mainLanguage"))
	s.mutation("createSubject", "subjectId",
		q("workId"), u("subjectType"), q("subjectCode"), u("subjectOrdinal"))
	s.mutation("createSeries", "seriesId",
		u("seriesType"), q("seriesName"), q("issnPrint"), q("issnDigital"), q("seriesUrl"), q("imprintId"))
	s.mutation("createIssue", "issueId",
		q("seriesId"), q("workId"), u("issueOrdinal"))
	s.mutation("createContributor", "contributorId",
		q("firstName"), q("lastName"), q("fullName"), q("orcid"), q("website"))
	s.mutation("createContribution", "contributionId",
		q("workId"), q("contributorId"), u("contributionType"), u("mainContribution"),
		q("biography"), q("institution"), q("firstName"), q("lastName"), q("fullName"),
		u("contributionOrdinal"))
	s.mutation("createFunder", "funderId",
		q("funderName"), q("funderDoi"))
	s.mutation("createFunding", "fundingId",
		q("workId"), q("funderId"), q("program"), q("projectName"), q("projectShortname"),
		q("grantNumber"), q("jurisdiction"))
	return s
}

// Thoth042 binds API version 0.4.2
type Thoth042 struct {
	*base
}

func newThoth042(b *base) *Thoth042 {
	return &Thoth042{base: b}
}
