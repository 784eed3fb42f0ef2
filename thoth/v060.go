package thoth

var affiliationSelection = "affiliations { affiliationId affiliationOrdinal position institution { institutionId institutionName ror } }"

var institutionFields = []string{
	"institutionId", "institutionName", "institutionDoi", "ror", "countryCode", "createdAt", "updatedAt",
	"fundings { fundingId program projectName projectShortname grantNumber jurisdiction work { workId fullTitle } }",
	"affiliations { affiliationId contribution { contributionId fullName } }",
	"__typename",
}

var fundingFields060 = []string{
	"fundingId", "workId", "institutionId", "program", "projectName", "projectShortname", "grantNumber",
	"jurisdiction", "createdAt", "updatedAt",
	"work { workId fullTitle }",
	"institution { institutionId institutionName institutionDoi ror countryCode }",
	"__typename",
}

var contributionFields060 = with(
	without(contributionFields042, "institution", "__typename"),
	affiliationSelection, "__typename")

var workContributions060 = "contributions { contributionId contributionType mainContribution contributionOrdinal biography firstName lastName fullName " +
	contributorSelection042 + " " + affiliationSelection + " }"

var workFields060 = replace(
	replace(workFields050, workContributions042, workContributions060),
	workFundings042,
	"fundings { fundingId program projectName grantNumber institution { institutionId institutionName } }")

// schema060 replaces funders with institutions and moves contributor
// institutions into affiliations.
func schema060() *schema {
	s := schema050().derive("0.6.0")
	s.countFilterRequired = map[string]bool{}

	s.drop("funder")
	delete(s.mutations, "createFunder")

	s.entity("institution", institutionFields, globalParams, []string{"filter"})
	s.entity("funding", fundingFields060, pagingParams, nil)
	s.entity("contribution", contributionFields060,
		with(pagingParams, "contributionType"),
		[]string{"contributionType"})
	s.workFields(workFields060)

	s.mutation("createContribution", "contributionId",
		q("workId"), q("contributorId"), u("contributionType"), u("mainContribution"),
		q("biography"), u("contributionOrdinal"), q("firstName"), q("lastName"), q("fullName"))
	s.mutation("createFunding", "fundingId",
		q("workId"), q("institutionId"), q("program"), q("projectName"), q("projectShortname"),
		q("grantNumber"), q("jurisdiction"))
	s.mutation("createInstitution", "institutionId",
		q("institutionName"), q("institutionDoi"), q("ror"), u("countryCode"))
	s.mutation("updateInstitution", "institutionId",
		q("institutionId"), q("institutionName"), q("institutionDoi"), q("ror"), u("countryCode"))
	s.mutation("createAffiliation", "affiliationId",
		q("contributionId"), q("institutionId"), u("affiliationOrdinal"), q("position"))
	return s
}

// Thoth060 binds API version 0.6.0
type Thoth060 struct {
	*Thoth050
}

func newThoth060(b *base) *Thoth060 {
	return &Thoth060{Thoth050: newThoth050(b)}
}
