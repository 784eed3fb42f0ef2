package thoth

import "context"

// Works lists works
func (b *base) Works(ctx context.Context, p Params) (*Response, error) {
	return b.List(ctx, "works", p)
}

// Work fetches one work by ID
func (b *base) Work(ctx context.Context, id string) (*Response, error) {
	return b.Get(ctx, "work", id)
}

// WorkCount counts works
func (b *base) WorkCount(ctx context.Context, p Params) (int, error) {
	return b.Count(ctx, "workCount", p)
}

// Publications lists publications
func (b *base) Publications(ctx context.Context, p Params) (*Response, error) {
	return b.List(ctx, "publications", p)
}

// Publication fetches one publication by ID
func (b *base) Publication(ctx context.Context, id string) (*Response, error) {
	return b.Get(ctx, "publication", id)
}

// PublicationCount counts publications
func (b *base) PublicationCount(ctx context.Context, p Params) (int, error) {
	return b.Count(ctx, "publicationCount", p)
}

// Publishers lists publishers
func (b *base) Publishers(ctx context.Context, p Params) (*Response, error) {
	return b.List(ctx, "publishers", p)
}

// Publisher fetches one publisher by ID
func (b *base) Publisher(ctx context.Context, id string) (*Response, error) {
	return b.Get(ctx, "publisher", id)
}

// PublisherCount counts publishers
func (b *base) PublisherCount(ctx context.Context, p Params) (int, error) {
	return b.Count(ctx, "publisherCount", p)
}

// Imprints lists imprints
func (b *base) Imprints(ctx context.Context, p Params) (*Response, error) {
	return b.List(ctx, "imprints", p)
}

// Imprint fetches one imprint by ID
func (b *base) Imprint(ctx context.Context, id string) (*Response, error) {
	return b.Get(ctx, "imprint", id)
}

// ImprintCount counts imprints
func (b *base) ImprintCount(ctx context.Context, p Params) (int, error) {
	return b.Count(ctx, "imprintCount", p)
}

// Contributors lists contributors
func (b *base) Contributors(ctx context.Context, p Params) (*Response, error) {
	return b.List(ctx, "contributors", p)
}

// Contributor fetches one contributor by ID
func (b *base) Contributor(ctx context.Context, id string) (*Response, error) {
	return b.Get(ctx, "contributor", id)
}

// ContributorCount counts contributors
func (b *base) ContributorCount(ctx context.Context, p Params) (int, error) {
	return b.Count(ctx, "contributorCount", p)
}

// Contributions lists contributions
func (b *base) Contributions(ctx context.Context, p Params) (*Response, error) {
	return b.List(ctx, "contributions", p)
}

// Contribution fetches one contribution by ID
func (b *base) Contribution(ctx context.Context, id string) (*Response, error) {
	return b.Get(ctx, "contribution", id)
}

// ContributionCount counts contributions
func (b *base) ContributionCount(ctx context.Context, p Params) (int, error) {
	return b.Count(ctx, "contributionCount", p)
}

// Serieses lists serieses
func (b *base) Serieses(ctx context.Context, p Params) (*Response, error) {
	return b.List(ctx, "serieses", p)
}

// Series fetches one series by ID
func (b *base) Series(ctx context.Context, id string) (*Response, error) {
	return b.Get(ctx, "series", id)
}

// SeriesCount counts serieses
func (b *base) SeriesCount(ctx context.Context, p Params) (int, error) {
	return b.Count(ctx, "seriesCount", p)
}

// Issues lists issues
func (b *base) Issues(ctx context.Context, p Params) (*Response, error) {
	return b.List(ctx, "issues", p)
}

// Issue fetches one issue by ID
func (b *base) Issue(ctx context.Context, id string) (*Response, error) {
	return b.Get(ctx, "issue", id)
}

// IssueCount counts issues
func (b *base) IssueCount(ctx context.Context, p Params) (int, error) {
	return b.Count(ctx, "issueCount", p)
}

// Languages lists languages
func (b *base) Languages(ctx context.Context, p Params) (*Response, error) {
	return b.List(ctx, "languages", p)
}

// Language fetches one language by ID
func (b *base) Language(ctx context.Context, id string) (*Response, error) {
	return b.Get(ctx, "language", id)
}

// LanguageCount counts languages
func (b *base) LanguageCount(ctx context.Context, p Params) (int, error) {
	return b.Count(ctx, "languageCount", p)
}

// Prices lists prices
func (b *base) Prices(ctx context.Context, p Params) (*Response, error) {
	return b.List(ctx, "prices", p)
}

// Price fetches one price by ID
func (b *base) Price(ctx context.Context, id string) (*Response, error) {
	return b.Get(ctx, "price", id)
}

// PriceCount counts prices
func (b *base) PriceCount(ctx context.Context, p Params) (int, error) {
	return b.Count(ctx, "priceCount", p)
}

// Subjects lists subjects
func (b *base) Subjects(ctx context.Context, p Params) (*Response, error) {
	return b.List(ctx, "subjects", p)
}

// Subject fetches one subject by ID
func (b *base) Subject(ctx context.Context, id string) (*Response, error) {
	return b.Get(ctx, "subject", id)
}

// SubjectCount counts subjects
func (b *base) SubjectCount(ctx context.Context, p Params) (int, error) {
	return b.Count(ctx, "subjectCount", p)
}

// Funders lists funders
func (b *base) Funders(ctx context.Context, p Params) (*Response, error) {
	return b.List(ctx, "funders", p)
}

// Funder fetches one funder by ID
func (b *base) Funder(ctx context.Context, id string) (*Response, error) {
	return b.Get(ctx, "funder", id)
}

// FunderCount counts funders
func (b *base) FunderCount(ctx context.Context, p Params) (int, error) {
	return b.Count(ctx, "funderCount", p)
}

// Institutions lists institutions
func (b *base) Institutions(ctx context.Context, p Params) (*Response, error) {
	return b.List(ctx, "institutions", p)
}

// Institution fetches one institution by ID
func (b *base) Institution(ctx context.Context, id string) (*Response, error) {
	return b.Get(ctx, "institution", id)
}

// InstitutionCount counts institutions
func (b *base) InstitutionCount(ctx context.Context, p Params) (int, error) {
	return b.Count(ctx, "institutionCount", p)
}

// Fundings lists fundings
func (b *base) Fundings(ctx context.Context, p Params) (*Response, error) {
	return b.List(ctx, "fundings", p)
}

// Funding fetches one funding by ID
func (b *base) Funding(ctx context.Context, id string) (*Response, error) {
	return b.Get(ctx, "funding", id)
}

// FundingCount counts fundings
func (b *base) FundingCount(ctx context.Context, p Params) (int, error) {
	return b.Count(ctx, "fundingCount", p)
}

// Locations lists locations
func (b *base) Locations(ctx context.Context, p Params) (*Response, error) {
	return b.List(ctx, "locations", p)
}

// Location fetches one location by ID
func (b *base) Location(ctx context.Context, id string) (*Response, error) {
	return b.Get(ctx, "location", id)
}

// LocationCount counts locations
func (b *base) LocationCount(ctx context.Context, p Params) (int, error) {
	return b.Count(ctx, "locationCount", p)
}

// References lists references
func (b *base) References(ctx context.Context, p Params) (*Response, error) {
	return b.List(ctx, "references", p)
}

// Reference fetches one reference by ID
func (b *base) Reference(ctx context.Context, id string) (*Response, error) {
	return b.Get(ctx, "reference", id)
}

// ReferenceCount counts references
func (b *base) ReferenceCount(ctx context.Context, p Params) (int, error) {
	return b.Count(ctx, "referenceCount", p)
}
