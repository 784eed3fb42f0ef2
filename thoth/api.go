package thoth

import (
	"context"

	"github.com/s0up4200/thoth/graphql"
	"github.com/s0up4200/thoth/structure"
)

// API is the operation surface of one bound Thoth API version. Operations a
// version lacks return an error wrapping ErrUnsupportedOperation.
type API interface {
	Version() string
	Builder() *structure.Builder
	Queries() []string
	Mutations() []string
	Query(operation string) (QuerySpec, bool)
	Mutation(name string) (graphql.MutationSpec, bool)
	Supports(operation string) bool

	List(ctx context.Context, operation string, p Params) (*Response, error)
	Get(ctx context.Context, operation, id string) (*Response, error)
	Count(ctx context.Context, operation string, p Params) (int, error)
	CountResponse(ctx context.Context, operation string, p Params) (*Response, error)
	WorkByDOI(ctx context.Context, doi string) (*Response, error)
	Mutate(ctx context.Context, name string, data map[string]any) (string, error)

	Works(ctx context.Context, p Params) (*Response, error)
	Work(ctx context.Context, id string) (*Response, error)
	WorkCount(ctx context.Context, p Params) (int, error)

	Publications(ctx context.Context, p Params) (*Response, error)
	Publication(ctx context.Context, id string) (*Response, error)
	PublicationCount(ctx context.Context, p Params) (int, error)

	Publishers(ctx context.Context, p Params) (*Response, error)
	Publisher(ctx context.Context, id string) (*Response, error)
	PublisherCount(ctx context.Context, p Params) (int, error)

	Imprints(ctx context.Context, p Params) (*Response, error)
	Imprint(ctx context.Context, id string) (*Response, error)
	ImprintCount(ctx context.Context, p Params) (int, error)

	Contributors(ctx context.Context, p Params) (*Response, error)
	Contributor(ctx context.Context, id string) (*Response, error)
	ContributorCount(ctx context.Context, p Params) (int, error)

	Contributions(ctx context.Context, p Params) (*Response, error)
	Contribution(ctx context.Context, id string) (*Response, error)
	ContributionCount(ctx context.Context, p Params) (int, error)

	Serieses(ctx context.Context, p Params) (*Response, error)
	Series(ctx context.Context, id string) (*Response, error)
	SeriesCount(ctx context.Context, p Params) (int, error)

	Issues(ctx context.Context, p Params) (*Response, error)
	Issue(ctx context.Context, id string) (*Response, error)
	IssueCount(ctx context.Context, p Params) (int, error)

	Languages(ctx context.Context, p Params) (*Response, error)
	Language(ctx context.Context, id string) (*Response, error)
	LanguageCount(ctx context.Context, p Params) (int, error)

	Prices(ctx context.Context, p Params) (*Response, error)
	Price(ctx context.Context, id string) (*Response, error)
	PriceCount(ctx context.Context, p Params) (int, error)

	Subjects(ctx context.Context, p Params) (*Response, error)
	Subject(ctx context.Context, id string) (*Response, error)
	SubjectCount(ctx context.Context, p Params) (int, error)

	Funders(ctx context.Context, p Params) (*Response, error)
	Funder(ctx context.Context, id string) (*Response, error)
	FunderCount(ctx context.Context, p Params) (int, error)

	Institutions(ctx context.Context, p Params) (*Response, error)
	Institution(ctx context.Context, id string) (*Response, error)
	InstitutionCount(ctx context.Context, p Params) (int, error)

	Fundings(ctx context.Context, p Params) (*Response, error)
	Funding(ctx context.Context, id string) (*Response, error)
	FundingCount(ctx context.Context, p Params) (int, error)

	Locations(ctx context.Context, p Params) (*Response, error)
	Location(ctx context.Context, id string) (*Response, error)
	LocationCount(ctx context.Context, p Params) (int, error)

	References(ctx context.Context, p Params) (*Response, error)
	Reference(ctx context.Context, id string) (*Response, error)
	ReferenceCount(ctx context.Context, p Params) (int, error)
}

var (
	_ API = (*Thoth042)(nil)
	_ API = (*Thoth050)(nil)
	_ API = (*Thoth060)(nil)
	_ API = (*Thoth080)(nil)
	_ API = (*Thoth084)(nil)
	_ API = (*Thoth090)(nil)
)
