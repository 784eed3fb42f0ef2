package thoth

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/s0up4200/thoth/graphql"
)

// Default list window used by the CLI
const (
	DefaultLimit  = 100
	DefaultOffset = 0
)

// Order sorts a list by field in direction (ASC or DESC)
type Order struct {
	Field     string
	Direction string
}

// Params holds the optional arguments of list and count operations. Zero
// values are omitted from the request so the server's defaults apply.
type Params struct {
	Limit            int
	Offset           int
	Filter           string
	Order            *Order
	Publishers       []string
	WorkType         string
	WorkStatus       string
	WorkTypes        []string
	WorkStatuses     []string
	PublicationType  string
	ContributionType string
	SeriesType       string
	LanguageCode     string
	LanguageRelation string
	CurrencyCode     string
	SubjectType      string
	LocationPlatform string
}

// arguments returns every non-zero parameter as a GraphQL argument in a
// fixed order.
func (p Params) arguments() ([]graphql.Argument, error) {
	for _, id := range p.Publishers {
		if err := ValidateID(id); err != nil {
			return nil, err
		}
	}

	var order graphql.Value
	if p.Order != nil && p.Order.Field != "" {
		direction := strings.ToUpper(p.Order.Direction)
		if direction == "" {
			direction = "ASC"
		}
		order = graphql.Object{
			{Name: "field", Value: graphql.Enum(p.Order.Field)},
			{Name: "direction", Value: graphql.Enum(direction)},
		}
	}

	all := []graphql.Argument{
		{Name: "limit", Value: graphql.Int(p.Limit)},
		{Name: "offset", Value: graphql.Int(p.Offset)},
		{Name: "filter", Value: graphql.String(p.Filter)},
		{Name: "order", Value: order},
		{Name: "publishers", Value: graphql.Strings(p.Publishers...)},
		{Name: "workType", Value: graphql.Enum(p.WorkType)},
		{Name: "workStatus", Value: graphql.Enum(p.WorkStatus)},
		{Name: "workTypes", Value: graphql.Enums(p.WorkTypes...)},
		{Name: "workStatuses", Value: graphql.Enums(p.WorkStatuses...)},
		{Name: "publicationType", Value: graphql.Enum(p.PublicationType)},
		{Name: "contributionType", Value: graphql.Enum(p.ContributionType)},
		{Name: "seriesType", Value: graphql.Enum(p.SeriesType)},
		{Name: "languageCode", Value: graphql.Enum(p.LanguageCode)},
		{Name: "languageRelation", Value: graphql.Enum(p.LanguageRelation)},
		{Name: "currencyCode", Value: graphql.Enum(p.CurrencyCode)},
		{Name: "subjectType", Value: graphql.Enum(p.SubjectType)},
		{Name: "locationPlatform", Value: graphql.Enum(p.LocationPlatform)},
	}

	args := make([]graphql.Argument, 0, len(all))
	for _, arg := range all {
		if arg.Value == nil || graphql.IsZero(arg.Value) {
			continue
		}
		args = append(args, arg)
	}
	return args, nil
}

// ValidateID checks that id is a UUID as used for every Thoth primary key
func ValidateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}
