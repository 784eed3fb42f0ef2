package thoth

import (
	"context"
	"fmt"
	"slices"
)

// Publisher is the typed form of a publisher record
type Publisher struct {
	PublisherID        string `json:"publisherId"`
	PublisherName      string `json:"publisherName"`
	PublisherShortname string `json:"publisherShortname"`
	PublisherURL       string `json:"publisherUrl"`
}

// Contributor is the person behind one or more contributions
type Contributor struct {
	ContributorID string `json:"contributorId"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	FullName      string `json:"fullName"`
	ORCID         string `json:"orcid"`
	Website       string `json:"website"`
}

// Institution is a funding body or affiliation (0.6.0 and later)
type Institution struct {
	InstitutionID   string `json:"institutionId"`
	InstitutionName string `json:"institutionName"`
	ROR             string `json:"ror"`
}

// Affiliation links a contribution to an institution
type Affiliation struct {
	AffiliationID      string       `json:"affiliationId"`
	AffiliationOrdinal int          `json:"affiliationOrdinal"`
	Position           string       `json:"position"`
	Institution        *Institution `json:"institution"`
}

// Contribution is one contributor's role on a work
type Contribution struct {
	ContributionID      string        `json:"contributionId"`
	ContributionType    string        `json:"contributionType"`
	MainContribution    bool          `json:"mainContribution"`
	ContributionOrdinal int           `json:"contributionOrdinal"`
	Biography           string        `json:"biography"`
	FirstName           string        `json:"firstName"`
	LastName            string        `json:"lastName"`
	FullName            string        `json:"fullName"`
	Institution         string        `json:"institution"`
	Affiliations        []Affiliation `json:"affiliations"`
	Contributor         *Contributor  `json:"contributor"`
}

// InstitutionName returns the contributor's institution. Before 0.6.0 it is a
// free-text field; later it is the first affiliation by ordinal.
func (c Contribution) InstitutionName() string {
	if c.Institution != "" {
		return c.Institution
	}
	affiliations := slices.Clone(c.Affiliations)
	slices.SortFunc(affiliations, func(a, b Affiliation) int {
		return a.AffiliationOrdinal - b.AffiliationOrdinal
	})
	for _, a := range affiliations {
		if a.Institution != nil && a.Institution.InstitutionName != "" {
			return a.Institution.InstitutionName
		}
	}
	return ""
}

// Subject classifies a work under a scheme such as BIC, BISAC or THEMA
type Subject struct {
	SubjectID      string `json:"subjectId"`
	SubjectType    string `json:"subjectType"`
	SubjectCode    string `json:"subjectCode"`
	SubjectOrdinal int    `json:"subjectOrdinal"`
}

// Imprint is the typed form of a work's imprint
type Imprint struct {
	ImprintID   string     `json:"imprintId"`
	ImprintName string     `json:"imprintName"`
	Publisher   *Publisher `json:"publisher"`
}

// Work is the typed form of a work record
type Work struct {
	WorkID          string         `json:"workId"`
	WorkType        string         `json:"workType"`
	WorkStatus      string         `json:"workStatus"`
	FullTitle       string         `json:"fullTitle"`
	Title           string         `json:"title"`
	Subtitle        string         `json:"subtitle"`
	DOI             string         `json:"doi"`
	PublicationDate string         `json:"publicationDate"`
	Place           string         `json:"place"`
	PageCount       int            `json:"pageCount"`
	License         string         `json:"license"`
	LandingPage     string         `json:"landingPage"`
	ShortAbstract   string         `json:"shortAbstract"`
	LongAbstract    string         `json:"longAbstract"`
	CoverURL        string         `json:"coverUrl"`
	CoverCaption    string         `json:"coverCaption"`
	Imprint         *Imprint       `json:"imprint"`
	Contributions   []Contribution `json:"contributions"`
	Subjects        []Subject      `json:"subjects"`
}

// FetchPublisher loads a publisher as a typed value
func FetchPublisher(ctx context.Context, api API, id string) (*Publisher, error) {
	res, err := api.Publisher(ctx, id)
	if err != nil {
		return nil, err
	}
	var p Publisher
	if err := res.Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to decode publisher %s: %w", id, err)
	}
	return &p, nil
}
