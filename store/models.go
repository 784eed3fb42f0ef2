package store

import (
	"fmt"
	"time"

	"github.com/s0up4200/thoth/structure"
	"gorm.io/datatypes"
)

// DefaultInstance is the Thoth instance rows belong to unless stated
const DefaultInstance = "https://api.thoth.pub"

// Publisher mirrors a remote publisher
type Publisher struct {
	ID            uint   `gorm:"primaryKey"`
	ThothID       string `gorm:"size:36;not null;uniqueIndex:idx_publisher_thoth,priority:1"`
	ThothInstance string `gorm:"size:255;not null;uniqueIndex:idx_publisher_thoth,priority:2"`
	PublisherName string `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (p Publisher) String() string {
	return p.PublisherName
}

// BIC is a BIC subject heading
type BIC struct {
	ID      uint   `gorm:"primaryKey"`
	Code    string `gorm:"size:20;not null;uniqueIndex"`
	Heading string `gorm:"size:255"`
}

// TableName keeps the table name readable
func (BIC) TableName() string { return "bic" }

// BISAC is a BISAC subject heading
type BISAC struct {
	ID      uint   `gorm:"primaryKey"`
	Code    string `gorm:"size:20;not null;uniqueIndex"`
	Heading string `gorm:"size:255"`
}

// TableName keeps the table name readable
func (BISAC) TableName() string { return "bisac" }

// Thema is a Thema subject heading
type Thema struct {
	ID      uint   `gorm:"primaryKey"`
	Code    string `gorm:"size:20;not null;uniqueIndex"`
	Heading string `gorm:"size:255"`
}

// TableName keeps the table name readable
func (Thema) TableName() string { return "thema" }

// Work mirrors a remote work
type Work struct {
	ID            uint   `gorm:"primaryKey"`
	ThothID       string `gorm:"size:36;not null;uniqueIndex:idx_work_thoth,priority:1"`
	ThothInstance string `gorm:"size:255;not null;uniqueIndex:idx_work_thoth,priority:2"`
	WorkType      string `gorm:"size:255"`
	FullTitle     string `gorm:"type:text"`
	DOI           string `gorm:"column:doi;size:255"`
	CoverURL      string `gorm:"size:255"`
	CoverCaption  string `gorm:"type:text"`
	LandingPage   string `gorm:"size:255"`
	LongAbstract  string `gorm:"type:text;not null;default:''"`
	ShortAbstract string `gorm:"type:text;not null;default:''"`
	License       string `gorm:"size:255;not null;default:''"`
	PublishedDate string `gorm:"size:255;not null;default:'n.d.'"`
	PublisherID   *uint  `gorm:"index"`
	Publisher     *Publisher
	// Raw is the remote record as last synced
	Raw           datatypes.JSON
	Contributions []Contribution
	Subjects      []Subject
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// String renders "fullTitle (publisher, year)"
func (w Work) String() string {
	publisher := ""
	if w.Publisher != nil {
		publisher = w.Publisher.PublisherName
	}
	date := w.PublishedDate
	if date != "" && date != "n.d." {
		date = structure.Year(date)
	}
	return fmt.Sprintf("%s (%s, %s)", w.FullTitle, publisher, date)
}

// ExportURL is the export API of the instance the work came from
func (w Work) ExportURL() string {
	return exportURL(w.ThothInstance)
}

// Contributor mirrors a remote contributor
type Contributor struct {
	ID            uint   `gorm:"primaryKey"`
	ThothID       string `gorm:"size:36;not null;uniqueIndex:idx_contributor_thoth,priority:1"`
	ThothInstance string `gorm:"size:255;not null;uniqueIndex:idx_contributor_thoth,priority:2"`
	FirstName     string `gorm:"type:text"`
	LastName      string `gorm:"type:text"`
	FullName      string `gorm:"type:text"`
	ORCID         string `gorm:"column:orcid;size:255"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (c Contributor) String() string {
	return c.FullName
}

// Contribution mirrors a contributor's role on a work
type Contribution struct {
	ID                  uint   `gorm:"primaryKey"`
	ThothID             string `gorm:"size:36;not null;uniqueIndex:idx_contribution_thoth,priority:1"`
	ThothInstance       string `gorm:"size:255;not null;uniqueIndex:idx_contribution_thoth,priority:2"`
	Institution         string `gorm:"type:text"`
	ContributionOrdinal int
	ContributionType    string `gorm:"size:255"`
	WorkID              *uint  `gorm:"index"`
	Work                *Work
	ContributorID       *uint `gorm:"index"`
	Contributor         *Contributor
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (c Contribution) String() string {
	if c.Contributor == nil || c.Work == nil {
		return "Contribution"
	}
	return fmt.Sprintf("%s as %s on %s", c.Contributor.FullName, c.ContributionType, c.Work)
}

// Subject mirrors a remote subject, linked to a classification heading
// when one with the same code is installed.
type Subject struct {
	ID             uint   `gorm:"primaryKey"`
	ThothID        string `gorm:"size:36;not null;uniqueIndex:idx_subject_thoth,priority:1"`
	ThothInstance  string `gorm:"size:255;not null;uniqueIndex:idx_subject_thoth,priority:2"`
	SubjectType    string `gorm:"size:255"`
	SubjectOrdinal int
	SubjectCode    string `gorm:"size:255"`
	WorkID         uint   `gorm:"index;not null"`
	Work           *Work
	BICID          *uint `gorm:"column:bic_id"`
	BIC            *BIC
	BISACID        *uint `gorm:"column:bisac_id"`
	BISAC          *BISAC
	ThemaID        *uint
	Thema          *Thema
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Display returns the linked heading, or the bare code
func (s Subject) Display() string {
	switch {
	case s.SubjectType == "BIC" && s.BIC != nil:
		return s.BIC.Heading
	case s.SubjectType == "THEMA" && s.Thema != nil:
		return s.Thema.Heading
	case s.SubjectType == "BISAC" && s.BISAC != nil:
		return s.BISAC.Heading
	default:
		return s.SubjectCode
	}
}

func models() []any {
	return []any{
		&Publisher{}, &BIC{}, &BISAC{}, &Thema{},
		&Work{}, &Contributor{}, &Contribution{}, &Subject{},
	}
}
