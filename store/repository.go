package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// upsert finds the row keyed by (thoth_id, thoth_instance) or creates it,
// then applies attrs.
func upsert[T any](ctx context.Context, db *gorm.DB, row *T, thothID, instance string, attrs map[string]any) error {
	err := db.WithContext(ctx).
		Where("thoth_id = ? AND thoth_instance = ?", thothID, instance).
		Attrs(map[string]any{"thoth_id": thothID, "thoth_instance": instance}).
		Assign(attrs).
		FirstOrCreate(row).Error
	if err != nil {
		return fmt.Errorf("failed to upsert %T %s: %w", row, thothID, err)
	}
	return nil
}

// UpsertPublisher stores a publisher and returns its row
func (s *Store) UpsertPublisher(ctx context.Context, instance, thothID, name string) (*Publisher, error) {
	var row Publisher
	if err := upsert(ctx, s.db, &row, thothID, instance, map[string]any{
		"publisher_name": name,
	}); err != nil {
		return nil, err
	}
	return &row, nil
}

// WorkInput carries the remote fields a work row is built from
type WorkInput struct {
	ThothID       string
	WorkType      string
	FullTitle     string
	DOI           string
	CoverURL      string
	CoverCaption  string
	LandingPage   string
	License       string
	LongAbstract  string
	ShortAbstract string
	PublishedDate string
	Raw           []byte
}

// UpsertWork stores a work under publisher. License, abstracts and the
// published date keep their stored values when the remote ones are empty.
func (s *Store) UpsertWork(ctx context.Context, publisher *Publisher, in WorkInput) (*Work, error) {
	attrs := map[string]any{
		"work_type":     in.WorkType,
		"full_title":    in.FullTitle,
		"doi":           in.DOI,
		"cover_url":     in.CoverURL,
		"cover_caption": in.CoverCaption,
		"landing_page":  in.LandingPage,
		"publisher_id":  publisher.ID,
	}
	optional := map[string]string{
		"license":        in.License,
		"long_abstract":  in.LongAbstract,
		"short_abstract": in.ShortAbstract,
		"published_date": in.PublishedDate,
	}
	for column, value := range optional {
		if value != "" {
			attrs[column] = value
		}
	}
	if len(in.Raw) > 0 {
		attrs["raw"] = datatypes.JSON(in.Raw)
	}

	var row Work
	if err := upsert(ctx, s.db, &row, in.ThothID, publisher.ThothInstance, attrs); err != nil {
		return nil, err
	}
	row.Publisher = publisher
	return &row, nil
}

// UpsertContributor stores a contributor
func (s *Store) UpsertContributor(ctx context.Context, instance string, c Contributor) (*Contributor, error) {
	var row Contributor
	if err := upsert(ctx, s.db, &row, c.ThothID, instance, map[string]any{
		"first_name": c.FirstName,
		"last_name":  c.LastName,
		"full_name":  c.FullName,
		"orcid":      c.ORCID,
	}); err != nil {
		return nil, err
	}
	return &row, nil
}

// UpsertContribution stores a contribution linking work and contributor
func (s *Store) UpsertContribution(ctx context.Context, work *Work, contributor *Contributor, c Contribution) (*Contribution, error) {
	attrs := map[string]any{
		"institution":          c.Institution,
		"contribution_ordinal": c.ContributionOrdinal,
		"contribution_type":    c.ContributionType,
		"work_id":              work.ID,
	}
	if contributor != nil {
		attrs["contributor_id"] = contributor.ID
	}

	var row Contribution
	if err := upsert(ctx, s.db, &row, c.ThothID, work.ThothInstance, attrs); err != nil {
		return nil, err
	}
	return &row, nil
}

// UpsertSubject stores a subject of work and links it to the BIC, BISAC or
// Thema heading with the same code, if installed. Links that no longer match
// are cleared.
func (s *Store) UpsertSubject(ctx context.Context, work *Work, sub Subject) (*Subject, error) {
	attrs := map[string]any{
		"subject_type":    sub.SubjectType,
		"subject_code":    sub.SubjectCode,
		"subject_ordinal": sub.SubjectOrdinal,
		"work_id":         work.ID,
		"bic_id":          nil,
		"bisac_id":        nil,
		"thema_id":        nil,
	}

	var err error
	switch sub.SubjectType {
	case "BIC":
		err = s.link(ctx, &BIC{}, sub.SubjectCode, "bic_id", attrs)
	case "BISAC":
		err = s.link(ctx, &BISAC{}, sub.SubjectCode, "bisac_id", attrs)
	case "THEMA":
		err = s.link(ctx, &Thema{}, sub.SubjectCode, "thema_id", attrs)
	}
	if err != nil {
		return nil, err
	}

	var row Subject
	if err := upsert(ctx, s.db, &row, sub.ThothID, work.ThothInstance, attrs); err != nil {
		return nil, err
	}
	return &row, nil
}

// link sets attrs[column] to the ID of the heading with code, if any
func (s *Store) link(ctx context.Context, heading any, code, column string, attrs map[string]any) error {
	var id uint
	err := s.db.WithContext(ctx).Model(heading).Select("id").Where("code = ?", code).Limit(1).Scan(&id).Error
	if err != nil {
		return fmt.Errorf("failed to look up %s %s: %w", column, code, err)
	}
	if id != 0 {
		attrs[column] = id
	}
	return nil
}

// Publisher returns the publisher row for (thothID, instance)
func (s *Store) Publisher(ctx context.Context, instance, thothID string) (*Publisher, error) {
	var row Publisher
	err := s.db.WithContext(ctx).
		Where("thoth_id = ? AND thoth_instance = ?", thothID, instance).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("publisher %s: %w", thothID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Work returns a work row with its publisher, contributions and subjects
func (s *Store) Work(ctx context.Context, instance, thothID string) (*Work, error) {
	var row Work
	err := s.db.WithContext(ctx).
		Preload("Publisher").
		Preload("Contributions.Contributor").
		Preload("Subjects.BIC").
		Preload("Subjects.BISAC").
		Preload("Subjects.Thema").
		Where("thoth_id = ? AND thoth_instance = ?", thothID, instance).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("work %s: %w", thothID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// WorksByPublisher returns every work row of a publisher
func (s *Store) WorksByPublisher(ctx context.Context, publisher *Publisher) ([]Work, error) {
	var works []Work
	err := s.db.WithContext(ctx).
		Preload("Publisher").
		Where("publisher_id = ? AND thoth_instance = ?", publisher.ID, publisher.ThothInstance).
		Order("id").
		Find(&works).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list works of %s: %w", publisher.ThothID, err)
	}
	return works, nil
}

// DeleteWork removes a work with its contributions and subjects
func (s *Store) DeleteWork(ctx context.Context, work *Work) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("work_id = ?", work.ID).Delete(&Subject{}).Error; err != nil {
			return err
		}
		if err := tx.Where("work_id = ?", work.ID).Delete(&Contribution{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Work{}, work.ID).Error
	})
}

// Counts reports the number of rows per table
func (s *Store) Counts(ctx context.Context) (map[string]int64, error) {
	counts := map[string]int64{}
	for name, model := range map[string]any{
		"publishers":    &Publisher{},
		"works":         &Work{},
		"contributors":  &Contributor{},
		"contributions": &Contribution{},
		"subjects":      &Subject{},
		"bic":           &BIC{},
		"bisac":         &BISAC{},
		"thema":         &Thema{},
	} {
		var n int64
		if err := s.db.WithContext(ctx).Model(model).Count(&n).Error; err != nil {
			return nil, err
		}
		counts[name] = n
	}
	return counts, nil
}
