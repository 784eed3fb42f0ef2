package mirror

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/s0up4200/thoth/store"
	"github.com/s0up4200/thoth/thoth"
	"golang.org/x/sync/errgroup"
)

// DefaultLimit is the number of works fetched per publisher. Thoth has no
// reliable way to count a publisher's works ahead of paging.
const DefaultLimit = 9999

// Target is one publisher on one Thoth instance
type Target struct {
	Publisher string
	Endpoint  string
	Version   string
}

// Result summarises one target's sync pass
type Result struct {
	Target    Target
	Publisher string
	Synced    int
	Verified  int
	Deleted   int
}

// Syncer copies publishers and their works into the local store
type Syncer struct {
	store       *store.Store
	remote      RemoteFactory
	concurrency int
	limit       int
	logger      zerolog.Logger
}

// Option configures a Syncer
type Option func(*Syncer)

// WithConcurrency sets how many targets sync at once
func WithConcurrency(n int) Option {
	return func(s *Syncer) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithLimit sets the number of works fetched per publisher
func WithLimit(n int) Option {
	return func(s *Syncer) {
		if n > 0 {
			s.limit = n
		}
	}
}

// NewSyncer creates a syncer writing to st
func NewSyncer(st *store.Store, remote RemoteFactory, logger zerolog.Logger, opts ...Option) *Syncer {
	s := &Syncer{
		store:       st,
		remote:      remote,
		concurrency: 1,
		limit:       DefaultLimit,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run syncs every target and stops at the first failure
func (s *Syncer) Run(ctx context.Context, targets []Target) ([]Result, error) {
	results := make([]Result, len(targets))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, target := range targets {
		g.Go(func() error {
			res, err := s.Sync(ctx, target)
			if err != nil {
				return fmt.Errorf("sync %s on %s: %w", target.Publisher, target.Endpoint, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Sync runs one pass for target. Local works missing from the remote
// listing are deleted only after every remote work has been stored.
func (s *Syncer) Sync(ctx context.Context, target Target) (Result, error) {
	result := Result{Target: target}
	if target.Endpoint == "" {
		target.Endpoint = thoth.DefaultEndpoint
	}
	target.Endpoint = strings.TrimRight(target.Endpoint, "/")
	if err := thoth.ValidateID(target.Publisher); err != nil {
		return result, err
	}

	remote, err := s.remote(target)
	if err != nil {
		return result, err
	}

	publisher, err := remote.Publisher(ctx, target.Publisher)
	if err != nil {
		return result, fmt.Errorf("failed to fetch publisher: %w", err)
	}
	result.Publisher = publisher.PublisherName

	s.logger.Info().Msgf("Fetching works for publisher %s [%s]", target.Publisher, publisher.PublisherName)

	local, err := s.store.UpsertPublisher(ctx, target.Endpoint, publisher.PublisherID, publisher.PublisherName)
	if err != nil {
		return result, err
	}

	works, err := remote.Works(ctx, publisher.PublisherID, s.limit)
	if err != nil {
		return result, fmt.Errorf("failed to fetch works: %w", err)
	}

	for _, w := range works {
		if err := s.syncWork(ctx, local, w); err != nil {
			return result, err
		}
		result.Synced++
	}

	verified, deleted, err := s.verify(ctx, remote, local)
	result.Verified, result.Deleted = verified, deleted
	if err != nil {
		return result, err
	}

	s.logger.Info().
		Str("publisher", publisher.PublisherName).
		Int("synced", result.Synced).
		Int("deleted", result.Deleted).
		Msg("Sync complete")
	return result, nil
}

func (s *Syncer) syncWork(ctx context.Context, publisher *store.Publisher, w RemoteWork) error {
	work, err := s.store.UpsertWork(ctx, publisher, store.WorkInput{
		ThothID:       w.WorkID,
		WorkType:      w.WorkType,
		FullTitle:     w.FullTitle,
		DOI:           w.DOI,
		CoverURL:      w.CoverURL,
		CoverCaption:  w.CoverCaption,
		LandingPage:   w.LandingPage,
		License:       w.License,
		LongAbstract:  w.LongAbstract,
		ShortAbstract: w.ShortAbstract,
		PublishedDate: w.PublicationDate,
		Raw:           w.Raw,
	})
	if err != nil {
		return err
	}

	for _, c := range w.Contributions {
		var contributor *store.Contributor
		if c.Contributor != nil {
			contributor, err = s.store.UpsertContributor(ctx, publisher.ThothInstance, store.Contributor{
				ThothID:   c.Contributor.ContributorID,
				FirstName: c.Contributor.FirstName,
				LastName:  c.Contributor.LastName,
				FullName:  c.Contributor.FullName,
				ORCID:     c.Contributor.ORCID,
			})
			if err != nil {
				return err
			}
		}

		_, err = s.store.UpsertContribution(ctx, work, contributor, store.Contribution{
			ThothID:             c.ContributionID,
			Institution:         c.InstitutionName(),
			ContributionOrdinal: c.ContributionOrdinal,
			ContributionType:    c.ContributionType,
		})
		if err != nil {
			return err
		}
	}

	for _, sub := range w.Subjects {
		_, err := s.store.UpsertSubject(ctx, work, store.Subject{
			ThothID:        sub.SubjectID,
			SubjectType:    sub.SubjectType,
			SubjectCode:    sub.SubjectCode,
			SubjectOrdinal: sub.SubjectOrdinal,
		})
		if err != nil {
			return err
		}
	}

	s.logger.Debug().Str("work", w.WorkID).Msg("Work synced")
	return nil
}

// verify re-reads the remote listing and deletes local works it lacks
func (s *Syncer) verify(ctx context.Context, remote Remote, publisher *store.Publisher) (int, int, error) {
	works, err := remote.Works(ctx, publisher.ThothID, s.limit)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to re-fetch works: %w", err)
	}
	present := make(map[string]struct{}, len(works))
	for _, w := range works {
		present[w.WorkID] = struct{}{}
	}

	local, err := s.store.WorksByPublisher(ctx, publisher)
	if err != nil {
		return 0, 0, err
	}

	verified, deleted := 0, 0
	for i := range local {
		work := &local[i]
		if _, ok := present[work.ThothID]; ok {
			s.logger.Info().Msgf("[Verified] %s exists in Thoth", work)
			verified++
			continue
		}

		s.logger.Warn().Msgf("[Unverified] Could not find %s in Thoth. Deleting.", work)
		if err := s.store.DeleteWork(ctx, work); err != nil {
			return verified, deleted, fmt.Errorf("failed to delete work %s: %w", work.ThothID, err)
		}
		deleted++
	}
	return verified, deleted, nil
}
