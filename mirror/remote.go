package mirror

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/s0up4200/thoth/thoth"
)

// RemoteWork is a work as listed by Thoth, with the record it was decoded from
type RemoteWork struct {
	thoth.Work
	Raw json.RawMessage
}

// Remote is the part of a Thoth instance a sync pass reads
type Remote interface {
	Publisher(ctx context.Context, id string) (*thoth.Publisher, error)
	Works(ctx context.Context, publisherID string, limit int) ([]RemoteWork, error)
}

// RemoteFactory opens the remote for a target
type RemoteFactory func(t Target) (Remote, error)

type apiRemote struct {
	api thoth.API
}

// NewRemote reads from a bound Thoth API
func NewRemote(api thoth.API) Remote {
	return &apiRemote{api: api}
}

// ClientFactory opens a thoth.Client per target using the target's endpoint
// and version.
func ClientFactory(logger zerolog.Logger, opts ...thoth.Option) RemoteFactory {
	return func(t Target) (Remote, error) {
		options := opts
		if t.Version != "" {
			options = append([]thoth.Option{thoth.WithVersion(t.Version)}, opts...)
		}
		client, err := thoth.NewClient(t.Endpoint, logger, options...)
		if err != nil {
			return nil, err
		}
		return NewRemote(client), nil
	}
}

func (r *apiRemote) Publisher(ctx context.Context, id string) (*thoth.Publisher, error) {
	return thoth.FetchPublisher(ctx, r.api, id)
}

func (r *apiRemote) Works(ctx context.Context, publisherID string, limit int) ([]RemoteWork, error) {
	res, err := r.api.Works(ctx, thoth.Params{Limit: limit, Publishers: []string{publisherID}})
	if err != nil {
		return nil, err
	}

	var raws []json.RawMessage
	if err := res.Decode(&raws); err != nil {
		return nil, err
	}
	works := make([]RemoteWork, 0, len(raws))
	for i, raw := range raws {
		var w thoth.Work
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, fmt.Errorf("failed to decode works[%d]: %w", i, err)
		}
		works = append(works, RemoteWork{Work: w, Raw: raw})
	}
	return works, nil
}
