package thoth

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"github.com/s0up4200/thoth/graphql"
	"github.com/s0up4200/thoth/structure"
)

// base implements API for any schema. Version types embed it.
type base struct {
	schema  *schema
	exec    *graphql.Executor
	builder *structure.Builder
	logger  zerolog.Logger
}

func newBase(s *schema, exec *graphql.Executor, logger zerolog.Logger) *base {
	return &base{
		schema:  s,
		exec:    exec,
		builder: s.builder(),
		logger:  logger.With().Str("api_version", s.version).Logger(),
	}
}

// Version returns the bound API version
func (b *base) Version() string {
	return b.schema.version
}

// Builder returns the record builder holding this version's formatters
func (b *base) Builder() *structure.Builder {
	return b.builder
}

// Queries returns the names of every query operation this version binds
func (b *base) Queries() []string {
	return slices.Sorted(maps.Keys(b.schema.queries))
}

// Mutations returns the names of every mutation this version binds
func (b *base) Mutations() []string {
	return slices.Sorted(maps.Keys(b.schema.mutations))
}

// Query returns the declaration of a query operation
func (b *base) Query(operation string) (QuerySpec, bool) {
	spec, ok := b.schema.queries[operation]
	return spec, ok
}

// Mutation returns the declaration of a mutation
func (b *base) Mutation(name string) (graphql.MutationSpec, bool) {
	spec, ok := b.schema.mutations[name]
	return spec, ok
}

func (b *base) unsupported(operation string) error {
	return &OperationError{Version: b.schema.version, Operation: operation, Err: ErrUnsupportedOperation}
}

// request builds a query for operation, rejecting parameters it does not declare
func (b *base) request(operation string, p Params) (*graphql.Request, error) {
	spec, ok := b.schema.queries[operation]
	if !ok {
		return nil, b.unsupported(operation)
	}

	args, err := p.arguments()
	if err != nil {
		return nil, err
	}
	for _, arg := range args {
		if !spec.Accepts(arg.Name) {
			return nil, &OperationError{
				Version:   b.schema.version,
				Operation: operation,
				Parameter: arg.Name,
				Err:       ErrUnsupportedParameter,
			}
		}
	}

	req := graphql.NewQuery(operation, spec.Fields...)
	req.Args = args
	return req, nil
}

func (b *base) do(ctx context.Context, req *graphql.Request) (*Response, error) {
	res, err := b.exec.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	return &Response{Result: res, builder: b.builder}, nil
}

// List runs a list operation such as "works"
func (b *base) List(ctx context.Context, operation string, p Params) (*Response, error) {
	req, err := b.request(operation, p)
	if err != nil {
		return nil, err
	}
	res, err := b.do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", operation, err)
	}
	return res, nil
}

// Get fetches a single entity by its ID. operation is the singular name such
// as "work".
func (b *base) Get(ctx context.Context, operation, id string) (*Response, error) {
	e, ok := LookupEntity(operation)
	if !ok || e.Name != operation {
		return nil, b.unsupported(operation)
	}
	spec, ok := b.schema.queries[operation]
	if !ok {
		return nil, b.unsupported(operation)
	}
	if err := ValidateID(id); err != nil {
		return nil, err
	}

	req := graphql.NewQuery(operation, spec.Fields...).Arg(e.IDArg, graphql.String(id))
	return b.single(ctx, req, id)
}

// WorkByDOI fetches a work by its DOI URL
func (b *base) WorkByDOI(ctx context.Context, doi string) (*Response, error) {
	spec, ok := b.schema.queries["workByDoi"]
	if !ok {
		return nil, b.unsupported("workByDoi")
	}
	doi = strings.TrimSpace(doi)
	if doi == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidDOI)
	}
	req := graphql.NewQuery("workByDoi", spec.Fields...).Arg("doi", graphql.String(doi))
	return b.single(ctx, req, doi)
}

func (b *base) single(ctx context.Context, req *graphql.Request, key string) (*Response, error) {
	res, err := b.do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s %s: %w", req.Operation, key, err)
	}
	if res.IsNull() {
		return nil, fmt.Errorf("%s %s: %w", req.Operation, key, ErrNotFound)
	}
	return res, nil
}

// Count runs a count operation such as "workCount"
func (b *base) Count(ctx context.Context, operation string, p Params) (int, error) {
	res, err := b.CountResponse(ctx, operation, p)
	if err != nil {
		return 0, err
	}
	n, err := res.Int()
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", operation, err)
	}
	return n, nil
}

// CountResponse is Count but keeps the raw response
func (b *base) CountResponse(ctx context.Context, operation string, p Params) (*Response, error) {
	req, err := b.request(operation, p)
	if err != nil {
		return nil, err
	}
	req.Fields = nil
	if b.schema.countFilterRequired[operation] && p.Filter == "" {
		// the server rejects these counts without a filter argument
		req.Args = append([]graphql.Argument{{Name: "filter", Value: graphql.Explicit(graphql.String(""))}}, req.Args...)
	}

	res, err := b.do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to count %s: %w", operation, err)
	}
	return res, nil
}

// Mutate runs a mutation and returns its declared return field
func (b *base) Mutate(ctx context.Context, name string, data map[string]any) (string, error) {
	spec, ok := b.schema.mutations[name]
	if !ok {
		return "", b.unsupported(name)
	}
	req, err := graphql.BuildMutation(spec, data)
	if err != nil {
		return "", err
	}

	res, err := b.exec.Do(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to run %s: %w", name, err)
	}
	id, err := res.Field(spec.Returns)
	if err != nil {
		return "", err
	}

	b.logger.Info().Str("mutation", name).Str(spec.Returns, id).Msg("Mutation applied")
	return id, nil
}

// Supports reports whether operation is bound, as a query or a mutation
func (b *base) Supports(operation string) bool {
	_, q := b.schema.queries[operation]
	_, m := b.schema.mutations[operation]
	return q || m
}

// IsUnsupported reports whether err came from an unbound operation or parameter
func IsUnsupported(err error) bool {
	return errors.Is(err, ErrUnsupportedOperation) || errors.Is(err, ErrUnsupportedParameter)
}
