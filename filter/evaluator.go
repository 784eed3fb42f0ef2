package filter

import (
	"context"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/thoth/structure"
)

// EvaluatorOption configures an evaluator
type EvaluatorOption func(*ConcurrentEvaluator)

// WithWorkers sets the number of worker goroutines
func WithWorkers(workers int) EvaluatorOption {
	return func(e *ConcurrentEvaluator) {
		if workers > 0 {
			e.workerCount = workers
		}
	}
}

// WithBatchSize sets the chunk size below which evaluation stays sequential
func WithBatchSize(size int) EvaluatorOption {
	return func(e *ConcurrentEvaluator) {
		if size > 0 {
			e.batchSize = size
		}
	}
}

// ConcurrentEvaluator evaluates a filter over records in chunks. Matches
// keep the input order.
type ConcurrentEvaluator struct {
	workerCount int
	batchSize   int
}

var _ Evaluator = (*ConcurrentEvaluator)(nil)

// NewConcurrentEvaluator creates a new concurrent evaluator
func NewConcurrentEvaluator(opts ...EvaluatorOption) *ConcurrentEvaluator {
	e := &ConcurrentEvaluator{
		workerCount: runtime.GOMAXPROCS(0),
		batchSize:   100,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Select returns the records matching filter
func (e *ConcurrentEvaluator) Select(ctx context.Context, filter Filter, records []*structure.Record) ([]*structure.Record, error) {
	if len(records) == 0 {
		return []*structure.Record{}, nil
	}
	if len(records) < e.batchSize {
		return selectSequential(filter, records), nil
	}

	chunkSize := max(len(records)/e.workerCount, e.batchSize)
	chunks := slices.Collect(slices.Chunk(records, chunkSize))
	results := make([][]*structure.Record, len(chunks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workerCount)
	for i, chunk := range chunks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = selectSequential(filter, chunk)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return slices.Concat(results...), nil
}

func selectSequential(filter Filter, records []*structure.Record) []*structure.Record {
	matches := make([]*structure.Record, 0, len(records))
	for _, r := range records {
		if filter.Evaluate(r) {
			matches = append(matches, r)
		}
	}
	return matches
}

var applyCompiler = NewExprCompiler(WithCache(64))

// Apply compiles expression and returns the matching records. An empty
// expression keeps every record.
func Apply(ctx context.Context, expression string, records []*structure.Record) ([]*structure.Record, error) {
	if expression == "" {
		return records, nil
	}
	f, err := applyCompiler.Compile(expression)
	if err != nil {
		return nil, err
	}
	return NewConcurrentEvaluator().Select(ctx, f, records)
}
