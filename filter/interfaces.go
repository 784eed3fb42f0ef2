package filter

import (
	"context"

	"github.com/s0up4200/thoth/structure"
)

// Filter decides whether a record is kept
type Filter interface {
	// Evaluate reports whether the record matches. Records the expression
	// cannot be evaluated against do not match.
	Evaluate(r *structure.Record) bool
}

// CompiledFilter is a pre-compiled expression ready for evaluation
type CompiledFilter interface {
	Filter

	// Match is Evaluate with the evaluation error surfaced
	Match(r *structure.Record) (bool, error)

	// Expression returns the source expression
	Expression() string
}

// Compiler compiles expressions into filters
type Compiler interface {
	Compile(expression string) (CompiledFilter, error)
}

// CachingCompiler keeps compiled filters for reuse
type CachingCompiler interface {
	Compiler

	// Clear removes all cached filters
	Clear()

	// Size returns the number of cached filters
	Size() int
}

// Evaluator selects the records matching a filter
type Evaluator interface {
	Select(ctx context.Context, filter Filter, records []*structure.Record) ([]*structure.Record, error)
}
