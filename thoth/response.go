package thoth

import (
	"github.com/s0up4200/thoth/graphql"
	"github.com/s0up4200/thoth/structure"
)

// Response is the outcome of a query. Raw keeps the server's body verbatim;
// Records and Record build formatted views over the operation's data.
type Response struct {
	*graphql.Result
	builder *structure.Builder
}

// Records returns the operation's data as a list of records
func (r *Response) Records() ([]*structure.Record, error) {
	return r.builder.Records(r.Operation, r.Data)
}

// Record returns the operation's data as a single record, nil for null
func (r *Response) Record() (*structure.Record, error) {
	return r.builder.Record(r.Operation, r.Data)
}

// Structured returns a *structure.Record, a []*structure.Record or nil
func (r *Response) Structured() (any, error) {
	return r.builder.Build(r.Operation, r.Data)
}
