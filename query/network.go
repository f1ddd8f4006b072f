package query

import "context"

// Network fetches query results from the server.
// Results are opaque to the executor; encoding and transport belong to the
// implementation. Errors may be plain errors or Parse errors; plain errors are
// classified before they reach the caller.
type Network interface {
	Find(ctx context.Context, q *Query) ([]byte, error)
}

// NetworkFunc adapts a function to the Network interface.
type NetworkFunc func(ctx context.Context, q *Query) ([]byte, error)

// Find calls f(ctx, q).
func (f NetworkFunc) Find(ctx context.Context, q *Query) ([]byte, error) {
	return f(ctx, q)
}
