package query

// Source identifies where a result came from.
type Source uint8

const (
	// SourceNone marks results that failed before any source was consulted.
	SourceNone Source = iota
	// SourceCache marks results served from the cache.
	SourceCache
	// SourceNetwork marks results fetched from the network.
	SourceNetwork
)

// String returns the source name.
func (s Source) String() string {
	switch s {
	case SourceCache:
		return "cache"
	case SourceNetwork:
		return "network"
	default:
		return "none"
	}
}

// Result is one delivery of a query.
// Exactly one of Data and Err is meaningful: Err is nil on success.
type Result struct {
	Source Source
	Data   []byte
	Err    error
}

// Callback receives query results. It is invoked once per result, in order.
type Callback func(Result)
