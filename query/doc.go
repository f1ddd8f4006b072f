// Package query builds Parse queries and executes them under a cache policy.
//
// A Query names a class and carries constraints, ordering, field selection and
// paging. Its CachePolicy decides whether results come from the network, the
// result cache, or both:
//
//	q := query.New("GameScore",
//	    query.WithConstraint("playerName", "Sean Plott"),
//	    query.WithOrder("-score"),
//	    query.WithCachePolicy(query.CacheElseNetwork),
//	    query.WithMaxCacheAge(time.Hour),
//	)
//	data, err := executor.Find(ctx, q)
//
// Every policy delivers exactly one result except CacheThenNetwork, which
// delivers the cached result followed by the network result. Because of this
// it is rejected by Find and must be run with Stream or FindInBackground:
//
//	for r := range executor.Stream(ctx, q) {
//	    if r.Err != nil {
//	        continue
//	    }
//	    render(r.Data)
//	}
//
// Failures carry codes from the errors package. Cache misses are reported as
// errors.CodeCacheMiss, and NetworkElseCache only falls back to the cache when
// the network failure is retryable.
package query
