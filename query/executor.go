package query

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jmgilman/go/parse/cache"
	parseerrors "github.com/jmgilman/go/parse/errors"
	"github.com/jmgilman/go/parse/logging"
)

// Executor runs queries against a network source and a result cache
// according to each query's cache policy.
type Executor struct {
	network        Network
	cache          *cache.Cache
	logger         *logging.Logger
	localDatastore bool
	flights        singleflight.Group
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithLogger sets the executor's logger.
func WithLogger(logger *logging.Logger) ExecutorOption {
	return func(e *Executor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLocalDatastore marks the local datastore as enabled.
// Cache policies cannot be combined with the local datastore, so every query
// must then use IgnoreCache.
func WithLocalDatastore(enabled bool) ExecutorOption {
	return func(e *Executor) {
		e.localDatastore = enabled
	}
}

// NewExecutor creates an executor. A nil cache behaves as an always-empty
// cache that discards saves.
func NewExecutor(network Network, c *cache.Cache, opts ...ExecutorOption) (*Executor, error) {
	if network == nil {
		return nil, fmt.Errorf("network cannot be nil")
	}

	e := &Executor{
		network: network,
		cache:   c,
		logger:  logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Find runs q and returns its single result.
// Queries using CacheThenNetwork produce two results and are rejected with a
// CodeInvalidQuery error; use Stream or FindInBackground for them.
func (e *Executor) Find(ctx context.Context, q *Query) ([]byte, error) {
	key, err := e.prepare(q)
	if err != nil {
		return nil, err
	}
	if !q.CachePolicy.SupportsSingleResult() {
		return nil, parseerrors.Newf(parseerrors.CodeInvalidQuery,
			"cache policy %s delivers %d results and cannot be used with a single-result find",
			q.CachePolicy, q.CachePolicy.ResultCount())
	}

	var result Result
	e.run(ctx, q, key, func(r Result) { result = r })
	return result.Data, result.Err
}

// Stream runs q in the background and delivers each result on the returned
// channel, which is closed after the last delivery. A valid query delivers
// exactly q.CachePolicy.ResultCount() results; an invalid one delivers a
// single error.
func (e *Executor) Stream(ctx context.Context, q *Query) <-chan Result {
	key, err := e.prepare(q)
	if err != nil {
		ch := make(chan Result, 1)
		ch <- Result{Err: err}
		close(ch)
		return ch
	}

	ch := make(chan Result, q.CachePolicy.ResultCount())
	go func() {
		defer close(ch)
		e.run(ctx, q, key, func(r Result) { ch <- r })
	}()
	return ch
}

// FindInBackground runs q in the background and invokes callback once per
// result, in order, from a single goroutine. The returned channel is closed
// after the final callback returns.
func (e *Executor) FindInBackground(ctx context.Context, q *Query, callback Callback) <-chan struct{} {
	done := make(chan struct{})
	results := e.Stream(ctx, q)
	go func() {
		defer close(done)
		for r := range results {
			if callback != nil {
				callback(r)
			}
		}
	}()
	return done
}

// HasCachedResult reports whether a live cached result exists for q.
func (e *Executor) HasCachedResult(q *Query) bool {
	if e.cache == nil {
		return false
	}
	key, err := q.CacheKey()
	if err != nil {
		return false
	}
	return e.cache.Has(key)
}

// ClearCachedResult removes the cached result for q.
func (e *Executor) ClearCachedResult(ctx context.Context, q *Query) error {
	if e.cache == nil {
		return nil
	}
	key, err := q.CacheKey()
	if err != nil {
		return err
	}
	if err := e.cache.Delete(ctx, key); err != nil {
		return parseerrors.Wrap(err, parseerrors.CodeOtherCause, "failed to clear cached result")
	}
	return nil
}

// ClearAllCachedResults removes every cached result.
func (e *Executor) ClearAllCachedResults(ctx context.Context) error {
	if e.cache == nil {
		return nil
	}
	if err := e.cache.Clear(ctx); err != nil {
		return parseerrors.Wrap(err, parseerrors.CodeOtherCause, "failed to clear cached results")
	}
	return nil
}

// prepare validates q against the executor configuration and derives its cache key.
func (e *Executor) prepare(q *Query) (string, error) {
	if q == nil {
		return "", parseerrors.New(parseerrors.CodeInvalidQuery, "query cannot be nil")
	}
	if err := q.Validate(); err != nil {
		return "", err
	}
	if e.localDatastore && q.CachePolicy != IgnoreCache {
		return "", parseerrors.Newf(parseerrors.CodeOperationForbidden,
			"cache policy %s cannot be used while the local datastore is enabled", q.CachePolicy)
	}
	return q.CacheKey()
}

// run applies q's cache policy and hands each result to deliver.
func (e *Executor) run(ctx context.Context, q *Query, key string, deliver func(Result)) {
	logger := e.logger.With("class", q.ClassName, "policy", q.CachePolicy.String())
	start := time.Now()
	defer func() {
		logger.WithDuration(time.Since(start)).Debug(ctx, "query finished")
	}()

	switch q.CachePolicy {
	case IgnoreCache, NetworkOnly:
		deliver(e.fromNetwork(ctx, q, key))

	case CacheOnly:
		deliver(e.fromCache(ctx, q, key, nil))

	case CacheElseNetwork:
		if r := e.fromCache(ctx, q, key, nil); r.Err == nil {
			deliver(r)
			return
		}
		deliver(e.fromNetwork(ctx, q, key))

	case NetworkElseCache:
		r := e.fromNetwork(ctx, q, key)
		if r.Err != nil && parseerrors.IsRetryable(r.Err) {
			logger.Debug(ctx, "network failed, falling back to cache", "error", r.Err)
			r = e.fromCache(ctx, q, key, r.Err)
		}
		deliver(r)

	case CacheThenNetwork:
		deliver(e.fromCache(ctx, q, key, nil))
		deliver(e.fromNetwork(ctx, q, key))
	}
}

// fromCache serves q from the cache. Misses produce a CodeCacheMiss error
// wrapping cause when one is given.
func (e *Executor) fromCache(ctx context.Context, q *Query, key string, cause error) Result {
	if e.cache == nil {
		return Result{Source: SourceCache, Err: cacheMiss(q, cause)}
	}

	entry, err := e.cache.Get(ctx, key, q.MaxCacheAge)
	if err != nil {
		if !cache.IsMiss(err) {
			e.logger.Warn(ctx, "cache read failed", "class", q.ClassName, "error", err)
		}
		if cause == nil {
			cause = err
		}
		return Result{Source: SourceCache, Err: cacheMiss(q, cause)}
	}

	e.logger.Debug(ctx, "query served from cache", "class", q.ClassName, "age", entry.Age(time.Now()))
	return Result{Source: SourceCache, Data: entry.Data}
}

func cacheMiss(q *Query, cause error) error {
	var err parseerrors.Error
	if cause != nil {
		err = parseerrors.Wrap(cause, parseerrors.CodeCacheMiss, "results not found in the cache")
	} else {
		err = parseerrors.New(parseerrors.CodeCacheMiss, "results not found in the cache")
	}
	return parseerrors.WithContext(err, "class", q.ClassName)
}

// fromNetwork fetches q from the network. Concurrent fetches of the same
// results share one request.
func (e *Executor) fromNetwork(ctx context.Context, q *Query, key string) Result {
	save := q.CachePolicy.SavesToCache() && e.cache != nil
	flightKey := key
	if save {
		flightKey += "+save"
	}

	// The fetch is shared with every caller joining the flight, so it must
	// not stop when the caller that started it goes away.
	flightCtx := context.WithoutCancel(ctx)
	flight := e.flights.DoChan(flightKey, func() (any, error) {
		data, err := e.network.Find(flightCtx, q.Clone())
		if err != nil {
			return nil, parseerrors.Classify(err)
		}
		if save {
			if err := e.cache.Put(flightCtx, key, data); err != nil {
				e.logger.Warn(flightCtx, "failed to save query result to cache",
					"class", q.ClassName,
					"error", err)
			}
		}
		return data, nil
	})

	select {
	case <-ctx.Done():
		return Result{Source: SourceNetwork, Err: parseerrors.Classify(ctx.Err())}
	case res := <-flight:
		if res.Err != nil {
			return Result{Source: SourceNetwork, Err: res.Err}
		}
		data := res.Val.([]byte)
		if res.Shared {
			data = append([]byte(nil), data...)
		}
		return Result{Source: SourceNetwork, Data: data}
	}
}
