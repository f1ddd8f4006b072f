package parse

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/jmgilman/go/parse/cache"
	parseerrors "github.com/jmgilman/go/parse/errors"
	"github.com/jmgilman/go/parse/logging"
	"github.com/jmgilman/go/parse/query"
)

// ErrClosed is returned by operations on a closed client.
var ErrClosed = errors.New("client is closed")

// Client runs Parse queries under the configured cache and logging settings.
// It is safe for concurrent use.
type Client struct {
	config   Config
	logger   *logging.Logger
	cache    *cache.Cache
	executor *query.Executor
	closed   atomic.Bool
}

type clientOptions struct {
	fs     billy.Filesystem
	logger *logging.Logger
}

// Option configures a Client.
type Option func(*clientOptions)

// WithFilesystem sets the filesystem that holds the persistent cache.
// Cache.Dir is interpreted relative to it. Defaults to the OS filesystem.
func WithFilesystem(fs billy.Filesystem) Option {
	return func(o *clientOptions) {
		o.fs = fs
	}
}

// WithLogger sets the logger used by the client and its cache.
// Defaults to a logger that follows the process-wide log level.
func WithLogger(logger *logging.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// New creates a client. It applies configuration defaults, validates the
// result, sets the process-wide log level and opens the result cache. The
// cache is persisted under cfg.Cache.Dir when set and kept in memory otherwise.
func New(ctx context.Context, cfg Config, network query.Network, opts ...Option) (*Client, error) {
	options := &clientOptions{}
	for _, opt := range opts {
		opt(options)
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	logging.SetLevel(cfg.LogLevel)

	logger := options.logger
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.With("application_id", cfg.ApplicationID)

	store, err := openStore(cfg.Cache, options.fs)
	if err != nil {
		return nil, err
	}
	c, err := cache.New(ctx, store, cfg.Cache.Config, cache.WithLogger(logger.WithOperation("cache")))
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}

	executor, err := query.NewExecutor(network, c,
		query.WithLogger(logger.WithOperation("query")),
		query.WithLocalDatastore(cfg.LocalDatastore),
	)
	if err != nil {
		return nil, err
	}

	logger.Debug(ctx, "client initialized",
		"server", cfg.Server,
		"version", Version,
		"cache_entries", c.Len())

	return &Client{
		config:   cfg,
		logger:   logger,
		cache:    c,
		executor: executor,
	}, nil
}

func openStore(cfg CacheConfig, fs billy.Filesystem) (cache.Store, error) {
	if cfg.Dir == "" {
		return cache.NewMemoryStore(), nil
	}

	root := cfg.Dir
	if fs == nil {
		fs = osfs.New(cfg.Dir)
		root = "."
	}
	store, err := cache.NewFileStore(fs, root)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache directory %s: %w", cfg.Dir, err)
	}
	return store, nil
}

// Query creates a query on className.
func (c *Client) Query(className string, opts ...query.Option) *query.Query {
	return query.New(className, opts...)
}

// Find runs q and returns its single result.
func (c *Client) Find(ctx context.Context, q *query.Query) ([]byte, error) {
	if c.closed.Load() {
		return nil, closedError()
	}
	return c.executor.Find(ctx, q)
}

// Stream runs q and delivers each of its results on the returned channel.
func (c *Client) Stream(ctx context.Context, q *query.Query) <-chan query.Result {
	if c.closed.Load() {
		ch := make(chan query.Result, 1)
		ch <- query.Result{Err: closedError()}
		close(ch)
		return ch
	}
	return c.executor.Stream(ctx, q)
}

// FindInBackground runs q and invokes callback once per result.
// The returned channel is closed after the final callback.
func (c *Client) FindInBackground(ctx context.Context, q *query.Query, callback query.Callback) <-chan struct{} {
	if c.closed.Load() {
		done := make(chan struct{})
		go func() {
			defer close(done)
			if callback != nil {
				callback(query.Result{Err: closedError()})
			}
		}()
		return done
	}
	return c.executor.FindInBackground(ctx, q, callback)
}

// HasCachedResult reports whether a cached result exists for q.
func (c *Client) HasCachedResult(q *query.Query) bool {
	return c.executor.HasCachedResult(q)
}

// ClearCachedResult removes the cached result for q.
func (c *Client) ClearCachedResult(ctx context.Context, q *query.Query) error {
	return c.executor.ClearCachedResult(ctx, q)
}

// ClearAllCachedResults removes every cached result.
func (c *Client) ClearAllCachedResults(ctx context.Context) error {
	return c.executor.ClearAllCachedResults(ctx)
}

// Cache returns the client's result cache.
func (c *Client) Cache() *cache.Cache {
	return c.cache
}

// Config returns the effective configuration.
func (c *Client) Config() Config {
	return c.config
}

// Close prunes expired cache entries and rejects further queries.
// Closing an already closed client is a no-op.
func (c *Client) Close(ctx context.Context) error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}

	pruned, err := c.cache.Prune(ctx)
	if err != nil {
		return fmt.Errorf("failed to prune cache: %w", err)
	}

	m := c.cache.Metrics()
	c.logger.Debug(ctx, "client closed",
		"pruned", pruned,
		"cache_hits", m.Hits,
		"cache_misses", m.Misses,
		"cache_evictions", m.Evictions)
	return nil
}

func closedError() error {
	return parseerrors.Wrap(ErrClosed, parseerrors.CodeOperationForbidden, "client is closed")
}
