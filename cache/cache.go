package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jmgilman/go/parse/logging"
)

// Cache is a size-bounded result cache layered over a Store.
// It keeps an in-memory index of stored entries for limit accounting and
// least-recently-used eviction. All methods are safe for concurrent use.
type Cache struct {
	store   Store
	config  Config
	logger  *logging.Logger
	metrics *Metrics
	now     func() time.Time

	mu    sync.Mutex
	index *lruIndex
}

// Option configures a Cache.
type Option func(*Cache)

// WithLogger sets the logger used for eviction and store failures.
func WithLogger(logger *logging.Logger) Option {
	return func(c *Cache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithClock sets the time source used for expiry decisions.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

// New creates a cache over store and rebuilds its index from the entries the
// store already holds. Entries that have expired, or that no longer fit the
// configured limits, are removed.
func New(ctx context.Context, store Store, config Config, opts ...Option) (*Cache, error) {
	if store == nil {
		return nil, fmt.Errorf("store cannot be nil")
	}
	config.SetDefaults()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cache config: %w", err)
	}

	c := &Cache{
		store:   store,
		config:  config,
		logger:  logging.NewNopLogger(),
		metrics: NewMetrics(),
		now:     time.Now,
		index:   newLRUIndex(),
	}
	for _, opt := range opts {
		opt(c)
	}

	infos, err := store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stored entries: %w", err)
	}
	c.index.rebuild(infos)

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := c.pruneLocked(ctx); err != nil {
		return nil, err
	}
	if err := c.evictLocked(ctx, 0); err != nil {
		return nil, err
	}

	c.logger.Debug(ctx, "cache index rebuilt",
		"entries", c.index.len(),
		"bytes", c.index.bytes)
	return c, nil
}

// Get returns the entry stored under key.
// It returns ErrNotFound when nothing is stored and ErrExpired when the entry
// has outlived its TTL, in which case the entry is removed. A positive maxAge
// additionally rejects entries stored longer ago than maxAge with ErrExpired;
// such entries are kept for callers with a looser bound.
func (c *Cache) Get(ctx context.Context, key string, maxAge time.Duration) (*Entry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	meta, ok := c.index.get(key)
	if !ok {
		c.metrics.RecordMiss()
		return nil, ErrNotFound
	}
	if meta.isExpired(now) {
		c.metrics.RecordMiss()
		if err := c.removeLocked(ctx, key); err != nil {
			return nil, err
		}
		return nil, ErrExpired
	}
	if maxAge > 0 && now.Sub(meta.createdAt) > maxAge {
		c.metrics.RecordMiss()
		return nil, ErrExpired
	}

	entry, err := c.store.Load(ctx, key)
	if err != nil {
		c.metrics.RecordMiss()
		switch {
		case errors.Is(err, ErrNotFound):
			c.index.remove(key)
		case errors.Is(err, ErrCorrupted):
			c.metrics.RecordError()
			c.logger.Warn(ctx, "discarding corrupted cache entry", "key", key, "error", err)
			if rmErr := c.removeLocked(ctx, key); rmErr != nil {
				return nil, rmErr
			}
		default:
			c.metrics.RecordError()
		}
		return nil, err
	}

	c.index.touch(key, now)
	entry.AccessedAt = now
	entry.AccessCount = meta.reads
	c.metrics.RecordHit(int64(len(entry.Data)))
	return entry, nil
}

// Put stores data under key with the configured default TTL.
func (c *Cache) Put(ctx context.Context, key string, data []byte) error {
	return c.PutWithTTL(ctx, key, data, c.config.DefaultTTL)
}

// PutWithTTL stores data under key, replacing any previous entry, then evicts
// least recently used entries until the cache is within its limits.
// Returns ErrTooLarge if the entry alone exceeds MaxSizeBytes.
func (c *Cache) PutWithTTL(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}
	if ttl < 0 {
		return fmt.Errorf("TTL cannot be negative")
	}

	entry := NewEntry(key, data, ttl, c.now())
	if entry.Size() > c.config.MaxSizeBytes {
		return fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrTooLarge, entry.Size(), c.config.MaxSizeBytes)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// The replaced entry no longer counts against the limits.
	c.index.remove(key)
	if err := c.evictLocked(ctx, entry.Size()); err != nil {
		return err
	}

	if err := c.store.Save(ctx, entry); err != nil {
		c.metrics.RecordError()
		// Any previous version is stale now; make sure it cannot be served.
		_ = c.store.Remove(ctx, key)
		return fmt.Errorf("failed to store entry: %w", err)
	}

	c.index.add(&indexEntry{
		key:        key,
		size:       entry.Size(),
		createdAt:  entry.CreatedAt,
		accessedAt: entry.AccessedAt,
		ttl:        ttl,
	})
	c.metrics.RecordPut(entry.Size())
	return nil
}

// Delete removes the entry stored under key. Deleting a missing key is not an error.
func (c *Cache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.removeLocked(ctx, key)
}

// Clear removes every entry.
func (c *Cache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.Clear(ctx); err != nil {
		c.metrics.RecordError()
		return fmt.Errorf("failed to clear store: %w", err)
	}
	c.index.reset()
	return nil
}

// Has reports whether a live entry exists for key.
func (c *Cache) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	meta, ok := c.index.get(key)
	return ok && !meta.isExpired(c.now())
}

// Len returns the number of indexed entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.index.len()
}

// Size returns the total size of indexed entries in bytes.
func (c *Cache) Size() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.index.bytes
}

// Prune removes every entry whose TTL has elapsed and returns how many were removed.
func (c *Cache) Prune(ctx context.Context) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.pruneLocked(ctx)
}

// Metrics returns a snapshot of the cache counters.
func (c *Cache) Metrics() MetricsSnapshot {
	return c.metrics.Snapshot()
}

// Config returns the effective cache configuration.
func (c *Cache) Config() Config {
	return c.config
}

func (c *Cache) pruneLocked(ctx context.Context) (int, error) {
	keys := c.index.expired(c.now())
	for _, key := range keys {
		if err := c.removeLocked(ctx, key); err != nil {
			return 0, err
		}
	}
	if len(keys) > 0 {
		c.logger.Debug(ctx, "pruned expired cache entries", "count", len(keys))
	}
	return len(keys), nil
}

// evictLocked removes least recently used entries until an entry of
// incoming bytes fits within both limits.
func (c *Cache) evictLocked(ctx context.Context, incoming int64) error {
	extra := 0
	if incoming > 0 {
		extra = 1
	}
	for c.index.len()+extra > c.config.MaxEntries || c.index.bytes+incoming > c.config.MaxSizeBytes {
		victim, ok := c.index.oldest()
		if !ok {
			return nil
		}
		if err := c.removeLocked(ctx, victim.key); err != nil {
			return err
		}
		c.metrics.RecordEviction()
		c.logger.Debug(ctx, "evicted cache entry",
			"key", victim.key,
			"size", victim.size)
	}
	return nil
}

func (c *Cache) removeLocked(ctx context.Context, key string) error {
	if err := c.store.Remove(ctx, key); err != nil {
		c.metrics.RecordError()
		return fmt.Errorf("failed to remove entry: %w", err)
	}
	c.index.remove(key)
	return nil
}
