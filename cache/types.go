package cache

import (
	"fmt"
	"time"

	"github.com/opencontainers/go-digest"
)

const (
	// DefaultMaxSizeBytes bounds the total size of cached results.
	DefaultMaxSizeBytes int64 = 10 * 1024 * 1024
	// DefaultMaxEntries bounds the number of cached results.
	DefaultMaxEntries = 1000
)

// Config holds configuration for cache behavior.
type Config struct {
	// MaxSizeBytes is the maximum total size of all entries in bytes.
	MaxSizeBytes int64 `yaml:"max_size_bytes"`
	// MaxEntries is the maximum number of entries.
	MaxEntries int `yaml:"max_entries"`
	// DefaultTTL is the time-to-live given to new entries. Zero means entries never expire.
	DefaultTTL time.Duration `yaml:"default_ttl"`
}

// SetDefaults applies default values to unset fields in the configuration.
func (c *Config) SetDefaults() {
	if c.MaxSizeBytes == 0 {
		c.MaxSizeBytes = DefaultMaxSizeBytes
	}
	if c.MaxEntries == 0 {
		c.MaxEntries = DefaultMaxEntries
	}
}

// Validate checks that the cache configuration is valid.
func (c *Config) Validate() error {
	if c.MaxSizeBytes < 0 {
		return fmt.Errorf("max size cannot be negative")
	}
	if c.MaxEntries < 0 {
		return fmt.Errorf("max entries cannot be negative")
	}
	if c.DefaultTTL < 0 {
		return fmt.Errorf("default TTL cannot be negative")
	}
	return nil
}

// Entry represents a single cached result.
type Entry struct {
	// Key is the unique identifier for this entry.
	Key string
	// Data contains the cached bytes, opaque to the cache.
	Data []byte
	// Digest is the content digest of Data, checked on every read.
	Digest digest.Digest
	// CreatedAt is when this entry was stored.
	CreatedAt time.Time
	// AccessedAt is when this entry was last read.
	AccessedAt time.Time
	// TTL is the time-to-live for this entry. Zero means no expiration.
	TTL time.Duration
	// AccessCount is the number of reads served by the Cache since the entry
	// was stored or the cache was opened. Stores keep whatever value they are
	// given.
	AccessCount int64
}

// NewEntry creates an entry for data stamped at now.
func NewEntry(key string, data []byte, ttl time.Duration, now time.Time) *Entry {
	return &Entry{
		Key:        key,
		Data:       data,
		Digest:     digest.FromBytes(data),
		CreatedAt:  now,
		AccessedAt: now,
		TTL:        ttl,
	}
}

// IsExpired returns true if the entry has outlived its TTL at now.
func (e *Entry) IsExpired(now time.Time) bool {
	if e.TTL <= 0 {
		return false
	}
	return now.Sub(e.CreatedAt) > e.TTL
}

// Age returns how long ago the entry was stored.
func (e *Entry) Age(now time.Time) time.Duration {
	return now.Sub(e.CreatedAt)
}

// Size returns the number of bytes the entry counts against the cache limit.
func (e *Entry) Size() int64 {
	return int64(len(e.Key) + len(e.Data))
}

// Verify checks Data against Digest.
func (e *Entry) Verify() error {
	if err := e.Digest.Validate(); err != nil {
		return fmt.Errorf("%w: invalid digest: %v", ErrCorrupted, err)
	}
	if digest.FromBytes(e.Data) != e.Digest {
		return fmt.Errorf("%w: digest mismatch for %s", ErrCorrupted, e.Key)
	}
	return nil
}

// Info describes a stored entry without its data.
type Info struct {
	Key        string
	Size       int64
	CreatedAt  time.Time
	AccessedAt time.Time
	TTL        time.Duration
}

func (e *Entry) info() Info {
	return Info{
		Key:        e.Key,
		Size:       e.Size(),
		CreatedAt:  e.CreatedAt,
		AccessedAt: e.AccessedAt,
		TTL:        e.TTL,
	}
}

func (e *Entry) clone() *Entry {
	cp := *e
	cp.Data = append([]byte(nil), e.Data...)
	return &cp
}
