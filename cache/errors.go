package cache

import "errors"

// ErrNotFound is returned when no entry exists for a key.
var ErrNotFound = errors.New("cache entry not found")

// ErrExpired is returned when an entry exists but is older than its TTL or the requested maximum age.
var ErrExpired = errors.New("cache entry has expired")

// ErrCorrupted is returned when a stored entry fails its integrity check.
var ErrCorrupted = errors.New("cache entry is corrupted")

// ErrTooLarge is returned when a single entry exceeds the configured cache size.
var ErrTooLarge = errors.New("cache entry exceeds maximum cache size")

// IsMiss reports whether err means the cache holds no usable entry for a key.
// Corrupted entries count as misses since they are discarded on read.
func IsMiss(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrExpired) || errors.Is(err, ErrCorrupted)
}
