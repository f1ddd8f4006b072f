// Package cache provides the size-bounded store behind cached query results.
//
// Entries are opaque byte slices identified by string keys. A Cache keeps an
// in-memory index over a pluggable Store and enforces two limits, a total size
// in bytes and a maximum entry count. When a Put would exceed either limit the
// least recently used entries are evicted until the new entry fits.
//
// Two stores are provided:
//
//   - MemoryStore keeps entries in process memory.
//   - FileStore persists entries on a billy filesystem. Each entry is written
//     atomically as a zstd-compressed file and verified against its content
//     digest on every read. Corrupted files are reported as ErrCorrupted and
//     discarded by the Cache.
//
// Entries may carry a TTL after which they are treated as absent. Callers can
// also bound the age they accept per read:
//
//	entry, err := c.Get(ctx, key, 10*time.Minute)
//	if cache.IsMiss(err) {
//	    // fetch from the network
//	}
package cache
