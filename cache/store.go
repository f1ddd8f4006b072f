package cache

import (
	"context"
	"sync"
)

// Store persists cache entries. The Cache keeps its own index and eviction
// state on top of a Store; a Store only saves, loads and lists entries.
// Implementations must be safe for concurrent use.
type Store interface {
	// Load returns the entry stored under key.
	// Returns ErrNotFound if no entry exists and ErrCorrupted if the stored
	// entry fails its integrity check.
	Load(ctx context.Context, key string) (*Entry, error)

	// Save stores entry, replacing any entry with the same key.
	Save(ctx context.Context, entry *Entry) error

	// Remove deletes the entry stored under key.
	// Returns nil if the key doesn't exist (idempotent operation).
	Remove(ctx context.Context, key string) error

	// List describes every stored entry. Unreadable entries are skipped.
	List(ctx context.Context) ([]Info, error)

	// Clear removes every entry.
	Clear(ctx context.Context) error
}

// MemoryStore keeps entries in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]*Entry)}
}

// Load returns a copy of the entry stored under key.
// The store keeps its own copy of the data, so in-memory entries cannot be corrupted.
func (m *MemoryStore) Load(ctx context.Context, key string) (*Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.entries[key]
	if !ok {
		return nil, ErrNotFound
	}
	return entry.clone(), nil
}

// Save stores a copy of entry.
func (m *MemoryStore) Save(ctx context.Context, entry *Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cp := entry.clone()
	m.mu.Lock()
	m.entries[entry.Key] = cp
	m.mu.Unlock()
	return nil
}

// Remove deletes the entry stored under key.
func (m *MemoryStore) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}

// List describes every stored entry.
func (m *MemoryStore) List(ctx context.Context) ([]Info, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	infos := make([]Info, 0, len(m.entries))
	for _, entry := range m.entries {
		infos = append(infos, entry.info())
	}
	return infos, nil
}

// Clear removes every entry.
func (m *MemoryStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	m.entries = make(map[string]*Entry)
	m.mu.Unlock()
	return nil
}
