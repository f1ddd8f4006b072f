package cache

import (
	"container/list"
	"sort"
	"time"
)

// lruIndex tracks entry metadata in least-recently-used order.
// It is not safe for concurrent use; the owning Cache serializes access.
type lruIndex struct {
	elems map[string]*list.Element
	order *list.List // front is most recently used
	bytes int64
}

// indexEntry is the metadata the cache keeps in memory for one stored entry.
type indexEntry struct {
	key        string
	size       int64
	createdAt  time.Time
	accessedAt time.Time
	ttl        time.Duration
	reads      int64
}

func (e *indexEntry) isExpired(now time.Time) bool {
	return e.ttl > 0 && now.Sub(e.createdAt) > e.ttl
}

func newLRUIndex() *lruIndex {
	return &lruIndex{
		elems: make(map[string]*list.Element),
		order: list.New(),
	}
}

// rebuild replaces the index contents with infos, ordering them by access time.
func (l *lruIndex) rebuild(infos []Info) {
	l.reset()

	sorted := append([]Info(nil), infos...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].AccessedAt.Before(sorted[j].AccessedAt)
	})
	// Oldest first, so each push to the front leaves the newest entry there.
	for _, info := range sorted {
		l.add(&indexEntry{
			key:        info.Key,
			size:       info.Size,
			createdAt:  info.CreatedAt,
			accessedAt: info.AccessedAt,
			ttl:        info.TTL,
		})
	}
}

// add inserts or replaces an entry and marks it most recently used.
func (l *lruIndex) add(entry *indexEntry) {
	if elem, ok := l.elems[entry.key]; ok {
		old := elem.Value.(*indexEntry)
		l.bytes -= old.size
		elem.Value = entry
		l.order.MoveToFront(elem)
	} else {
		l.elems[entry.key] = l.order.PushFront(entry)
	}
	l.bytes += entry.size
}

func (l *lruIndex) get(key string) (*indexEntry, bool) {
	elem, ok := l.elems[key]
	if !ok {
		return nil, false
	}
	return elem.Value.(*indexEntry), true
}

// touch marks key as most recently used and counts the read.
func (l *lruIndex) touch(key string, now time.Time) {
	if elem, ok := l.elems[key]; ok {
		entry := elem.Value.(*indexEntry)
		entry.accessedAt = now
		entry.reads++
		l.order.MoveToFront(elem)
	}
}

func (l *lruIndex) remove(key string) (*indexEntry, bool) {
	elem, ok := l.elems[key]
	if !ok {
		return nil, false
	}
	entry := l.order.Remove(elem).(*indexEntry)
	delete(l.elems, key)
	l.bytes -= entry.size
	return entry, true
}

// oldest returns the least recently used entry.
func (l *lruIndex) oldest() (*indexEntry, bool) {
	elem := l.order.Back()
	if elem == nil {
		return nil, false
	}
	return elem.Value.(*indexEntry), true
}

// expired returns the keys of all entries whose TTL has elapsed at now.
func (l *lruIndex) expired(now time.Time) []string {
	var keys []string
	for elem := l.order.Back(); elem != nil; elem = elem.Prev() {
		if entry := elem.Value.(*indexEntry); entry.isExpired(now) {
			keys = append(keys, entry.key)
		}
	}
	return keys
}

func (l *lruIndex) len() int {
	return len(l.elems)
}

func (l *lruIndex) reset() {
	l.elems = make(map[string]*list.Element)
	l.order.Init()
	l.bytes = 0
}
