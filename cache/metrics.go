package cache

import (
	"sync"
	"time"
)

// Metrics collects counters for cache operations.
type Metrics struct {
	mu sync.RWMutex

	hits      int64
	misses    int64
	evictions int64
	errors    int64

	bytesServed int64
	bytesStored int64

	startTime    time.Time
	lastHitTime  time.Time
	lastMissTime time.Time
}

// MetricsSnapshot is a point-in-time copy of Metrics.
type MetricsSnapshot struct {
	Hits         int64
	Misses       int64
	Evictions    int64
	Errors       int64
	BytesServed  int64
	BytesStored  int64
	HitRate      float64
	Uptime       time.Duration
	LastHitTime  time.Time
	LastMissTime time.Time
}

// NewMetrics creates an empty Metrics instance.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordHit records a cache hit that served n bytes.
func (m *Metrics) RecordHit(n int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.hits++
	m.bytesServed += n
	m.lastHitTime = time.Now()
}

// RecordMiss records a cache miss.
func (m *Metrics) RecordMiss() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.misses++
	m.lastMissTime = time.Now()
}

// RecordPut records n bytes written to the cache.
func (m *Metrics) RecordPut(n int64) {
	m.mu.Lock()
	m.bytesStored += n
	m.mu.Unlock()
}

// RecordEviction records an entry evicted to stay within limits.
func (m *Metrics) RecordEviction() {
	m.mu.Lock()
	m.evictions++
	m.mu.Unlock()
}

// RecordError records a failed store operation.
func (m *Metrics) RecordError() {
	m.mu.Lock()
	m.errors++
	m.mu.Unlock()
}

// Snapshot returns the current counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return MetricsSnapshot{
		Hits:         m.hits,
		Misses:       m.misses,
		Evictions:    m.evictions,
		Errors:       m.errors,
		BytesServed:  m.bytesServed,
		BytesStored:  m.bytesStored,
		HitRate:      m.hitRate(),
		Uptime:       time.Since(m.startTime),
		LastHitTime:  m.lastHitTime,
		LastMissTime: m.lastMissTime,
	}
}

func (m *Metrics) hitRate() float64 {
	total := m.hits + m.misses
	if total == 0 {
		return 0
	}
	return float64(m.hits) / float64(total)
}
