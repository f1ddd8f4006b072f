package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetrics_Snapshot(t *testing.T) {
	m := NewMetrics()

	m.RecordHit(100)
	m.RecordHit(50)
	m.RecordMiss()
	m.RecordMiss()
	m.RecordPut(10)
	m.RecordEviction()
	m.RecordError()

	s := m.Snapshot()
	assert.Equal(t, int64(2), s.Hits)
	assert.Equal(t, int64(2), s.Misses)
	assert.Equal(t, int64(1), s.Evictions)
	assert.Equal(t, int64(1), s.Errors)
	assert.Equal(t, int64(150), s.BytesServed)
	assert.Equal(t, int64(10), s.BytesStored)
	assert.InDelta(t, 0.5, s.HitRate, 0.0001)
	assert.False(t, s.LastHitTime.IsZero())
}

func TestMetrics_EmptyHitRate(t *testing.T) {
	assert.Zero(t, NewMetrics().Snapshot().HitRate)
}

func TestMetrics_Concurrent(t *testing.T) {
	m := NewMetrics()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.RecordHit(1)
			m.RecordMiss()
			_ = m.Snapshot()
		}()
	}
	wg.Wait()

	s := m.Snapshot()
	assert.Equal(t, int64(50), s.Hits)
	assert.Equal(t, int64(50), s.Misses)
}
