package cache

import (
	"testing"
	"time"

	"github.com/opencontainers/go-digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_SetDefaults(t *testing.T) {
	var cfg Config
	cfg.SetDefaults()

	assert.Equal(t, DefaultMaxSizeBytes, cfg.MaxSizeBytes)
	assert.Equal(t, DefaultMaxEntries, cfg.MaxEntries)
	assert.Zero(t, cfg.DefaultTTL)

	custom := Config{MaxSizeBytes: 42, MaxEntries: 7}
	custom.SetDefaults()
	assert.Equal(t, int64(42), custom.MaxSizeBytes)
	assert.Equal(t, 7, custom.MaxEntries)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{name: "zero config", config: Config{}},
		{name: "defaults", config: Config{MaxSizeBytes: DefaultMaxSizeBytes, MaxEntries: DefaultMaxEntries, DefaultTTL: time.Hour}},
		{name: "negative size", config: Config{MaxSizeBytes: -1}, wantErr: "max size"},
		{name: "negative entries", config: Config{MaxEntries: -1}, wantErr: "max entries"},
		{name: "negative ttl", config: Config{DefaultTTL: -time.Second}, wantErr: "TTL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEntry_IsExpired(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		ttl      time.Duration
		at       time.Time
		expected bool
	}{
		{name: "no ttl never expires", ttl: 0, at: now.Add(1000 * time.Hour), expected: false},
		{name: "within ttl", ttl: time.Hour, at: now.Add(30 * time.Minute), expected: false},
		{name: "exactly at ttl", ttl: time.Hour, at: now.Add(time.Hour), expected: false},
		{name: "past ttl", ttl: time.Hour, at: now.Add(time.Hour + time.Nanosecond), expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := NewEntry("k", []byte("v"), tt.ttl, now)
			assert.Equal(t, tt.expected, entry.IsExpired(tt.at))
		})
	}
}

func TestEntry_SizeAndAge(t *testing.T) {
	now := time.Now()
	entry := NewEntry("abc", []byte("12345"), 0, now)

	assert.Equal(t, int64(8), entry.Size())
	assert.Equal(t, 5*time.Minute, entry.Age(now.Add(5*time.Minute)))
	assert.Equal(t, now, entry.AccessedAt)
	assert.Equal(t, digest.FromBytes([]byte("12345")), entry.Digest)
}

func TestEntry_Verify(t *testing.T) {
	entry := NewEntry("k", []byte("payload"), 0, time.Now())
	require.NoError(t, entry.Verify())

	entry.Data = []byte("tampered")
	err := entry.Verify()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCorrupted)

	entry.Digest = "not-a-digest"
	assert.ErrorIs(t, entry.Verify(), ErrCorrupted)
}

func TestIsMiss(t *testing.T) {
	assert.True(t, IsMiss(ErrNotFound))
	assert.True(t, IsMiss(ErrExpired))
	assert.True(t, IsMiss(ErrCorrupted))
	assert.False(t, IsMiss(ErrTooLarge))
	assert.False(t, IsMiss(nil))
}
