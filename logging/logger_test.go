package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_RespectsLevel(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		level Level
		want  []string
	}{
		{LevelNone, nil},
		{LevelError, []string{"e"}},
		{LevelWarning, []string{"e", "w"}},
		{LevelInfo, []string{"e", "w", "i"}},
		{LevelDebug, []string{"e", "w", "i", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(Config{Level: tt.level, Output: &buf, Format: FormatJSON})

			logger.Error(ctx, "e")
			logger.Warn(ctx, "w")
			logger.Info(ctx, "i")
			logger.Debug(ctx, "d")

			var got []string
			for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
				if line == "" {
					continue
				}
				var record map[string]interface{}
				require.NoError(t, jsoniter.Unmarshal([]byte(line), &record))
				got = append(got, record["msg"].(string))
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogger_FollowGlobal(t *testing.T) {
	original := CurrentLevel()
	t.Cleanup(func() { SetLevel(original) })

	var buf bytes.Buffer
	logger := NewLogger(Config{FollowGlobal: true, Output: &buf})
	ctx := context.Background()

	SetLevel(LevelError)
	logger.Info(ctx, "hidden")
	assert.False(t, logger.Enabled(ctx, LevelInfo))
	assert.Empty(t, buf.String())

	SetLevel(LevelInfo)
	logger.Info(ctx, "shown")
	assert.True(t, logger.Enabled(ctx, LevelInfo))
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Level: LevelDebug, Output: &buf})

	logger.WithOperation("find").With("class", "GameScore").Debug(context.Background(), "query completed", "results", 2)

	out := buf.String()
	assert.Contains(t, out, "operation=find")
	assert.Contains(t, out, "class=GameScore")
	assert.Contains(t, out, "results=2")
	assert.Contains(t, out, "level=DEBUG")
}

func TestLogger_NopAndNil(t *testing.T) {
	ctx := context.Background()

	nop := NewNopLogger()
	nop.Error(ctx, "discarded")
	assert.False(t, nop.Enabled(ctx, LevelError))
	assert.Same(t, nop, nop.With("k", "v").With("x", 1)) // nop loggers stay nop

	var nilLogger *Logger
	nilLogger.Error(ctx, "discarded")
	assert.Nil(t, nilLogger.WithOperation("x"))
	assert.False(t, nilLogger.Enabled(ctx, LevelError))

	var zero Logger
	zero.Info(ctx, "discarded")
}
