package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Format selects the output encoding of a Logger.
type Format string

const (
	// FormatText writes logfmt-style key=value lines.
	FormatText Format = "text"
	// FormatJSON writes one JSON object per line.
	FormatJSON Format = "json"
)

// Config holds configuration for a Logger.
type Config struct {
	// Level sets the verbosity. Ignored when FollowGlobal is set.
	Level Level
	// FollowGlobal makes the logger track the process-wide level set by SetLevel.
	FollowGlobal bool
	// Output is where log lines are written. Defaults to os.Stderr.
	Output io.Writer
	// Format selects text or JSON output. Defaults to FormatText.
	Format Format
	// AddSource includes file and line number in logs.
	AddSource bool
}

// Logger provides structured, level-gated logging for the SDK.
// The zero value and a nil *Logger discard all messages.
type Logger struct {
	impl loggerImpl
}

// loggerImpl defines the internal interface for logger implementations.
type loggerImpl interface {
	log(ctx context.Context, level Level, msg string, args ...any)
	enabled(ctx context.Context, level Level) bool
	with(args ...any) loggerImpl
}

// NewLogger creates a new structured logger with the given configuration.
func NewLogger(config Config) *Logger {
	out := config.Output
	if out == nil {
		out = os.Stderr
	}

	var leveler slog.Leveler = globalLevelVar
	if !config.FollowGlobal {
		lv := new(slog.LevelVar)
		lv.Set(config.Level.slogLevel())
		leveler = lv
	}

	opts := &slog.HandlerOptions{
		Level:     leveler,
		AddSource: config.AddSource,
	}

	var handler slog.Handler
	if config.Format == FormatJSON {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	return &Logger{impl: &slogLogger{logger: slog.New(handler)}}
}

// Default returns a text logger on stderr that follows the process-wide level.
func Default() *Logger {
	return NewLogger(Config{FollowGlobal: true})
}

// NewNopLogger creates a no-op logger that discards all log messages.
func NewNopLogger() *Logger {
	return &Logger{impl: nopLogger{}}
}

// Error logs error-level messages.
func (l *Logger) Error(ctx context.Context, msg string, args ...any) {
	l.log(ctx, LevelError, msg, args...)
}

// Warn logs warning-level messages.
func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	l.log(ctx, LevelWarning, msg, args...)
}

// Info logs info-level messages.
func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	l.log(ctx, LevelInfo, msg, args...)
}

// Debug logs debug-level messages.
func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	l.log(ctx, LevelDebug, msg, args...)
}

// Enabled reports whether a message at level would be written.
func (l *Logger) Enabled(ctx context.Context, level Level) bool {
	if l == nil || l.impl == nil {
		return false
	}
	return l.impl.enabled(ctx, level)
}

// With returns a logger with additional context fields.
func (l *Logger) With(args ...any) *Logger {
	if l == nil || l.impl == nil {
		return l
	}
	// Nop loggers carry no fields, so the same instance is returned.
	if _, ok := l.impl.(nopLogger); ok {
		return l
	}
	return &Logger{impl: l.impl.with(args...)}
}

// WithOperation returns a logger with operation context.
func (l *Logger) WithOperation(operation string) *Logger {
	return l.With("operation", operation)
}

// WithDuration returns a logger with duration context.
func (l *Logger) WithDuration(duration time.Duration) *Logger {
	return l.With("duration_ms", duration.Milliseconds())
}

func (l *Logger) log(ctx context.Context, level Level, msg string, args ...any) {
	if l == nil || l.impl == nil {
		return
	}
	l.impl.log(ctx, level, msg, args...)
}

// slogLogger implements loggerImpl using slog.
type slogLogger struct {
	logger *slog.Logger
}

func (s *slogLogger) log(ctx context.Context, level Level, msg string, args ...any) {
	if level == LevelNone || !level.IsValid() {
		return
	}
	s.logger.Log(ctx, level.slogLevel(), msg, args...)
}

func (s *slogLogger) enabled(ctx context.Context, level Level) bool {
	if level == LevelNone || !level.IsValid() {
		return false
	}
	return s.logger.Enabled(ctx, level.slogLevel())
}

func (s *slogLogger) with(args ...any) loggerImpl {
	return &slogLogger{logger: s.logger.With(args...)}
}

// nopLogger is a no-op logger implementation that discards all messages.
type nopLogger struct{}

func (nopLogger) log(context.Context, Level, string, ...any) {}
func (nopLogger) enabled(context.Context, Level) bool        { return false }
func (n nopLogger) with(...any) loggerImpl                   { return n }
