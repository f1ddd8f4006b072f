package logging

import (
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
)

// Level controls the verbosity of diagnostic output.
// Levels are totally ordered; every level emits everything the lower levels emit.
type Level uint8

const (
	// LevelNone disables all logging.
	LevelNone Level = 0
	// LevelError outputs error messages.
	LevelError Level = 1
	// LevelWarning outputs errors and warnings.
	LevelWarning Level = 2
	// LevelInfo outputs errors, warnings and informational messages.
	LevelInfo Level = 3
	// LevelDebug outputs errors, warnings, informational and debug messages.
	LevelDebug Level = 4
)

// DefaultLevel is the process-wide level in effect until SetLevel is called.
const DefaultLevel = LevelWarning

var levelNames = [...]string{
	LevelNone:    "none",
	LevelError:   "error",
	LevelWarning: "warning",
	LevelInfo:    "info",
	LevelDebug:   "debug",
}

// Levels returns all levels in ascending order.
func Levels() []Level {
	return []Level{LevelNone, LevelError, LevelWarning, LevelInfo, LevelDebug}
}

// IsValid reports whether l is one of the defined levels.
func (l Level) IsValid() bool {
	return l <= LevelDebug
}

// String returns the lower-case name of the level.
func (l Level) String() string {
	if !l.IsValid() {
		return fmt.Sprintf("Level(%d)", uint8(l))
	}
	return levelNames[l]
}

// Enabled reports whether a message at level msg is emitted when l is the
// configured level. Messages are never emitted at LevelNone.
func (l Level) Enabled(msg Level) bool {
	return msg != LevelNone && msg.IsValid() && msg <= l
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if !l.IsValid() {
		return nil, fmt.Errorf("invalid log level: %d", uint8(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel parses a level name. Matching is case-insensitive and "warn" is
// accepted for LevelWarning.
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "none", "off":
		return LevelNone, nil
	case "error":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarning, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	default:
		return DefaultLevel, fmt.Errorf("invalid log level: %q", level)
	}
}

// slogLevel maps l to the minimum slog level that should be emitted.
// LevelNone maps above slog.LevelError so nothing passes.
func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelNone:
		return slog.LevelError + 4
	case LevelError:
		return slog.LevelError
	case LevelWarning:
		return slog.LevelWarn
	case LevelInfo:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

var current atomic.Uint32

// globalLevelVar mirrors the process-wide level for loggers that follow it.
var globalLevelVar = new(slog.LevelVar)

func init() {
	SetLevel(DefaultLevel)
}

// SetLevel sets the process-wide log level. Invalid levels are clamped to LevelDebug.
// It is safe for concurrent use.
func SetLevel(l Level) {
	if !l.IsValid() {
		l = LevelDebug
	}
	current.Store(uint32(l))
	globalLevelVar.Set(l.slogLevel())
}

// CurrentLevel returns the process-wide log level.
func CurrentLevel() Level {
	return Level(current.Load())
}
