// Package logging provides the SDK's log levels and structured logger.
//
// Levels are ordered None < Error < Warning < Info < Debug, and each level emits
// a superset of what the lower levels emit. The process-wide level defaults to
// Warning and is changed with SetLevel:
//
//	logging.SetLevel(logging.LevelDebug)
//
// Loggers wrap log/slog. Loggers created with FollowGlobal (including Default)
// observe SetLevel immediately; others keep the level they were created with.
//
//	logger := logging.NewLogger(logging.Config{Level: logging.LevelInfo, Format: logging.FormatJSON})
//	logger.WithOperation("find").Info(ctx, "query completed", "class", "GameScore")
package logging
