package engine

import (
	"context"
	"log/slog"
)

// LoggingObserver is a simple observer that logs all events using structured logging
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver creates a logging observer; a nil logger means slog.Default()
func NewLoggingObserver(logger *slog.Logger) *LoggingObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{logger: logger}
}

// OnEvent implements the Observer interface
func (lo *LoggingObserver) OnEvent(event Event) {
	level := slog.LevelDebug
	if event.Type == EventOpError {
		level = slog.LevelError
	}
	lo.logger.Log(context.Background(), level, "operation_lifecycle",
		"event", event.Type,
		"run_id", event.RunID,
		"operation", event.Operation,
		"duration", event.Duration,
		"data", event.Data,
	)
}
