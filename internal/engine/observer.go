package engine

import "time"

// EventType represents the lifecycle phases of an engine operation
type EventType string

const (
	EventOpStart EventType = "op_start"
	EventOpEnd   EventType = "op_end"
	EventOpError EventType = "op_error"
)

// Event represents a lifecycle event of one operation
type Event struct {
	Type      EventType     // Type of event
	RunID     string        // Run ID for tracing
	Operation string        // Operation name ("check", "onehot", ...)
	Timestamp time.Time     // When the event occurred
	Duration  time.Duration // Elapsed time, set on end/error events
	Data      interface{}   // Phase-specific data (columns, counts, error)
}

// Observer interface for event subscribers
// Observers receive an event when an operation starts and when it ends
type Observer interface {
	OnEvent(event Event)
}
