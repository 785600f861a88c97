package run

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// runCounter numbers runs within one process, handy when reading logs
var runCounter uint64

// Run identifies a single analysis operation executed by the engine
type Run struct {
	ID        string    // Unique run identifier (UUID)
	Seq       uint64    // Process-local sequence number
	Operation string    // Operation name ("check", "unique", ...)
	StartTime time.Time // When the run began
	EndTime   time.Time // When the run finished (zero while active)
}

// New creates a new run with a unique ID
func New(operation string) *Run {
	return &Run{
		ID:        uuid.New().String(),
		Seq:       atomic.AddUint64(&runCounter, 1),
		Operation: operation,
		StartTime: time.Now(),
	}
}

// Close marks the run as finished
func (r *Run) Close() {
	r.EndTime = time.Now()
}

// Active reports whether the run has not been closed yet
func (r *Run) Active() bool {
	return r.EndTime.IsZero()
}

// Duration returns the elapsed time of the run, up to now if still active
func (r *Run) Duration() time.Duration {
	if r.Active() {
		return time.Since(r.StartTime)
	}
	return r.EndTime.Sub(r.StartTime)
}
