package tracing

import (
	"strings"
	"sync"
)

// MemoryTracer keeps events in memory, mostly for tests
type MemoryTracer struct {
	events []Event
	lines  strings.Builder
	level  Level
	mu     sync.Mutex
}

// NewMemoryTracer creates a new MemoryTracer at debug level
func NewMemoryTracer() *MemoryTracer {
	return &MemoryTracer{level: LevelDebug}
}

// Trace records the event if it meets the level threshold
func (t *MemoryTracer) Trace(event Event) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if event.Level > t.level {
		return nil
	}

	t.events = append(t.events, event)
	t.lines.WriteString(formatEventLine(event))
	t.lines.WriteString("\n")
	return nil
}

// Events returns a copy of the recorded events in trace order
func (t *MemoryTracer) Events() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Event, len(t.events))
	copy(out, t.events)
	return out
}

// GetOutput returns the formatted event lines
func (t *MemoryTracer) GetOutput() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.lines.String()
}

// Clear drops all recorded events
func (t *MemoryTracer) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.events = nil
	t.lines.Reset()
}

// Flush does nothing, events are already in memory
func (t *MemoryTracer) Flush() error { return nil }

// Close does nothing, recorded events stay readable
func (t *MemoryTracer) Close() error { return nil }

// SetLevel sets the minimum level of events to trace
func (t *MemoryTracer) SetLevel(level Level) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.level = level
}
