package tracing

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
	"unicode"
)

// Component identifies the system component generating the trace
type Component string

const (
	// ComponentPerson identifies the person variants
	ComponentPerson Component = "person"
	// ComponentRoster identifies the roster and its dispatch loop
	ComponentRoster Component = "roster"
)

// Operation identifies the type of operation being traced
type Operation string

const (
	// OperationCreate identifies a creation operation
	OperationCreate Operation = "create"
	// OperationGreet identifies a greet dispatch
	OperationGreet Operation = "greet"
	// OperationRelax identifies a relax dispatch
	OperationRelax Operation = "relax"
)

// Level defines the verbosity level of tracing
type Level int

const (
	// LevelError only traces errors
	LevelError Level = iota
	// LevelWarning traces warnings and errors
	LevelWarning
	// LevelInfo traces general information, warnings, and errors
	LevelInfo
	// LevelDebug traces detailed information for debugging
	LevelDebug
	// LevelVerbose traces everything
	LevelVerbose
)

// Event represents a traceable event
type Event struct {
	Timestamp time.Time              `json:"timestamp"`
	Component Component              `json:"component"`
	Operation Operation              `json:"operation"`
	Level     Level                  `json:"level"`
	SourceID  string                 `json:"source_id,omitempty"`
	TargetID  string                 `json:"target_id,omitempty"`
	ObjectID  string                 `json:"object_id,omitempty"`
	Message   string                 `json:"message,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// Tracer defines the interface for system tracing
type Tracer interface {
	// Trace records a trace event
	Trace(event Event) error

	// Flush forces any buffered data to be written
	Flush() error

	// Close flushes all data and closes the tracer
	Close() error

	// SetLevel sets the minimum level of events to trace
	SetLevel(level Level)
}

// NoopTracer is a tracer that does nothing
type NoopTracer struct{}

// NewNoopTracer creates a new NoopTracer
func NewNoopTracer() *NoopTracer {
	return &NoopTracer{}
}

// Trace does nothing and returns nil
func (t *NoopTracer) Trace(event Event) error { return nil }

// Flush does nothing and returns nil
func (t *NoopTracer) Flush() error { return nil }

// Close does nothing and returns nil
func (t *NoopTracer) Close() error { return nil }

// SetLevel does nothing for NoopTracer
func (t *NoopTracer) SetLevel(level Level) {}

// WriterTracer sends trace events to an io.Writer, one JSON line each
type WriterTracer struct {
	writer io.Writer
	level  Level
	mu     sync.Mutex
}

// NewWriterTracer creates a new WriterTracer
func NewWriterTracer(writer io.Writer, level Level) *WriterTracer {
	return &WriterTracer{
		writer: writer,
		level:  level,
	}
}

// Trace writes the event to the io.Writer
func (t *WriterTracer) Trace(event Event) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if event.Level > t.level {
		return nil
	}

	_, err := fmt.Fprintln(t.writer, formatEventLine(event))
	return err
}

// Flush does nothing unless the writer is a Flusher
func (t *WriterTracer) Flush() error {
	if flusher, ok := t.writer.(interface{ Flush() error }); ok {
		return flusher.Flush()
	}
	return nil
}

// Close does nothing unless the writer is a Closer
func (t *WriterTracer) Close() error {
	if closer, ok := t.writer.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// SetLevel sets the minimum level of events to trace
func (t *WriterTracer) SetLevel(level Level) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.level = level
}

// eventLine is the wire shape of an Event in trace output
type eventLine struct {
	Timestamp string                 `json:"timestamp"`
	Component string                 `json:"component"`
	Operation string                 `json:"operation"`
	Level     int                    `json:"level"`
	SourceID  string                 `json:"source_id,omitempty"`
	TargetID  string                 `json:"target_id,omitempty"`
	ObjectID  string                 `json:"object_id,omitempty"`
	Message   string                 `json:"message,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// formatEventLine renders an event as one line of ASCII JSON.
// If the metadata cannot be encoded the line is emitted without it.
func formatEventLine(event Event) string {
	line := eventLine{
		Timestamp: event.Timestamp.Format(time.RFC3339Nano),
		Component: string(event.Component),
		Operation: string(event.Operation),
		Level:     int(event.Level),
		SourceID:  sanitizeString(event.SourceID),
		TargetID:  sanitizeString(event.TargetID),
		ObjectID:  sanitizeString(event.ObjectID),
		Message:   sanitizeString(event.Message),
		Metadata:  sanitizeMetadata(event.Metadata),
	}

	data, err := json.Marshal(line)
	if err != nil {
		line.Metadata = nil
		data, _ = json.Marshal(line)
	}
	return sanitizeString(string(data))
}

// sanitizeString keeps printable ASCII and folds whitespace to a single space
func sanitizeString(s string) string {
	if s == "" {
		return s
	}

	var result strings.Builder
	result.Grow(len(s))

	for _, r := range s {
		if r >= 32 && r <= 126 {
			result.WriteRune(r)
		} else if unicode.IsSpace(r) {
			result.WriteRune(' ')
		}
	}

	return result.String()
}

// sanitizeMetadata recursively sanitizes all string values in the metadata
func sanitizeMetadata(metadata map[string]interface{}) map[string]interface{} {
	if metadata == nil {
		return nil
	}

	result := make(map[string]interface{}, len(metadata))
	for k, v := range metadata {
		key := sanitizeString(k)

		switch val := v.(type) {
		case string:
			result[key] = sanitizeString(val)
		case map[string]interface{}:
			result[key] = sanitizeMetadata(val)
		default:
			result[key] = val
		}
	}

	return result
}
