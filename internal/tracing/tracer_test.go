package tracing

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvent(level Level) Event {
	return Event{
		Timestamp: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Component: ComponentRoster,
		Operation: OperationGreet,
		Level:     level,
		SourceID:  "member-1",
		Message:   "Greet\tdispatched\n",
		Metadata: map[string]interface{}{
			"name": "Gilesé",
			"kind": "really_extrovert",
		},
	}
}

func TestWriterTracer(t *testing.T) {
	var buf bytes.Buffer
	tracer := NewWriterTracer(&buf, LevelInfo)

	require.NoError(t, tracer.Trace(sampleEvent(LevelInfo)))
	require.NoError(t, tracer.Trace(sampleEvent(LevelDebug)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1, "debug event should be filtered at info level")

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &decoded))
	assert.Equal(t, "roster", decoded["component"])
	assert.Equal(t, "greet", decoded["operation"])
	assert.Equal(t, "Greet dispatched ", decoded["message"])

	meta := decoded["metadata"].(map[string]interface{})
	assert.Equal(t, "Giles", meta["name"])

	tracer.SetLevel(LevelDebug)
	require.NoError(t, tracer.Trace(sampleEvent(LevelDebug)))
	assert.Equal(t, 2, strings.Count(buf.String(), "\n"))
}

func TestMemoryTracer(t *testing.T) {
	tracer := NewMemoryTracer()

	require.NoError(t, tracer.Trace(sampleEvent(LevelDebug)))
	require.NoError(t, tracer.Trace(sampleEvent(LevelVerbose)))

	events := tracer.Events()
	require.Len(t, events, 1)
	assert.Equal(t, OperationGreet, events[0].Operation)
	assert.Contains(t, tracer.GetOutput(), `"source_id":"member-1"`)

	tracer.Clear()
	assert.Empty(t, tracer.Events())
	assert.Empty(t, tracer.GetOutput())
}

func TestFormatEventLineDropsUnencodableMetadata(t *testing.T) {
	event := sampleEvent(LevelInfo)
	event.Metadata["callback"] = func() {}

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(formatEventLine(event)), &decoded))
	assert.Equal(t, "greet", decoded["operation"])
	assert.NotContains(t, decoded, "metadata")
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "", sanitizeString(""))
	assert.Equal(t, "a b c", sanitizeString("a\tb\nc"))
	assert.Equal(t, "caf", sanitizeString("café"))
}
