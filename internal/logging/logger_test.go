package logging

import (
	"bytes"
	"fmt"
	"runtime"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())

	assert.Equal(t, slog.LevelWarn, LevelWarn.ToSlogLevel())
	assert.Equal(t, slog.LevelInfo, LogLevel(42).ToSlogLevel())
}

func TestNewWritesSingleLine(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelDebug)

	logger.Debug("Dispatching", "name", "Alice", "index", 0)

	out := buf.String()
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.Equal(t, 1, strings.Count(out, "\n"))
	assert.Contains(t, out, " DEBUG ")
	assert.Contains(t, out, "logger_test.go:")
	assert.Contains(t, out, "Dispatching [name=Alice, index=0]")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "shown")
}

func TestWithCarriesAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelInfo).With("roster_size", 5)

	logger.Info("Roster run started")

	assert.Contains(t, buf.String(), "Roster run started [roster_size=5]")
}

func TestDefaultLogger(t *testing.T) {
	previous := Get()
	defer Init(previous)

	silent := DevNull()
	Init(silent)
	assert.Same(t, silent, Get())
	assert.NoError(t, silent.Close())
}

func TestSourcePointsAtCallSite(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelDebug)

	_, _, line, _ := runtime.Caller(0)
	logger.Info("Roster created", "size", 5) // must stay on the line after runtime.Caller

	assert.Contains(t, buf.String(), fmt.Sprintf(" logger_test.go:%d Roster created", line+1))

	buf.Reset()
	scoped := logger.With("member_id", "m-1")
	_, _, line, _ = runtime.Caller(0)
	scoped.Warn("Dispatch failed")

	assert.Contains(t, buf.String(), fmt.Sprintf(" logger_test.go:%d Dispatch failed [member_id=m-1]", line+1))
}
