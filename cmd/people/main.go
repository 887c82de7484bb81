package main

import (
	"io"
	"os"

	"persondemo/internal/logging"
	"persondemo/internal/roster"
	"persondemo/internal/tracing"
)

// Run builds the demo roster and has everyone greet and relax on out.
// Dispatch events at or above the tracer's level are written to trace.
func Run(out io.Writer, trace tracing.Tracer) error {
	logger := logging.Get()
	logger.Debug("Application started")

	r := roster.Default(
		roster.WithLogger(logger),
		roster.WithTracer(trace),
	)
	if err := r.Run(out); err != nil {
		return err
	}

	logger.Debug("Application finished", "members", r.Len())
	return trace.Flush()
}

func main() {
	logging.Init(logging.Console())

	// Only failed dispatches reach stderr, stdout stays the demo output
	tracer := tracing.NewWriterTracer(os.Stderr, tracing.LevelError)

	if err := Run(os.Stdout, tracer); err != nil {
		logging.Get().Error("Roster run failed", "error", err)
		os.Exit(1)
	}
}
