package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the severity of a log message
type LogLevel int

// Log levels
const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ToSlogLevel converts our LogLevel to slog.Level
func (l LogLevel) ToSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Logger is a simple wrapper around slog
type Logger struct {
	Logger *slog.Logger // Capitalized for direct access
	writer io.Writer
}

var (
	defaultLogger *Logger
	defaultMu     sync.Mutex
)

// Init sets the process-wide default logger
func Init(logger *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = logger
}

// Get returns the default logger, creating a console logger on first use
func Get() *Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = Console()
	}
	return defaultLogger
}

// lineHandler writes one line per record:
// "time LEVEL file:line message [k=v, ...]"
type lineHandler struct {
	level     slog.Level
	addSource bool
	attrs     []slog.Attr
	mu        *sync.Mutex
	w         io.Writer
}

func (h *lineHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *lineHandler) Handle(ctx context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(r.Time.Format("2006-01-02 15:04:05Z07:00"))
	sb.WriteByte(' ')
	sb.WriteString(r.Level.String())

	if h.addSource {
		file, line := "???", 0
		if r.PC != 0 {
			frames := runtime.CallersFrames([]uintptr{r.PC})
			frame, _ := frames.Next()
			file = filepath.Base(frame.File)
			line = frame.Line
		}
		fmt.Fprintf(&sb, " %s:%d", file, line)
	}

	sb.WriteByte(' ')
	sb.WriteString(r.Message)

	attrs := make([]string, 0, len(h.attrs)+r.NumAttrs())
	for _, attr := range h.attrs {
		attrs = appendAttr(attrs, attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		attrs = appendAttr(attrs, attr)
		return true
	})
	if len(attrs) > 0 {
		sb.WriteString(" [" + strings.Join(attrs, ", ") + "]")
	}
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, sb.String())
	return err
}

func appendAttr(attrs []string, attr slog.Attr) []string {
	if attr.Key == "" || attr.Value.String() == "" {
		return attrs
	}
	return append(attrs, fmt.Sprintf("%s=%s", attr.Key, attr.Value.String()))
}

func (h *lineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

// WithGroup is ignored, groups are flattened into the attribute list
func (h *lineHandler) WithGroup(name string) slog.Handler {
	return h
}

// New creates a logger that writes to w at the given level
func New(w io.Writer, level LogLevel) *Logger {
	return &Logger{
		Logger: slog.New(&lineHandler{
			level:     level.ToSlogLevel(),
			addSource: true,
			mu:        &sync.Mutex{},
			w:         w,
		}),
		writer: w,
	}
}

// Console creates a logger that writes to stderr.
// Stdout is reserved for program output.
func Console() *Logger {
	return New(os.Stderr, LevelInfo)
}

// DevNull creates a logger that discards all output
func DevNull() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		writer: io.Discard,
	}
}

// With returns a logger that adds the given key/value pairs to every record
func (l *Logger) With(args ...interface{}) *Logger {
	return &Logger{
		Logger: l.Logger.With(args...),
		writer: l.writer,
	}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, args ...interface{}) {
	l.log(slog.LevelDebug, msg, args...)
}

// Info logs an info message
func (l *Logger) Info(msg string, args ...interface{}) {
	l.log(slog.LevelInfo, msg, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, args ...interface{}) {
	l.log(slog.LevelWarn, msg, args...)
}

// Error logs an error message
func (l *Logger) Error(msg string, args ...interface{}) {
	l.log(slog.LevelError, msg, args...)
}

// log records the PC of the wrapper's caller so file:line points at the call site
func (l *Logger) log(level slog.Level, msg string, args ...interface{}) {
	ctx := context.Background()
	if !l.Logger.Enabled(ctx, level) {
		return
	}

	var pcs [1]uintptr
	runtime.Callers(3, pcs[:]) // skip Callers, log and the level wrapper
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.Add(args...)
	_ = l.Logger.Handler().Handle(ctx, r)
}

// Close closes the underlying writer if it is closable.
// Stderr and stdout are never closed.
func (l *Logger) Close() error {
	if l.writer == os.Stderr || l.writer == os.Stdout {
		return nil
	}
	if closer, ok := l.writer.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
