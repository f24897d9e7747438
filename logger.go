package bitseq

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bitseq-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithWordBits adds the storage word width to the logger.
func (l *Logger) WithWordBits(bits int) *Logger {
	return &Logger{
		Logger: l.Logger.With("word_bits", bits),
	}
}

// WithLength adds a bit length field to the logger.
func (l *Logger) WithLength(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("length", n),
	}
}

// LogGrow logs a reallocation of a vector's word buffer.
func (l *Logger) LogGrow(ctx context.Context, fromWords, toWords int) {
	l.DebugContext(ctx, "word buffer reallocated",
		"from_words", fromWords,
		"to_words", toWords,
	)
}

// LogKernels logs the kernel selection made at package init.
func (l *Logger) LogKernels(ctx context.Context) {
	if !l.Enabled(ctx, slog.LevelDebug) {
		return
	}
	c := Capabilities()
	l.DebugContext(ctx, "bit kernels selected",
		"isa", c.ISA,
		"kernels", c.Kernels,
		"overridden", c.Overridden,
	)
}
