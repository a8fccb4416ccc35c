package blake2simd

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
)

// Logger is the structured logger the hash packages report through. Each
// package tags its records with a "family" attribute via WithFamily.
type Logger struct {
	*slog.Logger
}

// NewLogger wraps handler. A nil handler writes info and above as text to
// stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger returns a Logger writing JSON records at level or above to
// stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger returns a Logger writing text records at level or above to
// stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger returns a Logger that drops every record. It is the default.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(NoopLogger())
}

// SetLogger replaces the process-wide logger used by the hash packages.
// A nil logger restores the no-op logger.
func SetLogger(l *Logger) {
	if l == nil {
		l = NoopLogger()
	}
	defaultLogger.Store(l)
}

// DefaultLogger returns the process-wide logger.
func DefaultLogger() *Logger {
	return defaultLogger.Load()
}

// WithFamily returns a logger whose records carry family ("blake2b" or
// "blake2s").
func (l *Logger) WithFamily(family string) *Logger {
	return &Logger{
		Logger: l.Logger.With("family", family),
	}
}

// DebugEnabled reports whether debug records would be emitted.
// Hot paths check it before assembling log attributes.
func (l *Logger) DebugEnabled() bool {
	return l.Enabled(context.Background(), slog.LevelDebug)
}

// LogDispatch logs the single-stream kernel and the lane tiers HashMany
// uses.
func (l *Logger) LogDispatch(isa, single string, lanes []int, overridden bool) {
	l.Info("blake2 dispatch selected",
		"isa", isa,
		"single", single,
		"lanes", lanes,
		"overridden", overridden,
	)
}

// LogBatch logs a HashMany plan.
func (l *Logger) LogBatch(jobs, cohorts, single, portable int) {
	l.Debug("hash many planned",
		"jobs", jobs,
		"cohorts", cohorts,
		"single", single,
		"portable", portable,
	)
}

// LogTree logs a tree-mode hash.
func (l *Logger) LogTree(inputLen, leaves, leafLength int) {
	l.Debug("tree hash completed",
		"input_bytes", inputLen,
		"leaves", leaves,
		"leaf_length", leafLength,
	)
}
