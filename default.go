package mlog

import "sync/atomic"

// The process-wide default logger exists from process start with threshold
// Warn and no sink, mirroring the lifetime of the state it replaces.
var std atomic.Pointer[Logger]

func init() { std.Store(New()) }

// New creates a logger with default configuration: threshold Warn, no sink.
func New() *Logger { return NewBuilder().Build() }

// Default returns the process-wide default logger.
func Default() *Logger { return std.Load() }

// SetDefault replaces the process-wide default logger. nil is ignored.
func SetDefault(l *Logger) {
	if l != nil {
		std.Store(l)
	}
}

// Use builds a logger with the given sink and threshold, sets it as the
// default, and returns it. Single line, explicit, no envs.
func Use(s Sink, threshold Level, observers ...Observer) *Logger {
	b := NewBuilder().
		WithSink(s).
		WithThreshold(threshold)
	for _, o := range observers {
		b.AddObserver(o)
	}
	l := b.Build()
	SetDefault(l)
	return l
}
