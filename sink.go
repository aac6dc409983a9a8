package mlog

import (
	"time"

	"github.com/trickstertwo/xclock"
)

// Sink is the delivery target for rendered log text (Strategy).
// A logger holds at most one sink; registering a new one replaces the old.
type Sink interface {
	Write(text string)
}

// SinkFunc adapter for plain functions and closures.
type SinkFunc func(text string)

func (f SinkFunc) Write(text string) { f(text) }

// LevelWriter is an optional interface sinks can implement to receive the
// record's severity alongside the text. When implemented, the logger calls
// WriteLevel instead of Write, so backends can route or color by severity.
type LevelWriter interface {
	WriteLevel(level Level, text string)
}

// ThresholdSetter is an optional interface sinks can implement to keep a
// backend's own filter aligned with the logger threshold. The logger calls
// it when the sink is registered and on every SetThreshold.
type ThresholdSetter interface {
	SetThreshold(level Level)
}

// TimestampSink decorates another sink, prefixing each record with the
// current xclock time. Frozen clocks in tests produce deterministic output.
type TimestampSink struct {
	Next   Sink
	Clock  xclock.Clock // optional; defaults to xclock.Default()
	Layout string       // optional; defaults to time.RFC3339Nano
}

func (s *TimestampSink) Write(text string) {
	if s.Next == nil {
		return
	}
	s.Next.Write(s.stamp() + " " + text)
}

func (s *TimestampSink) WriteLevel(level Level, text string) {
	if s.Next == nil {
		return
	}
	stamped := s.stamp() + " " + text
	if lw, ok := s.Next.(LevelWriter); ok {
		lw.WriteLevel(level, stamped)
		return
	}
	s.Next.Write(stamped)
}

func (s *TimestampSink) stamp() string {
	layout := s.Layout
	if layout == "" {
		layout = time.RFC3339Nano
	}
	var now time.Time
	if s.Clock != nil {
		now = s.Clock.Now()
	} else {
		now = xclock.Now()
	}
	return now.Format(layout)
}
