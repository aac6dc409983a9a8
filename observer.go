package mlog

import "time"

// Observer pattern: additive read-only taps on emitted records. Observers are
// not sinks; a record is still delivered to exactly one sink.

// Entry is a read-only snapshot of an emitted record.
type Entry struct {
	At    time.Time
	Level Level
	Text  string // exactly what the sink received (post-truncation)
}

// Observer is notified for each emitted entry.
// Implementations MUST be concurrency-safe.
type Observer interface {
	OnLog(entry Entry)
}

// ObserverFunc adapter.
type ObserverFunc func(Entry)

func (f ObserverFunc) OnLog(e Entry) { f(e) }
