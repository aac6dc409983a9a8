package mlog

import (
	"io"
	"os"
	"sync"
)

// WriterSink delivers each record as one line to an io.Writer. Writes are
// serialized so concurrent records do not interleave.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer

	// OnError, when set, receives write failures. Must be set before the
	// sink is registered.
	OnError ErrorHandler
}

func NewWriterSink(w io.Writer) *WriterSink {
	if w == nil {
		w = os.Stdout
	}
	return &WriterSink{w: w}
}

func (s *WriterSink) Write(text string) { s.writeLine(s.w, text) }

func (s *WriterSink) writeLine(w io.Writer, text string) {
	buf := getBuf()
	buf.b = append(buf.b, text...)
	buf.b = append(buf.b, '\n')

	s.mu.Lock()
	_, err := w.Write(buf.b)
	s.mu.Unlock()

	putBuf(buf)
	if err != nil && s.OnError != nil {
		s.OnError(err)
	}
}

// LevelWriterSink routes records to per-severity writers, falling back to
// Default for severities without an entry.
type LevelWriterSink struct {
	WriterSink
	writers map[Level]io.Writer
}

func NewLevelWriterSink(def io.Writer, writers map[Level]io.Writer) *LevelWriterSink {
	if def == nil {
		def = os.Stdout
	}
	s := &LevelWriterSink{writers: writers}
	s.w = def
	return s
}

// WriteLevel routes by severity; the logger prefers it over Write.
func (s *LevelWriterSink) WriteLevel(level Level, text string) {
	if w, ok := s.writers[level]; ok {
		s.writeLine(w, text)
		return
	}
	s.writeLine(s.w, text)
}
