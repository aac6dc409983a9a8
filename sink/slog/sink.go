package slog

import (
	"context"
	"log/slog"

	"github.com/shunby/mlog"
)

// Sink forwards rendered records to the Go slog API.
//
// When constructed with a slog.LevelVar (see NewWithLevelVar or Use),
// SetThreshold keeps the handler's filter aligned with the logger threshold.
type Sink struct {
	l  *slog.Logger
	lv *slog.LevelVar // optional, enables SetThreshold
}

func New(l *slog.Logger) *Sink {
	if l == nil {
		l = slog.Default()
	}
	return &Sink{l: l}
}

func NewWithLevelVar(l *slog.Logger, lv *slog.LevelVar) *Sink {
	if l == nil {
		l = slog.Default()
	}
	return &Sink{l: l, lv: lv}
}

// Write delivers a record without severity context; recorded at info.
func (s *Sink) Write(text string) { s.WriteLevel(mlog.LevelInfo, text) }

func (s *Sink) WriteLevel(level mlog.Level, text string) {
	s.l.LogAttrs(context.Background(), toSlogLevel(level), text)
}

// SetThreshold updates the handler filter when a LevelVar was supplied.
func (s *Sink) SetThreshold(level mlog.Level) {
	if s.lv == nil {
		return
	}
	s.lv.Set(toSlogLevel(level))
}

// toSlogLevel converts an mlog severity (ascending verbosity) to a slog
// level (descending). Trace maps below slog's debug.
func toSlogLevel(l mlog.Level) slog.Level {
	switch {
	case l <= mlog.LevelError:
		return slog.LevelError
	case l == mlog.LevelWarn:
		return slog.LevelWarn
	case l == mlog.LevelInfo:
		return slog.LevelInfo
	case l == mlog.LevelDebug:
		return slog.LevelDebug
	default:
		return slog.LevelDebug - 4
	}
}
