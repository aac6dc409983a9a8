package zerolog

import (
	"github.com/rs/zerolog"

	"github.com/shunby/mlog"
)

// Sink forwards rendered records to rs/zerolog with low overhead.
//
//   - Fast pre-check using GetLevel() to avoid allocating a zerolog.Event
//     when the level is disabled.
//   - Uses Logger.WithLevel(...) to avoid a level switch at call sites.
//   - mlog has no fatal severity, so nothing here can reach zerolog.Fatal()
//     and its os.Exit side effect.
type Sink struct {
	l zerolog.Logger
}

func New(l zerolog.Logger) *Sink {
	return &Sink{l: l}
}

// Write delivers a record without severity context (e.g. when reached
// through a decorator that drops levels). It is recorded at info.
func (s *Sink) Write(text string) { s.WriteLevel(mlog.LevelInfo, text) }

// WriteLevel delivers a record as a zerolog message at the mapped level.
func (s *Sink) WriteLevel(level mlog.Level, text string) {
	zlvl := mapLevel(level)
	if zlvl < s.l.GetLevel() {
		return
	}
	s.l.WithLevel(zlvl).Msg(text)
}

// SetThreshold keeps zerolog's own filter aligned with the logger threshold
// (optional interface; called by mlog on registration and SetThreshold).
func (s *Sink) SetThreshold(level mlog.Level) {
	s.l = s.l.Level(mapLevel(level))
}

// mapLevel converts an mlog severity to a zerolog level.
func mapLevel(l mlog.Level) zerolog.Level {
	switch {
	case l <= mlog.LevelError:
		return zerolog.ErrorLevel
	case l == mlog.LevelWarn:
		return zerolog.WarnLevel
	case l == mlog.LevelInfo:
		return zerolog.InfoLevel
	case l == mlog.LevelDebug:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}
