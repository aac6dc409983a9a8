package zap

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/shunby/mlog"
)

// Sink forwards rendered records to go.uber.org/zap.
//
//   - Uses Logger.Check(level, msg) so disabled levels cost almost nothing.
//   - SetThreshold leverages zap.AtomicLevel when provided at construction
//     time so the backend filter follows the logger threshold. Without an
//     AtomicLevel it is a no-op (mlog filtering still applies).
//   - Maps trace to debug (zap has no trace) and never uses Fatal/DPanic,
//     keeping os.Exit out of library code.
type Sink struct {
	l  *zap.Logger
	al *zap.AtomicLevel // optional, enables SetThreshold
}

func New(l *zap.Logger) *Sink {
	if l == nil {
		l = zap.NewNop()
	}
	return &Sink{l: l}
}

// NewWithAtomicLevel creates a sink wired to a zap.AtomicLevel so
// SetThreshold can dynamically adjust the backend's filter.
func NewWithAtomicLevel(l *zap.Logger, al *zap.AtomicLevel) *Sink {
	if l == nil {
		l = zap.NewNop()
	}
	return &Sink{l: l, al: al}
}

// Write delivers a record without severity context; recorded at info.
func (s *Sink) Write(text string) { s.WriteLevel(mlog.LevelInfo, text) }

func (s *Sink) WriteLevel(level mlog.Level, text string) {
	ce := s.l.Check(toZapLevel(level), text)
	if ce == nil {
		return
	}
	ce.Write()
}

// SetThreshold updates the backend filter when an AtomicLevel was supplied.
func (s *Sink) SetThreshold(level mlog.Level) {
	if s.al == nil {
		return
	}
	s.al.SetLevel(toZapLevel(level))
}

func toZapLevel(l mlog.Level) zapcore.Level {
	switch {
	case l <= mlog.LevelError:
		return zapcore.ErrorLevel
	case l == mlog.LevelWarn:
		return zapcore.WarnLevel
	case l == mlog.LevelInfo:
		return zapcore.InfoLevel
	default:
		// debug and trace; zap has no trace level
		return zapcore.DebugLevel
	}
}
