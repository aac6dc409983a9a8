package mlog

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"github.com/trickstertwo/xclock"
)

// ErrorHandler receives failures the logger recovers from internally.
type ErrorHandler func(error)

func defaultErrorHandler(err error) { fmt.Fprintf(os.Stderr, "mlog error: %v\n", err) }

// sinkCell wraps the sink so atomic.Value can hold a nil target.
type sinkCell struct{ s Sink }

// Logger filters printf-style records against a severity threshold and
// delivers the rendered text to a single replaceable sink. Both cells are
// atomics, so concurrent SetThreshold/SetSink/Logf calls are safe.
type Logger struct {
	threshold atomic.Int32
	sink      atomic.Value // holds sinkCell

	// immutable after construction
	maxLine    int // 0 = unlimited
	errHandler ErrorHandler

	st stats

	// Observers: lock-free reads via atomic.Value; synchronized updates via obsMu.
	// Stored value is []Observer and MUST be treated as immutable by readers.
	observers atomic.Value // holds []Observer
	obsMu     sync.Mutex
}

// Factory: internal constructor.
func newLogger(cfg Config) *Logger {
	l := &Logger{
		maxLine:    cfg.MaxLine,
		errHandler: cfg.ErrorHandler,
	}
	if l.errHandler == nil {
		l.errHandler = defaultErrorHandler
	}
	l.threshold.Store(int32(cfg.Threshold))
	l.sink.Store(sinkCell{s: cfg.Sink})
	if ts, ok := cfg.Sink.(ThresholdSetter); ok {
		ts.SetThreshold(cfg.Threshold)
	}
	if len(cfg.Observers) > 0 {
		obs := make([]Observer, len(cfg.Observers))
		copy(obs, cfg.Observers)
		l.observers.Store(obs)
	} else {
		l.observers.Store(([]Observer)(nil))
	}
	return l
}

// SetThreshold sets the severity threshold. Records logged at a level less
// urgent than the threshold are suppressed. Idempotent, never fails.
func (l *Logger) SetThreshold(level Level) {
	l.threshold.Store(int32(level))
	// Keep the backend's own filter aligned when supported.
	if ts, ok := l.Sink().(ThresholdSetter); ok {
		ts.SetThreshold(level)
	}
}

// Threshold returns the current severity threshold.
func (l *Logger) Threshold() Level { return Level(l.threshold.Load()) }

// SetSink replaces the delivery target. A nil sink disables delivery;
// records are still rendered and counted.
func (l *Logger) SetSink(s Sink) {
	l.sink.Store(sinkCell{s: s})
	if ts, ok := s.(ThresholdSetter); ok {
		ts.SetThreshold(l.Threshold())
	}
}

// Sink returns the current sink, or nil when delivery is disabled.
func (l *Logger) Sink() Sink { return l.sink.Load().(sinkCell).s }

// Enabled reports whether records at 'level' would pass the threshold.
// Use to avoid building arguments in hot paths when disabled.
func (l *Logger) Enabled(level Level) bool { return level <= l.Threshold() }

// Logf renders format with args and delivers the text to the sink, once,
// synchronously, when level passes the threshold. It returns the full
// rendered length (even when truncated for delivery, or when no sink is
// registered), and 0 when the record is filtered out.
func (l *Logger) Logf(level Level, format string, args ...any) int {
	if level > l.Threshold() {
		l.st.filtered.Add(1)
		return 0
	}
	return l.emit(level, format, args)
}

func (l *Logger) Errorf(format string, args ...any) int { return l.Logf(LevelError, format, args...) }
func (l *Logger) Warnf(format string, args ...any) int  { return l.Logf(LevelWarn, format, args...) }
func (l *Logger) Infof(format string, args ...any) int  { return l.Logf(LevelInfo, format, args...) }
func (l *Logger) Debugf(format string, args ...any) int { return l.Logf(LevelDebug, format, args...) }
func (l *Logger) Tracef(format string, args ...any) int { return l.Logf(LevelTrace, format, args...) }

func (l *Logger) emit(level Level, format string, args []any) (n int) {
	buf := getBuf()
	defer putBuf(buf)

	// fmt renders verb/argument mismatches as %! annotations and swallows
	// Stringer panics itself, but a sink or observer can still panic.
	// Recover, report through the handler, and make the call return 0.
	defer func() {
		if r := recover(); r != nil {
			l.st.panics.Add(1)
			l.errHandler(fmt.Errorf("mlog: panic during log emit of %q: %v", format, r))
			n = 0
		}
	}()

	buf.b = fmt.Appendf(buf.b, format, args...)
	n = len(buf.b)
	l.st.emitted.Add(1)

	out := buf.b
	if l.maxLine > 0 && len(out) > l.maxLine {
		out = truncateLine(out, l.maxLine)
		l.st.truncated.Add(1)
	}

	sink := l.sink.Load().(sinkCell).s
	obs := l.loadObservers()
	if sink == nil && len(obs) == 0 {
		return n
	}
	text := string(out)

	if sink != nil {
		if lw, ok := sink.(LevelWriter); ok {
			lw.WriteLevel(level, text)
		} else {
			sink.Write(text)
		}
	}

	if len(obs) > 0 {
		// Single authoritative timestamp from xclock.
		entry := Entry{At: xclock.Now(), Level: level, Text: text}
		for _, o := range obs {
			o.OnLog(entry)
		}
	}
	return n
}

// truncateLine cuts b to at most max bytes without splitting a rune.
// len(b) must be > max.
func truncateLine(b []byte, max int) []byte {
	cut := max
	for cut > 0 && !utf8.RuneStart(b[cut]) {
		cut--
	}
	return b[:cut]
}

func (l *Logger) loadObservers() []Observer {
	v := l.observers.Load()
	if v == nil {
		return nil
	}
	return v.([]Observer)
}

func (l *Logger) snapshotObservers() []Observer {
	cur := l.loadObservers()
	if len(cur) == 0 {
		return nil
	}
	out := make([]Observer, len(cur))
	copy(out, cur)
	return out
}

// AddObserver registers an additive tap on emitted records.
func (l *Logger) AddObserver(o Observer) {
	l.obsMu.Lock()
	defer l.obsMu.Unlock()
	cur := l.snapshotObservers()
	cur = append(cur, o)
	l.observers.Store(cur)
}

// Stats returns a snapshot of internal counters.
func (l *Logger) Stats() StatsSnapshot { return l.st.snapshot() }

// ResetStats resets internal counters.
func (l *Logger) ResetStats() { l.st.reset() }
