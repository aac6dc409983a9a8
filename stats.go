package mlog

import "sync/atomic"

type stats struct {
	emitted   atomic.Uint64
	filtered  atomic.Uint64
	truncated atomic.Uint64
	panics    atomic.Uint64
}

// StatsSnapshot is a point-in-time counters snapshot.
type StatsSnapshot struct {
	Emitted   uint64 // records that passed the threshold and were rendered
	Filtered  uint64 // records suppressed by the threshold
	Truncated uint64 // records cut to MaxLine before delivery
	Panics    uint64 // panics recovered during emit (formatting or sink)
}

func (s *stats) snapshot() StatsSnapshot {
	return StatsSnapshot{
		Emitted:   s.emitted.Load(),
		Filtered:  s.filtered.Load(),
		Truncated: s.truncated.Load(),
		Panics:    s.panics.Load(),
	}
}

func (s *stats) reset() {
	s.emitted.Store(0)
	s.filtered.Store(0)
	s.truncated.Store(0)
	s.panics.Store(0)
}
