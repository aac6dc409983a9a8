package zap

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/shunby/mlog"
)

func TestSink_EmitsLevelAndMessage(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := New(zap.New(core))

	s.WriteLevel(mlog.LevelWarn, "queue depth 900/1000")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Level != zapcore.WarnLevel {
		t.Fatalf("level mismatch: %v", entries[0].Level)
	}
	if entries[0].Message != "queue depth 900/1000" {
		t.Fatalf("message mismatch: %q", entries[0].Message)
	}
}

func TestSink_TraceMapsToDebug(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := New(zap.New(core))

	s.WriteLevel(mlog.LevelTrace, "tick")

	entries := logs.All()
	if len(entries) != 1 || entries[0].Level != zapcore.DebugLevel {
		t.Fatalf("trace should map to debug, got %+v", entries)
	}
}

func TestSink_AtomicLevelFollowsThreshold(t *testing.T) {
	al := zap.NewAtomicLevelAt(zapcore.DebugLevel)
	core, logs := observer.New(&al)
	s := NewWithAtomicLevel(zap.New(core), &al)

	s.SetThreshold(mlog.LevelError)
	s.WriteLevel(mlog.LevelInfo, "suppressed by backend")
	if logs.Len() != 0 {
		t.Fatalf("expected backend to suppress info, got %d entries", logs.Len())
	}

	s.SetThreshold(mlog.LevelInfo)
	s.WriteLevel(mlog.LevelInfo, "passes")
	if logs.Len() != 1 {
		t.Fatalf("expected 1 entry after lowering threshold, got %d", logs.Len())
	}
}

func TestLoggerPropagatesThresholdToSink(t *testing.T) {
	al := zap.NewAtomicLevelAt(zapcore.DebugLevel)
	core, logs := observer.New(&al)
	s := NewWithAtomicLevel(zap.New(core), &al)

	l := mlog.NewBuilder().WithSink(s).WithThreshold(mlog.LevelWarn).Build()
	if al.Level() != zapcore.WarnLevel {
		t.Fatalf("build did not propagate threshold: %v", al.Level())
	}

	l.SetThreshold(mlog.LevelDebug)
	if al.Level() != zapcore.DebugLevel {
		t.Fatalf("SetThreshold did not propagate: %v", al.Level())
	}

	if n := l.Debugf("d=%d", 7); n != 3 {
		t.Fatalf("return length mismatch: got %d want 3", n)
	}
	if logs.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", logs.Len())
	}
}
