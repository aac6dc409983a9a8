package mlog

import (
	"io"
	"testing"
)

// blackhole variables prevent compiler from optimizing away code paths.
var (
	bhN   int
	bhLen int
)

type nopSink struct{}

func (nopSink) Write(text string) { bhLen = len(text) }

func BenchmarkLogf_Filtered(b *testing.B) {
	l := NewBuilder().WithSink(nopSink{}).WithThreshold(LevelWarn).Build()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bhN = l.Logf(LevelDebug, "n=%d", i)
	}
}

func BenchmarkLogf_NoSink(b *testing.B) {
	l := NewBuilder().WithThreshold(LevelTrace).Build()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bhN = l.Logf(LevelInfo, "n=%d", i)
	}
}

func BenchmarkLogf_StubSink(b *testing.B) {
	l := NewBuilder().WithSink(nopSink{}).WithThreshold(LevelTrace).Build()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bhN = l.Logf(LevelInfo, "n=%d v=%s", i, "value")
	}
}

func BenchmarkLogf_WriterSink(b *testing.B) {
	l := NewBuilder().WithSink(NewWriterSink(io.Discard)).WithThreshold(LevelTrace).Build()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bhN = l.Logf(LevelInfo, "n=%d", i)
	}
}

func BenchmarkLogf_Parallel(b *testing.B) {
	l := NewBuilder().WithSink(nopSink{}).WithThreshold(LevelTrace).Build()
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			bhN = l.Logf(LevelInfo, "hot path %d", 42)
		}
	})
}
