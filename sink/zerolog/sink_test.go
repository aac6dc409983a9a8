package zerolog

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"

	"github.com/shunby/mlog"
)

func TestSink_EmitsLevelAndMessage(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf) // JSON by default
	s := New(zl)

	s.WriteLevel(mlog.LevelError, "disk full: /dev/sda1")

	line := buf.Bytes()
	if len(line) == 0 {
		t.Fatal("no output from zerolog")
	}
	var m map[string]any
	if err := json.Unmarshal(line, &m); err != nil {
		t.Fatalf("json unmarshal: %v; line=%s", err, string(line))
	}
	if m["level"] != "error" {
		t.Fatalf("level mismatch: %v", m["level"])
	}
	if m["message"] != "disk full: /dev/sda1" {
		t.Fatalf("message mismatch: %v", m["message"])
	}
}

func TestSink_ThresholdAlignsBackendFilter(t *testing.T) {
	var buf bytes.Buffer
	s := New(zerolog.New(&buf))
	s.SetThreshold(mlog.LevelWarn)

	s.WriteLevel(mlog.LevelInfo, "suppressed by backend")
	if buf.Len() != 0 {
		t.Fatalf("expected backend to suppress info, got %s", buf.String())
	}

	s.WriteLevel(mlog.LevelWarn, "passes")
	if buf.Len() == 0 {
		t.Fatal("expected warn to pass backend filter")
	}
}

func TestUse_WiresDefaultLogger(t *testing.T) {
	old := mlog.Default()
	defer mlog.SetDefault(old)

	var buf bytes.Buffer
	Use(Config{Writer: &buf, Threshold: mlog.LevelInfo})

	if n := mlog.Infof("x=%d", 5); n != 3 {
		t.Fatalf("return length mismatch: got %d want 3", n)
	}
	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("json unmarshal: %v; line=%s", err, buf.String())
	}
	if m["message"] != "x=5" {
		t.Fatalf("message mismatch: %v", m["message"])
	}
	if m["level"] != "info" {
		t.Fatalf("level mismatch: %v", m["level"])
	}

	buf.Reset()
	if n := mlog.Debugf("hidden"); n != 0 {
		t.Fatalf("filtered record should return 0, got %d", n)
	}
	if buf.Len() != 0 {
		t.Fatalf("filtered record reached backend: %s", buf.String())
	}
}
