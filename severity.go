package mlog

import (
	"errors"
	"strings"
)

// Level is an ordered severity. Lower value = higher urgency, so a record
// passes the filter iff its level is <= the logger threshold.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

// DefaultThreshold is the threshold a logger starts with.
const DefaultThreshold = LevelWarn

var levelNames = [...]string{"error", "warn", "info", "debug", "trace"}

func (l Level) String() string {
	if l < LevelError || l > LevelTrace {
		return "unknown"
	}
	return levelNames[l]
}

var ErrUnknownLevel = errors.New("mlog: unknown level")

// ParseLevel converts a level name (case-insensitive) to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "trace":
		return LevelTrace, nil
	default:
		return LevelError, ErrUnknownLevel
	}
}

func (l Level) MarshalText() ([]byte, error) {
	if l < LevelError || l > LevelTrace {
		return nil, ErrUnknownLevel
	}
	return []byte(levelNames[l]), nil
}

func (l *Level) UnmarshalText(text []byte) error {
	v, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}
