package slog

import (
	"io"
	"log/slog"
	"os"

	"github.com/shunby/mlog"
)

// Format selects the slog handler format.
type Format uint8

const (
	FormatJSON Format = iota + 1
	FormatText
)

// Config is an explicit, code-first configuration for slog + mlog.
// One call to Use wires a slog-backed mlog logger and sets it as default.
type Config struct {
	Writer         io.Writer // default: os.Stdout
	Threshold      mlog.Level
	Format         Format               // JSON (default) or Text
	HandlerOptions *slog.HandlerOptions // optional; Level is managed by Use via LevelVar
	MaxLine        int                  // passed through to mlog
}

// Use builds a slog-backed mlog logger from Config, sets it as the process
// default, and returns it.
func Use(cfg Config) *mlog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	opts := cfg.HandlerOptions
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}

	// A LevelVar lets SetThreshold adjust the handler filter dynamically.
	var lv slog.LevelVar
	lv.Set(toSlogLevel(cfg.Threshold))
	opts.Level = &lv

	var h slog.Handler
	if cfg.Format == FormatText {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}

	l := mlog.NewBuilder().
		WithSink(NewWithLevelVar(slog.New(h), &lv)).
		WithThreshold(cfg.Threshold).
		WithMaxLine(cfg.MaxLine).
		Build()
	mlog.SetDefault(l)
	return l
}
