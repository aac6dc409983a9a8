package zerolog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/shunby/mlog"
)

// Config is an explicit, code-first configuration for zerolog + mlog.
// No envs, no hidden init, one call to Use.
type Config struct {
	Writer            io.Writer // default: os.Stdout
	Threshold         mlog.Level
	Console           bool   // pretty console output instead of JSON
	ConsoleTimeFormat string // only used if Console==true; default time.RFC3339Nano
	MaxLine           int    // passed through to mlog
}

// Use builds a zerolog-backed mlog logger from Config, sets it as the
// process default, and returns it.
func Use(cfg Config) *mlog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}

	var zl zerolog.Logger
	if cfg.Console {
		cw := zerolog.ConsoleWriter{Out: w}
		if cfg.ConsoleTimeFormat == "" {
			cw.TimeFormat = time.RFC3339Nano
		} else {
			cw.TimeFormat = cfg.ConsoleTimeFormat
		}
		zl = zerolog.New(cw)
	} else {
		zl = zerolog.New(w)
	}
	zl = zl.Level(mapLevel(cfg.Threshold))

	l := mlog.NewBuilder().
		WithSink(New(zl)).
		WithThreshold(cfg.Threshold).
		WithMaxLine(cfg.MaxLine).
		Build()
	mlog.SetDefault(l)
	return l
}
