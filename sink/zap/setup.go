package zap

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/shunby/mlog"
)

// Config is an explicit, code-first configuration for zap + mlog.
type Config struct {
	Writer    io.Writer // default: os.Stdout
	Threshold mlog.Level
	Console   bool // console encoder instead of JSON
	MaxLine   int  // passed through to mlog
}

// Use builds a zap-backed mlog logger from Config, sets it as the process
// default, and returns it. The zap.AtomicLevel is wired so later
// SetThreshold calls reach the backend too.
func Use(cfg Config) *mlog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}

	al := zap.NewAtomicLevelAt(toZapLevel(cfg.Threshold))

	encCfg := zap.NewProductionEncoderConfig()
	var enc zapcore.Encoder
	if cfg.Console {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(w), &al)

	l := mlog.NewBuilder().
		WithSink(NewWithAtomicLevel(zap.New(core), &al)).
		WithThreshold(cfg.Threshold).
		WithMaxLine(cfg.MaxLine).
		Build()
	mlog.SetDefault(l)
	return l
}
