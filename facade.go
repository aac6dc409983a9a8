package mlog

// Facade helpers delegating to the default logger.
// Usage: mlog.SetSink(...); mlog.Infof("x=%d", 5)

func SetThreshold(level Level) { Default().SetThreshold(level) }
func Threshold() Level         { return Default().Threshold() }
func SetSink(s Sink)           { Default().SetSink(s) }

func Logf(level Level, format string, args ...any) int {
	return Default().Logf(level, format, args...)
}

func Errorf(format string, args ...any) int { return Default().Errorf(format, args...) }
func Warnf(format string, args ...any) int  { return Default().Warnf(format, args...) }
func Infof(format string, args ...any) int  { return Default().Infof(format, args...) }
func Debugf(format string, args ...any) int { return Default().Debugf(format, args...) }
func Tracef(format string, args ...any) int { return Default().Tracef(format, args...) }
