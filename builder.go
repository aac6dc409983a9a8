package mlog

// Config for constructing a Logger (Factory data structure).
type Config struct {
	Threshold    Level
	Sink         Sink // nil disables delivery
	MaxLine      int  // > 0 caps delivered text length (bytes, rune-safe); 0 = unlimited
	ErrorHandler ErrorHandler
	Observers    []Observer
}

// Builder separates construction from representation (Builder pattern).
type Builder struct {
	cfg Config
}

func NewBuilder() *Builder {
	return &Builder{cfg: Config{Threshold: DefaultThreshold}}
}

func (b *Builder) WithThreshold(level Level) *Builder {
	b.cfg.Threshold = level
	return b
}

func (b *Builder) WithSink(s Sink) *Builder {
	b.cfg.Sink = s
	return b
}

func (b *Builder) WithMaxLine(n int) *Builder {
	b.cfg.MaxLine = n
	return b
}

func (b *Builder) WithErrorHandler(h ErrorHandler) *Builder {
	b.cfg.ErrorHandler = h
	return b
}

func (b *Builder) AddObserver(o Observer) *Builder {
	b.cfg.Observers = append(b.cfg.Observers, o)
	return b
}

// Build constructs the Logger. A nil sink is a valid configuration (records
// are rendered but not delivered), so construction cannot fail.
func (b *Builder) Build() *Logger {
	return newLogger(b.cfg)
}
