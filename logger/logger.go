// Package logger provides the leveled logger behind deckplay's -debug
// flag. The default sink is io.Discard: while a presentation runs,
// tcell owns the terminal and any write to stdout would corrupt the
// screen, so messages only go somewhere when a log file is configured.
package logger

import (
	"io"
	"log"
)

// Level gates which messages reach the sink. A logger at LevelDebug
// passes Info and Debug; Trace needs LevelTrace.
type Level int

const (
	LevelInfo Level = iota
	LevelDebug
	LevelTrace
)

// String returns the tag written before each message at this level.
func (lv Level) String() string {
	switch lv {
	case LevelDebug:
		return "DEBUG"
	case LevelTrace:
		return "TRACE"
	default:
		return "INFO"
	}
}

// Logger writes leveled printf-style messages to one sink.
type Logger struct {
	out   *log.Logger
	level Level
}

// Option configures a Logger at construction.
type Option func(*Logger)

// WithOutput directs messages to w instead of discarding them.
func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		l.out = log.New(w, l.out.Prefix(), l.out.Flags())
	}
}

// WithFlags replaces the standard log flags, mainly so tests can drop
// timestamps.
func WithFlags(flags int) Option {
	return func(l *Logger) {
		l.out = log.New(l.out.Writer(), l.out.Prefix(), flags)
	}
}

// WithLevel sets the initial gate.
func WithLevel(lv Level) Option {
	return func(l *Logger) {
		l.level = lv
	}
}

// New builds a logger. Without options it discards everything, which
// is the right behavior for an app that owns the terminal.
func New(options ...Option) *Logger {
	l := &Logger{
		out:   log.New(io.Discard, "", log.LstdFlags),
		level: LevelInfo,
	}
	for _, opt := range options {
		opt(l)
	}
	return l
}

// SetLevel changes the gate at runtime.
func (l *Logger) SetLevel(lv Level) {
	l.level = lv
}

// Info logs unconditionally. Startup, shutdown, and degradations.
func (l *Logger) Info(format string, args ...any) {
	l.logf(LevelInfo, format, args...)
}

// Debug logs state changes worth seeing while diagnosing a session.
func (l *Logger) Debug(format string, args ...any) {
	l.logf(LevelDebug, format, args...)
}

// Trace logs per-event noise such as dropped state frames.
func (l *Logger) Trace(format string, args ...any) {
	l.logf(LevelTrace, format, args...)
}

func (l *Logger) logf(lv Level, format string, args ...any) {
	if lv > l.level {
		return
	}
	l.out.Printf(lv.String()+": "+format, args...)
}
