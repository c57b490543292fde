package logger

import (
	"io"

	"github.com/tvanholt/consolog/core"
	"github.com/tvanholt/consolog/formatter"
	"github.com/tvanholt/consolog/handler"
)

// Filter decides whether a level is active for a category. A nil
// Filter enables everything.
type Filter func(category string, level core.Level) bool

// Logger is a category-bound logger (immutable)
type Logger struct {
	category string
	handler  handler.Handler
	filter   Filter
}

// Log logs one entry. The enablement check runs first so disabled
// calls do no rendering work; calls whose resolved message is empty
// are suppressed the same way. A write failure from the sink is
// returned unmodified.
//
// The event id identifies the call site for filters and hooks layered
// above this package; it is not part of the rendered line.
func (l *Logger) Log(level core.Level, eventID int, state interface{}, err error, format formatter.FormatFunc) error {
	if !l.IsEnabled(level) {
		return nil
	}

	message := formatter.ResolveMessage(state, err, format)
	if message == "" {
		return nil
	}

	return l.handler.Write(level, l.category, message, state)
}

// IsEnabled reports whether the level is active for this logger's
// category
func (l *Logger) IsEnabled(level core.Level) bool {
	if l.filter == nil {
		return true
	}
	return l.filter(l.category, level)
}

// BeginScope returns an inert scope handle. Scoping is part of the
// logger contract but carries no behavior here: the handle's Close is
// a no-op.
func (l *Logger) BeginScope(state interface{}) io.Closer {
	return noopScope{}
}

type noopScope struct{}

func (noopScope) Close() error { return nil }

// Debug logs a debug message
func (l *Logger) Debug(msg string, pairs ...core.Pair) error {
	return l.log(core.DebugLevel, msg, pairs)
}

// Verbose logs a verbose message
func (l *Logger) Verbose(msg string, pairs ...core.Pair) error {
	return l.log(core.VerboseLevel, msg, pairs)
}

// Info logs an informational message
func (l *Logger) Info(msg string, pairs ...core.Pair) error {
	return l.log(core.InformationLevel, msg, pairs)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, pairs ...core.Pair) error {
	return l.log(core.WarningLevel, msg, pairs)
}

// Error logs an error message
func (l *Logger) Error(msg string, pairs ...core.Pair) error {
	return l.log(core.ErrorLevel, msg, pairs)
}

// Critical logs a critical message
func (l *Logger) Critical(msg string, pairs ...core.Pair) error {
	return l.log(core.CriticalLevel, msg, pairs)
}

func (l *Logger) log(level core.Level, msg string, pairs []core.Pair) error {
	// Level check before building the payload
	if !l.IsEnabled(level) {
		return nil
	}
	if len(pairs) == 0 {
		return l.Log(level, 0, msg, nil, nil)
	}

	set := core.NewValues(append([]core.Pair{core.KV("message", core.String(msg))}, pairs...)...)
	return l.Log(level, 0, set, nil, nil)
}
