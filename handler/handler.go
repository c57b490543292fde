package handler

import (
	"github.com/tvanholt/consolog/console"
	"github.com/tvanholt/consolog/core"
)

// Handler writes one resolved log entry to its target. The message
// has already been resolved by the caller; state is the original
// payload, passed through for write hooks.
type Handler interface {
	// Write writes one rendered log line
	Write(level core.Level, category, message string, state interface{}) error
}

// WriteHook is invoked inside the handler's lock after colors are
// applied and before the line is written. It may annotate or redirect
// output through the given target.
type WriteHook func(state interface{}, level core.Level, target console.Console)
