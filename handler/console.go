package handler

import (
	"sync"

	"github.com/tvanholt/consolog/console"
	"github.com/tvanholt/consolog/core"
	"github.com/tvanholt/consolog/formatter"
)

// ConsoleHandler writes colored log lines to a console target. One
// mutex per instance serializes the full color-write-reset sequence;
// the lock is deliberately per-handler, never process-wide, so
// independent handlers do not contend.
type ConsoleHandler struct {
	target console.Console
	hook   WriteHook

	mu    sync.Mutex
	theme Theme
}

// ConsoleConfig holds configuration for the console handler
type ConsoleConfig struct {
	// Target to write to (default: console.NewStdout())
	Target console.Console
	// Theme maps levels to colors (default: DefaultTheme())
	Theme Theme
	// OnWrite, if set, runs inside the lock before each line write
	OnWrite WriteHook
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	if cfg.Target == nil {
		cfg.Target = console.NewStdout()
	}
	if cfg.Theme == nil {
		cfg.Theme = DefaultTheme()
	}

	return &ConsoleHandler{
		target: cfg.Target,
		hook:   cfg.OnWrite,
		theme:  cfg.Theme.clone(),
	}
}

// SetTheme replaces the handler's color theme with a copy of t.
// Writes in progress finish under the old theme.
func (h *ConsoleHandler) SetTheme(t Theme) {
	if t == nil {
		t = DefaultTheme()
	}
	snapshot := t.clone()
	h.mu.Lock()
	h.theme = snapshot
	h.mu.Unlock()
}

// Write writes one line under the handler's lock: set the level's
// colors, run the hook, write, and reset colors. The reset runs even
// when the write fails; the write error is then returned unmodified.
func (h *ConsoleHandler) Write(level core.Level, category, message string, state interface{}) error {
	line := formatter.Line(level, category, message)

	h.mu.Lock()
	defer h.mu.Unlock()

	colors := h.theme.colors(level)
	if colors.Foreground != 0 {
		h.target.SetForegroundColor(colors.Foreground)
	}
	if colors.Background != 0 {
		h.target.SetBackgroundColor(colors.Background)
	}
	defer h.target.ResetColor()

	if h.hook != nil {
		h.hook(state, level, h.target)
	}

	return h.target.WriteLine(line)
}
