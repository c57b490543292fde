package logger

import (
	"io"

	"github.com/tvanholt/consolog/console"
	"github.com/tvanholt/consolog/core"
	"github.com/tvanholt/consolog/handler"
)

// Config holds configuration for a console provider
type Config struct {
	// Target to write to (default: console.NewStdout())
	Target console.Console
	// Filter decides per-category level enablement (default: all
	// levels enabled)
	Filter Filter
	// Theme maps levels to colors (default: handler.DefaultTheme())
	Theme handler.Theme
	// OnWrite, if set, runs inside the sink's lock before each line
	OnWrite handler.WriteHook
}

// Provider creates category-bound loggers sharing one console sink.
type Provider struct {
	handler handler.Handler
	filter  Filter
}

// NewProvider creates a console logger provider
func NewProvider(cfg Config) *Provider {
	h := handler.NewConsoleHandler(handler.ConsoleConfig{
		Target:  cfg.Target,
		Theme:   cfg.Theme,
		OnWrite: cfg.OnWrite,
	})
	return &Provider{handler: h, filter: cfg.Filter}
}

// NewDebugProvider creates a provider writing uncolored lines to a
// debug output stream (default: os.Stderr)
func NewDebugProvider(w io.Writer, filter Filter) *Provider {
	return &Provider{handler: handler.NewDebugHandler(w), filter: filter}
}

// NewProviderWithHandler creates a provider around an existing sink
func NewProviderWithHandler(h handler.Handler, filter Filter) *Provider {
	return &Provider{handler: h, filter: filter}
}

// CreateLogger creates a logger bound to the category. The owning
// framework calls this once per distinct category; loggers share the
// provider's sink and its write lock.
func (p *Provider) CreateLogger(category string) *Logger {
	return &Logger{
		category: category,
		handler:  p.handler,
		filter:   p.filter,
	}
}

// MinimumLevel returns a filter enabling levels at or above min for
// every category
func MinimumLevel(min core.Level) Filter {
	return func(_ string, level core.Level) bool {
		return level >= min
	}
}
