// Package logger is the public API of consolog. Most users only need
// to import this package.
//
// A Provider owns one sink and hands out category-bound Loggers:
//
//	p := logger.NewProvider(logger.Config{})
//	log := p.CreateLogger("app.server")
//	log.Info("listening", logger.Int("port", 8080))
//
// A Logger is immutable after construction — category, handler, and
// filter are set once — so it is safe for concurrent use without any
// locking on the read path. Serialization of the actual writes lives
// in the handler.
//
// Filtering is an injected predicate over (category, level). It runs
// before any rendering work, so a disabled call costs one function
// call and nothing else. Calls that resolve to an empty message are
// suppressed the same way.
//
// Structured payloads are built from pair helpers (String, Int,
// Group, List, ...) and render as indented blocks under the log line.
// BeginScope exists to satisfy the scope contract of the interface
// and is deliberately inert: it returns a handle whose Close does
// nothing.
//
// NewSlogHandler adapts a Logger to stdlib log/slog, so consolog can
// sit behind slog-based code. Slog groups map onto nested value sets.
package logger
