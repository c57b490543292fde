// Package handler contains the sinks that write resolved log lines.
//
// ConsoleHandler is the colored console sink. Each instance owns a
// sync.Mutex that serializes the color-set, hook, write, color-reset
// sequence, so concurrent loggers sharing one handler never tear each
// other's colored lines. The color reset runs on every completed
// write, including failed ones; the write error then propagates to
// the caller unmodified.
//
// Colors come from an immutable Theme snapshot: the map is copied at
// construction and again by SetTheme, and the handler never hands out
// its internal copy, so no caller can mutate coloring mid-write.
//
// DebugHandler is the trivial uncolored sink for debug output
// streams. Both handlers implement the Handler interface consumed by
// the logger package.
package handler
