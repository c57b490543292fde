package logger

import (
	"context"
	"log/slog"

	"github.com/tvanholt/consolog/core"
)

// SlogHandler adapts a consolog Logger to stdlib log/slog, so
// slog-based code can write through the console sink.
//
// Open groups scope only the attrs added after them: attrs carried
// via WithAttrs before a WithGroup render at their own depth, record
// attrs render inside all open groups, and the message always stays
// at top level.
type SlogHandler struct {
	logger *Logger
	// groups holds the open group names, outermost first. attrs[i]
	// holds the pairs added while i groups were open, so
	// len(attrs) == len(groups)+1 always.
	groups []string
	attrs  [][]core.Pair
}

// NewSlogHandler creates a slog.Handler writing through l
func NewSlogHandler(l *Logger) *SlogHandler {
	return &SlogHandler{logger: l, attrs: make([][]core.Pair, 1)}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.logger.IsEnabled(slogLevelToCore(level))
}

// Handle converts the record to a structured value set and logs it.
// Group structure survives into the rendered block as nested sets
// instead of being flattened into dotted keys. A group with nothing
// under it is elided.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	depth := len(s.groups)
	inner := make([]core.Pair, 0, len(s.attrs[depth])+record.NumAttrs())
	inner = append(inner, s.attrs[depth]...)
	record.Attrs(func(a slog.Attr) bool {
		inner = append(inner, slogAttrToPair(a))
		return true
	})

	// Fold each open group around the pairs scoped inside it,
	// innermost first, keeping that depth's own attrs beside the
	// group entry.
	for i := depth - 1; i >= 0; i-- {
		level := append([]core.Pair{}, s.attrs[i]...)
		if len(inner) > 0 {
			level = append(level, core.KV(s.groups[i], core.Nested(core.NewValues(inner...))))
		}
		inner = level
	}

	pairs := make([]core.Pair, 0, len(inner)+1)
	pairs = append(pairs, core.KV("message", core.String(record.Message)))
	pairs = append(pairs, inner...)

	return s.logger.Log(slogLevelToCore(record.Level), 0, core.NewValues(pairs...), nil, nil)
}

// WithAttrs returns a new SlogHandler with additional attributes,
// scoped to the currently open groups.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return s
	}
	n := s.clone()
	last := len(n.attrs) - 1
	seg := make([]core.Pair, len(n.attrs[last]), len(n.attrs[last])+len(attrs))
	copy(seg, n.attrs[last])
	for _, a := range attrs {
		seg = append(seg, slogAttrToPair(a))
	}
	n.attrs[last] = seg
	return n
}

// WithGroup returns a new SlogHandler with the given group opened.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	n := s.clone()
	n.groups = append(n.groups, name)
	n.attrs = append(n.attrs, nil)
	return n
}

// clone copies the handler's group and attr-segment slices so derived
// handlers never alias a sibling's state
func (s *SlogHandler) clone() *SlogHandler {
	groups := make([]string, len(s.groups))
	copy(groups, s.groups)
	attrs := make([][]core.Pair, len(s.attrs))
	copy(attrs, s.attrs)
	return &SlogHandler{logger: s.logger, groups: groups, attrs: attrs}
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarningLevel
	case level >= slog.LevelInfo:
		return core.InformationLevel
	default:
		return core.DebugLevel
	}
}

// slogAttrToPair converts a slog.Attr to a core.Pair. Group attrs
// become nested value sets.
func slogAttrToPair(a slog.Attr) core.Pair {
	a.Value = a.Value.Resolve()

	switch a.Value.Kind() {
	case slog.KindString:
		return core.KV(a.Key, core.String(a.Value.String()))
	case slog.KindInt64:
		return core.KV(a.Key, core.Int64(a.Value.Int64()))
	case slog.KindFloat64:
		return core.KV(a.Key, core.Float64(a.Value.Float64()))
	case slog.KindBool:
		return core.KV(a.Key, core.Bool(a.Value.Bool()))
	case slog.KindTime:
		return core.KV(a.Key, core.Time(a.Value.Time()))
	case slog.KindDuration:
		return core.KV(a.Key, core.Duration(a.Value.Duration()))
	case slog.KindGroup:
		attrs := a.Value.Group()
		pairs := make([]core.Pair, 0, len(attrs))
		for _, ga := range attrs {
			pairs = append(pairs, slogAttrToPair(ga))
		}
		return core.KV(a.Key, core.Nested(core.NewValues(pairs...)))
	default:
		return core.KV(a.Key, core.Any(a.Value.Any()))
	}
}
