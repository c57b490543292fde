package formatter

import (
	"bytes"
	"fmt"

	"github.com/tvanholt/consolog/core"
)

// FormatFunc resolves a log call's state and optional error into the
// final message. A non-nil FormatFunc overrides all built-in
// resolution; its result is used verbatim.
type FormatFunc func(state interface{}, err error) string

// ResolveMessage resolves the message for a log call.
//
// Priority order: a caller-supplied format function, then structured
// rendering for states implementing core.ValueSet, then the state's
// plain textual form. In the two built-in paths a non-nil error is
// appended after a newline. An empty result means the caller must
// suppress the write entirely.
func ResolveMessage(state interface{}, err error, format FormatFunc) string {
	if format != nil {
		return format(state, err)
	}

	if set, ok := state.(core.ValueSet); ok {
		buf := getBuffer()
		AppendValues(buf, set, 1, false)
		if err != nil {
			buf.WriteByte('\n')
			buf.WriteString(err.Error())
		}
		msg := buf.String()
		putBuffer(buf)
		return msg
	}

	msg := stateText(state)
	if err != nil {
		msg = msg + "\n" + err.Error()
	}
	return msg
}

func stateText(state interface{}) string {
	switch s := state.(type) {
	case nil:
		return ""
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprintf("%v", s)
	}
}

// AppendLine assembles a rendered log line into buf:
// "<label>: [<category>] <message>". The label is the level's fixed
// 8-character token. No trailing newline is written; the output
// target owns line termination.
func AppendLine(buf *bytes.Buffer, level core.Level, category, message string) {
	buf.WriteString(level.Label())
	buf.WriteString(": [")
	buf.WriteString(category)
	buf.WriteString("] ")
	buf.WriteString(message)
}

// Line is a convenience wrapper around AppendLine returning a string
func Line(level core.Level, category, message string) string {
	buf := getBuffer()
	AppendLine(buf, level, category, message)
	line := buf.String()
	putBuffer(buf)
	return line
}
