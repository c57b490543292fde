// Package formatter turns log payloads into the text a sink writes.
//
// Three layers build on each other. AppendValues renders a structured
// value set into an indented multi-line block, recursing through
// nested sets and sequences. ResolveMessage picks the message for a
// log call: a caller-supplied format function wins, structured
// payloads go through AppendValues, and anything else falls back to
// its plain textual form, with an optional error appended on its own
// line. AppendLine assembles the final "<label>: [<category>] <msg>"
// line from a resolved message.
//
// All three append into a bytes.Buffer. The package keeps a buffer
// pool (pre-grown to 256 bytes, buffers above 64 KiB are not
// returned) so the hot path does not allocate per call.
package formatter
