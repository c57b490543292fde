// Package console defines the narrow output-target capability a sink
// writes through: write one line, set foreground/background color,
// reset colors. Sinks depend only on this interface, never on a
// concrete terminal.
//
// ANSI is the built-in implementation. It identifies colors by
// fatih/color SGR attributes and writes the corresponding escape
// sequences around plain text. NewStdout and NewStderr wrap the
// process streams with mattn/go-colorable so escapes work on Windows,
// and enable color only when the stream is a terminal (mattn/go-isatty)
// and color is not globally disabled (color.NoColor, which honors
// NO_COLOR and TERM=dumb).
package console
