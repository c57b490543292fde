package console

import (
	"github.com/fatih/color"
)

// Console is the capability set a sink needs from its output target.
// Implementations must tolerate interleaved color and write calls
// from a single goroutine; serialization across goroutines is the
// sink's job, not the console's.
type Console interface {
	// WriteLine writes text followed by a line terminator
	WriteLine(text string) error

	// SetForegroundColor switches the foreground color for
	// subsequent writes
	SetForegroundColor(c color.Attribute)

	// SetBackgroundColor switches the background color for
	// subsequent writes
	SetBackgroundColor(c color.Attribute)

	// ResetColor restores the target's default colors
	ResetColor()
}

// Terminal color names used by the default theme. The original
// console palette maps gray to standard white and white to
// high-intensity white.
const (
	Gray   = color.FgWhite
	White  = color.FgHiWhite
	Red    = color.FgRed
	Yellow = color.FgYellow
	RedBg  = color.BgRed
)
