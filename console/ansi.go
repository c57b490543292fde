package console

import (
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	colorable "github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// ANSI writes to an io.Writer using SGR escape sequences for color.
// With Colors false the color operations become no-ops and only plain
// text is written, so the same type serves pipes and files.
type ANSI struct {
	w      io.Writer
	colors bool
}

// NewANSI creates a console writing colored output to w
func NewANSI(w io.Writer) *ANSI {
	return &ANSI{w: w, colors: !color.NoColor}
}

// NewPlain creates a console writing uncolored output to w
func NewPlain(w io.Writer) *ANSI {
	return &ANSI{w: w}
}

// NewStdout creates a console on standard output. Color is enabled
// only when stdout is a terminal and color is not globally disabled.
func NewStdout() *ANSI {
	return wrapFile(os.Stdout)
}

// NewStderr creates a console on standard error with the same color
// detection as NewStdout.
func NewStderr() *ANSI {
	return wrapFile(os.Stderr)
}

func wrapFile(f *os.File) *ANSI {
	tty := isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	return &ANSI{
		w:      colorable.NewColorable(f),
		colors: tty && !color.NoColor,
	}
}

// WriteLine writes text plus a newline. The error from the underlying
// writer is returned unmodified.
func (c *ANSI) WriteLine(text string) error {
	if _, err := io.WriteString(c.w, text); err != nil {
		return err
	}
	_, err := c.w.Write([]byte{'\n'})
	return err
}

// SetForegroundColor writes the SGR sequence for the attribute
func (c *ANSI) SetForegroundColor(attr color.Attribute) {
	c.escape(attr)
}

// SetBackgroundColor writes the SGR sequence for the attribute
func (c *ANSI) SetBackgroundColor(attr color.Attribute) {
	c.escape(attr)
}

// ResetColor restores the terminal's default colors
func (c *ANSI) ResetColor() {
	c.escape(color.Reset)
}

func (c *ANSI) escape(attr color.Attribute) {
	if !c.colors {
		return
	}
	// Escape failures are ignored: the subsequent WriteLine on the
	// same writer reports the error to the caller.
	io.WriteString(c.w, "\x1b["+strconv.Itoa(int(attr))+"m")
}
