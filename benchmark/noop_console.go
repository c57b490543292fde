package benchmark

import (
	"github.com/fatih/color"

	"github.com/tvanholt/consolog/console"
)

// noopConsole discards everything and never fails
type noopConsole struct{}

func newNoopConsole() console.Console {
	return &noopConsole{}
}

func (c *noopConsole) WriteLine(text string) error {
	_ = len(text)
	return nil
}

func (c *noopConsole) SetForegroundColor(color.Attribute) {}

func (c *noopConsole) SetBackgroundColor(color.Attribute) {}

func (c *noopConsole) ResetColor() {}
