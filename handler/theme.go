package handler

import (
	"github.com/fatih/color"

	"github.com/tvanholt/consolog/console"
	"github.com/tvanholt/consolog/core"
)

// LevelColors is the color assignment for one level. A zero attribute
// leaves the corresponding terminal color untouched.
type LevelColors struct {
	Foreground color.Attribute
	Background color.Attribute
}

// Theme maps levels to their colors. Levels missing from the theme
// fall back to a gray foreground.
type Theme map[core.Level]LevelColors

// DefaultTheme returns the default per-level colors: critical is
// white on red, errors are red, warnings yellow, informational
// messages white, and debug/verbose gray.
func DefaultTheme() Theme {
	return Theme{
		core.CriticalLevel:    {Foreground: console.White, Background: console.RedBg},
		core.ErrorLevel:       {Foreground: console.Red},
		core.WarningLevel:     {Foreground: console.Yellow},
		core.InformationLevel: {Foreground: console.White},
		core.VerboseLevel:     {Foreground: console.Gray},
		core.DebugLevel:       {Foreground: console.Gray},
	}
}

// colors returns the theme's assignment for level, with the gray
// fallback for unrecognized levels
func (t Theme) colors(level core.Level) LevelColors {
	if c, ok := t[level]; ok {
		return c
	}
	return LevelColors{Foreground: console.Gray}
}

// clone copies a theme so handler snapshots are never shared with
// callers
func (t Theme) clone() Theme {
	out := make(Theme, len(t))
	for level, c := range t {
		out[level] = c
	}
	return out
}
