package logger

import (
	"time"

	"github.com/tvanholt/consolog/core"
)

// Pair helper functions for convenience

// String creates a string pair
func String(key, val string) core.Pair {
	return core.KV(key, core.String(val))
}

// Int creates an int pair
func Int(key string, val int) core.Pair {
	return core.KV(key, core.Int(val))
}

// Int64 creates an int64 pair
func Int64(key string, val int64) core.Pair {
	return core.KV(key, core.Int64(val))
}

// Float64 creates a float64 pair
func Float64(key string, val float64) core.Pair {
	return core.KV(key, core.Float64(val))
}

// Bool creates a bool pair
func Bool(key string, val bool) core.Pair {
	return core.KV(key, core.Bool(val))
}

// Time creates a time pair
func Time(key string, val time.Time) core.Pair {
	return core.KV(key, core.Time(val))
}

// Duration creates a duration pair
func Duration(key string, val time.Duration) core.Pair {
	return core.KV(key, core.Duration(val))
}

// Err creates an error pair
func Err(err error) core.Pair {
	return core.KV("error", core.Err(err))
}

// Any creates a pair with any value
func Any(key string, val interface{}) core.Pair {
	return core.KV(key, core.Any(val))
}

// Group creates a nested pair from child pairs
func Group(key string, pairs ...core.Pair) core.Pair {
	return core.KV(key, core.Nested(core.NewValues(pairs...)))
}

// List creates a sequence pair
func List(key string, elems ...core.Value) core.Pair {
	return core.KV(key, core.Seq(elems...))
}
