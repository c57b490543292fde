package core

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind tags the variant held by a Value. The set of representable
// kinds is closed: a value is a scalar, a sequence of values, or a
// nested value set.
type Kind uint8

const (
	// ScalarKind holds a single scalar value
	ScalarKind Kind = iota
	// SequenceKind holds an ordered list of values
	SequenceKind
	// NestedKind holds a nested value set
	NestedKind
)

// ScalarType represents the type of a scalar value
type ScalarType uint8

const (
	StringType ScalarType = iota
	IntType
	Int64Type
	Float64Type
	BoolType
	TimeType
	DurationType
	ErrorType
	AnyType
)

// Scalar is a single typed value. Common types are encoded into the
// fixed-size numeric slots; Any is the fallback for arbitrary types.
type Scalar struct {
	Type    ScalarType
	Int64   int64
	Float64 float64
	Str     string
	Any     interface{}
}

// String returns the textual representation of the scalar
func (s Scalar) String() string {
	switch s.Type {
	case StringType:
		return s.Str
	case IntType, Int64Type:
		return strconv.FormatInt(s.Int64, 10)
	case Float64Type:
		return strconv.FormatFloat(s.Float64, 'f', -1, 64)
	case BoolType:
		return strconv.FormatBool(s.Int64 == 1)
	case TimeType:
		return time.Unix(0, s.Int64).Format(time.RFC3339)
	case DurationType:
		return time.Duration(s.Int64).String()
	case ErrorType:
		return s.Str
	case AnyType:
		return fmt.Sprintf("%v", s.Any)
	default:
		return ""
	}
}

// Value is one payload value: exactly one of the three kinds is
// meaningful, selected by Kind.
type Value struct {
	Kind   Kind
	Scalar Scalar
	Seq    []Value
	Nested ValueSet
}

// Text returns the inline textual representation of the value. For
// sequences this is a bracketed space-joined form; the renderer only
// falls back to it for a sequence nested inside another sequence.
func (v Value) Text() string {
	switch v.Kind {
	case SequenceKind:
		parts := make([]string, len(v.Seq))
		for i, el := range v.Seq {
			parts[i] = el.Text()
		}
		return "[" + strings.Join(parts, " ") + "]"
	case NestedKind:
		return fmt.Sprintf("%v", v.Nested)
	default:
		return v.Scalar.String()
	}
}

// Pair is one ordered key/value entry of a structured payload.
type Pair struct {
	Key   string
	Value Value
}

// KV creates a pair from a key and a value
func KV(key string, value Value) Pair {
	return Pair{Key: key, Value: value}
}

// ValueSet is the capability a structured payload must provide: an
// ordered view of its key/value pairs. A nil or empty set renders
// nothing.
type ValueSet interface {
	Pairs() []Pair
}

// Values is the built-in ValueSet. Entries keep insertion order.
type Values struct {
	pairs []Pair
}

// NewValues creates a value set from the given pairs
func NewValues(pairs ...Pair) *Values {
	return &Values{pairs: pairs}
}

// Append adds a pair and returns the set for chaining
func (v *Values) Append(key string, value Value) *Values {
	v.pairs = append(v.pairs, Pair{Key: key, Value: value})
	return v
}

// Pairs returns the entries in insertion order. A nil receiver has no
// entries.
func (v *Values) Pairs() []Pair {
	if v == nil {
		return nil
	}
	return v.pairs
}

// Len returns the number of entries
func (v *Values) Len() int {
	if v == nil {
		return 0
	}
	return len(v.pairs)
}

// Scalar value constructors

// String creates a string value
func String(v string) Value {
	return Value{Scalar: Scalar{Type: StringType, Str: v}}
}

// Int creates an int value
func Int(v int) Value {
	return Value{Scalar: Scalar{Type: IntType, Int64: int64(v)}}
}

// Int64 creates an int64 value
func Int64(v int64) Value {
	return Value{Scalar: Scalar{Type: Int64Type, Int64: v}}
}

// Float64 creates a float64 value
func Float64(v float64) Value {
	return Value{Scalar: Scalar{Type: Float64Type, Float64: v}}
}

// Bool creates a bool value
func Bool(v bool) Value {
	int64Val := int64(0)
	if v {
		int64Val = 1
	}
	return Value{Scalar: Scalar{Type: BoolType, Int64: int64Val}}
}

// Time creates a time value
func Time(v time.Time) Value {
	return Value{Scalar: Scalar{Type: TimeType, Int64: v.UnixNano()}}
}

// Duration creates a duration value
func Duration(v time.Duration) Value {
	return Value{Scalar: Scalar{Type: DurationType, Int64: int64(v)}}
}

// Err creates an error value
func Err(err error) Value {
	if err == nil {
		return Value{Scalar: Scalar{Type: ErrorType, Str: ""}}
	}
	return Value{Scalar: Scalar{Type: ErrorType, Str: err.Error()}}
}

// Any creates a value with any scalar
func Any(v interface{}) Value {
	return Value{Scalar: Scalar{Type: AnyType, Any: v}}
}

// Seq creates a sequence value
func Seq(elems ...Value) Value {
	return Value{Kind: SequenceKind, Seq: elems}
}

// Nested creates a nested value from a value set
func Nested(set ValueSet) Value {
	return Value{Kind: NestedKind, Nested: set}
}
