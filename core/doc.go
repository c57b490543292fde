// Package core defines the shared types used across consolog.
//
// It provides the Level type for severity classification and the
// closed Value variant used for structured log payloads. A Value is
// exactly one of three kinds — Scalar, Sequence, or Nested — so the
// renderer dispatches on an explicit tag instead of inspecting types
// at runtime.
//
// Scalar encodes common types into fixed-size numeric slots (Int64,
// Float64) wherever possible so that ints, bools, times, and
// durations never escape to the heap. The Any slot exists as a
// fallback for arbitrary types but will cause an allocation.
//
// A structured payload is any value implementing ValueSet, an ordered
// key/value view. Values is the built-in implementation and preserves
// insertion order.
package core
