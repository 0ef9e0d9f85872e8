package evgraph

import "math"

// R is the fixed-point scale applied to every time/consumption value
// before it is stored in a derived graph's integer weight arrays: a
// floating-point unit of time or energy x is represented as
// round(x * R). Search-time arithmetic on scalar graphs therefore stays
// in exact integers, only converting back to float64 when evaluating a
// function.Piecewise tradeoff curve.
const R = 1000

// Inf is the sentinel "unreachable" scalar weight, chosen so that summing
// a handful of Inf values never overflows int32 (spec's INT32_MAX/2).
const Inf int32 = math.MaxInt32 / 2

// Invalid is the sentinel node/edge index meaning "no such node/edge".
// Nothing in this module references it; label.NoEdge has the same value.
const Invalid uint32 = 0xFFFFFFFF

// ToFixed converts a floating-point time or energy value to the fixed-point
// integer representation used by scalar derived graphs.
func ToFixed(x float64) int32 {
	return int32(math.Round(x * R))
}

// FromFixed converts a fixed-point integer back to floating point.
func FromFixed(x int32) float64 {
	return float64(x) / R
}
