package function

import "math"

// CriticalPoint returns the x at which (lhs-rhs)'s curvature direction
// flips — for two Hyperbolic pieces this is the root of a cubic reduced to
// a single closed form (spec §4.1.4); for Hyperbolic/Linear it's the point
// where the hyperbola's slope matches the line's fixed slope; two Linear
// pieces never cross more than once and need no critical point (the
// caller falls back to comparing endpoints), so that case returns +Inf.
//
// xShift offsets rhs's own B parameter before computing the root, used by
// dominance checks that compare an x_epsilon-shifted copy of rhs against lhs.
func CriticalPoint(lhs, rhs Func, xShift float64) float64 {
	lh, lIsHyp := lhs.(Hyperbolic)
	rh, rIsHyp := rhs.(Hyperbolic)

	switch {
	case lIsHyp && rIsHyp:
		root := math.Cbrt(rh.A / lh.A)
		return ((rh.B + xShift) - root*lh.B) / (1.0 - root)
	case lIsHyp && !rIsHyp:
		return lh.InverseDeriv(toLinear(rhs, 0).D)
	case !lIsHyp && rIsHyp:
		return CriticalPoint(rhs, lhs, 0) + xShift
	default:
		return math.Inf(1)
	}
}
