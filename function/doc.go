// Package function implements the tradeoff-function algebra that underlies
// chargepath's label-setting search: limited, piecewise convex
// monotone-decreasing functions of travel time, and the operations the
// search performs on them.
//
// A Func is one of three disjoint shapes:
//
//   - Hyperbolic{A, B, C}: f(x) = A/(x-B)^2 + C, monotone decreasing for x>B.
//   - Linear{D, B, C}:     f(x) = D*(x-B) + C, D<=0.
//   - Constant{C}:         f(x) = C.
//
// A Limited pins a Func to an x-range [MinX, MaxX]; outside that range the
// value is +Inf below MinX and F(MaxX) above MaxX (modelling "cannot go
// faster than MinX; no extra benefit from going slower than MaxX"). A
// Piecewise is an ordered, contiguous, non-overlapping sequence of Limited
// functions that together form a single convex, monotone-decreasing curve:
// the lower envelope of its pieces.
//
// Link combines two edge functions sequentially, optimising over the split
// of time between them. ChargeCompose inserts an optimal charging stop.
// Dominates/ClipDominated implement the epsilon-tolerant partial order that
// the label container uses to discard labels no better than one already
// known. LowerEnvelope reduces a set of possibly-overlapping candidate
// pieces to a single convex piecewise function.
//
// Floating point tolerance throughout this package follows spec epsilons:
// 1e-4 for x-coordinates (link, dominance), 1e-2 for derivative continuity
// at piece boundaries (convexity), 1e-3*max(1,|x|) for inverse round trips.
package function
