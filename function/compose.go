package function

import "math"

// ChargeCompose computes h(x) = min_{δ≤x} g(x-δ, f(δ)) for f the tradeoff
// function on arrival at a charger and g the charger's own precomputed
// remaining-consumption curve (spec §4.1.3): charger.BuildDeficitCurve folds
// the station's charging-rate curve and the vehicle's capacity into exactly
// such a decreasing piecewise-linear g ahead of time.
//
// Unlike Link, which has a closed-form split for any single pair of
// pieces, ChargeCompose follows the source's per-piece candidate-and-lower-
// envelope strategy: g's own piece count can be large (it mirrors the
// station's measured charging curve), so a candidate curve is generated
// for every (f-piece, g-piece) pairing whose interior stationary point is
// feasible, plus one "corner" candidate per f-piece boundary (where f's
// derivative jumps and the true optimum can sit exactly at the break
// rather than inside any single g segment), and the final answer is their
// LowerEnvelope — spec §4.1.3's full candidate-and-envelope search, not a
// single matched segment per f-piece.
func ChargeCompose(f Piecewise, g Piecewise) (Piecewise, error) {
	if len(f.Pieces) == 0 || len(g.Pieces) == 0 {
		return Piecewise{}, ErrEmptyPiecewise
	}

	candidates := chargeComposeCandidates(f, g)
	if len(candidates) == 0 {
		return Piecewise{}, ErrInfeasible
	}
	curves := make([]Piecewise, len(candidates))
	for i, c := range candidates {
		curves[i] = c.curve
	}
	return LowerEnvelope(curves), nil
}

// ChargeComposeDelta recovers the charging-stop instant δ that produced
// ChargeCompose's result at a known total x (spec §4.3's per-hop path
// reconstruction): the same per-(F-piece, G-piece) and corner candidate
// search as ChargeCompose, returning whichever candidate curve is the
// lower envelope's actual winner at x.
func ChargeComposeDelta(f Piecewise, g Piecewise, x float64) (float64, bool) {
	if len(f.Pieces) == 0 || len(g.Pieces) == 0 {
		return 0, false
	}

	bestDelta := 0.0
	bestCost := math.Inf(1)
	found := false
	for _, c := range chargeComposeCandidates(f, g) {
		if len(c.curve.Pieces) == 0 {
			continue
		}
		if x < c.curve.MinX()-linkEps || x > c.curve.MaxX()+linkEps {
			continue
		}
		cost := c.curve.Value(x)
		if cost < bestCost {
			bestCost = cost
			bestDelta = c.delta
			found = true
		}
	}
	return bestDelta, found
}

type chargeComposeCandidate struct {
	delta float64
	curve Piecewise
}

// chargeComposeCandidates builds the full candidate set ChargeCompose takes
// the lower envelope of: one curve per feasible (F-piece, G-piece) interior
// stationary point, plus one per F-piece's own left-boundary corner.
func chargeComposeCandidates(f Piecewise, g Piecewise) []chargeComposeCandidate {
	var candidates []chargeComposeCandidate
	for _, sub := range f.Pieces {
		for _, subG := range g.Pieces {
			if delta, ok := composeDelta(sub, subG); ok {
				candidates = append(candidates, chargeComposeCandidate{delta, composeAt(delta, sub.F, g)})
			}
		}
		if delta, ok := cornerDelta(sub, g); ok {
			candidates = append(candidates, chargeComposeCandidate{delta, composeAt(delta, sub.F, g)})
		}
	}
	return candidates
}

// cornerDelta tests the candidate δ = sub.MinX: charging starting exactly
// at this piece of f's own left boundary, the point where f's derivative
// jumps relative to the previous piece and composeDelta's interior
// stationary point (computed against a single g segment) may not fall
// inside any g segment's feasible y-range at all.
func cornerDelta(sub Limited, g Piecewise) (float64, bool) {
	y := sub.Value(sub.MinX)
	if _, ok := g.Inverse(y); !ok {
		return 0, false
	}
	return sub.MinX, true
}

// composeDelta finds the candidate charger arrival instant within sub (a
// piece of f) whose interior stationary point falls within subG's own
// feasible y-range, mirroring the source's compose_minimal case split on
// sub's shape. Called once per (f-piece, g-piece) pair by
// chargeComposeCandidates; not every pair yields a feasible candidate.
func composeDelta(sub Limited, subG Limited) (float64, bool) {
	gl := toLinear(subG.F, subG.MinX)
	if gl.D > sub.Deriv(sub.MinX) {
		return 0, false
	}
	minY, maxY := subG.MinY(), subG.MaxY()

	if sub.IsDegenerate() {
		y := sub.Value(sub.MinX)
		if minY < y {
			return sub.MinX, true
		}
		return 0, false
	}

	switch v := sub.F.(type) {
	case Linear:
		if v.D == 0 {
			return 0, false
		}
		minX := math.Max(sub.MinX, v.Inverse(maxY))
		maxX := math.Min(sub.MaxX, v.Inverse(minY))
		if minX <= maxX {
			return minX, true
		}
		return 0, false
	case Hyperbolic:
		if gl.D == 0 {
			return 0, false
		}
		deltaCandidate := v.B + math.Cbrt(-2*v.A/gl.D)
		if deltaCandidate < sub.MinX || deltaCandidate > sub.MaxX {
			return 0, false
		}
		yCandidate := v.Value(deltaCandidate)
		if minY <= yCandidate && maxY >= yCandidate {
			return deltaCandidate, true
		}
		return 0, false
	default:
		return 0, false
	}
}

// composeAt returns g's tail starting at whatever offset in g's own
// coordinate corresponds to already having used f(delta) energy by the
// time the vehicle reaches the charger, repositioned to start at x=delta
// (spec §4.1.3's compose_function).
func composeAt(delta float64, f Func, g Piecewise) Piecewise {
	y := f.Value(delta)
	xOffset, ok := g.Inverse(y)
	if !ok {
		return Piecewise{}
	}
	return g.ClipXFrom(xOffset).ShiftX(delta - xOffset)
}
