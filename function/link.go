package function

import "math"

// linkEps is the x-width tolerance below which a candidate sub-piece is
// dropped rather than emitted (spec §4.1.1: "emitted only if its x-interval
// has positive length under epsilon = 1e-4").
const linkEps = 1e-4

func epsilonLess(lhs, rhs float64) bool { return linkEps < rhs-lhs }

// combineFixed returns h(x) = fixed.Value(fixedAt) + varying(x-fixedAt): one
// side of a link is pinned at a constant split point while the other
// absorbs all of x's variability. This is the Go counterpart of the C++
// combine(f, g, ConstantFunction/ShiftFunction) overload set: every such
// overload reduces to "shift the varying function, add the fixed value".
func combineFixed(fixed Func, fixedAt float64, varying Func) Func {
	return varying.ShiftX(fixedAt).ShiftY(fixed.Value(fixedAt))
}

// emitter accumulates link sub-pieces, dropping any whose x-width doesn't
// clear linkEps.
type emitter struct {
	pieces []Limited
}

func (e *emitter) add(xMin, xMax float64, f Func) {
	if !epsilonLess(xMin, xMax) {
		return
	}
	e.pieces = append(e.pieces, Limited{MinX: xMin, MaxX: xMax, F: f})
}

// Link computes h(x) = min_{δ∈[a1,min(b1,x-a2)]} f(δ) + g(x-δ) for limited
// convex monotone-decreasing f, g, producing at most three pieces (spec
// §4.1.1). The result is always convex and monotone decreasing.
func Link(f, g Limited) (Piecewise, error) {
	if f.IsDegenerate() && g.IsDegenerate() {
		return Piecewise{Pieces: []Limited{
			{MinX: f.MinX + g.MinX, MaxX: f.MinX + g.MinX,
				F: Constant{C: f.F.Value(f.MinX) + g.F.Value(g.MinX)}},
		}}, nil
	}
	if f.IsDegenerate() {
		return Piecewise{Pieces: []Limited{
			NewLimited(f.MinX+g.MinX, f.MinX+g.MaxX, combineFixed(f.F, f.MinX, g.F)),
		}}, nil
	}
	if g.IsDegenerate() {
		return Piecewise{Pieces: []Limited{
			NewLimited(f.MinX+g.MinX, f.MaxX+g.MinX, flipFixed(g.F, g.MinX, f.F)),
		}}, nil
	}

	switch {
	case IsHyperbolic(f.F) && IsHyperbolic(g.F):
		return linkHypHyp(f, g), nil
	case IsHyperbolic(f.F):
		return linkHypLin(f, g, false), nil
	case IsHyperbolic(g.F):
		return linkHypLin(g, f, true), nil
	default:
		return linkLinLin(f, g), nil
	}
}

// flipFixed mirrors combineFixed for the case where the *second* argument
// (fixed) is pinned and the *first* (varying) absorbs x's variability —
// i.e. h(x) = fixed.Value(fixedAt) + varying(x-fixedAt), same shape as
// combineFixed; kept as a distinct name at call sites for readability.
func flipFixed(fixed Func, fixedAt float64, varying Func) Func {
	return combineFixed(fixed, fixedAt, varying)
}

// toLinear coerces a Linear-or-Constant Func into the uniform Linear shape
// (Constant becomes Linear{D: 0}), so link case-analysis only needs to
// switch on slope rather than on Go's three concrete Func types.
func toLinear(f Func, atX float64) Linear {
	switch v := f.(type) {
	case Linear:
		return v
	case Constant:
		return v.AsLinear(atX)
	default:
		return Linear{D: 0, B: atX, C: f.Value(atX)}
	}
}

func linkLinLin(f, g Limited) Piecewise {
	fl, gl := toLinear(f.F, f.MinX), toLinear(g.F, g.MinX)
	xMin, xMax := f.MinX+g.MinX, f.MaxX+g.MaxX
	e := &emitter{}

	switch {
	case fl.D == 0 && gl.D == 0:
		e.add(xMin, xMax, Linear{D: 0, B: 0, C: fl.C + gl.C})
	case fl.D == 0:
		e.add(xMin, xMax, combineFixed(fl, f.MinX, gl))
	case gl.D == 0:
		e.add(xMin, xMax, combineFixed(gl, g.MinX, fl))
	case fl.D == gl.D:
		e.add(xMin, xMax, Linear{D: fl.D, B: fl.B + gl.B, C: fl.C + gl.C})
	case fl.D > gl.D:
		// g is steeper: spend the slack on g first, pinning f at its floor.
		xMid := f.MinX + g.MaxX
		if epsilonLess(xMin, xMid) {
			e.add(xMin, xMid, combineFixed(fl, f.MinX, gl))
		} else {
			xMid = xMin
		}
		e.add(xMid, xMax, combineFixed(gl, g.MaxX, fl))
	default: // fl.D < gl.D
		xMid := f.MaxX + g.MinX
		if epsilonLess(xMin, xMid) {
			e.add(xMin, xMid, combineFixed(gl, g.MinX, fl))
		} else {
			xMid = xMin
		}
		e.add(xMid, xMax, combineFixed(fl, f.MaxX, gl))
	}
	return Piecewise{Pieces: e.pieces}
}

// linkHypLin links a hyperbolic piece hyp against a linear piece lin. If
// swapped is true, hyp was originally the caller's second argument (g); the
// emitted x-ranges are unaffected since link is commutative in x (both
// arguments' domains add the same way).
func linkHypLin(hyp, lin Limited, swapped bool) Piecewise {
	hf := hyp.F.(Hyperbolic)
	lf := toLinear(lin.F, lin.MinX)
	xMin, xMax := hyp.MinX+lin.MinX, hyp.MaxX+lin.MaxX
	e := &emitter{}

	if lf.D == 0 {
		e.add(xMin, xMax, combineFixed(lf, lin.MinX, hf))
		return Piecewise{Pieces: e.pieces}
	}

	dStar := hf.B + math.Cbrt(-2*hf.A/lf.D)

	switch {
	case dStar < hyp.MinX:
		// lin is steeper everywhere on hyp's domain: drive slower on lin
		// first, then hyp.
		xMid := hyp.MinX + lin.MaxX
		if epsilonLess(xMin, xMid) {
			e.add(xMin, xMid, combineFixed(hf, hyp.MinX, lf))
		} else {
			xMid = xMin
		}
		e.add(xMid, xMax, combineFixed(lf, lin.MaxX, hf))
	case dStar > hyp.MaxX:
		xMid := hyp.MaxX + lin.MinX
		if epsilonLess(xMin, xMid) {
			e.add(xMin, xMid, combineFixed(lf, lin.MinX, hf))
		} else {
			xMid = xMin
		}
		e.add(xMid, xMax, combineFixed(hf, hyp.MaxX, lf))
	default:
		xMid1 := dStar + lin.MinX
		xMid2 := dStar + lin.MaxX
		if epsilonLess(xMin, xMid1) {
			e.add(xMin, xMid1, combineFixed(lf, lin.MinX, hf))
		} else {
			xMid1 = xMin
		}
		if epsilonLess(xMid1, xMid2) {
			e.add(xMid1, xMid2, combineFixed(hf, dStar, lf))
		} else {
			xMid2 = xMid1
		}
		e.add(xMid2, xMax, combineFixed(lf, lin.MaxX, hf))
	}
	return Piecewise{Pieces: e.pieces}
}

func linkHypHyp(f, g Limited) Piecewise {
	ff, gf := f.F.(Hyperbolic), g.F.(Hyperbolic)
	fMinDeriv := ff.Deriv(f.MinX)
	gMinDeriv := gf.Deriv(g.MinX)

	if fMinDeriv > gMinDeriv {
		// Swap roles so the steeper-at-the-floor function plays "f" below;
		// the x-domain (and therefore piece boundaries) is symmetric in
		// f/g so the swap only changes which underlying shape is emitted.
		return linkHypHypOrdered(g, gf, f, ff)
	}
	return linkHypHypOrdered(f, ff, g, gf)
}

func linkHypHypOrdered(f Limited, ff Hyperbolic, g Limited, gf Hyperbolic) Piecewise {
	fMaxDeriv := ff.Deriv(f.MaxX)
	gMinDeriv := gf.Deriv(g.MinX)
	gMaxDeriv := gf.Deriv(g.MaxX)
	xMin, xMax := f.MinX+g.MinX, f.MaxX+g.MaxX
	e := &emitter{}

	cbrtGA_FA := math.Cbrt(gf.A / ff.A)
	cbrtFA_GA := math.Cbrt(ff.A / gf.A)
	balanced := Hyperbolic{
		A: ff.A + gf.A + 3*(math.Cbrt(ff.A*ff.A*gf.A)+math.Cbrt(ff.A*gf.A*gf.A)),
		B: ff.B + gf.B,
		C: ff.C + gf.C,
	}
	fMaxXStar := f.MaxX + gf.B + cbrtGA_FA*(f.MaxX-ff.B)
	gMinXStar := g.MinX + ff.B + cbrtFA_GA*(g.MinX-gf.B)
	gMaxXStar := g.MaxX + ff.B + cbrtFA_GA*(g.MaxX-gf.B)

	switch {
	case gMinDeriv <= fMaxDeriv && fMaxDeriv < gMaxDeriv:
		xMid1, xMid2 := gMinXStar, fMaxXStar
		if epsilonLess(xMin, xMid1) {
			e.add(xMin, xMid1, combineFixed(gf, g.MinX, ff))
		} else {
			xMid1 = xMin
		}
		if epsilonLess(xMid1, xMid2) {
			e.add(xMid1, xMid2, balanced)
		} else {
			xMid2 = xMid1
		}
		e.add(xMid2, xMax, combineFixed(ff, f.MaxX, gf))
	case fMaxDeriv <= gMinDeriv:
		xMid := f.MaxX + g.MinX
		if epsilonLess(xMin, xMid) {
			e.add(xMin, xMid, combineFixed(gf, g.MinX, ff))
		} else {
			xMid = xMin
		}
		e.add(xMid, xMax, combineFixed(ff, f.MaxX, gf))
	default: // gMaxDeriv <= fMaxDeriv
		xMid1, xMid2 := gMinXStar, gMaxXStar
		if epsilonLess(xMin, xMid1) {
			e.add(xMin, xMid1, combineFixed(gf, g.MinX, ff))
		} else {
			xMid1 = xMin
		}
		if epsilonLess(xMid1, xMid2) {
			e.add(xMid1, xMid2, balanced)
		} else {
			xMid2 = xMid1
		}
		e.add(xMid2, xMax, combineFixed(gf, g.MaxX, ff))
	}
	return Piecewise{Pieces: e.pieces}
}

// LinkDelta recovers the optimal split δ for a known total x of
// h = Link(f, g): the δ minimizing f(δ)+g(x-δ) among every (f-piece,
// g-piece) pair whose domains can combine to produce x. Used by
// search.Reconstruct to recover a hop's true arrival time/energy split
// once a later capacity clip has moved the chosen x away from any
// sub-curve's own unconstrained MinX (spec §4.3).
func LinkDelta(f, g Piecewise, x float64) (float64, bool) {
	bestDelta := 0.0
	bestCost := math.Inf(1)
	found := false

	for _, fp := range f.Pieces {
		for _, gp := range g.Pieces {
			lo := math.Max(fp.MinX, x-gp.MaxX)
			hi := math.Min(fp.MaxX, x-gp.MinX)
			if lo > hi {
				continue
			}
			delta := argminSplit(fp.F, gp.F, x, lo, hi)
			cost := fp.F.Value(delta) + gp.F.Value(x-delta)
			if cost < bestCost {
				bestCost = cost
				bestDelta = delta
				found = true
			}
		}
	}
	return bestDelta, found
}

// argminSplit bisects for the δ∈[lo,hi] minimizing f.Value(δ)+g.Value(x-δ).
// f and g are each convex, so the sum's derivative f.Deriv(δ)-g.Deriv(x-δ)
// is non-decreasing in δ: its sign change, if any, is the interior minimum;
// otherwise the minimum sits at whichever endpoint the derivative favors.
func argminSplit(f, g Func, x, lo, hi float64) float64 {
	sign := func(d float64) float64 { return f.Deriv(d) - g.Deriv(x-d) }

	if sign(lo) >= 0 {
		return lo
	}
	if sign(hi) <= 0 {
		return hi
	}
	for i := 0; i < 64 && hi-lo > 1e-9; i++ {
		mid := (lo + hi) / 2
		if sign(mid) < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

// LinkPiecewise links a piecewise F against a single limited g, iterating
// F's sub-pieces in order (spec §4.1.2). Once a sub-piece's link settles
// into pure translation (its last emitted piece is shaped like a shift of
// F rather than of g), the remaining sub-pieces of F are appended by plain
// translation, bounding the work at O(|F|+|g|).
func LinkPiecewise(big Piecewise, g Limited) (Piecewise, error) {
	if len(big.Pieces) == 0 {
		return Piecewise{}, ErrEmptyPiecewise
	}
	var out []Limited
	settled := false
	var offsetX, offsetY float64

	for i, sub := range big.Pieces {
		if settled {
			shifted := sub.ShiftX(offsetX).ShiftY(offsetY)
			out = append(out, shifted)
			continue
		}
		linked, err := Link(sub, g)
		if err != nil {
			return Piecewise{}, err
		}
		out = append(out, linked.Pieces...)

		if i == len(big.Pieces)-1 {
			break
		}
		// Detect settlement: the final emitted piece's shape no longer
		// depends on g (i.e. g was pinned at its max for the remainder),
		// recognisable because the last piece's value at its own MaxX
		// equals sub(sub.MaxX)+g(g.MaxX) — from then on F's own
		// progression dominates and we can translate the rest of F.
		last := linked.Pieces[len(linked.Pieces)-1]
		expected := sub.Value(sub.MaxX) + g.Value(g.MaxX)
		if math.Abs(last.Value(last.MaxX)-expected) < 1e-6 {
			settled = true
			offsetX = g.MaxX
			offsetY = g.Value(g.MaxX)
		}
	}
	return Piecewise{Pieces: out}, nil
}
