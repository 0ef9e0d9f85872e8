package function

import "sort"

// LowerEnvelope reduces a set of candidate convex monotone-decreasing
// piecewise functions, possibly overlapping in x, to the single convex
// piecewise function that is their pointwise minimum (spec §4.1.5: used
// after ChargeCompose generates one candidate per source piece and after
// label merges at a node). Candidates are merged pairwise via mergeTwo; the
// running result stays convex because mergeTwo only ever keeps, at each x,
// the lower of exactly two convex curves and splits at their single
// crossing point.
func LowerEnvelope(candidates []Piecewise) Piecewise {
	live := make([]Piecewise, 0, len(candidates))
	for _, c := range candidates {
		if len(c.Pieces) > 0 {
			live = append(live, c)
		}
	}
	if len(live) == 0 {
		return Piecewise{}
	}
	result := live[0]
	for _, c := range live[1:] {
		result = mergeTwo(result, c)
	}
	return result
}

// mergeTwo computes the pointwise minimum of two convex monotone-decreasing
// piecewise functions over the union of their domains. Outside the overlap
// of [a,b]'s domains, whichever function is defined there passes through
// unchanged (ChargeCompose candidates routinely have disjoint domains).
func mergeTwo(a, b Piecewise) Piecewise {
	if len(a.Pieces) == 0 {
		return b
	}
	if len(b.Pieces) == 0 {
		return a
	}

	type boundary struct{ x float64 }
	seen := map[float64]bool{}
	var xs []float64
	addBoundary := func(x float64) {
		if !seen[x] {
			seen[x] = true
			xs = append(xs, x)
		}
	}
	for _, p := range a.Pieces {
		addBoundary(p.MinX)
		addBoundary(p.MaxX)
	}
	for _, p := range b.Pieces {
		addBoundary(p.MinX)
		addBoundary(p.MaxX)
	}
	sort.Float64s(xs)

	var out []Limited
	appendPiece := func(lo, hi float64, f Func) {
		if hi-lo <= degenerateEps {
			return
		}
		out = append(out, Limited{MinX: lo, MaxX: hi, F: f})
	}

	for i := 0; i+1 < len(xs); i++ {
		lo, hi := xs[i], xs[i+1]
		if hi-lo <= degenerateEps {
			continue
		}
		mid := (lo + hi) / 2
		aDef := a.MinX() <= mid && mid <= a.MaxX()
		bDef := b.MinX() <= mid && mid <= b.MaxX()

		switch {
		case aDef && !bDef:
			appendPiece(lo, hi, a.Pieces[a.pieceAt(mid)].F)
		case bDef && !aDef:
			appendPiece(lo, hi, b.Pieces[b.pieceAt(mid)].F)
		case aDef && bDef:
			ap := a.Pieces[a.pieceAt(mid)]
			bp := b.Pieces[b.pieceAt(mid)]
			loA, loB := a.Value(lo), b.Value(lo)
			hiA, hiB := a.Value(hi), b.Value(hi)
			switch {
			case loA <= loB && hiA <= hiB:
				appendPiece(lo, hi, ap.F)
			case loB <= loA && hiB <= hiA:
				appendPiece(lo, hi, bp.F)
			default:
				cx := CriticalPoint(ap.F, bp.F, 0)
				if cx <= lo || cx >= hi {
					// Numeric edge case: no usable crossing inside the
					// interval, fall back to whichever wins at the midpoint.
					if a.Value(mid) <= b.Value(mid) {
						appendPiece(lo, hi, ap.F)
					} else {
						appendPiece(lo, hi, bp.F)
					}
					continue
				}
				if loA <= loB {
					appendPiece(lo, cx, ap.F)
					appendPiece(cx, hi, bp.F)
				} else {
					appendPiece(lo, cx, bp.F)
					appendPiece(cx, hi, ap.F)
				}
			}
		}
	}
	return Piecewise{Pieces: out}
}
