package function

// Epsilon tolerances for dominance checks (spec §4.1.4): a candidate label
// is considered dominated if it is worse by no more than these margins,
// which absorbs floating point noise accumulated over long paths.
const (
	DefaultXEpsilon = 1e-4
	DefaultYEpsilon = 1e-2
)

// boundingTriangle is the smallest triangle enclosing a monotone decreasing
// convex piecewise function: the rectangle corner (minX,maxY)-(maxX,minY)
// cut by the chord between (minX,maxY) and (maxX,minY). Any point of the
// function lies on or below this chord (by convexity) and within the
// rectangle (by monotonicity), which lets dominatesTriangle reject
// non-overlapping pairs in O(1) before falling back to the full sweep.
type boundingTriangle struct {
	minX, maxX, minY, maxY float64
}

func boundsOf(p Piecewise) boundingTriangle {
	return boundingTriangle{minX: p.MinX(), maxX: p.MaxX(), minY: p.MinY(), maxY: p.MaxY()}
}

// dominationState mirrors the C++ UNCLEAR/DOMINATED/UNDOMINATED trichotomy:
// the triangular bound can prove domination or non-domination outright, but
// for most pairs it can only narrow the case to "needs the real sweep".
type dominationState int

const (
	stateUnclear dominationState = iota
	stateDominated
	stateUndominated
)

// dominatesTriangle cheaply rejects pairs whose bounding triangles can't
// possibly overlap before paying for the full piecewise sweep (spec
// §4.1.4's "triangular fast-rejection bound").
func dominatesTriangle(lhs, rhs Piecewise, xEps, yEps float64) dominationState {
	if len(lhs.Pieces) == 0 {
		return stateUndominated
	}
	if len(rhs.Pieces) == 0 {
		return stateDominated
	}
	l, r := boundsOf(lhs), boundsOf(rhs)

	if r.maxX+xEps < l.minX {
		return stateUndominated
	}
	if r.maxY+yEps < l.minY {
		return stateUndominated
	}

	dx := l.maxX - l.minX
	dy := l.minY - l.maxY
	rx := r.minX + xEps - l.minX
	ry := r.minY + yEps - l.maxY
	cross := dx*ry - rx*dy
	if rx >= 0 && cross >= 0 && r.minY+yEps >= l.minY {
		return stateDominated
	}
	return stateUnclear
}

// Dominates reports whether lhs dominates rhs within the given epsilon
// tolerances: every point of rhs is matched or beaten by lhs, shifted
// right/up by (xEps,yEps) to absorb numeric noise (spec §4.1.4).
func Dominates(lhs, rhs Piecewise, xEps, yEps float64) bool {
	if tri := dominatesTriangle(lhs, rhs, xEps, yEps); tri != stateUnclear {
		return tri == stateDominated
	}
	i, ok := FindFirstUndominated(lhs, rhs, xEps, yEps)
	return !ok || i >= len(rhs.Pieces)
}

// FindFirstUndominated returns the index of the first piece of rhs that is
// not dominated by lhs (spec §4.1.4), sweeping both piecewise functions in
// lockstep left to right and jumping ahead to each pair's critical point
// whenever the two pieces don't resolve at their current sample point.
// ok is false only when either function is empty.
func FindFirstUndominated(lhs, rhs Piecewise, xEps, yEps float64) (int, bool) {
	if len(lhs.Pieces) == 0 || len(rhs.Pieces) == 0 {
		return 0, false
	}
	lhsX := rhs.Pieces[0].MinX + xEps
	if lhs.Pieces[0].MinX > lhsX {
		return 0, true
	}

	li, ri := 0, 0
	rhsX := rhs.Pieces[0].MinX
	for li < len(lhs.Pieces) && lhsX >= lhs.Pieces[li].MaxX {
		li++
	}

	for li < len(lhs.Pieces) && ri < len(rhs.Pieces) {
		lp, rp := lhs.Pieces[li], rhs.Pieces[ri]
		lhsY := lp.Value(lhsX)
		rhsY := yEps + rp.Value(rhsX)

		if lhsY > rhsY {
			if rhsX > rp.MinX {
				return ri, true
			}
			if ri == 0 {
				return 0, true
			}
			return ri - 1, true
		}

		cx := CriticalPoint(lp.F, rp.F, xEps)
		rcx := cx - xEps
		if cx < lp.MaxX && rcx < rp.MaxX && cx > lhsX && rcx > rhsX {
			lhsX, rhsX = cx, rcx
			continue
		}

		if lp.MaxX < rp.MaxX+xEps {
			lhsX = lp.MaxX
			rhsX = lhsX - xEps
			li++
		} else {
			lhsX = rp.MaxX + xEps
			rhsX = rp.MaxX
			ri++
		}
	}

	lastL := lhs.Pieces[len(lhs.Pieces)-1]
	lastR := rhs.Pieces[len(rhs.Pieces)-1]
	lhsMinY := lastL.Value(lastL.MaxX + xEps)
	for ri < len(rhs.Pieces) {
		rp := rhs.Pieces[ri]
		rhsY := yEps + rp.Value(rhsX)
		if lhsMinY > rhsY {
			if rhsX > rp.MinX {
				return ri, true
			}
			if ri == 0 {
				return 0, true
			}
			return ri - 1, true
		}
		rhsX = rp.MaxX
		ri++
	}

	rhsMinY := lastR.Value(lastR.MaxX)
	if lhsMinY > yEps+rhsMinY {
		return len(rhs.Pieces) - 1, true
	}
	return len(rhs.Pieces), true
}

// FindLastUndominated returns one-past-the-index of the last piece of rhs
// not dominated by lhs, sweeping from the right (spec §4.1.4). Together
// with FindFirstUndominated it brackets the undominated middle range of rhs
// used by ClipDominated.
func FindLastUndominated(lhs, rhs Piecewise, xEps, yEps float64) (int, bool) {
	if len(lhs.Pieces) == 0 || len(rhs.Pieces) == 0 {
		return 0, false
	}
	n := len(rhs.Pieces)
	m := len(lhs.Pieces)

	rMaxX := rhs.Pieces[n-1].MaxX
	if rMaxX+xEps < lhs.Pieces[0].MinX {
		return n, true
	}

	lMinY := lhs.Pieces[m-1].Value(lhs.Pieces[m-1].MaxX)
	rMinY := yEps + rhs.Pieces[n-1].Value(rMaxX)
	if lMinY > rMinY {
		return n, true
	}

	li, ri := m-1, n-1
	lhsX := min(lhs.Pieces[m-1].MaxX, rMaxX+xEps)
	rhsX := min(lhs.Pieces[m-1].MaxX-xEps, rMaxX)

	for li >= 0 && lhs.Pieces[li].MinX > lhsX {
		li--
	}
	for ri >= 0 && rhs.Pieces[ri].MinX > rhsX {
		ri--
	}
	if ri < 0 {
		return 0, true
	}

	for li >= 0 && ri >= 0 {
		lp, rp := lhs.Pieces[li], rhs.Pieces[ri]
		lhsY := lp.Value(lhsX)
		rhsY := yEps + rp.Value(rhsX)

		if lhsY > rhsY {
			if rhsX < rp.MaxX || ri == n-1 {
				return ri + 1, true
			}
			return ri + 2, true
		}

		cx := CriticalPoint(lp.F, rp.F, xEps)
		rcx := cx - xEps
		if cx > lp.MinX && rcx > rp.MinX && cx < lhsX && rcx < rhsX {
			lhsX, rhsX = cx, rcx
			lhsY = lp.Value(lhsX)
			rhsY = yEps + rp.Value(rhsX)
			if lhsY > rhsY {
				if rhsX < rp.MaxX || ri == n-1 {
					return ri + 1, true
				}
				return ri + 2, true
			}
		}

		if lp.MinX > rp.MinX+xEps {
			lhsX = lp.MinX
			rhsX = lhsX - xEps
			li--
		} else {
			rhsX = rp.MinX
			lhsX = rhsX + xEps
			ri--
		}
	}

	return ri + 1, true
}

// ClipDominated removes the portion of rhs dominated by lhs, returning the
// remaining undominated sub-pieces (spec §4.1.4). If nothing survives, ok
// is false.
func ClipDominated(lhs, rhs Piecewise, xEps, yEps float64) (Piecewise, bool) {
	first, ok := FindFirstUndominated(lhs, rhs, xEps, yEps)
	if !ok || first >= len(rhs.Pieces) {
		return Piecewise{}, false
	}
	last, _ := FindLastUndominated(lhs, rhs, xEps, yEps)
	if last <= first {
		return Piecewise{}, false
	}
	return Piecewise{Pieces: rhs.Pieces[first:last]}, true
}
