package function

import "math"

// Limited is a Func pinned to an x-range [MinX, MaxX]. Outside that range,
// Value is +Inf below MinX and F(MaxX) (clamped) above MaxX — spec §3's
// "cannot arrive faster than min_x; once slower than max_x, no extra
// consumption benefit".
type Limited struct {
	MinX, MaxX float64
	F          Func
}

// NewLimited constructs a Limited, folding degenerate ranges (maxX-minX <=
// degenerateEps) to a Constant at f(minX) per spec §7's numeric-degeneracy
// policy: algebra routines accept degenerate inputs rather than erroring.
func NewLimited(minX, maxX float64, f Func) Limited {
	if maxX-minX <= degenerateEps {
		return Limited{MinX: minX, MaxX: minX, F: Constant{C: f.Value(minX)}}
	}
	return Limited{MinX: minX, MaxX: maxX, F: f}
}

// Value evaluates the limited function at x, applying the asymmetric
// boundary behaviour described above.
func (l Limited) Value(x float64) float64 {
	if x < l.MinX {
		return math.Inf(1)
	}
	if x > l.MaxX {
		return l.F.Value(l.MaxX)
	}
	return l.F.Value(x)
}

// Deriv evaluates the derivative, clamped to the piece's closed range (the
// derivative above MaxX is 0 since the value there is pinned to F(MaxX)).
func (l Limited) Deriv(x float64) float64 {
	if x < l.MinX || x > l.MaxX {
		return 0
	}
	return l.F.Deriv(x)
}

// ShiftX returns a copy of l translated in x by dx.
func (l Limited) ShiftX(dx float64) Limited {
	return Limited{MinX: l.MinX + dx, MaxX: l.MaxX + dx, F: l.F.ShiftX(dx)}
}

// ShiftY returns a copy of l translated in y by dy.
func (l Limited) ShiftY(dy float64) Limited {
	return Limited{MinX: l.MinX, MaxX: l.MaxX, F: l.F.ShiftY(dy)}
}

// IsDegenerate reports whether this piece was folded to a single point.
func (l Limited) IsDegenerate() bool { return l.MaxX-l.MinX <= degenerateEps }

// MinY and MaxY report the achievable value range of a monotone-decreasing
// limited piece: value is largest at MinX, smallest at MaxX.
func (l Limited) MinY() float64 { return l.F.Value(l.MaxX) }
func (l Limited) MaxY() float64 { return l.F.Value(l.MinX) }

// Inverse solves l.F(x) = y for x within [MinX, MaxX]. Returns
// (x, true) on success, or (0, false) if y is out of the piece's range.
func (l Limited) Inverse(y float64) (float64, bool) {
	lo, hi := l.MinY(), l.MaxY()
	if y < lo-1e-9 || y > hi+1e-9 {
		return 0, false
	}
	x := l.F.Inverse(y)
	if math.IsNaN(x) {
		// Constant piece: any x in range maps to C.
		return l.MinX, true
	}
	if x < l.MinX {
		x = l.MinX
	}
	if x > l.MaxX {
		x = l.MaxX
	}
	return x, true
}
