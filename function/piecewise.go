package function

import (
	"sort"

	"gonum.org/v1/gonum/floats/scalar"
)

// Piecewise is an ordered, contiguous sequence of Limited pieces forming a
// single monotone-decreasing, convex curve — the invariant required of
// every tradeoff label (spec §3).
type Piecewise struct {
	Pieces []Limited
}

// NewPiecewise wraps pieces without validation; use Validate to check the
// convexity/contiguity invariant (typically only in tests — hot paths that
// construct pieces algebraically are trusted to preserve it).
func NewPiecewise(pieces ...Limited) Piecewise { return Piecewise{Pieces: pieces} }

// MinX and MaxX report the function's domain bounds.
func (p Piecewise) MinX() float64 {
	if len(p.Pieces) == 0 {
		return 0
	}
	return p.Pieces[0].MinX
}

func (p Piecewise) MaxX() float64 {
	if len(p.Pieces) == 0 {
		return 0
	}
	return p.Pieces[len(p.Pieces)-1].MaxX
}

// MinY and MaxY report the function's achievable value range (decreasing,
// so MinY is at MaxX and MaxY is at MinX).
func (p Piecewise) MinY() float64 {
	if len(p.Pieces) == 0 {
		return 0
	}
	return p.Pieces[len(p.Pieces)-1].MinY()
}

func (p Piecewise) MaxY() float64 {
	if len(p.Pieces) == 0 {
		return 0
	}
	return p.Pieces[0].MaxY()
}

// pieceAt returns the index of the piece covering x, clamping to the first
// or last piece if x is outside the whole domain (callers compare against
// MinX/MaxX themselves when the out-of-domain distinction matters).
func (p Piecewise) pieceAt(x float64) int {
	n := len(p.Pieces)
	if n == 0 {
		return -1
	}
	// Binary search for the first piece whose MaxX >= x.
	i := sort.Search(n, func(i int) bool { return p.Pieces[i].MaxX >= x })
	if i >= n {
		return n - 1
	}
	return i
}

// Value evaluates the piecewise function at x.
func (p Piecewise) Value(x float64) float64 {
	i := p.pieceAt(x)
	if i < 0 {
		return 0
	}
	return p.Pieces[i].Value(x)
}

// Deriv evaluates the piecewise function's derivative at x.
func (p Piecewise) Deriv(x float64) float64 {
	i := p.pieceAt(x)
	if i < 0 {
		return 0
	}
	return p.Pieces[i].Deriv(x)
}

// Inverse finds x such that p(x) = y, assuming the monotone-decreasing
// invariant holds. It binary-searches pieces by their y-range, then inverts
// exactly within the matching piece (spec §4.1.6).
func (p Piecewise) Inverse(y float64) (float64, bool) {
	n := len(p.Pieces)
	// Pieces are ordered by decreasing y-range as x increases; find the
	// first piece whose MinY <= y (i.e. y falls at or above its floor).
	i := sort.Search(n, func(i int) bool { return p.Pieces[i].MinY() <= y })
	if i >= n {
		return 0, false
	}
	return p.Pieces[i].Inverse(y)
}

// InverseDeriv returns the x at which the piecewise derivative equals
// slope, clamped into [MinX, MaxX] — used by the Omega potential's
// charging-key computation (spec §4.4).
func (p Piecewise) InverseDeriv(slope float64) float64 {
	for _, piece := range p.Pieces {
		lo, hi := piece.Deriv(piece.MinX), piece.Deriv(piece.MaxX)
		if slope <= lo+1e-9 && slope >= hi-1e-9 {
			x := piece.F.InverseDeriv(slope)
			if x < piece.MinX {
				x = piece.MinX
			}
			if x > piece.MaxX {
				x = piece.MaxX
			}
			return x
		}
	}
	if slope > p.Deriv(p.MinX()) {
		return p.MinX()
	}
	return p.MaxX()
}

// ClipY restricts the piecewise function to y ∈ [yMin, yMax], the battery
// capacity constraint of spec §4.1.6. Returns (clipped, ok); ok is false if
// the whole function lies outside the y-range (ErrInfeasible case upstream).
func (p Piecewise) ClipY(yMin, yMax float64) (Piecewise, bool) {
	if len(p.Pieces) == 0 {
		return Piecewise{}, false
	}
	// Because p is monotone decreasing, y is largest at MinX and smallest
	// at MaxX. Find the first piece with Value(MinX) <= yMax (trims the
	// high-y / low-x prefix) and the last piece with Value(MaxX) >= yMin
	// (trims the low-y / high-x suffix).
	var out []Limited
	for _, piece := range p.Pieces {
		hi, lo := piece.MaxY(), piece.MinY()
		if hi < yMin-1e-9 || lo > yMax+1e-9 {
			continue // entirely outside the feasible y-range
		}
		start, end := piece.MinX, piece.MaxX
		if hi > yMax {
			if x, ok := piece.Inverse(yMax); ok {
				start = x
			}
		}
		if lo < yMin {
			if x, ok := piece.Inverse(yMin); ok {
				end = x
			}
		}
		if end-start <= 0 && !piece.IsDegenerate() {
			continue
		}
		out = append(out, NewLimited(start, end, piece.F))
	}
	if len(out) == 0 {
		return Piecewise{}, false
	}
	return Piecewise{Pieces: out}, true
}

// ShiftX translates every piece's domain and underlying function by dx.
func (p Piecewise) ShiftX(dx float64) Piecewise {
	out := make([]Limited, len(p.Pieces))
	for i, piece := range p.Pieces {
		out[i] = piece.ShiftX(dx)
	}
	return Piecewise{Pieces: out}
}

// ShiftY translates every piece's value by dy.
func (p Piecewise) ShiftY(dy float64) Piecewise {
	out := make([]Limited, len(p.Pieces))
	for i, piece := range p.Pieces {
		out[i] = piece.ShiftY(dy)
	}
	return Piecewise{Pieces: out}
}

// ClipXFrom trims the piecewise function to [x, MaxX], used by ChargeCompose
// to take "the rest of the charging curve starting from where the vehicle's
// already-used energy places it" (spec §4.1.3).
func (p Piecewise) ClipXFrom(x float64) Piecewise {
	i := p.pieceAt(x)
	if i < 0 {
		return Piecewise{}
	}
	out := make([]Limited, 0, len(p.Pieces)-i)
	first := p.Pieces[i]
	if x > first.MinX {
		first = NewLimited(x, first.MaxX, first.F)
	}
	out = append(out, first)
	out = append(out, p.Pieces[i+1:]...)
	return Piecewise{Pieces: out}
}

// Validate checks the core invariants required of every tradeoff label
// (spec §3, §8 property 1): pieces are contiguous and ordered in x, each
// piece is monotone decreasing, and derivatives are non-decreasing across
// boundaries (convexity) within ConvexitySlack.
func (p Piecewise) Validate() error {
	if len(p.Pieces) == 0 {
		return ErrEmptyPiecewise
	}
	for i, piece := range p.Pieces {
		if piece.MaxX < piece.MinX {
			return ErrDegenerateRange
		}
		if piece.Deriv(piece.MinX) > ConvexitySlack || piece.F.Deriv((piece.MinX+piece.MaxX)/2) > ConvexitySlack {
			return ErrNotMonotone
		}
		if i > 0 {
			prev := p.Pieces[i-1]
			if !scalar.EqualWithinAbs(piece.MinX, prev.MaxX, degenerateEps) {
				return ErrNotContiguous
			}
			leftDeriv := prev.Deriv(prev.MaxX)
			rightDeriv := piece.Deriv(piece.MinX)
			if leftDeriv > rightDeriv+ConvexitySlack {
				return ErrNotConvex
			}
		}
	}
	return nil
}
