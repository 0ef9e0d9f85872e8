package function

import "math"

// degenerateEps is the x-range width below which a piece is folded to a
// Constant rather than treated as a true interval (spec: "Numeric-degeneracy").
const degenerateEps = 1e-4

// ConvexitySlack bounds the derivative discontinuity tolerated at piece
// boundaries (spec §3/§8 property 1).
const ConvexitySlack = 1e-2

// pieceKind discriminates the three Func shapes without relying on the
// sign-of-slope trick spec.md §9 calls out as a C-union space optimisation:
// each concrete type simply reports its own kind.
type pieceKind int

const (
	kindHyperbolic pieceKind = iota
	kindLinear
	kindConstant
)

// Func is a scalar, monotone-non-increasing function of one variable, as
// used for a single edge's travel-time-to-consumption tradeoff.
type Func interface {
	// Value returns f(x).
	Value(x float64) float64

	// Deriv returns f'(x).
	Deriv(x float64) float64

	// Inverse returns the x such that f(x) == y, assuming f is strictly
	// monotone on the caller's range of interest.
	Inverse(y float64) float64

	// InverseDeriv returns the x at which f'(x) == slope.
	InverseDeriv(slope float64) float64

	// ShiftX returns a copy of f translated so that shifted(x) == f(x-dx).
	ShiftX(dx float64) Func

	// ShiftY returns a copy of f translated so that shifted(x) == f(x)+dy.
	ShiftY(dy float64) Func

	kind() pieceKind
}

// Hyperbolic implements f(x) = A/(x-B)^2 + C, monotone decreasing for x>B.
// A must be > 0.
type Hyperbolic struct {
	A, B, C float64
}

func (h Hyperbolic) Value(x float64) float64 {
	d := x - h.B
	return h.A/(d*d) + h.C
}

func (h Hyperbolic) Deriv(x float64) float64 {
	d := x - h.B
	return -2 * h.A / (d * d * d)
}

// Inverse solves A/(x-B)^2 + C = y for the root with x > B (the only
// branch that is ever physically meaningful for a decreasing tradeoff).
func (h Hyperbolic) Inverse(y float64) float64 {
	if y <= h.C {
		return math.Inf(1)
	}
	return h.B + math.Sqrt(h.A/(y-h.C))
}

// InverseDeriv solves f'(x) = slope, slope < 0, for x > B.
func (h Hyperbolic) InverseDeriv(slope float64) float64 {
	if slope >= 0 {
		return math.Inf(1)
	}
	return h.B + math.Cbrt(-2*h.A/slope)
}

func (h Hyperbolic) ShiftX(dx float64) Func { return Hyperbolic{A: h.A, B: h.B + dx, C: h.C} }
func (h Hyperbolic) ShiftY(dy float64) Func { return Hyperbolic{A: h.A, B: h.B, C: h.C + dy} }
func (h Hyperbolic) kind() pieceKind        { return kindHyperbolic }

// Linear implements f(x) = D*(x-B) + C with D <= 0. D == 0 is a degenerate
// linear (constant slope); prefer Constant for that case, but Linear
// tolerates it so link/compose algebra that produces D==0 intermediates
// does not need a special case.
type Linear struct {
	D, B, C float64
}

func (l Linear) Value(x float64) float64 { return l.D*(x-l.B) + l.C }
func (l Linear) Deriv(float64) float64    { return l.D }

func (l Linear) Inverse(y float64) float64 {
	if l.D == 0 {
		return math.NaN()
	}
	return l.B + (y-l.C)/l.D
}

func (l Linear) InverseDeriv(slope float64) float64 {
	// A linear piece has one slope everywhere; any x in its domain answers
	// "where is the slope equal to mine", callers clamp to the domain.
	if math.Abs(slope-l.D) > 1e9 {
		return math.Inf(1)
	}
	return l.B
}

func (l Linear) ShiftX(dx float64) Func { return Linear{D: l.D, B: l.B + dx, C: l.C} }
func (l Linear) ShiftY(dy float64) Func { return Linear{D: l.D, B: l.B, C: l.C + dy} }
func (l Linear) kind() pieceKind        { return kindLinear }

// IsConstant reports whether this Linear has zero slope (a degenerate
// linear per spec §3, distinct from the dedicated Constant type).
func (l Linear) IsConstant() bool { return l.D == 0 }

// Constant implements f(x) = C.
type Constant struct {
	C float64
}

func (c Constant) Value(float64) float64 { return c.C }
func (c Constant) Deriv(float64) float64 { return 0 }

func (c Constant) Inverse(y float64) float64 {
	// Constant has no well-defined inverse except "any x"; callers that
	// need a concrete point use the piece's MinX via LimitedFunction.
	return math.NaN()
}

func (c Constant) InverseDeriv(slope float64) float64 {
	if slope == 0 {
		return math.NaN() // any x satisfies this; ambiguous without bounds
	}
	return math.Inf(1)
}

func (c Constant) ShiftX(float64) Func     { return c }
func (c Constant) ShiftY(dy float64) Func  { return Constant{C: c.C + dy} }
func (c Constant) kind() pieceKind         { return kindConstant }

// AsLinear converts a Constant into the degenerate Linear{D:0} shape used
// internally by link/compose case analysis so those routines only need to
// switch on (IsHyperbolic, slope) rather than on three Go types.
func (c Constant) AsLinear(atX float64) Linear { return Linear{D: 0, B: atX, C: c.C} }

// IsHyperbolic reports whether f is a Hyperbolic.
func IsHyperbolic(f Func) bool { return f.kind() == kindHyperbolic }

// IsLinear reports whether f is Linear or Constant — the two are disjoint
// from Hyperbolic by construction (is_linear ⇔ ¬is_hyperbolic, spec §3).
func IsLinear(f Func) bool { return f.kind() != kindHyperbolic }

// SlopeOf returns the (possibly position-dependent) derivative at a
// representative point, used by link/compose ordering logic. For Hyperbolic
// this requires a point; callers pass the piece's MinX.
func SlopeOf(f Func, atX float64) float64 { return f.Deriv(atX) }
