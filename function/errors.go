package function

import "errors"

// Sentinel errors for the function algebra. Callers should branch with
// errors.Is; messages are not part of the stable contract.
var (
	// ErrEmptyPiecewise indicates an operation received a Piecewise with no pieces.
	ErrEmptyPiecewise = errors.New("function: piecewise function has no pieces")

	// ErrNotContiguous indicates a Piecewise's pieces are not ordered and
	// contiguous in x, violating the core invariant of §3.
	ErrNotContiguous = errors.New("function: pieces are not contiguous")

	// ErrNotConvex indicates a derivative discontinuity at a piece boundary
	// exceeds the convexity tolerance (left-deriv must be <= right-deriv).
	ErrNotConvex = errors.New("function: piecewise function is not convex")

	// ErrNotMonotone indicates a piece's value is increasing, violating the
	// monotone-decreasing invariant required of tradeoff labels.
	ErrNotMonotone = errors.New("function: piece is not monotone decreasing")

	// ErrDegenerateRange indicates MinX > MaxX after folding, which should
	// never happen if NewLimited is used to construct pieces.
	ErrDegenerateRange = errors.New("function: degenerate x-range")

	// ErrOutOfDomain indicates Inverse/InverseDeriv was asked for a value
	// outside the function's achievable range.
	ErrOutOfDomain = errors.New("function: value outside domain")

	// ErrInfeasible indicates ChargeCompose or ClipY produced an empty
	// result (e.g. battery capacity makes every split infeasible).
	ErrInfeasible = errors.New("function: no feasible point")
)
