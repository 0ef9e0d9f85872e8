package function_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ocharge/chargepath/function"
)

func TestChargeComposeProducesFeasibleResult(t *testing.T) {
	// Remaining trip needs between 20 and 5 units of energy depending on
	// how much time is spent driving (decreasing linear tradeoff).
	f := function.NewPiecewise(function.NewLimited(0, 15, function.Linear{D: -1, B: 0, C: 20}))

	// Charger's precomputed remaining-consumption curve: the longer you
	// charge, the less energy you need afterwards, down to -5 at x=20.
	g := function.NewPiecewise(
		function.NewLimited(0, 10, function.Linear{D: -2, B: 0, C: 20}),
		function.NewLimited(10, 20, function.Linear{D: -0.5, B: 10, C: 0}),
	)

	h, err := function.ChargeCompose(f, g)
	require.NoError(t, err)
	assert.NotEmpty(t, h.Pieces)
}

func TestChargeComposeEmptyInputsError(t *testing.T) {
	_, err := function.ChargeCompose(function.Piecewise{}, function.NewPiecewise())
	assert.ErrorIs(t, err, function.ErrEmptyPiecewise)
}

// TestChargeComposeExploresEveryGPiece exercises a multi-piece f against a
// multi-piece g so the per-(f-piece, g-piece) candidate search and the
// per-f-piece corner candidate both have more than one piece to range
// over; Validate() catches the search silently skipping a valid g segment
// and leaving the lower envelope non-convex or non-monotone.
func TestChargeComposeExploresEveryGPiece(t *testing.T) {
	f := function.NewPiecewise(
		function.NewLimited(0, 5, function.Linear{D: -1, B: 0, C: 20}),
		function.NewLimited(5, 15, function.Linear{D: -0.5, B: 5, C: 15}),
	)
	g := function.NewPiecewise(
		function.NewLimited(0, 10, function.Linear{D: -2, B: 0, C: 20}),
		function.NewLimited(10, 20, function.Linear{D: -0.5, B: 10, C: 0}),
		function.NewLimited(20, 30, function.Linear{D: -0.1, B: 20, C: -5}),
	)

	h, err := function.ChargeCompose(f, g)
	require.NoError(t, err)
	require.NotEmpty(t, h.Pieces)
	assert.NoError(t, h.Validate())
}

// TestChargeComposeDeltaRecoversActiveCandidate checks that
// ChargeComposeDelta finds a candidate at an x inside the composed
// function's domain and that the δ it reports lies within f's domain.
func TestChargeComposeDeltaRecoversActiveCandidate(t *testing.T) {
	f := function.NewPiecewise(function.NewLimited(0, 10, function.Linear{D: -1, B: 0, C: 10}))
	g := function.NewPiecewise(
		function.NewLimited(0, 5, function.Linear{D: -2, B: 0, C: 10}),
		function.NewLimited(5, 15, function.Linear{D: -0.2, B: 5, C: 0}),
	)

	h, err := function.ChargeCompose(f, g)
	require.NoError(t, err)

	x := h.MinX() + (h.MaxX()-h.MinX())/2
	delta, ok := function.ChargeComposeDelta(f, g, x)
	require.True(t, ok)
	assert.GreaterOrEqual(t, delta, f.MinX())
	assert.LessOrEqual(t, delta, f.MaxX())
}
