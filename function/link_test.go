package function_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ocharge/chargepath/function"
)

func TestLinkLinearLinearSameSlope(t *testing.T) {
	f := function.NewLimited(0, 10, function.Linear{D: -1, B: 0, C: 20})
	g := function.NewLimited(0, 5, function.Linear{D: -1, B: 0, C: 10})

	h, err := function.Link(f, g)
	require.NoError(t, err)
	require.Len(t, h.Pieces, 1)

	// At x=3 the optimal split doesn't matter (equal slopes): total value
	// must equal f(a)+g(x-a) for any feasible a.
	got := h.Value(3)
	assert.InDelta(t, 27.0, got, 1e-6)
}

func TestLinkConstantConstantShift(t *testing.T) {
	f := function.NewLimited(2, 2, function.Constant{C: 5})
	g := function.NewLimited(3, 3, function.Constant{C: 7})

	h, err := function.Link(f, g)
	require.NoError(t, err)
	require.Len(t, h.Pieces, 1)
	assert.InDelta(t, 5.0, h.Pieces[0].MinX, 1e-9)
	assert.InDelta(t, 12.0, h.Value(5), 1e-9)
}

func TestLinkHyperbolicHyperbolicIsConvexAndDecreasing(t *testing.T) {
	f := function.NewLimited(1, 5, function.Hyperbolic{A: 4, B: 0, C: 0})
	g := function.NewLimited(1, 5, function.Hyperbolic{A: 9, B: 0, C: 0})

	h, err := function.Link(f, g)
	require.NoError(t, err)
	require.NoError(t, h.Validate())

	// monotone decreasing sample check
	prev := h.Value(h.MinX())
	for x := h.MinX() + 0.25; x <= h.MaxX(); x += 0.25 {
		v := h.Value(x)
		assert.LessOrEqual(t, v, prev+1e-6)
		prev = v
	}
}

func TestLinkPiecewiseMatchesDirectLinkAtFirstPiece(t *testing.T) {
	f1 := function.NewLimited(0, 3, function.Linear{D: -2, B: 0, C: 10})
	f2 := function.NewLimited(3, 6, function.Linear{D: -1, B: 3, C: 4})
	big := function.NewPiecewise(f1, f2)
	g := function.NewLimited(0, 4, function.Linear{D: -1, B: 0, C: 2})

	h, err := function.LinkPiecewise(big, g)
	require.NoError(t, err)
	assert.NotEmpty(t, h.Pieces)

	direct1, err := function.Link(f1, g)
	require.NoError(t, err)
	assert.InDelta(t, direct1.Value(direct1.MinX()), h.Value(direct1.MinX()), 1e-6)
}

// TestLinkDeltaRecoversSplitConsistentWithValue checks that the δ
// LinkDelta reports for a known linked value x actually reproduces h(x)
// when f(δ)+g(x-δ) is recomputed directly — the property search.Reconstruct
// relies on when a downstream capacity clip moves the chosen x away from
// either side's own unconstrained MinX.
func TestLinkDeltaRecoversSplitConsistentWithValue(t *testing.T) {
	f := function.NewPiecewise(function.NewLimited(0, 10, function.Linear{D: -1, B: 0, C: 10}))
	g := function.NewPiecewise(function.NewLimited(0, 5, function.Linear{D: -2, B: 0, C: 10}))

	h, err := function.Link(f.Pieces[0], g.Pieces[0])
	require.NoError(t, err)

	x := h.MinX() + (h.MaxX()-h.MinX())/3
	delta, ok := function.LinkDelta(f, g, x)
	require.True(t, ok)

	recomposed := f.Value(delta) + g.Value(x-delta)
	assert.InDelta(t, h.Value(x), recomposed, 1e-6)
}
