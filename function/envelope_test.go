package function_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ocharge/chargepath/function"
)

func TestLowerEnvelopeOfDisjointCandidatesConcatenates(t *testing.T) {
	a := function.NewPiecewise(function.NewLimited(0, 5, function.Linear{D: -1, B: 0, C: 10}))
	b := function.NewPiecewise(function.NewLimited(5, 10, function.Linear{D: -1, B: 5, C: 5}))

	env := function.LowerEnvelope([]function.Piecewise{a, b})
	require.NotEmpty(t, env.Pieces)
	assert.InDelta(t, 10.0, env.Value(0), 1e-6)
	assert.InDelta(t, 5.0, env.Value(5), 1e-6)
}

func TestLowerEnvelopePicksLowerOfOverlapping(t *testing.T) {
	a := function.NewPiecewise(function.NewLimited(0, 10, function.Linear{D: -1, B: 0, C: 20}))
	b := function.NewPiecewise(function.NewLimited(0, 10, function.Linear{D: -2, B: 0, C: 15}))

	env := function.LowerEnvelope([]function.Piecewise{a, b})
	for x := 0.0; x <= 10; x += 1 {
		got := env.Value(x)
		want := a.Value(x)
		if b.Value(x) < want {
			want = b.Value(x)
		}
		assert.InDelta(t, want, got, 1e-6, "x=%v", x)
	}
}
