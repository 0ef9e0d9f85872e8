package function_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ocharge/chargepath/function"
)

func TestDominatesStrictlyBetterEverywhere(t *testing.T) {
	lhs := function.NewPiecewise(function.NewLimited(0, 10, function.Linear{D: -1, B: 0, C: 5}))
	rhs := function.NewPiecewise(function.NewLimited(0, 10, function.Linear{D: -1, B: 0, C: 15}))

	assert.True(t, function.Dominates(lhs, rhs, function.DefaultXEpsilon, function.DefaultYEpsilon))
	assert.False(t, function.Dominates(rhs, lhs, function.DefaultXEpsilon, function.DefaultYEpsilon))
}

func TestDominatesDisjointDomainsNeverDominate(t *testing.T) {
	lhs := function.NewPiecewise(function.NewLimited(0, 5, function.Linear{D: -1, B: 0, C: 5}))
	rhs := function.NewPiecewise(function.NewLimited(20, 30, function.Linear{D: -1, B: 20, C: 1}))

	assert.False(t, function.Dominates(lhs, rhs, function.DefaultXEpsilon, function.DefaultYEpsilon))
}

// TestDominatesYDisjointRangesNeverDominate covers the triangular
// fast-rejection's Y-disjointness check: lhs and rhs share an x-domain but
// rhs's entire consumption range sits strictly below lhs's, so rhs is
// undominated regardless of how their x-domains relate.
func TestDominatesYDisjointRangesNeverDominate(t *testing.T) {
	lhs := function.NewPiecewise(function.NewLimited(0, 10, function.Linear{D: -1, B: 0, C: 110}))
	rhs := function.NewPiecewise(function.NewLimited(0, 10, function.Linear{D: -0.1, B: 0, C: 5}))

	assert.False(t, function.Dominates(lhs, rhs, function.DefaultXEpsilon, function.DefaultYEpsilon))
}

func TestClipDominatedRemovesDominatedPrefix(t *testing.T) {
	// lhs lies below rhs's first piece but rises above its second piece
	// from x=6 on, so only the first piece is dominated.
	lhs := function.NewPiecewise(function.NewLimited(0, 10, function.Linear{D: -0.5, B: 0, C: 13}))
	rhs := function.NewPiecewise(
		function.NewLimited(0, 4, function.Linear{D: -2, B: 0, C: 20}),
		function.NewLimited(4, 10, function.Linear{D: -1, B: 4, C: 12}),
	)

	clipped, ok := function.ClipDominated(lhs, rhs, function.DefaultXEpsilon, function.DefaultYEpsilon)
	assert.True(t, ok)
	assert.NotEmpty(t, clipped.Pieces)
	assert.Len(t, clipped.Pieces, 1)
}
