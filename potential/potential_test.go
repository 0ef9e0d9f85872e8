package potential_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ocharge/chargepath/evgraph"
	"github.com/ocharge/chargepath/potential"
)

// line builds a 0->1->2->3 scalar chain graph with the given edge weights.
func line(weights ...int32) evgraph.ScalarGraph {
	b := evgraph.NewBuilder(len(weights) + 1)
	for i := range weights {
		b.AddEdge(uint32(i), uint32(i+1))
	}
	topo, perm, _ := b.Build()
	w := make([]int32, len(perm))
	for slot, orig := range perm {
		w[slot] = weights[orig]
	}
	return evgraph.ScalarGraph{Topology: topo, Weights: w}
}

func TestScalarDijkstraChain(t *testing.T) {
	g := line(1, 2, 3)
	dist, err := potential.ScalarDijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 1, 3, 6}, dist)
}

func TestReversePotentialMatchesForwardDistance(t *testing.T) {
	g := line(1, 2, 3)
	pot, err := potential.Reverse(g, 3)
	require.NoError(t, err)
	assert.Equal(t, int32(6), pot.Value(0))
	assert.Equal(t, int32(5), pot.Value(1))
	assert.Equal(t, int32(0), pot.Value(3))
}

func TestLandmarkSetBoundsAreAdmissible(t *testing.T) {
	g := line(1, 2, 3)
	ls, err := potential.NewLandmarkSet(g, []uint32{0})
	require.NoError(t, err)

	exact, err := potential.Reverse(g, 3)
	require.NoError(t, err)

	approx := ls.ForTarget(3)
	for n := uint32(0); n < 4; n++ {
		assert.LessOrEqual(t, approx.Value(n), exact.Value(n))
	}
}

func TestShiftWithExactPotentialKeepsWeightsNonNegative(t *testing.T) {
	g := line(1, 2, 3)
	pot, err := potential.Reverse(g, 3)
	require.NoError(t, err)

	shifted := potential.Shift(g, pot)
	for _, w := range shifted.Weights {
		assert.GreaterOrEqual(t, w, int32(0))
	}
}

func TestLazyMemoizesUnderlyingPotential(t *testing.T) {
	calls := 0
	inner := potential.Func(func(n uint32) int32 {
		calls++
		return int32(n)
	})
	lz := potential.NewLazy(inner)

	assert.Equal(t, int32(5), lz.Value(5))
	assert.Equal(t, int32(5), lz.Value(5))
	assert.Equal(t, 1, calls)
}
