package evgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ocharge/chargepath/evgraph"
	"github.com/ocharge/chargepath/function"
)

func TestBuilderProducesCSRInSourceOrder(t *testing.T) {
	b := evgraph.NewBuilder(3)
	i0 := b.AddEdge(2, 0)
	i1 := b.AddEdge(0, 1)
	i2 := b.AddEdge(0, 2)

	topo, perm, err := b.Build()
	require.NoError(t, err)

	start, end := topo.EdgesOf(0)
	assert.Equal(t, uint32(2), end-start)
	start, end = topo.EdgesOf(2)
	assert.Equal(t, uint32(1), end-start)

	// perm[slot] = original edge index; verify the known originals appear.
	assert.ElementsMatch(t, []int{i0, i1, i2}, perm)
}

func TestMinDurationGraphReducesToFastestTime(t *testing.T) {
	b := evgraph.NewBuilder(2)
	b.AddEdge(0, 1)
	topo, _, err := b.Build()
	require.NoError(t, err)

	tg, err := evgraph.NewTradeoffGraph(topo, []function.Piecewise{
		function.NewPiecewise(function.NewLimited(5, 10, function.Linear{D: -1, B: 5, C: 20})),
	})
	require.NoError(t, err)

	sg, err := evgraph.MinDurationGraph(tg)
	require.NoError(t, err)
	assert.Equal(t, evgraph.ToFixed(5), sg.Weights[0])
}
