package preprocess_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ocharge/chargepath/evgraph"
	"github.com/ocharge/chargepath/function"
	"github.com/ocharge/chargepath/preprocess"
)

func TestBuildOmegaGraphScalarizesMaxBounds(t *testing.T) {
	b := evgraph.NewBuilder(2)
	b.AddEdge(0, 1)
	topo, _, err := b.Build()
	require.NoError(t, err)

	tg, err := evgraph.NewTradeoffGraph(topo, []function.Piecewise{
		function.NewPiecewise(function.NewLimited(5, 10, function.Linear{D: -2, B: 5, C: 30})),
	})
	require.NoError(t, err)

	sg, err := preprocess.BuildOmegaGraph(tg, 0.5)
	require.NoError(t, err)
	// MaxX=10 (value at MinX=5 is C=30 -> MaxY), MaxY=30.
	want := evgraph.ToFixed(0.5*10 + 0.5*30)
	assert.Equal(t, want, sg.Weights[0])
}

func TestBuildOmegaGraphRejectsBadLambda(t *testing.T) {
	tg := evgraph.TradeoffGraph{}
	_, err := preprocess.BuildOmegaGraph(tg, 1.5)
	assert.ErrorIs(t, err, preprocess.ErrInvalidLambda)
}

func TestLinearApproxCollapsesToSecant(t *testing.T) {
	b := evgraph.NewBuilder(2)
	b.AddEdge(0, 1)
	topo, _, err := b.Build()
	require.NoError(t, err)

	tg, err := evgraph.NewTradeoffGraph(topo, []function.Piecewise{
		function.NewPiecewise(function.NewLimited(5, 10, function.Linear{D: -2, B: 5, C: 30})),
	})
	require.NoError(t, err)

	approx := preprocess.LinearApprox{}.Apply(tg)
	assert.InDelta(t, 30, approx.Weights[0].Value(5), 1e-9)
	assert.InDelta(t, 20, approx.Weights[0].Value(10), 1e-9)
}

func TestMinRateClipZeroesBelowThreshold(t *testing.T) {
	h := preprocess.MinRateClip{MinRateWatts: 40000}
	out := h.Apply([]float64{0, 7000, 50000})
	assert.Equal(t, []float64{0, 0, 50000}, out)
}
