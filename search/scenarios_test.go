package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ocharge/chargepath/charger"
	"github.com/ocharge/chargepath/evgraph"
	"github.com/ocharge/chargepath/function"
	"github.com/ocharge/chargepath/potential"
	"github.com/ocharge/chargepath/search"
)

func buildGraph(t *testing.T, numNodes int, edges [][2]uint32, weights []function.Piecewise) evgraph.TradeoffGraph {
	t.Helper()
	b := evgraph.NewBuilder(numNodes)
	for _, e := range edges {
		b.AddEdge(e[0], e[1])
	}
	topo, perm, err := b.Build()
	require.NoError(t, err)
	reordered := make([]function.Piecewise, len(perm))
	for slot, orig := range perm {
		reordered[slot] = weights[orig]
	}
	tg, err := evgraph.NewTradeoffGraph(topo, reordered)
	require.NoError(t, err)
	return tg
}

// S1 — single linear edge, no charging.
func TestS1SingleLinearEdge(t *testing.T) {
	tg := buildGraph(t, 2, [][2]uint32{{0, 1}}, []function.Piecewise{
		function.NewPiecewise(function.NewLimited(1000, 1000, function.Constant{C: 500})),
	})
	ctx := search.NewContext(tg, nil, 2000, 0)

	res, err := search.Run(ctx, 0, 1, search.ZeroPolicy{})
	require.NoError(t, err)
	require.NotEmpty(t, res.Labels)

	best := res.Labels[0]
	for _, l := range res.Labels[1:] {
		if l.Key < best.Key {
			best = l
		}
	}
	assert.InDelta(t, 1000, best.Cost.MinX(), 1)
	assert.InDelta(t, 500, best.Cost.Value(best.Cost.MinX()), 1e-6)
}

// S3 — diamond, charging mandatory: the battery can't survive the full
// three-edge trip (500+100+1800=2400 > capacity 2000) unless node 1
// recharges it partway through.
func TestS3ChargingMandatory(t *testing.T) {
	edges := [][2]uint32{{0, 1}, {1, 2}, {2, 3}}
	weights := []function.Piecewise{
		function.NewPiecewise(function.NewLimited(1, 1, function.Constant{C: 500})),
		function.NewPiecewise(function.NewLimited(1, 1, function.Constant{C: 100})),
		function.NewPiecewise(function.NewLimited(1, 1, function.Constant{C: 1800})),
	}
	tg := buildGraph(t, 4, edges, weights)

	ctxNoCharger := search.NewContext(tg, nil, 2000, 0)
	resNoCharger, err := search.Run(ctxNoCharger, 0, 3, search.ZeroPolicy{})
	require.NoError(t, err)
	assert.Empty(t, resNoCharger.Labels, "trip should be infeasible without a charger")

	model := charger.NewModel(2000)
	stations := charger.NewStations(model, []float64{0, 22000, 0, 0})
	ctxWithCharger := search.NewContext(tg, stations, 2000, 0)
	resWithCharger, err := search.Run(ctxWithCharger, 0, 3, search.ZeroPolicy{})
	require.NoError(t, err)
	assert.NotEmpty(t, resWithCharger.Labels, "a charger at node 1 should make the trip feasible")

	best := resWithCharger.Labels[0]
	for _, l := range resWithCharger.Labels[1:] {
		if l.Key < best.Key {
			best = l
		}
	}
	steps, err := search.Reconstruct(ctxWithCharger, resWithCharger.Container, 3, best)
	require.NoError(t, err)
	require.NotEmpty(t, steps)

	sawCharging := false
	for _, s := range steps {
		if s.Charging {
			sawCharging = true
			assert.Equal(t, uint32(1), s.Node, "the only charger in this graph is at node 1")
		}
	}
	assert.True(t, sawCharging, "reconstructed path must record the mandatory charging stop")
}

// S4 — parent prune: 0->1->2->3, plus a 3->1 back edge that must never be
// taken immediately back to the parent.
func TestS4ParentPrune(t *testing.T) {
	edges := [][2]uint32{{0, 1}, {1, 2}, {2, 3}, {3, 1}}
	flat := func() function.Piecewise {
		return function.NewPiecewise(function.NewLimited(1, 1, function.Constant{C: 500}))
	}
	weights := []function.Piecewise{flat(), flat(), flat(), flat()}
	tg := buildGraph(t, 4, edges, weights)

	ctx := search.NewContext(tg, nil, 1e9, 0)
	res, err := search.Run(ctx, 0, 3, search.ZeroPolicy{})
	require.NoError(t, err)
	require.NotEmpty(t, res.Labels)

	best := res.Labels[0]
	for _, l := range res.Labels[1:] {
		if l.Key < best.Key {
			best = l
		}
	}
	steps, err := search.Reconstruct(ctx, res.Container, 3, best)
	require.NoError(t, err)

	nodes := make([]uint32, len(steps))
	for i, s := range steps {
		nodes[i] = s.Node
	}
	assert.Equal(t, []uint32{0, 1, 2, 3}, nodes)
}

// S5 — A* with an admissible potential must agree with plain Dijkstra on
// the target's best cost, and never relax strictly more edges.
func TestS5PotentialAgreesWithZero(t *testing.T) {
	edges := [][2]uint32{{0, 1}, {1, 2}, {0, 2}}
	flat := func(v float64) function.Piecewise {
		return function.NewPiecewise(function.NewLimited(1, 1, function.Constant{C: v}))
	}
	weights := []function.Piecewise{flat(500), flat(500), flat(1200)}
	tg := buildGraph(t, 3, edges, weights)

	ctxZero := search.NewContext(tg, nil, 1e9, 0)
	resZero, err := search.Run(ctxZero, 0, 2, search.ZeroPolicy{})
	require.NoError(t, err)

	md, err := evgraph.MinDurationGraph(tg)
	require.NoError(t, err)
	pi, err := potential.Reverse(md, 2)
	require.NoError(t, err)

	ctxFast := search.NewContext(tg, nil, 1e9, 0)
	resFast, err := search.Run(ctxFast, 0, 2, search.FastestPolicy{Pi: pi})
	require.NoError(t, err)

	bestOf := func(r *search.Result) float64 {
		best := r.Labels[0].Cost.MinX()
		for _, l := range r.Labels[1:] {
			if l.Cost.MinX() < best {
				best = l.Cost.MinX()
			}
		}
		return best
	}

	require.NotEmpty(t, resZero.Labels)
	require.NotEmpty(t, resFast.Labels)
	assert.InDelta(t, bestOf(resZero), bestOf(resFast), 1e-6)
	assert.LessOrEqual(t, resFast.Stats.Relaxations, resZero.Stats.Relaxations+1)
}
