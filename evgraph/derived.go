package evgraph

import "github.com/ocharge/chargepath/function"

// TradeoffGraph is the base derived graph: every edge carries the full
// time-to-consumption piecewise tradeoff curve computed by preprocessing
// the raw road segment + vehicle model.
type TradeoffGraph struct {
	Topology
	Weights []function.Piecewise
}

// NewTradeoffGraph pairs a topology with one tradeoff curve per edge, in
// the same order the topology's Targets were compiled (i.e. indexed by
// the Builder.Build permutation, already applied by the caller).
func NewTradeoffGraph(topo Topology, weights []function.Piecewise) (TradeoffGraph, error) {
	if len(weights) != topo.NumEdges() {
		return TradeoffGraph{}, ErrWeightCountMismatch
	}
	return TradeoffGraph{Topology: topo, Weights: weights}, nil
}

// ScalarGraph is a derived graph with one fixed-point scalar weight per
// edge: the MinDuration, MinConsumption, MaxConsumption, and (after
// preprocess's negative-weight shift) Omega graphs all share this shape.
type ScalarGraph struct {
	Topology
	Weights []int32
}

func newScalarGraph(topo Topology, weights []int32) (ScalarGraph, error) {
	if len(weights) != topo.NumEdges() {
		return ScalarGraph{}, ErrWeightCountMismatch
	}
	return ScalarGraph{Topology: topo, Weights: weights}, nil
}

// MinDurationGraph reduces every edge's tradeoff curve to the fastest
// feasible travel time (the curve's MinX): the scalar graph a landmark
// potential's reverse search runs over (spec's MinDuration derived graph).
func MinDurationGraph(tg TradeoffGraph) (ScalarGraph, error) {
	w := make([]int32, len(tg.Weights))
	for i, f := range tg.Weights {
		w[i] = ToFixed(f.MinX())
	}
	return newScalarGraph(tg.Topology, w)
}

// MinConsumptionGraph reduces every edge to its lowest-possible energy use
// (the curve's MinY, reached by driving as slowly as the curve allows).
func MinConsumptionGraph(tg TradeoffGraph) (ScalarGraph, error) {
	w := make([]int32, len(tg.Weights))
	for i, f := range tg.Weights {
		w[i] = ToFixed(f.MinY())
	}
	return newScalarGraph(tg.Topology, w)
}

// MaxConsumptionGraph reduces every edge to its highest possible energy
// use (the curve's MaxY, reached when driving as fast as the curve
// allows). The search and the potentials in this module do not use it.
func MaxConsumptionGraph(tg TradeoffGraph) (ScalarGraph, error) {
	w := make([]int32, len(tg.Weights))
	for i, f := range tg.Weights {
		w[i] = ToFixed(f.MaxY())
	}
	return newScalarGraph(tg.Topology, w)
}
