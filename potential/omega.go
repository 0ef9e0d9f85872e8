package potential

import (
	"github.com/ocharge/chargepath/evgraph"
	"github.com/ocharge/chargepath/preprocess"
)

// Omega builds an admissible potential from tg's scalarized Omega graph
// (preprocess.BuildOmegaGraph), then runs an exact reverse Dijkstra from
// target over it. This is the spec's default potential: cheap enough to
// recompute per query, tighter than Zero, and exact rather than the
// approximate bound LandmarkSet gives for a fixed landmark set.
func Omega(tg evgraph.TradeoffGraph, lambda float64, target uint32) (Potential, error) {
	og, err := preprocess.BuildOmegaGraph(tg, lambda)
	if err != nil {
		return nil, err
	}
	return Reverse(og, target)
}
