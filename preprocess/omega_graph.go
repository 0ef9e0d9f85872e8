package preprocess

import "github.com/ocharge/chargepath/evgraph"

// BuildOmegaGraph scalarizes tg into a single ScalarGraph by weighting
// each edge's worst-case time against its worst-case energy use:
//
//	omega(e) = lambda * MaxDuration(e) + (1-lambda) * MaxConsumption(e)
//
// Using the *worst* case on both axes (rather than MinDuration's
// fastest-time reduction) keeps the resulting potential admissible: no
// real path can cost less than this scalarization says a path of equal
// or greater time/energy would, so a reverse Dijkstra over the Omega
// graph never overestimates the true multi-criteria remaining cost.
//
// lambda must be in [0, 1]; 0 favors energy-only pruning, 1 favors
// time-only pruning, matching the spec's Omega-graph construction.
func BuildOmegaGraph(tg evgraph.TradeoffGraph, lambda float64) (evgraph.ScalarGraph, error) {
	if lambda < 0 || lambda > 1 {
		return evgraph.ScalarGraph{}, ErrInvalidLambda
	}

	weights := make([]int32, len(tg.Weights))
	for i, f := range tg.Weights {
		maxDuration := f.MaxX()
		maxConsumption := f.MaxY()
		omega := lambda*maxDuration + (1-lambda)*maxConsumption
		weights[i] = evgraph.ToFixed(omega)
	}

	// tg.Topology is already a valid CSR layout shared 1:1 with tg.Weights,
	// so the scalarized weights slot directly into the same Topology.
	return evgraph.ScalarGraph{Topology: tg.Topology, Weights: weights}, nil
}
