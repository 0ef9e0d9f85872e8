package potential

import "github.com/ocharge/chargepath/evgraph"

// Shift reweights every edge of g as w'(u,v) = w(u,v) + pot(v) - pot(u),
// the standard Johnson-style transform that folds an A* potential into
// the graph itself. If pot is consistent (satisfies the triangle
// inequality along every edge) every reweighted edge stays non-negative,
// which is what a non-negative-weight Dijkstra such as ScalarDijkstra
// assumes.
//
// Shift does not itself verify non-negativity: an inadmissible or
// inconsistent Potential can still produce a negative edge here, and
// ScalarDijkstra does not check for negative weights either.
func Shift(g evgraph.ScalarGraph, pot Potential) evgraph.ScalarGraph {
	out := make([]int32, len(g.Weights))
	for u := 0; u < g.NumNodes; u++ {
		start, end := g.EdgesOf(uint32(u))
		pu := pot.Value(uint32(u))
		for e := start; e < end; e++ {
			v := g.Targets[e]
			out[e] = g.Weights[e] + pot.Value(v) - pu
		}
	}
	return evgraph.ScalarGraph{Topology: g.Topology, Weights: out}
}
