// Package potential supplies A*-style lower-bound heuristics that the
// search package's priority queue keys off of, so labels near the
// destination are explored before labels that are provably farther away.
//
// Every Potential is a per-node lower bound on remaining cost to some
// fixed target, derived from one of the scalar derived graphs in
// evgraph (MinDurationGraph, MinConsumptionGraph, ...) by running a
// reverse scalar Dijkstra from the target (ScalarDijkstra/Reverse) or,
// for larger graphs, approximating it from a handful of precomputed
// Landmark nodes via the triangle inequality. Shift reweights a graph's
// edges by a potential, following Johnson's technique; the reweighted
// edges are non-negative only when the potential is consistent. The
// search package does not call Shift.
package potential
