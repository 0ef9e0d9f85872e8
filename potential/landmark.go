package potential

import "github.com/ocharge/chargepath/evgraph"

// LandmarkSet precomputes, for a small fixed set of landmark nodes, the
// scalar distance from every node to each landmark and from each
// landmark to every node. ForTarget then derives an admissible A*
// potential for any target in O(len(landmarks)) per query via the
// triangle inequality (the ALT heuristic), avoiding a fresh reverse
// Dijkstra (potential.Reverse) every time the search target changes.
type LandmarkSet struct {
	nodes        []uint32
	distFromLand [][]int32 // distFromLand[i][v] = dist(landmark_i -> v)
	distToLand   [][]int32 // distToLand[i][v]   = dist(v -> landmark_i)
}

// NewLandmarkSet builds a LandmarkSet over g for the given landmark
// nodes. Landmarks spread across the graph (e.g. picked by farthest-point
// sampling) give tighter bounds than clustered ones, but any non-empty
// set is valid.
func NewLandmarkSet(g evgraph.ScalarGraph, landmarks []uint32) (*LandmarkSet, error) {
	if len(landmarks) == 0 {
		return nil, ErrNoLandmarks
	}

	rg, err := reverseTopology(g)
	if err != nil {
		return nil, err
	}

	ls := &LandmarkSet{
		nodes:        append([]uint32(nil), landmarks...),
		distFromLand: make([][]int32, len(landmarks)),
		distToLand:   make([][]int32, len(landmarks)),
	}
	for i, l := range landmarks {
		from, err := ScalarDijkstra(g, l)
		if err != nil {
			return nil, err
		}
		// dist(v -> l) in g equals dist(l -> v) in g's transpose.
		to, err := ScalarDijkstra(rg, l)
		if err != nil {
			return nil, err
		}
		ls.distFromLand[i] = from
		ls.distToLand[i] = to
	}
	return ls, nil
}

// ForTarget returns the ALT potential for routing towards target: for
// each candidate node v, the tightest of
//
//	dist(landmark -> target) - dist(landmark -> v)
//	dist(v -> landmark) - dist(target -> landmark)
//
// across all landmarks, skipping any bound that involves an unreachable
// (Inf) distance, clamped to 0 when every bound is non-positive.
func (ls *LandmarkSet) ForTarget(target uint32) Potential {
	return Func(func(v uint32) int32 {
		var best int32
		for i := range ls.nodes {
			from, to := ls.distFromLand[i], ls.distToLand[i]
			if from[target] < evgraph.Inf && from[v] < evgraph.Inf {
				if b := from[target] - from[v]; b > best {
					best = b
				}
			}
			if to[v] < evgraph.Inf && to[target] < evgraph.Inf {
				if b := to[v] - to[target]; b > best {
					best = b
				}
			}
		}
		return best
	})
}
