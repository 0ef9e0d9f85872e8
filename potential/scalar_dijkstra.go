package potential

import (
	"container/heap"

	"github.com/ocharge/chargepath/evgraph"
)

// nodeItem is one entry in the scalar Dijkstra heap, following the
// teacher's lazy-decrease-key nodeItem/nodePQ shape: relaxations push a
// fresh duplicate rather than updating in place, and stale pops are
// filtered against settled on the way out.
type nodeItem struct {
	node uint32
	dist int32
}

type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return it
}

// reverseTopology builds the transpose of a forward-star Topology: every
// edge u->v becomes v->u, so a forward Dijkstra over the reversed graph
// from target computes each node's distance *to* target in the original
// graph.
func reverseTopology(g evgraph.ScalarGraph) (evgraph.ScalarGraph, error) {
	b := evgraph.NewBuilder(g.NumNodes, evgraph.WithCapacityHint(g.NumEdges()))
	origIdx := make([]int, 0, g.NumEdges())
	for u := uint32(0); u < uint32(g.NumNodes); u++ {
		start, end := g.EdgesOf(u)
		for e := start; e < end; e++ {
			v := g.Targets[e]
			origIdx = append(origIdx, int(e))
			b.AddEdge(v, u)
		}
	}
	topo, perm, err := b.Build()
	if err != nil {
		return evgraph.ScalarGraph{}, err
	}
	weights := make([]int32, len(perm))
	for slot, addIdx := range perm {
		weights[slot] = g.Weights[origIdx[addIdx]]
	}
	rev := evgraph.ScalarGraph{Topology: topo, Weights: weights}
	return rev, nil
}

// ScalarDijkstra runs a forward-star Dijkstra over g from source, using
// evgraph's int32 fixed-point scalar weights. It assumes every weight is
// non-negative, which holds for the MinDuration/MinConsumption/
// MaxConsumption derived graphs by construction.
func ScalarDijkstra(g evgraph.ScalarGraph, source uint32) ([]int32, error) {
	if !g.Valid(source) {
		return nil, ErrTargetNotFound
	}

	dist := make([]int32, g.NumNodes)
	visited := make([]bool, g.NumNodes)
	for i := range dist {
		dist[i] = evgraph.Inf
	}
	dist[source] = 0

	pq := make(nodePQ, 0, g.NumNodes)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{node: source, dist: 0})

	for pq.Len() > 0 {
		it := heap.Pop(&pq).(*nodeItem)
		u, d := it.node, it.dist
		if visited[u] {
			continue
		}
		visited[u] = true

		start, end := g.EdgesOf(u)
		for e := start; e < end; e++ {
			v := g.Targets[e]
			nd := d + g.Weights[e]
			if nd < dist[v] {
				dist[v] = nd
				heap.Push(&pq, &nodeItem{node: v, dist: nd})
			}
		}
	}

	return dist, nil
}

// Reverse returns a Potential giving each node's exact scalar distance to
// target in g, computed by one forward Dijkstra over g's transpose.
// Because it is exact rather than approximate, Reverse is always
// admissible and never needs Shift.
func Reverse(g evgraph.ScalarGraph, target uint32) (Potential, error) {
	rg, err := reverseTopology(g)
	if err != nil {
		return nil, err
	}
	dist, err := ScalarDijkstra(rg, target)
	if err != nil {
		return nil, err
	}
	return Func(func(n uint32) int32 {
		if int(n) >= len(dist) {
			return evgraph.Inf
		}
		return dist[n]
	}), nil
}
