package evgraph

import "sort"

// BuilderOption configures a Builder before edges are added (functional
// options).
type BuilderOption func(*Builder)

// WithCapacityHint preallocates space for roughly n edges, avoiding
// repeated slice growth while loading a large derived-graph file.
func WithCapacityHint(n int) BuilderOption {
	return func(b *Builder) {
		b.from = make([]uint32, 0, n)
		b.to = make([]uint32, 0, n)
	}
}

// Builder accumulates (from, to) edges in any order and compiles them into
// an immutable forward-star Topology. Build also returns, for each output
// edge slot, the index of the original edge that landed there — callers
// reorder their own per-edge weight slices with it so weights stay
// attached to the correct edge after the stable sort into CSR order.
type Builder struct {
	numNodes int
	from, to []uint32
}

// NewBuilder returns a Builder for a graph with numNodes nodes (node ids
// must be in [0, numNodes)).
func NewBuilder(numNodes int, opts ...BuilderOption) *Builder {
	b := &Builder{numNodes: numNodes}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddEdge records a directed edge from -> to. Returns the edge's original
// index, to be used as the corresponding index into a parallel weight
// slice passed to a derived-graph constructor.
func (b *Builder) AddEdge(from, to uint32) int {
	idx := len(b.from)
	b.from = append(b.from, from)
	b.to = append(b.to, to)
	return idx
}

// Build compiles the accumulated edges into a Topology, grouped by source
// node, plus the permutation mapping each output slot to its original
// AddEdge index.
func (b *Builder) Build() (Topology, []int, error) {
	n := len(b.from)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(i, j int) bool { return b.from[perm[i]] < b.from[perm[j]] })

	firstEdge := make([]uint32, b.numNodes+1)
	targets := make([]uint32, n)
	for slot, orig := range perm {
		targets[slot] = b.to[orig]
		if int(b.from[orig]) >= b.numNodes {
			return Topology{}, nil, ErrInvalidNode
		}
		firstEdge[b.from[orig]+1]++
	}
	for i := 1; i <= b.numNodes; i++ {
		firstEdge[i] += firstEdge[i-1]
	}

	return Topology{NumNodes: b.numNodes, FirstEdge: firstEdge, Targets: targets}, perm, nil
}
