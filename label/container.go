package label

import "github.com/ocharge/chargepath/function"

// NodeLabels holds every live Entry currently known for one node: a
// settled set, frozen once popped off the search frontier, and an
// unsettled set still open to revision by better-arriving candidates.
type NodeLabels struct {
	Settled   []Entry
	Unsettled []Entry
}

// Container is the per-node label storage for one running search (spec
// §4.2's Label Container), generalising a scalar Dijkstra's single
// dist[]/visited[] pair into a dominance-pruned set per node.
type Container struct {
	xEps, yEps float64
	nodes      []NodeLabels
}

// NewContainer allocates a Container for a graph with numNodes nodes.
// xEps/yEps are the dominance tolerances passed through to
// function.Dominates/ClipDominated.
func NewContainer(numNodes int, xEps, yEps float64) *Container {
	return &Container{xEps: xEps, yEps: yEps, nodes: make([]NodeLabels, numNodes)}
}

// Offer attempts to add a candidate Entry at node n. It is rejected
// outright if any existing settled or unsettled label at n already
// dominates it; otherwise it is added and any unsettled labels it itself
// dominates are clipped or removed. ok reports whether e survived.
func (c *Container) Offer(n uint32, e Entry) (ok bool) {
	nl := &c.nodes[n]
	for _, existing := range nl.Settled {
		if function.Dominates(existing.Cost, e.Cost, c.xEps, c.yEps) {
			return false
		}
	}
	for _, existing := range nl.Unsettled {
		if function.Dominates(existing.Cost, e.Cost, c.xEps, c.yEps) {
			return false
		}
	}

	kept := nl.Unsettled[:0]
	for _, existing := range nl.Unsettled {
		if clipped, ok := function.ClipDominated(e.Cost, existing.Cost, c.xEps, c.yEps); ok {
			existing.Cost = clipped
			kept = append(kept, existing)
		}
	}
	nl.Unsettled = append(kept, e)
	return true
}

// Pop extracts the lowest-Key entry from node n's unsettled set, moves it
// to settled, and returns it along with its settled index (the value a
// child label should record as ParentEntry). ok is false if n has no
// unsettled entries.
func (c *Container) Pop(n uint32) (e Entry, settledIndex int, ok bool) {
	nl := &c.nodes[n]
	if len(nl.Unsettled) == 0 {
		return Entry{}, 0, false
	}
	best := 0
	for i := 1; i < len(nl.Unsettled); i++ {
		if nl.Unsettled[i].Key < nl.Unsettled[best].Key {
			best = i
		}
	}
	e = nl.Unsettled[best]
	last := len(nl.Unsettled) - 1
	nl.Unsettled[best] = nl.Unsettled[last]
	nl.Unsettled = nl.Unsettled[:last]

	nl.Settled = append(nl.Settled, e)
	return e, len(nl.Settled) - 1, true
}

// MinKey returns the smallest Key across node n's unsettled entries, the
// value search.Run requeues n under after each Pop. ok is false if n has
// no unsettled entries left.
func (c *Container) MinKey(n uint32) (key int32, ok bool) {
	nl := &c.nodes[n]
	if len(nl.Unsettled) == 0 {
		return 0, false
	}
	best := nl.Unsettled[0].Key
	for _, e := range nl.Unsettled[1:] {
		if e.Key < best {
			best = e.Key
		}
	}
	return best, true
}

// Dominated reports whether node n's settled labels, taken together,
// already dominate cost — used to stall relaxation out of an
// already-beaten label (spec's target-stalling check).
func (c *Container) Dominated(n uint32, cost function.Piecewise) bool {
	nl := &c.nodes[n]
	if len(nl.Settled) == 0 {
		return false
	}
	candidates := make([]function.Piecewise, len(nl.Settled))
	for i, e := range nl.Settled {
		candidates[i] = e.Cost
	}
	envelope := function.LowerEnvelope(candidates)
	return function.Dominates(envelope, cost, c.xEps, c.yEps)
}

// Unsettled returns node n's current open candidate set.
func (c *Container) Unsettled(n uint32) []Entry { return c.nodes[n].Unsettled }

// SettledOf returns node n's frozen candidate set.
func (c *Container) SettledOf(n uint32) []Entry { return c.nodes[n].Settled }

// Valid reports whether n is in range for this Container.
func (c *Container) Valid(n uint32) bool { return int(n) < len(c.nodes) }
