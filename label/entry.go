package label

import "github.com/ocharge/chargepath/function"

// Entry is one undominated candidate cost curve reaching a node: the
// time-to-consumption tradeoff achievable by arriving via EdgeIndex from
// ParentNode. A node may hold several Entries at once, each representing a
// different time/energy balance that no other known path beats outright.
//
// Key is the fixed-point priority this Entry was queued under (its own
// min_x plus whatever potential search.Policy added) at the time it was
// pushed. It is not recomputed when a later Offer clips Cost down to a
// narrower domain — a documented simplification: clipping removes
// dominated leading or trailing pieces, so a clipped entry's MinX can only
// grow or hold and its stale key can only be earlier than its true key,
// which costs at most a few extra pops, never incorrectness.
//
// Entry intentionally does not carry a symbolic delta/split function for
// path reconstruction: the optimal split at any hop is only meaningful once
// a single concrete arrival value is chosen at the very end of a search, so
// it is recomputed on demand by search.Reconstruct via function.LinkDelta
// and function.ChargeComposeDelta rather than threaded through every
// Link/ChargeCompose call along the way.
type Entry struct {
	Cost function.Piecewise
	Key  int32

	// ParentNode is where this label's final edge (or charging stop)
	// originated from; ParentEntry indexes that node's Settled slice to
	// pick out the exact predecessor label (a node may have several
	// mutually undominated settled labels). EdgeIndex is the graph edge
	// traversed to reach this label, or NoEdge if it arose from a
	// charging stop at ParentNode rather than a graph edge.
	ParentNode  uint32
	ParentEntry int
	EdgeIndex   uint32
}

// NoEdge marks an Entry produced by charging rather than by traversing a
// graph edge, and also marks the source's initial zero label.
const NoEdge = ^uint32(0)
