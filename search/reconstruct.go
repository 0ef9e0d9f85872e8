package search

import (
	"github.com/ocharge/chargepath/function"
	"github.com/ocharge/chargepath/label"
)

// Step is one hop of a reconstructed path: the node arrived at, the edge
// used to get there (label.NoEdge if this hop was a charging stop rather
// than a graph traversal), and the arrival time/consumption at that hop.
type Step struct {
	Node        uint32
	EdgeIndex   uint32
	Charging    bool
	ArrivalTime float64
	Consumption float64
}

// Reconstruct walks a settled target label's parent chain back to the
// source (whose initial label has ParentEntry -1), returning the path in
// source-to-target order.
//
// A single concrete arrival value is only meaningful once chosen at the
// target, so Reconstruct starts there (at the target Cost's own MinX, the
// same value callers already report as the query's overall duration) and
// backward-propagates the real split at each hop via function.LinkDelta
// (graph edges) or function.ChargeComposeDelta (charging stops): the
// instant at which the predecessor's accrued cost and this hop's own curve
// actually combined to produce the chosen downstream value, rather than
// assuming it coincides with the predecessor's own unconstrained MinX. That
// assumption breaks whenever a capacity clip further down the path binds
// inside the sub-piece that pins the predecessor's portion of a link or
// charge-compose (spec §4.3, §4.1.1, §4.1.3).
func Reconstruct(ctx *Context, container *label.Container, target uint32, targetEntry label.Entry) ([]Step, error) {
	type hop struct {
		node  uint32
		entry label.Entry
	}

	chain := []hop{{node: target, entry: targetEntry}}
	cur := targetEntry

	for cur.ParentEntry >= 0 {
		parentSettled := container.SettledOf(cur.ParentNode)
		if cur.ParentEntry >= len(parentSettled) {
			return nil, ErrNoPath
		}
		parent := parentSettled[cur.ParentEntry]
		chain = append(chain, hop{node: cur.ParentNode, entry: parent})
		cur = parent
		if len(chain) > 1<<20 {
			return nil, ErrNoPath
		}
	}

	steps := make([]Step, len(chain))
	x := targetEntry.Cost.MinX()
	for i := 0; i < len(chain); i++ {
		h := chain[i]
		charging := h.entry.EdgeIndex == label.NoEdge && h.entry.ParentEntry >= 0
		steps[i] = Step{
			Node:        h.node,
			EdgeIndex:   h.entry.EdgeIndex,
			Charging:    charging,
			ArrivalTime: x,
			Consumption: h.entry.Cost.Value(x),
		}
		if h.entry.ParentEntry < 0 {
			break
		}

		parent := chain[i+1].entry
		switch {
		case charging:
			penalized := x - ctx.ChargingPenalty
			curve := ctx.Stations.Weight(int(h.node))
			if delta, ok := function.ChargeComposeDelta(parent.Cost, curve, penalized); ok {
				x = delta
			} else {
				x = parent.Cost.MinX()
			}
		default:
			edge := ctx.Graph.Weights[h.entry.EdgeIndex]
			if delta, ok := function.LinkDelta(parent.Cost, edge, x); ok {
				x = delta
			} else {
				x = parent.Cost.MinX()
			}
		}
	}

	for l, r := 0, len(steps)-1; l < r; l, r = l+1, r-1 {
		steps[l], steps[r] = steps[r], steps[l]
	}
	return steps, nil
}
