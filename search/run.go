package search

import (
	"errors"
	"sort"

	"github.com/ocharge/chargepath/function"
	"github.com/ocharge/chargepath/label"
)

// Stats counts relaxation events for one Run, used by S5/S6-style
// comparisons across Policy implementations and exported to package
// stats' registry by cmd/runner.
type Stats struct {
	Relaxations int
	Pops        int
	Pushes      int
}

// Result is everything Run learns about one source/target query: every
// settled label at target (Labels, sorted ascending by Key — the lowest
// is the fastest-arrival answer) plus the Container/Stats needed to
// Reconstruct a path or inspect search behaviour.
type Result struct {
	Source, Target uint32
	Labels         []label.Entry
	Container      *label.Container
	Stats          Stats
}

// errNoLinkCandidates is internal: every piece-pair of a Link failed
// (e.g. a degenerate domain with no overlap).
var errNoLinkCandidates = errors.New("search: no feasible link candidates")

// Run executes the label-setting propagation loop (spec §4.3) from
// source towards target using policy to key the frontier. Target
// stalling (discarding a popped label once target's settled set already
// dominates it) and min-key early termination are always enabled.
func Run(ctx *Context, source, target uint32, policy Policy) (*Result, error) {
	if !ctx.Graph.Valid(source) {
		return nil, ErrSourceOutOfRange
	}
	if !ctx.Graph.Valid(target) {
		return nil, ErrTargetOutOfRange
	}

	numNodes := ctx.Graph.NumNodes
	labels := label.NewContainer(numNodes, ctx.XEps, ctx.YEps)
	queue := label.NewQueue()
	stats := Stats{}

	zero := function.NewPiecewise(function.NewLimited(0, 0, function.Constant{C: 0}))
	initKey, _ := policy.Key(source, zero)
	labels.Offer(source, label.Entry{
		Cost:        zero,
		Key:         initKey,
		ParentNode:  source,
		ParentEntry: -1,
		EdgeIndex:   label.NoEdge,
	})
	queue.Push(source, initKey)
	stats.Pushes++

	var bestTargetKey int32
	haveTargetLabel := false

	for queue.Len() > 0 {
		u, topKey, _ := queue.Pop()
		stats.Pops++

		if haveTargetLabel && topKey > bestTargetKey {
			break
		}

		top, topEntryIdx, ok := labels.Pop(u)
		if !ok {
			continue
		}
		if k, stillOpen := labels.MinKey(u); stillOpen {
			queue.Push(u, k)
		}

		if u == target {
			if !haveTargetLabel || top.Key < bestTargetKey {
				bestTargetKey = top.Key
				haveTargetLabel = true
			}
			continue
		}

		if labels.Dominated(target, top.Cost) {
			continue
		}

		relaxEdges(ctx, labels, queue, policy, &stats, u, top, topEntryIdx)
		relaxCharger(ctx, labels, queue, policy, &stats, u, top, topEntryIdx)
	}

	targetLabels := append([]label.Entry(nil), labels.SettledOf(target)...)
	sort.SliceStable(targetLabels, func(i, j int) bool { return targetLabels[i].Key < targetLabels[j].Key })

	return &Result{
		Source:    source,
		Target:    target,
		Labels:    targetLabels,
		Container: labels,
		Stats:     stats,
	}, nil
}

// linkCosts composes a label's accrued cost with an edge's own tradeoff
// curve, generalising function.LinkPiecewise (one piecewise side, one
// Limited side) to two full piecewise curves by linking every piece pair
// and folding the results through function.LowerEnvelope.
func linkCosts(f, g function.Piecewise) (function.Piecewise, error) {
	if len(g.Pieces) == 1 {
		return function.LinkPiecewise(f, g.Pieces[0])
	}
	candidates := make([]function.Piecewise, 0, len(g.Pieces))
	for _, gp := range g.Pieces {
		sub, err := function.LinkPiecewise(f, gp)
		if err != nil {
			continue
		}
		candidates = append(candidates, sub)
	}
	if len(candidates) == 0 {
		return function.Piecewise{}, errNoLinkCandidates
	}
	return function.LowerEnvelope(candidates), nil
}

func relaxEdges(ctx *Context, labels *label.Container, queue *label.Queue, policy Policy, stats *Stats, u uint32, top label.Entry, topEntryIdx int) {
	g := ctx.Graph
	start, end := g.EdgesOf(u)
	for ei := start; ei < end; ei++ {
		v := g.Targets[ei]
		// Parent prune: never walk straight back to where this label came from.
		if v == top.ParentNode && top.EdgeIndex != label.NoEdge {
			continue
		}

		stats.Relaxations++
		tentative, err := linkCosts(top.Cost, g.Weights[ei])
		if err != nil {
			continue
		}

		clipped, ok := tentative.ClipY(0, ctx.Capacity)
		if !ok {
			continue
		}

		key, ok := policy.Key(v, clipped)
		if !ok {
			continue
		}

		entry := label.Entry{
			Cost:        clipped,
			Key:         key,
			ParentNode:  u,
			ParentEntry: topEntryIdx,
			EdgeIndex:   ei,
		}
		offerAndRequeue(labels, queue, stats, v, entry)
	}
}

func relaxCharger(ctx *Context, labels *label.Container, queue *label.Queue, policy Policy, stats *Stats, u uint32, top label.Entry, topEntryIdx int) {
	if ctx.Stations == nil || !ctx.Stations.Weighted(int(u)) {
		return
	}
	// Don't re-charge immediately after already having charged at u on
	// the very last hop (no graph edge separates the two stops).
	if top.ParentNode == u && top.EdgeIndex == label.NoEdge {
		return
	}

	curve := ctx.Stations.Weight(int(u))
	composed, err := function.ChargeCompose(top.Cost, curve)
	if err != nil {
		return
	}

	for _, piece := range composed.Pieces {
		shifted := function.NewPiecewise(piece).ShiftX(ctx.ChargingPenalty)
		clipped, ok := shifted.ClipY(0, ctx.Capacity)
		if !ok {
			continue
		}
		key, ok := policy.Key(u, clipped)
		if !ok {
			continue
		}
		entry := label.Entry{
			Cost:        clipped,
			Key:         key,
			ParentNode:  u,
			ParentEntry: topEntryIdx,
			EdgeIndex:   label.NoEdge,
		}
		offerAndRequeue(labels, queue, stats, u, entry)
	}
}

func offerAndRequeue(labels *label.Container, queue *label.Queue, stats *Stats, node uint32, entry label.Entry) {
	if !labels.Offer(node, entry) {
		return
	}
	if k, ok := labels.MinKey(node); ok {
		queue.Push(node, k)
		stats.Pushes++
	}
}
