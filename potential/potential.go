package potential

// Potential is a per-node lower bound on the remaining fixed-point cost
// from that node to the search's target. search.Run adds Value(n) to a
// label's own key when ordering the frontier, so nodes the potential
// says are still far from the target are deferred even if their raw
// label cost is currently smallest.
//
// A Potential must be admissible (never overestimate true remaining
// cost) for the search to stay optimal. Shift does not relax that
// requirement: it folds a potential into a graph's edge weights, and an
// inconsistent potential can leave negative edges there.
type Potential interface {
	Value(node uint32) int32
}

// Func adapts a plain function into a Potential.
type Func func(node uint32) int32

// Value implements Potential.
func (f Func) Value(node uint32) int32 { return f(node) }
