// Package search drives the label-setting propagation loop over a
// TradeoffGraph (spec §4.3): a generalised Dijkstra where each label
// carries a whole time/energy tradeoff curve instead of a scalar
// distance, labels at a node are kept only while mutually undominated
// (package label), and a Policy supplies the fixed-point key the
// frontier orders on — from a plain Dijkstra (Zero potential) up through
// the Omega policy's charging-aware lower bound.
//
// Run is the only entry point most callers need; Policy implementations
// and Reconstruct exist mainly so package cmd/runner can wire a CLI flag
// straight to a concrete Policy and so tests can assert on relaxation
// counts across policies (S5).
package search
