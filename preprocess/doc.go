// Package preprocess derives auxiliary scalar graphs and admissible
// pruning heuristics from a full TradeoffGraph, ahead of running the
// label-setting search in package search.
//
// BuildOmegaGraph produces the scalarized "Omega" graph the spec's A*
// potentials bound against: a single linear combination of worst-case
// time and worst-case energy per edge, collapsing the two-criteria
// tradeoff curve into one scalar weight cheap enough to run a plain
// reverse Dijkstra over (potential.Reverse, potential.NewLandmarkSet).
// The heuristics in heuristics.go provide cheaper, looser alternatives
// for graphs too large to afford even that.
package preprocess
