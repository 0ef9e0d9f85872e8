// Package chargepath computes multi-criteria shortest paths for
// electric vehicles over a road network where battery state of charge
// constrains reachability: every edge and charging stop is a
// time-to-energy tradeoff curve rather than a single scalar weight, and
// the search keeps every mutually undominated label per node rather than
// collapsing to one best distance.
//
// Package layout:
//
//	function/   — piecewise time/energy tradeoff curves: link, compose,
//	              dominance, lower envelope
//	evgraph/    — immutable forward-star graphs, fixed-point scale,
//	              derived scalar reductions (MinDuration/MinConsumption/...)
//	charger/    — per-rate charging deficit curves and the station lookup
//	label/      — the settled/unsettled label container and addressable
//	              priority queue the search runs on
//	potential/  — A* potentials (Zero, reverse-Dijkstra "fastest", Omega)
//	              and the negative-weight shift that folds one into a graph
//	preprocess/ — tradeoff-to-scalar scalarization and pruning heuristics
//	search/     — the label-setting propagation loop and path reconstruction
//	ioformat/   — the derived-graph binary format, query CSV, result JSON
//	stats/      — prometheus counters and an optional runtime memory dump
//	runconfig/  — CLI flag/env/file configuration resolution
//	chargelog/  — structured logging setup
//	cmd/runner/ — the query-runner binary
package chargepath
