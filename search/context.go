package search

import (
	"github.com/ocharge/chargepath/charger"
	"github.com/ocharge/chargepath/evgraph"
	"github.com/ocharge/chargepath/function"
)

// Context bundles everything one query's Run needs: the graph, the
// charger network, and the query's own battery/timing parameters. Per
// spec §5, a Context is read-only shared state — safe to hand the same
// instance to many concurrently running queries, each of which owns its
// own label.Container/label.Queue internally.
type Context struct {
	Graph    evgraph.TradeoffGraph
	Stations *charger.Stations

	// Capacity is the vehicle's battery capacity; every label's cost is
	// clipped to y in [0, Capacity].
	Capacity float64

	// ChargingPenalty is a fixed time overhead applied to every charging
	// stop, shifting the charged curve right in x by that amount.
	ChargingPenalty float64

	XEps, YEps float64
}

// NewContext returns a Context with the spec's default epsilons
// (function.DefaultXEpsilon/DefaultYEpsilon).
func NewContext(g evgraph.TradeoffGraph, stations *charger.Stations, capacity, chargingPenalty float64) *Context {
	return &Context{
		Graph:           g,
		Stations:        stations,
		Capacity:        capacity,
		ChargingPenalty: chargingPenalty,
		XEps:            function.DefaultXEpsilon,
		YEps:            function.DefaultYEpsilon,
	}
}
