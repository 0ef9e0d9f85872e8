package search

import (
	"math"

	"github.com/ocharge/chargepath/evgraph"
	"github.com/ocharge/chargepath/function"
	"github.com/ocharge/chargepath/potential"
)

// Policy computes the fixed-point priority a tentative label is queued
// under (spec §4.4's potential keys). Key returns ok=false when the
// label should be skipped outright (an inconsistent or saturated
// potential reports the node unreachable).
type Policy interface {
	Key(v uint32, tentative function.Piecewise) (key int32, ok bool)
}

// ZeroPolicy keys every label by its own fastest arrival time alone,
// reducing Run to a plain label-setting Dijkstra with no lookahead.
type ZeroPolicy struct{}

func (ZeroPolicy) Key(_ uint32, tentative function.Piecewise) (int32, bool) {
	return evgraph.ToFixed(tentative.MinX()), true
}

// FastestPolicy adds an admissible reverse-Dijkstra potential (typically
// potential.Reverse over evgraph.MinDurationGraph, the spec's "Landmark
// (fastest)" potential) to every label's own fastest-arrival time.
type FastestPolicy struct {
	Pi potential.Potential
}

func (p FastestPolicy) Key(v uint32, tentative function.Piecewise) (int32, bool) {
	pv := p.Pi.Value(v)
	if pv >= evgraph.Inf {
		return 0, false
	}
	return evgraph.ToFixed(tentative.MinX()) + pv, true
}

// OmegaPolicy implements the spec's Omega potential: three precomputed
// reverse trees (Dt over MinDuration, Dc over MinConsumption, Domega over
// the scalarized Omega graph) combine with the label's own curve to
// produce the tighter of a "no more charging needed" bound and a
// "one more charging stop" bound.
type OmegaPolicy struct {
	Dt, Dc, Domega potential.Potential
	// RhoMin is the slowest charge rate present in the network, expressed
	// as a negative number of energy units recovered per fixed-point time
	// unit (Key divides C-y by -RhoMin to get a non-negative charging time).
	RhoMin   float64
	Capacity float64
}

func (p OmegaPolicy) Key(v uint32, tentative function.Piecewise) (int32, bool) {
	dt := p.Dt.Value(v)
	dc := p.Dc.Value(v)
	domega := p.Domega.Value(v)
	if dt >= evgraph.Inf || dc >= evgraph.Inf || domega >= evgraph.Inf {
		return 0, false
	}

	remaining := p.Capacity - evgraph.FromFixed(dc)

	var tradeoffKey int32
	if tentative.MaxY() <= remaining {
		tradeoffKey = evgraph.ToFixed(tentative.MinX()) + dt
	} else if x, ok := tentative.Inverse(remaining); ok {
		tradeoffKey = evgraph.ToFixed(x) + dt
	} else {
		tradeoffKey = evgraph.Inf
	}

	xOmega := tentative.InverseDeriv(p.RhoMin)
	if xOmega < tentative.MinX() {
		xOmega = tentative.MinX()
	}
	if xOmega > tentative.MaxX() {
		xOmega = tentative.MaxX()
	}
	remainingAtOmega := p.Capacity - tentative.Value(xOmega)
	chargingTime := remainingAtOmega / -p.RhoMin
	if math.IsInf(chargingTime, 0) || math.IsNaN(chargingTime) {
		chargingTime = math.Inf(1)
	}
	chargingKey := evgraph.ToFixed(xOmega) + domega + evgraph.ToFixed(chargingTime)

	key := tradeoffKey
	if chargingKey < key {
		key = chargingKey
	}
	if key >= evgraph.Inf {
		return 0, false
	}
	return key, true
}

// LazyPolicy wraps any Policy's potential lookups behind potential.Lazy,
// so a single-target query only pays for the reverse-tree nodes the
// forward search actually visits (spec's "lazy landmark variant").
//
// This is a documented simplification of the true incremental variant:
// rather than interleaving the forward search with a paused/resumed
// reverse Dijkstra that settles one more node per query, Lazy memoizes
// whatever Potential it wraps (here typically a full potential.Reverse
// tree) so repeated Value calls for the same node are cheap, without
// changing when the underlying tree itself gets computed.
type LazyPolicy struct {
	inner Policy
}

// NewLazyPolicy wraps inner unchanged; callers achieve the memoization
// benefit by building inner's Potential fields from potential.NewLazy.
func NewLazyPolicy(inner Policy) LazyPolicy {
	return LazyPolicy{inner: inner}
}

func (p LazyPolicy) Key(v uint32, tentative function.Piecewise) (int32, bool) {
	return p.inner.Key(v, tentative)
}
