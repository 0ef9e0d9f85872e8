package preprocess

import (
	"github.com/ocharge/chargepath/charger"
	"github.com/ocharge/chargepath/evgraph"
	"github.com/ocharge/chargepath/function"
)

// Heuristic narrows a TradeoffGraph or a Stations set before the label-
// setting search runs, trading completeness for speed. Each Heuristic
// documents exactly what optimality guarantee it gives up.
type Heuristic interface {
	// Name identifies the heuristic for logging/metrics.
	Name() string
}

// LinearApprox replaces every edge's tradeoff curve with its two-point
// linear secant (from (MinX,MaxY) to (MaxX,MinY)), collapsing Link's
// piecewise bookkeeping to constant-time per edge at the cost of
// overestimating every interior point's consumption — safe for an
// admissible potential, unsafe as the final answer.
type LinearApprox struct{}

func (LinearApprox) Name() string { return "linear-approx" }

// Apply returns a new TradeoffGraph with every edge's curve replaced by
// its linear secant.
func (LinearApprox) Apply(tg evgraph.TradeoffGraph) evgraph.TradeoffGraph {
	out := make([]function.Piecewise, len(tg.Weights))
	for i, f := range tg.Weights {
		minX, maxX := f.MinX(), f.MaxX()
		maxY, minY := f.MaxY(), f.MinY()
		if maxX <= minX {
			out[i] = f
			continue
		}
		slope := (minY - maxY) / (maxX - minX)
		secant := function.Linear{D: slope, B: minX, C: maxY}
		out[i] = function.NewPiecewise(function.NewLimited(minX, maxX, secant))
	}
	return evgraph.TradeoffGraph{Topology: tg.Topology, Weights: out}
}

// MinRateClip drops any charger whose rate falls below a threshold,
// treating slow chargers as though they did not exist. Cheap pruning for
// a routing request that has declared it will not tolerate slow
// charging, at the cost of missing routes that only a slow charger makes
// feasible.
type MinRateClip struct {
	MinRateWatts float64
}

func (MinRateClip) Name() string { return "min-rate-clip" }

// Apply returns a copy of stationRates with every rate below the
// threshold zeroed out (Stations.Weighted treats a zero rate as
// "no charger").
func (h MinRateClip) Apply(stationRates []float64) []float64 {
	out := make([]float64, len(stationRates))
	for i, r := range stationRates {
		if r >= h.MinRateWatts {
			out[i] = r
		}
	}
	return out
}

// NoSuperCharger drops chargers at or above a rate threshold, the
// opposite bias to MinRateClip: useful for vehicles whose battery can't
// safely accept fast-charging rates.
type NoSuperCharger struct {
	MaxRateWatts float64
}

func (NoSuperCharger) Name() string { return "no-super-charger" }

// Apply returns a copy of stationRates with every rate at or above the
// threshold zeroed out.
func (h NoSuperCharger) Apply(stationRates []float64) []float64 {
	out := make([]float64, len(stationRates))
	for i, r := range stationRates {
		if r < h.MaxRateWatts {
			out[i] = r
		}
	}
	return out
}

// NoSlowCharger is MinRateClip specialised to charger.Model's own notion
// of "slow": any station whose marginal charging rate sits at or below
// the model's slowest registered rate is dropped. Useful when a caller
// wants "no dead weight" pruning without hand-picking a watts threshold.
type NoSlowCharger struct {
	Model           *charger.Model
	ChargingPenalty float64
}

func (NoSlowCharger) Name() string { return "no-slow-charger" }

// Apply drops every station whose effective rate matches the model's
// current slowest registered charger (there is nothing left to prune
// once every station already charges faster than that).
func (h NoSlowCharger) Apply(stationRates []float64) ([]float64, error) {
	floor, err := h.Model.MinRate(h.ChargingPenalty)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(stationRates))
	for i, r := range stationRates {
		if r == 0 {
			continue
		}
		if h.Model.EffectiveRate(r, h.ChargingPenalty) > floor {
			out[i] = r
		}
	}
	return out, nil
}
