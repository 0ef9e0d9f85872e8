package main

import (
	"fmt"

	"github.com/ocharge/chargepath/charger"
	"github.com/ocharge/chargepath/evgraph"
	"github.com/ocharge/chargepath/ioformat"
	"github.com/ocharge/chargepath/preprocess"
	"github.com/ocharge/chargepath/runconfig"
)

// loadedGraph bundles everything a query needs, built once per process
// and shared read-only across every worker.
type loadedGraph struct {
	Tradeoff evgraph.TradeoffGraph
	Stations *charger.Stations
	Model    *charger.Model

	minDuration    evgraph.ScalarGraph
	minConsumption evgraph.ScalarGraph
}

// loadGraph reads the derived-graph files sharing the "BASE" prefix
// (BASE_first_edges.bin, BASE_targets.bin, BASE_weights.bin and
// BASE_chargers.bin), builds the charger model, and applies the selected
// preprocessing heuristic.
func loadGraph(cfg *runconfig.Config) (*loadedGraph, error) {
	base := cfg.GraphBase
	topo, err := ioformat.LoadTopology(base+"_first_edges.bin", base+"_targets.bin")
	if err != nil {
		return nil, fmt.Errorf("load topology: %w", err)
	}
	weights, err := ioformat.LoadWeights(base+"_weights.bin", topo)
	if err != nil {
		return nil, fmt.Errorf("load weights: %w", err)
	}
	tg, err := evgraph.NewTradeoffGraph(topo, weights)
	if err != nil {
		return nil, fmt.Errorf("build tradeoff graph: %w", err)
	}

	rates, err := ioformat.LoadChargerRates(base+"_chargers.bin", topo.NumNodes)
	if err != nil {
		return nil, fmt.Errorf("load chargers: %w", err)
	}

	model := charger.NewModel(cfg.Capacity)

	rates, err = applyChargerHeuristic(cfg, model, rates)
	if err != nil {
		return nil, fmt.Errorf("apply heuristic: %w", err)
	}

	if cfg.Heuristic == runconfig.HeuristicLinear {
		tg = preprocess.LinearApprox{}.Apply(tg)
	}

	stations := charger.NewStations(model, rates)

	minDuration, err := evgraph.MinDurationGraph(tg)
	if err != nil {
		return nil, fmt.Errorf("build min-duration graph: %w", err)
	}
	minConsumption, err := evgraph.MinConsumptionGraph(tg)
	if err != nil {
		return nil, fmt.Errorf("build min-consumption graph: %w", err)
	}

	return &loadedGraph{
		Tradeoff:       tg,
		Stations:       stations,
		Model:          model,
		minDuration:    minDuration,
		minConsumption: minConsumption,
	}, nil
}

// applyChargerHeuristic narrows the charger-rate table per --heuristic,
// after first registering every non-zero rate's curve with model.
func applyChargerHeuristic(cfg *runconfig.Config, model *charger.Model, rates []float64) ([]float64, error) {
	var maxWatts float64
	for _, r := range rates {
		if r != 0 {
			model.Register(r)
		}
		if r > maxWatts {
			maxWatts = r
		}
	}

	switch cfg.Heuristic {
	case runconfig.HeuristicOnlyFast, runconfig.HeuristicMinRate:
		if maxWatts == 0 {
			return rates, nil // no chargers at all, nothing to clip
		}
		return preprocess.MinRateClip{MinRateWatts: maxWatts / 2}.Apply(rates), nil
	case runconfig.HeuristicNoSuperCharger:
		if maxWatts == 0 {
			return rates, nil
		}
		return preprocess.NoSuperCharger{MaxRateWatts: maxWatts}.Apply(rates), nil
	case runconfig.HeuristicNoSlowCharger:
		h := preprocess.NoSlowCharger{Model: model, ChargingPenalty: cfg.ChargingPenalty}
		return h.Apply(rates)
	default:
		return rates, nil
	}
}
