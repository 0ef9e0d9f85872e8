package main

import (
	"fmt"

	"github.com/ocharge/chargepath/ioformat"
	"github.com/ocharge/chargepath/potential"
	"github.com/ocharge/chargepath/runconfig"
	"github.com/ocharge/chargepath/search"
)

// buildPolicy constructs the search.Policy named by cfg.Potential for
// one query's target. Landmark/Omega potentials are reverse searches
// rooted at target, so they are rebuilt per query rather than shared —
// cheap relative to the forward search itself (spec §4.4).
func buildPolicy(cfg *runconfig.Config, g *loadedGraph, target uint32) (search.Policy, error) {
	switch cfg.Potential {
	case runconfig.PotentialNone:
		return search.ZeroPolicy{}, nil

	case runconfig.PotentialFastest:
		pi, err := potential.Reverse(g.minDuration, target)
		if err != nil {
			return nil, fmt.Errorf("build fastest potential: %w", err)
		}
		return search.FastestPolicy{Pi: pi}, nil

	case runconfig.PotentialLazyFastest:
		pi, err := potential.Reverse(g.minDuration, target)
		if err != nil {
			return nil, fmt.Errorf("build lazy-fastest potential: %w", err)
		}
		return search.FastestPolicy{Pi: potential.NewLazy(pi)}, nil

	case runconfig.PotentialOmega, runconfig.PotentialLazyOmega:
		return buildOmegaPolicy(cfg, g, target)

	default:
		return nil, fmt.Errorf("%w: unknown potential %q", runconfig.ErrInvalidConfig, cfg.Potential)
	}
}

// omegaLambda balances duration against consumption in the Omega
// graph's scalarization; spec §4.4 leaves the exact split as an
// implementation choice so an equal weighting is used here.
const omegaLambda = 0.5

func buildOmegaPolicy(cfg *runconfig.Config, g *loadedGraph, target uint32) (search.Policy, error) {
	dt, err := potential.Reverse(g.minDuration, target)
	if err != nil {
		return nil, fmt.Errorf("build Dt potential: %w", err)
	}
	dc, err := potential.Reverse(g.minConsumption, target)
	if err != nil {
		return nil, fmt.Errorf("build Dc potential: %w", err)
	}
	domega, err := potential.Omega(g.Tradeoff, omegaLambda, target)
	if err != nil {
		return nil, fmt.Errorf("build Domega potential: %w", err)
	}

	rhoMin, err := g.Model.MinRate(cfg.ChargingPenalty)
	if err != nil {
		rhoMin = -1 // no chargers registered: OmegaPolicy still computes a charging key with this rate
	}

	if cfg.Potential == runconfig.PotentialLazyOmega {
		dt, dc, domega = potential.NewLazy(dt), potential.NewLazy(dc), potential.NewLazy(domega)
	}

	return search.OmegaPolicy{
		Dt: dt, Dc: dc, Domega: domega,
		RhoMin:   rhoMin,
		Capacity: cfg.Capacity,
	}, nil
}

// queryResult runs one query end to end: search, path reconstruction,
// and formatting into a ResultRecord. It never returns an error for an
// infeasible query — that is reported as InfeasibleResult, not a
// failure.
func queryResult(cfg *runconfig.Config, g *loadedGraph, q ioformat.Query) (ioformat.ResultRecord, search.Stats, error) {
	if q.Start < 0 || q.Target < 0 {
		return ioformat.InfeasibleResult(q.ID, q.Start, q.Target), search.Stats{}, nil
	}
	source, target := uint32(q.Start), uint32(q.Target)

	policy, err := buildPolicy(cfg, g, target)
	if err != nil {
		return ioformat.ResultRecord{}, search.Stats{}, err
	}

	ctx := &search.Context{
		Graph:           g.Tradeoff,
		Stations:        g.Stations,
		Capacity:        cfg.Capacity,
		ChargingPenalty: cfg.ChargingPenalty,
		XEps:            cfg.XEps,
		YEps:            cfg.YEps,
	}

	result, err := search.Run(ctx, source, target, policy)
	if err != nil {
		return ioformat.ResultRecord{}, search.Stats{}, err
	}

	if len(result.Labels) == 0 {
		return ioformat.InfeasibleResult(q.ID, q.Start, q.Target), result.Stats, nil
	}

	best := result.Labels[0]
	for _, l := range result.Labels[1:] {
		if l.Key < best.Key {
			best = l
		}
	}

	steps, err := search.Reconstruct(ctx, result.Container, target, best)
	if err != nil {
		return ioformat.ResultRecord{}, search.Stats{}, err
	}

	rec := ioformat.ResultRecord{
		ID:             q.ID,
		Start:          q.Start,
		Target:         q.Target,
		MinDuration:    best.Cost.MinX(),
		MinConsumption: best.Cost.Value(best.Cost.MinX()),
		Path:           make([]uint32, len(steps)),
		Times:          make([]float64, len(steps)),
		Consumptions:   make([]float64, len(steps)),
	}
	for i, s := range steps {
		rec.Path[i] = s.Node
		rec.Times[i] = s.ArrivalTime
		rec.Consumptions[i] = s.Consumption
	}
	return rec, result.Stats, nil
}
