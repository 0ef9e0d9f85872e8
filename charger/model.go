package charger

import (
	"math"
	"sync"

	"github.com/ocharge/chargepath/function"
)

// Model caches one deficit curve (function.Piecewise) per distinct
// charging rate observed in a graph, keyed by the rate itself, so that
// stations sharing a rate share the same curve object rather than
// rebuilding it per node (mirrors ChargingModel's rate_to_idx cache).
//
// Model is safe for concurrent use: Lookup is called from every worker
// thread processing a query, while Register typically only happens during
// graph loading on a single thread — the RWMutex keeps the common path
// (read-only lookups during search) lock-free of writer contention.
type Model struct {
	capacity float64

	mu     sync.RWMutex
	curves map[float64]function.Piecewise
}

// NewModel returns a Model for a vehicle with the given battery capacity.
func NewModel(capacity float64) *Model {
	return &Model{capacity: capacity, curves: make(map[float64]function.Piecewise)}
}

// Capacity returns the vehicle's battery capacity this model was built for.
func (m *Model) Capacity() float64 { return m.capacity }

// Register builds (if not already cached) and returns the deficit curve
// for rateWatts.
func (m *Model) Register(rateWatts float64) function.Piecewise {
	m.mu.RLock()
	curve, ok := m.curves[rateWatts]
	m.mu.RUnlock()
	if ok {
		return curve
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if curve, ok := m.curves[rateWatts]; ok {
		return curve
	}
	curve = BuildDeficitCurve(rateWatts, m.capacity)
	m.curves[rateWatts] = curve
	return curve
}

// Lookup returns a previously Register-ed curve without building it.
func (m *Model) Lookup(rateWatts float64) (function.Piecewise, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	curve, ok := m.curves[rateWatts]
	if !ok {
		return function.Piecewise{}, ErrUnknownRate
	}
	return curve, nil
}

// rateOf returns the marginal charging rate (energy per second) of a
// curve's very first segment plus a fixed per-stop overhead, used to rank
// chargers for the NoSlowCharger/NoSuperCharger preprocessing heuristics.
func rateOf(curve function.Piecewise, chargingPenalty float64) float64 {
	if len(curve.Pieces) == 0 {
		return 0
	}
	first := curve.Pieces[0]
	dt := first.MaxX - first.MinX + chargingPenalty
	dy := first.Value(first.MaxX) - first.Value(first.MinX)
	return dy / dt
}

// EffectiveRate registers (if needed) rateWatts' curve and returns its
// marginal charging rate in the same units as MinRate/MaxRate, letting
// callers compare a station against those bounds without reaching into
// package-private curve internals.
func (m *Model) EffectiveRate(rateWatts, chargingPenalty float64) float64 {
	return rateOf(m.Register(rateWatts), chargingPenalty)
}

// MinRate and MaxRate return the slowest/fastest marginal charging rate
// across all registered chargers, accounting for a fixed per-stop time
// penalty — used by preprocess.NoSlowCharger/NoSuperCharger to bound which
// chargers are worth considering at all (spec's charging_penalty term).
func (m *Model) MinRate(chargingPenalty float64) (float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.curves) == 0 {
		return 0, ErrNoChargers
	}
	best := math.Inf(1)
	for _, c := range m.curves {
		if r := rateOf(c, chargingPenalty); r < best {
			best = r
		}
	}
	return best, nil
}

func (m *Model) MaxRate(chargingPenalty float64) (float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.curves) == 0 {
		return 0, ErrNoChargers
	}
	best := math.Inf(-1)
	for _, c := range m.curves {
		if r := rateOf(c, chargingPenalty); r > best {
			best = r
		}
	}
	return best, nil
}
