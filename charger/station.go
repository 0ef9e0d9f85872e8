package charger

import "github.com/ocharge/chargepath/function"

// Stations maps graph node IDs to charging rates, grounded on
// ChargingFunctionContainer: most nodes aren't chargers at all (rate 0),
// so the common path (Weighted returning false) never touches the Model.
type Stations struct {
	model *Model
	rates []float64 // per node id, 0 means "not a charger"
}

// NewStations builds a Stations container for a graph with the given
// per-node charging rates (0 for non-charger nodes), registering every
// distinct non-zero rate with model up front.
func NewStations(model *Model, ratesByNode []float64) *Stations {
	s := &Stations{model: model, rates: ratesByNode}
	for _, r := range ratesByNode {
		if r != 0 {
			model.Register(r)
		}
	}
	return s
}

// Weighted reports whether node hosts a charger.
func (s *Stations) Weighted(node int) bool {
	return node >= 0 && node < len(s.rates) && s.rates[node] != 0
}

// Weight returns the deficit curve for the charger at node. Callers must
// check Weighted first: for a non-charger node the lookup fails silently
// and Weight returns an empty curve, and an out-of-range node panics.
func (s *Stations) Weight(node int) function.Piecewise {
	curve, _ := s.model.Lookup(s.rates[node])
	return curve
}

// Rate returns the raw charging rate (watts) at node, or 0 if node is not
// a charger.
func (s *Stations) Rate(node int) float64 {
	if node < 0 || node >= len(s.rates) {
		return 0
	}
	return s.rates[node]
}
