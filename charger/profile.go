package charger

import (
	"github.com/ocharge/chargepath/function"
)

// curveBreakpoint is one segment of an empirical charge-rate taper curve:
// rateFraction is the charger's nominal rate derated over this segment,
// capacityFraction is the battery-capacity fraction reached by the end of
// the segment (1.0 for fullCurve's last element, 0.80 for quickCurve's).
type curveBreakpoint struct {
	rateFraction     float64
	capacityFraction float64
}

// fullCurve models a standard AC/slower-DC charger's five-stage taper
// (roughly constant rate to 80%, then progressively throttled), and
// quickCurve models a DC fast charger treated as a single constant-rate
// segment up to 80% (values taken from the reference charging model).
var (
	fullCurve = []curveBreakpoint{
		{rateFraction: 0.99208922, capacityFraction: 0.80},
		{rateFraction: 0.86715031, capacityFraction: 0.85},
		{rateFraction: 0.63569885, capacityFraction: 0.90},
		{rateFraction: 0.43195935, capacityFraction: 0.95},
		{rateFraction: 0.1457976, capacityFraction: 1.00},
	}
	quickCurve = []curveBreakpoint{
		{rateFraction: 1.0, capacityFraction: 0.80},
	}
	// fastRateThreshold separates chargers that use quickCurve (typically
	// DC fast chargers) from ones that use fullCurve.
	fastRateThreshold = 40000.0
)

// secondsPerHour converts the hours obtained by dividing an energy step
// by the derated rate in watts into the duration units (seconds) used
// throughout the rest of the module's fixed-point time representation.
const secondsPerHour = 3600.0

// BuildDeficitCurve constructs the charging deficit function for a
// charger delivering rateWatts into a battery of capacity energy units
// (spec's consumption unit): a decreasing piecewise-linear function of
// charging duration whose value is the energy still needed to reach a
// full charge, starting from empty (value = capacity) at duration 0.
//
// function.ChargeCompose treats the returned curve as the "g" to compose
// against an arriving label's tradeoff function: the label's current
// consumed energy is interpreted as a point on this same deficit curve via
// Inverse, letting the composition continue the curve from wherever the
// vehicle's actual state of charge places it rather than assuming an
// empty start.
func BuildDeficitCurve(rateWatts, capacity float64) function.Piecewise {
	curve := fullCurve
	if rateWatts > fastRateThreshold {
		curve = quickCurve
	}

	pieces := make([]function.Limited, 0, len(curve))
	lastX, lastY := 0.0, capacity
	prevCapacityFraction := 0.0

	for _, seg := range curve {
		dc := (prevCapacityFraction - seg.capacityFraction) * capacity // <= 0
		dt := -dc * secondsPerHour / (seg.rateFraction * rateWatts)
		slope := dc / dt // <= 0

		nextX := lastX + dt
		nextY := lastY + dc

		pieces = append(pieces, function.NewLimited(lastX, nextX,
			function.Linear{D: slope, B: lastX, C: lastY}))

		lastX, lastY = nextX, nextY
		prevCapacityFraction = seg.capacityFraction
	}

	return function.Piecewise{Pieces: pieces}
}
