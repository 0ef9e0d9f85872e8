// Package charger builds the charging-rate curves used by
// function.ChargeCompose and caches them per distinct charger rate.
//
// A physical charger is characterised by a single number: its rate (in
// watts). Two empirical charge-curve shapes are supported, mirroring how
// real DC fast chargers taper their rate as the battery fills — "full"
// (five-segment, used below ~40kW) and "quick" (single-segment, used
// above it). Both are expressed as a piecewise-linear function of
// charging duration that is zero at a fresh-empty battery and converges
// to the vehicle's full capacity, then re-expressed as the complementary
// "deficit remaining" curve so it composes directly with
// function.ChargeCompose's decreasing-tradeoff convention.
package charger
