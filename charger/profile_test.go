package charger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ocharge/chargepath/charger"
)

func TestBuildDeficitCurveStartsAtCapacityAndDecreasesToZero(t *testing.T) {
	curve := charger.BuildDeficitCurve(22000, 50)
	require.NotEmpty(t, curve.Pieces)

	assert.InDelta(t, 50.0, curve.Value(0), 1e-6)
	last := curve.Pieces[len(curve.Pieces)-1]
	assert.InDelta(t, 0.0, curve.Value(last.MaxX), 1e-6)
	require.NoError(t, curve.Validate())
}

func TestBuildDeficitCurveFastChargerUsesSingleSegment(t *testing.T) {
	curve := charger.BuildDeficitCurve(50000, 50)
	assert.Len(t, curve.Pieces, 1)
}

func TestModelCachesCurvesByRate(t *testing.T) {
	m := charger.NewModel(75)
	a := m.Register(11000)
	b := m.Register(11000)
	assert.Equal(t, a, b)

	_, err := m.Lookup(7000)
	assert.ErrorIs(t, err, charger.ErrUnknownRate)
}
