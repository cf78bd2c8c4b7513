package tank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Reference geometry: 300 l, 1.5 m tall, 10 segments, 5 cm of insulation at
// 0.04 W/(m·K), water at 60 °C. Expected values computed by hand from the
// shell and series formulas.
func referenceTank(t *testing.T, ambient *AmbientConfig) *Tank {
	t.Helper()
	tk, err := New(validTankConfig(), InsulationConfig{Thickness: 0.05, Conductivity: 0.04}, ambient, Water())
	require.NoError(t, err)
	return tk
}

func TestComputeConductances_ReferenceGeometry(t *testing.T) {
	tk := referenceTank(t, nil)
	cond := tk.Conduction()

	require.Len(t, cond.Side, 10)
	for _, g := range cond.Side {
		// 2π·0.04·0.15 / ln(0.302313/0.252313)
		assert.InDelta(t, 0.208522, g, 1e-5)
	}
	// Fluid path 0.872 W/K in series with insulation path 0.16 W/K.
	assert.InDelta(t, 0.135194, cond.Top, 1e-5)
	assert.Equal(t, cond.Top, cond.Bottom)
	// A·λ/h = 0.2·0.654/0.15
	assert.InDelta(t, 0.872, cond.Internal, 1e-9)
}

func TestSeries_BlockedPath(t *testing.T) {
	assert.Equal(t, 0.0, series(0, 5))
	assert.Equal(t, 0.0, series(5, 0))
	assert.InDelta(t, 2.5, series(5, 5), 1e-12)
}

func TestOutputs_DisconnectedAmbientIsAdiabatic(t *testing.T) {
	// GIVEN a tank built without an ambient coupling
	tk := referenceTank(t, nil)
	state := tk.InitialState()

	// WHEN outputs are computed
	out := tk.Outputs(state, Boundary{})

	// THEN every loss path reports zero heat flow, not an error
	assert.Zero(t, out.QLossTotal)
	assert.Zero(t, out.QLossSide)
	assert.Zero(t, out.QLossTop)
	assert.Zero(t, out.QLossBottom)
}

func TestOutputs_HeatLossAggregation(t *testing.T) {
	tk := referenceTank(t, &AmbientConfig{Temperature: 293.15})
	state := tk.InitialState() // uniform 313.15 K, 20 K above ambient

	out := tk.Outputs(state, Boundary{})

	dT := 20.0
	wantSide := 10 * 0.208522 * dT
	wantCap := 0.135194 * dT
	assert.InDelta(t, wantSide, out.QLossSide, 1e-3)
	assert.InDelta(t, wantCap, out.QLossTop, 1e-3)
	assert.InDelta(t, wantCap, out.QLossBottom, 1e-3)
	assert.InDelta(t, out.QLossSide+out.QLossTop+out.QLossBottom, out.QLossTotal, 1e-9)
}
