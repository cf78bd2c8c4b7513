package hx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRegime(t *testing.T) {
	for _, r := range Regimes {
		parsed, err := ParseRegime(string(r))
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}

	_, err := ParseRegime("co-current")
	require.Error(t, err)
	var regimeErr *UnsupportedRegimeError
	require.ErrorAs(t, err, &regimeErr)
	assert.Equal(t, "co-current", regimeErr.Regime)
}

// Effectiveness must stay within [0,1] for every regime across the whole
// (Z, NTU) domain.
func TestEffectiveness_BoundedForAllRegimes(t *testing.T) {
	zs := []float64{0, 1e-12, 0.1, 0.25, 0.5, 0.75, 0.9, 1 - 1e-12, 1}
	ntus := []float64{0, 0.01, 0.1, 0.5, 1, 2, 5, 20, 100}
	for _, regime := range Regimes {
		for _, z := range zs {
			for _, ntu := range ntus {
				eps, err := Effectiveness(z, ntu, regime)
				require.NoError(t, err, "regime=%s z=%g ntu=%g", regime, z, ntu)
				assert.False(t, math.IsNaN(eps), "regime=%s z=%g ntu=%g", regime, z, ntu)
				assert.GreaterOrEqual(t, eps, 0.0, "regime=%s z=%g ntu=%g", regime, z, ntu)
				assert.LessOrEqual(t, eps, 1.0, "regime=%s z=%g ntu=%g", regime, z, ntu)
			}
		}
	}
}

func TestEffectiveness_ZeroNTUMeansZeroTransfer(t *testing.T) {
	for _, regime := range Regimes {
		eps, err := Effectiveness(0.5, 0, regime)
		require.NoError(t, err)
		assert.Zero(t, eps)
	}
}

func TestEffectiveness_ZeroCapacityRatioLimit(t *testing.T) {
	// With Z=0 (one stream effectively isothermal) every regime collapses
	// to ε = 1 − exp(−NTU).
	for _, regime := range Regimes {
		eps, err := Effectiveness(0, 2, regime)
		require.NoError(t, err)
		assert.InDelta(t, 1-math.Exp(-2), eps, 1e-12, "regime=%s", regime)
	}
}

func TestEffectiveness_CounterflowKnownValues(t *testing.T) {
	// Z=1 balanced counterflow: ε = NTU/(1+NTU).
	eps, err := Effectiveness(1, 3, Counterflow)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, eps, 1e-9)

	// General closed form at Z=0.5, NTU=2.
	e := math.Exp(-2 * 0.5)
	want := (1 - e) / (1 - 0.5*e)
	eps, err = Effectiveness(0.5, 2, Counterflow)
	require.NoError(t, err)
	assert.InDelta(t, want, eps, 1e-12)
}

func TestEffectiveness_CounterflowDominatesOtherRegimes(t *testing.T) {
	// Counterflow is the thermodynamic optimum at any operating point.
	for _, regime := range Regimes[1:] {
		for _, z := range []float64{0.25, 0.5, 1} {
			for _, ntu := range []float64{0.5, 2, 10} {
				counter, err := Effectiveness(z, ntu, Counterflow)
				require.NoError(t, err)
				other, err := Effectiveness(z, ntu, regime)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, counter+1e-12, other,
					"regime=%s z=%g ntu=%g", regime, z, ntu)
			}
		}
	}
}

func TestEffectiveness_MonotoneInNTU(t *testing.T) {
	for _, regime := range Regimes {
		prev := -1.0
		for _, ntu := range []float64{0, 0.2, 0.5, 1, 2, 5, 10} {
			eps, err := Effectiveness(0.6, ntu, regime)
			require.NoError(t, err)
			assert.Greater(t, eps, prev, "regime=%s ntu=%g", regime, ntu)
			prev = eps
		}
	}
}

func TestEffectiveness_DomainErrors(t *testing.T) {
	_, err := Effectiveness(-0.1, 1, Counterflow)
	assert.Error(t, err)
	_, err = Effectiveness(1.1, 1, Counterflow)
	assert.Error(t, err)
	_, err = Effectiveness(0.5, -1, Counterflow)
	assert.Error(t, err)

	_, err = Effectiveness(0.5, 1, FlowRegime("swirl"))
	var regimeErr *UnsupportedRegimeError
	require.ErrorAs(t, err, &regimeErr)
}
