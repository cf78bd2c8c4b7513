package cable

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVoltageLevel(t *testing.T) {
	for _, s := range []string{"low", "medium", "high"} {
		level, err := ParseVoltageLevel(s)
		require.NoError(t, err)
		assert.Equal(t, VoltageLevel(s), level)
	}
}

func TestParseVoltageLevel_UnknownLevelFailsFast(t *testing.T) {
	// An unrecognized level is an error, never a silent fallback to low.
	_, err := ParseVoltageLevel("extra-high")
	var levelErr *UnknownLevelError
	require.ErrorAs(t, err, &levelErr)
	assert.Equal(t, "extra-high", levelErr.Level)
}

func TestDefaultGeometry(t *testing.T) {
	g, err := DefaultGeometry(Medium)
	require.NoError(t, err)
	assert.Greater(t, g.GMD, g.GMR)

	_, err = DefaultGeometry(VoltageLevel("bogus"))
	require.Error(t, err)
}

func TestInductancePerMeter(t *testing.T) {
	g := Geometry{GMD: 0.630, GMR: 0.0071}
	l, err := g.InductancePerMeter()
	require.NoError(t, err)
	// 2e-7 · ln(0.630/0.0071)
	assert.InDelta(t, 8.9713e-7, l, 1e-11)
}

func TestInductancePerMeter_InvalidGeometry(t *testing.T) {
	_, err := Geometry{GMD: 0.1, GMR: 0}.InductancePerMeter()
	assert.Error(t, err)
	_, err = Geometry{GMD: 0.01, GMR: 0.02}.InductancePerMeter()
	assert.Error(t, err)
}

func TestReactancePerMeter(t *testing.T) {
	g := Geometry{GMD: 0.630, GMR: 0.0071}
	x, err := g.ReactancePerMeter(50)
	require.NoError(t, err)
	l, _ := g.InductancePerMeter()
	assert.InDelta(t, 2*math.Pi*50*l, x, 1e-15)

	_, err = g.ReactancePerMeter(0)
	assert.Error(t, err)
}
