package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultScenario_ParsesAndValidates(t *testing.T) {
	sc, err := DefaultScenario()
	require.NoError(t, err)
	require.NoError(t, sc.Validate())

	assert.Equal(t, 10, sc.Tank.Segments)
	assert.Equal(t, "rk4", sc.Integrator)
	require.NotNil(t, sc.Ambient)
	require.Len(t, sc.Phases, 2)
	assert.Greater(t, sc.Phases[0].MassFlow, 0.0)
	assert.Less(t, sc.Phases[1].MassFlow, 0.0)
}

func TestLoadScenario_EmptyPathFallsBackToDefault(t *testing.T) {
	sc, err := loadScenario("")
	require.NoError(t, err)
	assert.Equal(t, 0.3, sc.Tank.Volume)
}
