package tank

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validScenario() *Scenario {
	return &Scenario{
		Tank:       validTankConfig(),
		Insulation: InsulationConfig{Thickness: 0.05, Conductivity: 0.04},
		Ambient:    &AmbientConfig{Temperature: 293.15},
		Medium:     Water(),
		Duration:   600,
		StepSize:   1,
		Integrator: "rk4",
		Phases: []Phase{
			{Until: 300, MassFlow: 0.05, InletTempTop: 353.15},
			{Until: 600, MassFlow: -0.05, InletTempBottom: 288.15},
		},
	}
}

func TestScenario_Validate_Accepts(t *testing.T) {
	assert.NoError(t, validScenario().Validate())
}

func TestScenario_Validate_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Scenario)
	}{
		{"zero duration", func(s *Scenario) { s.Duration = 0 }},
		{"step exceeds duration", func(s *Scenario) { s.StepSize = 1000 }},
		{"zero step", func(s *Scenario) { s.StepSize = 0 }},
		{"unknown integrator", func(s *Scenario) { s.Integrator = "adams" }},
		{"non-monotonic phases", func(s *Scenario) { s.Phases[1].Until = 100 }},
		{"schedule ends before duration", func(s *Scenario) { s.Duration = 900 }},
		{"forward flow without inlet temp", func(s *Scenario) { s.Phases[0].InletTempTop = 0 }},
		{"reverse flow without inlet temp", func(s *Scenario) { s.Phases[1].InletTempBottom = 0 }},
		{"aux heat length mismatch", func(s *Scenario) { s.Phases[0].AuxHeat = []float64{1, 2} }},
		{"invalid tank block", func(s *Scenario) { s.Tank.Segments = 1 }},
		{"invalid medium block", func(s *Scenario) { s.Medium.CpVal = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sc := validScenario()
			tc.mutate(sc)
			err := sc.Validate()
			require.Error(t, err)

			var cfgErr *ConfigurationError
			assert.True(t, errors.As(err, &cfgErr), "want ConfigurationError, got %T: %v", err, err)
		})
	}
}

func TestScenario_BoundaryAt(t *testing.T) {
	sc := validScenario()

	b := sc.BoundaryAt(0)
	assert.Equal(t, 0.05, b.MassFlow)
	assert.Equal(t, 353.15, b.InletTempTop)

	b = sc.BoundaryAt(299.9)
	assert.Equal(t, 0.05, b.MassFlow)

	b = sc.BoundaryAt(300)
	assert.Equal(t, -0.05, b.MassFlow)
	assert.Equal(t, 288.15, b.InletTempBottom)

	// Past the schedule the tank stands still.
	b = sc.BoundaryAt(1e9)
	assert.Zero(t, b.MassFlow)
	assert.Nil(t, b.AuxHeat)
}

const scenarioYAML = `
tank:
  volume: 0.3
  height: 1.5
  segments: 4
  tau: 120
  initial_temp: 313.15
insulation:
  thickness: 0.05
  conductivity: 0.04
medium:
  cp: 4186
  rho: 983.2
  lambda: 0.654
duration: 60
step: 0.5
integrator: euler
phases:
  - until: 60
    mass_flow: 0.02
    inlet_temp_top: 353.15
`

func TestLoadScenario_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scenarioYAML), 0o644))

	sc, err := LoadScenario(path)
	require.NoError(t, err)
	require.NoError(t, sc.Validate())

	assert.Equal(t, 4, sc.Tank.Segments)
	assert.Equal(t, "euler", sc.Integrator)
	assert.Nil(t, sc.Ambient, "omitted ambient block must mean adiabatic")
	require.Len(t, sc.Phases, 1)
	assert.Equal(t, 0.02, sc.Phases[0].MassFlow)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadScenario_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tank: ["), 0o644))
	_, err := LoadScenario(path)
	require.Error(t, err)
}
