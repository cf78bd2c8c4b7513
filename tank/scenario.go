package tank

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Phase is one piecewise-constant segment of the boundary schedule.
// A phase is active while t < Until; phases must be listed in ascending
// Until order and the last one must cover the scenario duration. An empty
// schedule runs the tank standing (zero flow, no aux heat) throughout.
type Phase struct {
	Until           float64   `yaml:"until"`             // s
	MassFlow        float64   `yaml:"mass_flow"`         // kg/s, signed
	InletTempTop    float64   `yaml:"inlet_temp_top"`    // K
	InletTempBottom float64   `yaml:"inlet_temp_bottom"` // K
	AuxHeat         []float64 `yaml:"aux_heat"`          // W per segment, optional
}

// Scenario is a complete run description, loadable from a YAML file.
type Scenario struct {
	Tank       TankConfig       `yaml:"tank"`
	Insulation InsulationConfig `yaml:"insulation"`
	// Ambient is optional; leaving it out runs the tank adiabatically.
	Ambient    *AmbientConfig `yaml:"ambient"`
	Medium     ConstantMedium `yaml:"medium"`
	Duration   float64        `yaml:"duration"`   // s
	StepSize   float64        `yaml:"step"`       // s
	Integrator string         `yaml:"integrator"` // "euler" or "rk4" (default rk4)
	Phases     []Phase        `yaml:"phases"`
}

// LoadScenario reads and parses a YAML scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &sc, nil
}

// Validate checks the run-level fields and the boundary schedule. Tank,
// insulation and ambient blocks are validated again by New, but checking
// here keeps all scenario feedback at load time.
func (s *Scenario) Validate() error {
	if err := s.Tank.Validate(); err != nil {
		return err
	}
	if err := s.Insulation.Validate(); err != nil {
		return err
	}
	if s.Ambient != nil {
		if err := s.Ambient.Validate(); err != nil {
			return err
		}
	}
	if err := s.Medium.Validate(); err != nil {
		return err
	}
	if s.Duration <= 0 {
		return configErrf("duration", "must be positive, got %g", s.Duration)
	}
	if s.StepSize <= 0 || s.StepSize > s.Duration {
		return configErrf("step", "must be in (0, duration], got %g", s.StepSize)
	}
	switch s.Integrator {
	case "", "euler", "rk4":
	default:
		return configErrf("integrator", "unknown stepper %q", s.Integrator)
	}
	prev := 0.0
	for i, p := range s.Phases {
		if p.Until <= prev {
			return configErrf("phases", "phase %d: until %g must exceed previous boundary %g", i, p.Until, prev)
		}
		if p.MassFlow > 0 && p.InletTempTop <= 0 {
			return configErrf("phases", "phase %d: inlet_temp_top must be a positive absolute temperature", i)
		}
		if p.MassFlow < 0 && p.InletTempBottom <= 0 {
			return configErrf("phases", "phase %d: inlet_temp_bottom must be a positive absolute temperature", i)
		}
		if len(p.AuxHeat) != 0 && len(p.AuxHeat) != s.Tank.Segments {
			return configErrf("phases", "phase %d: aux_heat length %d, want %d", i, len(p.AuxHeat), s.Tank.Segments)
		}
		prev = p.Until
	}
	if len(s.Phases) > 0 && prev < s.Duration {
		return configErrf("phases", "schedule ends at %g before duration %g", prev, s.Duration)
	}
	return nil
}

// BoundaryAt returns the boundary inputs active at time t. Past the last
// phase boundary the tank stands still (zero flow, no aux heat).
func (s *Scenario) BoundaryAt(t float64) Boundary {
	for _, p := range s.Phases {
		if t < p.Until {
			return Boundary{
				MassFlow:        p.MassFlow,
				InletTempTop:    p.InletTempTop,
				InletTempBottom: p.InletTempBottom,
				AuxHeat:         p.AuxHeat,
			}
		}
	}
	return Boundary{}
}
