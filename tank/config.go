package tank

// TankConfig groups the structural parameters of the storage volume.
type TankConfig struct {
	Volume   float64 `yaml:"volume"`   // total fluid volume, m³ (must be > 0)
	Height   float64 `yaml:"height"`   // tank height, m (must be > 0)
	Segments int     `yaml:"segments"` // number of fluid segments, top to bottom (must be ≥ 2)
	Tau      float64 `yaml:"tau"`      // time constant for mixing due to temperature inversion, s (must be > 0)

	// InitialTemp seeds every segment with the same temperature, K.
	// InitialTemps, when non-empty, overrides it per segment (length must
	// equal Segments, index 0 = top).
	InitialTemp  float64   `yaml:"initial_temp"`
	InitialTemps []float64 `yaml:"initial_temps"`
}

// InsulationConfig describes the insulation layer wrapped around the tank.
type InsulationConfig struct {
	Thickness    float64 `yaml:"thickness"`    // m (must be > 0)
	Conductivity float64 `yaml:"conductivity"` // W/(m·K) (must be > 0)
}

// AmbientConfig carries the shared environment conditions. It is passed
// explicitly at construction rather than read from package-level defaults.
type AmbientConfig struct {
	Temperature float64 `yaml:"temperature"` // K
}

// Validate checks the tank parameters. All violations are reported as
// ConfigurationError at construction time, not at solve time.
func (c TankConfig) Validate() error {
	if c.Volume <= 0 {
		return configErrf("volume", "must be positive, got %g", c.Volume)
	}
	if c.Height <= 0 {
		return configErrf("height", "must be positive, got %g", c.Height)
	}
	if c.Segments < 2 {
		return configErrf("segments", "must be at least 2, got %d", c.Segments)
	}
	if c.Tau <= 0 {
		return configErrf("tau", "must be positive, got %g", c.Tau)
	}
	if len(c.InitialTemps) > 0 && len(c.InitialTemps) != c.Segments {
		return configErrf("initial_temps", "length %d does not match segments %d", len(c.InitialTemps), c.Segments)
	}
	if len(c.InitialTemps) == 0 && c.InitialTemp <= 0 {
		return configErrf("initial_temp", "must be a positive absolute temperature, got %g", c.InitialTemp)
	}
	for i, T := range c.InitialTemps {
		if T <= 0 {
			return configErrf("initial_temps", "segment %d must be a positive absolute temperature, got %g", i, T)
		}
	}
	return nil
}

// Validate checks the insulation parameters.
func (c InsulationConfig) Validate() error {
	if c.Thickness <= 0 {
		return configErrf("insulation.thickness", "must be positive, got %g", c.Thickness)
	}
	if c.Conductivity <= 0 {
		return configErrf("insulation.conductivity", "must be positive, got %g", c.Conductivity)
	}
	return nil
}

// Validate checks the ambient conditions.
func (c AmbientConfig) Validate() error {
	if c.Temperature <= 0 {
		return configErrf("ambient.temperature", "must be a positive absolute temperature, got %g", c.Temperature)
	}
	return nil
}
