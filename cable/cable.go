// Package cable computes per-length inductance and reactance of power
// cables from their geometric mean distance and radius. Voltage levels map
// to library default geometries; an unrecognized level is an error, never a
// silent fallback to a default level.
package cable

import (
	"fmt"
	"math"
)

// VoltageLevel selects a default conductor geometry.
type VoltageLevel string

const (
	Low    VoltageLevel = "low"    // 0.4 kV distribution
	Medium VoltageLevel = "medium" // 10-20 kV distribution
	High   VoltageLevel = "high"   // 110 kV transmission
)

// UnknownLevelError reports a voltage level with no default geometry.
type UnknownLevelError struct {
	Level string
}

func (e *UnknownLevelError) Error() string {
	return fmt.Sprintf("cable: unknown voltage level %q", e.Level)
}

// Geometry characterizes a multi-conductor cable run.
type Geometry struct {
	GMD float64 // geometric mean distance between conductors, m
	GMR float64 // geometric mean radius of one conductor, m
}

// defaultGeometries holds typical three-phase line geometries per level.
var defaultGeometries = map[VoltageLevel]Geometry{
	Low:    {GMD: 0.063, GMR: 0.0048},
	Medium: {GMD: 0.630, GMR: 0.0071},
	High:   {GMD: 4.20, GMR: 0.0111},
}

// ParseVoltageLevel maps a string to a VoltageLevel, failing fast on
// anything unrecognized.
func ParseVoltageLevel(s string) (VoltageLevel, error) {
	level := VoltageLevel(s)
	if _, ok := defaultGeometries[level]; !ok {
		return "", &UnknownLevelError{Level: s}
	}
	return level, nil
}

// DefaultGeometry returns the library default geometry for a voltage level.
func DefaultGeometry(level VoltageLevel) (Geometry, error) {
	g, ok := defaultGeometries[level]
	if !ok {
		return Geometry{}, &UnknownLevelError{Level: string(level)}
	}
	return g, nil
}

// Validate checks the geometry for physical plausibility. The inductance
// formula requires GMD > GMR > 0.
func (g Geometry) Validate() error {
	if g.GMR <= 0 {
		return fmt.Errorf("cable: GMR must be positive, got %g", g.GMR)
	}
	if g.GMD <= g.GMR {
		return fmt.Errorf("cable: GMD %g must exceed GMR %g", g.GMD, g.GMR)
	}
	return nil
}

// InductancePerMeter returns the per-phase series inductance of the run,
// H/m: L' = 2·10⁻⁷ · ln(GMD/GMR).
func (g Geometry) InductancePerMeter() (float64, error) {
	if err := g.Validate(); err != nil {
		return 0, err
	}
	return 2e-7 * math.Log(g.GMD/g.GMR), nil
}

// ReactancePerMeter returns the series reactance at frequency f, Ω/m.
func (g Geometry) ReactancePerMeter(freqHz float64) (float64, error) {
	if freqHz <= 0 {
		return 0, fmt.Errorf("cable: frequency must be positive, got %g", freqHz)
	}
	l, err := g.InductancePerMeter()
	if err != nil {
		return 0, err
	}
	return 2 * math.Pi * freqHz * l, nil
}
