package tank

import "math"

// Conductances holds every conductive path of the tank, precomputed from
// geometry at construction. All values are in W/K.
type Conductances struct {
	// Side is the per-segment radial conductance through the cylindrical
	// insulation shell to ambient. Uniform segmentation makes all entries
	// equal; the slice form keeps the per-segment wiring explicit.
	Side []float64
	// Top and Bottom are the series combination of fluid conduction to the
	// capping segment and plane-wall conduction through the insulation lid.
	Top    float64
	Bottom float64
	// Internal is the fluid conduction between two adjacent segments.
	Internal float64
}

// computeConductances derives the conduction network from tank geometry.
//
// The side wall is treated as a cylindrical shell: G = 2π·k·h / ln(r₂/r₁)
// per segment of height h. Top and bottom paths are plane walls, with the
// fluid half-segment and the insulation lid in series.
func computeConductances(cfg TankConfig, ins InsulationConfig, medium Medium) Conductances {
	n := cfg.Segments
	area := cfg.Volume / cfg.Height             // cross section, m²
	radius := math.Sqrt(area / math.Pi)         // inner radius, m
	segHeight := cfg.Height / float64(n)        // uniform segmentation
	lambda := medium.Lambda()

	side := 2 * math.Pi * ins.Conductivity * segHeight /
		math.Log((radius+ins.Thickness)/radius)

	gFluid := area * lambda / segHeight
	gIns := area * ins.Conductivity / ins.Thickness
	gCap := series(gFluid, gIns)

	c := Conductances{
		Side:     make([]float64, n),
		Top:      gCap,
		Bottom:   gCap,
		Internal: area * lambda / segHeight,
	}
	for i := range c.Side {
		c.Side[i] = side
	}
	return c
}

// series combines two conductances in series: G = 1/(1/a + 1/b).
// A non-positive conductance on either path blocks the whole path.
func series(a, b float64) float64 {
	if a <= 0 || b <= 0 {
		return 0
	}
	return 1 / (1/a + 1/b)
}
