// Package tank models a stratified thermal-storage tank as a segmented
// energy-balance network. The tank exposes a state vector of segment
// temperatures and a pure right-hand-side function; time stepping belongs
// to the caller (see Simulator for the bundled fixed-step driver).
package tank

import "fmt"

// Boundary carries the per-evaluation inputs at the tank ports.
type Boundary struct {
	// MassFlow is the signed plug flow through the tank, kg/s.
	// Positive flow enters at the top port and leaves at the bottom;
	// negative flow runs bottom to top. Zero is a standing tank.
	MassFlow float64
	// InletTempTop is the fluid temperature entering the top port, K.
	// Read only when MassFlow > 0.
	InletTempTop float64
	// InletTempBottom is the fluid temperature entering the bottom port, K.
	// Read only when MassFlow < 0.
	InletTempBottom float64
	// AuxHeat is the heat injected into each segment through its auxiliary
	// heat port, W. Nil or empty means all ports are unconnected.
	AuxHeat []float64
}

// Outputs are the algebraic quantities derived from the current state.
type Outputs struct {
	TopTemp    float64 // K, segment 0
	BottomTemp float64 // K, segment N-1
	// OutletTemp is the temperature at the downstream port for the current
	// flow direction. For a standing tank it reports the bottom segment.
	OutletTemp float64
	// Heat flows to ambient, W, positive = heat leaving the tank.
	// All zero when the tank was built without an ambient coupling.
	QLossSide   float64
	QLossTop    float64
	QLossBottom float64
	QLossTotal  float64
}

// Tank is a stratified storage tank with Segments lumped fluid volumes.
// Segment 0 is the top of the tank. A Tank is immutable after New; all
// per-step quantities flow through Derivatives and Outputs.
type Tank struct {
	cfg     TankConfig
	ins     InsulationConfig
	ambient *AmbientConfig // nil = side/top/bottom heat ports unconnected (adiabatic)
	medium  Medium
	cond    Conductances
	segMass float64 // kg per segment, fixed at construction
}

// New validates the configuration and builds the conduction network.
// A nil ambient leaves every loss path unconnected, which is treated as
// zero heat flow rather than an error.
func New(cfg TankConfig, ins InsulationConfig, ambient *AmbientConfig, medium Medium) (*Tank, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := ins.Validate(); err != nil {
		return nil, err
	}
	if ambient != nil {
		if err := ambient.Validate(); err != nil {
			return nil, err
		}
	}
	if medium == nil {
		return nil, configErrf("medium", "must not be nil")
	}
	t := &Tank{
		cfg:     cfg,
		ins:     ins,
		ambient: ambient,
		medium:  medium,
		cond:    computeConductances(cfg, ins, medium),
	}
	t.segMass = medium.Rho(t.meanInitialTemp()) * cfg.Volume / float64(cfg.Segments)
	return t, nil
}

func (t *Tank) meanInitialTemp() float64 {
	if len(t.cfg.InitialTemps) == 0 {
		return t.cfg.InitialTemp
	}
	sum := 0.0
	for _, T := range t.cfg.InitialTemps {
		sum += T
	}
	return sum / float64(len(t.cfg.InitialTemps))
}

// StateDim returns the length of the state vector (one temperature per segment).
func (t *Tank) StateDim() int { return t.cfg.Segments }

// SegmentMass returns the fluid mass held by one segment, kg.
func (t *Tank) SegmentMass() float64 { return t.segMass }

// Conduction exposes the precomputed conduction network.
func (t *Tank) Conduction() Conductances { return t.cond }

// InitialState returns a fresh state vector seeded from the configuration.
func (t *Tank) InitialState() []float64 {
	state := make([]float64, t.cfg.Segments)
	if len(t.cfg.InitialTemps) > 0 {
		copy(state, t.cfg.InitialTemps)
		return state
	}
	for i := range state {
		state[i] = t.cfg.InitialTemp
	}
	return state
}

// Derivatives evaluates the energy balance of every segment and writes
// dT/dt into dst. The state vector is read-only for the whole evaluation:
// every neighbor contribution is accumulated from the same snapshot, so
// evaluation order carries no hidden dependency.
//
// Per segment the balance is
//
//	m·cp·dT/dt = ṁ·cp·(T_upstream − T) + G·ΔT(neighbors, ambient) + Q_mix + Q_aux
//
// with the enthalpy-flow term switching upstream side on the sign of the
// mass flow, so flow reversal needs no renumbering.
func (t *Tank) Derivatives(_ float64, state []float64, b Boundary, dst []float64) error {
	n := t.cfg.Segments
	if len(state) != n {
		return fmt.Errorf("tank: state length %d, want %d", len(state), n)
	}
	if len(dst) != n {
		return fmt.Errorf("tank: derivative length %d, want %d", len(dst), n)
	}
	if len(b.AuxHeat) != 0 && len(b.AuxHeat) != n {
		return fmt.Errorf("tank: aux heat length %d, want 0 or %d", len(b.AuxHeat), n)
	}

	// q accumulates net heat into each segment, W.
	for i := 0; i < n; i++ {
		dst[i] = 0
	}
	q := dst

	// Plug flow through the segment stack, upwind in the flow direction.
	mdot := b.MassFlow
	if mdot > 0 {
		for i := 0; i < n; i++ {
			up := b.InletTempTop
			if i > 0 {
				up = state[i-1]
			}
			q[i] += mdot * t.medium.Cp(state[i]) * (up - state[i])
		}
	} else if mdot < 0 {
		for i := n - 1; i >= 0; i-- {
			up := b.InletTempBottom
			if i < n-1 {
				up = state[i+1]
			}
			q[i] += -mdot * t.medium.Cp(state[i]) * (up - state[i])
		}
	}

	// Fluid conduction between adjacent segments.
	for i := 0; i < n-1; i++ {
		flow := t.cond.Internal * (state[i+1] - state[i])
		q[i] += flow
		q[i+1] -= flow
	}

	// Inversion mixing (buoyancy correction).
	t.addMixingHeat(state, q)

	// Loss paths to ambient, when connected.
	if t.ambient != nil {
		amb := t.ambient.Temperature
		for i := 0; i < n; i++ {
			q[i] += t.cond.Side[i] * (amb - state[i])
		}
		q[0] += t.cond.Top * (amb - state[0])
		q[n-1] += t.cond.Bottom * (amb - state[n-1])
	}

	// Auxiliary heat ports.
	for i, aux := range b.AuxHeat {
		q[i] += aux
	}

	// Convert accumulated heat to temperature rates.
	for i := 0; i < n; i++ {
		dst[i] = q[i] / (t.segMass * t.medium.Cp(state[i]))
	}
	return nil
}

// Outputs computes the algebraic outputs for the given state.
func (t *Tank) Outputs(state []float64, b Boundary) Outputs {
	n := t.cfg.Segments
	out := Outputs{
		TopTemp:    state[0],
		BottomTemp: state[n-1],
		OutletTemp: state[n-1],
	}
	if b.MassFlow < 0 {
		out.OutletTemp = state[0]
	}
	if t.ambient == nil {
		return out
	}
	amb := t.ambient.Temperature
	for i := 0; i < n; i++ {
		out.QLossSide += t.cond.Side[i] * (state[i] - amb)
	}
	out.QLossTop = t.cond.Top * (state[0] - amb)
	out.QLossBottom = t.cond.Bottom * (state[n-1] - amb)
	out.QLossTotal = out.QLossSide + out.QLossTop + out.QLossBottom
	return out
}
