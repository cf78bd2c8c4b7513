// Package hx provides effectiveness-NTU heat-exchanger calculations for a
// dry (sensible-only) coil coupling a water and an air stream. Evaluation
// is a pure function: no state survives between calls.
package hx

import "math"

// minMassFlow is the smallest mass flow accepted by Evaluate, kg/s.
// Below it the capacitance rate is numerically indistinguishable from
// zero and the evaluation fails rather than producing Inf.
const minMassFlow = 1e-9

// CoilInputs are the per-evaluation inputs of the dry coil.
type CoilInputs struct {
	UAWater  float64    // water-side UA, W/K (≥ 0)
	UAAir    float64    // air-side UA, W/K (≥ 0)
	Fraction float64    // active-area fraction, 0..1
	Regime   FlowRegime // effectiveness correlation selector

	MdotWater float64 // kg/s (> 0)
	CpWater   float64 // J/(kg·K) (> 0)
	TWaterIn  float64 // K

	MdotAir float64 // kg/s (> 0)
	CpAir   float64 // J/(kg·K) (> 0)
	TAirIn  float64 // K
}

// CoilResult carries the effectiveness and the derived stream outcomes.
type CoilResult struct {
	Effectiveness float64 // ε, 0..1
	NTU           float64
	CapacityRatio float64 // Z = C_min/C_max
	UA            float64 // overall UA after combining both sides, W/K
	QFlow         float64 // W, positive = heat leaves water, enters air
	TWaterOut     float64 // K
	TAirOut       float64 // K
}

// Evaluate computes heat flow and outlet temperatures for one coil
// operating point. Both outlet temperatures follow from the energy balance
// T_out = T_in ± Q/C, so water-side and air-side duties match exactly.
func Evaluate(in CoilInputs) (CoilResult, error) {
	if err := in.validate(); err != nil {
		return CoilResult{}, err
	}

	cWater := in.MdotWater * in.CpWater
	cAir := in.MdotAir * in.CpAir
	cMin := math.Min(cWater, cAir)
	cMax := math.Max(cWater, cAir)
	z := cMin / cMax

	ua := combineUA(in.UAWater, in.UAAir)
	ntu := in.Fraction * ua / cMin

	eps, err := Effectiveness(z, ntu, in.Regime)
	if err != nil {
		return CoilResult{}, err
	}

	q := eps * cMin * (in.TWaterIn - in.TAirIn)
	return CoilResult{
		Effectiveness: eps,
		NTU:           ntu,
		CapacityRatio: z,
		UA:            ua,
		QFlow:         q,
		TWaterOut:     in.TWaterIn - q/cWater,
		TAirOut:       in.TAirIn + q/cAir,
	}, nil
}

func (in CoilInputs) validate() error {
	if in.MdotWater <= minMassFlow {
		return &InvalidFlowError{Stream: "water", MassFlow: in.MdotWater}
	}
	if in.MdotAir <= minMassFlow {
		return &InvalidFlowError{Stream: "air", MassFlow: in.MdotAir}
	}
	if in.CpWater <= 0 {
		return configErrf("cp_water", "must be positive, got %g", in.CpWater)
	}
	if in.CpAir <= 0 {
		return configErrf("cp_air", "must be positive, got %g", in.CpAir)
	}
	if in.UAWater < 0 {
		return configErrf("ua_water", "must be non-negative, got %g", in.UAWater)
	}
	if in.UAAir < 0 {
		return configErrf("ua_air", "must be non-negative, got %g", in.UAAir)
	}
	if in.Fraction < 0 || in.Fraction > 1 {
		return configErrf("fraction", "must be within [0,1], got %g", in.Fraction)
	}
	return nil
}

// combineUA puts the two film resistances in series. A zero UA on either
// side means that side transfers nothing, so the overall UA is zero.
func combineUA(uaWater, uaAir float64) float64 {
	if uaWater <= 0 || uaAir <= 0 {
		return 0
	}
	return 1 / (1/uaWater + 1/uaAir)
}
