package hx

import "math"

// FlowRegime selects the effectiveness-NTU correlation. The regime set is
// closed; every value maps to exactly one correlation.
type FlowRegime string

const (
	Counterflow        FlowRegime = "counterflow"
	ParallelFlow       FlowRegime = "parallel-flow"
	CrossflowUnmixed   FlowRegime = "crossflow-unmixed"    // both streams unmixed
	CrossflowCMaxMixed FlowRegime = "crossflow-cmax-mixed" // C_max mixed, C_min unmixed
	CrossflowCMinMixed FlowRegime = "crossflow-cmin-mixed" // C_min mixed, C_max unmixed
	CrossflowBothMixed FlowRegime = "crossflow-both-mixed"
)

// Regimes lists every supported flow regime.
var Regimes = []FlowRegime{
	Counterflow,
	ParallelFlow,
	CrossflowUnmixed,
	CrossflowCMaxMixed,
	CrossflowCMinMixed,
	CrossflowBothMixed,
}

// ParseRegime maps a string to a FlowRegime, failing on anything it does
// not recognize. There is deliberately no default regime.
func ParseRegime(s string) (FlowRegime, error) {
	for _, r := range Regimes {
		if string(r) == s {
			return r, nil
		}
	}
	return "", &UnsupportedRegimeError{Regime: s}
}

func validRegime(r FlowRegime) bool {
	for _, known := range Regimes {
		if r == known {
			return true
		}
	}
	return false
}

// zTol treats capacitance ratios this close to a limit as the limit itself,
// keeping the correlations finite where the closed forms degenerate.
const zTol = 1e-9

// Effectiveness evaluates the closed-form ε-NTU correlation for the given
// regime. z is the capacitance-rate ratio C_min/C_max in [0,1], ntu the
// number of transfer units (≥ 0). The result is clamped to [0,1] to absorb
// floating-point overshoot at the domain edges.
func Effectiveness(z, ntu float64, regime FlowRegime) (float64, error) {
	if !validRegime(regime) {
		return 0, &UnsupportedRegimeError{Regime: string(regime)}
	}
	if z < 0 || z > 1 {
		return 0, configErrf("capacitance ratio", "must be within [0,1], got %g", z)
	}
	if ntu < 0 {
		return 0, configErrf("NTU", "must be non-negative, got %g", ntu)
	}
	if ntu == 0 {
		return 0, nil
	}
	// With one stream of effectively infinite capacitance every regime
	// collapses to the single-stream limit.
	if z < zTol {
		return clamp01(1 - math.Exp(-ntu)), nil
	}

	var eps float64
	switch regime {
	case Counterflow:
		if 1-z < zTol {
			eps = ntu / (1 + ntu)
			break
		}
		e := math.Exp(-ntu * (1 - z))
		eps = (1 - e) / (1 - z*e)
	case ParallelFlow:
		eps = (1 - math.Exp(-ntu*(1+z))) / (1 + z)
	case CrossflowUnmixed:
		eps = 1 - math.Exp(math.Pow(ntu, 0.22)/z*(math.Exp(-z*math.Pow(ntu, 0.78))-1))
	case CrossflowCMaxMixed:
		eps = (1 - math.Exp(-z*(1-math.Exp(-ntu)))) / z
	case CrossflowCMinMixed:
		eps = 1 - math.Exp(-(1-math.Exp(-z*ntu))/z)
	case CrossflowBothMixed:
		eps = 1 / (1/(1-math.Exp(-ntu)) + z/(1-math.Exp(-z*ntu)) - 1/ntu)
	default:
		return 0, &UnsupportedRegimeError{Regime: string(regime)}
	}
	return clamp01(eps), nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
