package tank

// addMixingHeat applies the buoyancy correction to the accumulated heat
// flows. For every adjacent pair where the lower segment is warmer than the
// upper one (a density inversion) it injects a symmetric mixing heat flow
//
//	Q_mix = m_seg · cp · (T_lower − T_upper) / tau
//
// into the upper segment and out of the lower one. The term is linear in the
// temperature gap and vanishes exactly at the stability threshold, so the
// right-hand side stays continuous and a stable profile receives no
// correction at all.
func (t *Tank) addMixingHeat(state []float64, q []float64) {
	for i := 0; i < len(state)-1; i++ {
		upper, lower := state[i], state[i+1]
		if lower <= upper {
			continue
		}
		flow := t.segMass * t.medium.Cp(upper) * (lower - upper) / t.cfg.Tau
		q[i] += flow
		q[i+1] -= flow
	}
}
