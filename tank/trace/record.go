// Package trace provides step-trace recording for tank simulation runs.
// This package has no dependencies on tank/ — it stores pure data types.
package trace

// StepRecord captures the tank state and algebraic outputs after one
// integration step.
type StepRecord struct {
	Time         float64   `json:"time"`          // s
	SegmentTemps []float64 `json:"segment_temps"` // K, index 0 = top
	OutletTemp   float64   `json:"outlet_temp"`   // K
	QLoss        float64   `json:"q_loss"`        // W to ambient
	MassFlow     float64   `json:"mass_flow"`     // kg/s, signed
	MixingActive bool      `json:"mixing_active"` // an adjacent pair was inverted
}
