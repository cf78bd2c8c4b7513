// Tracks run-wide energy accounting for final reporting.

package tank

import "fmt"

// Metrics aggregates the energy bookkeeping of one simulation run.
// All energies are in joules, referenced to 0 K, so only differences and
// the balance residual are physically meaningful.
type Metrics struct {
	Steps         int
	EnergyInitial float64 // stored energy at t=0
	EnergyFinal   float64 // stored energy at the end of the run
	EnthalpyIn    float64 // enthalpy carried in through the active inlet port
	EnthalpyOut   float64 // enthalpy carried out through the active outlet port
	AuxEnergy     float64 // heat injected through the auxiliary ports
	HeatLoss      float64 // heat conducted to ambient
	PeakQLoss     float64 // W, largest instantaneous loss
	MixingSteps   int     // steps during which an inversion was being mixed out
}

// BalanceResidual returns stored-energy change minus net supplied energy.
// For an exactly conservative run it is zero up to integration error.
func (m *Metrics) BalanceResidual() float64 {
	return (m.EnergyFinal - m.EnergyInitial) -
		(m.EnthalpyIn - m.EnthalpyOut + m.AuxEnergy - m.HeatLoss)
}

// Print displays aggregated metrics at the end of the simulation.
func (m *Metrics) Print() {
	fmt.Println("=== Tank Simulation Metrics ===")
	fmt.Printf("Steps                : %d\n", m.Steps)
	fmt.Printf("Stored energy change : %.1f J\n", m.EnergyFinal-m.EnergyInitial)
	fmt.Printf("Enthalpy in          : %.1f J\n", m.EnthalpyIn)
	fmt.Printf("Enthalpy out         : %.1f J\n", m.EnthalpyOut)
	fmt.Printf("Auxiliary heat       : %.1f J\n", m.AuxEnergy)
	fmt.Printf("Heat loss            : %.1f J\n", m.HeatLoss)
	fmt.Printf("Peak loss rate       : %.2f W\n", m.PeakQLoss)
	fmt.Printf("Mixing steps         : %d\n", m.MixingSteps)
	fmt.Printf("Balance residual     : %.3g J\n", m.BalanceResidual())
}
