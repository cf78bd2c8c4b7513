package tank

import "gonum.org/v1/gonum/floats"

// RHS is the right-hand side of an ODE system y' = f(t, y). Implementations
// write the derivative into dst and must not retain y or dst.
type RHS func(t float64, y []float64, dst []float64)

// Stepper advances a state vector by one fixed step. Steppers own their
// scratch buffers and are not safe for concurrent use.
type Stepper interface {
	// Step advances y in place from t to t+h.
	Step(f RHS, t float64, y []float64, h float64)
}

// Euler is the explicit first-order stepper: y ← y + h·f(t, y).
type Euler struct {
	dy []float64
}

// NewEuler returns an Euler stepper for a system of dimension dim.
func NewEuler(dim int) *Euler {
	return &Euler{dy: make([]float64, dim)}
}

func (e *Euler) Step(f RHS, t float64, y []float64, h float64) {
	f(t, y, e.dy)
	floats.AddScaled(y, h, e.dy)
}

// RK4 is the classic fourth-order Runge-Kutta stepper.
type RK4 struct {
	k1, k2, k3, k4, tmp []float64
}

// NewRK4 returns an RK4 stepper for a system of dimension dim.
func NewRK4(dim int) *RK4 {
	return &RK4{
		k1:  make([]float64, dim),
		k2:  make([]float64, dim),
		k3:  make([]float64, dim),
		k4:  make([]float64, dim),
		tmp: make([]float64, dim),
	}
}

func (r *RK4) Step(f RHS, t float64, y []float64, h float64) {
	f(t, y, r.k1)

	floats.AddScaledTo(r.tmp, y, h/2, r.k1)
	f(t+h/2, r.tmp, r.k2)

	floats.AddScaledTo(r.tmp, y, h/2, r.k2)
	f(t+h/2, r.tmp, r.k3)

	floats.AddScaledTo(r.tmp, y, h, r.k3)
	f(t+h, r.tmp, r.k4)

	floats.AddScaled(y, h/6, r.k1)
	floats.AddScaled(y, h/3, r.k2)
	floats.AddScaled(y, h/3, r.k3)
	floats.AddScaled(y, h/6, r.k4)
}

// NewStepper builds a stepper by name. Recognized names are "euler" and
// "rk4"; the empty string defaults to rk4.
func NewStepper(name string, dim int) (Stepper, error) {
	switch name {
	case "", "rk4":
		return NewRK4(dim), nil
	case "euler":
		return NewEuler(dim), nil
	default:
		return nil, configErrf("integrator", "unknown stepper %q", name)
	}
}
