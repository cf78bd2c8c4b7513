package tank

// Medium supplies the thermophysical properties of the stored fluid.
// Cp and Rho take the local temperature so that temperature-dependent
// property models can be plugged in; the built-in media ignore it.
type Medium interface {
	// Cp returns the specific heat capacity at temperature T, J/(kg·K).
	Cp(T float64) float64
	// Rho returns the density at temperature T, kg/m³.
	Rho(T float64) float64
	// Lambda returns the thermal conductivity of the fluid, W/(m·K).
	Lambda() float64
}

// ConstantMedium is a Medium with temperature-independent properties.
type ConstantMedium struct {
	CpVal     float64 `yaml:"cp"`
	RhoVal    float64 `yaml:"rho"`
	LambdaVal float64 `yaml:"lambda"`
}

func (m ConstantMedium) Cp(float64) float64  { return m.CpVal }
func (m ConstantMedium) Rho(float64) float64 { return m.RhoVal }
func (m ConstantMedium) Lambda() float64     { return m.LambdaVal }

// Validate checks the medium properties for physical plausibility.
func (m ConstantMedium) Validate() error {
	if m.CpVal <= 0 {
		return configErrf("medium.cp", "must be positive, got %g", m.CpVal)
	}
	if m.RhoVal <= 0 {
		return configErrf("medium.rho", "must be positive, got %g", m.RhoVal)
	}
	if m.LambdaVal <= 0 {
		return configErrf("medium.lambda", "must be positive, got %g", m.LambdaVal)
	}
	return nil
}

// Water returns liquid water properties near 60 °C, the usual operating
// point of a domestic storage tank.
func Water() ConstantMedium {
	return ConstantMedium{CpVal: 4186, RhoVal: 983.2, LambdaVal: 0.654}
}
