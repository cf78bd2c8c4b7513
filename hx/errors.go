package hx

import "fmt"

// InvalidFlowError reports a non-positive mass flow supplied to the coil
// evaluation. A capacitance rate of zero has no defined effectiveness, so
// the evaluation fails instead of dividing by zero.
type InvalidFlowError struct {
	Stream   string  // "water" or "air"
	MassFlow float64 // kg/s as supplied
}

func (e *InvalidFlowError) Error() string {
	return fmt.Sprintf("dry coil: %s mass flow must be positive, got %g kg/s", e.Stream, e.MassFlow)
}

// UnsupportedRegimeError reports a flow regime with no effectiveness
// correlation mapped to it.
type UnsupportedRegimeError struct {
	Regime string
}

func (e *UnsupportedRegimeError) Error() string {
	return fmt.Sprintf("dry coil: unsupported flow regime %q", e.Regime)
}

// ConfigurationError reports an invalid coil parameter.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("dry coil configuration: %s %s", e.Field, e.Reason)
}

func configErrf(field, format string, args ...any) error {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
