package tank

import "fmt"

// ConfigurationError reports an invalid structural parameter detected at
// construction time. Configuration problems surface here, before the first
// right-hand-side evaluation, never during a solver step.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("tank configuration: %s %s", e.Field, e.Reason)
}

func configErrf(field, format string, args ...any) error {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
