package sim

import "fmt"

// ConfigError reports an invalid scenario configuration. It is returned from
// constructors and Validate before any simulation state is built; a scenario
// that fails validation never runs.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

// SchedulingError is an internal invariant violation, such as scheduling a
// continuation with a negative delay. It is a programming error: the
// simulator panics with it rather than returning it.
type SchedulingError struct {
	Delay float64
	At    float64
}

func (e *SchedulingError) Error() string {
	return fmt.Sprintf("scheduling error: negative delay %.4f requested at t=%.4f", e.Delay, e.At)
}
