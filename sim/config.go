package sim

// Config describes one simulation scenario. It is the full input surface of
// the core; scenario files unmarshal straight into it.
type Config struct {
	MachineCount   int      `yaml:"machines"`     // machining slots (must be > 0)
	ShiftStartHour float64  `yaml:"shift_start"`  // daily shift opening hour, in [0, 24)
	ShiftEndHour   float64  `yaml:"shift_end"`    // daily shift closing hour, in (0, 24], after start
	ProductTypes   []string `yaml:"products"`     // one production line per entry (must be non-empty, unique)
	Horizon        float64  `yaml:"horizon"`      // simulated hours to run
	Seed           uint64   `yaml:"seed"`         // seed for all stochastic durations
}

// Validate rejects unusable scenarios before any simulation state exists.
// The shift window itself is validated again by NewShiftCalendar; the checks
// here cover everything else.
func (c Config) Validate() error {
	if c.MachineCount <= 0 {
		return &ConfigError{Field: "machine_count", Reason: "must be positive"}
	}
	if len(c.ProductTypes) == 0 {
		return &ConfigError{Field: "product_types", Reason: "must name at least one product"}
	}
	seen := make(map[string]bool, len(c.ProductTypes))
	for _, p := range c.ProductTypes {
		if p == "" {
			return &ConfigError{Field: "product_types", Reason: "empty product type"}
		}
		if seen[p] {
			return &ConfigError{Field: "product_types", Reason: "duplicate product type " + p}
		}
		seen[p] = true
	}
	if c.Horizon < 0 {
		return &ConfigError{Field: "horizon", Reason: "must be non-negative"}
	}
	return nil
}
