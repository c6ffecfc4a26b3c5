package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/factory-sim/factory-sim/sim"
)

// scenarioFileSpec is the on-disk layout of a scenario file:
//
//	scenarios:
//	  - machines: 2
//	    shift_start: 8
//	    shift_end: 20
//	    products: [A, B]
//	    horizon: 200
//	    seed: 42
type scenarioFileSpec struct {
	Scenarios []sim.Config `yaml:"scenarios"`
}

// LoadScenarios parses a YAML scenario file into a list of simulation
// configs. Validation of each scenario happens when it is run, not here.
func LoadScenarios(path string) ([]sim.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var spec scenarioFileSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(spec.Scenarios) == 0 {
		return nil, fmt.Errorf("%s contains no scenarios", path)
	}
	return spec.Scenarios, nil
}
