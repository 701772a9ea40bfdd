package cmd

import (
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/sandlot-sim/sandlot-sim/sim"
)

// LoadTuning reads tuning overrides from a YAML file. Keys not present in
// the file keep their compiled-in defaults.
func LoadTuning(path string) (sim.Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return sim.Tuning{}, err
	}
	tuning := sim.DefaultTuning()
	if err := yaml.Unmarshal(data, &tuning); err != nil {
		return sim.Tuning{}, err
	}
	return tuning, nil
}
