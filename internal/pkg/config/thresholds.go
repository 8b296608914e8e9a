package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RangeSpec is one parameter range as written in the defaults file.
type RangeSpec struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type thresholdDefaultsFile struct {
	Parameters map[string]RangeSpec `yaml:"parameters"`
}

// LoadThresholdDefaults reads fleet fallback ranges from a YAML file of the form
//
//	parameters:
//	  pH: {min: 5.5, max: 6.5}
//	  ec: {min: 1.8, max: 2.4}
//
// An empty path returns nil without error.
func LoadThresholdDefaults(path string) (map[string]RangeSpec, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read threshold defaults %s: %w", path, err)
	}
	return ParseThresholdDefaults(raw)
}

func ParseThresholdDefaults(raw []byte) (map[string]RangeSpec, error) {
	var f thresholdDefaultsFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse threshold defaults: %w", err)
	}
	for name, r := range f.Parameters {
		if r.Max < r.Min {
			return nil, fmt.Errorf("threshold default %q: max %v is below min %v", name, r.Max, r.Min)
		}
	}
	return f.Parameters, nil
}
