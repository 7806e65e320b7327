// Package config loads scorer configuration from YAML files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/originality/pkg/originality/internalerr"
)

// Config represents the scorer configuration
type Config struct {
	// Weights maps metric names ("entropy", "diversity") to contribution
	// weights. The scorer normalizes them, so they need not sum to one.
	Weights map[string]float64 `yaml:"weights"`
}

// Load reads a scorer configuration from a YAML file. Weights must be
// non-negative; a weight map that sums to zero is allowed and makes the
// scorer fall back to its default equal weights.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	for key, w := range cfg.Weights {
		if w < 0 {
			return nil, fmt.Errorf("%w: weight %q is negative (%v)", internalerr.ErrInvalidConfig, key, w)
		}
	}

	return &cfg, nil
}
