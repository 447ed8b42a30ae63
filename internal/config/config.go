package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultRows        = 32
	DefaultCols        = 32
	DefaultCoupling    = 1.0
	DefaultBoltzmann   = 1.0
	DefaultTemperature = 2.27
	DefaultSweeps      = 1000
	DefaultBoundary    = "PBC"
	DefaultInit        = "random"
)

// Config describes one simulation setup: lattice shape, physical
// parameters and the sweep schedule.
type Config struct {
	Rows         int           `yaml:"rows"`
	Cols         int           `yaml:"cols"`
	Coupling     float64       `yaml:"coupling"`
	CouplingDirs *CouplingDirs `yaml:"coupling_dirs,omitempty"`
	Field        float64       `yaml:"field"`
	Boltzmann    float64       `yaml:"boltzmann"`
	Temperature  float64       `yaml:"temperature"`
	Temperatures []float64     `yaml:"temperatures,omitempty"`
	Sweeps       int           `yaml:"sweeps"`
	Boundary     string        `yaml:"boundary"`
	Init         string        `yaml:"init"`
	Seed         int64         `yaml:"seed"`
}

// CouplingDirs holds per-direction exchange weights for anisotropic
// lattices.
type CouplingDirs struct {
	Left  float64 `yaml:"left"`
	Right float64 `yaml:"right"`
	Up    float64 `yaml:"up"`
	Down  float64 `yaml:"down"`
}

func DefaultConfig() *Config {
	return &Config{
		Rows:        DefaultRows,
		Cols:        DefaultCols,
		Coupling:    DefaultCoupling,
		Boltzmann:   DefaultBoltzmann,
		Temperature: DefaultTemperature,
		Sweeps:      DefaultSweeps,
		Boundary:    DefaultBoundary,
		Init:        DefaultInit,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
