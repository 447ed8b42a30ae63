package config

import "sort"

var Presets = map[string]*Config{
	"cold": {
		Rows: 32, Cols: 32, Coupling: -1, Boltzmann: 1,
		Temperature: 0.5, Sweeps: 2000, Boundary: "PBC", Init: "up",
	},
	"critical": {
		Rows: 64, Cols: 64, Coupling: -1, Boltzmann: 1,
		Temperature: 2.269, Sweeps: 5000, Boundary: "PBC", Init: "random",
	},
	"hot": {
		Rows: 32, Cols: 32, Coupling: -1, Boltzmann: 1,
		Temperature: 10, Sweeps: 1000, Boundary: "PBC", Init: "random",
	},
	"field-driven": {
		Rows: 32, Cols: 32, Coupling: -1, Field: 0.5, Boltzmann: 1,
		Temperature: 1.5, Sweeps: 2000, Boundary: "PBC", Init: "random",
	},
	"open-small": {
		Rows: 16, Cols: 16, Coupling: -1, Boltzmann: 1,
		Temperature: 1.0, Sweeps: 1000, Boundary: "OBC", Init: "random",
	},
	"transition-scan": {
		Rows: 32, Cols: 32, Coupling: -1, Boltzmann: 1,
		Temperatures: []float64{0.5, 1.0, 1.5, 2.0, 2.269, 2.5, 3.0, 3.5, 4.0},
		Sweeps:       2000, Boundary: "PBC", Init: "up",
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
