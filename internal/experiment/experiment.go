// Package experiment turns a configuration into an executed simulation
// run ready for storage.
package experiment

import (
	"context"

	"isinglab/internal/config"
	"isinglab/internal/ising"
	"isinglab/internal/metrics"
	"isinglab/internal/storage"
)

// Result pairs a run's metadata with its recorded series. For single
// runs the series is total spin per sweep; for scans it is average
// magnetization per temperature.
type Result struct {
	Meta  storage.RunMetadata
	Data  storage.RunData
	Final *ising.Lattice
}

func build(cfg *config.Config) (*ising.Simulator, ising.Boundary, error) {
	bc, err := ising.ParseBoundary(cfg.Boundary)
	if err != nil {
		return nil, 0, err
	}
	lat, err := cfg.BuildLattice()
	if err != nil {
		return nil, 0, err
	}
	return ising.New(lat, cfg.BuildParams()), bc, nil
}

func baseMeta(cfg *config.Config, kind string) storage.RunMetadata {
	return storage.RunMetadata{
		Kind:      kind,
		Rows:      cfg.Rows,
		Cols:      cfg.Cols,
		Coupling:  cfg.Coupling,
		Field:     cfg.Field,
		Boltzmann: cfg.Boltzmann,
		Boundary:  cfg.Boundary,
		Sweeps:    cfg.Sweeps,
		Seed:      cfg.Seed,
	}
}

// Run executes a single-temperature aggregation with the standard
// metric set attached.
func Run(ctx context.Context, cfg *config.Config) (*Result, error) {
	sim, bc, err := build(cfg)
	if err != nil {
		return nil, err
	}

	series := metrics.NewSeries(cfg.Sweeps)
	sim.AddObserver(series)

	absMag := metrics.NewAbsMagnetization()
	accept := metrics.NewAcceptanceRate()
	energy := metrics.NewEnergy(cfg.BuildCoupling(), cfg.Field, bc)
	sim.AddMetric(absMag)
	sim.AddMetric(accept)
	sim.AddMetric(energy)

	mean, err := sim.MagnetizationAt(cfg.Temperature, cfg.Sweeps, bc)
	if err != nil {
		return nil, err
	}

	meta := baseMeta(cfg, storage.KindSingle)
	meta.Temperatures = []float64{cfg.Temperature}
	meta.Averages = []float64{mean}
	meta.Metrics = map[string]float64{
		absMag.Name(): absMag.Value(),
		accept.Name(): accept.Value(),
		energy.Name(): energy.Value(),
	}

	return &Result{
		Meta:  meta,
		Data:  storage.RunData{X: series.Sweeps(), Y: series.Totals()},
		Final: sim.Lattice(),
	}, nil
}

// Scan executes the multi-temperature aggregation, one isolated worker
// per temperature.
func Scan(ctx context.Context, cfg *config.Config) (*Result, error) {
	sim, bc, err := build(cfg)
	if err != nil {
		return nil, err
	}

	avgs, err := sim.MagnetizationScan(ctx, cfg.Temperatures, cfg.Sweeps, bc)
	if err != nil {
		return nil, err
	}

	meta := baseMeta(cfg, storage.KindScan)
	meta.Temperatures = cfg.Temperatures
	meta.Averages = avgs

	return &Result{
		Meta:  meta,
		Data:  storage.RunData{X: cfg.Temperatures, Y: avgs},
		Final: sim.Lattice(),
	}, nil
}
