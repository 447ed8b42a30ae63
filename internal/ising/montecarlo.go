package ising

import (
	"context"
	"math"
	"math/rand/v2"
	"sync"
)

// Params holds the physical constants of a simulation. Temperature is the
// only parameter mutated after construction (it is swept during
// aggregation runs).
type Params struct {
	Coupling    Coupling
	Field       float64
	Boltzmann   float64
	Temperature float64
	Seed        int64
}

// DefaultParams mirrors the conventional reduced-unit setup: unit
// coupling, no external field, k_B = 1, zero temperature.
func DefaultParams() Params {
	return Params{
		Coupling:  Uniform(1),
		Boltzmann: 1,
	}
}

// Metric observes the lattice after every sweep of an aggregation run.
type Metric interface {
	Name() string
	Observe(lat *Lattice, flips, sweep int)
	Value() float64
	Reset()
}

// Observer receives a callback after every sweep, for live views and
// other collaborators that track lattice evolution.
type Observer interface {
	OnSweep(lat *Lattice, sweep int)
}

// Simulator applies the Metropolis algorithm to a lattice. It owns the
// lattice it was constructed with and mutates it in place; no other
// component writes spin values.
type Simulator struct {
	lat       *Lattice
	coupling  Coupling
	field     float64
	kB        float64
	temp      float64
	seed      int64
	rng       *rand.Rand
	metrics   []Metric
	observers []Observer
}

// New builds a simulator around the given lattice. A nil Coupling falls
// back to Uniform(1) and a zero Boltzmann constant to 1.
func New(lat *Lattice, p Params) *Simulator {
	if p.Coupling == nil {
		p.Coupling = Uniform(1)
	}
	if p.Boltzmann == 0 {
		p.Boltzmann = 1
	}
	return &Simulator{
		lat:      lat,
		coupling: p.Coupling,
		field:    p.Field,
		kB:       p.Boltzmann,
		temp:     p.Temperature,
		seed:     p.Seed,
		rng:      rand.New(rand.NewPCG(uint64(p.Seed), 0)),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Lattice returns the simulated lattice for read-only collaborators.
func (s *Simulator) Lattice() *Lattice { return s.lat }

// Temperature returns the current system temperature.
func (s *Simulator) Temperature() float64 { return s.temp }

// SetTemperature updates the system temperature.
func (s *Simulator) SetTemperature(t float64) { s.temp = t }

// FlipEnergy returns the energy change of flipping the site at
// (row, col) given its current spin and neighbor spins.
//
// The energy contribution of the site in its current state is
//
//	E1 = Σ w_i·s·n_i + ε·s
//
// and flipping negates it, so E_flip = -2·E1. Missing neighbors under an
// open boundary enter as spin 0 and contribute nothing. The coordinates
// only matter for coordinate-dependent couplings.
func (s *Simulator) FlipEnergy(row, col int, site float64, nb Neighbors) float64 {
	w := s.coupling.Weights(row, col)
	exchange := 0.0
	for i := range nb {
		exchange += w[i] * nb[i]
	}
	return -2 * (site*exchange + s.field*site)
}

// Accept applies the Metropolis criterion to a flip energy. Energy-lowering
// moves are always accepted without consuming randomness; otherwise one
// uniform draw u from [0, 1) is compared against exp(-E/(k_B·T)).
//
// At T == 0 with E == 0 the exponent is 0/0, the exponential is NaN and
// the comparison is false per IEEE-754, so the flip is rejected. This
// matches the reference behavior and is deliberate.
func (s *Simulator) Accept(eFlip float64) bool {
	if eFlip < 0 {
		return true
	}
	return s.rng.Float64() <= math.Exp(-eFlip/(s.kB*s.temp))
}

// Sweep performs one full pass over the lattice in row-major order. Each
// site's four neighbor spins are derived under bc, its flip energy is
// evaluated, and accepted flips are applied immediately, so later sites
// in the same sweep see earlier flips (a sequential Gibbs-style pass).
//
// The boundary selector is validated once up front; an invalid selector
// returns ErrInvalidBoundary with the lattice untouched. Returns the
// number of accepted flips.
func (s *Simulator) Sweep(bc Boundary) (int, error) {
	if !bc.valid() {
		return 0, ErrInvalidBoundary
	}
	flips := 0
	for row := 0; row < s.lat.rows; row++ {
		for col := 0; col < s.lat.cols; col++ {
			site := s.lat.At(row, col)
			nb := s.lat.NeighborSpins(row, col, bc)
			if s.Accept(s.FlipEnergy(row, col, site, nb)) {
				s.lat.Flip(row, col)
				flips++
			}
		}
	}
	return flips, nil
}

// MagnetizationAt sets the system temperature, performs n sweeps under bc
// and returns the arithmetic mean of the lattice's total spin sampled
// after each sweep. n must be at least 1.
func (s *Simulator) MagnetizationAt(temp float64, n int, bc Boundary) (float64, error) {
	if n < 1 {
		return 0, ErrInvalidSweepCount
	}
	if !bc.valid() {
		return 0, ErrInvalidBoundary
	}
	s.temp = temp

	for _, m := range s.metrics {
		m.Reset()
	}

	sum := 0.0
	for i := 0; i < n; i++ {
		flips, err := s.Sweep(bc)
		if err != nil {
			return 0, err
		}
		sum += s.lat.TotalSpin()
		for _, m := range s.metrics {
			m.Observe(s.lat, flips, i)
		}
		for _, o := range s.observers {
			o.OnSweep(s.lat, i)
		}
	}
	return sum / float64(n), nil
}

// MagnetizationScan runs MagnetizationAt once per temperature, each run in
// its own goroutine on a cloned lattice with a derived seed, and returns
// the averages index-aligned with temps. Runs never share mutable state;
// the simulator's own lattice is left untouched.
//
// Metrics and observers are not carried into the per-run simulators: they
// are not safe for concurrent use.
//
// The context is checked between runs' sweeps; cancellation abandons the
// scan and returns the context error.
func (s *Simulator) MagnetizationScan(ctx context.Context, temps []float64, n int, bc Boundary) ([]float64, error) {
	if n < 1 {
		return nil, ErrInvalidSweepCount
	}
	if !bc.valid() {
		return nil, ErrInvalidBoundary
	}

	results := make([]float64, len(temps))
	errs := make([]error, len(temps))

	var wg sync.WaitGroup
	for i, temp := range temps {
		wg.Add(1)
		go func(idx int, temp float64) {
			defer wg.Done()

			run := New(s.lat.Clone(), Params{
				Coupling:    s.coupling,
				Field:       s.field,
				Boltzmann:   s.kB,
				Temperature: temp,
				Seed:        s.seed + int64(idx) + 1,
			})
			results[idx], errs[idx] = run.magnetization(ctx, temp, n, bc)
		}(i, temp)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

func (s *Simulator) magnetization(ctx context.Context, temp float64, n int, bc Boundary) (float64, error) {
	s.temp = temp
	sum := 0.0
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}
		if _, err := s.Sweep(bc); err != nil {
			return 0, err
		}
		sum += s.lat.TotalSpin()
	}
	return sum / float64(n), nil
}
