package metrics

import "isinglab/internal/ising"

// Series records the lattice's total spin after every sweep, for storage
// and plotting. It implements ising.Observer.
type Series struct {
	sweeps []float64
	totals []float64
}

func NewSeries(capacity int) *Series {
	return &Series{
		sweeps: make([]float64, 0, capacity),
		totals: make([]float64, 0, capacity),
	}
}

func (s *Series) OnSweep(lat *ising.Lattice, sweep int) {
	s.sweeps = append(s.sweeps, float64(sweep))
	s.totals = append(s.totals, lat.TotalSpin())
}

// Sweeps returns the recorded sweep indices.
func (s *Series) Sweeps() []float64 { return s.sweeps }

// Totals returns the recorded total spins, index-aligned with Sweeps.
func (s *Series) Totals() []float64 { return s.totals }
