package metrics

import (
	"math"

	"isinglab/internal/ising"
)

// Magnetization averages the lattice's total spin over the observed
// sweeps.
type Magnetization struct {
	name    string
	sum     float64
	samples int
}

func NewMagnetization() *Magnetization {
	return &Magnetization{name: "magnetization"}
}

func (m *Magnetization) Name() string { return m.name }

func (m *Magnetization) Observe(lat *ising.Lattice, flips, sweep int) {
	m.sum += lat.TotalSpin()
	m.samples++
}

func (m *Magnetization) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *Magnetization) Reset() {
	m.sum = 0
	m.samples = 0
}

// AbsMagnetization averages |total spin| per site, the order parameter
// conventionally reported near the phase transition.
type AbsMagnetization struct {
	name    string
	sum     float64
	samples int
}

func NewAbsMagnetization() *AbsMagnetization {
	return &AbsMagnetization{name: "abs_magnetization"}
}

func (m *AbsMagnetization) Name() string { return m.name }

func (m *AbsMagnetization) Observe(lat *ising.Lattice, flips, sweep int) {
	m.sum += math.Abs(lat.TotalSpin()) / float64(lat.Size())
	m.samples++
}

func (m *AbsMagnetization) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *AbsMagnetization) Reset() {
	m.sum = 0
	m.samples = 0
}

// AcceptanceRate tracks the fraction of attempted flips that were
// accepted across the observed sweeps.
type AcceptanceRate struct {
	name      string
	accepted  int
	attempted int
}

func NewAcceptanceRate() *AcceptanceRate {
	return &AcceptanceRate{name: "acceptance_rate"}
}

func (a *AcceptanceRate) Name() string { return a.name }

func (a *AcceptanceRate) Observe(lat *ising.Lattice, flips, sweep int) {
	a.accepted += flips
	a.attempted += lat.Size()
}

func (a *AcceptanceRate) Value() float64 {
	if a.attempted == 0 {
		return 0
	}
	return float64(a.accepted) / float64(a.attempted)
}

func (a *AcceptanceRate) Reset() {
	a.accepted = 0
	a.attempted = 0
}
