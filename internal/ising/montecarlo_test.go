package ising

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlipEnergyZeroNeighborsZeroField(t *testing.T) {
	for _, j := range []float64{-3, -1, 0, 1, 2.5} {
		lat, _ := NewUniform(1, 1, 1)
		sim := New(lat, Params{Coupling: Uniform(j)})
		require.Zero(t, sim.FlipEnergy(0, 0, 1, Neighbors{}),
			"all-zero neighbors and zero field must give E_flip = 0 for J=%v", j)
	}
}

func TestFlipEnergyFormula(t *testing.T) {
	lat, _ := NewUniform(2, 2, 1)
	sim := New(lat, Params{Coupling: Uniform(2), Field: 0.5})

	// E1 = J·s·Σn + ε·s = 2·1·(1-1+1+1) + 0.5·1 = 4.5, E_flip = -9.
	nb := Neighbors{1, -1, 1, 1}
	require.Equal(t, -9.0, sim.FlipEnergy(0, 0, 1, nb))

	// Recomputing on the flipped spin negates the result exactly.
	require.Equal(t, 9.0, sim.FlipEnergy(0, 0, -1, nb))
}

func TestFlipEnergyAnisotropicCoupling(t *testing.T) {
	lat, _ := NewUniform(1, 1, 1)
	sim := New(lat, Params{Coupling: Anisotropic(1, 2, 3, 4)})

	// E1 = 1·1 + 2·1 + 3·1 + 4·1 = 10, E_flip = -20.
	require.Equal(t, -20.0, sim.FlipEnergy(0, 0, 1, Neighbors{1, 1, 1, 1}))
}

func TestFlipEnergyCoordinateDependentCoupling(t *testing.T) {
	lat, _ := NewUniform(2, 2, 1)
	coupling := CouplingFunc(func(row, col int) Neighbors {
		j := float64(row + col)
		return Neighbors{j, j, j, j}
	})
	sim := New(lat, Params{Coupling: coupling})

	nb := Neighbors{1, 1, 1, 1}
	require.Equal(t, 0.0, sim.FlipEnergy(0, 0, 1, nb))
	require.Equal(t, -16.0, sim.FlipEnergy(1, 1, 1, nb))
}

func TestFlipEnergySingleSiteOpenBoundary(t *testing.T) {
	// A 1x1 lattice under OBC has four zero neighbors, so
	// E_flip = -2·ε·s regardless of coupling.
	lat, _ := NewUniform(1, 1, 1)
	sim := New(lat, Params{Coupling: Uniform(5), Field: 2})

	nb := lat.NeighborSpins(0, 0, Open)
	require.Equal(t, Neighbors{}, nb)
	require.Equal(t, -4.0, sim.FlipEnergy(0, 0, 1, nb))
}

func TestAcceptEnergyLoweringMove(t *testing.T) {
	lat, _ := NewUniform(1, 1, 1)
	sim := New(lat, Params{Temperature: 0})

	for i := 0; i < 1000; i++ {
		require.True(t, sim.Accept(-0.001), "negative flip energy must always be accepted")
	}
}

func TestAcceptZeroTemperature(t *testing.T) {
	lat, _ := NewUniform(1, 1, 1)
	sim := New(lat, Params{Temperature: 0, Seed: 3})

	// E > 0 at T = 0: exp(-Inf) = 0, u <= 0 is not satisfied.
	for i := 0; i < 1000; i++ {
		require.False(t, sim.Accept(1.0), "positive flip energy at T=0 must be rejected")
	}

	// E == 0 at T = 0: exp(-0/0) is NaN and any comparison against NaN
	// is false, so the flip is rejected.
	for i := 0; i < 1000; i++ {
		require.False(t, sim.Accept(0.0), "zero flip energy at T=0 must be rejected")
	}
}

func TestAcceptZeroEnergyPositiveTemperature(t *testing.T) {
	lat, _ := NewUniform(1, 1, 1)
	sim := New(lat, Params{Temperature: 1, Seed: 3})

	// exp(0) = 1 and u < 1, so a zero-energy move at T > 0 always passes.
	for i := 0; i < 1000; i++ {
		require.True(t, sim.Accept(0.0))
	}
}

func TestSweepInvalidBoundaryLeavesLatticeUntouched(t *testing.T) {
	lat, _ := FromSpins(2, 3, []float64{1, -1, 1, -1, 1, -1})
	before := append([]float64(nil), lat.Spins()...)

	sim := New(lat, DefaultParams())
	_, err := sim.Sweep(Boundary(42))
	require.ErrorIs(t, err, ErrInvalidBoundary)
	require.Equal(t, before, lat.Spins())
}

func TestSweepSingleSiteOpenBoundary(t *testing.T) {
	// For a 1x1 lattice E_flip = -2·ε·s. With ε = 2 and s = +1 the move
	// lowers the energy and must be applied even at T = 0; recomputed on
	// the flipped spin it raises the energy and the site stays put.
	lat, _ := NewUniform(1, 1, 1)
	sim := New(lat, Params{Field: 2, Temperature: 0})

	flips, err := sim.Sweep(Open)
	require.NoError(t, err)
	require.Equal(t, 1, flips)
	require.Equal(t, -1.0, lat.At(0, 0))

	flips, err = sim.Sweep(Open)
	require.NoError(t, err)
	require.Zero(t, flips)
	require.Equal(t, -1.0, lat.At(0, 0))
}

func TestSweepZeroTemperatureStableLattice(t *testing.T) {
	// With J = -1 every aligned site has E1 = -4 and E_flip = +8: no
	// energy-lowering move exists, and the zero-temperature decider only
	// accepts strictly negative flip energies. Nothing may move.
	lat, _ := NewUniform(4, 4, 1)
	sim := New(lat, Params{Coupling: Uniform(-1), Temperature: 0, Seed: 11})

	flips, err := sim.Sweep(Periodic)
	require.NoError(t, err)
	require.Zero(t, flips)
	require.Equal(t, 16, lat.PositiveCount())
}

func TestSweepHighTemperatureAcceptsEverything(t *testing.T) {
	// As T grows, exp(-E/(k_B T)) -> 1 for every energy, so essentially
	// every site flips each sweep.
	lat, _ := NewUniform(4, 4, 1)
	sim := New(lat, Params{Coupling: Uniform(-1), Temperature: 1e7, Seed: 11})

	flips, err := sim.Sweep(Periodic)
	require.NoError(t, err)
	require.GreaterOrEqual(t, flips, 15, "acceptance probability approaches 1 as T grows")
}

func TestSweepHighTemperatureRandomizesMagnetization(t *testing.T) {
	rng := newTestRand(17)
	lat, _ := NewRandom(16, 16, 1, rng)
	sim := New(lat, Params{Coupling: Uniform(1), Temperature: 50, Seed: 17})

	for i := 0; i < 200; i++ {
		_, err := sim.Sweep(Periodic)
		require.NoError(t, err)
	}

	frac := float64(lat.PositiveCount()) / float64(lat.Size())
	require.InDelta(t, 0.5, frac, 0.2, "a hot lattice must stay near zero magnetization")
}

func TestMagnetizationAt(t *testing.T) {
	// ε = 2 drives the single site to -1 on the first sweep, where it
	// stays; every sampled total spin is therefore -1.
	lat, _ := NewUniform(1, 1, 1)
	sim := New(lat, Params{Field: 2, Temperature: 0})

	m, err := sim.MagnetizationAt(0, 5, Open)
	require.NoError(t, err)
	require.Equal(t, -1.0, m)
}

func TestMagnetizationAtSetsTemperature(t *testing.T) {
	lat, _ := NewUniform(2, 2, 1)
	sim := New(lat, DefaultParams())

	_, err := sim.MagnetizationAt(3.5, 1, Periodic)
	require.NoError(t, err)
	require.Equal(t, 3.5, sim.Temperature())
}

func TestMagnetizationAtInvalidSweepCount(t *testing.T) {
	lat, _ := NewUniform(2, 2, 1)
	sim := New(lat, DefaultParams())

	for _, n := range []int{0, -1, -100} {
		_, err := sim.MagnetizationAt(1, n, Periodic)
		require.ErrorIs(t, err, ErrInvalidSweepCount)
	}
}

func TestSweepDeterministicForSeed(t *testing.T) {
	run := func() []float64 {
		rng := newTestRand(5)
		lat, _ := NewRandom(8, 8, 1, rng)
		sim := New(lat, Params{Coupling: Uniform(1), Temperature: 2, Seed: 5})
		for i := 0; i < 10; i++ {
			_, err := sim.Sweep(Periodic)
			require.NoError(t, err)
		}
		return append([]float64(nil), lat.Spins()...)
	}

	require.Equal(t, run(), run(), "identical seeds must reproduce identical trajectories")
}
