// Package ising implements a Metropolis Monte Carlo simulator for a
// two-dimensional Ising-type spin lattice.
//
// The package defines the fundamental types for stochastic spin-flip
// simulation:
//
//   - [Lattice]: mutable 2-D grid of two-valued spins
//   - [Boundary]: open vs periodic neighbor derivation policy
//   - [Coupling]: exchange weights, optionally coordinate-dependent
//   - [Simulator]: flip energy, Metropolis acceptance, full-lattice sweeps
//     and magnetization aggregation
//
// # Example
//
//	lat := ising.NewUniform(16, 16, 1)
//	sim := ising.New(lat, ising.DefaultParams())
//	m, _ := sim.MagnetizationAt(2.27, 1000, ising.Periodic)
//
// # Thread Safety
//
// Simulator instances are NOT thread-safe. MagnetizationScan runs one
// isolated simulator per temperature, each on a cloned lattice.
package ising
