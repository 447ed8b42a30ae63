package config

import (
	"fmt"
	"math/rand/v2"

	"isinglab/internal/ising"
)

// BuildLattice constructs the initial lattice described by the config.
func (c *Config) BuildLattice() (*ising.Lattice, error) {
	switch c.Init {
	case "up":
		return ising.NewUniform(c.Rows, c.Cols, 1)
	case "down":
		return ising.NewUniform(c.Rows, c.Cols, -1)
	case "random", "":
		rng := rand.New(rand.NewPCG(uint64(c.Seed), 1))
		return ising.NewRandom(c.Rows, c.Cols, 1, rng)
	default:
		return nil, fmt.Errorf("unknown init %q (want up, down or random)", c.Init)
	}
}

// BuildCoupling returns the configured exchange coupling, anisotropic
// when per-direction weights are given.
func (c *Config) BuildCoupling() ising.Coupling {
	if d := c.CouplingDirs; d != nil {
		return ising.Anisotropic(d.Left, d.Right, d.Up, d.Down)
	}
	return ising.Uniform(c.Coupling)
}

// BuildParams maps the config onto simulator parameters.
func (c *Config) BuildParams() ising.Params {
	return ising.Params{
		Coupling:    c.BuildCoupling(),
		Field:       c.Field,
		Boltzmann:   c.Boltzmann,
		Temperature: c.Temperature,
		Seed:        c.Seed,
	}
}
