package ising

// Coupling supplies the exchange weight applied to each of a site's four
// neighbor bonds. Implementations may vary the weights with the site
// coordinates; the built-in couplings ignore them.
type Coupling interface {
	Weights(row, col int) Neighbors
}

// Uniform returns a coupling with the same scalar weight on every bond.
func Uniform(j float64) Coupling {
	return uniform(j)
}

type uniform float64

func (u uniform) Weights(row, col int) Neighbors {
	j := float64(u)
	return Neighbors{j, j, j, j}
}

// Anisotropic returns a coupling with fixed per-direction weights in
// (left, right, up, down) order.
func Anisotropic(left, right, up, down float64) Coupling {
	return anisotropic{left, right, up, down}
}

type anisotropic Neighbors

func (a anisotropic) Weights(row, col int) Neighbors {
	return Neighbors(a)
}

// CouplingFunc adapts a plain function to the Coupling interface, for
// spatially varying exchange energies.
type CouplingFunc func(row, col int) Neighbors

func (f CouplingFunc) Weights(row, col int) Neighbors {
	return f(row, col)
}
