package ising

import "math/rand/v2"

// Lattice stores a 2-D grid of spin values in row-major order. Dimensions
// are fixed at construction; sweeps mutate spin signs in place and never
// change a spin's magnitude.
type Lattice struct {
	rows, cols int
	spins      []float64
}

// NewUniform allocates a lattice with every site set to the given spin.
func NewUniform(rows, cols int, spin float64) (*Lattice, error) {
	l, err := newLattice(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range l.spins {
		l.spins[i] = spin
	}
	return l, nil
}

// NewRandom allocates a lattice with each site drawn uniformly from
// {+magnitude, -magnitude} using the provided source.
func NewRandom(rows, cols int, magnitude float64, rng *rand.Rand) (*Lattice, error) {
	l, err := newLattice(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range l.spins {
		if rng.IntN(2) == 0 {
			l.spins[i] = magnitude
		} else {
			l.spins[i] = -magnitude
		}
	}
	return l, nil
}

// FromSpins builds a lattice from an explicit row-major spin slice.
// The slice is copied.
func FromSpins(rows, cols int, spins []float64) (*Lattice, error) {
	l, err := newLattice(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(spins) != rows*cols {
		return nil, ErrDimensionMismatch
	}
	copy(l.spins, spins)
	return l, nil
}

func newLattice(rows, cols int) (*Lattice, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrInvalidDimensions
	}
	return &Lattice{rows: rows, cols: cols, spins: make([]float64, rows*cols)}, nil
}

// Rows returns the number of lattice rows.
func (l *Lattice) Rows() int { return l.rows }

// Cols returns the number of lattice columns.
func (l *Lattice) Cols() int { return l.cols }

// Size returns the total number of sites.
func (l *Lattice) Size() int { return l.rows * l.cols }

// At returns the spin at (row, col). Coordinates are zero-based.
func (l *Lattice) At(row, col int) float64 {
	return l.spins[row*l.cols+col]
}

// Set assigns the spin at (row, col).
func (l *Lattice) Set(row, col int, spin float64) {
	l.spins[row*l.cols+col] = spin
}

// Flip inverts the sign of the spin at (row, col), leaving its magnitude
// unchanged.
func (l *Lattice) Flip(row, col int) {
	l.spins[row*l.cols+col] *= -1
}

// Clone returns an independent deep copy of the lattice.
func (l *Lattice) Clone() *Lattice {
	c := &Lattice{rows: l.rows, cols: l.cols, spins: make([]float64, len(l.spins))}
	copy(c.spins, l.spins)
	return c
}

// Spins exposes the backing row-major slice so collaborators (rendering,
// export) can read values directly. Callers must not resize it.
func (l *Lattice) Spins() []float64 { return l.spins }

// PositiveCount returns the number of sites with spin > 0.
func (l *Lattice) PositiveCount() int {
	n := 0
	for _, s := range l.spins {
		if s > 0 {
			n++
		}
	}
	return n
}

// NegativeCount returns the number of sites with spin < 0.
func (l *Lattice) NegativeCount() int {
	n := 0
	for _, s := range l.spins {
		if s < 0 {
			n++
		}
	}
	return n
}

// TotalSpin returns the sum of all spins (the instantaneous magnetization).
func (l *Lattice) TotalSpin() float64 {
	sum := 0.0
	for _, s := range l.spins {
		sum += s
	}
	return sum
}

// Summary returns the positive spin count, negative spin count and total
// spin in one pass.
func (l *Lattice) Summary() (positive, negative int, total float64) {
	for _, s := range l.spins {
		switch {
		case s > 0:
			positive++
		case s < 0:
			negative++
		}
		total += s
	}
	return positive, negative, total
}

// NeighborSpins derives the (left, right, up, down) neighbor spins of the
// site at (row, col) under the given boundary policy. Under Open, a
// neighbor beyond a grid edge contributes spin 0; under Periodic the grid
// wraps toroidally.
func (l *Lattice) NeighborSpins(row, col int, bc Boundary) Neighbors {
	var nb Neighbors
	switch bc {
	case Open:
		if col > 0 {
			nb[Left] = l.At(row, col-1)
		}
		if col < l.cols-1 {
			nb[Right] = l.At(row, col+1)
		}
		if row > 0 {
			nb[Up] = l.At(row-1, col)
		}
		if row < l.rows-1 {
			nb[Down] = l.At(row+1, col)
		}
	case Periodic:
		nb[Left] = l.At(row, (col-1+l.cols)%l.cols)
		nb[Right] = l.At(row, (col+1)%l.cols)
		nb[Up] = l.At((row-1+l.rows)%l.rows, col)
		nb[Down] = l.At((row+1)%l.rows, col)
	}
	return nb
}

// Neighbors holds the spins of a site's four neighbors in
// (left, right, up, down) order.
type Neighbors [4]float64

// Indices into a Neighbors tuple.
const (
	Left = iota
	Right
	Up
	Down
)
