package ising

import "errors"

// Domain errors for simulation operations.
var (
	// ErrInvalidBoundary indicates a boundary condition selector that is
	// neither open nor periodic.
	ErrInvalidBoundary = errors.New("ising: invalid boundary condition (want OBC or PBC)")

	// ErrInvalidSweepCount indicates a requested sweep count below 1.
	ErrInvalidSweepCount = errors.New("ising: sweep count must be a positive integer")

	// ErrInvalidDimensions indicates non-positive lattice dimensions.
	ErrInvalidDimensions = errors.New("ising: lattice dimensions must be positive")

	// ErrDimensionMismatch indicates spin data that does not match the
	// declared lattice shape.
	ErrDimensionMismatch = errors.New("ising: spin data does not match lattice dimensions")
)
