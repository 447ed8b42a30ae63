// Package render draws lattice snapshots for terminal display. The core
// exposes the grid contents; everything visual lives here.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"isinglab/internal/ising"
)

var (
	spinUp   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")) // red
	spinDown = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))  // blue
	zeroSpin = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

// Grid renders the lattice as colored cell blocks, one text row per
// lattice row.
func Grid(lat *ising.Lattice) string {
	var b strings.Builder
	for row := 0; row < lat.Rows(); row++ {
		for col := 0; col < lat.Cols(); col++ {
			switch s := lat.At(row, col); {
			case s > 0:
				b.WriteString(spinUp.Render("██"))
			case s < 0:
				b.WriteString(spinDown.Render("██"))
			default:
				b.WriteString(zeroSpin.Render("··"))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Summary formats the spin census the way the lattice description is
// reported: site count with dimensions, the per-sign counts and the
// total spin.
func Summary(lat *ising.Lattice) string {
	pos, neg, total := lat.Summary()
	var b strings.Builder
	fmt.Fprintf(&b, "Num. of spins: %d (%d, %d)\n", lat.Size(), lat.Rows(), lat.Cols())
	fmt.Fprintf(&b, "Num. of positive spins: %d\n", pos)
	fmt.Fprintf(&b, "Num. of negative spins: %d\n", neg)
	fmt.Fprintf(&b, "Total spin: %.0f\n", total)
	return b.String()
}
