// Package export renders lattice snapshots to standalone image files.
package export

import (
	"fmt"
	"os"
	"strings"

	"isinglab/internal/ising"
)

// LatticeSVG renders the lattice as an SVG of colored cells, scale
// pixels per site. Positive spins are drawn warm, negative spins cold;
// zero-valued sites (not produced by sweeps, but representable) are
// left as background.
func LatticeSVG(lat *ising.Lattice, scale float64) string {
	if scale <= 0 {
		scale = 8
	}
	width := float64(lat.Cols()) * scale
	height := float64(lat.Rows()) * scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#101018"/>
`, width, height, width, height))

	for row := 0; row < lat.Rows(); row++ {
		for col := 0; col < lat.Cols(); col++ {
			var fill string
			switch s := lat.At(row, col); {
			case s > 0:
				fill = "#e04040"
			case s < 0:
				fill = "#4070e0"
			default:
				continue
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, float64(col)*scale, float64(row)*scale, scale, scale, fill))
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// WriteLatticeSVG writes the SVG rendering to a file.
func WriteLatticeSVG(path string, lat *ising.Lattice, scale float64) error {
	return os.WriteFile(path, []byte(LatticeSVG(lat, scale)), 0644)
}
