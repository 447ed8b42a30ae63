// Package plot renders simulation results as image charts.
package plot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// MagnetizationCurve writes a magnetization-vs-temperature chart to path.
// The format follows the file extension (png, svg, pdf).
func MagnetizationCurve(path string, temps, mags []float64, title string) error {
	if len(temps) != len(mags) {
		return fmt.Errorf("plot: %d temperatures but %d magnetizations", len(temps), len(mags))
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "temperature"
	p.Y.Label.Text = "average magnetization"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(temps))
	for i := range temps {
		pts[i].X = temps[i]
		pts[i].Y = mags[i]
	}

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return err
	}
	p.Add(line, points)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

// SweepSeries writes a total-spin-vs-sweep chart to path.
func SweepSeries(path string, sweeps, totals []float64, title string) error {
	if len(sweeps) != len(totals) {
		return fmt.Errorf("plot: %d sweeps but %d totals", len(sweeps), len(totals))
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "sweep"
	p.Y.Label.Text = "total spin"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(sweeps))
	for i := range sweeps {
		pts[i].X = sweeps[i]
		pts[i].Y = totals[i]
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
