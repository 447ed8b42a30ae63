package plot

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMagnetizationCurve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curve.png")

	temps := []float64{0.5, 1.0, 2.0, 3.0}
	mags := []float64{0.98, 0.95, 0.4, 0.02}
	if err := MagnetizationCurve(path, temps, mags, "test"); err != nil {
		t.Fatalf("plot failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("chart file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("chart file is empty")
	}
}

func TestMagnetizationCurveLengthMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curve.png")
	if err := MagnetizationCurve(path, []float64{1, 2}, []float64{1}, "test"); err == nil {
		t.Error("expected error for mismatched lengths")
	}
}

func TestSweepSeries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.png")

	if err := SweepSeries(path, []float64{0, 1, 2}, []float64{16, 12, 8}, "test"); err != nil {
		t.Fatalf("plot failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("chart file missing: %v", err)
	}
}
