package experiment

import (
	"context"
	"testing"

	"isinglab/internal/config"
	"isinglab/internal/storage"
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Rows, cfg.Cols = 8, 8
	cfg.Sweeps = 20
	cfg.Seed = 9
	return cfg
}

func TestRun(t *testing.T) {
	cfg := testConfig()

	res, err := Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if res.Meta.Kind != storage.KindSingle {
		t.Errorf("kind = %s, want %s", res.Meta.Kind, storage.KindSingle)
	}
	if len(res.Data.X) != cfg.Sweeps || len(res.Data.Y) != cfg.Sweeps {
		t.Errorf("expected %d samples, got %d/%d", cfg.Sweeps, len(res.Data.X), len(res.Data.Y))
	}
	if len(res.Meta.Averages) != 1 {
		t.Fatalf("expected one average, got %d", len(res.Meta.Averages))
	}
	for _, name := range []string{"abs_magnetization", "acceptance_rate", "energy_per_site"} {
		if _, ok := res.Meta.Metrics[name]; !ok {
			t.Errorf("metric %s missing from result", name)
		}
	}
}

func TestRunInvalidBoundary(t *testing.T) {
	cfg := testConfig()
	cfg.Boundary = "MBC"

	if _, err := Run(context.Background(), cfg); err == nil {
		t.Error("expected error for invalid boundary")
	}
}

func TestScan(t *testing.T) {
	cfg := testConfig()
	cfg.Temperatures = []float64{1, 2, 3}

	res, err := Scan(context.Background(), cfg)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	if res.Meta.Kind != storage.KindScan {
		t.Errorf("kind = %s, want %s", res.Meta.Kind, storage.KindScan)
	}
	if len(res.Meta.Averages) != 3 {
		t.Errorf("expected 3 averages, got %d", len(res.Meta.Averages))
	}
	if len(res.Data.X) != 3 || res.Data.X[0] != 1 {
		t.Errorf("data not aligned with temperatures: %+v", res.Data)
	}
}
