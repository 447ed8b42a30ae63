package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Run kinds.
const (
	KindSingle = "single"
	KindScan   = "scan"
)

// Store persists simulation runs under a base directory, one
// subdirectory per run holding metadata.json and a data csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata records the parameters and headline results of a run.
type RunMetadata struct {
	ID           string             `json:"id"`
	Kind         string             `json:"kind"`
	Timestamp    time.Time          `json:"timestamp"`
	Rows         int                `json:"rows"`
	Cols         int                `json:"cols"`
	Coupling     float64            `json:"coupling"`
	Field        float64            `json:"field"`
	Boltzmann    float64            `json:"boltzmann"`
	Boundary     string             `json:"boundary"`
	Sweeps       int                `json:"sweeps"`
	Seed         int64              `json:"seed"`
	Temperatures []float64          `json:"temperatures"`
	Averages     []float64          `json:"averages"`
	Metrics      map[string]float64 `json:"metrics,omitempty"`
}

// RunData holds the per-sample series of a run: one row per sweep for
// single-temperature runs, one row per temperature for scans.
type RunData struct {
	X []float64
	Y []float64
}

// Save writes a run directory and returns its id. Single runs store the
// per-sweep total spin series; scans store magnetization per temperature.
func (s *Store) Save(meta RunMetadata, data RunData) (string, error) {
	if meta.ID == "" {
		meta.ID = fmt.Sprintf("%s_%d", meta.Kind, time.Now().Unix())
	}
	runDir := filepath.Join(s.baseDir, meta.ID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now()
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "data.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"sweep", "total_spin"}
	if meta.Kind == KindScan {
		header = []string{"temperature", "magnetization"}
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i := range data.X {
		row := []string{
			strconv.FormatFloat(data.X[i], 'f', 6, 64),
			strconv.FormatFloat(data.Y[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return meta.ID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadData reads a run's series back from its csv.
func (s *Store) LoadData(runID string) (*RunData, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "data.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	data := &RunData{}
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 2 {
			continue
		}
		x, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		y, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		data.X = append(data.X, x)
		data.Y = append(data.Y, y)
	}

	return data, nil
}
