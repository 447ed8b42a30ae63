package storage

import (
	"encoding/json"
	"io"
	"os"
)

// ExportData is the JSON export shape for a stored run: the metadata
// together with the full series.
type ExportData struct {
	RunMetadata
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

// ExportJSON writes a stored run as indented JSON.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	data, err := s.LoadData(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{RunMetadata: *meta, X: data.X, Y: data.Y})
}

// ExportJSONFile writes a stored run as indented JSON to a file.
func (s *Store) ExportJSONFile(path, runID string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return s.ExportJSON(file, runID)
}
