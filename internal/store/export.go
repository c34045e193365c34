package store

import (
	"encoding/json"
	"io"
	"os"
)

type ExportData struct {
	ID      string             `json:"id"`
	Kind    string             `json:"kind"`
	Seed    int64              `json:"seed"`
	Params  map[string]float64 `json:"params"`
	Metrics map[string]float64 `json:"metrics"`
	Steps   int                `json:"steps"`
	Times   []float64          `json:"times"`
	Values  [][]float64        `json:"values"`
}

// ExportJSON writes the full run, metadata and values, as indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, times []float64, values [][]float64) error {
	data := ExportData{
		ID:      meta.ID,
		Kind:    meta.Kind,
		Seed:    meta.Seed,
		Params:  meta.Params,
		Metrics: meta.Metrics,
		Steps:   len(times),
		Times:   times,
		Values:  values,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportJSONStdout is ExportJSON to standard output.
func ExportJSONStdout(meta *RunMetadata, times []float64, values [][]float64) error {
	return ExportJSON(os.Stdout, meta, times, values)
}
