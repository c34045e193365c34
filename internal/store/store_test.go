package store

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	times := []float64{0.0, 0.01, 0.02}
	rows := [][]float64{
		{0.1, 0.8, 0.1},
		{0.15, 0.7, 0.15},
		{0.2, 0.6, 0.2},
	}
	params := map[string]float64{"dx": 0.5, "dt": 0.01}
	metrics := map[string]float64{"mass": 1.0}

	runID, err := st.Save("forward", 42, params, metrics, times, rows)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Fatal("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Kind != "forward" || meta.Seed != 42 {
		t.Errorf("metadata mismatch: %+v", meta)
	}
	if meta.Params["dx"] != 0.5 {
		t.Errorf("params not round-tripped: %v", meta.Params)
	}

	gotTimes, gotRows, err := st.LoadRows(runID)
	if err != nil {
		t.Fatalf("load rows failed: %v", err)
	}
	if len(gotTimes) != 3 || len(gotRows) != 3 {
		t.Fatalf("expected 3 rows, got %d/%d", len(gotTimes), len(gotRows))
	}
	for i := range rows {
		for j := range rows[i] {
			if gotRows[i][j] != rows[i][j] {
				t.Errorf("row %d col %d: %g != %g", i, j, gotRows[i][j], rows[i][j])
			}
		}
	}
}

func TestStoreListEmpty(t *testing.T) {
	st := New(t.TempDir())
	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	if _, err := st.Save("walk", 1, nil, nil, []float64{0}, [][]float64{{0}}); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Kind != "walk" {
		t.Errorf("kind = %s; want walk", runs[0].Kind)
	}
}

func TestExportJSON(t *testing.T) {
	meta := &RunMetadata{ID: "forward_1", Kind: "forward", Seed: 3}
	times := []float64{0, 0.1}
	values := [][]float64{{1, 2}, {3, 4}}

	var buf bytes.Buffer
	if err := ExportJSON(&buf, meta, times, values); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if data.ID != "forward_1" || data.Steps != 2 {
		t.Errorf("unexpected export: %+v", data)
	}
	if data.Values[1][1] != 4 {
		t.Errorf("values not exported: %v", data.Values)
	}
}
