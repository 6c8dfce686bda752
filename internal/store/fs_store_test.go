package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// setupTestStore creates a temporary directory and returns an FSStore for testing.
func setupTestStore(t *testing.T) (*FSStore, string) {
	t.Helper()

	tempDir := t.TempDir()
	fs, err := NewFSStore(tempDir)
	if err != nil {
		t.Fatalf("Failed to create test store: %v", err)
	}

	return fs, tempDir
}

// createTestRecord creates a record with test data.
func createTestRecord(runID string) *FitRecord {
	return &FitRecord{
		RunID:         runID,
		Model:         "gaussian",
		DataPath:      "testdata/peak.csv",
		InitialParams: []float64{0.5, 10, 3.2, 0.8},
		Hold:          []bool{false, false, true, false},
		BestParams:    []float64{0.48, 11.2, 3.2, 0.75},
		InitialCost:   152.3,
		BestCost:      18.7,
		Evaluations:   6000,
		Timestamp:     time.Now(),
		Settings: FitSettings{
			Iters:   200,
			PopSize: 30,
			Seed:    42,
		},
	}
}

func TestNewFSStore(t *testing.T) {
	tempDir := t.TempDir()

	fs, err := NewFSStore(tempDir)
	if err != nil {
		t.Fatalf("NewFSStore failed: %v", err)
	}
	if fs == nil {
		t.Fatal("Expected non-nil store")
	}

	if _, err := os.Stat(tempDir); os.IsNotExist(err) {
		t.Fatal("Base directory was not created")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	fs, tempDir := setupTestStore(t)

	record := createTestRecord("run-1")
	if err := fs.SaveRun("run-1", record); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}

	// The record lands at runs/<id>/record.json
	path := filepath.Join(tempDir, "runs", "run-1", "record.json")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("record file missing: %v", err)
	}

	loaded, err := fs.LoadRun("run-1")
	if err != nil {
		t.Fatalf("LoadRun failed: %v", err)
	}

	if loaded.Model != record.Model || loaded.BestCost != record.BestCost {
		t.Errorf("loaded record differs: %+v", loaded)
	}
	if len(loaded.BestParams) != len(record.BestParams) {
		t.Fatalf("best params length %d, want %d", len(loaded.BestParams), len(record.BestParams))
	}
	for i, v := range loaded.BestParams {
		if v != record.BestParams[i] {
			t.Errorf("bestParams[%d] = %v, want %v", i, v, record.BestParams[i])
		}
	}
	if !loaded.Hold[2] {
		t.Error("hold vector not round-tripped")
	}
	if loaded.Settings.Seed != 42 {
		t.Errorf("settings seed = %d, want 42", loaded.Settings.Seed)
	}
}

func TestSaveRunValidation(t *testing.T) {
	fs, _ := setupTestStore(t)

	if err := fs.SaveRun("", createTestRecord("x")); err == nil {
		t.Error("empty runID should fail")
	}
	if err := fs.SaveRun("x", nil); err == nil {
		t.Error("nil record should fail")
	}
}

func TestLoadRunNotFound(t *testing.T) {
	fs, _ := setupTestStore(t)

	_, err := fs.LoadRun("missing")
	if err == nil {
		t.Fatal("expected error for missing run")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListRuns(t *testing.T) {
	fs, _ := setupTestStore(t)

	infos, err := fs.ListRuns()
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(infos) != 0 {
		t.Fatalf("expected no runs, got %d", len(infos))
	}

	for _, id := range []string{"a", "b", "c"} {
		if err := fs.SaveRun(id, createTestRecord(id)); err != nil {
			t.Fatalf("SaveRun(%s) failed: %v", id, err)
		}
	}

	infos, err = fs.ListRuns()
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(infos) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(infos))
	}
	for _, info := range infos {
		if info.Model != "gaussian" {
			t.Errorf("info model = %q", info.Model)
		}
	}
}

func TestDeleteRun(t *testing.T) {
	fs, tempDir := setupTestStore(t)

	if err := fs.SaveRun("doomed", createTestRecord("doomed")); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}
	if err := fs.DeleteRun("doomed"); err != nil {
		t.Fatalf("DeleteRun failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(tempDir, "runs", "doomed")); !os.IsNotExist(err) {
		t.Error("run directory still present after delete")
	}
	if err := fs.DeleteRun("doomed"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: expected ErrNotFound, got %v", err)
	}
}

func TestSaveOverwrites(t *testing.T) {
	fs, _ := setupTestStore(t)

	first := createTestRecord("run-1")
	if err := fs.SaveRun("run-1", first); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}

	second := createTestRecord("run-1")
	second.BestCost = 1.5
	if err := fs.SaveRun("run-1", second); err != nil {
		t.Fatalf("SaveRun (overwrite) failed: %v", err)
	}

	loaded, err := fs.LoadRun("run-1")
	if err != nil {
		t.Fatalf("LoadRun failed: %v", err)
	}
	if loaded.BestCost != 1.5 {
		t.Errorf("BestCost = %v, want 1.5", loaded.BestCost)
	}
}
