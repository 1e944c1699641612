package reports

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFSStoreLoadCycle(t *testing.T) {
	dir := t.TempDir()
	at := time.Date(2024, 1, 2, 19, 0, 0, 0, time.UTC)
	if err := NewWriter(dir, 30).WriteCycle(sampleCycle("c9", at)); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := NewFSStore(dir).LoadCycle("2024-01-02")
	if err != nil {
		t.Fatalf("failed to load report: %v", err)
	}
	if got.ID != "c9" || len(got.Top) != 1 || got.Top[0].EventID != "nba-1" {
		t.Fatalf("unexpected report: %+v", got)
	}
}

func TestFSStoreErrors(t *testing.T) {
	store := NewFSStore(t.TempDir())
	if _, err := store.LoadCycle("2024-01-01"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := store.LoadCycle("01/02/2024"); err == nil {
		t.Fatalf("expected error for bad date")
	}
	var nilStore *FSStore
	if _, err := nilStore.LoadCycle("2024-01-01"); err == nil {
		t.Fatalf("expected error for nil store")
	}
}

func TestFSStoreDecodeError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cycles", "2024-01-03.json")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte("{bad json"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if _, err := NewFSStore(dir).LoadCycle("2024-01-03"); err == nil {
		t.Fatalf("expected decode error")
	}
}
