package reports

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/preston-bernstein/venue-tv-service/internal/timeutil"
)

const defaultRetentionDays = 14

// Writer persists cycle reports and the manifest.
type Writer struct {
	mu            sync.Mutex
	basePath      string
	retentionDays int
}

// NewWriter constructs a writer rooted at basePath.
func NewWriter(basePath string, retentionDays int) *Writer {
	if retentionDays <= 0 {
		retentionDays = defaultRetentionDays
	}
	return &Writer{
		basePath:      basePath,
		retentionDays: retentionDays,
	}
}

// BasePath exposes the writer root path.
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteCycle stores the cycle as the report for its UTC date, replacing any
// earlier cycle of the same day.
func (w *Writer) WriteCycle(c Cycle) error {
	if w == nil {
		return errors.New("report writer not configured")
	}
	if c.At.IsZero() {
		return errors.New("cycle time required")
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	date := timeutil.FormatDate(c.At.UTC())
	target := CyclePath(w.basePath, date)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		return err
	}

	return w.updateManifest(c.ID, date)
}

// Prune removes reports older than the retention window relative to now and
// returns the removed dates.
func (w *Writer) Prune(now time.Time) ([]string, error) {
	if w == nil {
		return nil, errors.New("report writer not configured")
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	dates, err := w.listDates()
	if err != nil {
		return nil, err
	}
	now = now.UTC()
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -w.retentionDays)

	var removed []string
	for _, d := range dates {
		parsed, err := timeutil.ParseDate(d)
		if err != nil || !parsed.Before(cutoff) {
			continue
		}
		if err := os.Remove(CyclePath(w.basePath, d)); err != nil && !os.IsNotExist(err) {
			return removed, fmt.Errorf("remove report %s: %w", d, err)
		}
		removed = append(removed, d)
	}
	if len(removed) == 0 {
		return nil, nil
	}
	return removed, w.updateManifest("", "")
}

func (w *Writer) updateManifest(cycleID, date string) error {
	manifestPath := filepath.Join(w.basePath, "manifest.json")
	m, _ := readManifest(manifestPath, w.retentionDays)

	dates, err := w.listDates()
	if err != nil {
		return err
	}
	if date != "" && !containsDate(dates, date) {
		dates = append(dates, date)
		sort.Strings(dates)
	}
	m.Cycles.Dates = dates
	m.Retention.Days = w.retentionDays
	if cycleID != "" {
		m.Cycles.LastCycleID = cycleID
		m.Cycles.LastWritten = time.Now().UTC()
	}
	return writeManifest(w.basePath, m)
}

func containsDate(dates []string, date string) bool {
	for _, d := range dates {
		if d == date {
			return true
		}
	}
	return false
}

func (w *Writer) listDates() ([]string, error) {
	dir := filepath.Join(w.basePath, cyclesDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	dates := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if filepath.Ext(name) != ".json" {
			continue
		}
		dates = append(dates, name[:len(name)-len(".json")])
	}
	sort.Strings(dates)
	return dates, nil
}
