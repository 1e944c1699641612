package reports

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/preston-bernstein/venue-tv-service/internal/timeutil"
)

// ErrNotFound is returned when no report exists for a date.
var ErrNotFound = errors.New("report not found")

// Store defines how reports are loaded.
type Store interface {
	LoadCycle(date string) (Cycle, error)
}

// FSStore loads reports from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed report store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadCycle reads {basePath}/cycles/{date}.json.
func (s *FSStore) LoadCycle(date string) (Cycle, error) {
	if s == nil {
		return Cycle{}, errors.New("report store not configured")
	}
	if _, err := timeutil.ParseDate(date); err != nil {
		return Cycle{}, fmt.Errorf("invalid report date %q: %w", date, err)
	}
	f, err := os.Open(CyclePath(s.basePath, date))
	if err != nil {
		if os.IsNotExist(err) {
			return Cycle{}, ErrNotFound
		}
		return Cycle{}, err
	}
	defer f.Close()

	var c Cycle
	if err := json.NewDecoder(f).Decode(&c); err != nil {
		return Cycle{}, fmt.Errorf("decode report %s: %w", date, err)
	}
	return c, nil
}
