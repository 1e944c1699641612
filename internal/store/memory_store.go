package store

import (
	"context"
	"sort"
	"sync"

	"github.com/preston-bernstein/venue-tv-service/internal/domain/displays"
	"github.com/preston-bernstein/venue-tv-service/internal/domain/games"
	"github.com/preston-bernstein/venue-tv-service/internal/domain/preferences"
)

// MemoryStore keeps a thread-safe snapshot of games, displays and
// preferences in memory.
type MemoryStore struct {
	mu       sync.RWMutex
	games    map[string]games.Game
	displays map[string]displays.Display
	prefs    *preferences.VenuePreferences
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		games:    make(map[string]games.Game),
		displays: make(map[string]displays.Display),
	}
}

// ListGames returns a copy of the current games ordered by start time then id.
func (s *MemoryStore) ListGames() []games.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]games.Game, 0, len(s.games))
	for _, g := range s.games {
		result = append(result, g)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].StartTime.Equal(result[j].StartTime) {
			return result[i].StartTime.Before(result[j].StartTime)
		}
		return result[i].ID < result[j].ID
	})
	return result
}

// GetGame retrieves a game by ID.
func (s *MemoryStore) GetGame(id string) (games.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[id]
	return g, ok
}

// SetGames replaces the existing games with a new snapshot.
func (s *MemoryStore) SetGames(list []games.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.games = make(map[string]games.Game, len(list))
	for _, g := range list {
		s.games[g.ID] = g
	}
}

// ListDisplays returns copies of all displays ordered by id.
func (s *MemoryStore) ListDisplays(_ context.Context) ([]displays.Display, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]displays.Display, 0, len(s.displays))
	for _, d := range s.displays {
		out = append(out, d.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// GetDisplay returns a copy of one display.
func (s *MemoryStore) GetDisplay(_ context.Context, id string) (displays.Display, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.displays[id]
	if !ok {
		return displays.Display{}, ErrNotFound
	}
	return d.Clone(), nil
}

// UpdateDisplay applies fn under the write lock.
func (s *MemoryStore) UpdateDisplay(_ context.Context, id string, fn UpdateFunc) (displays.Display, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.displays[id]
	if !ok {
		return displays.Display{}, ErrNotFound
	}
	next := current.Clone()
	if err := fn(&next); err != nil {
		return displays.Display{}, err
	}
	next.ID = id
	s.displays[id] = next.Clone()
	return next, nil
}

// SeedDisplays inserts displays that do not exist yet.
func (s *MemoryStore) SeedDisplays(_ context.Context, list []displays.Display) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range list {
		if _, exists := s.displays[d.ID]; !exists {
			s.displays[d.ID] = d.Clone()
		}
	}
	return nil
}

// GetPreferences returns the saved preferences, if any.
func (s *MemoryStore) GetPreferences(_ context.Context) (preferences.VenuePreferences, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.prefs == nil {
		return preferences.VenuePreferences{}, false, nil
	}
	return clonePrefs(*s.prefs), true, nil
}

// SavePreferences replaces the stored preferences.
func (s *MemoryStore) SavePreferences(_ context.Context, prefs preferences.VenuePreferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := clonePrefs(prefs)
	s.prefs = &p
	return nil
}

// Ping always succeeds.
func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}

func clonePrefs(p preferences.VenuePreferences) preferences.VenuePreferences {
	out := p
	out.FavoriteTeams = append([]preferences.Ranked{}, p.FavoriteTeams...)
	out.FavoriteMarkets = append([]preferences.Ranked{}, p.FavoriteMarkets...)
	out.LeaguePriority = append([]games.League{}, p.LeaguePriority...)
	return out
}
