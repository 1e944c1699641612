package preferences

import (
	"context"
	"sync"
	"time"

	domainprefs "github.com/preston-bernstein/venue-tv-service/internal/domain/preferences"
)

// Store persists venue preferences.
type Store interface {
	GetPreferences(ctx context.Context) (domainprefs.VenuePreferences, bool, error)
	SavePreferences(ctx context.Context, prefs domainprefs.VenuePreferences) error
}

// Service reads and versions venue preferences.
type Service struct {
	mu    sync.Mutex
	store Store
	now   func() time.Time
}

// NewService constructs a Service. A nil clock uses time.Now.
func NewService(store Store, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: store, now: now}
}

// Get returns the saved preferences, or the defaults when none are saved.
func (s *Service) Get(ctx context.Context) (domainprefs.VenuePreferences, error) {
	prefs, ok, err := s.store.GetPreferences(ctx)
	if err != nil {
		return domainprefs.VenuePreferences{}, err
	}
	if !ok {
		return domainprefs.Default(), nil
	}
	return prefs, nil
}

// Update validates and saves prefs, bumping the version past the stored one.
func (s *Service) Update(ctx context.Context, prefs domainprefs.VenuePreferences) (domainprefs.VenuePreferences, error) {
	if err := prefs.Validate(); err != nil {
		return domainprefs.VenuePreferences{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.Get(ctx)
	if err != nil {
		return domainprefs.VenuePreferences{}, err
	}
	prefs.Version = current.Version + 1
	prefs.UpdatedAt = s.now().UTC()
	if err := s.store.SavePreferences(ctx, prefs); err != nil {
		return domainprefs.VenuePreferences{}, err
	}
	return prefs, nil
}
