// Package store persists games, displays and venue preferences.
package store

import (
	"context"
	"errors"

	"github.com/preston-bernstein/venue-tv-service/internal/domain/displays"
	"github.com/preston-bernstein/venue-tv-service/internal/domain/preferences"
)

// ErrNotFound is returned when a display does not exist.
var ErrNotFound = errors.New("not found")

// UpdateFunc mutates a display in place; returning an error aborts the write.
type UpdateFunc func(d *displays.Display) error

// DisplayStore holds display assignment and lock state.
type DisplayStore interface {
	ListDisplays(ctx context.Context) ([]displays.Display, error)
	GetDisplay(ctx context.Context, id string) (displays.Display, error)
	// UpdateDisplay applies fn to the latest stored display atomically.
	UpdateDisplay(ctx context.Context, id string, fn UpdateFunc) (displays.Display, error)
	SeedDisplays(ctx context.Context, list []displays.Display) error
}

// PreferenceStore holds the venue preferences. ok is false before any save.
type PreferenceStore interface {
	GetPreferences(ctx context.Context) (prefs preferences.VenuePreferences, ok bool, err error)
	SavePreferences(ctx context.Context, prefs preferences.VenuePreferences) error
}

// StateStore is the persistence surface the application needs besides games.
type StateStore interface {
	DisplayStore
	PreferenceStore
	Ping(ctx context.Context) error
	Close() error
}
