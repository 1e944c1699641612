// Package displays exposes display state and the operator actions on it.
package displays

import (
	"context"
	"errors"
	"fmt"
	"time"

	domaindisplays "github.com/preston-bernstein/venue-tv-service/internal/domain/displays"
	domaingames "github.com/preston-bernstein/venue-tv-service/internal/domain/games"
	"github.com/preston-bernstein/venue-tv-service/internal/engine/locks"
	"github.com/preston-bernstein/venue-tv-service/internal/store"
)

var (
	// ErrInvalidDuration is returned for negative lock durations.
	ErrInvalidDuration = errors.New("lock duration must not be negative")
	// ErrUnknownGame is returned when assigning a game that is not in the current snapshot.
	ErrUnknownGame = errors.New("unknown game")
)

// GameLookup finds games in the current snapshot.
type GameLookup interface {
	GetGame(id string) (domaingames.Game, bool)
}

// Service coordinates display reads, locks and manual assignment.
type Service struct {
	store store.DisplayStore
	games GameLookup
	locks locks.Manager
	now   func() time.Time
}

// NewService constructs a Service. A nil clock uses time.Now.
func NewService(ds store.DisplayStore, games GameLookup, lm locks.Manager, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: ds, games: games, locks: lm, now: now}
}

// List returns every display.
func (s *Service) List(ctx context.Context) ([]domaindisplays.Display, error) {
	return s.store.ListDisplays(ctx)
}

// Get returns one display.
func (s *Service) Get(ctx context.Context, id string) (domaindisplays.Display, error) {
	return s.store.GetDisplay(ctx, id)
}

// Lock applies a manual lock for minutes from now; zero clears it.
func (s *Service) Lock(ctx context.Context, id string, minutes int) (domaindisplays.Display, error) {
	if minutes < 0 {
		return domaindisplays.Display{}, ErrInvalidDuration
	}
	now := s.now()
	return s.store.UpdateDisplay(ctx, id, func(d *domaindisplays.Display) error {
		*d = s.locks.SetManualLock(*d, now, time.Duration(minutes)*time.Minute)
		return nil
	})
}

// Unlock clears the manual lock.
func (s *Service) Unlock(ctx context.Context, id string) (domaindisplays.Display, error) {
	return s.store.UpdateDisplay(ctx, id, func(d *domaindisplays.Display) error {
		*d = s.locks.ClearManualLock(*d)
		return nil
	})
}

// ActiveLocks lists unexpired manual locks.
func (s *Service) ActiveLocks(ctx context.Context) ([]domaindisplays.Lock, error) {
	list, err := s.store.ListDisplays(ctx)
	if err != nil {
		return nil, err
	}
	return s.locks.ActiveLocks(list, s.now()), nil
}

// Assign points the display at a game chosen by an operator. Manual
// assignment does not start an auto-lock.
func (s *Service) Assign(ctx context.Context, id, gameID string) (domaindisplays.Display, error) {
	game, ok := s.games.GetGame(gameID)
	if !ok {
		return domaindisplays.Display{}, fmt.Errorf("%w: %s", ErrUnknownGame, gameID)
	}
	now := s.now()
	return s.store.UpdateDisplay(ctx, id, func(d *domaindisplays.Display) error {
		eventID := game.ID
		d.CurrentEventID = &eventID
		if game.Channel != "" {
			d.CurrentChannel = game.Channel
		}
		assigned := now
		d.LastAssignedAt = &assigned
		return nil
	})
}
