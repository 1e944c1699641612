package preferences

import (
	"context"
	"errors"
	"testing"
	"time"

	domaingames "github.com/preston-bernstein/venue-tv-service/internal/domain/games"
	domainprefs "github.com/preston-bernstein/venue-tv-service/internal/domain/preferences"
	"github.com/preston-bernstein/venue-tv-service/internal/store"
	"github.com/preston-bernstein/venue-tv-service/internal/testutil"
)

type failingStore struct{ err error }

func (f failingStore) GetPreferences(context.Context) (domainprefs.VenuePreferences, bool, error) {
	return domainprefs.VenuePreferences{}, false, f.err
}

func (f failingStore) SavePreferences(context.Context, domainprefs.VenuePreferences) error {
	return f.err
}

func TestGetReturnsDefaultsWhenUnset(t *testing.T) {
	svc := NewService(store.NewMemoryStore(), nil)
	got, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Version != 0 || !got.PreventRapidSwitching {
		t.Fatalf("expected defaults, got %+v", got)
	}
	if len(got.LeaguePriority) != 7 {
		t.Fatalf("expected 7 default leagues, got %d", len(got.LeaguePriority))
	}
}

func TestUpdateBumpsVersionAndNormalizes(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 2, 1, 18, 0, 0, 0, time.UTC)
	svc := NewService(store.NewMemoryStore(), testutil.NowAt(now))

	first, err := svc.Update(ctx, domainprefs.VenuePreferences{
		LeaguePriority: []domaingames.League{"nba", "NFL", "NBA"},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if first.Version != 1 {
		t.Fatalf("expected version 1, got %d", first.Version)
	}
	if len(first.LeaguePriority) != 2 || first.LeaguePriority[0] != domaingames.LeagueNBA {
		t.Fatalf("expected normalized de-duplicated leagues, got %v", first.LeaguePriority)
	}
	if !first.UpdatedAt.Equal(now) {
		t.Fatalf("expected updatedAt %v, got %v", now, first.UpdatedAt)
	}

	second, err := svc.Update(ctx, domainprefs.VenuePreferences{Version: 99})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if second.Version != 2 {
		t.Fatalf("expected version 2 regardless of client value, got %d", second.Version)
	}
}

func TestUpdateRejectsUnknownLeague(t *testing.T) {
	svc := NewService(store.NewMemoryStore(), nil)
	_, err := svc.Update(context.Background(), domainprefs.VenuePreferences{
		LeaguePriority: []domaingames.League{"XFL"},
	})
	if !errors.Is(err, domainprefs.ErrInvalidLeague) {
		t.Fatalf("expected ErrInvalidLeague, got %v", err)
	}
}

func TestStoreErrorsPropagate(t *testing.T) {
	boom := errors.New("boom")
	svc := NewService(failingStore{err: boom}, nil)
	if _, err := svc.Get(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected boom from Get, got %v", err)
	}
	if _, err := svc.Update(context.Background(), domainprefs.VenuePreferences{}); !errors.Is(err, boom) {
		t.Fatalf("expected boom from Update, got %v", err)
	}
}
