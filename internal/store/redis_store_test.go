package store

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/preston-bernstein/venue-tv-service/internal/domain/displays"
	"github.com/preston-bernstein/venue-tv-service/internal/domain/preferences"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s := NewRedisStore(client, "test")
	t.Cleanup(func() { _ = s.Close() })
	return s, mr
}

func TestRedisStoreSeedAndList(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestRedisStore(t)

	if err := s.SeedDisplays(ctx, DefaultDisplays()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	list, err := s.ListDisplays(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 5 {
		t.Fatalf("expected 5 displays, got %d", len(list))
	}
	if list[0].ID != "bar-left-65" {
		t.Fatalf("expected id ordering, got %s first", list[0].ID)
	}
	if !mr.Exists("test:display:booth-1") {
		t.Fatalf("expected prefixed display key")
	}
}

func TestRedisStoreListEmpty(t *testing.T) {
	s, _ := newTestRedisStore(t)
	list, err := s.ListDisplays(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Fatalf("expected empty non-nil list, got %v", list)
	}
}

func TestRedisStoreUpdateDisplay(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestRedisStore(t)
	_ = s.SeedDisplays(ctx, DefaultDisplays())

	event := "nba-1"
	got, err := s.UpdateDisplay(ctx, "bar-left-65", func(d *displays.Display) error {
		d.CurrentEventID = &event
		d.CurrentChannel = "TNT"
		return nil
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !got.Shows("nba-1") {
		t.Fatalf("expected returned display to show nba-1")
	}

	stored, err := s.GetDisplay(ctx, "bar-left-65")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !stored.Shows("nba-1") || stored.CurrentChannel != "TNT" {
		t.Fatalf("unexpected stored display %+v", stored)
	}
}

func TestRedisStoreUpdateMissingAndAbort(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestRedisStore(t)
	_ = s.SeedDisplays(ctx, DefaultDisplays())

	if _, err := s.UpdateDisplay(ctx, "nope", func(*displays.Display) error { return nil }); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	boom := errors.New("boom")
	if _, err := s.UpdateDisplay(ctx, "patio-2", func(d *displays.Display) error {
		d.CurrentChannel = "changed"
		return boom
	}); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	d, _ := s.GetDisplay(ctx, "patio-2")
	if d.CurrentChannel != "NBATV" {
		t.Fatalf("expected unchanged channel, got %s", d.CurrentChannel)
	}
}

func TestRedisStorePreferences(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestRedisStore(t)

	if _, ok, err := s.GetPreferences(ctx); ok || err != nil {
		t.Fatalf("expected no preferences, got ok=%v err=%v", ok, err)
	}

	p := preferences.Default()
	p.Version = 3
	p.FavoriteMarkets = []preferences.Ranked{{ID: "us-boston", Priority: 0}}
	if err := s.SavePreferences(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, ok, err := s.GetPreferences(ctx)
	if err != nil || !ok {
		t.Fatalf("expected preferences, got ok=%v err=%v", ok, err)
	}
	if got.Version != 3 || got.FavoriteMarkets[0].ID != "us-boston" {
		t.Fatalf("unexpected preferences %+v", got)
	}
	if len(got.LeaguePriority) != len(p.LeaguePriority) {
		t.Fatalf("expected %d leagues, got %d", len(p.LeaguePriority), len(got.LeaguePriority))
	}
}

func TestRedisStorePingFailsWhenServerGone(t *testing.T) {
	s, mr := newTestRedisStore(t)
	if err := s.Ping(context.Background()); err != nil {
		t.Fatalf("expected ping ok, got %v", err)
	}
	mr.Close()
	if err := s.Ping(context.Background()); err == nil {
		t.Fatalf("expected ping error after server close")
	}
}

func TestDialRedisBadURL(t *testing.T) {
	if _, err := DialRedis(context.Background(), "not-a-url://"); err == nil {
		t.Fatalf("expected parse error")
	}
}
