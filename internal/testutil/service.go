package testutil

import (
	"context"

	"github.com/preston-bernstein/venue-tv-service/internal/app/games"
	"github.com/preston-bernstein/venue-tv-service/internal/domain/displays"
	domaingames "github.com/preston-bernstein/venue-tv-service/internal/domain/games"
	"github.com/preston-bernstein/venue-tv-service/internal/store"
)

// NewServiceWithGames builds a games service backed by an in-memory store preloaded with games.
func NewServiceWithGames(g []domaingames.Game) *games.Service {
	ms := store.NewMemoryStore()
	if len(g) > 0 {
		ms.SetGames(g)
	}
	return games.NewService(ms)
}

// NewSeededStore returns a memory store holding the given games and displays.
func NewSeededStore(g []domaingames.Game, list []displays.Display) *store.MemoryStore {
	ms := store.NewMemoryStore()
	ms.SetGames(g)
	_ = ms.SeedDisplays(context.Background(), list)
	return ms
}
