package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/preston-bernstein/venue-tv-service/internal/config"
	"github.com/preston-bernstein/venue-tv-service/internal/logging"
	"github.com/preston-bernstein/venue-tv-service/internal/publisher"
	"github.com/preston-bernstein/venue-tv-service/internal/store"
)

// stateComponents groups the stores the services share. Games always live in
// memory; displays and preferences follow the configured backend.
type stateComponents struct {
	games     *store.MemoryStore
	state     store.StateStore
	publisher publisher.Publisher
}

func buildState(ctx context.Context, cfg config.Config, logger *slog.Logger) (stateComponents, error) {
	games := store.NewMemoryStore()
	c := stateComponents{games: games, state: games, publisher: publisher.Nop{}}

	if cfg.Store.Backend == config.StoreRedis {
		client, err := store.DialRedis(ctx, cfg.Store.RedisURL)
		if err != nil {
			return stateComponents{}, fmt.Errorf("connect redis: %w", err)
		}
		c.state = store.NewRedisStore(client, cfg.Store.KeyPrefix)
		c.publisher = publisher.NewStreamPublisher(client, cfg.Store.DecisionStream, 0)
	}

	if err := c.state.SeedDisplays(ctx, store.DefaultDisplays()); err != nil {
		_ = c.state.Close()
		return stateComponents{}, fmt.Errorf("seed displays: %w", err)
	}
	logging.Info(logger, "state store ready", "backend", backendName(cfg))
	return c, nil
}

func backendName(cfg config.Config) string {
	if cfg.Store.Backend == config.StoreRedis {
		return config.StoreRedis
	}
	return config.StoreMemory
}
