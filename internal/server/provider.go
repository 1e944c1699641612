package server

import (
	"log/slog"
	"strings"

	"github.com/preston-bernstein/venue-tv-service/internal/config"
	"github.com/preston-bernstein/venue-tv-service/internal/providers"
	"github.com/preston-bernstein/venue-tv-service/internal/providers/feed"
	"github.com/preston-bernstein/venue-tv-service/internal/providers/fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.GameProvider {
	switch strings.ToLower(cfg.Provider) {
	case "fixture", "":
		return fixture.New()
	case "feed":
		return feed.NewClient(feed.Config{
			BaseURL: cfg.Feed.BaseURL,
			APIKey:  cfg.Feed.APIKey,
			Timeout: cfg.Feed.Timeout,
		})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
