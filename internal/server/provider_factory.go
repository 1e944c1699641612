package server

import (
	"log/slog"

	"github.com/preston-bernstein/venue-tv-service/internal/config"
	"github.com/preston-bernstein/venue-tv-service/internal/metrics"
	"github.com/preston-bernstein/venue-tv-service/internal/providers"
)

// providerFactory assembles the provider with shared wrappers
// (rate limit, circuit breaker, retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.GameProvider {
	base := selectProvider(cfg, f.logger)
	name := normalizeProviderName(cfg.Provider, base)

	limited := providers.NewRateLimitedProvider(base, cfg.Feed.RequestsPerMinute, f.logger)
	guarded := providers.NewBreakerProvider(limited, providers.BreakerConfig{
		Name:                name,
		ConsecutiveFailures: cfg.Feed.BreakerFailures,
		Cooldown:            cfg.Feed.BreakerCooldown,
	}, f.logger, f.metrics)
	return providers.NewRetryingProvider(guarded, f.logger, f.metrics, name, 0, 0)
}
