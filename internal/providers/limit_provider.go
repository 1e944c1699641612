package providers

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/preston-bernstein/venue-tv-service/internal/domain/games"
)

const defaultRequestsPerMinute = 30

// rateLimitedProvider wraps a GameProvider with a token bucket so bursts of
// cycles and manual refreshes cannot exceed the upstream quota.
type rateLimitedProvider struct {
	next    GameProvider
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewRateLimitedProvider returns a GameProvider allowing perMinute calls per
// minute with a burst of one. Calls block until a token is available.
func NewRateLimitedProvider(next GameProvider, perMinute int, logger *slog.Logger) GameProvider {
	if perMinute <= 0 {
		perMinute = defaultRequestsPerMinute
	}
	every := time.Minute / time.Duration(perMinute)
	return &rateLimitedProvider{
		next:    next,
		limiter: rate.NewLimiter(rate.Every(every), 1),
		logger:  logger,
	}
}

func (p *rateLimitedProvider) FetchGames(ctx context.Context, date string, tz string) ([]games.Game, error) {
	if p == nil || p.next == nil {
		if p != nil && p.logger != nil {
			p.logger.Warn("provider unavailable", slog.String("provider", "rate-limited"))
		}
		return nil, ErrProviderUnavailable
	}
	if err := p.limiter.Wait(ctx); err != nil {
		if p.logger != nil {
			p.logger.Warn("rate-limited fetch canceled", slog.String("provider", "rate-limited"), slog.Any("error", err))
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	if p.logger != nil {
		p.logger.Debug("rate-limited provider fetch", slog.String("provider", "rate-limited"), slog.String("date", date))
	}
	return p.next.FetchGames(ctx, date, tz)
}
