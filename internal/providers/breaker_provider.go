package providers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"github.com/preston-bernstein/venue-tv-service/internal/domain/games"
	"github.com/preston-bernstein/venue-tv-service/internal/metrics"
)

const (
	defaultBreakerFailures = 5
	defaultBreakerCooldown = 30 * time.Second
)

// ErrCircuitOpen is returned while the breaker rejects calls to a failing feed.
var ErrCircuitOpen = errors.New("provider circuit open")

// BreakerConfig tunes when the breaker trips and how long it stays open.
type BreakerConfig struct {
	Name                string
	ConsecutiveFailures int
	Cooldown            time.Duration
}

type breakerProvider struct {
	next    GameProvider
	breaker *gobreaker.CircuitBreaker
}

// NewBreakerProvider wraps next with a circuit breaker. Canceled contexts are
// not counted as upstream failures.
func NewBreakerProvider(next GameProvider, cfg BreakerConfig, logger *slog.Logger, recorder *metrics.Recorder) GameProvider {
	if cfg.Name == "" {
		cfg.Name = "provider"
	}
	if cfg.ConsecutiveFailures <= 0 {
		cfg.ConsecutiveFailures = defaultBreakerFailures
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = defaultBreakerCooldown
	}
	threshold := uint32(cfg.ConsecutiveFailures)

	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 1,
		Timeout:     cfg.Cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logWithProvider(context.Background(), logger, slog.LevelWarn, name, "circuit breaker state changed",
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			recorder.RecordBreakerState(name, from.String(), to.String())
		},
	}
	return &breakerProvider{next: next, breaker: gobreaker.NewCircuitBreaker(settings)}
}

func (p *breakerProvider) FetchGames(ctx context.Context, date string, tz string) ([]games.Game, error) {
	if p == nil || p.next == nil {
		return nil, ErrProviderUnavailable
	}
	out, err := p.breaker.Execute(func() (interface{}, error) {
		return p.next.FetchGames(ctx, date, tz)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, errors.Join(ErrCircuitOpen, err)
	}
	if err != nil {
		return nil, err
	}
	list, _ := out.([]games.Game)
	return list, nil
}

// State reports the breaker state, mainly for tests and readiness output.
func (p *breakerProvider) State() gobreaker.State {
	return p.breaker.State()
}
