package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/preston-bernstein/venue-tv-service/internal/teststubs"
)

func TestRateLimitedProviderAllowsFirstCallImmediately(t *testing.T) {
	inner := &teststubs.StubProvider{}
	rl := NewRateLimitedProvider(inner, 60, nil)

	start := time.Now()
	if _, err := rl.FetchGames(context.Background(), "2024-01-01", ""); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Fatalf("expected burst token to be available, waited %s", elapsed)
	}
	if inner.Calls.Load() != 1 {
		t.Fatalf("expected inner provider called once, got %d", inner.Calls.Load())
	}
}

func TestRateLimitedProviderBlocksSecondCall(t *testing.T) {
	inner := &teststubs.StubProvider{}
	rl := NewRateLimitedProvider(inner, 6000, nil)

	start := time.Now()
	for i := 0; i < 2; i++ {
		if _, err := rl.FetchGames(context.Background(), "", ""); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed < 5*time.Millisecond {
		t.Fatalf("expected second call to wait for a token, elapsed %s", elapsed)
	}
}

func TestRateLimitedProviderRespectsCanceledContext(t *testing.T) {
	inner := &teststubs.StubProvider{}
	rl := NewRateLimitedProvider(inner, 1, nil)
	if _, err := rl.FetchGames(context.Background(), "", ""); err != nil {
		t.Fatalf("expected first call to succeed, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := rl.FetchGames(ctx, "2024-01-01", ""); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled error, got %v", err)
	}
	if inner.Calls.Load() != 1 {
		t.Fatalf("expected inner provider not called on canceled context")
	}
}

func TestRateLimitedProviderHandlesNilInner(t *testing.T) {
	var inner GameProvider
	rl := NewRateLimitedProvider(inner, 60, nil)

	_, err := rl.FetchGames(context.Background(), "2024-01-01", "")
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestRateLimitedProviderDefaultsRate(t *testing.T) {
	rl := NewRateLimitedProvider(&teststubs.StubProvider{}, 0, nil).(*rateLimitedProvider)
	if got := rl.limiter.Limit(); got != 0.5 {
		t.Fatalf("expected default 30/min (0.5/s), got %v", got)
	}
}
