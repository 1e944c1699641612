package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	domaingames "github.com/preston-bernstein/venue-tv-service/internal/domain/games"
	"github.com/preston-bernstein/venue-tv-service/internal/reports"
)

// StubProvider is a test double for providers.GameProvider.
type StubProvider struct {
	Games  []domaingames.Game
	Err    error
	Calls  atomic.Int32
	Notify chan struct{}
}

// FetchGames returns configured games and error while tracking calls.
func (s *StubProvider) FetchGames(ctx context.Context, date string, tz string) ([]domaingames.Game, error) {
	_ = ctx
	_ = date
	_ = tz
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	return s.Games, s.Err
}

// StubGameSink records replaced game snapshots.
type StubGameSink struct {
	mu       sync.Mutex
	Replaced [][]domaingames.Game
}

// ReplaceGames records the snapshot.
func (s *StubGameSink) ReplaceGames(list []domaingames.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Replaced = append(s.Replaced, list)
}

// Last returns the most recent snapshot.
func (s *StubGameSink) Last() []domaingames.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Replaced) == 0 {
		return nil
	}
	return s.Replaced[len(s.Replaced)-1]
}

// StubCycler is a test double for the auto-assign cycle runner.
type StubCycler struct {
	Cycle reports.Cycle
	Err   error
	Calls atomic.Int32
}

// RunCycle returns the configured cycle and error.
func (c *StubCycler) RunCycle(_ context.Context) (reports.Cycle, error) {
	c.Calls.Add(1)
	return c.Cycle, c.Err
}

// StubReportStore is a test double for reports.Store.
type StubReportStore struct {
	Cycles  map[string]reports.Cycle // keyed by date
	LoadErr error
}

// LoadCycle returns the report for date, or reports.ErrNotFound.
func (s *StubReportStore) LoadCycle(date string) (reports.Cycle, error) {
	if s.LoadErr != nil {
		return reports.Cycle{}, s.LoadErr
	}
	c, ok := s.Cycles[date]
	if !ok {
		return reports.Cycle{}, reports.ErrNotFound
	}
	return c, nil
}
