package teststubs

import (
	"context"
	"errors"
	"testing"

	domaingames "github.com/preston-bernstein/venue-tv-service/internal/domain/games"
	"github.com/preston-bernstein/venue-tv-service/internal/reports"
)

func TestStubProviderTracksCalls(t *testing.T) {
	err := errors.New("boom")
	p := &StubProvider{Games: []domaingames.Game{{ID: "g1"}}, Err: err}
	if _, got := p.FetchGames(context.Background(), "2024-01-01", ""); !errors.Is(got, err) {
		t.Fatalf("expected error passthrough, got %v", got)
	}
	if p.Calls.Load() != 1 {
		t.Fatalf("expected call count 1, got %d", p.Calls.Load())
	}
}

func TestStubGameSink(t *testing.T) {
	s := &StubGameSink{}
	if s.Last() != nil {
		t.Fatalf("expected no snapshot yet")
	}
	s.ReplaceGames([]domaingames.Game{{ID: "g1"}})
	s.ReplaceGames([]domaingames.Game{{ID: "g2"}})
	if got := s.Last(); len(got) != 1 || got[0].ID != "g2" {
		t.Fatalf("expected latest snapshot, got %+v", got)
	}
}

func TestStubCycler(t *testing.T) {
	c := &StubCycler{Cycle: reports.Cycle{ID: "c1"}}
	got, err := c.RunCycle(context.Background())
	if err != nil || got.ID != "c1" {
		t.Fatalf("expected c1, got %+v err %v", got, err)
	}
	if c.Calls.Load() != 1 {
		t.Fatalf("expected one call, got %d", c.Calls.Load())
	}
}

func TestStubReportStore(t *testing.T) {
	s := &StubReportStore{Cycles: map[string]reports.Cycle{"2024-01-01": {ID: "c1"}}}
	if got, err := s.LoadCycle("2024-01-01"); err != nil || got.ID != "c1" {
		t.Fatalf("expected c1, got %+v err %v", got, err)
	}
	if _, err := s.LoadCycle("2024-01-02"); !errors.Is(err, reports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	s.LoadErr = errors.New("disk")
	if _, err := s.LoadCycle("2024-01-01"); !errors.Is(err, s.LoadErr) {
		t.Fatalf("expected load error, got %v", err)
	}
}
