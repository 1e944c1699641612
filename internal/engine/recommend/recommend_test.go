package recommend

import (
	"testing"
	"time"

	"github.com/preston-bernstein/venue-tv-service/internal/domain/displays"
	"github.com/preston-bernstein/venue-tv-service/internal/domain/games"
	"github.com/preston-bernstein/venue-tv-service/internal/engine/locks"
	"github.com/preston-bernstein/venue-tv-service/internal/engine/relevance"
)

var now = time.Date(2026, 4, 5, 22, 0, 0, 0, time.UTC)

func scored(id string, score int, reasons ...string) relevance.Scored {
	return relevance.Scored{
		Game:      games.Game{ID: id, Status: games.StatusLive},
		Relevance: relevance.Result{Score: score, Reasons: reasons},
	}
}

func strPtr(s string) *string { return &s }

func TestProposeOrdersByPriorityAndAvoidsDuplicates(t *testing.T) {
	r := New(locks.NewManager(0))
	list := []displays.Display{
		{ID: "patio-1", Name: "Patio 1", Priority: displays.PriorityOverflow},
		{ID: "booth-1", Name: "Booth 1", Priority: displays.PrioritySecondary},
		{ID: "bar-right", Name: "Bar Right 65", Priority: displays.PriorityMain},
		{ID: "bar-left", Name: "Bar Left 65", Priority: displays.PriorityMain, CurrentEventID: strPtr("g2")},
	}
	ranked := []relevance.Scored{scored("g1", 90, "Favorite team: Boston Celtics"), scored("g2", 80), scored("g3", 70), scored("g4", 60)}

	got := r.Propose(now, list, ranked)
	want := []struct{ display, event string }{
		{"bar-left", "g1"},
		{"bar-right", "g3"},
		{"booth-1", "g4"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d proposals, got %+v", len(want), got)
	}
	for i, w := range want {
		if got[i].DisplayID != w.display || got[i].EventID != w.event {
			t.Fatalf("proposal %d: expected %s->%s, got %s->%s", i, w.display, w.event, got[i].DisplayID, got[i].EventID)
		}
	}
	if got[0].Reason != "Favorite team: Boston Celtics for Bar Left 65 (relevance 90)" {
		t.Fatalf("unexpected reason %q", got[0].Reason)
	}
	if got[1].Score != 70 {
		t.Fatalf("expected score 70, got %d", got[1].Score)
	}
}

func TestProposeSkipsManualLocks(t *testing.T) {
	r := New(locks.NewManager(0))
	until := now.Add(time.Hour)
	list := []displays.Display{
		{ID: "a", Priority: displays.PriorityMain, ManualLockUntil: &until},
		{ID: "b", Priority: displays.PriorityMain},
	}
	got := r.Propose(now, list, []relevance.Scored{scored("g1", 50)})
	if len(got) != 1 || got[0].DisplayID != "b" || got[0].EventID != "g1" {
		t.Fatalf("expected only b to get g1, got %+v", got)
	}
	if got[0].Reason != "Best available event for b (relevance 50)" {
		t.Fatalf("unexpected reason %q", got[0].Reason)
	}
}

func TestProposeRunsOutOfEvents(t *testing.T) {
	r := New(locks.NewManager(0))
	list := []displays.Display{{ID: "a"}, {ID: "b"}}
	got := r.Propose(now, list, []relevance.Scored{scored("g1", 50)})
	if len(got) != 1 {
		t.Fatalf("expected one proposal, got %+v", got)
	}
	if empty := r.Propose(now, list, nil); len(empty) != 0 {
		t.Fatalf("expected no proposals without events, got %+v", empty)
	}
}
