package assignments

import (
	"context"
	"errors"
	"testing"
	"time"

	appprefs "github.com/preston-bernstein/venue-tv-service/internal/app/preferences"
	"github.com/preston-bernstein/venue-tv-service/internal/domain/displays"
	"github.com/preston-bernstein/venue-tv-service/internal/domain/games"
	"github.com/preston-bernstein/venue-tv-service/internal/engine/autoassign"
	"github.com/preston-bernstein/venue-tv-service/internal/engine/hotness"
	"github.com/preston-bernstein/venue-tv-service/internal/engine/locks"
	"github.com/preston-bernstein/venue-tv-service/internal/engine/relevance"
	"github.com/preston-bernstein/venue-tv-service/internal/metrics"
	"github.com/preston-bernstein/venue-tv-service/internal/publisher"
	"github.com/preston-bernstein/venue-tv-service/internal/reports"
	"github.com/preston-bernstein/venue-tv-service/internal/store"
)

var cycleStart = time.Date(2024, 3, 2, 20, 0, 0, 0, time.UTC)

type recordingPublisher struct {
	got []publisher.Decision
	err error
}

func (p *recordingPublisher) PublishDecision(_ context.Context, d publisher.Decision) error {
	p.got = append(p.got, d)
	return p.err
}

type recordingWriter struct {
	cycles []reports.Cycle
}

func (w *recordingWriter) WriteCycle(c reports.Cycle) error {
	w.cycles = append(w.cycles, c)
	return nil
}

// lockingStore simulates an operator locking the display between the
// decision and the write.
type lockingStore struct {
	*store.MemoryStore
}

func (s lockingStore) UpdateDisplay(ctx context.Context, id string, fn store.UpdateFunc) (displays.Display, error) {
	_, _ = s.MemoryStore.UpdateDisplay(ctx, id, func(d *displays.Display) error {
		until := cycleStart.Add(time.Hour)
		d.ManualLockUntil = &until
		return nil
	})
	return s.MemoryStore.UpdateDisplay(ctx, id, fn)
}

type fixture struct {
	svc     *Service
	store   *store.MemoryStore
	pub     *recordingPublisher
	writer  *recordingWriter
	metrics *metrics.Recorder
	clock   *time.Time
}

func liveGame(id string, league games.League, diff, remaining int) games.Game {
	return games.Game{
		ID:        id,
		League:    league,
		Channel:   id + "-tv",
		StartTime: cycleStart.Add(-time.Hour),
		Status:    games.StatusLive,
		Live:      games.LiveState{ScoreDiff: games.Int(diff), TimeRemaining: games.Int(remaining)},
	}
}

func newFixture(t *testing.T, ds store.DisplayStore, ms *store.MemoryStore) *fixture {
	t.Helper()
	ctx := context.Background()
	if err := ms.SeedDisplays(ctx, []displays.Display{
		{ID: "main", Name: "Main", Priority: displays.PriorityMain},
		{ID: "side", Name: "Side", Priority: displays.PrioritySecondary},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	ms.SetGames([]games.Game{
		liveGame("g-hot", games.LeagueNBA, 2, 600),
		liveGame("g-mid", games.LeagueNFL, 20, 3000),
	})

	clock := cycleStart
	lm := locks.NewManager(0)
	f := &fixture{
		store:   ms,
		pub:     &recordingPublisher{},
		writer:  &recordingWriter{},
		metrics: metrics.NewRecorder(),
		clock:   &clock,
	}
	f.svc = NewService(Deps{
		Games:       ms,
		Displays:    ds,
		Preferences: appprefs.NewService(ms, nil),
		Hotness:     hotness.NewScorer(hotness.DefaultConfig()),
		Relevance:   relevance.NewScorer(relevance.DefaultConfig()),
		Engine:      autoassign.NewEngine(autoassign.DefaultConfig(), lm),
		Locks:       lm,
		Publisher:   f.pub,
		Reports:     f.writer,
		Metrics:     f.metrics,
		Now:         func() time.Time { return *f.clock },
	})
	f.svc.newID = func() string { return "cycle-1" }
	return f
}

func newMemoryFixture(t *testing.T) *fixture {
	ms := store.NewMemoryStore()
	return newFixture(t, ms, ms)
}

func TestRunCycleSwitchesEmptyDisplays(t *testing.T) {
	f := newMemoryFixture(t)
	ctx := context.Background()

	cycle, err := f.svc.RunCycle(ctx)
	if err != nil {
		t.Fatalf("run cycle: %v", err)
	}
	if cycle.ID != "cycle-1" {
		t.Fatalf("expected cycle id cycle-1, got %s", cycle.ID)
	}
	if len(cycle.Decisions) != 2 || cycle.Switches() != 2 {
		t.Fatalf("expected 2 applied switches, got %+v", cycle.Decisions)
	}

	main, _ := f.store.GetDisplay(ctx, "main")
	if !main.Shows("g-hot") || main.CurrentChannel != "g-hot-tv" {
		t.Fatalf("expected main to show g-hot, got %+v", main)
	}
	if main.AutoLockUntil == nil || !main.AutoLockUntil.Equal(cycleStart.Add(locks.DefaultAutoLockDuration)) {
		t.Fatalf("expected auto-lock after switch, got %v", main.AutoLockUntil)
	}
	side, _ := f.store.GetDisplay(ctx, "side")
	if !side.Shows("g-mid") {
		t.Fatalf("expected side to show g-mid, got %+v", side)
	}

	if len(f.pub.got) != 2 || f.pub.got[0].DisplayID != "main" || !f.pub.got[0].Applied {
		t.Fatalf("unexpected published decisions %+v", f.pub.got)
	}
	if len(f.writer.cycles) != 1 || len(f.writer.cycles[0].Top) != 2 {
		t.Fatalf("expected one report with two ranked events, got %+v", f.writer.cycles)
	}
	if got := f.metrics.Decisions(autoassign.ActionSwitch, string(autoassign.RuleHotnessDelta)); got != 2 {
		t.Fatalf("expected 2 switch decisions recorded, got %d", got)
	}
	if got := f.metrics.SwitchesApplied(); got != 2 {
		t.Fatalf("expected 2 applied switches recorded, got %d", got)
	}
}

func TestRunCycleAutoLockThenDelta(t *testing.T) {
	f := newMemoryFixture(t)
	ctx := context.Background()
	if _, err := f.svc.RunCycle(ctx); err != nil {
		t.Fatalf("first cycle: %v", err)
	}

	f.store.SetGames(append(f.store.ListGames(), liveGame("g-new", games.LeagueNFL, 10, 3000)))

	cycle, err := f.svc.RunCycle(ctx)
	if err != nil {
		t.Fatalf("second cycle: %v", err)
	}
	if len(cycle.Decisions) != 1 {
		t.Fatalf("expected a single decision, got %+v", cycle.Decisions)
	}
	d := cycle.Decisions[0]
	if d.DisplayID != "main" || d.Action != autoassign.ActionKeep || d.Rule != string(autoassign.RuleAutoLock) {
		t.Fatalf("expected main KEEP auto_lock, got %+v", d)
	}
	if d.CurrentEventID == nil || *d.CurrentEventID != "g-hot" || d.ChallengerEventID != "g-new" {
		t.Fatalf("unexpected event ids %+v", d)
	}

	*f.clock = cycleStart.Add(9 * time.Minute)
	cycle, err = f.svc.RunCycle(ctx)
	if err != nil {
		t.Fatalf("third cycle: %v", err)
	}
	if got := cycle.Decisions[0].Rule; got != string(autoassign.RuleDeltaNotMet) {
		t.Fatalf("expected delta_not_met once the auto-lock expired, got %s", got)
	}
	main, _ := f.store.GetDisplay(ctx, "main")
	if !main.Shows("g-hot") {
		t.Fatalf("expected main to keep g-hot")
	}
}

func TestRunCycleRechecksFreshDisplay(t *testing.T) {
	ms := store.NewMemoryStore()
	f := newFixture(t, lockingStore{MemoryStore: ms}, ms)

	cycle, err := f.svc.RunCycle(context.Background())
	if err != nil {
		t.Fatalf("run cycle: %v", err)
	}
	for _, d := range cycle.Decisions {
		if d.Applied || d.Rule != string(autoassign.RuleManualLock) {
			t.Fatalf("expected stale switch to become manual_lock KEEP, got %+v", d)
		}
	}
	main, _ := ms.GetDisplay(context.Background(), "main")
	if _, ok := main.CurrentEvent(); ok {
		t.Fatalf("expected main to stay empty")
	}
}

func TestRunCyclePublishErrorDoesNotFail(t *testing.T) {
	f := newMemoryFixture(t)
	f.pub.err = errors.New("stream down")

	cycle, err := f.svc.RunCycle(context.Background())
	if err != nil {
		t.Fatalf("expected cycle to succeed, got %v", err)
	}
	if cycle.Switches() != 2 {
		t.Fatalf("expected switches applied despite publish error, got %d", cycle.Switches())
	}
}

func TestRankedGames(t *testing.T) {
	f := newMemoryFixture(t)
	ctx := context.Background()

	ranked, err := f.svc.RankedGames(ctx, "")
	if err != nil {
		t.Fatalf("ranked: %v", err)
	}
	if len(ranked) != 2 || ranked[0].Game.ID != "g-hot" {
		t.Fatalf("expected g-hot first, got %+v", ranked)
	}
	if ranked[0].Hotness.Score != 75 {
		t.Fatalf("expected g-hot hotness 75, got %d", ranked[0].Hotness.Score)
	}

	if _, err := f.svc.RankedGames(ctx, "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := f.svc.RankedGames(ctx, "main"); err != nil {
		t.Fatalf("expected ranking for known display, got %v", err)
	}
}

func TestRankedGamesCountsDisplays(t *testing.T) {
	f := newMemoryFixture(t)
	ctx := context.Background()
	if _, err := f.svc.RunCycle(ctx); err != nil {
		t.Fatalf("run cycle: %v", err)
	}

	ranked, _ := f.svc.RankedGames(ctx, "")
	for _, sc := range ranked {
		if sc.Game.AssignedDisplayCount != 1 {
			t.Fatalf("expected %s on 1 display, got %d", sc.Game.ID, sc.Game.AssignedDisplayCount)
		}
	}
}

func TestRankedGamesDisplayScopedPenalty(t *testing.T) {
	f := newMemoryFixture(t)
	ctx := context.Background()
	if _, err := f.svc.RunCycle(ctx); err != nil {
		t.Fatalf("run cycle: %v", err)
	}

	global, err := f.svc.RankedGames(ctx, "")
	if err != nil {
		t.Fatalf("ranked: %v", err)
	}
	scoped, err := f.svc.RankedGames(ctx, "main")
	if err != nil {
		t.Fatalf("ranked for main: %v", err)
	}
	byID := make(map[string]int, len(global))
	for _, sc := range global {
		byID[sc.Game.ID] = sc.Relevance.Score
	}
	hotScoped := -1
	for _, sc := range scoped {
		if sc.Relevance.Score > byID[sc.Game.ID] {
			t.Fatalf("expected %s scoped score <= %d, got %d", sc.Game.ID, byID[sc.Game.ID], sc.Relevance.Score)
		}
		if sc.Game.ID == "g-hot" {
			hotScoped = sc.Relevance.Score
		}
	}
	if hotScoped < 0 || hotScoped >= byID["g-hot"] {
		t.Fatalf("expected recently assigned display to penalize g-hot, got %d vs %d", hotScoped, byID["g-hot"])
	}

	props, err := f.svc.Recommendations(ctx)
	if err != nil {
		t.Fatalf("recommendations: %v", err)
	}
	for _, p := range props {
		if want, ok := byID[p.EventID]; ok && p.Score != want {
			t.Fatalf("expected proposal score %d for %s, got %d", want, p.EventID, p.Score)
		}
	}
}

func TestRecommendations(t *testing.T) {
	f := newMemoryFixture(t)

	props, err := f.svc.Recommendations(context.Background())
	if err != nil {
		t.Fatalf("recommendations: %v", err)
	}
	if len(props) != 2 {
		t.Fatalf("expected 2 proposals, got %d", len(props))
	}
	if props[0].DisplayID != "main" || props[0].EventID != "g-hot" {
		t.Fatalf("expected main -> g-hot, got %+v", props[0])
	}
	if props[1].DisplayID != "side" || props[1].EventID != "g-mid" {
		t.Fatalf("expected side -> g-mid, got %+v", props[1])
	}
}
