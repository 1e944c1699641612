// Package assignments runs the scoring pipeline over the current games and
// displays and applies auto-assign decisions.
package assignments

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/preston-bernstein/venue-tv-service/internal/domain/displays"
	"github.com/preston-bernstein/venue-tv-service/internal/domain/games"
	"github.com/preston-bernstein/venue-tv-service/internal/domain/preferences"
	"github.com/preston-bernstein/venue-tv-service/internal/engine/autoassign"
	"github.com/preston-bernstein/venue-tv-service/internal/engine/hotness"
	"github.com/preston-bernstein/venue-tv-service/internal/engine/locks"
	"github.com/preston-bernstein/venue-tv-service/internal/engine/recommend"
	"github.com/preston-bernstein/venue-tv-service/internal/engine/relevance"
	"github.com/preston-bernstein/venue-tv-service/internal/logging"
	"github.com/preston-bernstein/venue-tv-service/internal/metrics"
	"github.com/preston-bernstein/venue-tv-service/internal/publisher"
	"github.com/preston-bernstein/venue-tv-service/internal/reports"
	"github.com/preston-bernstein/venue-tv-service/internal/store"
)

const reportTopN = 10

var errStaleDecision = errors.New("decision no longer holds")

// GameSource lists the current games.
type GameSource interface {
	ListGames() []games.Game
}

// PreferenceSource returns the effective venue preferences.
type PreferenceSource interface {
	Get(ctx context.Context) (preferences.VenuePreferences, error)
}

// CycleWriter stores cycle reports.
type CycleWriter interface {
	WriteCycle(c reports.Cycle) error
}

// Deps wires a Service. Games, Displays and Preferences are required.
type Deps struct {
	Games       GameSource
	Displays    store.DisplayStore
	Preferences PreferenceSource

	Hotness   hotness.Scorer
	Relevance relevance.Scorer
	Engine    autoassign.Engine
	Locks     locks.Manager

	Publisher publisher.Publisher
	Reports   CycleWriter
	Logger    *slog.Logger
	Metrics   *metrics.Recorder
	Now       func() time.Time
}

// Service scores events, proposes assignments and runs auto-assign cycles.
type Service struct {
	games       GameSource
	displays    store.DisplayStore
	prefs       PreferenceSource
	hot         hotness.Scorer
	rel         relevance.Scorer
	engine      autoassign.Engine
	recommender recommend.Recommender
	publisher   publisher.Publisher
	reports     CycleWriter
	logger      *slog.Logger
	metrics     *metrics.Recorder
	now         func() time.Time
	newID       func() string
}

// NewService builds a Service from deps.
func NewService(deps Deps) *Service {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Publisher == nil {
		deps.Publisher = publisher.Nop{}
	}
	return &Service{
		games:       deps.Games,
		displays:    deps.Displays,
		prefs:       deps.Preferences,
		hot:         deps.Hotness,
		rel:         deps.Relevance,
		engine:      deps.Engine,
		recommender: recommend.New(deps.Locks),
		publisher:   deps.Publisher,
		reports:     deps.Reports,
		logger:      deps.Logger,
		metrics:     deps.Metrics,
		now:         deps.Now,
		newID:       uuid.NewString,
	}
}

// RankedGames scores every current game. When displayID is set the scores
// account for that display's recent assignment.
func (s *Service) RankedGames(ctx context.Context, displayID string) ([]relevance.Scored, error) {
	list, err := s.displays.ListDisplays(ctx)
	if err != nil {
		return nil, fmt.Errorf("list displays: %w", err)
	}
	var recency *relevance.Recency
	if displayID != "" {
		d, ok := findDisplay(list, displayID)
		if !ok {
			return nil, store.ErrNotFound
		}
		recency = recencyFor(d)
	}
	return s.rank(ctx, s.now(), list, recency)
}

// Recommendations proposes the best available event for each unlocked display.
func (s *Service) Recommendations(ctx context.Context) ([]recommend.Proposal, error) {
	now := s.now()
	list, err := s.displays.ListDisplays(ctx)
	if err != nil {
		return nil, fmt.Errorf("list displays: %w", err)
	}
	ranked, err := s.rank(ctx, now, list, nil)
	if err != nil {
		return nil, err
	}
	return s.recommender.Propose(now, list, ranked), nil
}

// RunCycle proposes challengers, decides each display, persists switches,
// publishes every decision and writes the cycle report.
func (s *Service) RunCycle(ctx context.Context) (reports.Cycle, error) {
	now := s.now()
	cycle := reports.Cycle{ID: s.newID(), At: now.UTC(), Decisions: []publisher.Decision{}}
	logger := logging.FromContext(ctx, s.logger)
	if logger != nil {
		logger = logger.With(logging.FieldCycleID, cycle.ID)
	}

	list, err := s.displays.ListDisplays(ctx)
	if err != nil {
		return cycle, fmt.Errorf("list displays: %w", err)
	}
	ranked, err := s.rank(ctx, now, list, nil)
	if err != nil {
		return cycle, err
	}
	cycle.Top = topEvents(ranked, reportTopN)

	byID := make(map[string]relevance.Scored, len(ranked))
	for _, sc := range ranked {
		byID[sc.Game.ID] = sc
	}

	for _, p := range s.recommender.Propose(now, list, ranked) {
		d, ok := findDisplay(list, p.DisplayID)
		if !ok {
			continue
		}
		challenger := &autoassign.Candidate{Game: p.Event.Game, Hotness: resultPtr(p.Event.Hotness)}
		decision := s.engine.Decide(now, d, currentCandidate(d, byID), challenger)
		applied := false

		if decision.ShouldSwitch {
			_, err := s.displays.UpdateDisplay(ctx, d.ID, func(fresh *displays.Display) error {
				recheck := s.engine.Decide(now, *fresh, currentCandidate(*fresh, byID), challenger)
				if !recheck.ShouldSwitch {
					decision = recheck
					return errStaleDecision
				}
				decision = recheck
				*fresh = s.engine.Apply(now, *fresh, challenger.Game)
				return nil
			})
			switch {
			case err == nil:
				applied = true
			case errors.Is(err, errStaleDecision):
			default:
				logging.Error(logger, "apply switch failed", err, logging.FieldDisplayID, d.ID)
			}
		}

		record := publisher.Decision{
			CycleID:           cycle.ID,
			DisplayID:         d.ID,
			Action:            decision.Action(),
			Rule:              string(decision.Rule),
			Reason:            decision.Reason,
			CurrentEventID:    decision.CurrentEventID,
			ChallengerEventID: decision.ChallengerEventID,
			Applied:           applied,
			At:                cycle.At,
		}
		cycle.Decisions = append(cycle.Decisions, record)

		logging.Info(logger, "auto-assign decision",
			logging.FieldDisplayID, d.ID,
			logging.FieldEventID, decision.ChallengerEventID,
			logging.FieldAction, record.Action,
			logging.FieldReason, decision.Reason,
			"rule", record.Rule,
			"applied", applied,
		)
		s.metrics.RecordDecision(record.Action, record.Rule)
		if applied {
			s.metrics.RecordSwitchApplied(d.ID)
		}
		if err := s.publisher.PublishDecision(ctx, record); err != nil {
			logging.Warn(logger, "publish decision failed", logging.FieldDisplayID, d.ID, "err", err)
		}
	}

	if s.reports != nil {
		if err := s.reports.WriteCycle(cycle); err != nil {
			logging.Warn(logger, "write cycle report failed", "err", err)
		}
	}
	logging.Info(logger, "auto-assign cycle complete",
		logging.FieldCount, len(cycle.Decisions),
		"switches", cycle.Switches(),
	)
	return cycle, nil
}

// rank scores games for the venue as a whole when recency is nil. The
// rapid-switch penalty and own-display popularity are display scoped, so
// cycles and recommendations never apply them; only RankedGames does.
func (s *Service) rank(ctx context.Context, now time.Time, list []displays.Display, recency *relevance.Recency) ([]relevance.Scored, error) {
	prefs, err := s.prefs.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load preferences: %w", err)
	}
	popularity := displays.Popularity(list)

	current := s.games.ListGames()
	ranked := make([]relevance.Scored, 0, len(current))
	for _, g := range current {
		g.AssignedDisplayCount = popularity[g.ID]
		hot := s.hot.Score(now, g)
		rel := s.rel.Score(now, g, hot, prefs, popularity, recency)
		ranked = append(ranked, relevance.Scored{Game: g, Hotness: hot, Relevance: rel})
	}
	relevance.Rank(ranked)
	return ranked, nil
}

func currentCandidate(d displays.Display, byID map[string]relevance.Scored) *autoassign.Candidate {
	id, ok := d.CurrentEvent()
	if !ok {
		return nil
	}
	sc, ok := byID[id]
	if !ok {
		return nil
	}
	return &autoassign.Candidate{Game: sc.Game, Hotness: resultPtr(sc.Hotness)}
}

func recencyFor(d displays.Display) *relevance.Recency {
	r := &relevance.Recency{DisplayID: d.ID, LastAssignedAt: d.LastAssignedAt}
	if id, ok := d.CurrentEvent(); ok {
		r.CurrentEventID = id
	}
	return r
}

func findDisplay(list []displays.Display, id string) (displays.Display, bool) {
	for _, d := range list {
		if d.ID == id {
			return d, true
		}
	}
	return displays.Display{}, false
}

func topEvents(ranked []relevance.Scored, n int) []reports.RankedEvent {
	if len(ranked) < n {
		n = len(ranked)
	}
	out := make([]reports.RankedEvent, 0, n)
	for _, sc := range ranked[:n] {
		out = append(out, reports.RankedEvent{
			EventID:   sc.Game.ID,
			Title:     sc.Game.DisplayTitle(),
			League:    string(sc.Game.League),
			Status:    string(sc.Game.Status),
			Hotness:   sc.Hotness.Score,
			Relevance: sc.Relevance.Score,
			Reasons:   sc.Relevance.Reasons,
		})
	}
	return out
}

func resultPtr(r hotness.Result) *hotness.Result {
	return &r
}
