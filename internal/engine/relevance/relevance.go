// Package relevance ranks candidate events for a venue by blending hotness
// with venue preferences, popularity and timing.
package relevance

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/preston-bernstein/venue-tv-service/internal/domain/games"
	"github.com/preston-bernstein/venue-tv-service/internal/domain/preferences"
	"github.com/preston-bernstein/venue-tv-service/internal/domain/teams"
	"github.com/preston-bernstein/venue-tv-service/internal/engine/hotness"
)

// MaxReasons caps the reasons returned with a score.
const MaxReasons = 4

// Category orders reasons; lower values are shown first.
type Category int

const (
	CategoryTeam Category = iota
	CategoryMarket
	CategoryLeague
	CategoryCollege
	CategoryLive
	CategoryStartingSoon
	CategoryPopularity
	CategoryExcitement
	CategoryDistance
)

// Result is a venue-specific score with its top reasons.
type Result struct {
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

// Recency describes the display an event is being scored for.
type Recency struct {
	DisplayID      string
	CurrentEventID string
	LastAssignedAt *time.Time
}

// Config holds relevance weights.
type Config struct {
	HotnessWeight       float64
	RapidSwitchWindow   time.Duration
	RapidSwitchPenalty  int
	TeamBoostMax        int
	TeamBoostStep       int
	TeamBoostMin        int
	MarketBoostMax      int
	MarketBoostStep     int
	MarketBoostMin      int
	LeagueBoostMax      int
	LeagueBoostStep     int
	LeagueBoostMin      int
	LeagueReasonRanks   int
	CollegeBoost        int
	PopularityBoost     int
	LiveBoost           int
	StartingSoonBoost   int
	StartingSoonWindow  time.Duration
	FarPenalty          int
	FarThreshold        time.Duration
	NearPenalty         int
	NearThreshold       time.Duration
	LowestLeaguePenalty int
	ExcitementReasonMin int
}

// DefaultConfig returns the production weights.
func DefaultConfig() Config {
	return Config{
		HotnessWeight:       0.4,
		RapidSwitchWindow:   15 * time.Minute,
		RapidSwitchPenalty:  20,
		TeamBoostMax:        40,
		TeamBoostStep:       5,
		TeamBoostMin:        10,
		MarketBoostMax:      25,
		MarketBoostStep:     3,
		MarketBoostMin:      5,
		LeagueBoostMax:      15,
		LeagueBoostStep:     2,
		LeagueBoostMin:      2,
		LeagueReasonRanks:   3,
		CollegeBoost:        10,
		PopularityBoost:     8,
		LiveBoost:           5,
		StartingSoonBoost:   3,
		StartingSoonWindow:  30 * time.Minute,
		FarPenalty:          15,
		FarThreshold:        4 * time.Hour,
		NearPenalty:         5,
		NearThreshold:       2 * time.Hour,
		LowestLeaguePenalty: 8,
		ExcitementReasonMin: 60,
	}
}

// Scorer computes relevance. It is stateless and safe for concurrent use.
type Scorer struct {
	cfg Config
}

// NewScorer builds a Scorer; a zero HotnessWeight selects DefaultConfig.
func NewScorer(cfg Config) Scorer {
	if cfg.HotnessWeight == 0 {
		cfg = DefaultConfig()
	}
	return Scorer{cfg: cfg}
}

type reason struct {
	category Category
	text     string
}

// Score computes the relevance of g for a venue. recency may be nil when the
// score is not tied to a specific display.
func (s Scorer) Score(
	now time.Time,
	g games.Game,
	hot hotness.Result,
	prefs preferences.VenuePreferences,
	popularity map[string]int,
	recency *Recency,
) Result {
	c := s.cfg
	total := float64(hot.Score) * c.HotnessWeight
	var reasons []reason
	add := func(points int, cat Category, text string) {
		total += float64(points)
		if text != "" {
			reasons = append(reasons, reason{category: cat, text: text})
		}
	}

	if prefs.PreventRapidSwitching && recency != nil && recency.LastAssignedAt != nil {
		if now.Sub(*recency.LastAssignedAt) < c.RapidSwitchWindow {
			add(-c.RapidSwitchPenalty, 0, "")
		}
	}

	if prio, id, ok := prefs.TeamPriority(g.HomeTeam.ID, g.AwayTeam.ID); ok {
		add(decay(c.TeamBoostMax, c.TeamBoostStep, prio, c.TeamBoostMin), CategoryTeam, "Favorite team: "+teamName(g, id))
	}

	if prio, id, ok := prefs.MarketPriority(g.HomeTeam.MarketID, g.AwayTeam.MarketID); ok {
		add(decay(c.MarketBoostMax, c.MarketBoostStep, prio, c.MarketBoostMin), CategoryMarket, "Local market: "+marketName(id))
	}

	if rank, ok := prefs.LeagueRank(g.League); ok {
		text := ""
		if rank < c.LeagueReasonRanks {
			text = fmt.Sprintf("League priority #%d (%s)", rank+1, leagueLabel(g.League))
		}
		add(decay(c.LeagueBoostMax, c.LeagueBoostStep, rank, c.LeagueBoostMin), CategoryLeague, text)
	}

	if g.League.IsCollege() {
		add(c.CollegeBoost, CategoryCollege, "College game")
	}

	if others := othersShowing(g.ID, popularity, recency); others >= 1 {
		add(c.PopularityBoost, CategoryPopularity, "Already on another display")
	}

	until := g.StartTime.Sub(now)
	switch {
	case g.Status.IsLive():
		add(c.LiveBoost, CategoryLive, "Live now")
	case g.Status.IsPending() && !g.StartTime.IsZero():
		if until <= c.StartingSoonWindow {
			add(c.StartingSoonBoost, CategoryStartingSoon, "Starting soon")
		}
		if until > c.FarThreshold {
			add(-c.FarPenalty, CategoryDistance, "Starts in over 4 hours")
		} else if until > c.NearThreshold {
			add(-c.NearPenalty, CategoryDistance, "")
		}
	}

	if prefs.IsLowestLeague(g.League) {
		add(-c.LowestLeaguePenalty, 0, "")
	}

	if hot.Score >= c.ExcitementReasonMin {
		reasons = append(reasons, reason{category: CategoryExcitement, text: fmt.Sprintf("High excitement (%d)", hot.Score)})
	}

	return Result{Score: clamp(total), Reasons: ordered(reasons)}
}

// Scored pairs a game with its hotness and relevance for ranking.
type Scored struct {
	Game      games.Game     `json:"game"`
	Hotness   hotness.Result `json:"hotness"`
	Relevance Result         `json:"relevance"`
}

// Rank sorts events by relevance descending. Live events win ties, then the
// earlier start, then the lower id.
func Rank(list []Scored) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.Relevance.Score != b.Relevance.Score {
			return a.Relevance.Score > b.Relevance.Score
		}
		if al, bl := a.Game.Status.IsLive(), b.Game.Status.IsLive(); al != bl {
			return al
		}
		if !a.Game.StartTime.Equal(b.Game.StartTime) {
			return a.Game.StartTime.Before(b.Game.StartTime)
		}
		return a.Game.ID < b.Game.ID
	})
}

func othersShowing(eventID string, popularity map[string]int, recency *Recency) int {
	count := popularity[eventID]
	if recency != nil && recency.CurrentEventID == eventID && count > 0 {
		count--
	}
	return count
}

func ordered(list []reason) []string {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].category < list[j].category
	})
	if len(list) > MaxReasons {
		list = list[:MaxReasons]
	}
	out := make([]string, 0, len(list))
	for _, r := range list {
		out = append(out, r.text)
	}
	return out
}

func decay(max, step, index, floor int) int {
	v := max - step*index
	if v < floor {
		return floor
	}
	return v
}

func teamName(g games.Game, id string) string {
	switch id {
	case g.HomeTeam.ID:
		if g.HomeTeam.Name != "" {
			return g.HomeTeam.Name
		}
	case g.AwayTeam.ID:
		if g.AwayTeam.Name != "" {
			return g.AwayTeam.Name
		}
	}
	return id
}

func leagueLabel(l games.League) string {
	if info, ok := l.Info(); ok {
		return info.ShortName
	}
	return string(l)
}

func marketName(id string) string {
	if m, ok := teams.MarketByID(id); ok {
		return m.Name
	}
	return id
}

func clamp(v float64) int {
	r := int(math.Round(v))
	if r < 0 {
		return 0
	}
	if r > 100 {
		return 100
	}
	return r
}
