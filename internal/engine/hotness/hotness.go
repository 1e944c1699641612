// Package hotness scores in-game excitement from box-score state and decides
// when a game is in a protected endgame window.
package hotness

import (
	"fmt"
	"math"
	"time"

	"github.com/preston-bernstein/venue-tv-service/internal/domain/games"
	"github.com/preston-bernstein/venue-tv-service/internal/engine/pacing"
)

// MaxScore is the ceiling for every hotness score.
const MaxScore = 100

// Result is an excitement score with its reasons, most salient first.
type Result struct {
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

// StartTier maps "starts in more than Over" to a fixed pre-game score.
type StartTier struct {
	Over   time.Duration
	Score  int
	Reason string
}

// Config holds the weights used by Scorer.
type Config struct {
	// StartTiers must be ordered from the longest lead time down.
	StartTiers     []StartTier
	ImminentScore  int
	ImminentReason string
	FinalScore     int
	LiveBase       int
	// ScoreBonuses apply at 3x, 2x and 1x the sport's close threshold.
	ScoreBonuses [3]int
	// TimeBonuses apply in the outer (3x late window or late inning) and
	// inner (1x late window or ninth inning) windows.
	TimeBonuses     [2]int
	CrowdPerDisplay int
}

// DefaultConfig returns the production weights.
func DefaultConfig() Config {
	return Config{
		StartTiers: []StartTier{
			{Over: time.Hour, Score: 10, Reason: "Starts in over an hour"},
			{Over: 30 * time.Minute, Score: 20, Reason: "Starting within the hour"},
			{Over: 10 * time.Minute, Score: 40, Reason: "Starting soon"},
		},
		ImminentScore:   40,
		ImminentReason:  "About to start",
		FinalScore:      0,
		LiveBase:        25,
		ScoreBonuses:    [3]int{10, 15, 25},
		TimeBonuses:     [2]int{10, 15},
		CrowdPerDisplay: 12,
	}
}

// Scorer computes hotness. It holds no mutable state and is safe for concurrent use.
type Scorer struct {
	cfg Config
}

// NewScorer builds a Scorer; a config without start tiers gets DefaultConfig.
func NewScorer(cfg Config) Scorer {
	if len(cfg.StartTiers) == 0 {
		cfg = DefaultConfig()
	}
	return Scorer{cfg: cfg}
}

// Score computes the hotness of a game snapshot at now.
func (s Scorer) Score(now time.Time, g games.Game) Result {
	if !g.Status.IsLive() {
		return s.pregame(now, g)
	}

	profile := pacing.For(g.League)
	words := profile.Vocabulary()

	score := s.cfg.LiveBase
	reasons := []string{"Live game"}

	if bonus, reason := s.scoreTension(profile, g.Live); bonus > 0 {
		score += bonus
		reasons = append(reasons, reason)
	}
	if bonus, reason := s.timePressure(profile, g.Live); bonus > 0 {
		score += bonus
		reasons = append(reasons, reason)
	}

	if _, innings := profile.(pacing.Innings); innings && g.Live.IsWalkOffPotential {
		return Result{Score: MaxScore, Reasons: []string{"Walk-off situation"}}
	}
	if g.Live.IsOvertime {
		return Result{Score: MaxScore, Reasons: []string{words.Overtime}}
	}

	score += s.cfg.CrowdPerDisplay * g.AssignedDisplayCount
	if g.AssignedDisplayCount > 0 {
		reasons = append(reasons, crowdReason(g.AssignedDisplayCount))
	}

	return Result{Score: clamp(score), Reasons: reasons}
}

func (s Scorer) pregame(now time.Time, g games.Game) Result {
	if g.Status == games.StatusFinal {
		return Result{Score: clamp(s.cfg.FinalScore), Reasons: []string{"Final"}}
	}
	if g.StartTime.IsZero() {
		lowest := s.cfg.StartTiers[0]
		return Result{Score: clamp(lowest.Score), Reasons: []string{"Start time unknown"}}
	}
	until := g.StartTime.Sub(now)
	for _, tier := range s.cfg.StartTiers {
		if until > tier.Over {
			return Result{Score: clamp(tier.Score), Reasons: []string{tier.Reason}}
		}
	}
	return Result{Score: clamp(s.cfg.ImminentScore), Reasons: []string{s.cfg.ImminentReason}}
}

func (s Scorer) scoreTension(profile pacing.Profile, live games.LiveState) (int, string) {
	if live.ScoreDiff == nil {
		return 0, ""
	}
	diff := abs(*live.ScoreDiff)
	threshold := profile.Threshold()
	labels := [3]string{"Competitive game", "Tight game", profile.Vocabulary().Close}

	bonus, reason := 0, ""
	for i, multiple := range [3]int{3, 2, 1} {
		if diff > threshold*multiple {
			break
		}
		bonus += s.cfg.ScoreBonuses[i]
		reason = labels[i]
	}
	return bonus, reason
}

func (s Scorer) timePressure(profile pacing.Profile, live games.LiveState) (int, string) {
	switch p := profile.(type) {
	case pacing.Timed:
		if live.TimeRemaining == nil {
			return 0, ""
		}
		remaining := *live.TimeRemaining
		bonus, reason := 0, ""
		if remaining <= p.LateWindowSeconds*3 {
			bonus += scaled(s.cfg.TimeBonuses[0], p.TimeMultiplier)
			reason = "Late in the game"
		}
		if remaining <= p.LateWindowSeconds {
			bonus += scaled(s.cfg.TimeBonuses[1], p.TimeMultiplier)
			reason = "Final minutes"
		}
		return bonus, reason
	case pacing.Innings:
		if live.CurrentInning == nil {
			return 0, ""
		}
		inning := *live.CurrentInning
		bonus, reason := 0, ""
		if inning >= p.LateInning {
			bonus += scaled(s.cfg.TimeBonuses[0], p.InningMultiplier)
			reason = "Late innings"
		}
		if inning >= 9 {
			bonus += scaled(s.cfg.TimeBonuses[1], p.InningMultiplier)
			reason = "Ninth inning or later"
		}
		return bonus, reason
	default:
		return 0, ""
	}
}

func crowdReason(count int) string {
	if count == 1 {
		return "Showing on 1 display"
	}
	return fmt.Sprintf("Showing on %d displays", count)
}

func scaled(points int, multiplier float64) int {
	return int(math.Round(float64(points) * multiplier))
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
