// Package autoassign decides whether a display should switch from its current
// event to a challenger. Decisions are pure; applying them is up to the caller.
package autoassign

import (
	"fmt"
	"time"

	"github.com/preston-bernstein/venue-tv-service/internal/domain/displays"
	"github.com/preston-bernstein/venue-tv-service/internal/domain/games"
	"github.com/preston-bernstein/venue-tv-service/internal/engine/hotness"
	"github.com/preston-bernstein/venue-tv-service/internal/engine/locks"
)

// Rule identifies which row of the decision table produced a decision.
type Rule string

const (
	RuleMissingData       Rule = "missing_data"
	RuleManualLock        Rule = "manual_lock"
	RuleEndgameProtection Rule = "endgame_protection"
	RuleHotnessOverride   Rule = "hotness_override"
	RuleChallengerEndgame Rule = "challenger_endgame"
	RuleAutoLock          Rule = "auto_lock"
	RuleDeltaNotMet       Rule = "delta_not_met"
	RuleHotnessDelta      Rule = "hotness_delta"
)

const (
	ActionSwitch = "SWITCH"
	ActionKeep   = "KEEP"
)

// Config holds the switching thresholds.
type Config struct {
	HotnessDelta    int
	OverrideHotness int
}

// DefaultConfig returns the production thresholds.
func DefaultConfig() Config {
	return Config{HotnessDelta: 15, OverrideHotness: 90}
}

// Candidate is an event with its hotness. A nil Hotness means the score is
// unavailable.
type Candidate struct {
	Game    games.Game
	Hotness *hotness.Result
}

// SwitchDecision is the outcome for one display.
type SwitchDecision struct {
	ShouldSwitch      bool    `json:"shouldSwitch"`
	Reason            string  `json:"reason"`
	Rule              Rule    `json:"rule"`
	CurrentEventID    *string `json:"currentEventId"`
	ChallengerEventID string  `json:"challengerEventId"`
}

// Action returns SWITCH or KEEP.
func (d SwitchDecision) Action() string {
	if d.ShouldSwitch {
		return ActionSwitch
	}
	return ActionKeep
}

// Engine evaluates the decision table.
type Engine struct {
	cfg   Config
	locks locks.Manager
}

// NewEngine builds an Engine. Non-positive thresholds fall back to DefaultConfig.
func NewEngine(cfg Config, lm locks.Manager) Engine {
	def := DefaultConfig()
	if cfg.HotnessDelta <= 0 {
		cfg.HotnessDelta = def.HotnessDelta
	}
	if cfg.OverrideHotness <= 0 {
		cfg.OverrideHotness = def.OverrideHotness
	}
	return Engine{cfg: cfg, locks: lm}
}

// Config returns the thresholds in use.
func (e Engine) Config() Config {
	return e.cfg
}

// Decide evaluates the rules top to bottom; the first match wins. current is
// nil when the display shows nothing.
func (e Engine) Decide(now time.Time, d displays.Display, current, challenger *Candidate) SwitchDecision {
	out := SwitchDecision{}
	if current != nil {
		id := current.Game.ID
		out.CurrentEventID = &id
	} else if id, ok := d.CurrentEvent(); ok {
		out.CurrentEventID = &id
	}
	if challenger != nil {
		out.ChallengerEventID = challenger.Game.ID
	}

	keep := func(rule Rule, reason string) SwitchDecision {
		out.Rule, out.Reason = rule, reason
		return out
	}
	switchTo := func(rule Rule, reason string) SwitchDecision {
		out.ShouldSwitch = true
		out.Rule, out.Reason = rule, reason
		return out
	}

	if challenger == nil || challenger.Hotness == nil {
		return keep(RuleMissingData, "Missing challenger data")
	}
	challengerHot := challenger.Hotness.Score

	if e.locks.HasManualLock(d, now) {
		return keep(RuleManualLock, "Manual lock active")
	}

	currentProtected := current != nil && hotness.IsProtectedEndgame(current.Game)
	if currentProtected {
		return keep(RuleEndgameProtection, "Endgame protection")
	}

	if e.locks.HasAutoLock(d, now) {
		if challengerHot >= e.cfg.OverrideHotness {
			return switchTo(RuleHotnessOverride, fmt.Sprintf("Hotness override (%d)", challengerHot))
		}
		if current != nil && hotness.IsProtectedEndgame(challenger.Game) {
			return switchTo(RuleChallengerEndgame, "Challenger endgame priority")
		}
		return keep(RuleAutoLock, "Auto-lock active")
	}

	currentHot := 0
	if current != nil && current.Hotness != nil {
		currentHot = current.Hotness.Score
	}
	delta := challengerHot - currentHot
	if delta < e.cfg.HotnessDelta {
		return keep(RuleDeltaNotMet, "Hotness delta not met")
	}
	return switchTo(RuleHotnessDelta, fmt.Sprintf("Hotness +%d", delta))
}

// Apply returns the display as it should be persisted after switching to
// challenger: new event and channel, assignment time, and a fresh auto-lock.
func (e Engine) Apply(now time.Time, d displays.Display, challenger games.Game) displays.Display {
	out := d.Clone()
	id := challenger.ID
	out.CurrentEventID = &id
	if challenger.Channel != "" {
		out.CurrentChannel = challenger.Channel
	}
	assigned := now
	out.LastAssignedAt = &assigned
	return e.locks.IssueAutoLock(out, now)
}
