package games

import (
	"time"

	"github.com/preston-bernstein/venue-tv-service/internal/domain/teams"
)

// GameStatus mirrors the shared contract for game lifecycle states.
type GameStatus string

const (
	StatusScheduled GameStatus = "SCHEDULED"
	StatusUpcoming  GameStatus = "UPCOMING"
	StatusLive      GameStatus = "LIVE"
	StatusFinal     GameStatus = "FINAL"
)

// IsLive reports whether the game is currently being played.
func (s GameStatus) IsLive() bool {
	return s == StatusLive
}

// IsPending reports whether the game has not started yet.
func (s GameStatus) IsPending() bool {
	return s == StatusScheduled || s == StatusUpcoming
}

// LiveState carries the box-score fields that drive excitement scoring.
// Nil pointers mean the feed did not report the value.
type LiveState struct {
	ScoreDiff          *int `json:"scoreDiff"`
	TimeRemaining      *int `json:"timeRemaining"`
	CurrentInning      *int `json:"currentInning"`
	IsOvertime         bool `json:"isOvertime"`
	IsWalkOffPotential bool `json:"isWalkOffPotential"`
}

// Game is the canonical game shape consumed by the decision core.
type Game struct {
	ID                   string     `json:"id"`
	League               League     `json:"league"`
	Title                string     `json:"title"`
	HomeTeam             teams.Team `json:"homeTeam"`
	AwayTeam             teams.Team `json:"awayTeam"`
	Channel              string     `json:"channel"`
	StartTime            time.Time  `json:"startTime"`
	Status               GameStatus `json:"status"`
	Live                 LiveState  `json:"live"`
	AssignedDisplayCount int        `json:"assignedDisplayCount"`
}

// DisplayTitle returns the title, deriving one from the teams when empty.
func (g Game) DisplayTitle() string {
	if g.Title != "" {
		return g.Title
	}
	if g.HomeTeam.Name == "" && g.AwayTeam.Name == "" {
		return g.ID
	}
	return g.AwayTeam.Name + " at " + g.HomeTeam.Name
}

// Int returns a pointer to v; handy for building LiveState literals.
func Int(v int) *int {
	return &v
}
