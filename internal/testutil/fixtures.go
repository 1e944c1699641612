package testutil

import (
	"time"

	"github.com/preston-bernstein/venue-tv-service/internal/domain/displays"
	"github.com/preston-bernstein/venue-tv-service/internal/domain/games"
	"github.com/preston-bernstein/venue-tv-service/internal/domain/teams"
)

// SampleGame returns a minimal scheduled NBA game fixture with the provided id.
func SampleGame(id string) games.Game {
	return games.Game{
		ID:       id,
		League:   games.LeagueNBA,
		HomeTeam: teams.Team{ID: "home", Name: "Home", MarketID: "home-market"},
		AwayTeam: teams.Team{ID: "away", Name: "Away", MarketID: "away-market"},
		Channel:  "ESPN",
		Status:   games.StatusScheduled,
	}
}

// SampleLiveGame returns a live game for league with the given margin and
// seconds remaining, started at start.
func SampleLiveGame(id string, league games.League, scoreDiff, timeRemaining int, start time.Time) games.Game {
	g := SampleGame(id)
	g.League = league
	g.Status = games.StatusLive
	g.StartTime = start
	g.Live = games.LiveState{
		ScoreDiff:     games.Int(scoreDiff),
		TimeRemaining: games.Int(timeRemaining),
	}
	return g
}

// SampleDisplay returns an empty MAIN display with the provided id.
func SampleDisplay(id string) displays.Display {
	return displays.Display{
		ID:       id,
		Name:     id,
		Location: "Main Bar",
		Priority: displays.PriorityMain,
	}
}
