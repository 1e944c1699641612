package feed

import (
	"strings"
	"time"

	"github.com/preston-bernstein/venue-tv-service/internal/domain/games"
	"github.com/preston-bernstein/venue-tv-service/internal/domain/teams"
)

func mapGame(g gameResponse) games.Game {
	out := games.Game{
		ID:        strings.TrimSpace(g.ID),
		League:    games.League(g.League).Normalize(),
		Title:     strings.TrimSpace(g.Title),
		HomeTeam:  mapTeam(g.HomeTeam, g.League),
		AwayTeam:  mapTeam(g.AwayTeam, g.League),
		Channel:   strings.TrimSpace(g.Channel),
		StartTime: parseStart(g.StartTime),
		Status:    mapStatus(g.Status),
		Live: games.LiveState{
			ScoreDiff:          g.ScoreDiff,
			TimeRemaining:      g.TimeRemaining,
			CurrentInning:      g.CurrentInning,
			IsOvertime:         g.Overtime,
			IsWalkOffPotential: g.WalkOff,
		},
	}
	if out.Title == "" {
		out.Title = out.DisplayTitle()
	}
	return out
}

// mapTeam fills gaps from the team catalog when the feed uses a known id.
func mapTeam(t teamResponse, league string) teams.Team {
	out := teams.Team{
		ID:       strings.TrimSpace(t.ID),
		Name:     strings.TrimSpace(t.Name),
		MarketID: strings.TrimSpace(t.MarketID),
		LeagueID: string(games.League(league).Normalize()),
	}
	known, ok := teams.Lookup(out.ID)
	if !ok {
		out.IsCollege = games.League(league).IsCollege()
		return out
	}
	if out.Name == "" {
		out.Name = known.Name
	}
	if out.MarketID == "" {
		out.MarketID = known.MarketID
	}
	out.ShortName = known.ShortName
	out.IsCollege = known.IsCollege
	return out
}

func mapStatus(status string) games.GameStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "final", "ended", "completed", "final/ot":
		return games.StatusFinal
	case "live", "in progress", "in_progress", "halftime", "end of period", "intermission":
		return games.StatusLive
	case "upcoming", "pregame", "warmup":
		return games.StatusUpcoming
	default:
		return games.StatusScheduled
	}
}

func parseStart(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC()
	}
	return time.Time{}
}
