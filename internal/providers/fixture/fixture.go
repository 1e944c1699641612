package fixture

import (
	"context"
	"time"

	"github.com/preston-bernstein/venue-tv-service/internal/domain/games"
	"github.com/preston-bernstein/venue-tv-service/internal/domain/teams"
)

// Provider returns a static multi-league slate useful for local testing and
// bootstrapping. Start times are relative to the current minute so the slate
// always has live, upcoming and final games.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

type entry struct {
	id      string
	league  games.League
	home    string
	away    string
	channel string
	offset  time.Duration
	status  games.GameStatus
	live    games.LiveState
}

var slate = []entry{
	{
		id: "fixture-nfl-1", league: games.LeagueNFL, home: "nfl-kc", away: "nfl-buf", channel: "CBS",
		offset: -3 * time.Hour, status: games.StatusLive,
		live: games.LiveState{ScoreDiff: games.Int(3), TimeRemaining: games.Int(240)},
	},
	{
		id: "fixture-nba-1", league: games.LeagueNBA, home: "nba-bos", away: "nba-lal", channel: "ESPN",
		offset: -time.Hour, status: games.StatusLive,
		live: games.LiveState{ScoreDiff: games.Int(12), TimeRemaining: games.Int(1500)},
	},
	{
		id: "fixture-nhl-1", league: games.LeagueNHL, home: "nhl-nyr", away: "nhl-bos", channel: "TNT",
		offset: -150 * time.Minute, status: games.StatusLive,
		live: games.LiveState{ScoreDiff: games.Int(0), TimeRemaining: games.Int(180), IsOvertime: true},
	},
	{
		id: "fixture-mlb-1", league: games.LeagueMLB, home: "mlb-nyy", away: "mlb-bos", channel: "FOX",
		offset: 45 * time.Minute, status: games.StatusUpcoming,
	},
	{
		id: "fixture-mlb-2", league: games.LeagueMLB, home: "mlb-lad", away: "mlb-chc", channel: "MLBN",
		offset: -150 * time.Minute, status: games.StatusLive,
		live: games.LiveState{ScoreDiff: games.Int(1), CurrentInning: games.Int(8)},
	},
	{
		id: "fixture-ncaafb-1", league: games.LeagueNCAAFB, home: "ncaafb-osu", away: "ncaafb-mich", channel: "ABC",
		offset: -3 * time.Hour, status: games.StatusLive,
		live: games.LiveState{ScoreDiff: games.Int(7), TimeRemaining: games.Int(200)},
	},
	{
		id: "fixture-ncaambb-1", league: games.LeagueNCAAMBB, home: "ncaambb-duke", away: "ncaambb-uconn", channel: "ESPN2",
		offset: 5 * time.Hour, status: games.StatusScheduled,
	},
	{
		id: "fixture-ncaawbb-1", league: games.LeagueNCAAWBB, home: "ncaawbb-sc", away: "ncaawbb-uconn", channel: "ESPNU",
		offset: -4 * time.Hour, status: games.StatusFinal,
	},
}

// FetchGames returns a deterministic set of example games. A valid date
// anchors the slate at 19:00 UTC on that day.
func (p *Provider) FetchGames(ctx context.Context, date string, tz string) ([]games.Game, error) {
	_ = ctx
	_ = tz

	base := p.now().UTC().Truncate(time.Minute)
	if date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		if err == nil {
			base = parsed.UTC().Add(19 * time.Hour)
		}
	}

	out := make([]games.Game, 0, len(slate))
	for _, e := range slate {
		home, _ := teams.Lookup(e.home)
		away, _ := teams.Lookup(e.away)
		g := games.Game{
			ID:        e.id,
			League:    e.league,
			HomeTeam:  home,
			AwayTeam:  away,
			Channel:   e.channel,
			StartTime: base.Add(e.offset),
			Status:    e.status,
			Live:      e.live,
		}
		g.Title = g.DisplayTitle()
		out = append(out, g)
	}
	return out, nil
}
