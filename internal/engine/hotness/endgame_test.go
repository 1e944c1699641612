package hotness

import (
	"testing"

	"github.com/preston-bernstein/venue-tv-service/internal/domain/games"
)

func TestIsProtectedEndgame(t *testing.T) {
	cases := []struct {
		name string
		game games.Game
		want bool
	}{
		{"nfl inside window", liveGame(games.LeagueNFL, games.LiveState{TimeRemaining: games.Int(300)}), true},
		{"nfl outside window", liveGame(games.LeagueNFL, games.LiveState{TimeRemaining: games.Int(301)}), false},
		{"nba inside window", liveGame(games.LeagueNBA, games.LiveState{TimeRemaining: games.Int(120)}), true},
		{"nba outside window", liveGame(games.LeagueNBA, games.LiveState{TimeRemaining: games.Int(121)}), false},
		{"mlb eighth inning", liveGame(games.LeagueMLB, games.LiveState{CurrentInning: games.Int(8)}), true},
		{"mlb seventh inning", liveGame(games.LeagueMLB, games.LiveState{CurrentInning: games.Int(7)}), false},
		{"mlb walk-off", liveGame(games.LeagueMLB, games.LiveState{IsWalkOffPotential: true}), true},
		{"missing clock", liveGame(games.LeagueNHL, games.LiveState{}), false},
		{"overtime", liveGame(games.LeagueNHL, games.LiveState{IsOvertime: true}), true},
		{"scheduled with small clock", games.Game{League: games.LeagueNFL, Status: games.StatusScheduled, Live: games.LiveState{TimeRemaining: games.Int(10)}}, false},
		{"unknown league falls back to football", liveGame(games.League("AFL"), games.LiveState{TimeRemaining: games.Int(250)}), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsProtectedEndgame(tc.game); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
