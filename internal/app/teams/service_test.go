package teams

import (
	"testing"

	"github.com/preston-bernstein/venue-tv-service/internal/domain/teams"
)

type stubCatalog struct {
	items   []teams.Team
	markets []teams.Market
	league  string
}

func (s *stubCatalog) Teams(leagueID string) []teams.Team {
	s.league = leagueID
	return s.items
}

func (s *stubCatalog) Team(id string) (teams.Team, bool) {
	for _, t := range s.items {
		if t.ID == id {
			return t, true
		}
	}
	return teams.Team{}, false
}

func (s *stubCatalog) Markets() []teams.Market { return s.markets }

func TestTeamsService(t *testing.T) {
	cat := &stubCatalog{
		items:   []teams.Team{{ID: "t1"}},
		markets: []teams.Market{{ID: "m1"}},
	}
	svc := NewService(cat)

	if len(svc.Teams("NBA")) != 1 {
		t.Fatalf("expected teams from catalog")
	}
	if cat.league != "NBA" {
		t.Fatalf("expected league filter to pass through, got %q", cat.league)
	}
	if _, ok := svc.TeamByID("t1"); !ok {
		t.Fatalf("expected team by id")
	}
	if len(svc.Markets()) != 1 {
		t.Fatalf("expected markets from catalog")
	}
}

func TestTeamsServiceBuiltinCatalog(t *testing.T) {
	svc := NewService(nil)

	nba := svc.Teams("nba")
	if len(nba) == 0 {
		t.Fatalf("expected built-in NBA teams")
	}
	for _, team := range nba {
		if team.LeagueID != "NBA" {
			t.Fatalf("expected only NBA teams, got %s", team.LeagueID)
		}
	}
	if _, ok := svc.TeamByID("nba-bos"); !ok {
		t.Fatalf("expected nba-bos in built-in catalog")
	}
	if len(svc.Markets()) == 0 {
		t.Fatalf("expected built-in markets")
	}
	if got := len(svc.Leagues()); got != 7 {
		t.Fatalf("expected 7 leagues, got %d", got)
	}
}
