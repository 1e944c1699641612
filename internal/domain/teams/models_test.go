package teams

import (
	"reflect"
	"testing"
)

func TestTeamJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}
	teamType := reflect.TypeOf(Team{})
	fields := []fieldCheck{
		{"ID", "id"},
		{"Name", "name"},
		{"ShortName", "shortName,omitempty"},
		{"LeagueID", "leagueId,omitempty"},
		{"MarketID", "marketId,omitempty"},
		{"IsCollege", "isCollege,omitempty"},
	}
	for _, fc := range fields {
		f, ok := teamType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if tag := f.Tag.Get("json"); tag != fc.tag {
			t.Fatalf("field %s expected tag %s, got %s", fc.name, fc.tag, tag)
		}
	}
}

func TestCatalogTeamsReferenceKnownMarkets(t *testing.T) {
	for _, team := range Catalog("") {
		if _, ok := MarketByID(team.MarketID); !ok {
			t.Fatalf("team %s references unknown market %s", team.ID, team.MarketID)
		}
	}
}

func TestCatalogFiltersByLeague(t *testing.T) {
	nba := Catalog("nba")
	if len(nba) == 0 {
		t.Fatalf("expected nba teams")
	}
	for _, team := range nba {
		if team.LeagueID != "NBA" {
			t.Fatalf("expected only NBA teams, got %s", team.LeagueID)
		}
	}
}

func TestLookup(t *testing.T) {
	team, ok := Lookup("nfl-kc")
	if !ok {
		t.Fatalf("expected to find nfl-kc")
	}
	if team.MarketID != "us-kansas-city" {
		t.Fatalf("expected kansas city market, got %s", team.MarketID)
	}
	if _, ok := Lookup("missing"); ok {
		t.Fatalf("expected missing team lookup to fail")
	}
}

func TestMarketsReturnsCopy(t *testing.T) {
	list := Markets()
	list[0].Name = "mutated"
	if Markets()[0].Name == "mutated" {
		t.Fatalf("expected markets to be copied")
	}
}
