package teams

import "strings"

var markets = []Market{
	{ID: "us-nyc", Name: "New York City", Region: "Northeast"},
	{ID: "us-la", Name: "Los Angeles", Region: "West"},
	{ID: "us-chicago", Name: "Chicago", Region: "Midwest"},
	{ID: "us-dallas", Name: "Dallas-Fort Worth", Region: "South"},
	{ID: "us-philadelphia", Name: "Philadelphia", Region: "Northeast"},
	{ID: "us-boston", Name: "Boston", Region: "Northeast"},
	{ID: "us-san-francisco", Name: "San Francisco", Region: "West"},
	{ID: "us-kansas-city", Name: "Kansas City", Region: "Midwest"},
	{ID: "us-buffalo", Name: "Buffalo", Region: "Northeast"},
	{ID: "us-miami", Name: "Miami", Region: "South"},
	{ID: "us-denver", Name: "Denver", Region: "West"},
	{ID: "us-detroit", Name: "Detroit", Region: "Midwest"},
	{ID: "us-columbus", Name: "Columbus", Region: "Midwest"},
	{ID: "us-ann-arbor", Name: "Ann Arbor", Region: "Midwest"},
	{ID: "us-tuscaloosa", Name: "Tuscaloosa", Region: "South"},
	{ID: "us-athens", Name: "Athens", Region: "South"},
	{ID: "us-durham", Name: "Durham", Region: "South"},
	{ID: "us-storrs", Name: "Storrs", Region: "Northeast"},
	{ID: "us-columbia-sc", Name: "Columbia", Region: "South"},
}

var catalog = []Team{
	{ID: "nfl-kc", Name: "Kansas City Chiefs", ShortName: "Chiefs", LeagueID: "NFL", MarketID: "us-kansas-city"},
	{ID: "nfl-buf", Name: "Buffalo Bills", ShortName: "Bills", LeagueID: "NFL", MarketID: "us-buffalo"},
	{ID: "nfl-phi", Name: "Philadelphia Eagles", ShortName: "Eagles", LeagueID: "NFL", MarketID: "us-philadelphia"},
	{ID: "nfl-dal", Name: "Dallas Cowboys", ShortName: "Cowboys", LeagueID: "NFL", MarketID: "us-dallas"},
	{ID: "nfl-chi", Name: "Chicago Bears", ShortName: "Bears", LeagueID: "NFL", MarketID: "us-chicago"},
	{ID: "nfl-det", Name: "Detroit Lions", ShortName: "Lions", LeagueID: "NFL", MarketID: "us-detroit"},
	{ID: "nba-bos", Name: "Boston Celtics", ShortName: "Celtics", LeagueID: "NBA", MarketID: "us-boston"},
	{ID: "nba-lal", Name: "Los Angeles Lakers", ShortName: "Lakers", LeagueID: "NBA", MarketID: "us-la"},
	{ID: "nba-gsw", Name: "Golden State Warriors", ShortName: "Warriors", LeagueID: "NBA", MarketID: "us-san-francisco"},
	{ID: "nba-mia", Name: "Miami Heat", ShortName: "Heat", LeagueID: "NBA", MarketID: "us-miami"},
	{ID: "nba-den", Name: "Denver Nuggets", ShortName: "Nuggets", LeagueID: "NBA", MarketID: "us-denver"},
	{ID: "nba-nyk", Name: "New York Knicks", ShortName: "Knicks", LeagueID: "NBA", MarketID: "us-nyc"},
	{ID: "nhl-nyr", Name: "New York Rangers", ShortName: "Rangers", LeagueID: "NHL", MarketID: "us-nyc"},
	{ID: "nhl-bos", Name: "Boston Bruins", ShortName: "Bruins", LeagueID: "NHL", MarketID: "us-boston"},
	{ID: "nhl-chi", Name: "Chicago Blackhawks", ShortName: "Blackhawks", LeagueID: "NHL", MarketID: "us-chicago"},
	{ID: "nhl-dal", Name: "Dallas Stars", ShortName: "Stars", LeagueID: "NHL", MarketID: "us-dallas"},
	{ID: "mlb-nyy", Name: "New York Yankees", ShortName: "Yankees", LeagueID: "MLB", MarketID: "us-nyc"},
	{ID: "mlb-bos", Name: "Boston Red Sox", ShortName: "Red Sox", LeagueID: "MLB", MarketID: "us-boston"},
	{ID: "mlb-lad", Name: "Los Angeles Dodgers", ShortName: "Dodgers", LeagueID: "MLB", MarketID: "us-la"},
	{ID: "mlb-chc", Name: "Chicago Cubs", ShortName: "Cubs", LeagueID: "MLB", MarketID: "us-chicago"},
	{ID: "ncaafb-osu", Name: "Ohio State Buckeyes", ShortName: "Buckeyes", LeagueID: "NCAA_FB", MarketID: "us-columbus", IsCollege: true},
	{ID: "ncaafb-mich", Name: "Michigan Wolverines", ShortName: "Wolverines", LeagueID: "NCAA_FB", MarketID: "us-ann-arbor", IsCollege: true},
	{ID: "ncaafb-bama", Name: "Alabama Crimson Tide", ShortName: "Crimson Tide", LeagueID: "NCAA_FB", MarketID: "us-tuscaloosa", IsCollege: true},
	{ID: "ncaafb-uga", Name: "Georgia Bulldogs", ShortName: "Bulldogs", LeagueID: "NCAA_FB", MarketID: "us-athens", IsCollege: true},
	{ID: "ncaambb-duke", Name: "Duke Blue Devils", ShortName: "Blue Devils", LeagueID: "NCAA_MBB", MarketID: "us-durham", IsCollege: true},
	{ID: "ncaambb-uconn", Name: "UConn Huskies", ShortName: "Huskies", LeagueID: "NCAA_MBB", MarketID: "us-storrs", IsCollege: true},
	{ID: "ncaawbb-sc", Name: "South Carolina Gamecocks", ShortName: "Gamecocks", LeagueID: "NCAA_WBB", MarketID: "us-columbia-sc", IsCollege: true},
	{ID: "ncaawbb-uconn", Name: "UConn Huskies", ShortName: "Huskies", LeagueID: "NCAA_WBB", MarketID: "us-storrs", IsCollege: true},
}

// Catalog returns a copy of the known teams, optionally filtered by league id.
func Catalog(leagueID string) []Team {
	out := make([]Team, 0, len(catalog))
	for _, t := range catalog {
		if leagueID != "" && !strings.EqualFold(t.LeagueID, leagueID) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Lookup finds a catalog team by id.
func Lookup(id string) (Team, bool) {
	for _, t := range catalog {
		if t.ID == id {
			return t, true
		}
	}
	return Team{}, false
}

// Markets returns a copy of the known markets.
func Markets() []Market {
	out := make([]Market, len(markets))
	copy(out, markets)
	return out
}

// MarketByID finds a market by id.
func MarketByID(id string) (Market, bool) {
	for _, m := range markets {
		if m.ID == id {
			return m, true
		}
	}
	return Market{}, false
}
