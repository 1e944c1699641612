package teams

// Team represents the normalized team shape for use inside games.
// MarketID ties the team to its home market for venue market preferences.
type Team struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName,omitempty"`
	LeagueID  string `json:"leagueId,omitempty"`
	MarketID  string `json:"marketId,omitempty"`
	IsCollege bool   `json:"isCollege,omitempty"`
}

// Market is a geographic media market that venues can favor.
type Market struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Region string `json:"region"`
}
