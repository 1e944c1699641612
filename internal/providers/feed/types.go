package feed

type gamesResponse struct {
	Data []gameResponse `json:"data"`
	Meta metaResponse   `json:"meta"`
}

type gameResponse struct {
	ID            string       `json:"id"`
	League        string       `json:"league"`
	Title         string       `json:"title"`
	HomeTeam      teamResponse `json:"home_team"`
	AwayTeam      teamResponse `json:"away_team"`
	Channel       string       `json:"channel"`
	StartTime     string       `json:"start_time"`
	Status        string       `json:"status"`
	ScoreDiff     *int         `json:"score_diff"`
	TimeRemaining *int         `json:"time_remaining"`
	CurrentInning *int         `json:"current_inning"`
	Overtime      bool         `json:"overtime"`
	WalkOff       bool         `json:"walk_off"`
}

type teamResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	MarketID string `json:"market_id"`
}

type metaResponse struct {
	TotalPages int `json:"total_pages"`
}
