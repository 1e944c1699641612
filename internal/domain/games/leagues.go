package games

import (
	"sort"
	"strings"
)

// League identifies a sport league.
type League string

const (
	LeagueNFL     League = "NFL"
	LeagueNBA     League = "NBA"
	LeagueNHL     League = "NHL"
	LeagueMLB     League = "MLB"
	LeagueNCAAFB  League = "NCAA_FB"
	LeagueNCAAMBB League = "NCAA_MBB"
	LeagueNCAAWBB League = "NCAA_WBB"
)

// LeagueInfo describes a league for display and default ordering.
type LeagueInfo struct {
	ID              League `json:"id"`
	Name            string `json:"name"`
	ShortName       string `json:"shortName"`
	IsCollege       bool   `json:"isCollege"`
	DefaultPriority int    `json:"defaultPriority"`
}

var leagues = []LeagueInfo{
	{ID: LeagueNFL, Name: "National Football League", ShortName: "NFL", DefaultPriority: 1},
	{ID: LeagueNBA, Name: "National Basketball Association", ShortName: "NBA", DefaultPriority: 2},
	{ID: LeagueNHL, Name: "National Hockey League", ShortName: "NHL", DefaultPriority: 3},
	{ID: LeagueMLB, Name: "Major League Baseball", ShortName: "MLB", DefaultPriority: 4},
	{ID: LeagueNCAAFB, Name: "NCAA Football", ShortName: "NCAAF", IsCollege: true, DefaultPriority: 5},
	{ID: LeagueNCAAMBB, Name: "NCAA Men's Basketball", ShortName: "NCAAM", IsCollege: true, DefaultPriority: 6},
	{ID: LeagueNCAAWBB, Name: "NCAA Women's Basketball", ShortName: "NCAAW", IsCollege: true, DefaultPriority: 7},
}

// Normalize upper-cases and trims a league id.
func (l League) Normalize() League {
	return League(strings.ToUpper(strings.TrimSpace(string(l))))
}

// Info returns the catalog entry for the league.
func (l League) Info() (LeagueInfo, bool) {
	id := l.Normalize()
	for _, info := range leagues {
		if info.ID == id {
			return info, true
		}
	}
	return LeagueInfo{}, false
}

// IsKnown reports whether the league is in the catalog.
func (l League) IsKnown() bool {
	_, ok := l.Info()
	return ok
}

// IsCollege reports whether the league is an NCAA league.
func (l League) IsCollege() bool {
	info, ok := l.Info()
	return ok && info.IsCollege
}

// Leagues returns the catalog ordered by default priority.
func Leagues() []LeagueInfo {
	out := make([]LeagueInfo, len(leagues))
	copy(out, leagues)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DefaultPriority < out[j].DefaultPriority
	})
	return out
}

// DefaultLeaguePriority returns league ids in default priority order.
func DefaultLeaguePriority() []League {
	infos := Leagues()
	out := make([]League, 0, len(infos))
	for _, info := range infos {
		out = append(out, info.ID)
	}
	return out
}
