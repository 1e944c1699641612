package preferences

import (
	"errors"
	"fmt"
	"time"

	"github.com/preston-bernstein/venue-tv-service/internal/domain/games"
)

// ErrInvalidLeague is returned when a preference references an unknown league.
var ErrInvalidLeague = errors.New("unknown league")

// Ranked is a preference entry; priority 0 is the strongest.
type Ranked struct {
	ID       string `json:"id"`
	Priority int    `json:"priority"`
}

// VenuePreferences captures how a venue wants events ranked.
type VenuePreferences struct {
	FavoriteTeams         []Ranked       `json:"favoriteTeams"`
	FavoriteMarkets       []Ranked       `json:"favoriteMarkets"`
	LeaguePriority        []games.League `json:"leaguePriority"`
	PreventRapidSwitching bool           `json:"preventRapidSwitching"`
	Version               int            `json:"version"`
	UpdatedAt             time.Time      `json:"updatedAt"`
}

// Default returns preferences used before a venue has saved any.
func Default() VenuePreferences {
	return VenuePreferences{
		FavoriteTeams:         []Ranked{},
		FavoriteMarkets:       []Ranked{},
		LeaguePriority:        games.DefaultLeaguePriority(),
		PreventRapidSwitching: true,
	}
}

// TeamPriority returns the best (lowest) priority among the given team ids.
func (p VenuePreferences) TeamPriority(ids ...string) (int, string, bool) {
	return bestMatch(p.FavoriteTeams, ids)
}

// MarketPriority returns the best (lowest) priority among the given market ids.
func (p VenuePreferences) MarketPriority(ids ...string) (int, string, bool) {
	return bestMatch(p.FavoriteMarkets, ids)
}

// LeagueRank returns the index of the league in LeaguePriority.
func (p VenuePreferences) LeagueRank(league games.League) (int, bool) {
	target := league.Normalize()
	for i, l := range p.LeaguePriority {
		if l.Normalize() == target {
			return i, true
		}
	}
	return 0, false
}

// IsLowestLeague reports whether league is the last of at least two configured leagues.
func (p VenuePreferences) IsLowestLeague(league games.League) bool {
	if len(p.LeaguePriority) < 2 {
		return false
	}
	return p.LeaguePriority[len(p.LeaguePriority)-1].Normalize() == league.Normalize()
}

// Validate checks league ids and normalizes them in place.
func (p *VenuePreferences) Validate() error {
	seen := make(map[games.League]bool, len(p.LeaguePriority))
	normalized := make([]games.League, 0, len(p.LeaguePriority))
	for _, l := range p.LeaguePriority {
		id := l.Normalize()
		if !id.IsKnown() {
			return fmt.Errorf("%w: %s", ErrInvalidLeague, l)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		normalized = append(normalized, id)
	}
	p.LeaguePriority = normalized
	if p.FavoriteTeams == nil {
		p.FavoriteTeams = []Ranked{}
	}
	if p.FavoriteMarkets == nil {
		p.FavoriteMarkets = []Ranked{}
	}
	return nil
}

func bestMatch(entries []Ranked, ids []string) (int, string, bool) {
	best, bestID, found := 0, "", false
	for _, e := range entries {
		for _, id := range ids {
			if id == "" || e.ID != id {
				continue
			}
			if !found || e.Priority < best {
				best, bestID, found = e.Priority, e.ID, true
			}
		}
	}
	return best, bestID, found
}
