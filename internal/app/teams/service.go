package teams

import (
	"github.com/preston-bernstein/venue-tv-service/internal/domain/games"
	"github.com/preston-bernstein/venue-tv-service/internal/domain/teams"
)

// Catalog is the read-only source of teams and markets.
type Catalog interface {
	Teams(leagueID string) []teams.Team
	Team(id string) (teams.Team, bool)
	Markets() []teams.Market
}

type builtinCatalog struct{}

func (builtinCatalog) Teams(leagueID string) []teams.Team { return teams.Catalog(leagueID) }
func (builtinCatalog) Team(id string) (teams.Team, bool)  { return teams.Lookup(id) }
func (builtinCatalog) Markets() []teams.Market            { return teams.Markets() }

// Service exposes the team, market and league catalogs.
type Service struct {
	catalog Catalog
}

// NewService constructs a Service. A nil catalog uses the built-in one.
func NewService(catalog Catalog) *Service {
	if catalog == nil {
		catalog = builtinCatalog{}
	}
	return &Service{catalog: catalog}
}

// Teams returns teams, optionally filtered by league id.
func (s *Service) Teams(leagueID string) []teams.Team {
	return s.catalog.Teams(leagueID)
}

// TeamByID returns a single team if present.
func (s *Service) TeamByID(id string) (teams.Team, bool) {
	return s.catalog.Team(id)
}

// Markets returns the known media markets.
func (s *Service) Markets() []teams.Market {
	return s.catalog.Markets()
}

// Leagues returns the league catalog in default priority order.
func (s *Service) Leagues() []games.LeagueInfo {
	return games.Leagues()
}
