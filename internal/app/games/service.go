package games

import domaingames "github.com/preston-bernstein/venue-tv-service/internal/domain/games"

// Store defines the contract for persisting and retrieving games.
type Store interface {
	ListGames() []domaingames.Game
	GetGame(id string) (domaingames.Game, bool)
	SetGames(games []domaingames.Game)
}

// Service coordinates game operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Games returns the current set of games.
func (s *Service) Games() []domaingames.Game {
	return s.store.ListGames()
}

// GamesByLeague returns the current games for one league; an empty league
// returns everything.
func (s *Service) GamesByLeague(league domaingames.League) []domaingames.Game {
	all := s.store.ListGames()
	if league == "" {
		return all
	}
	target := league.Normalize()
	out := make([]domaingames.Game, 0, len(all))
	for _, g := range all {
		if g.League.Normalize() == target {
			out = append(out, g)
		}
	}
	return out
}

// GameByID returns a single game if present.
func (s *Service) GameByID(id string) (domaingames.Game, bool) {
	return s.store.GetGame(id)
}

// ReplaceGames swaps the in-memory games with a new snapshot.
func (s *Service) ReplaceGames(games []domaingames.Game) {
	s.store.SetGames(games)
}
