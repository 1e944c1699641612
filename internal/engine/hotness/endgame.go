package hotness

import (
	"github.com/preston-bernstein/venue-tv-service/internal/domain/games"
	"github.com/preston-bernstein/venue-tv-service/internal/engine/pacing"
)

// IsProtectedEndgame reports whether a game is in a climax window that automatic
// switching must not interrupt. Overtime is always protected.
func IsProtectedEndgame(g games.Game) bool {
	if g.Live.IsOvertime {
		return true
	}
	if !g.Status.IsLive() {
		return false
	}
	switch p := pacing.For(g.League).(type) {
	case pacing.Timed:
		return g.Live.TimeRemaining != nil && *g.Live.TimeRemaining <= p.EndgameWindowSeconds
	case pacing.Innings:
		if g.Live.IsWalkOffPotential {
			return true
		}
		return g.Live.CurrentInning != nil && *g.Live.CurrentInning >= p.EndgameInning
	default:
		return false
	}
}
