// Package pacing holds the per-league constants that define what "late" and
// "close" mean for each sport. It is the single place to add a new sport.
package pacing

import "github.com/preston-bernstein/venue-tv-service/internal/domain/games"

// Profile is either Timed or Innings.
type Profile interface {
	// Threshold is the score margin that counts as the tightest "close" tier.
	Threshold() int
	// Vocabulary returns the sport-specific reason labels.
	Vocabulary() Vocabulary
	isProfile()
}

// Vocabulary holds the reason strings a sport uses.
type Vocabulary struct {
	Close    string
	Overtime string
}

// Timed profiles cover clock sports: football, basketball and hockey.
type Timed struct {
	LateWindowSeconds    int
	TimeMultiplier       float64
	CloseThreshold       int
	EndgameWindowSeconds int
	Words                Vocabulary
}

// Innings profiles cover baseball.
type Innings struct {
	LateInning       int
	InningMultiplier float64
	CloseThreshold   int
	EndgameInning    int
	Words            Vocabulary
}

func (t Timed) Threshold() int { return t.CloseThreshold }
func (t Timed) Vocabulary() Vocabulary { return t.Words }
func (Timed) isProfile() {}
func (i Innings) Threshold() int { return i.CloseThreshold }
func (i Innings) Vocabulary() Vocabulary { return i.Words }
func (Innings) isProfile() {}

var (
	football = Timed{
		LateWindowSeconds:    300,
		TimeMultiplier:       1.0,
		CloseThreshold:       8,
		EndgameWindowSeconds: 300,
		Words:                Vocabulary{Close: "One-score game", Overtime: "Overtime"},
	}
	proBasketball = Timed{
		LateWindowSeconds:    120,
		TimeMultiplier:       1.2,
		CloseThreshold:       5,
		EndgameWindowSeconds: 120,
		Words:                Vocabulary{Close: "Nail-biter", Overtime: "Overtime"},
	}
	collegeBasketball = Timed{
		LateWindowSeconds:    120,
		TimeMultiplier:       1.1,
		CloseThreshold:       5,
		EndgameWindowSeconds: 120,
		Words:                Vocabulary{Close: "Nail-biter", Overtime: "Overtime"},
	}
	hockey = Timed{
		LateWindowSeconds:    300,
		TimeMultiplier:       1.0,
		CloseThreshold:       1,
		EndgameWindowSeconds: 300,
		Words:                Vocabulary{Close: "One-goal game", Overtime: "Overtime"},
	}
	baseball = Innings{
		LateInning:       7,
		InningMultiplier: 1.0,
		CloseThreshold:   2,
		EndgameInning:    8,
		Words:            Vocabulary{Close: "One-run game", Overtime: "Extra innings"},
	}
)

var table = map[games.League]Profile{
	games.LeagueNFL:     football,
	games.LeagueNCAAFB:  football,
	games.LeagueNBA:     proBasketball,
	games.LeagueNCAAMBB: collegeBasketball,
	games.LeagueNCAAWBB: collegeBasketball,
	games.LeagueNHL:     hockey,
	games.LeagueMLB:     baseball,
}

// Default is used for leagues missing from the table.
var Default Profile = football

// For returns the pacing profile of a league, falling back to Default.
func For(league games.League) Profile {
	if p, ok := table[league.Normalize()]; ok {
		return p
	}
	return Default
}
