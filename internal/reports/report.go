// Package reports persists one JSON report per day describing the latest
// auto-assign cycle, and prunes old days on a schedule.
package reports

import (
	"time"

	"github.com/preston-bernstein/venue-tv-service/internal/publisher"
)

// RankedEvent is a compact view of one scored event.
type RankedEvent struct {
	EventID   string   `json:"eventId"`
	Title     string   `json:"title"`
	League    string   `json:"league"`
	Status    string   `json:"status"`
	Hotness   int      `json:"hotness"`
	Relevance int      `json:"relevance"`
	Reasons   []string `json:"reasons"`
}

// Cycle is the report for a single auto-assign cycle.
type Cycle struct {
	ID        string               `json:"id"`
	At        time.Time            `json:"at"`
	Top       []RankedEvent        `json:"top"`
	Decisions []publisher.Decision `json:"decisions"`
}

// Switches counts decisions that were applied.
func (c Cycle) Switches() int {
	n := 0
	for _, d := range c.Decisions {
		if d.Applied {
			n++
		}
	}
	return n
}
