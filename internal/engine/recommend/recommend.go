// Package recommend pairs ranked events with displays for the decision engine.
package recommend

import (
	"fmt"
	"sort"
	"time"

	"github.com/preston-bernstein/venue-tv-service/internal/domain/displays"
	"github.com/preston-bernstein/venue-tv-service/internal/engine/locks"
	"github.com/preston-bernstein/venue-tv-service/internal/engine/relevance"
)

// Proposal suggests a challenger event for a display.
type Proposal struct {
	DisplayID string           `json:"displayId"`
	EventID   string           `json:"eventId"`
	Score     int              `json:"score"`
	Reason    string           `json:"reason"`
	Event     relevance.Scored `json:"-"`
}

// Recommender matches events to displays.
type Recommender struct {
	locks locks.Manager
}

// New returns a Recommender that skips displays under manual lock.
func New(lm locks.Manager) Recommender {
	return Recommender{locks: lm}
}

// Propose walks displays from MAIN to OVERFLOW and gives each the best
// ranked event that is not on any screen and not already proposed. ranked
// must already be sorted with relevance.Rank.
func (r Recommender) Propose(now time.Time, list []displays.Display, ranked []relevance.Scored) []Proposal {
	ordered := make([]displays.Display, len(list))
	copy(ordered, list)
	sort.SliceStable(ordered, func(i, j int) bool {
		pi, pj := ordered[i].Priority.Rank(), ordered[j].Priority.Rank()
		if pi != pj {
			return pi < pj
		}
		return ordered[i].ID < ordered[j].ID
	})

	taken := make(map[string]bool, len(list))
	for _, d := range list {
		if id, ok := d.CurrentEvent(); ok {
			taken[id] = true
		}
	}

	out := make([]Proposal, 0, len(ordered))
	for _, d := range ordered {
		if !r.locks.Eligible(d, now) {
			continue
		}
		for _, s := range ranked {
			if taken[s.Game.ID] {
				continue
			}
			taken[s.Game.ID] = true
			out = append(out, Proposal{
				DisplayID: d.ID,
				EventID:   s.Game.ID,
				Score:     s.Relevance.Score,
				Reason:    reason(d, s),
				Event:     s,
			})
			break
		}
	}
	return out
}

func reason(d displays.Display, s relevance.Scored) string {
	name := d.Name
	if name == "" {
		name = d.ID
	}
	if len(s.Relevance.Reasons) > 0 {
		return fmt.Sprintf("%s for %s (relevance %d)", s.Relevance.Reasons[0], name, s.Relevance.Score)
	}
	return fmt.Sprintf("Best available event for %s (relevance %d)", name, s.Relevance.Score)
}
