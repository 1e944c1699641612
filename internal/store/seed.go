package store

import "github.com/preston-bernstein/venue-tv-service/internal/domain/displays"

// DefaultDisplays is the venue layout installed on first start.
func DefaultDisplays() []displays.Display {
	return []displays.Display{
		{ID: "bar-left-65", Name: "Bar Left 65", Location: "Main Bar", Priority: displays.PriorityMain, CurrentChannel: "ESPN"},
		{ID: "bar-right-65", Name: "Bar Right 65", Location: "Main Bar", Priority: displays.PriorityMain, CurrentChannel: "TNT"},
		{ID: "booth-1", Name: "Booth 1", Location: "Booths", Priority: displays.PrioritySecondary, CurrentChannel: "Local"},
		{ID: "patio-1", Name: "Patio 1", Location: "Patio", Priority: displays.PriorityOverflow, CurrentChannel: "ESPN2"},
		{ID: "patio-2", Name: "Patio 2", Location: "Patio", Priority: displays.PriorityOverflow, CurrentChannel: "NBATV"},
	}
}
