package displays

import "time"

// Priority ranks displays by how prominent they are in the venue.
type Priority string

const (
	PriorityMain      Priority = "MAIN"
	PrioritySecondary Priority = "SECONDARY"
	PriorityOverflow  Priority = "OVERFLOW"
)

// Rank orders priorities with MAIN first; unknown values sort last.
func (p Priority) Rank() int {
	switch p {
	case PriorityMain:
		return 0
	case PrioritySecondary:
		return 1
	case PriorityOverflow:
		return 2
	default:
		return 3
	}
}

// Display is a venue TV along with its assignment and lock state.
type Display struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Location        string     `json:"location"`
	Priority        Priority   `json:"priority"`
	CurrentEventID  *string    `json:"currentEventId"`
	CurrentChannel  string     `json:"currentChannel"`
	ManualLockUntil *time.Time `json:"manualLockUntil"`
	AutoLockUntil   *time.Time `json:"autoLockUntil"`
	LastAssignedAt  *time.Time `json:"lastAssignedAt"`
}

// CurrentEvent returns the current event id and whether one is set.
func (d Display) CurrentEvent() (string, bool) {
	if d.CurrentEventID == nil || *d.CurrentEventID == "" {
		return "", false
	}
	return *d.CurrentEventID, true
}

// Shows reports whether the display currently shows the event.
func (d Display) Shows(eventID string) bool {
	id, ok := d.CurrentEvent()
	return ok && id == eventID
}

// Clone returns a deep copy so callers can mutate pointer fields safely.
func (d Display) Clone() Display {
	out := d
	out.CurrentEventID = cloneString(d.CurrentEventID)
	out.ManualLockUntil = cloneTime(d.ManualLockUntil)
	out.AutoLockUntil = cloneTime(d.AutoLockUntil)
	out.LastAssignedAt = cloneTime(d.LastAssignedAt)
	return out
}

// Popularity counts how many displays currently show each event.
func Popularity(list []Display) map[string]int {
	stats := make(map[string]int, len(list))
	for _, d := range list {
		if id, ok := d.CurrentEvent(); ok {
			stats[id]++
		}
	}
	return stats
}

// Lock describes an active manual lock for listing.
type Lock struct {
	DisplayID   string    `json:"displayId"`
	LockedUntil time.Time `json:"lockedUntil"`
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	s := *v
	return &s
}

func cloneTime(v *time.Time) *time.Time {
	if v == nil {
		return nil
	}
	t := *v
	return &t
}
