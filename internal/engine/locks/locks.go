// Package locks evaluates and updates the manual and automatic lock leases on
// a display. Every update returns a modified copy; the latest call wins.
package locks

import (
	"sort"
	"time"

	"github.com/preston-bernstein/venue-tv-service/internal/domain/displays"
)

// DefaultAutoLockDuration is the cool-down applied after an automatic switch.
const DefaultAutoLockDuration = 8 * time.Minute

// Manager applies lock leases.
type Manager struct {
	AutoLockDuration time.Duration
}

// NewManager returns a Manager, using DefaultAutoLockDuration when d <= 0.
func NewManager(d time.Duration) Manager {
	if d <= 0 {
		d = DefaultAutoLockDuration
	}
	return Manager{AutoLockDuration: d}
}

// HasManualLock reports whether an operator lock is active at now.
func (Manager) HasManualLock(d displays.Display, now time.Time) bool {
	return d.ManualLockUntil != nil && now.Before(*d.ManualLockUntil)
}

// HasAutoLock reports whether the post-switch cool-down is active at now.
func (Manager) HasAutoLock(d displays.Display, now time.Time) bool {
	return d.AutoLockUntil != nil && now.Before(*d.AutoLockUntil)
}

// Eligible reports whether automatic switching may consider the display.
func (m Manager) Eligible(d displays.Display, now time.Time) bool {
	return !m.HasManualLock(d, now)
}

// SetManualLock locks the display until now+duration. A non-positive
// duration clears the lock.
func (m Manager) SetManualLock(d displays.Display, now time.Time, duration time.Duration) displays.Display {
	if duration <= 0 {
		return m.ClearManualLock(d)
	}
	out := d.Clone()
	until := now.Add(duration)
	out.ManualLockUntil = &until
	return out
}

// ClearManualLock removes the operator lock.
func (Manager) ClearManualLock(d displays.Display) displays.Display {
	out := d.Clone()
	out.ManualLockUntil = nil
	return out
}

// ClearAutoLock removes the cool-down.
func (Manager) ClearAutoLock(d displays.Display) displays.Display {
	out := d.Clone()
	out.AutoLockUntil = nil
	return out
}

// IssueAutoLock starts a fresh cool-down at now.
func (m Manager) IssueAutoLock(d displays.Display, now time.Time) displays.Display {
	out := d.Clone()
	until := now.Add(m.duration())
	out.AutoLockUntil = &until
	return out
}

// ActiveLocks lists the displays under manual lock at now, soonest expiry first.
func (m Manager) ActiveLocks(list []displays.Display, now time.Time) []displays.Lock {
	out := make([]displays.Lock, 0)
	for _, d := range list {
		if m.HasManualLock(d, now) {
			out = append(out, displays.Lock{DisplayID: d.ID, LockedUntil: *d.ManualLockUntil})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].LockedUntil.Equal(out[j].LockedUntil) {
			return out[i].LockedUntil.Before(out[j].LockedUntil)
		}
		return out[i].DisplayID < out[j].DisplayID
	})
	return out
}

func (m Manager) duration() time.Duration {
	if m.AutoLockDuration <= 0 {
		return DefaultAutoLockDuration
	}
	return m.AutoLockDuration
}
