package transport

import (
	"context"
	"time"
)

const (
	MinFollowInterval     = 100 * time.Millisecond
	MaxFollowInterval     = 500 * time.Millisecond
	DefaultFollowInterval = 250 * time.Millisecond
)

// Follower polls a controller on a coarse timer and reports when the active
// segment changes. It only reads snapshots; elapsed time is owned by the
// controller.
type Follower struct {
	ctl      *Controller
	onChange func(prev int, snap Snapshot)
	interval time.Duration
	last     int
	lastSet  bool
}

// NewFollower creates a follower. The interval is clamped to the range
// [MinFollowInterval, MaxFollowInterval].
func NewFollower(
	ctl *Controller,
	interval time.Duration,
	onChange func(prev int, snap Snapshot),
) *Follower {
	if interval == 0 {
		interval = DefaultFollowInterval
	}

	interval = max(MinFollowInterval, min(interval, MaxFollowInterval))

	return &Follower{
		ctl:      ctl,
		interval: interval,
		onChange: onChange,
	}
}

// Interval returns the effective polling interval.
func (f *Follower) Interval() time.Duration {
	return f.interval
}

// Poll reads the controller once and invokes the change hook if the active
// segment differs from the previous poll. The first poll always reports.
func (f *Follower) Poll() bool {
	snap := f.ctl.Snapshot()

	if f.lastSet && snap.Active == f.last {
		return false
	}

	prev := -1
	if f.lastSet {
		prev = f.last
	}

	f.last = snap.Active
	f.lastSet = true

	if f.onChange != nil {
		f.onChange(prev, snap)
	}

	return true
}

// Run polls until ctx is cancelled.
func (f *Follower) Run(ctx context.Context) {
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			f.Poll()
		}
	}
}
