package transport

import (
	"sync"
	"time"
)

// Handle identifies a scheduled tick.
type Handle uint64

// Scheduler runs single-shot callbacks at the next frame. Callbacks receive
// the time at which they fire.
type Scheduler interface {
	Schedule(fn func(now time.Time)) Handle
	Cancel(h Handle)
}

// Clock abstracts the wall clock so that the controller can be driven
// deterministically in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the local wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// DefaultFrameInterval approximates a 60Hz display refresh.
const DefaultFrameInterval = 16 * time.Millisecond

// FrameScheduler fires callbacks after a fixed frame interval using
// time.AfterFunc. The interval only controls how often progress is
// recomputed; elapsed time is always derived from the anchor.
type FrameScheduler struct {
	clock    Clock
	timers   map[Handle]*time.Timer
	interval time.Duration
	next     Handle
	mu       sync.Mutex
}

// NewFrameScheduler returns a scheduler that fires every interval. A zero
// interval selects DefaultFrameInterval.
func NewFrameScheduler(interval time.Duration, clock Clock) *FrameScheduler {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}

	if clock == nil {
		clock = SystemClock{}
	}

	return &FrameScheduler{
		clock:    clock,
		interval: interval,
		timers:   make(map[Handle]*time.Timer),
	}
}

func (f *FrameScheduler) Schedule(fn func(now time.Time)) Handle {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.next++
	h := f.next

	f.timers[h] = time.AfterFunc(f.interval, func() {
		f.mu.Lock()
		_, live := f.timers[h]
		delete(f.timers, h)
		f.mu.Unlock()

		if live {
			fn(f.clock.Now())
		}
	})

	return h
}

func (f *FrameScheduler) Cancel(h Handle) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if t, ok := f.timers[h]; ok {
		t.Stop()
		delete(f.timers, h)
	}
}

// Pending returns the number of callbacks that have not fired yet.
func (f *FrameScheduler) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.timers)
}
