// Package transport drives playback of a timeline: start, pause, reset and
// seek, with elapsed time derived from an anchor on every frame
package transport

import (
	"log/slog"
	"sync"
	"time"

	"github.com/ayoisaiah/yogi/timeline"
)

// State is the playback state of the transport.
type State int

const (
	Idle State = iota
	Running
	Paused
	Completed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	}

	return "unknown"
}

// Snapshot is a consistent view of the transport at one instant.
type Snapshot struct {
	Anchor  time.Time
	State   State
	Elapsed time.Duration
	Total   time.Duration
	// Active is the index of the active segment, or -1 when the timeline is
	// empty.
	Active int
	// Remaining is the time left in the active segment.
	Remaining time.Duration
}

// Progress returns the fraction of the session that has elapsed.
func (s Snapshot) Progress() float64 {
	if s.Total <= 0 {
		if s.State == Completed {
			return 1
		}

		return 0
	}

	return float64(s.Elapsed) / float64(s.Total)
}

// Controller owns the elapsed time and running state of one session view.
// It is safe for concurrent use; hooks are invoked without the lock held.
type Controller struct {
	clock      Clock
	sched      Scheduler
	tl         *timeline.Timeline
	onChange   func(Snapshot)
	onComplete func(Snapshot)
	anchor     time.Time
	elapsed    time.Duration
	gen        uint64
	pending    Handle
	mu         sync.Mutex
	running    bool
	completed  bool
	hasPending bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock replaces the wall clock.
func WithClock(clock Clock) Option {
	return func(c *Controller) {
		c.clock = clock
	}
}

// WithScheduler replaces the frame scheduler.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) {
		c.sched = s
	}
}

// OnChange registers a hook that receives a snapshot after every state
// change and every tick.
func OnChange(fn func(Snapshot)) Option {
	return func(c *Controller) {
		c.onChange = fn
	}
}

// OnComplete registers a hook that fires once when playback reaches the end
// of the timeline.
func OnComplete(fn func(Snapshot)) Option {
	return func(c *Controller) {
		c.onComplete = fn
	}
}

// New creates an idle controller for tl.
func New(tl *timeline.Timeline, opts ...Option) *Controller {
	c := &Controller{
		tl: tl,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.clock == nil {
		c.clock = SystemClock{}
	}

	if c.sched == nil {
		c.sched = NewFrameScheduler(DefaultFrameInterval, c.clock)
	}

	if c.tl == nil {
		c.tl = &timeline.Timeline{}
	}

	c.anchor = c.clock.Now()

	return c
}

func (c *Controller) total() time.Duration {
	return c.tl.Total
}

// invalidate cancels the pending tick and bumps the generation so that a
// callback already in flight is discarded when it runs.
func (c *Controller) invalidate() {
	c.gen++

	if c.hasPending {
		c.sched.Cancel(c.pending)
		c.hasPending = false
	}
}

func (c *Controller) scheduleLocked() {
	gen := c.gen

	c.pending = c.sched.Schedule(func(now time.Time) {
		c.onFrame(gen, now)
	})
	c.hasPending = true
}

func (c *Controller) stateLocked() State {
	switch {
	case c.running:
		return Running
	case c.completed || (c.total() > 0 && c.elapsed >= c.total()):
		return Completed
	case c.elapsed == 0:
		return Idle
	default:
		return Paused
	}
}

func (c *Controller) snapshotLocked() Snapshot {
	s := Snapshot{
		State:   c.stateLocked(),
		Elapsed: c.elapsed,
		Total:   c.total(),
		Anchor:  c.anchor,
		Active:  c.tl.ActiveIndex(c.elapsed),
	}

	if s.Active >= 0 {
		s.Remaining = c.tl.Segments[s.Active].End - c.elapsed
		if s.Remaining < 0 {
			s.Remaining = 0
		}
	}

	return s
}

func (c *Controller) unlockAndNotify(completed bool) {
	snap := c.snapshotLocked()
	onChange, onComplete := c.onChange, c.onComplete

	c.mu.Unlock()

	if onChange != nil {
		onChange(snap)
	}

	if completed && onComplete != nil {
		onComplete(snap)
	}
}

// Snapshot returns the current state of the transport.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.snapshotLocked()
}

// Timeline returns the timeline being played.
func (c *Controller) Timeline() *timeline.Timeline {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.tl
}

// Start begins or resumes playback. A completed transport restarts from the
// beginning. Starting an empty timeline does nothing.
func (c *Controller) Start() {
	c.mu.Lock()

	if c.running || c.tl.Len() == 0 {
		c.mu.Unlock()
		return
	}

	if c.elapsed >= c.total() {
		c.elapsed = 0
	}

	c.completed = false
	c.anchor = c.clock.Now().Add(-c.elapsed)
	c.running = true

	c.invalidate()
	c.scheduleLocked()

	c.unlockAndNotify(false)
}

// Pause stops playback and freezes elapsed time at its last computed value.
func (c *Controller) Pause() {
	c.mu.Lock()

	if !c.running {
		c.mu.Unlock()
		return
	}

	c.running = false
	c.invalidate()

	c.unlockAndNotify(false)
}

// Toggle starts a stopped transport or pauses a running one.
func (c *Controller) Toggle() {
	c.mu.Lock()
	running := c.running
	c.mu.Unlock()

	if running {
		c.Pause()
		return
	}

	c.Start()
}

// Reset stops playback and rewinds to the beginning.
func (c *Controller) Reset() {
	c.mu.Lock()

	c.elapsed = 0
	c.running = false
	c.completed = false
	c.anchor = c.clock.Now()
	c.invalidate()

	c.unlockAndNotify(false)
}

// Tick advances elapsed time to now. It is ignored unless the transport is
// running and never moves elapsed time backwards.
func (c *Controller) Tick(now time.Time) {
	c.mu.Lock()

	if !c.running {
		c.mu.Unlock()
		return
	}

	completed := c.tickLocked(now)

	c.unlockAndNotify(completed)
}

func (c *Controller) onFrame(gen uint64, now time.Time) {
	c.mu.Lock()

	if gen != c.gen || !c.running {
		slog.Debug("dropping stale transport tick",
			slog.Uint64("gen", gen),
			slog.Uint64("current_gen", c.gen),
		)
		c.mu.Unlock()

		return
	}

	c.hasPending = false

	completed := c.tickLocked(now)

	c.unlockAndNotify(completed)
}

func (c *Controller) tickLocked(now time.Time) bool {
	elapsed := now.Sub(c.anchor)
	if elapsed < c.elapsed {
		elapsed = c.elapsed
	}

	c.invalidate()

	if elapsed >= c.total() {
		c.elapsed = c.total()
		c.running = false
		c.completed = true

		return true
	}

	c.elapsed = elapsed
	c.scheduleLocked()

	return false
}

// SeekToSegment moves playback to the start of segment i without changing
// whether the transport is running. Out of range indices are ignored.
func (c *Controller) SeekToSegment(i int) {
	c.mu.Lock()

	if i < 0 || i >= c.tl.Len() {
		c.mu.Unlock()
		return
	}

	c.seekLocked(c.tl.Segments[i].Start)

	c.unlockAndNotify(false)
}

func (c *Controller) seekLocked(elapsed time.Duration) {
	c.elapsed = elapsed
	c.completed = false
	c.anchor = c.clock.Now().Add(-elapsed)

	c.invalidate()

	if c.running {
		c.scheduleLocked()
	}
}

// Next seeks to the segment after the active one.
func (c *Controller) Next() {
	c.step(1)
}

// Previous seeks to the nearest earlier segment that starts before the
// active one.
func (c *Controller) Previous() {
	c.step(-1)
}

func (c *Controller) step(delta int) {
	c.mu.Lock()

	n := c.tl.Len()
	if n == 0 {
		c.mu.Unlock()
		return
	}

	active := c.tl.ActiveIndex(c.elapsed)
	target := max(0, min(active+delta, n-1))

	// Zero-width segments share their start with the next segment, so
	// stepping back onto one would leave the playhead where it was.
	if delta < 0 {
		for target > 0 && c.tl.Segments[target].Start >= c.tl.Segments[active].Start {
			target--
		}
	}

	c.seekLocked(c.tl.Segments[target].Start)

	c.unlockAndNotify(false)
}

// Load switches to a different timeline, as when another session is opened.
// The transport is reset and any pending tick is cancelled.
func (c *Controller) Load(tl *timeline.Timeline) {
	c.mu.Lock()

	if tl == nil {
		tl = &timeline.Timeline{}
	}

	c.tl = tl
	c.elapsed = 0
	c.running = false
	c.completed = false
	c.anchor = c.clock.Now()
	c.invalidate()

	c.unlockAndNotify(false)
}

// Retime swaps in a recomputed timeline for the same session, as after a
// reorder. Elapsed time keeps its position along the timeline, clamped to
// the new total, so the item under the playhead may change.
func (c *Controller) Retime(tl *timeline.Timeline) {
	c.mu.Lock()

	if tl == nil {
		tl = &timeline.Timeline{}
	}

	c.tl = tl

	elapsed := min(c.elapsed, tl.Total)

	wasCompleted := c.completed
	c.seekLocked(elapsed)
	c.completed = wasCompleted && !c.running && elapsed >= tl.Total

	c.unlockAndNotify(false)
}
