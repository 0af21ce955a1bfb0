package transport_test

import (
	"sync"
	"testing"
	"time"

	"github.com/ayoisaiah/yogi/timeline"
	"github.com/ayoisaiah/yogi/transport"
)

var t0 = time.Date(2024, time.March, 1, 13, 0, 0, 0, time.UTC)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) time.Time {
	f.now = f.now.Add(d)
	return f.now
}

// manualScheduler records callbacks so tests decide when frames fire.
type manualScheduler struct {
	callbacks map[transport.Handle]func(time.Time)
	all       map[transport.Handle]func(time.Time)
	next      transport.Handle
	mu        sync.Mutex
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{
		callbacks: make(map[transport.Handle]func(time.Time)),
		all:       make(map[transport.Handle]func(time.Time)),
	}
}

func (m *manualScheduler) Schedule(fn func(time.Time)) transport.Handle {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.next++
	m.callbacks[m.next] = fn
	m.all[m.next] = fn

	return m.next
}

func (m *manualScheduler) Cancel(h transport.Handle) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.callbacks, h)
}

func (m *manualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.callbacks)
}

// Fire runs every live callback.
func (m *manualScheduler) Fire(now time.Time) {
	m.mu.Lock()
	fns := make([]func(time.Time), 0, len(m.callbacks))
	for h, fn := range m.callbacks {
		fns = append(fns, fn)
		delete(m.callbacks, h)
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn(now)
	}
}

// FireHandle runs a callback even if it was cancelled, simulating a frame
// that was already in flight when the transport changed.
func (m *manualScheduler) FireHandle(h transport.Handle, now time.Time) {
	m.mu.Lock()
	fn := m.all[h]
	m.mu.Unlock()

	fn(now)
}

func (m *manualScheduler) Last() transport.Handle {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.next
}

func makeTimeline(durations ...time.Duration) *timeline.Timeline {
	tl := &timeline.Timeline{}

	var offset time.Duration

	for i, d := range durations {
		tl.Segments = append(tl.Segments, timeline.Segment{
			UniqueIndex: i,
			Position:    i,
			Start:       offset,
			End:         offset + d,
			Duration:    d,
		})
		tl.Entries = append(tl.Entries, timeline.Entry{
			Position: i,
			Segment:  i,
			Resolved: true,
		})

		offset += d
	}

	tl.Total = offset

	return tl
}

func setup(
	tl *timeline.Timeline,
	opts ...transport.Option,
) (*transport.Controller, *fakeClock, *manualScheduler) {
	clock := &fakeClock{now: t0}
	sched := newManualScheduler()

	opts = append(opts, transport.WithClock(clock), transport.WithScheduler(sched))

	return transport.New(tl, opts...), clock, sched
}

func TestTickThenPauseIgnoresLateTicks(t *testing.T) {
	ctl, _, _ := setup(makeTimeline(4*time.Second, 6*time.Second))

	ctl.Start()
	ctl.Tick(t0.Add(4000 * time.Millisecond))

	if got := ctl.Snapshot().Elapsed; got != 4000*time.Millisecond {
		t.Fatalf("expected 4000ms elapsed, but got: %v", got)
	}

	ctl.Pause()

	ctl.Tick(t0.Add(5000 * time.Millisecond))
	ctl.Tick(t0.Add(9000 * time.Millisecond))

	snap := ctl.Snapshot()
	if snap.Elapsed != 4000*time.Millisecond {
		t.Errorf("expected elapsed to stay at 4000ms, but got: %v", snap.Elapsed)
	}

	if snap.State != transport.Paused {
		t.Errorf("expected paused, but got: %s", snap.State)
	}
}

func TestStaleFrameIsDropped(t *testing.T) {
	testCases := []struct {
		Name string
		Stop func(*transport.Controller)
		Want time.Duration
	}{
		{Name: "pause", Stop: (*transport.Controller).Pause, Want: 2 * time.Second},
		{Name: "reset", Stop: (*transport.Controller).Reset, Want: 0},
		{
			Name: "seek",
			Stop: func(c *transport.Controller) {
				c.Pause()
				c.SeekToSegment(1)
			},
			Want: 4 * time.Second,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			ctl, clock, sched := setup(makeTimeline(4*time.Second, 6*time.Second))

			ctl.Start()
			sched.Fire(clock.Advance(2 * time.Second))

			inFlight := sched.Last()

			tc.Stop(ctl)

			if sched.Pending() != 0 {
				t.Errorf("expected pending ticks to be cancelled, got: %d", sched.Pending())
			}

			sched.FireHandle(inFlight, clock.Advance(3*time.Second))

			snap := ctl.Snapshot()
			if snap.Elapsed != tc.Want {
				t.Errorf("expected elapsed %v, but got: %v", tc.Want, snap.Elapsed)
			}

			if snap.State == transport.Running {
				t.Error("a stale frame must not resume playback")
			}
		})
	}
}

func TestCompletionClampAndRestart(t *testing.T) {
	var completions int

	ctl, clock, sched := setup(
		makeTimeline(4*time.Second, 6*time.Second),
		transport.OnComplete(func(transport.Snapshot) {
			completions++
		}),
	)

	ctl.Start()
	sched.Fire(clock.Advance(9 * time.Second))
	sched.Fire(clock.Advance(5 * time.Second))

	snap := ctl.Snapshot()
	if snap.Elapsed != 10*time.Second {
		t.Errorf("expected elapsed to clamp at 10s, but got: %v", snap.Elapsed)
	}

	if snap.State != transport.Completed {
		t.Errorf("expected completed, but got: %s", snap.State)
	}

	if sched.Pending() != 0 {
		t.Errorf("expected no pending ticks after completion")
	}

	if completions != 1 {
		t.Errorf("expected one completion, but got: %d", completions)
	}

	ctl.Start()

	snap = ctl.Snapshot()
	if snap.Elapsed != 0 || snap.State != transport.Running {
		t.Errorf("expected a restart from 0, got: %+v", snap)
	}

	sched.Fire(clock.Advance(time.Second))

	if got := ctl.Snapshot().Elapsed; got != time.Second {
		t.Errorf("expected 1s after restart, but got: %v", got)
	}
}

func TestTicksAreMonotonic(t *testing.T) {
	ctl, _, _ := setup(makeTimeline(3*time.Second, 3*time.Second))

	ctl.Start()

	offsets := []time.Duration{
		100 * time.Millisecond,
		1700 * time.Millisecond,
		1200 * time.Millisecond, // out of order
		2500 * time.Millisecond,
		5999 * time.Millisecond,
		8 * time.Second,
		12 * time.Second,
	}

	var prev time.Duration

	for _, off := range offsets {
		ctl.Tick(t0.Add(off))

		snap := ctl.Snapshot()
		if snap.Elapsed < prev {
			t.Fatalf("elapsed went backwards: %v -> %v", prev, snap.Elapsed)
		}

		if snap.Elapsed > snap.Total {
			t.Fatalf("elapsed %v exceeds total %v", snap.Elapsed, snap.Total)
		}

		prev = snap.Elapsed
	}

	if ctl.Snapshot().State != transport.Completed {
		t.Errorf("expected completion once the total was reached")
	}
}

func TestAnchorAbsorbsIrregularFrames(t *testing.T) {
	ctl, clock, sched := setup(makeTimeline(time.Minute))

	ctl.Start()

	for _, d := range []time.Duration{16, 33, 7, 50, 16, 120} {
		sched.Fire(clock.Advance(d * time.Millisecond))
	}

	if got := ctl.Snapshot().Elapsed; got != 242*time.Millisecond {
		t.Errorf("expected elapsed to equal wall time of 242ms, got: %v", got)
	}
}

func TestSeekKeepsRunningState(t *testing.T) {
	ctl, clock, sched := setup(makeTimeline(4*time.Second, 6*time.Second, 5*time.Second))

	ctl.Start()
	sched.Fire(clock.Advance(time.Second))

	ctl.SeekToSegment(2)

	snap := ctl.Snapshot()
	if snap.State != transport.Running || snap.Elapsed != 10*time.Second {
		t.Fatalf("expected to keep running from 10s, got: %+v", snap)
	}

	sched.Fire(clock.Advance(2 * time.Second))

	if got := ctl.Snapshot().Elapsed; got != 12*time.Second {
		t.Errorf("expected 12s, but got: %v", got)
	}

	ctl.Pause()
	ctl.SeekToSegment(1)

	snap = ctl.Snapshot()
	if snap.State != transport.Paused || snap.Elapsed != 4*time.Second {
		t.Errorf("expected to stay paused at 4s, got: %+v", snap)
	}

	if sched.Pending() != 0 {
		t.Errorf("a paused seek must not schedule ticks")
	}

	ctl.SeekToSegment(7)

	if got := ctl.Snapshot().Elapsed; got != 4*time.Second {
		t.Errorf("out of range seek must be ignored, got: %v", got)
	}
}

func TestNextPrevious(t *testing.T) {
	ctl, clock, sched := setup(makeTimeline(4*time.Second, 6*time.Second, 5*time.Second))

	ctl.Previous()

	if got := ctl.Snapshot().Active; got != 0 {
		t.Errorf("previous on the first segment must clamp, got: %d", got)
	}

	ctl.Next()
	ctl.Next()
	ctl.Next()

	snap := ctl.Snapshot()
	if snap.Active != 2 || snap.Elapsed != 10*time.Second {
		t.Errorf("expected to clamp at the last segment, got: %+v", snap)
	}

	ctl.Start()
	sched.Fire(clock.Advance(10 * time.Second))

	if ctl.Snapshot().State != transport.Completed {
		t.Fatal("expected completion")
	}

	ctl.Previous()

	snap = ctl.Snapshot()
	if snap.Active != 1 || snap.Elapsed != 4*time.Second {
		t.Errorf("previous from the end should land on segment 1, got: %+v", snap)
	}
}

func TestPreviousSkipsZeroWidthSegments(t *testing.T) {
	ctl, _, _ := setup(makeTimeline(5*time.Minute, 0, 3*time.Minute))

	ctl.SeekToSegment(2)

	snap := ctl.Snapshot()
	if snap.Active != 2 || snap.Elapsed != 5*time.Minute {
		t.Fatalf("expected segment 2 at 5m, got: %+v", snap)
	}

	ctl.Previous()

	snap = ctl.Snapshot()
	if snap.Active != 0 || snap.Elapsed != 0 {
		t.Errorf("previous should reach segment 0, got: %+v", snap)
	}

	ctl.Next()

	snap = ctl.Snapshot()
	if snap.Active != 2 || snap.Elapsed != 5*time.Minute {
		t.Errorf("next should land on segment 2, got: %+v", snap)
	}
}

func TestResetThenStart(t *testing.T) {
	ctl, clock, sched := setup(makeTimeline(10 * time.Second))

	ctl.Start()
	sched.Fire(clock.Advance(3 * time.Second))

	clock.Advance(time.Second)
	ctl.Reset()
	ctl.Start()

	sched.Fire(clock.Advance(500 * time.Millisecond))

	if got := ctl.Snapshot().Elapsed; got != 500*time.Millisecond {
		t.Errorf("expected 500ms after reset and start, but got: %v", got)
	}
}

func TestLoadResets(t *testing.T) {
	ctl, clock, sched := setup(makeTimeline(10 * time.Second))

	ctl.Start()
	sched.Fire(clock.Advance(3 * time.Second))

	ctl.Load(makeTimeline(time.Second, time.Second))

	snap := ctl.Snapshot()
	if snap.State != transport.Idle || snap.Elapsed != 0 || snap.Total != 2*time.Second {
		t.Errorf("expected an idle transport on the new timeline, got: %+v", snap)
	}

	if sched.Pending() != 0 {
		t.Errorf("expected session change to cancel pending ticks")
	}
}

func TestRetimeKeepsPosition(t *testing.T) {
	ctl, clock, sched := setup(makeTimeline(4*time.Second, 6*time.Second))

	ctl.Start()
	sched.Fire(clock.Advance(5 * time.Second))

	if ctl.Snapshot().Active != 1 {
		t.Fatal("expected the second segment to be active")
	}

	// same cards, swapped order
	ctl.Retime(makeTimeline(6*time.Second, 4*time.Second))

	snap := ctl.Snapshot()
	if snap.Elapsed != 5*time.Second || snap.Active != 0 {
		t.Errorf("expected position to be preserved, got: %+v", snap)
	}

	if snap.State != transport.Running {
		t.Errorf("expected playback to continue, got: %s", snap.State)
	}

	ctl.Retime(makeTimeline(2 * time.Second))

	snap = ctl.Snapshot()
	if snap.Elapsed != 2*time.Second {
		t.Errorf("expected elapsed to clamp to the new total, got: %v", snap.Elapsed)
	}

	sched.Fire(clock.Advance(time.Millisecond))

	if ctl.Snapshot().State != transport.Completed {
		t.Errorf("expected completion on the next frame")
	}
}

func TestStartEmptyTimeline(t *testing.T) {
	ctl, _, sched := setup(makeTimeline())

	ctl.Start()

	if ctl.Snapshot().State != transport.Idle || sched.Pending() != 0 {
		t.Errorf("starting an empty timeline must be a no-op")
	}

	ctl.Next()
	ctl.Previous()
}

func TestZeroLengthTimelineCompletes(t *testing.T) {
	ctl, clock, sched := setup(makeTimeline(0, 0))

	ctl.Start()
	sched.Fire(clock.Advance(time.Millisecond))

	snap := ctl.Snapshot()
	if snap.State != transport.Completed || snap.Progress() != 1 {
		t.Errorf("expected a zero length timeline to complete, got: %+v", snap)
	}
}

func TestFollowerReportsActiveChanges(t *testing.T) {
	ctl, clock, sched := setup(makeTimeline(2*time.Second, 2*time.Second))

	var changes [][2]int

	f := transport.NewFollower(ctl, 0, func(prev int, snap transport.Snapshot) {
		changes = append(changes, [2]int{prev, snap.Active})
	})

	if f.Interval() != transport.DefaultFollowInterval {
		t.Errorf("expected the default interval, got: %v", f.Interval())
	}

	f.Poll()

	ctl.Start()
	sched.Fire(clock.Advance(time.Second))

	if f.Poll() {
		t.Error("expected no change within the first segment")
	}

	sched.Fire(clock.Advance(1500 * time.Millisecond))
	f.Poll()

	want := [][2]int{{-1, 0}, {0, 1}}
	if len(changes) != len(want) || changes[0] != want[0] || changes[1] != want[1] {
		t.Errorf("expected changes %v, but got: %v", want, changes)
	}
}

func TestFollowerIntervalClamp(t *testing.T) {
	ctl, _, _ := setup(makeTimeline(time.Second))

	if got := transport.NewFollower(ctl, time.Millisecond, nil).Interval(); got != transport.MinFollowInterval {
		t.Errorf("expected clamp to the minimum, got: %v", got)
	}

	if got := transport.NewFollower(ctl, time.Minute, nil).Interval(); got != transport.MaxFollowInterval {
		t.Errorf("expected clamp to the maximum, got: %v", got)
	}
}

func TestFrameSchedulerCancel(t *testing.T) {
	s := transport.NewFrameScheduler(5*time.Millisecond, nil)

	fired := make(chan time.Time, 2)

	h := s.Schedule(func(now time.Time) {
		fired <- now
	})
	s.Cancel(h)

	s.Schedule(func(now time.Time) {
		fired <- now
	})

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("expected the live callback to fire")
	}

	select {
	case <-fired:
		t.Fatal("a cancelled callback must not fire")
	case <-time.After(50 * time.Millisecond):
	}

	if s.Pending() != 0 {
		t.Errorf("expected no pending callbacks, got: %d", s.Pending())
	}
}

func TestControllerWithFrameScheduler(t *testing.T) {
	done := make(chan transport.Snapshot, 1)

	ctl := transport.New(
		makeTimeline(30*time.Millisecond),
		transport.WithScheduler(transport.NewFrameScheduler(2*time.Millisecond, nil)),
		transport.OnComplete(func(s transport.Snapshot) {
			done <- s
		}),
	)

	ctl.Start()

	select {
	case snap := <-done:
		if snap.Elapsed != 30*time.Millisecond {
			t.Errorf("expected elapsed to clamp at the total, got: %v", snap.Elapsed)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("transport did not complete")
	}
}
