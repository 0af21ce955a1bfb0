package player

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/ayoisaiah/yogi/internal/config"
	"github.com/ayoisaiah/yogi/internal/models"
	"github.com/ayoisaiah/yogi/store"
	"github.com/ayoisaiah/yogi/transport"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// idleScheduler never fires; tests drive the controller with Tick.
type idleScheduler struct{}

func (idleScheduler) Schedule(func(time.Time)) transport.Handle {
	return 1
}

func (idleScheduler) Cancel(transport.Handle) {}

type countingBell struct {
	rings int
}

func (b *countingBell) Ring() {
	b.rings++
}

type fixture struct {
	player  *Player
	repos   *store.Repos
	clock   *fakeClock
	bell    *countingBell
	session models.Session
	notes   []string
}

func testConfig() *config.Config {
	return &config.Config{
		Player: config.PlayerConfig{
			FrameInterval:  16 * time.Millisecond,
			FollowInterval: 250 * time.Millisecond,
			LongPress:      200 * time.Millisecond,
		},
		Notifications: config.NotificationConfig{Enabled: true},
	}
}

func seed(t *testing.T) *store.Repos {
	t.Helper()

	repos := store.New(store.NewMemoryKV())

	for _, e := range []models.Exercise{
		{Title: "Mountain pose", Description: "Stand tall", DurationMinutes: 5},
		{Title: "Tree pose", Description: "Balance", DurationMinutes: 4},
	} {
		if _, err := repos.Exercises.Create(e); err != nil {
			t.Fatal(err)
		}
	}

	_, err := repos.Stories.Create(models.Story{
		Title:   "The river",
		Content: "Water finds its way",
		Time:    1,
	})
	if err != nil {
		t.Fatal(err)
	}

	return repos
}

func setup(t *testing.T) *fixture {
	t.Helper()

	repos := seed(t)

	sess, err := repos.Sessions.Create(models.Session{
		Title:     "Morning flow",
		Exercises: []string{"1", "story-1", "2", "practical-9"},
	})
	if err != nil {
		t.Fatal(err)
	}

	f := &fixture{
		repos:   repos,
		session: sess,
		clock:   &fakeClock{now: time.Date(2024, 5, 1, 7, 0, 0, 0, time.UTC)},
		bell:    &countingBell{},
	}

	f.player, err = New(Options{
		Config:    testConfig(),
		Repos:     repos,
		Session:   &sess,
		Bell:      f.bell,
		Clock:     f.clock,
		Scheduler: idleScheduler{},
		Notify: func(title, msg string) error {
			f.notes = append(f.notes, title)
			return nil
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(f.player.Close)

	return f
}

func press(p *Player, k string) {
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}

	switch k {
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(k)}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	}

	p.Update(msg)
}

func click(p *Player, action tea.MouseAction, y int) {
	p.Update(tea.MouseMsg{
		X:      4,
		Y:      y,
		Action: action,
		Button: tea.MouseButtonLeft,
	})
}

// drain feeds queued follower and transport events back into the model.
func drain(p *Player) {
	for {
		select {
		case msg := <-p.events:
			p.Update(msg)
		default:
			return
		}
	}
}

func TestViewShowsMissingPlaceholder(t *testing.T) {
	f := setup(t)

	view := f.player.View()

	for _, want := range []string{
		"Morning flow",
		"Mountain pose",
		"The river",
		"missing practical: practical-9",
		"[Ready]",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestKeyboardReorderPersists(t *testing.T) {
	f := setup(t)

	press(f.player, "J")

	want := []string{"story-1", "1", "2", "practical-9"}

	if diff := cmp.Diff(want, f.player.Order()); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}

	if f.player.cursor != 1 {
		t.Errorf("expected cursor to follow the card to 1, but got: %d", f.player.cursor)
	}

	stored, err := f.repos.Sessions.Get(f.session.ID)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(want, stored.Exercises); diff != "" {
		t.Errorf("stored order mismatch (-want +got):\n%s", diff)
	}
}

func TestReorderKeepsPlaybackPosition(t *testing.T) {
	f := setup(t)
	ctl := f.player.Controller()

	press(f.player, " ")

	f.clock.Advance(7 * time.Minute)
	ctl.Tick(f.clock.Now())

	if got := ctl.Snapshot().Active; got != 2 {
		t.Fatalf("expected Tree pose to be active, but got segment %d", got)
	}

	// move Tree pose to the top
	press(f.player, "j")
	press(f.player, "j")
	press(f.player, "K")
	press(f.player, "K")

	want := []string{"2", "1", "story-1", "practical-9"}
	if diff := cmp.Diff(want, f.player.Order()); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}

	snap := ctl.Snapshot()

	if snap.Elapsed != 7*time.Minute {
		t.Errorf("expected elapsed to stay at 7m, but got: %v", snap.Elapsed)
	}

	// Tree pose now covers [0, 4m) so 7m falls in Mountain pose
	if snap.Active != 1 {
		t.Errorf("expected segment 1 to be active, but got: %d", snap.Active)
	}

	if snap.State != transport.Running {
		t.Errorf("expected playback to keep running, but got: %s", snap.State)
	}
}

func TestFollowerRingsBellAndScrolls(t *testing.T) {
	f := setup(t)
	ctl := f.player.Controller()

	f.player.follower.Poll()
	drain(f.player)

	if f.bell.rings != 0 {
		t.Fatalf("the first poll must not ring, got %d rings", f.bell.rings)
	}

	press(f.player, " ")

	f.clock.Advance(5*time.Minute + time.Second)
	ctl.Tick(f.clock.Now())

	f.player.follower.Poll()
	drain(f.player)

	if f.bell.rings != 1 {
		t.Errorf("expected one ring, but got: %d", f.bell.rings)
	}

	if f.player.cursor != 1 {
		t.Errorf("expected the cursor on the story (1), but got: %d", f.player.cursor)
	}
}

func TestCompletionNotifies(t *testing.T) {
	f := setup(t)
	ctl := f.player.Controller()

	press(f.player, " ")

	f.clock.Advance(time.Hour)
	ctl.Tick(f.clock.Now())

	if ctl.Snapshot().State != transport.Completed {
		t.Fatalf("expected completed state, but got: %s", ctl.Snapshot().State)
	}

	select {
	case msg := <-f.player.events:
		if _, ok := msg.(completeMsg); !ok {
			t.Fatalf("expected a completeMsg, but got: %T", msg)
		}
	default:
		t.Fatal("expected a completion event")
	}

	done := f.player.finish()()

	if msg, ok := done.(cmdDoneMsg); !ok || msg.err != nil {
		t.Errorf("unexpected result: %#v", done)
	}

	if diff := cmp.Diff([]string{"Morning flow is finished"}, f.notes); diff != "" {
		t.Errorf("notification mismatch (-want +got):\n%s", diff)
	}
}

func TestSeekAndSkip(t *testing.T) {
	f := setup(t)
	ctl := f.player.Controller()

	press(f.player, "j")
	press(f.player, "j")
	press(f.player, "enter")

	if got := ctl.Snapshot().Elapsed; got != 6*time.Minute {
		t.Errorf("expected seek to Tree pose at 6m, but got: %v", got)
	}

	press(f.player, "p")

	if got := ctl.Snapshot().Active; got != 1 {
		t.Errorf("expected previous to land on the story, but got: %d", got)
	}

	press(f.player, "r")

	if got := ctl.Snapshot(); got.Elapsed != 0 || got.State != transport.Idle {
		t.Errorf("expected reset, but got: %+v", got)
	}
}

func TestMouseDragReorders(t *testing.T) {
	f := setup(t)

	click(f.player, tea.MouseActionPress, headerLines)
	click(f.player, tea.MouseActionMotion, headerLines+1)
	click(f.player, tea.MouseActionMotion, headerLines+2)
	click(f.player, tea.MouseActionRelease, headerLines+2)

	want := []string{"story-1", "2", "1", "practical-9"}

	if diff := cmp.Diff(want, f.player.Order()); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestMouseClickWithoutMoveSelects(t *testing.T) {
	f := setup(t)

	click(f.player, tea.MouseActionPress, headerLines+3)
	click(f.player, tea.MouseActionRelease, headerLines+3)

	if f.player.cursor != 3 {
		t.Errorf("expected cursor 3, but got: %d", f.player.cursor)
	}

	if diff := cmp.Diff(f.session.Exercises, f.player.Order()); diff != "" {
		t.Errorf("a click must not reorder (-want +got):\n%s", diff)
	}
}

func TestPaletteTapAppends(t *testing.T) {
	f := setup(t)

	top := f.player.paletteTop()

	// palette order: story-1, 1, 2
	click(f.player, tea.MouseActionPress, top)
	click(f.player, tea.MouseActionRelease, top)

	want := []string{"1", "story-1", "2", "practical-9", "story-1"}

	if diff := cmp.Diff(want, f.player.Order()); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestPaletteLongPressInserts(t *testing.T) {
	f := setup(t)

	top := f.player.paletteTop()

	// press exercise 2
	click(f.player, tea.MouseActionPress, top+2)
	f.clock.Advance(300 * time.Millisecond)
	click(f.player, tea.MouseActionMotion, headerLines+1)
	click(f.player, tea.MouseActionRelease, headerLines+1)

	want := []string{"1", "2", "story-1", "2", "practical-9"}

	if diff := cmp.Diff(want, f.player.Order()); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestPaletteKeys(t *testing.T) {
	f := setup(t)

	press(f.player, "tab")
	press(f.player, "j")
	press(f.player, "a")

	want := []string{"1", "story-1", "2", "practical-9", "1"}

	if diff := cmp.Diff(want, f.player.Order()); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestRemoveCard(t *testing.T) {
	f := setup(t)

	press(f.player, "x")

	want := []string{"story-1", "2", "practical-9"}

	if diff := cmp.Diff(want, f.player.Order()); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}

	if got := f.player.Controller().Timeline().Total; got != 5*time.Minute {
		t.Errorf("expected total of 5m, but got: %v", got)
	}
}

func TestDefaultSession(t *testing.T) {
	repos := seed(t)

	p, err := New(Options{
		Config:    testConfig(),
		Repos:     repos,
		Scheduler: idleScheduler{},
		Clock:     &fakeClock{now: time.Now()},
	})
	if err != nil {
		t.Fatal(err)
	}

	defer p.Close()

	if p.title != DefaultSessionTitle {
		t.Errorf("expected title %q, but got: %q", DefaultSessionTitle, p.title)
	}

	if diff := cmp.Diff([]string{"1", "2"}, p.Order()); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}

	press(p, "J")

	if !p.engine.Transient() {
		t.Error("expected the default session to be transient")
	}

	if len(repos.Sessions.List()) != 0 {
		t.Error("the default session must not be stored")
	}
}

func TestSessionOrder(t *testing.T) {
	repos := seed(t)

	title, order := SessionOrder(repos, nil)
	if title != DefaultSessionTitle {
		t.Errorf("expected title %q, but got: %q", DefaultSessionTitle, title)
	}

	if diff := cmp.Diff([]string{"1", "2"}, order); diff != "" {
		t.Errorf("default order mismatch (-want +got):\n%s", diff)
	}

	sess := &models.Session{
		Title:     "Evening",
		Exercises: []string{"story-1", "2"},
	}

	title, order = SessionOrder(repos, sess)
	if title != "Evening" {
		t.Errorf("expected title %q, but got: %q", "Evening", title)
	}

	if diff := cmp.Diff(sess.Exercises, order); diff != "" {
		t.Errorf("session order mismatch (-want +got):\n%s", diff)
	}
}

func TestQuit(t *testing.T) {
	f := setup(t)
	ctl := f.player.Controller()

	press(f.player, " ")

	f.clock.Advance(time.Minute)
	ctl.Tick(f.clock.Now())

	_, cmd := f.player.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}

	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}

	if got := ctl.Snapshot().State; got != transport.Paused {
		t.Errorf("expected playback to pause on quit, but got: %s", got)
	}
}
