// Package player is the interactive session player: it renders the timeline,
// drives the transport and applies reorders made with the keyboard or mouse
package player

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/maruel/natural"

	"github.com/ayoisaiah/yogi/card"
	"github.com/ayoisaiah/yogi/internal/config"
	"github.com/ayoisaiah/yogi/internal/models"
	"github.com/ayoisaiah/yogi/internal/ui"
	"github.com/ayoisaiah/yogi/reorder"
	"github.com/ayoisaiah/yogi/store"
	"github.com/ayoisaiah/yogi/timeline"
	"github.com/ayoisaiah/yogi/transport"
)

const (
	// repaintInterval is how often the view refreshes while playing.
	repaintInterval = 100 * time.Millisecond
	maxWidth        = 80
	padding         = 2
)

// DefaultSessionTitle names the transient session holding every exercise.
const DefaultSessionTitle = "All exercises"

// SessionOrder returns the title and card order of sess. A nil sess is the
// default session: every exercise in stored order.
func SessionOrder(repos *store.Repos, sess *models.Session) (string, []string) {
	if sess != nil {
		return sess.Title, sess.Exercises
	}

	exercises := repos.Exercises.List()
	order := make([]string, 0, len(exercises))

	for i := range exercises {
		order = append(order, exercises[i].ID)
	}

	return DefaultSessionTitle, order
}

type (
	repaintMsg  time.Time
	completeMsg transport.Snapshot
	cmdDoneMsg  struct{ err error }
	segmentMsg  struct {
		snap transport.Snapshot
		prev int
	}
)

// Options configures a Player.
type Options struct {
	Config *config.Config
	Repos  *store.Repos
	// Session is the stored session to play. A nil session plays every
	// exercise in a transient session.
	Session   *models.Session
	Bell      Bell
	Notify    Notifier
	Clock     transport.Clock
	Scheduler transport.Scheduler
}

// Player is the bubbletea model of the session player.
type Player struct {
	ctx      context.Context
	cancel   context.CancelFunc
	now      func() time.Time
	cfg      *config.Config
	index    card.Index
	engine   *reorder.Engine
	drag     *reorder.Drag
	touch    *reorder.Touch
	ctl      *transport.Controller
	follower *transport.Follower
	bell     Bell
	notify   Notifier
	events   chan tea.Msg
	style    ui.Style
	title    string
	palette  []card.Item
	help     help.Model
	session  progress.Model
	item     progress.Model
	cursor   int
	offset   int
	pcursor  int
	poffset  int
	width    int
	height   int
	// pressRow is the timeline row a mouse press started on, or -1
	pressRow     int
	lastErr      error
	focusPalette bool
	follow       bool
}

// New prepares a player for a stored session or, when opts.Session is nil,
// for the transient default session.
func New(opts Options) (*Player, error) {
	cfg := opts.Config

	p := &Player{
		cfg:      cfg,
		index:    opts.Repos.Index(),
		bell:     opts.Bell,
		notify:   opts.Notify,
		events:   make(chan tea.Msg, 16),
		style:    ui.NewStyle(cfg.Display.DarkTheme),
		help:     help.New(),
		session:  progress.New(progress.WithDefaultGradient()),
		item:     progress.New(progress.WithSolidFill("#12EAEA")),
		pressRow: -1,
		follow:   true,
		now:      time.Now,
	}

	if p.bell == nil {
		p.bell = silentBell{}
	}

	if p.notify == nil {
		p.notify = desktopNotify
	}

	clock := opts.Clock
	if clock == nil {
		clock = transport.SystemClock{}
	} else {
		p.now = clock.Now
	}

	p.ctx, p.cancel = context.WithCancel(context.Background())

	engineOpts := []reorder.EngineOption{
		reorder.OnOrderChange(p.retime),
	}

	var order []string

	p.title, order = SessionOrder(opts.Repos, opts.Session)

	if opts.Session != nil {
		engineOpts = append(engineOpts,
			reorder.WithPersister(opts.Session.ID, opts.Repos.Sessions),
		)
	}

	tl, err := p.build(order)
	if err != nil {
		return nil, err
	}

	p.engine = reorder.NewEngine(order, engineOpts...)
	p.drag = reorder.NewDrag(p.engine)
	p.touch = reorder.NewTouch(
		p.engine,
		reorder.WithLongPress(cfg.Player.LongPress),
	)

	scheduler := opts.Scheduler
	if scheduler == nil {
		scheduler = transport.NewFrameScheduler(cfg.Player.FrameInterval, clock)
	}

	p.ctl = transport.New(tl,
		transport.WithClock(clock),
		transport.WithScheduler(scheduler),
		transport.OnComplete(func(snap transport.Snapshot) {
			p.send(completeMsg(snap))
		}),
	)

	p.follower = transport.NewFollower(
		p.ctl,
		cfg.Player.FollowInterval,
		func(prev int, snap transport.Snapshot) {
			p.send(segmentMsg{prev: prev, snap: snap})
		},
	)

	p.palette = paletteItems(p.index)

	return p, nil
}

// paletteItems lists every card in natural id order, stories and
// practicals first.
func paletteItems(idx card.Index) []card.Item {
	items := make([]card.Item, 0, len(idx))
	for _, item := range idx {
		items = append(items, item)
	}

	rank := map[card.Kind]int{card.Story: 0, card.Practical: 1, card.Exercise: 2}

	slices.SortFunc(items, func(a, b card.Item) int {
		if rank[a.Kind] != rank[b.Kind] {
			return rank[a.Kind] - rank[b.Kind]
		}

		if natural.Less(a.ID(), b.ID()) {
			return -1
		}

		if natural.Less(b.ID(), a.ID()) {
			return 1
		}

		return 0
	})

	return items
}

func (p *Player) build(order []string) (*timeline.Timeline, error) {
	return timeline.Build(
		order,
		p.index,
		timeline.WithStartTime(p.cfg.Player.StartTime),
	)
}

// retime rebuilds the timeline after a reorder. Playback keeps its position
// along the timeline.
func (p *Player) retime(order []string) {
	tl, err := p.build(order)
	if err != nil {
		slog.Error("rebuilding timeline failed", slog.Any("error", err))
		return
	}

	p.ctl.Retime(tl)

	p.cursor = min(p.cursor, max(0, len(tl.Entries)-1))
}

// send delivers msg to the program without blocking the caller. Messages
// are dropped when the queue is full; the follower reports again on its
// next change.
func (p *Player) send(msg tea.Msg) {
	select {
	case p.events <- msg:
	default:
		slog.Debug("player event dropped")
	}
}

func (p *Player) listen() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-p.events:
			return msg
		case <-p.ctx.Done():
			return nil
		}
	}
}

func repaint() tea.Cmd {
	return tea.Tick(repaintInterval, func(t time.Time) tea.Msg {
		return repaintMsg(t)
	})
}

// Controller exposes the transport, mainly for tests and the CLI.
func (p *Player) Controller() *transport.Controller {
	return p.ctl
}

// Order returns the current card order.
func (p *Player) Order() []string {
	return p.engine.Order()
}

// Close stops playback and the follower.
func (p *Player) Close() {
	p.ctl.Pause()
	p.cancel()
}

func (p *Player) Init() tea.Cmd {
	go p.follower.Run(p.ctx)

	return tea.Batch(p.listen(), repaint())
}

// Run starts the player in the alternate screen with mouse support.
func (p *Player) Run() error {
	if p.engine.Len() == 0 {
		return errNoCards
	}

	defer p.Close()

	_, err := tea.NewProgram(
		p,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	).Run()

	return err
}
