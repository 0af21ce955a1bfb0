package player

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/yogi/reorder"
	"github.com/ayoisaiah/yogi/transport"
)

const (
	// headerLines is the number of lines rendered above the first row.
	headerLines = 6
	// footerLines covers the palette heading and the help line.
	footerLines    = 4
	maxPaletteRows = 5
	minVisibleRows = 3
)

func (p *Player) visibleRows() int {
	n := len(p.ctl.Timeline().Entries)
	if p.height == 0 {
		return n
	}

	avail := p.height - headerLines - p.visiblePaletteRows() - footerLines

	return min(n, max(minVisibleRows, avail))
}

func (p *Player) visiblePaletteRows() int {
	return min(len(p.palette), maxPaletteRows)
}

func (p *Player) rowWidth() float64 {
	return float64(max(p.width, maxWidth))
}

// rowBounds returns the screen area of every entry of the timeline. Rows
// scrolled out of view get an empty rectangle.
func (p *Player) rowBounds() []reorder.Rect {
	bounds := make([]reorder.Rect, len(p.ctl.Timeline().Entries))

	for k := range p.visibleRows() {
		i := p.offset + k
		if i >= len(bounds) {
			break
		}

		bounds[i] = reorder.Rect{
			Y: float64(headerLines + k),
			W: p.rowWidth(),
			H: 1,
		}
	}

	return bounds
}

func (p *Player) paletteTop() int {
	top := headerLines + p.visibleRows() + 2

	// the empty session hint takes the place of the rows
	if len(p.ctl.Timeline().Entries) == 0 {
		top++
	}

	return top
}

func (p *Player) paletteBounds() []reorder.Rect {
	bounds := make([]reorder.Rect, len(p.palette))
	top := p.paletteTop()

	for k := range p.visiblePaletteRows() {
		i := p.poffset + k
		if i >= len(bounds) {
			break
		}

		bounds[i] = reorder.Rect{
			Y: float64(top + k),
			W: p.rowWidth(),
			H: 1,
		}
	}

	return bounds
}

// scroll keeps the cursors inside their visible windows.
func (p *Player) scroll() {
	rows := p.visibleRows()
	if rows > 0 {
		if p.cursor < p.offset {
			p.offset = p.cursor
		} else if p.cursor >= p.offset+rows {
			p.offset = p.cursor - rows + 1
		}
	}

	prows := p.visiblePaletteRows()
	if prows > 0 {
		if p.pcursor < p.poffset {
			p.poffset = p.pcursor
		} else if p.pcursor >= p.poffset+prows {
			p.poffset = p.pcursor - prows + 1
		}
	}
}

func (p *Player) moveCursor(delta int) {
	if p.focusPalette {
		p.pcursor = max(0, min(p.pcursor+delta, len(p.palette)-1))
	} else {
		p.follow = false
		p.cursor = max(0, min(p.cursor+delta, p.engine.Len()-1))
	}

	p.scroll()
}

// followActive moves the cursor to the row of the active segment.
func (p *Player) followActive(snap transport.Snapshot) {
	tl := p.ctl.Timeline()

	if !p.follow || snap.Active < 0 || snap.Active >= len(tl.Segments) {
		return
	}

	p.cursor = tl.Segments[snap.Active].Position
	p.scroll()
}

// seekCursor jumps playback to the card under the cursor. Unresolved cards
// have no segment and are skipped.
func (p *Player) seekCursor() {
	entries := p.ctl.Timeline().Entries
	if p.cursor < 0 || p.cursor >= len(entries) {
		return
	}

	if seg := entries[p.cursor].Segment; seg >= 0 {
		p.follow = true
		p.ctl.SeekToSegment(seg)
	}
}

func (p *Player) logErr(action string, err error) {
	if err == nil {
		return
	}

	p.lastErr = err

	slog.Error(action+" failed", slog.Any("error", err))
}

func (p *Player) handleListKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, defaultKeymap.up):
		p.moveCursor(-1)

	case key.Matches(msg, defaultKeymap.down):
		p.moveCursor(1)

	case key.Matches(msg, defaultKeymap.seek):
		p.seekCursor()

	case key.Matches(msg, defaultKeymap.moveUp):
		if p.cursor > 0 {
			changed, err := p.engine.Move(p.cursor, p.cursor-1)
			p.logErr("moving card", err)

			if changed {
				p.cursor--
			}
		}

	case key.Matches(msg, defaultKeymap.moveDown):
		if p.cursor < p.engine.Len()-1 {
			changed, err := p.engine.Move(p.cursor, p.cursor+1)
			p.logErr("moving card", err)

			if changed {
				p.cursor++
			}
		}

	case key.Matches(msg, defaultKeymap.remove):
		_, err := p.engine.Remove(p.cursor)
		p.logErr("removing card", err)
	}

	p.scroll()
}

func (p *Player) handlePaletteKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, defaultKeymap.up):
		p.moveCursor(-1)

	case key.Matches(msg, defaultKeymap.down):
		p.moveCursor(1)

	case key.Matches(msg, defaultKeymap.add), key.Matches(msg, defaultKeymap.seek):
		if p.pcursor < len(p.palette) {
			_, err := p.engine.Append(p.palette[p.pcursor].ID())
			p.logErr("adding card", err)
		}
	}
}

func (p *Player) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.quit):
		p.Close()

		return p, tea.Quit

	case key.Matches(msg, defaultKeymap.togglePlay):
		p.follow = true
		p.ctl.Toggle()

	case key.Matches(msg, defaultKeymap.next):
		p.follow = true
		p.ctl.Next()

	case key.Matches(msg, defaultKeymap.prev):
		p.follow = true
		p.ctl.Previous()

	case key.Matches(msg, defaultKeymap.reset):
		p.follow = true
		p.ctl.Reset()
		p.cursor = 0
		p.scroll()

	case key.Matches(msg, defaultKeymap.palette):
		p.focusPalette = !p.focusPalette

	case p.focusPalette:
		p.handlePaletteKey(msg)

	default:
		p.handleListKey(msg)
	}

	return p, nil
}

func (p *Player) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	pt := reorder.Point{X: float64(msg.X), Y: float64(msg.Y)}
	now := p.now()

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			p.moveCursor(-1)
			return p, nil
		case tea.MouseButtonWheelDown:
			p.moveCursor(1)
			return p, nil
		case tea.MouseButtonLeft:
		default:
			return p, nil
		}

		if row := reorder.HitTest(p.rowBounds(), pt); row >= 0 {
			p.focusPalette = false
			p.follow = false
			p.cursor = row
			p.drag.Start(row)

			return p, nil
		}

		if i := reorder.HitTest(p.paletteBounds(), pt); i >= 0 {
			p.focusPalette = true
			p.pcursor = i
			p.touch.PressPalette(p.palette[i].ID(), now)
		}

	case tea.MouseActionMotion:
		if p.drag.Active() {
			if row := reorder.HitTest(p.rowBounds(), pt); row >= 0 {
				p.drag.Over(row)
			}
		}

		p.touch.Move(pt, now, p.rowBounds())

	case tea.MouseActionRelease:
		if p.drag.Active() {
			target := reorder.HitTest(p.rowBounds(), pt)
			if target < 0 {
				target = p.drag.Indicator()
			}

			if target < 0 || target == p.drag.Source() {
				p.drag.Cancel()
			} else {
				_, err := p.drag.Drop(target)
				p.logErr("moving card", err)

				p.cursor = target
			}
		}

		_, err := p.touch.Release(now)
		p.logErr("adding card", err)
	}

	p.scroll()

	return p, nil
}

// handleSegment reacts to the follower noticing a new active card.
func (p *Player) handleSegment(msg segmentMsg) (tea.Model, tea.Cmd) {
	if msg.prev >= 0 && msg.snap.State == transport.Running {
		p.bell.Ring()
	}

	p.followActive(msg.snap)

	return p, p.listen()
}

// finish runs the end-of-session side effects outside the update loop.
func (p *Player) finish() tea.Cmd {
	notify := p.cfg.Notifications.Enabled
	sessionCmd := p.cfg.Settings.Cmd
	title := p.title

	return func() tea.Msg {
		if notify {
			err := p.notify(title+" is finished", "Namaste")
			if err != nil {
				slog.Error("unable to display notification", slog.Any("error", err))
			}
		}

		return cmdDoneMsg{err: runSessionCmd(p.ctx, sessionCmd)}
	}
}

func (p *Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case repaintMsg:
		return p, repaint()

	case segmentMsg:
		return p.handleSegment(msg)

	case completeMsg:
		p.bell.Ring()
		p.followActive(transport.Snapshot(msg))

		return p, tea.Batch(p.listen(), p.finish())

	case cmdDoneMsg:
		p.logErr("session command", msg.err)

		return p, nil

	case tea.KeyMsg:
		slog.Debug("key press", slog.String("msg", spew.Sdump(msg)))

		return p.handleKeyPress(msg)

	case tea.MouseMsg:
		return p.handleMouse(msg)

	case tea.WindowSizeMsg:
		p.width, p.height = msg.Width, msg.Height

		w := min(msg.Width-padding*2-4, maxWidth)
		p.session.Width = w
		p.item.Width = w
		p.help.Width = msg.Width

		p.scroll()

		return p, nil

	case progress.FrameMsg:
		return p, nil
	}

	return p, nil
}
