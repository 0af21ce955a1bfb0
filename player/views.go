package player

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/yogi/card"
	"github.com/ayoisaiah/yogi/internal/timeutil"
	"github.com/ayoisaiah/yogi/timeline"
	"github.com/ayoisaiah/yogi/transport"
)

const rowFormat = "%-4s%-10s%-10s%-11s%s"

func stateLabel(s transport.State) string {
	switch s {
	case transport.Running:
		return "[Playing]"
	case transport.Paused:
		return "[Paused]"
	case transport.Completed:
		return "[Finished]"
	}

	return "[Ready]"
}

// offsetLabel formats a timeline offset as a wall-clock time when a start
// time is configured and as a relative duration otherwise.
func offsetLabel(tl *timeline.Timeline, seg timeline.Segment, end bool) string {
	if end {
		if tl.HasStart {
			return tl.EndClock(seg.UniqueIndex)
		}

		return timeutil.FormatDuration(seg.End)
	}

	if tl.HasStart {
		return tl.StartClock(seg.UniqueIndex)
	}

	return timeutil.FormatDuration(seg.Start)
}

func (p *Player) headerView(snap transport.Snapshot) string {
	var s strings.Builder

	tl := p.ctl.Timeline()

	s.WriteString(p.style.Title.Render(p.title) + " ")
	s.WriteString(p.style.Secondary.Render(stateLabel(snap.State)))

	if tl.HasStart {
		s.WriteString(p.style.Hint.Render(
			fmt.Sprintf(" %s → %s", timeutil.FormatClock(float64(tl.StartMinutes)), tl.EndOfSession()),
		))
	}

	s.WriteString("\n\n")
	s.WriteString(p.session.ViewAs(snap.Progress()))
	s.WriteString(p.style.Hint.Render(fmt.Sprintf(
		" %s / %s",
		timeutil.FormatDuration(snap.Elapsed),
		timeutil.FormatDuration(snap.Total),
	)))
	s.WriteString("\n")

	if snap.Active >= 0 && snap.Active < len(tl.Segments) {
		seg := tl.Segments[snap.Active]

		var fraction float64
		if seg.Duration > 0 {
			fraction = 1 - float64(snap.Remaining)/float64(seg.Duration)
		}

		s.WriteString(p.item.ViewAs(fraction))
		s.WriteString(" " + p.style.Main.Render(seg.Item.Title()))
		s.WriteString(p.style.Hint.Render(
			" " + timeutil.FormatDuration(snap.Remaining) + " left",
		))
	} else {
		s.WriteString(p.style.Hint.Render("no cards to play"))
	}

	s.WriteString("\n\n")
	s.WriteString(p.style.Heading.Render(
		fmt.Sprintf(rowFormat, "#", "START", "END", "KIND", "TITLE"),
	))

	return s.String()
}

func (p *Player) rowView(i int, snap transport.Snapshot) string {
	tl := p.ctl.Timeline()
	entry := tl.Entries[i]

	marker := "  "
	if i == p.cursor && !p.focusPalette {
		marker = p.style.Cursor.Render("> ")
	}

	if p.drag.Active() && i == p.drag.Indicator() && i != p.drag.Source() {
		marker = p.style.Cursor.Render("→ ")
	}

	if !entry.Resolved {
		return marker + p.style.Missing.Render(fmt.Sprintf(
			rowFormat,
			fmt.Sprint(i+1),
			"-",
			"-",
			string(entry.Kind),
			fmt.Sprintf("missing %s: %s", entry.Kind, entry.ID),
		))
	}

	seg := tl.Segments[entry.Segment]

	line := fmt.Sprintf(
		rowFormat,
		fmt.Sprint(i+1),
		offsetLabel(tl, seg, false),
		offsetLabel(tl, seg, true),
		string(seg.Item.Kind),
		seg.Item.Title(),
	)

	switch {
	case entry.Segment == snap.Active && snap.State != transport.Idle:
		line = p.style.Active.Render(line)
	case snap.Elapsed > 0 && seg.End <= snap.Elapsed:
		line = p.style.Past.Render(line)
	}

	return marker + line
}

func (p *Player) paletteView() string {
	var s strings.Builder

	heading := "Cards (tab)"
	if p.focusPalette {
		heading = "Cards: a to add, hold and drag with the mouse"
	}

	s.WriteString(p.style.Heading.Render(heading))

	end := min(len(p.palette), p.poffset+p.visiblePaletteRows())

	for i := p.poffset; i < end; i++ {
		item := p.palette[i]

		marker := "  "
		if p.focusPalette && i == p.pcursor {
			marker = p.style.Cursor.Render("> ")
		}

		length := "-"
		if item.Kind == card.Exercise || item.Minutes() > 0 {
			length = timeutil.FormatDuration(item.Duration())
		}

		s.WriteString("\n" + marker + fmt.Sprintf(
			"%-14s%-8s%s", item.ID(), length, item.Title(),
		))
	}

	return s.String()
}

func (p *Player) helpView() string {
	if p.focusPalette {
		return p.help.ShortHelpView([]key.Binding{
			defaultKeymap.up,
			defaultKeymap.add,
			defaultKeymap.palette,
			defaultKeymap.quit,
		})
	}

	return p.help.ShortHelpView([]key.Binding{
		defaultKeymap.togglePlay,
		defaultKeymap.next,
		defaultKeymap.reset,
		defaultKeymap.seek,
		defaultKeymap.up,
		defaultKeymap.moveUp,
		defaultKeymap.remove,
		defaultKeymap.palette,
		defaultKeymap.quit,
	})
}

func (p *Player) View() string {
	snap := p.ctl.Snapshot()
	tl := p.ctl.Timeline()

	var s strings.Builder

	s.WriteString(p.headerView(snap))

	end := min(len(tl.Entries), p.offset+p.visibleRows())

	for i := p.offset; i < end; i++ {
		s.WriteString("\n" + p.rowView(i, snap))
	}

	if len(tl.Entries) == 0 {
		s.WriteString("\n" + p.style.Hint.Render("This session is empty. Add cards from the list below."))
	}

	s.WriteString("\n\n" + p.paletteView())

	if p.lastErr != nil {
		s.WriteString("\n" + p.style.Missing.Render(p.lastErr.Error()))
	}

	s.WriteString("\n\n" + p.helpView())

	return p.style.Base.Render(s.String())
}
