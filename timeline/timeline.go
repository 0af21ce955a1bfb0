// Package timeline turns an ordered list of card ids into contiguous timed
// segments
package timeline

import (
	"log/slog"
	"time"

	"github.com/ayoisaiah/yogi/card"
	"github.com/ayoisaiah/yogi/internal/timeutil"
)

// Segment is a resolved card placed on the timeline.
type Segment struct {
	Item card.Item
	// UniqueIndex is the position of the segment among resolved segments.
	UniqueIndex int
	// Position is the index of the card in the session order, counting
	// unresolved ids.
	Position int
	Start    time.Duration
	End      time.Duration
	Duration time.Duration
}

// Entry is one position of the session order. Unresolved entries keep the
// raw id and the kind derived from it so they can be displayed in place.
type Entry struct {
	ID       string
	Kind     card.Kind
	Position int
	// Segment is the index into Timeline.Segments, or -1 when the id did
	// not resolve.
	Segment  int
	Resolved bool
}

// Timeline is the derived schedule of a session. It is rebuilt from scratch
// whenever the order or the card collections change.
type Timeline struct {
	Entries  []Entry
	Segments []Segment
	Total    time.Duration
	// StartMinutes is the configured start time as minutes since midnight
	// when HasStart is true.
	StartMinutes int
	HasStart     bool
}

// Option configures Build.
type Option func(*Timeline) error

// WithStartTime anchors the timeline to a wall-clock time of day in HH:MM
// format. An empty string leaves the timeline relative.
func WithStartTime(clock string) Option {
	return func(tl *Timeline) error {
		if clock == "" {
			return nil
		}

		mins, err := timeutil.ParseClock(clock)
		if err != nil {
			return err
		}

		tl.StartMinutes = mins
		tl.HasStart = true

		return nil
	}
}

// Build resolves every id in order and lays the resolved cards end to end.
// Unresolved ids are kept as entries but do not advance time.
func Build(order []string, idx card.Index, opts ...Option) (*Timeline, error) {
	tl := &Timeline{
		Entries:  make([]Entry, 0, len(order)),
		Segments: make([]Segment, 0, len(order)),
	}

	for _, opt := range opts {
		if err := opt(tl); err != nil {
			return nil, err
		}
	}

	var offset time.Duration

	for pos, id := range order {
		item, ok := idx.Lookup(id)
		if !ok {
			slog.Warn("unresolved card in session order",
				slog.String("id", id),
				slog.Int("position", pos),
			)

			tl.Entries = append(tl.Entries, Entry{
				ID:       id,
				Kind:     card.Classify(id),
				Position: pos,
				Segment:  -1,
			})

			continue
		}

		d := item.Duration()

		seg := Segment{
			Item:        item,
			UniqueIndex: len(tl.Segments),
			Position:    pos,
			Start:       offset,
			End:         offset + d,
			Duration:    d,
		}

		tl.Entries = append(tl.Entries, Entry{
			ID:       id,
			Kind:     item.Kind,
			Position: pos,
			Segment:  seg.UniqueIndex,
			Resolved: true,
		})

		tl.Segments = append(tl.Segments, seg)

		offset = seg.End
	}

	tl.Total = offset

	return tl, nil
}

// Len returns the number of resolved segments.
func (tl *Timeline) Len() int {
	return len(tl.Segments)
}

// Unresolved returns the entries whose ids did not resolve.
func (tl *Timeline) Unresolved() []Entry {
	var missing []Entry

	for _, e := range tl.Entries {
		if !e.Resolved {
			missing = append(missing, e)
		}
	}

	return missing
}

// ActiveIndex returns the index of the segment whose [Start, End) interval
// contains elapsed. Once elapsed reaches the total the last segment is
// active. It returns -1 for an empty timeline.
func (tl *Timeline) ActiveIndex(elapsed time.Duration) int {
	n := len(tl.Segments)
	if n == 0 {
		return -1
	}

	if elapsed >= tl.Total {
		return n - 1
	}

	for i := range tl.Segments {
		seg := tl.Segments[i]
		if elapsed >= seg.Start && elapsed < seg.End {
			return i
		}
	}

	return 0
}

// SegmentAt returns the segment displayed at the given order position.
func (tl *Timeline) SegmentAt(position int) (Segment, bool) {
	if position < 0 || position >= len(tl.Entries) {
		return Segment{}, false
	}

	e := tl.Entries[position]
	if !e.Resolved {
		return Segment{}, false
	}

	return tl.Segments[e.Segment], true
}

func (tl *Timeline) clockAt(offset time.Duration) string {
	return timeutil.FormatClock(float64(tl.StartMinutes) + offset.Minutes())
}

// StartClock returns the wall-clock start of segment i. It is empty when the
// timeline has no start time.
func (tl *Timeline) StartClock(i int) string {
	if !tl.HasStart || i < 0 || i >= len(tl.Segments) {
		return ""
	}

	return tl.clockAt(tl.Segments[i].Start)
}

// EndClock returns the wall-clock end of segment i.
func (tl *Timeline) EndClock(i int) string {
	if !tl.HasStart || i < 0 || i >= len(tl.Segments) {
		return ""
	}

	return tl.clockAt(tl.Segments[i].End)
}

// EndOfSession returns the wall-clock time at which the session ends. An
// empty timeline ends at its start time.
func (tl *Timeline) EndOfSession() string {
	if !tl.HasStart {
		return ""
	}

	return tl.clockAt(tl.Total)
}
