package timeline

import (
	"fmt"
	"io"
	"time"

	"github.com/ayoisaiah/yogi/internal/timeutil"
)

const (
	rowFormat    = "%-4s%-10s%-10s%-9s%-11s%s\n"
	missingLabel = "-"
)

// Schedule is the serialisable form of a timeline.
type Schedule struct {
	StartTime    string         `json:"start_time,omitempty" yaml:"start_time,omitempty"`
	EndTime      string         `json:"end_time,omitempty"   yaml:"end_time,omitempty"`
	Items        []ScheduleItem `json:"items"                yaml:"items"`
	TotalMinutes float64        `json:"total_minutes"        yaml:"total_minutes"`
}

// ScheduleItem is one row of a Schedule.
type ScheduleItem struct {
	ID       string  `json:"id"              yaml:"id"`
	Kind     string  `json:"kind"            yaml:"kind"`
	Title    string  `json:"title,omitempty" yaml:"title,omitempty"`
	Start    string  `json:"start,omitempty" yaml:"start,omitempty"`
	End      string  `json:"end,omitempty"   yaml:"end,omitempty"`
	Position int     `json:"position"        yaml:"position"`
	Minutes  float64 `json:"minutes"         yaml:"minutes"`
	Missing  bool    `json:"missing,omitempty" yaml:"missing,omitempty"`
}

func (tl *Timeline) label(offset time.Duration) string {
	if tl.HasStart {
		return tl.clockAt(offset)
	}

	return timeutil.FormatDuration(offset)
}

// Export converts the timeline into a Schedule. Positions are 1-based.
func (tl *Timeline) Export() Schedule {
	s := Schedule{
		StartTime:    tl.label(0),
		EndTime:      tl.label(tl.Total),
		TotalMinutes: tl.Total.Minutes(),
		Items:        make([]ScheduleItem, 0, len(tl.Entries)),
	}

	if !tl.HasStart {
		s.StartTime, s.EndTime = "", ""
	}

	for _, e := range tl.Entries {
		if !e.Resolved {
			s.Items = append(s.Items, ScheduleItem{
				ID:       e.ID,
				Kind:     string(e.Kind),
				Position: e.Position + 1,
				Missing:  true,
			})

			continue
		}

		seg := tl.Segments[e.Segment]

		s.Items = append(s.Items, ScheduleItem{
			ID:       e.ID,
			Kind:     string(e.Kind),
			Title:    seg.Item.Title(),
			Start:    tl.label(seg.Start),
			End:      tl.label(seg.End),
			Position: e.Position + 1,
			Minutes:  seg.Duration.Minutes(),
		})
	}

	return s
}

// WriteSchedule writes a plain-text schedule of the timeline to w.
func WriteSchedule(w io.Writer, tl *Timeline) error {
	_, err := fmt.Fprintf(w, rowFormat, "#", "START", "END", "LENGTH", "KIND", "TITLE")
	if err != nil {
		return err
	}

	for _, e := range tl.Entries {
		pos := fmt.Sprintf("%d", e.Position+1)

		if !e.Resolved {
			_, err = fmt.Fprintf(
				w,
				rowFormat,
				pos,
				missingLabel,
				missingLabel,
				missingLabel,
				e.Kind,
				"missing: "+e.ID,
			)
			if err != nil {
				return err
			}

			continue
		}

		seg := tl.Segments[e.Segment]

		_, err = fmt.Fprintf(
			w,
			rowFormat,
			pos,
			tl.label(seg.Start),
			tl.label(seg.End),
			timeutil.FormatDuration(seg.Duration),
			e.Kind,
			seg.Item.Title(),
		)
		if err != nil {
			return err
		}
	}

	_, err = fmt.Fprintf(w, "\nTotal: %s\n", timeutil.FormatDuration(tl.Total))
	if err != nil {
		return err
	}

	if tl.HasStart {
		_, err = fmt.Fprintf(w, "Ends at: %s\n", tl.EndOfSession())
	}

	return err
}
