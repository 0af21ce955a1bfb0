package app

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/maruel/natural"

	"github.com/ayoisaiah/yogi/card"
	"github.com/ayoisaiah/yogi/internal/models"
	"github.com/ayoisaiah/yogi/internal/timeutil"
	"github.com/ayoisaiah/yogi/internal/ui"
	"github.com/ayoisaiah/yogi/timeline"
)

const dateFormat = "Jan 02, 2006 03:04 PM"

func printTable(w io.Writer, table [][]string) {
	ui.PrintTable(table, w)
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))

	return err
}

// sortByID returns a copy of items in natural id order, so that "10" sorts
// after "9" and "story-10" after "story-9".
func sortByID[T any](items []T, id func(T) string) []T {
	sorted := slices.Clone(items)

	slices.SortStableFunc(sorted, func(a, b T) int {
		x, y := id(a), id(b)

		switch {
		case natural.Less(x, y):
			return -1
		case natural.Less(y, x):
			return 1
		}

		return 0
	})

	return sorted
}

func minutesLabel(m float64) string {
	if m <= 0 {
		return ui.Dim("-")
	}

	return timeutil.FormatDuration(time.Duration(m * float64(time.Minute)))
}

func exercisesTable(exercises []models.Exercise) [][]string {
	table := [][]string{{"ID", "TITLE", "LENGTH", "CATEGORY", "TAGS"}}

	for _, e := range exercises {
		table = append(table, []string{
			ui.Cyan(e.ID),
			e.Title,
			minutesLabel(e.DurationMinutes),
			e.Category,
			strings.Join(e.Tags, " · "),
		})
	}

	return table
}

func storiesTable(stories []models.Story) [][]string {
	table := [][]string{{"ID", "TITLE", "LENGTH", "MOOD", "TAGS"}}

	for _, s := range stories {
		table = append(table, []string{
			ui.Cyan(s.ID),
			s.Title,
			minutesLabel(s.Time),
			s.Mood,
			strings.Join(s.Tags, " · "),
		})
	}

	return table
}

func practicalsTable(practicals []models.Practical) [][]string {
	table := [][]string{{"ID", "TITLE", "LENGTH", "CATEGORY", "TAGS"}}

	for _, p := range practicals {
		table = append(table, []string{
			ui.Cyan(p.ID),
			p.Title,
			minutesLabel(p.Time),
			p.Category,
			strings.Join(p.Tags, " · "),
		})
	}

	return table
}

// sessionsTable lists sessions with the length of their current timeline.
// Cards that no longer resolve are counted as missing.
func sessionsTable(sessions []models.Session, idx card.Index) [][]string {
	table := [][]string{{"ID", "TITLE", "CARDS", "LENGTH", "UPDATED"}}

	for _, s := range sessions {
		tl, _ := timeline.Build(s.Exercises, idx)

		cards := fmt.Sprintf("%d", len(s.Exercises))
		if missing := len(tl.Unresolved()); missing > 0 {
			cards += ui.Red(fmt.Sprintf(" (%d missing)", missing))
		}

		updated := s.UpdatedAt.Local().Format(dateFormat)
		if s.UpdatedAt.IsZero() {
			updated = ""
		}

		table = append(table, []string{
			ui.Cyan(s.ID),
			s.Title,
			cards,
			timeutil.FormatDuration(tl.Total),
			updated,
		})
	}

	return table
}

func storyBooksTable(books []models.StoryBook) [][]string {
	table := [][]string{{"ID", "TITLE", "STORIES"}}

	for _, b := range books {
		table = append(table, []string{
			ui.Cyan(b.ID),
			b.Title,
			strings.Join(b.Stories, ", "),
		})
	}

	return table
}

func cardSetsTable(sets []models.CardSet) [][]string {
	table := [][]string{{"ID", "TITLE", "KIND", "CARDS"}}

	for _, s := range sets {
		table = append(table, []string{
			ui.Cyan(s.ID),
			s.Title,
			s.Kind,
			strings.Join(s.Cards, ", "),
		})
	}

	return table
}
