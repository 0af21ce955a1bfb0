package app

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ayoisaiah/yogi/internal/apperr"
	"github.com/ayoisaiah/yogi/internal/models"
	"github.com/ayoisaiah/yogi/internal/ui"
	"github.com/ayoisaiah/yogi/store"
	"github.com/ayoisaiah/yogi/timeline"
)

func newRepos(t *testing.T) *store.Repos {
	t.Helper()

	repos := store.New(store.NewMemoryKV())

	for _, in := range []cardInput{
		{Title: "Mountain pose", Body: "Stand tall", Minutes: "5"},
		{Title: "Tree pose", Body: "Balance", Minutes: "4", Tags: "balance, ,standing"},
	} {
		_, err := exerciseKind.create(repos, in)
		require.NoError(t, err)
	}

	_, err := storyKind.create(repos, cardInput{
		Title: "The river",
		Body:  "Water finds its way",
	})
	require.NoError(t, err)

	return repos
}

func TestCreateCards(t *testing.T) {
	repos := newRepos(t)

	tree, err := repos.Exercises.Get("2")
	require.NoError(t, err)

	assert.Equal(t, []string{"balance", "standing"}, tree.Tags)
	assert.InDelta(t, 4.0, tree.DurationMinutes, 0)

	story, err := repos.Stories.Get("story-1")
	require.NoError(t, err)
	assert.Zero(t, story.Time)

	p, err := practicalKind.create(repos, cardInput{
		Title:   "Fetch a block",
		Body:    "Keep it close",
		Minutes: "0.5",
	})
	require.NoError(t, err)
	assert.Equal(t, "practical-1", p.ID)
}

func TestCreateCardValidation(t *testing.T) {
	repos := newRepos(t)

	_, err := exerciseKind.create(repos, cardInput{Minutes: "0"})

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Messages, "title is required")
	assert.Contains(t, verr.Messages, "duration_minutes must be greater than 0")

	_, err = storyKind.create(repos, cardInput{
		Title:   "x",
		Body:    "y",
		Minutes: "soon",
	})
	require.ErrorContains(t, err, "invalid number of minutes")

	assert.Len(t, repos.Stories.List(), 1)
}

func TestUpdateCardKeepsID(t *testing.T) {
	repos := newRepos(t)

	current, err := repos.Exercises.Get("1")
	require.NoError(t, err)

	in := exerciseKind.input(current)
	in.Minutes = "7.5"

	updated, err := exerciseKind.update(repos, "1", in)
	require.NoError(t, err)

	assert.Equal(t, "1", updated.ID)
	assert.Equal(t, "Mountain pose", updated.Title)
	assert.InDelta(t, 7.5, updated.DurationMinutes, 0)

	_, err = exerciseKind.update(repos, "42", in)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestSortByID(t *testing.T) {
	in := []models.Exercise{{ID: "10"}, {ID: "9"}, {ID: "2"}}

	got := sortByID(in, func(e models.Exercise) string { return e.ID })

	ids := make([]string, 0, len(got))
	for _, e := range got {
		ids = append(ids, e.ID)
	}

	assert.Equal(t, []string{"2", "9", "10"}, ids)
	assert.Equal(t, "10", in[0].ID, "the input must not be sorted in place")
}

func TestListCardsJSON(t *testing.T) {
	repos := newRepos(t)

	var buf bytes.Buffer

	require.NoError(t, exerciseKind.list(&buf, repos, true))

	var got []models.Exercise
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	require.Len(t, got, 2)
	assert.Equal(t, "Mountain pose", got[0].Title)
}

func TestPrintSchedule(t *testing.T) {
	repos := newRepos(t)

	tl, err := timeline.Build(
		[]string{"1", "story-1", "2", "practical-4"},
		repos.Index(),
		timeline.WithStartTime("23:55"),
	)
	require.NoError(t, err)

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer

		require.NoError(t, printSchedule(&buf, "Evening", tl, formatJSON))

		var s timeline.Schedule
		require.NoError(t, json.Unmarshal(buf.Bytes(), &s))

		assert.Equal(t, "23:55", s.StartTime)
		assert.Equal(t, "00:04+1", s.EndTime)
		assert.Len(t, s.Items, 4)
		assert.True(t, s.Items[3].Missing)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer

		require.NoError(t, printSchedule(&buf, "Evening", tl, formatYAML))

		var s timeline.Schedule
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &s))

		assert.InDelta(t, 9.0, s.TotalMinutes, 0)
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer

		require.NoError(t, printSchedule(&buf, "Evening", tl, formatText))

		assert.Contains(t, buf.String(), "Evening")
		assert.Contains(t, buf.String(), "missing: practical-4")
	})
}

func TestMoveCard(t *testing.T) {
	repos := newRepos(t)

	sess, err := repos.Sessions.Create(models.Session{
		Title:     "Morning",
		Exercises: []string{"1", "story-1", "2"},
	})
	require.NoError(t, err)

	got, err := moveCard(repos, sess.ID, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"story-1", "2", "1"}, got.Exercises)

	_, err = moveCard(repos, sess.ID, 0, 2)
	require.ErrorContains(t, err, "invalid position")

	_, err = moveCard(repos, sess.ID, 1, 4)
	require.ErrorContains(t, err, "between 1 and 3")
}

func TestParsePosition(t *testing.T) {
	cases := []struct {
		in      string
		n       int
		want    int
		wantErr bool
	}{
		{"1", 3, 0, false},
		{"3", 3, 2, false},
		{"4", 3, 0, true},
		{"0", 3, 0, true},
		{"two", 3, 0, true},
		{"1", 0, 0, true},
	}

	for _, tc := range cases {
		got, err := parsePosition(tc.in, tc.n)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}

		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestSessionsTableCountsMissing(t *testing.T) {
	repos := newRepos(t)

	sess, err := repos.Sessions.Create(models.Session{
		Title:     "Morning",
		Exercises: []string{"1", "9", "story-7"},
	})
	require.NoError(t, err)

	table := sessionsTable([]models.Session{sess}, repos.Index())

	require.Len(t, table, 2)
	assert.Equal(t, sess.ID, pterm.RemoveColorFromString(table[1][0]))
	assert.Contains(t, table[1][2], "(2 missing)")
	assert.Equal(t, "05:00", table[1][3])
}

func TestCardTablesUseThemeColours(t *testing.T) {
	repos := newRepos(t)

	table := storiesTable(repos.Stories.List())

	require.Len(t, table, 2)
	assert.Equal(t, ui.Cyan("story-1"), table[1][0])
	assert.Equal(t, ui.Dim("-"), table[1][2])
	assert.Equal(t, "story-1", pterm.RemoveColorFromString(table[1][0]))

	assert.Contains(t, helpText(), ui.Green("--{{.Name}} {{.DefaultText}}"))
}

func TestListSessionsJSON(t *testing.T) {
	repos := newRepos(t)

	var buf bytes.Buffer

	require.NoError(t, listSessions(&buf, repos, true))
	assert.JSONEq(t, "[]", buf.String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
}

func TestFirstNonEmptyString(t *testing.T) {
	assert.Equal(t, "b", firstNonEmptyString("", "b", "c"))
	assert.Empty(t, firstNonEmptyString("", ""))
}
