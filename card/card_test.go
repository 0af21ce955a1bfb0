package card_test

import (
	"testing"
	"time"

	"github.com/ayoisaiah/yogi/card"
	"github.com/ayoisaiah/yogi/internal/models"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		ID   string
		Want card.Kind
	}{
		{ID: "1", Want: card.Exercise},
		{ID: "1699999999999", Want: card.Exercise},
		{ID: "story-3", Want: card.Story},
		{ID: "story-99", Want: card.Story},
		{ID: "practical-1", Want: card.Practical},
		{ID: "stories-1", Want: card.Exercise},
		{ID: "", Want: card.Exercise},
	}

	for _, tc := range testCases {
		t.Run(tc.ID, func(t *testing.T) {
			got := card.Classify(tc.ID)
			if got != tc.Want {
				t.Errorf("expected kind: %s, but got: %s", tc.Want, got)
			}
		})
	}
}

func TestIndexFirstRegistrationWins(t *testing.T) {
	idx := card.NewIndex(
		[]models.Exercise{
			{ID: "1", Title: "Mountain", DurationMinutes: 2},
			{ID: "1", Title: "Duplicate", DurationMinutes: 9},
		},
		[]models.Story{{ID: "story-1", Title: "River"}},
		[]models.Practical{{ID: "practical-1", Title: "Fetch a block", Time: 0.5}},
	)

	if len(idx) != 3 {
		t.Fatalf("expected 3 entries, but got: %d", len(idx))
	}

	item, ok := idx.Lookup("1")
	if !ok {
		t.Fatal("expected exercise 1 to resolve")
	}

	if item.Title() != "Mountain" {
		t.Errorf("expected first registration to win, but got: %s", item.Title())
	}

	if _, ok := idx.Lookup("story-2"); ok {
		t.Error("expected story-2 to be unresolved")
	}
}

func TestItemAccessors(t *testing.T) {
	story := card.FromStory(models.Story{
		ID:      "story-4",
		Title:   "The lotus",
		Content: "Once upon a time",
		Mood:    "calm",
	})

	if story.Minutes() != 0 {
		t.Errorf("expected a story without time to last 0 minutes, got: %v", story.Minutes())
	}

	if story.Content() != "Once upon a time" || story.Label() != "calm" {
		t.Errorf("unexpected story accessors: %q %q", story.Content(), story.Label())
	}

	practical := card.FromPractical(models.Practical{
		ID:          "practical-2",
		Instruction: "Dim the lights",
		Time:        1.5,
	})

	if practical.Duration() != 90*time.Second {
		t.Errorf("expected 90s, but got: %v", practical.Duration())
	}

	if practical.Content() != "Dim the lights" {
		t.Errorf("unexpected instruction: %q", practical.Content())
	}
}
