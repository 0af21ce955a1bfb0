// Package card unifies exercises, stories and practicals into a single item
// type and resolves card ids against the stored collections
package card

import (
	"strings"
	"time"

	"github.com/ayoisaiah/yogi/internal/models"
)

// Kind discriminates the three card types.
type Kind string

const (
	Exercise  Kind = "exercise"
	Story     Kind = "story"
	Practical Kind = "practical"
)

const (
	storyPrefix     = "story-"
	practicalPrefix = "practical-"
)

// Kinds lists every card kind in display order.
var Kinds = []Kind{Exercise, Story, Practical}

// IsStoryID reports whether id follows the story id pattern.
func IsStoryID(id string) bool {
	return strings.HasPrefix(id, storyPrefix)
}

// IsPracticalID reports whether id follows the practical id pattern.
func IsPracticalID(id string) bool {
	return strings.HasPrefix(id, practicalPrefix)
}

// Classify derives the kind of a card from its id alone. It works for ids
// that no longer resolve to a stored card.
func Classify(id string) Kind {
	switch {
	case IsStoryID(id):
		return Story
	case IsPracticalID(id):
		return Practical
	default:
		return Exercise
	}
}

// Item is a card of any kind. Exactly one of the payload fields is set, as
// indicated by Kind.
type Item struct {
	Exercise  *models.Exercise
	Story     *models.Story
	Practical *models.Practical
	Kind      Kind
}

// FromExercise wraps an exercise.
func FromExercise(e models.Exercise) Item {
	return Item{Kind: Exercise, Exercise: &e}
}

// FromStory wraps a story.
func FromStory(s models.Story) Item {
	return Item{Kind: Story, Story: &s}
}

// FromPractical wraps a practical.
func FromPractical(p models.Practical) Item {
	return Item{Kind: Practical, Practical: &p}
}

func (i Item) ID() string {
	switch i.Kind {
	case Exercise:
		return i.Exercise.ID
	case Story:
		return i.Story.ID
	case Practical:
		return i.Practical.ID
	}

	return ""
}

func (i Item) Title() string {
	switch i.Kind {
	case Exercise:
		return i.Exercise.Title
	case Story:
		return i.Story.Title
	case Practical:
		return i.Practical.Title
	}

	return ""
}

// Content returns the kind-specific body: the exercise description, the
// story text or the practical instruction.
func (i Item) Content() string {
	switch i.Kind {
	case Exercise:
		return i.Exercise.Description
	case Story:
		return i.Story.Content
	case Practical:
		return i.Practical.Instruction
	}

	return ""
}

// Minutes returns the length of the card in minutes. Stories and practicals
// without a time contribute zero.
func (i Item) Minutes() float64 {
	var m float64

	switch i.Kind {
	case Exercise:
		m = i.Exercise.DurationMinutes
	case Story:
		m = i.Story.Time
	case Practical:
		m = i.Practical.Time
	}

	if m < 0 {
		return 0
	}

	return m
}

// Duration returns Minutes as a time.Duration.
func (i Item) Duration() time.Duration {
	return time.Duration(i.Minutes() * float64(time.Minute))
}

func (i Item) Tags() []string {
	switch i.Kind {
	case Exercise:
		return i.Exercise.Tags
	case Story:
		return i.Story.Tags
	case Practical:
		return i.Practical.Tags
	}

	return nil
}

// Label returns the category of an exercise or practical, or the mood of a
// story.
func (i Item) Label() string {
	switch i.Kind {
	case Exercise:
		return i.Exercise.Category
	case Story:
		return i.Story.Mood
	case Practical:
		return i.Practical.Category
	}

	return ""
}
