package store

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ayoisaiah/yogi/card"
	"github.com/ayoisaiah/yogi/internal/apperr"
	"github.com/ayoisaiah/yogi/internal/models"
)

// minTimedCard is the shortest time a story or practical may be given.
const minTimedCard = 0.5

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func validTags(tags []string) bool {
	return !slices.ContainsFunc(tags, blank)
}

func validTime(minutes float64) bool {
	return minutes == 0 || minutes >= minTimedCard
}

func validateExercise(e *models.Exercise) error {
	var v apperr.Validator

	v.Check(!blank(e.Title), "title is required")
	v.Check(!blank(e.Description), "description is required")
	v.Check(validTags(e.Tags), "tags must be non-empty strings")
	v.Check(e.DurationMinutes > 0, "duration_minutes must be greater than 0")

	return v.Err()
}

func validateStory(s *models.Story) error {
	var v apperr.Validator

	v.Check(!blank(s.Title), "title is required")
	v.Check(!blank(s.Content), "content is required")
	v.Check(validTags(s.Tags), "tags must be non-empty strings")
	v.Check(
		validTime(s.Time),
		fmt.Sprintf("time must be at least %g minutes", minTimedCard),
	)

	return v.Err()
}

func validatePractical(p *models.Practical) error {
	var v apperr.Validator

	v.Check(!blank(p.Title), "title is required")
	v.Check(!blank(p.Instruction), "instruction is required")
	v.Check(validTags(p.Tags), "tags must be non-empty strings")
	v.Check(
		validTime(p.Time),
		fmt.Sprintf("time must be at least %g minutes", minTimedCard),
	)

	return v.Err()
}

func validateOrder(order []string) error {
	var v apperr.Validator

	for i, id := range order {
		v.Check(!blank(id), fmt.Sprintf("item %d: id must be a non-empty string", i+1))
	}

	return v.Err()
}

func validateSession(s *models.Session) error {
	var v apperr.Validator

	v.Check(!blank(s.Title), "title is required")
	v.Check(s.DurationMinutes >= 0, "duration_minutes cannot be negative")

	if err := validateOrder(s.Exercises); err != nil {
		v.Check(false, strings.Join(apperr.Messages(err), "; "))
	}

	return v.Err()
}

func validateStoryBook(b *models.StoryBook) error {
	var v apperr.Validator

	v.Check(!blank(b.Title), "title is required")

	for _, id := range b.Stories {
		v.Check(card.IsStoryID(id), fmt.Sprintf("%q is not a story id", id))
	}

	return v.Err()
}

func validateCardSet(s *models.CardSet) error {
	var v apperr.Validator

	v.Check(!blank(s.Title), "title is required")

	kind := card.Kind(s.Kind)
	if !slices.Contains(card.Kinds, kind) {
		v.Check(false, fmt.Sprintf("unknown card kind %q", s.Kind))
		return v.Err()
	}

	for _, id := range s.Cards {
		v.Check(
			!blank(id) && card.Classify(id) == kind,
			fmt.Sprintf("%q is not a card of kind %s", id, kind),
		)
	}

	return v.Err()
}
