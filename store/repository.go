package store

import (
	"github.com/ayoisaiah/yogi/card"
	"github.com/ayoisaiah/yogi/internal/models"
)

// Repository provides validated CRUD access to one collection.
type Repository[T any] struct {
	c        *collection[T]
	validate func(*T) error
	nextID   func(ids []string) string
	setID    func(*T, string)
}

// List returns every item in stored order.
func (r *Repository[T]) List() []T {
	return r.c.list()
}

// Get returns the item with the given id or an error wrapping
// apperr.ErrNotFound.
func (r *Repository[T]) Get(id string) (T, error) {
	return r.c.get(id)
}

// Create validates in, assigns it a fresh id and stores it.
func (r *Repository[T]) Create(in T) (T, error) {
	if err := r.validate(&in); err != nil {
		var zero T
		return zero, err
	}

	return r.c.create(in, func(items []T) string {
		return r.nextID(idsOf(items, r.c.id))
	}, r.setID)
}

// Update replaces the stored item in place. The id is preserved.
func (r *Repository[T]) Update(id string, in T) (T, error) {
	r.setID(&in, id)

	if err := r.validate(&in); err != nil {
		var zero T
		return zero, err
	}

	return r.c.modify(id, func(item *T) error {
		*item = in
		return nil
	})
}

// Delete removes the item and reports whether it was found.
func (r *Repository[T]) Delete(id string) bool {
	return r.c.remove(id)
}

func NewExerciseRepo(kv KV) *Repository[models.Exercise] {
	id := func(e *models.Exercise) string { return e.ID }

	return &Repository[models.Exercise]{
		c:        newCollection(kv, keyExercises, string(card.Exercise), id),
		validate: validateExercise,
		nextID: func(ids []string) string {
			return nextSequentialID("", ids)
		},
		setID: func(e *models.Exercise, id string) { e.ID = id },
	}
}

func NewStoryRepo(kv KV) *Repository[models.Story] {
	id := func(s *models.Story) string { return s.ID }

	return &Repository[models.Story]{
		c:        newCollection(kv, keyStories, string(card.Story), id),
		validate: validateStory,
		nextID: func(ids []string) string {
			return nextSequentialID("story-", ids)
		},
		setID: func(s *models.Story, id string) { s.ID = id },
	}
}

func NewPracticalRepo(kv KV) *Repository[models.Practical] {
	id := func(p *models.Practical) string { return p.ID }

	return &Repository[models.Practical]{
		c:        newCollection(kv, keyPracticals, string(card.Practical), id),
		validate: validatePractical,
		nextID: func(ids []string) string {
			return nextSequentialID("practical-", ids)
		},
		setID: func(p *models.Practical, id string) { p.ID = id },
	}
}

func NewStoryBookRepo(kv KV) *Repository[models.StoryBook] {
	id := func(b *models.StoryBook) string { return b.ID }

	return &Repository[models.StoryBook]{
		c:        newCollection(kv, keyStoryBooks, "story book", id),
		validate: validateStoryBook,
		nextID:   func([]string) string { return newUUID() },
		setID:    func(b *models.StoryBook, id string) { b.ID = id },
	}
}

func NewCardSetRepo(kv KV) *Repository[models.CardSet] {
	id := func(s *models.CardSet) string { return s.ID }

	return &Repository[models.CardSet]{
		c:        newCollection(kv, keyCardSets, "card set", id),
		validate: validateCardSet,
		nextID:   func([]string) string { return newUUID() },
		setID:    func(s *models.CardSet, id string) { s.ID = id },
	}
}

// Repos bundles every repository backed by the same store.
type Repos struct {
	Exercises  *Repository[models.Exercise]
	Stories    *Repository[models.Story]
	Practicals *Repository[models.Practical]
	Sessions   *SessionRepo
	StoryBooks *Repository[models.StoryBook]
	CardSets   *Repository[models.CardSet]
}

// New returns the repositories for kv.
func New(kv KV) *Repos {
	return &Repos{
		Exercises:  NewExerciseRepo(kv),
		Stories:    NewStoryRepo(kv),
		Practicals: NewPracticalRepo(kv),
		Sessions:   NewSessionRepo(kv),
		StoryBooks: NewStoryBookRepo(kv),
		CardSets:   NewCardSetRepo(kv),
	}
}

// Index resolves card ids against the current card collections.
func (r *Repos) Index() card.Index {
	return card.NewIndex(
		r.Exercises.List(),
		r.Stories.List(),
		r.Practicals.List(),
	)
}

// AppendSet appends every card of a set to the end of a session.
func (r *Repos) AppendSet(sessionID, setID string) (models.Session, error) {
	set, err := r.CardSets.Get(setID)
	if err != nil {
		return models.Session{}, err
	}

	return r.Sessions.AppendItems(sessionID, set.Cards...)
}

// AppendBook appends the stories of a story book to the end of a session.
func (r *Repos) AppendBook(sessionID, bookID string) (models.Session, error) {
	book, err := r.StoryBooks.Get(bookID)
	if err != nil {
		return models.Session{}, err
	}

	return r.Sessions.AppendItems(sessionID, book.Stories...)
}
