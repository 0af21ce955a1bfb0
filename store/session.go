package store

import (
	"fmt"
	"slices"
	"time"

	"github.com/ayoisaiah/yogi/internal/apperr"
	"github.com/ayoisaiah/yogi/internal/models"
)

// SessionRepo stores sessions and edits their card order.
type SessionRepo struct {
	*Repository[models.Session]
	now func() time.Time
}

func NewSessionRepo(kv KV) *SessionRepo {
	id := func(s *models.Session) string { return s.ID }

	return &SessionRepo{
		Repository: &Repository[models.Session]{
			c:        newCollection(kv, keySessions, "session", id),
			validate: validateSession,
			nextID:   func([]string) string { return newUUID() },
			setID:    func(s *models.Session, id string) { s.ID = id },
		},
		now: time.Now,
	}
}

func (r *SessionRepo) Create(in models.Session) (models.Session, error) {
	in.CreatedAt = r.now()
	in.UpdatedAt = in.CreatedAt

	if in.Exercises == nil {
		in.Exercises = []string{}
	}

	return r.Repository.Create(in)
}

// Update replaces the session fields. The creation time is preserved.
func (r *SessionRepo) Update(id string, in models.Session) (models.Session, error) {
	in.ID = id

	if err := r.validate(&in); err != nil {
		return models.Session{}, err
	}

	return r.c.modify(id, func(s *models.Session) error {
		in.CreatedAt = s.CreatedAt
		in.UpdatedAt = r.now()
		*s = in

		return nil
	})
}

// Reorder stores a new card order for a session.
func (r *SessionRepo) Reorder(id string, order []string) (models.Session, error) {
	if err := validateOrder(order); err != nil {
		return models.Session{}, err
	}

	return r.c.modify(id, func(s *models.Session) error {
		s.Exercises = slices.Clone(order)
		s.UpdatedAt = r.now()

		return nil
	})
}

// AppendItems adds card ids to the end of a session.
func (r *SessionRepo) AppendItems(id string, ids ...string) (models.Session, error) {
	if err := validateOrder(ids); err != nil {
		return models.Session{}, err
	}

	return r.c.modify(id, func(s *models.Session) error {
		s.Exercises = append(s.Exercises, ids...)
		s.UpdatedAt = r.now()

		return nil
	})
}

// RemoveAt removes the card at the given position of a session.
func (r *SessionRepo) RemoveAt(id string, index int) (models.Session, error) {
	return r.c.modify(id, func(s *models.Session) error {
		if index < 0 || index >= len(s.Exercises) {
			return &apperr.ValidationError{
				Messages: []string{
					fmt.Sprintf("position %d is out of range", index+1),
				},
			}
		}

		s.Exercises = slices.Delete(s.Exercises, index, index+1)
		s.UpdatedAt = r.now()

		return nil
	})
}
